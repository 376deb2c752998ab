package pool

import (
	"sync"
	"unicode/utf8"
)

const (
	// StringBufferDefaultSize is the initial capacity of buffers handed out by GetStringBuffer.
	StringBufferDefaultSize = 256
	// StringBufferMaxThreshold is the largest capacity a buffer may have and still be pooled.
	StringBufferMaxThreshold = 64 * 1024
)

// ByteBuffer is a growable byte slice used to assemble encoded strings.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the given initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the number of bytes written.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Reset empties the buffer but keeps its capacity.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Grow ensures the buffer can take n more bytes without reallocating.
//
// Small buffers grow by at least StringBufferDefaultSize, larger ones by 25%
// of their capacity.
func (bb *ByteBuffer) Grow(n int) {
	if cap(bb.B)-len(bb.B) >= n {
		return
	}

	growBy := StringBufferDefaultSize
	if cap(bb.B) > 4*StringBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < n {
		growBy = n
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// AppendRune appends the UTF-8 encoding of r.
func (bb *ByteBuffer) AppendRune(r rune) {
	bb.B = utf8.AppendRune(bb.B, r)
}

// AppendByte appends a single byte.
func (bb *ByteBuffer) AppendByte(c byte) {
	bb.B = append(bb.B, c)
}

// String returns a copy of the buffer contents as a string.
func (bb *ByteBuffer) String() string {
	return string(bb.B)
}

// ByteBufferPool is a sync.Pool of ByteBuffers that refuses to retain
// buffers larger than maxThreshold.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool whose buffers start with defaultSize capacity.
// A maxThreshold of zero disables the size limit.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves an empty ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns bb to the pool. Oversized buffers are dropped.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var stringDefaultPool = NewByteBufferPool(StringBufferDefaultSize, StringBufferMaxThreshold)

// GetStringBuffer retrieves a ByteBuffer for assembling an encoded string.
func GetStringBuffer() *ByteBuffer {
	return stringDefaultPool.Get()
}

// PutStringBuffer returns a buffer obtained from GetStringBuffer.
func PutStringBuffer(bb *ByteBuffer) {
	stringDefaultPool.Put(bb)
}
