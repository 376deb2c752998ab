package pool

import "sync"

// SlicePool pools scratch slices of T.
type SlicePool[T any] struct {
	pool sync.Pool
}

// NewSlicePool creates an empty SlicePool.
func NewSlicePool[T any]() *SlicePool[T] {
	return &SlicePool[T]{
		pool: sync.Pool{
			New: func() any { return &[]T{} },
		},
	}
}

// Get retrieves a slice of exactly size elements.
//
// The contents are not zeroed. A larger slice is allocated when the pooled one
// lacks capacity. The returned cleanup function must be called (typically with
// defer) once the slice is no longer referenced.
//
// Example:
//
//	digits, cleanup := pool.GetUint64Slice(n)
//	defer cleanup()
func (p *SlicePool[T]) Get(size int) ([]T, func()) {
	ptr, _ := p.pool.Get().(*[]T)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]T, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { p.pool.Put(ptr) }
}

var (
	uint64SlicePool = NewSlicePool[uint64]()
	intSlicePool    = NewSlicePool[int]()
)

// GetUint64Slice retrieves a pooled []uint64 of length size.
func GetUint64Slice(size int) ([]uint64, func()) {
	return uint64SlicePool.Get(size)
}

// GetIntSlice retrieves a pooled []int of length size.
func GetIntSlice(size int) ([]int, func()) {
	return intSlicePool.Get(size)
}
