package encoding

import (
	"fmt"

	"github.com/arloliu/axe/errs"
)

// MaxCombinedWidth is the largest allowed srcBits+dstBits.
//
// After a push the queue holds at most dstBits-1 leftover bits plus srcBits new
// ones, so the sum must fit the 64-bit accumulator with one bit to spare.
const MaxCombinedWidth = 63

// TailPolicy selects what happens to leftover bits once the input is exhausted.
type TailPolicy uint8

const (
	// TailKeep left-aligns leftover bits into one final zero-padded value.
	// Encoders use it so the last partial digit is never lost.
	TailKeep TailPolicy = iota

	// TailDiscard drops leftover bits. Decoders use it: the leftover bits are
	// the padding TailKeep added and never encode a value.
	TailDiscard
)

func (p TailPolicy) String() string {
	switch p {
	case TailKeep:
		return "Keep"
	case TailDiscard:
		return "Discard"
	default:
		return "Unknown"
	}
}

// Queue is a bit queue that accepts srcBits-wide values and yields
// dstBits-wide values cut from the same concatenated bitstream, most
// significant bits first.
//
// Typical use is push, drain, repeat:
//
//	q, _ := NewQueue(9, 6)
//	for _, v := range values {
//	    if err := q.Push(v); err != nil {
//	        return err
//	    }
//	    for d, ok := q.Next(); ok; d, ok = q.Next() {
//	        emit(d)
//	    }
//	}
//	if d, ok := q.Tail(TailKeep); ok {
//	    emit(d)
//	}
//
// A Queue is not safe for concurrent use; create one per encode/decode call.
type Queue struct {
	value   uint64 // valid bits are the low `length` bits, higher bits are zero
	length  int
	srcBits int
	dstBits int
	srcMask uint64
}

// NewQueue creates an empty queue converting srcBits-wide values into
// dstBits-wide values.
//
// Both widths must be at least 1 and their sum at most MaxCombinedWidth.
// Invalid widths are a caller defect and yield errs.ErrInternalInvariant.
func NewQueue(srcBits, dstBits int) (*Queue, error) {
	if err := checkWidths(srcBits, dstBits); err != nil {
		return nil, err
	}

	return &Queue{
		srcBits: srcBits,
		dstBits: dstBits,
		srcMask: lowMask(srcBits),
	}, nil
}

// Push appends the low srcBits bits of v to the queue.
//
// Returns errs.ErrInternalInvariant if v does not fit in srcBits bits, or if
// the queue was not drained with Next and would overflow its accumulator.
func (q *Queue) Push(v uint64) error {
	if v&^q.srcMask != 0 {
		return fmt.Errorf("%w: value %d does not fit in %d bits", errs.ErrInternalInvariant, v, q.srcBits)
	}

	if q.length+q.srcBits > MaxCombinedWidth {
		return fmt.Errorf("%w: bit queue overflow (%d queued bits, pushing %d)", errs.ErrInternalInvariant, q.length, q.srcBits)
	}

	q.value = q.value<<q.srcBits | v
	q.length += q.srcBits

	return nil
}

// Next removes and returns the oldest dstBits bits, if that many are queued.
func (q *Queue) Next() (uint64, bool) {
	if q.length < q.dstBits {
		return 0, false
	}

	depth := q.length - q.dstBits
	out := q.value >> depth
	q.value &= lowMask(depth)
	q.length = depth

	return out, true
}

// Tail finishes the stream according to policy.
//
// With TailKeep and a non-empty queue it returns the leftover bits shifted left
// to a full dstBits value. Otherwise it returns false. The queue is empty
// afterwards in both cases.
func (q *Queue) Tail(policy TailPolicy) (uint64, bool) {
	value, length := q.value, q.length
	q.value, q.length = 0, 0

	if policy != TailKeep || length == 0 {
		return 0, false
	}

	return value << (q.dstBits - length), true
}

// Remainder returns the queued bits without consuming them.
func (q *Queue) Remainder() (value uint64, length int) {
	return q.value, q.length
}

// Len returns the number of queued bits.
func (q *Queue) Len() int {
	return q.length
}

// Reset empties the queue, keeping its widths.
func (q *Queue) Reset() {
	q.value = 0
	q.length = 0
}

// Remainder describes the bits left over when a rechunk pass ended.
type Remainder struct {
	Value uint64 // leftover bits, right-aligned
	Bits  int    // number of leftover bits, always < the destination width
}

// Rechunker is a compiled (srcBits, dstBits, tail) triple. It is an immutable
// value and safe for concurrent use; each call builds its own Queue.
type Rechunker struct {
	srcBits int
	dstBits int
	tail    TailPolicy
}

// NewRechunker validates the widths and returns a Rechunker.
func NewRechunker(srcBits, dstBits int, tail TailPolicy) (Rechunker, error) {
	if err := checkWidths(srcBits, dstBits); err != nil {
		return Rechunker{}, err
	}

	return Rechunker{srcBits: srcBits, dstBits: dstBits, tail: tail}, nil
}

// SrcBits returns the input width.
func (r Rechunker) SrcBits() int { return r.srcBits }

// DstBits returns the output width.
func (r Rechunker) DstBits() int { return r.dstBits }

// Tail returns the tail policy.
func (r Rechunker) Tail() TailPolicy { return r.tail }

// OutputLen returns how many values rechunking n inputs produces.
func (r Rechunker) OutputLen(n int) int {
	total := n * r.srcBits
	if r.tail == TailKeep {
		return (total + r.dstBits - 1) / r.dstBits
	}

	return total / r.dstBits
}

// Append rechunks src and appends the results to dst.
//
// The returned Remainder reports the bits left over before the tail policy was
// applied: with TailKeep they were emitted as a padded final value, with
// TailDiscard they were dropped. On error dst is returned unchanged.
func (r Rechunker) Append(dst []uint64, src []uint64) ([]uint64, Remainder, error) {
	q := Queue{
		srcBits: r.srcBits,
		dstBits: r.dstBits,
		srcMask: lowMask(r.srcBits),
	}

	start := len(dst)
	for _, v := range src {
		if err := q.Push(v); err != nil {
			return dst[:start], Remainder{}, err
		}
		for out, ok := q.Next(); ok; out, ok = q.Next() {
			dst = append(dst, out)
		}
	}

	value, bits := q.Remainder()
	if out, ok := q.Tail(r.tail); ok {
		dst = append(dst, out)
	}

	return dst, Remainder{Value: value, Bits: bits}, nil
}

func checkWidths(srcBits, dstBits int) error {
	if srcBits < 1 || dstBits < 1 {
		return fmt.Errorf("%w: bit widths must be positive (src=%d, dst=%d)", errs.ErrInternalInvariant, srcBits, dstBits)
	}

	if srcBits+dstBits > MaxCombinedWidth {
		return fmt.Errorf("%w: combined width %d exceeds %d bits", errs.ErrInternalInvariant, srcBits+dstBits, MaxCombinedWidth)
	}

	return nil
}

// lowMask returns a mask with the low n bits set, for 0 <= n < 64.
func lowMask(n int) uint64 {
	return (uint64(1) << n) - 1
}
