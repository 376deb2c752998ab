package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// String computes the xxHash64 fingerprint of s.
func String(s string) uint64 {
	return xxhash.Sum64String(s)
}

// WithInt derives a new fingerprint from seed and an integer parameter.
//
// It is used to key values that depend on both an alphabet and a numeric bound,
// such as delta kits keyed by (alphabet, maxValue).
func WithInt(seed uint64, v int) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], seed)
	binary.LittleEndian.PutUint64(buf[8:], uint64(v)) //nolint:gosec

	return xxhash.Sum64(buf[:])
}
