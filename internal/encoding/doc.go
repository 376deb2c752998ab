// Package encoding provides the integer-level primitives behind axe's codecs.
//
// These implementations are internal; use the codec package or the root axe
// package instead.
//
// # Implementation Overview
//
//   - Queue / Rechunker - regroup a stream of fixed-width values into values of
//     another width, most significant bits first. Used by the bit-rechunking codec
//     (number width to digit width on encode, and back on decode).
//   - ReverseRadix - fixed-width little-endian digit expansion in an arbitrary
//     base. Used by the positional codec.
//
// # Architecture Notes
//
// Both types work on uint64 only. Callers center their values against the
// domain minimum first, so every value handed to this package is non-negative
// and bounded by the domain span.
//
// A Queue is a small mutable cursor and must not be shared between goroutines.
// Rechunker and ReverseRadix are immutable values and can be reused freely.
package encoding
