// Package errs defines the sentinel errors returned by axe codecs.
//
// Every error surfaced by the public packages wraps exactly one of these
// sentinels, so callers can classify failures with errors.Is:
//
//	if _, err := c.Serialize(numbers); errors.Is(err, errs.ErrDomainRange) {
//	    // fix the input
//	}
package errs

import "errors"

// Encode-time errors.
var (
	// ErrDomainRange is returned when a value lies outside the codec's [min, max] domain.
	ErrDomainRange = errors.New("value out of domain range")
)

// Decode-time errors.
var (
	// ErrInvalidCharacter is returned when a character does not belong to the codec's alphabet,
	// or lies beyond the part of the alphabet the codec actually uses.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrInvalidDigit is returned when a character is neither a terminal nor an accumulative delta digit.
	ErrInvalidDigit = errors.New("invalid digit")

	// ErrMalformedInput is returned when every character is valid but the string as a whole
	// could not have been produced by the codec.
	ErrMalformedInput = errors.New("malformed input")
)

// Construction-time errors.
var (
	// ErrInvalidAlphabet is returned for alphabets that are too short, contain duplicates,
	// or contain non-printable characters.
	ErrInvalidAlphabet = errors.New("invalid alphabet")

	// ErrInvalidDomain is returned when minValue > maxValue or the domain is too wide
	// for the codec's working integer width.
	ErrInvalidDomain = errors.New("invalid domain")

	// ErrInfeasibleConfiguration is returned when no delta kit over the alphabet can span maxValue.
	ErrInfeasibleConfiguration = errors.New("infeasible configuration")

	// ErrUnsupportedCodec is returned when a codec kind is unknown.
	ErrUnsupportedCodec = errors.New("unsupported codec")
)

// ErrInternalInvariant indicates a programming defect: a value wider than its declared
// bit width reached the bit queue. It never signals bad user data.
var ErrInternalInvariant = errors.New("internal invariant violated")

// ErrRoundTripMismatch is returned by verification helpers when decoding an
// encoded value does not reproduce the input.
var ErrRoundTripMismatch = errors.New("round trip mismatch")
