// Package options implements the functional options pattern shared by the
// codec and report configuration types.
package options

import "fmt"

// Option configures a target of type T.
//
// The apply method is unexported so that only this package can build options;
// packages expose their own With* constructors returning Option values.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a plain function to the Option interface.
type Func[T any] func(T) error

func (f Func[T]) apply(target T) error {
	return f(target)
}

// New creates an option from a function that may reject its input.
func New[T any](fn func(T) error) Option[T] {
	return Func[T](fn)
}

// NoError creates an option from a setter that cannot fail.
func NoError[T any](fn func(T)) Option[T] {
	return Func[T](func(target T) error {
		fn(target)
		return nil
	})
}

// Apply applies opts to target in order, skipping nil options.
//
// It stops at the first failing option; options before it have already been
// applied. The returned error wraps the option's error.
func Apply[T any](target T, opts ...Option[T]) error {
	for i, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt.apply(target); err != nil {
			return fmt.Errorf("option #%d: %w", i, err)
		}
	}

	return nil
}
