package accumulate

import "fmt"

// Option is an explicitly tagged optional value.
//
// The zero value is None. Options of comparable types are comparable; None
// always carries the zero value of T.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps v into an Option.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns the empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the wrapped value and true, or the zero value and false for None.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSome reports whether o carries a value.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether o is empty.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// OrElse returns the wrapped value, or def for None.
func (o Option[T]) OrElse(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
