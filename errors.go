package rmq

import (
	"errors"

	"github.com/npillmayer/rmq/precond"
)

var (
	// ErrInvalidConfig signals an invalid Rmq configuration.
	ErrInvalidConfig = errors.New("rmq: invalid configuration")
	// ErrInvariant signals a broken tree invariant (see Check).
	ErrInvariant = errors.New("rmq: invariant violated")
	// ErrIndexOutOfRange is the kind of precondition violation reported for
	// element access outside of [0, Size()).
	ErrIndexOutOfRange = precond.ErrIndexOutOfRange
	// ErrRange is the kind of precondition violation reported for malformed
	// query ranges and negative sizes.
	ErrRange = precond.ErrRange
)
