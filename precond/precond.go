package precond

import (
	"errors"
	"fmt"
)

var (
	// ErrViolation is the single category all precondition failures belong to.
	ErrViolation = errors.New("precondition violation")
	// ErrIndexOutOfRange signals indexed access outside of [0, size).
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrRange signals a malformed range or count argument.
	ErrRange = errors.New("range error")
)

// Mode selects whether preconditions are evaluated.
type Mode uint8

const (
	// Enabled evaluates every check and reports violations.
	Enabled Mode = iota
	// Disabled skips checks entirely.
	Disabled
)

func (m Mode) String() string {
	switch m {
	case Enabled:
		return "enabled"
	case Disabled:
		return "disabled"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// Violation is the error returned for a failed precondition.
type Violation struct {
	Kind error  // ErrIndexOutOfRange, ErrRange or a client-defined kind
	Msg  string // formatted diagnostic
}

func (v *Violation) Error() string {
	if v.Kind == nil {
		return fmt.Sprintf("%s: %s", ErrViolation, v.Msg)
	}
	return fmt.Sprintf("%s: %s", v.Kind, v.Msg)
}

// Unwrap lets errors.Is match both ErrViolation and the violation kind.
func (v *Violation) Unwrap() []error {
	if v.Kind == nil {
		return []error{ErrViolation}
	}
	return []error{ErrViolation, v.Kind}
}

// Fail creates a violation of the given kind, regardless of any mode.
func Fail(kind error, format string, args ...any) error {
	v := &Violation{Kind: kind, Msg: fmt.Sprintf(format, args...)}
	T().Errorf("%s", v.Error())
	return v
}

// Validate returns nil if cond holds or m is Disabled. Otherwise it returns
// a violation of the given kind with a message formatted from format and args.
func (m Mode) Validate(cond bool, kind error, format string, args ...any) error {
	if m == Disabled || cond {
		return nil
	}
	return Fail(kind, format, args...)
}

// Validate checks cond under DefaultMode.
func Validate(cond bool, kind error, format string, args ...any) error {
	return DefaultMode.Validate(cond, kind, format, args...)
}
