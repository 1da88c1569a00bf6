package rmq

import (
	"fmt"

	"github.com/npillmayer/rmq/accumulate"
	"github.com/npillmayer/rmq/precond"
)

// Config configures an Rmq for elements of type E and aggregates of type A.
type Config[E, A any] struct {
	// Accumulator computes and combines aggregates. Required.
	Accumulator accumulate.Accumulator[A, E]
	// Checks selects whether preconditions are validated. The zero value
	// is precond.Enabled.
	Checks precond.Mode
	// DefaultChecks ignores Checks and uses precond.DefaultMode instead,
	// which is Disabled for builds with tag `rmq_nochecks`.
	DefaultChecks bool
}

func (cfg Config[E, A]) normalized() Config[E, A] {
	if cfg.DefaultChecks {
		cfg.Checks = precond.DefaultMode
	}
	return cfg
}

func (cfg Config[E, A]) validate() error {
	cfg = cfg.normalized()
	if cfg.Accumulator == nil {
		return fmt.Errorf("%w: accumulator is required", ErrInvalidConfig)
	}
	if cfg.Checks != precond.Enabled && cfg.Checks != precond.Disabled {
		return fmt.Errorf("%w: unknown check mode %s", ErrInvalidConfig, cfg.Checks)
	}
	return nil
}
