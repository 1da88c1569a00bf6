//go:build !rmq_nochecks

package precond

// DefaultMode is the check mode used by clients which do not configure one.
var DefaultMode = Enabled
