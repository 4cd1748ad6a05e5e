package policy

import "errors"

// The core fails only with these two errors. Everything else (dangling role
// or department references, stale custom grants, disabled roles) degrades to a
// narrower result instead.
var (
	ErrCycleDetected      = errors.New("policy: department hierarchy contains a cycle")
	ErrInvalidScopePolicy = errors.New("policy: invalid data scope policy")
)
