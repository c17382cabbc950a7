// Package resource implements a small check-then-apply reconciliation model.
// Each Resource asserts one piece of desired host state and applying it again
// on an already-converged host is a no-op.
package resource

import "context"

// Status is the outcome of applying a single resource.
type Status int

const (
	StatusUnknown Status = iota

	// StatusSkipped means the resource was not evaluated, e.g. in noop mode
	// for resources that cannot be checked without side effects.
	StatusSkipped

	// StatusUnchanged means the host already matched the declared state.
	StatusUnchanged

	// StatusChanged means the host was modified to match the declared state.
	StatusChanged

	// StatusFailed means the resource could not be applied.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusSkipped:
		return "skipped"
	case StatusUnchanged:
		return "unchanged"
	case StatusChanged:
		return "changed"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// Resource is a single declarative assertion of host state.
//
// Apply checks current state first and only mutates on drift. With noop set,
// implementations must not write anything and report StatusChanged for what
// they would have modified.
type Resource interface {
	Name() string
	Apply(ctx context.Context, noop bool) (Status, error)
}
