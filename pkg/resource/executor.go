package resource

import (
	"context"
	"fmt"
	"log/slog"
)

// Summary counts resource outcomes for one convergence run.
type Summary struct {
	Skipped   int
	Unchanged int
	Changed   int
	Failed    int
}

// Executor applies resources in declared order. Changes are collected as
// events and drained once at the end of the run, so the restart handler
// fires at most once no matter how many resources drifted.
type Executor struct {
	// Noop makes the run report drift without writing anything.
	Noop bool

	// OnChange runs once after a run during which at least one resource
	// changed. Typically a service restart.
	OnChange func() error

	// Report, when set, receives every resource outcome as it happens.
	Report func(name string, status Status)
}

// Run applies every resource in order and stops at the first failure.
func (e *Executor) Run(ctx context.Context, resources []Resource) (Summary, error) {
	var summary Summary
	events := make(chan string, len(resources))

	for _, r := range resources {
		status, err := r.Apply(ctx, e.Noop)
		if e.Report != nil {
			e.Report(r.Name(), status)
		}
		if err != nil {
			summary.Failed++
			return summary, fmt.Errorf("applying %s: %w", r.Name(), err)
		}

		switch status {
		case StatusSkipped:
			summary.Skipped++
		case StatusUnchanged:
			summary.Unchanged++
		case StatusChanged:
			summary.Changed++
			events <- r.Name()
		default:
			summary.Failed++
			return summary, fmt.Errorf("applying %s: unexpected status %s", r.Name(), status)
		}
	}
	close(events)

	changed := false
	for name := range events {
		slog.Debug("resource changed", slog.String("resource", name))
		changed = true
	}

	if changed && !e.Noop && e.OnChange != nil {
		if err := e.OnChange(); err != nil {
			return summary, fmt.Errorf("change notification: %w", err)
		}
	}
	return summary, nil
}
