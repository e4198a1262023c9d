package reconcile

import "time"

// Report summarizes one reconciliation run. Dry runs fill the same counts
// from the computed diff without touching the filesystem or the store.
type Report struct {
	DryRun bool

	// Scanned is the number of source files considered.
	Scanned int

	// Created and Removed count link operations applied (or, in a dry
	// run, that would have been applied).
	Created int
	Removed int

	// PrunedSources counts source files whose records were dropped
	// because the source disappeared.
	PrunedSources int

	// Failed counts per-file failures that were logged and skipped.
	Failed int

	// Errors holds the individual per-file failures, in order.
	Errors []error

	Duration time.Duration
}

// Clean reports whether the run applied (or would apply) no changes.
func (r Report) Clean() bool {
	return r.Created == 0 && r.Removed == 0 && r.PrunedSources == 0
}
