package reconcile

import (
	"os"
	"time"

	"github.com/isaacfidler/cratedig/pkg/types"
)

// Validate repairs drift between the store and the filesystem: records
// whose source vanished, or whose link is missing or no longer resolves
// to the claimed source, are removed from both. It does not discover new
// source files; that is full sync's job.
func (r *Reconciler) Validate() (Report, error) {
	start := time.Now()
	report := Report{DryRun: r.dryRun}

	for source, records := range r.store.All() {
		if _, err := r.fs.Stat(source); err != nil {
			if os.IsNotExist(err) {
				r.pruneSource(source, records, &report)
				continue
			}
			r.logger.Warn().Err(err).Str("source", source).Msg("Cannot stat source, leaving entry")
			continue
		}

		kept := records[:0:0]
		dropped := 0
		for _, rec := range records {
			if r.linkResolves(rec, source) {
				kept = append(kept, rec)
				continue
			}
			dropped++
			if r.dryRun {
				r.logger.Info().Str("link", rec.LinkPath).Msg("Would drop stale link")
				report.Removed++
				continue
			}
			if err := r.removeLink(rec.LinkPath, source); err != nil {
				r.logger.Warn().Err(err).Str("link", rec.LinkPath).Msg("Failed to remove stale link")
				report.Failed++
				report.Errors = append(report.Errors, err)
				kept = append(kept, rec)
				continue
			}
			report.Removed++
		}

		if dropped > 0 && !r.dryRun {
			r.store.Put(source, kept)
		}
	}

	if err := r.persist(); err != nil {
		return r.finish(report, start), err
	}

	report = r.finish(report, start)
	r.logger.Info().
		Int("removed", report.Removed).
		Int("prunedSources", report.PrunedSources).
		Bool("dryRun", report.DryRun).
		Msg("Validation complete")
	return report, nil
}

// linkResolves reports whether a recorded link still exists and points at
// the claimed source.
func (r *Reconciler) linkResolves(rec types.LinkRecord, source string) bool {
	if _, err := r.fs.Lstat(rec.LinkPath); err != nil {
		return false
	}
	target, err := r.fs.Readlink(rec.LinkPath)
	return err == nil && target == source
}
