package reconcile

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/isaacfidler/cratedig/pkg/classify"
	"github.com/isaacfidler/cratedig/pkg/config"
	"github.com/isaacfidler/cratedig/pkg/logging"
	"github.com/isaacfidler/cratedig/pkg/naming"
	"github.com/isaacfidler/cratedig/pkg/store"
	"github.com/isaacfidler/cratedig/pkg/types"
)

// progressInterval controls how often a full sync logs scan progress.
const progressInterval = 100

// Options configures a Reconciler.
type Options struct {
	FS         types.FS
	Paths      types.Pather
	Store      store.Store
	Classifier *classify.Classifier

	// Taxonomy is the fixed category set, pre-created at start.
	Taxonomy []types.CategoryPath

	// Extensions are the sample file extensions to consider, with dot,
	// matched case-insensitively.
	Extensions []string

	// DryRun computes and reports diffs without mutating anything.
	DryRun bool
}

// Reconciler orchestrates full and incremental passes over the source
// tree. It is single-threaded by design: at most one reconciliation is in
// flight, and watch events are processed strictly in delivery order.
type Reconciler struct {
	fs         types.FS
	paths      types.Pather
	store      store.Store
	classifier *classify.Classifier
	taxonomy   []types.CategoryPath
	extensions map[string]bool
	dryRun     bool
	logger     zerolog.Logger
}

// New builds a Reconciler from options.
func New(opts Options) *Reconciler {
	exts := make(map[string]bool, len(opts.Extensions))
	for _, e := range opts.Extensions {
		exts[strings.ToLower(e)] = true
	}
	return &Reconciler{
		fs:         opts.FS,
		paths:      opts.Paths,
		store:      opts.Store,
		classifier: opts.Classifier,
		taxonomy:   opts.Taxonomy,
		extensions: exts,
		dryRun:     opts.DryRun,
		logger:     logging.GetLogger("reconcile"),
	}
}

// FromConfig wires a Reconciler from loaded configuration, shared by the
// CLI commands.
func FromConfig(cfg *config.Config, fs types.FS, pather types.Pather, st store.Store, dryRun bool) (*Reconciler, error) {
	classifier, err := classify.New(cfg.Classify, pather.SourceRoot())
	if err != nil {
		return nil, err
	}
	return New(Options{
		FS:         fs,
		Paths:      pather,
		Store:      st,
		Classifier: classifier,
		Taxonomy:   classify.Taxonomy(cfg.Classify),
		Extensions: cfg.Classify.Extensions,
		DryRun:     dryRun,
	}), nil
}

// FullSync enumerates every sample under the source root, computes each
// file's desired link set, and reconciles it against the store. Sources
// that vanished since the last run are pruned first. Interruptible via
// ctx between files; whatever was applied stays consistent in the store.
func (r *Reconciler) FullSync(ctx context.Context) (Report, error) {
	start := time.Now()
	report := Report{DryRun: r.dryRun}

	if err := r.ensureLayout(); err != nil {
		return report, err
	}

	sources, err := r.scan()
	if err != nil {
		return report, err
	}
	report.Scanned = len(sources)

	names := naming.Disambiguate(sources, r.paths.SourceRoot())

	// Remove links for sources that no longer exist, before creating
	// anything, so vacated names are free for their new owners.
	present := make(map[string]bool, len(sources))
	for _, s := range sources {
		present[s] = true
	}
	for source, records := range r.store.All() {
		if present[source] {
			continue
		}
		if err := ctx.Err(); err != nil {
			return r.finish(report, start), r.interrupted(err)
		}
		r.pruneSource(source, records, &report)
	}

	for i, source := range sources {
		if err := ctx.Err(); err != nil {
			return r.finish(report, start), r.interrupted(err)
		}
		r.reconcileFile(source, r.desiredRecords(source, names[source]), &report)

		if (i+1)%progressInterval == 0 {
			r.logger.Info().
				Int("scanned", i+1).
				Int("total", len(sources)).
				Int("created", report.Created).
				Msg("Sync progress")
		}
	}

	if err := r.persist(); err != nil {
		return r.finish(report, start), err
	}

	report = r.finish(report, start)
	r.logger.Info().
		Int("scanned", report.Scanned).
		Int("created", report.Created).
		Int("removed", report.Removed).
		Int("failed", report.Failed).
		Dur("duration", report.Duration).
		Bool("dryRun", report.DryRun).
		Msg("Full sync complete")
	return report, nil
}

// Resync prunes every existing link in the organized tree, clears the
// store, then performs a full sync from scratch. The report covers both
// phases: links pruned plus links recreated.
func (r *Reconciler) Resync(ctx context.Context) (Report, error) {
	pruned, err := r.pruneTree()
	if err != nil {
		return Report{DryRun: r.dryRun}, err
	}

	if r.dryRun {
		// Preview the rebuild against an empty store so the diff shows
		// the full re-create set, not the current store's view.
		shadow := *r
		shadow.store = store.NewMemory()
		report, err := shadow.FullSync(ctx)
		report.Removed += pruned
		return report, err
	}

	for source := range r.store.All() {
		r.store.Remove(source)
	}
	if err := r.store.Save(); err != nil {
		return Report{}, err
	}

	report, err := r.FullSync(ctx)
	report.Removed += pruned
	return report, err
}

// Apply processes a single watch event: recompute the file's desired link
// set (empty for a removal) and reconcile just that file. Duplicate or
// out-of-order delivery is harmless; the diff is idempotent.
func (r *Reconciler) Apply(event types.Event) Report {
	start := time.Now()
	report := Report{DryRun: r.dryRun}

	switch event.Kind {
	case types.EventRemoved:
		if records, ok := r.store.Get(event.Path); ok {
			r.pruneSource(event.Path, records, &report)
		}
	case types.EventAdded:
		if !r.isSample(event.Path) {
			return report
		}
		if _, err := r.fs.Stat(event.Path); err != nil {
			// Gone again already. Out-of-order Removed/Added delivery
			// must not leave dangling links, so treat this as a removal.
			if records, ok := r.store.Get(event.Path); ok {
				r.pruneSource(event.Path, records, &report)
			}
			break
		}
		report.Scanned = 1
		r.reconcileFile(event.Path, r.desiredRecords(event.Path, r.linkNameFor(event.Path)), &report)
	}

	if err := r.persist(); err != nil {
		report.Failed++
		report.Errors = append(report.Errors, err)
	}

	report = r.finish(report, start)
	if !report.Clean() {
		r.logger.Info().
			Str("event", event.Kind.String()).
			Str("path", event.Path).
			Int("created", report.Created).
			Int("removed", report.Removed).
			Msg("Event applied")
	}
	return report
}

// Run consumes events until the context is cancelled or the channel
// closes. Events are processed one at a time, in delivery order.
func (r *Reconciler) Run(ctx context.Context, events <-chan types.Event) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-events:
			if !ok {
				return nil
			}
			r.Apply(event)
		}
	}
}

// desiredRecords computes the full desired link set for one source file.
func (r *Reconciler) desiredRecords(source, linkName string) []types.LinkRecord {
	classification := r.classifier.Classify(source)
	categories := classification.Categories()

	records := make([]types.LinkRecord, 0, len(categories))
	for _, category := range categories {
		records = append(records, types.LinkRecord{
			Category: category,
			LinkPath: r.linkPath(category, linkName),
		})
	}
	return records
}

// linkNameFor resolves the link name for a single file outside a batch.
// Stored claims from other sources in the same pack are honored: the name
// takes the first free suffix slot, deterministically.
func (r *Reconciler) linkNameFor(source string) string {
	base := naming.LinkName(source, r.paths.SourceRoot())

	claimed := r.claimedNames()
	name := base
	for n := 2; ; n++ {
		owner, taken := claimed[name]
		if !taken || owner == source {
			return name
		}
		name = naming.Suffixed(base, n)
	}
}

// claimedNames maps every link basename recorded in the store to the
// source that owns it.
func (r *Reconciler) claimedNames() map[string]string {
	claimed := make(map[string]string)
	for source, records := range r.store.All() {
		for _, rec := range records {
			claimed[baseName(rec.LinkPath)] = source
		}
	}
	return claimed
}

func (r *Reconciler) finish(report Report, start time.Time) Report {
	report.Duration = time.Since(start)
	return report
}

// interrupted persists whatever was applied before an early return, so
// the store stays consistent with the filesystem across interruptions.
func (r *Reconciler) interrupted(cause error) error {
	if err := r.persist(); err != nil {
		r.logger.Warn().Err(err).Msg("Failed to persist link index after interruption")
	}
	return cause
}

func (r *Reconciler) persist() error {
	if r.dryRun {
		return nil
	}
	return r.store.Save()
}
