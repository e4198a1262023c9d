package reconcile

import (
	"os"
	"path/filepath"

	"github.com/isaacfidler/cratedig/pkg/errors"
	"github.com/isaacfidler/cratedig/pkg/types"
)

// ensureLayout pre-creates the full fixed taxonomy under the organized
// root so the tree is browsable from the first run.
func (r *Reconciler) ensureLayout() error {
	if r.dryRun {
		return nil
	}
	for _, category := range r.taxonomy {
		dir := r.paths.CategoryDir(category)
		if err := r.fs.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "failed to create category directory %s", dir)
		}
	}
	return nil
}

// reconcileFile diffs one source file's desired link set against its
// stored set and applies the difference. Failures are recorded and
// skipped; the file's store entry ends up reflecting exactly the links
// that exist.
func (r *Reconciler) reconcileFile(source string, desired []types.LinkRecord, report *Report) {
	stored, _ := r.store.Get(source)

	toCreate, toRemove := diff(desired, stored)
	if len(toCreate) == 0 && len(toRemove) == 0 {
		return
	}

	applied := make([]types.LinkRecord, 0, len(desired))
	for _, rec := range stored {
		if !containsLink(toRemove, rec.LinkPath) {
			applied = append(applied, rec)
		}
	}

	for _, rec := range toRemove {
		if r.dryRun {
			r.logger.Info().Str("link", rec.LinkPath).Msg("Would remove link")
			report.Removed++
			continue
		}
		if err := r.removeLink(rec.LinkPath, source); err != nil {
			r.logger.Warn().Err(err).Str("link", rec.LinkPath).Msg("Failed to remove link")
			report.Failed++
			report.Errors = append(report.Errors, err)
			applied = append(applied, rec) // still on disk, keep tracking it
			continue
		}
		report.Removed++
	}

	for _, rec := range toCreate {
		if r.dryRun {
			r.logger.Info().
				Str("category", rec.Category.String()).
				Str("link", rec.LinkPath).
				Msg("Would create link")
			report.Created++
			continue
		}
		if err := r.createLink(source, rec.LinkPath); err != nil {
			r.logger.Warn().Err(err).
				Str("source", source).
				Str("link", rec.LinkPath).
				Msg("Failed to create link")
			report.Failed++
			report.Errors = append(report.Errors, err)
			continue
		}
		applied = append(applied, rec)
		report.Created++
	}

	if !r.dryRun {
		r.store.Put(source, applied)
	}
}

// pruneSource removes every link recorded for a vanished source file.
func (r *Reconciler) pruneSource(source string, records []types.LinkRecord, report *Report) {
	if r.dryRun {
		r.logger.Info().Str("source", source).Int("links", len(records)).Msg("Would prune source")
		report.Removed += len(records)
		report.PrunedSources++
		return
	}

	remaining := records[:0:0]
	for _, rec := range records {
		if err := r.removeLink(rec.LinkPath, source); err != nil {
			r.logger.Warn().Err(err).Str("link", rec.LinkPath).Msg("Failed to remove link")
			report.Failed++
			report.Errors = append(report.Errors, err)
			remaining = append(remaining, rec)
			continue
		}
		report.Removed++
	}

	if len(remaining) > 0 {
		r.store.Put(source, remaining)
		return
	}
	r.store.Remove(source)
	report.PrunedSources++
}

// createLink makes linkPath a symlink to source, idempotently: an already
// correct link is left alone, a wrong entry at the path is replaced.
func (r *Reconciler) createLink(source, linkPath string) error {
	if target, err := r.fs.Readlink(linkPath); err == nil && target == source {
		return nil
	}

	if err := r.fs.MkdirAll(filepath.Dir(linkPath), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create parent for %s", linkPath)
	}

	if _, err := r.fs.Lstat(linkPath); err == nil {
		if err := r.fs.Remove(linkPath); err != nil {
			return errors.Wrapf(err, errors.ErrSymlinkCreate, "failed to replace %s", linkPath)
		}
	}

	if err := r.fs.Symlink(source, linkPath); err != nil {
		return errors.Wrapf(err, errors.ErrSymlinkCreate, "failed to link %s", linkPath)
	}
	return nil
}

// removeLink deletes a symlink recorded for source. Already-absent counts
// as success, and a link whose target is some other source is left alone:
// collision names change owners between runs, and the new owner's link
// must survive the old owner's removal pass.
func (r *Reconciler) removeLink(linkPath, source string) error {
	if _, err := r.fs.Lstat(linkPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, errors.ErrSymlinkRemove, "failed to stat %s", linkPath)
	}
	if target, err := r.fs.Readlink(linkPath); err == nil && target != source {
		return nil
	}
	if err := r.fs.Remove(linkPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, errors.ErrSymlinkRemove, "failed to remove %s", linkPath)
	}
	return nil
}

// pruneTree removes every link under the taxonomy branches and returns
// how many it removed (or, in a dry run, would have removed). Used by
// resync before rebuilding from scratch.
func (r *Reconciler) pruneTree() (int, error) {
	branches := map[string]bool{}
	for _, category := range r.taxonomy {
		branches[category.Branch()] = true
	}

	pruned := 0
	for branch := range branches {
		root := r.paths.CategoryDir(types.CategoryPath(branch))
		err := r.fs.Walk(root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				if os.IsNotExist(err) {
					return nil
				}
				return err
			}
			if info.IsDir() {
				return nil
			}
			if !r.dryRun {
				if err := r.fs.Remove(path); err != nil {
					return err
				}
			}
			pruned++
			return nil
		})
		if err != nil && !os.IsNotExist(err) {
			return pruned, errors.Wrapf(err, errors.ErrSymlinkRemove, "failed to prune %s", root)
		}
	}

	if r.dryRun {
		r.logger.Info().Int("links", pruned).Msg("Would prune all existing links")
	}
	return pruned, nil
}

func (r *Reconciler) linkPath(category types.CategoryPath, linkName string) string {
	return filepath.Join(r.paths.CategoryDir(category), linkName)
}

func baseName(path string) string {
	return filepath.Base(path)
}
