package reconcile

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/isaacfidler/cratedig/pkg/errors"
)

// scan enumerates every sample file under the source root, sorted by path
// so runs are deterministic. Unreadable subtrees are logged and skipped;
// only a completely unreadable root fails the scan.
func (r *Reconciler) scan() ([]string, error) {
	root := r.paths.SourceRoot()

	var sources []string
	err := r.fs.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			r.logger.Warn().Err(err).Str("path", path).Msg("Skipping unreadable path")
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.IsDir() {
			return nil
		}
		if r.isSample(path) {
			sources = append(sources, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrScan, "failed to scan %s", root)
	}

	sort.Strings(sources)
	return sources, nil
}

// isSample reports whether a path has one of the configured sample
// extensions.
func (r *Reconciler) isSample(path string) bool {
	return r.extensions[strings.ToLower(filepath.Ext(path))]
}
