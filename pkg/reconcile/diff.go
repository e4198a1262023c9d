package reconcile

import "github.com/isaacfidler/cratedig/pkg/types"

// diff computes the link operations that turn the stored set into the
// desired set: toCreate = desired - stored, toRemove = stored - desired.
// Records are keyed by link path; the category is carried along for
// reporting.
func diff(desired, stored []types.LinkRecord) (toCreate, toRemove []types.LinkRecord) {
	desiredPaths := make(map[string]bool, len(desired))
	for _, rec := range desired {
		desiredPaths[rec.LinkPath] = true
	}
	storedPaths := make(map[string]bool, len(stored))
	for _, rec := range stored {
		storedPaths[rec.LinkPath] = true
	}

	for _, rec := range desired {
		if !storedPaths[rec.LinkPath] {
			toCreate = append(toCreate, rec)
		}
	}
	for _, rec := range stored {
		if !desiredPaths[rec.LinkPath] {
			toRemove = append(toRemove, rec)
		}
	}
	return toCreate, toRemove
}

func containsLink(records []types.LinkRecord, linkPath string) bool {
	for _, rec := range records {
		if rec.LinkPath == linkPath {
			return true
		}
	}
	return false
}
