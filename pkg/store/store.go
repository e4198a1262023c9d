package store

import "github.com/isaacfidler/cratedig/pkg/types"

// Store is the persisted mapping of source path to created link records.
type Store interface {
	// Get returns the records for a source path and whether any exist.
	Get(sourcePath string) ([]types.LinkRecord, bool)

	// Put replaces the records for a source path.
	Put(sourcePath string, records []types.LinkRecord)

	// Remove drops a source path and its records entirely.
	Remove(sourcePath string)

	// All returns every entry. The returned map is a snapshot; callers
	// may range over it while mutating the store.
	All() map[string][]types.LinkRecord

	// Len returns the number of tracked source files.
	Len() int

	// Save persists the current entries.
	Save() error
}
