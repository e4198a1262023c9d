package store

import "github.com/isaacfidler/cratedig/pkg/types"

// memStore holds entries in memory. It backs NewMemory directly and is
// embedded by the file-backed store for the map operations.
type memStore struct {
	entries map[string][]types.LinkRecord
}

var _ Store = (*memStore)(nil)

// NewMemory returns an empty Store with no persistence; Save is a no-op.
// Dry-run previews use it to diff against a clean slate.
func NewMemory() Store {
	return &memStore{entries: make(map[string][]types.LinkRecord)}
}

func (s *memStore) Get(sourcePath string) ([]types.LinkRecord, bool) {
	records, ok := s.entries[sourcePath]
	return records, ok
}

func (s *memStore) Put(sourcePath string, records []types.LinkRecord) {
	if len(records) == 0 {
		delete(s.entries, sourcePath)
		return
	}
	s.entries[sourcePath] = records
}

func (s *memStore) Remove(sourcePath string) {
	delete(s.entries, sourcePath)
}

func (s *memStore) All() map[string][]types.LinkRecord {
	snapshot := make(map[string][]types.LinkRecord, len(s.entries))
	for k, v := range s.entries {
		snapshot[k] = v
	}
	return snapshot
}

func (s *memStore) Len() int {
	return len(s.entries)
}

func (s *memStore) Save() error {
	return nil
}
