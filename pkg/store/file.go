package store

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"

	"github.com/isaacfidler/cratedig/pkg/errors"
	"github.com/isaacfidler/cratedig/pkg/logging"
	"github.com/isaacfidler/cratedig/pkg/types"
)

// currentVersion is the index file format version.
const currentVersion = 1

// stateFile is the on-disk TOML shape of the index.
type stateFile struct {
	Version int              `toml:"version"`
	Files   map[string]entry `toml:"files"`
}

type entry struct {
	Links []types.LinkRecord `toml:"links"`
}

// fileStore is the TOML-file-backed Store implementation.
type fileStore struct {
	memStore
	fs     types.FS
	path   string
	logger zerolog.Logger
}

var _ Store = (*fileStore)(nil)

// Load reads the index at path, falling back to an empty store when the
// file is absent or unreadable. Corruption is reported but never fatal:
// ground truth is the filesystem, and a full sync rebuilds the index.
func Load(fs types.FS, path string) Store {
	s := &fileStore{
		memStore: memStore{entries: make(map[string][]types.LinkRecord)},
		fs:       fs,
		path:     path,
		logger:   logging.GetLogger("store"),
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			coded := errors.Wrap(err, errors.ErrStoreLoad, "cannot read link index")
			s.logger.Warn().Err(coded).Str("path", path).Msg("Cannot read link index, starting empty")
		}
		return s
	}

	var parsed stateFile
	if err := toml.Unmarshal(data, &parsed); err != nil {
		coded := errors.Wrap(err, errors.ErrStoreLoad, "link index is corrupt")
		s.logger.Warn().Err(coded).Str("path", path).Msg("Link index is corrupt, starting empty")
		return s
	}

	for source, e := range parsed.Files {
		s.entries[source] = e.Links
	}

	s.logger.Debug().Int("entries", len(s.entries)).Str("path", path).Msg("Link index loaded")
	return s
}

// Save rewrites the index atomically: marshal to a temp file next to the
// index, then rename over it.
func (s *fileStore) Save() error {
	out := stateFile{
		Version: currentVersion,
		Files:   make(map[string]entry, len(s.entries)),
	}
	for source, records := range s.entries {
		out.Files[source] = entry{Links: records}
	}

	data, err := toml.Marshal(out)
	if err != nil {
		return errors.Wrap(err, errors.ErrStoreSave, "failed to encode link index")
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.Wrap(err, errors.ErrStoreSave, "failed to create index directory")
	}

	tmp := s.path + ".tmp"
	if err := s.fs.WriteFile(tmp, data, 0644); err != nil {
		return errors.Wrap(err, errors.ErrStoreSave, "failed to write link index")
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		return errors.Wrap(err, errors.ErrStoreSave, "failed to replace link index")
	}

	s.logger.Debug().Int("entries", len(s.entries)).Msg("Link index saved")
	return nil
}
