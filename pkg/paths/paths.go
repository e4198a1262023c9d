// Package paths provides centralized path handling for cratedig: where the
// watched sample library lives, where the organized link tree goes, and
// where the persisted link index sits. Resolution order for both roots is
// explicit override (CLI flag), environment variable, config file value,
// then the built-in default under the user's home directory.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/isaacfidler/cratedig/pkg/config"
	"github.com/isaacfidler/cratedig/pkg/errors"
	"github.com/isaacfidler/cratedig/pkg/types"
)

// Environment variable names
const (
	// EnvSourceDir overrides the watched sample library root
	EnvSourceDir = "CRATEDIG_SOURCE_DIR"

	// EnvOrganizedDir overrides the organized link tree root
	EnvOrganizedDir = "CRATEDIG_ORGANIZED_DIR"
)

// Default directories and files
const (
	// StateFileName is the persisted link index, kept inside the
	// organized root so the index travels with the tree it describes.
	StateFileName = ".cratedig-state.toml"

	// DefaultSourceRel is the default sample library location relative
	// to the user's home directory (the Splice desktop app's layout).
	DefaultSourceRel = "Splice/sounds/packs"

	// DefaultOrganizedRel is the default organized root relative to the
	// user's home directory.
	DefaultOrganizedRel = "Splice-Organized"
)

// Options carries explicit overrides, typically from CLI flags. Empty
// fields defer to environment, config, and defaults.
type Options struct {
	SourceRoot    string
	OrganizedRoot string
}

// Paths implements types.Pather for a resolved pair of roots.
type Paths struct {
	sourceRoot    string
	organizedRoot string
}

var _ types.Pather = (*Paths)(nil)

// New resolves both roots and verifies the source root exists: organizing
// an absent library is always a user error, while the organized root is
// created on demand.
func New(cfg *config.Config, opts Options) (*Paths, error) {
	p, err := Resolve(cfg, opts)
	if err != nil {
		return nil, err
	}
	if info, err := os.Stat(p.sourceRoot); err != nil || !info.IsDir() {
		return nil, errors.Newf(errors.ErrNotFound, "source root not found: %s", p.sourceRoot)
	}
	return p, nil
}

// Resolve builds Paths without checking the source root, for read-only
// commands that only consult the store.
func Resolve(cfg *config.Config, opts Options) (*Paths, error) {
	source := firstNonEmpty(
		opts.SourceRoot,
		os.Getenv(EnvSourceDir),
		cfg.Paths.SourceRoot,
		filepath.Join(xdg.Home, DefaultSourceRel),
	)
	organized := firstNonEmpty(
		opts.OrganizedRoot,
		os.Getenv(EnvOrganizedDir),
		cfg.Paths.OrganizedRoot,
		filepath.Join(xdg.Home, DefaultOrganizedRel),
	)

	source, err := filepath.Abs(source)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid source root %s", source)
	}
	organized, err = filepath.Abs(organized)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid organized root %s", organized)
	}

	return &Paths{sourceRoot: source, organizedRoot: organized}, nil
}

// NewUnchecked builds Paths without touching the filesystem. Used by tests
// and by read-only commands that only consult the store.
func NewUnchecked(sourceRoot, organizedRoot string) *Paths {
	return &Paths{sourceRoot: sourceRoot, organizedRoot: organizedRoot}
}

// SourceRoot returns the watched sample library root.
func (p *Paths) SourceRoot() string { return p.sourceRoot }

// OrganizedRoot returns the root of the organized link tree.
func (p *Paths) OrganizedRoot() string { return p.organizedRoot }

// StateFilePath returns the path of the persisted link index.
func (p *Paths) StateFilePath() string {
	return filepath.Join(p.organizedRoot, StateFileName)
}

// CategoryDir returns the absolute directory for a category path.
func (p *Paths) CategoryDir(category types.CategoryPath) string {
	return filepath.Join(p.organizedRoot, filepath.FromSlash(category.String()))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
