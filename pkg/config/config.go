package config

// Paths holds the two roots the engine operates between. Empty values mean
// "use the built-in default under the user's home directory"; resolution
// happens in pkg/paths, not here.
type Paths struct {
	SourceRoot    string `koanf:"source_root"`
	OrganizedRoot string `koanf:"organized_root"`
}

// CategoryRule maps one instrument category to the patterns that select it.
// Order within the enclosing table is the classification tie-break: the
// first category whose pattern fires wins.
type CategoryRule struct {
	Name     string   `koanf:"name"`
	Patterns []string `koanf:"patterns"`
}

// GenreGroup is one genre family (Electronic, Live) with its genre entries.
type GenreGroup struct {
	Group   string         `koanf:"group"`
	Entries []CategoryRule `koanf:"entries"`
}

// UnmatchedKind values for Classify.UnmatchedKind.
const (
	UnmatchedOneShot      = "oneshot"
	UnmatchedUnclassified = "unclassified"
)

// Classify holds the full classification taxonomy: kind markers,
// instrument tables for both kinds, and the genre keyword tables.
type Classify struct {
	Extensions     []string       `koanf:"extensions"`
	UnmatchedKind  string         `koanf:"unmatched_kind"`
	SkipFolders    []string       `koanf:"skip_folders"`
	LoopMarkers    []string       `koanf:"loop_markers"`
	OneShotMarkers []string       `koanf:"oneshot_markers"`
	OneShots       []CategoryRule `koanf:"one_shots"`
	Loops          []CategoryRule `koanf:"loops"`
	Genres         []GenreGroup   `koanf:"genres"`
}

// Config is the main configuration structure. It is loaded once at process
// start and passed explicitly to the components that need it; nothing reads
// configuration from ambient globals.
type Config struct {
	Paths    Paths    `koanf:"paths"`
	Classify Classify `koanf:"classify"`
}
