package types

// CategoryPath identifies one taxonomy leaf relative to the organized root,
// e.g. "One_Shots/Kicks", "Genres/Electronic/Dubstep", "All". The set of
// valid category paths is fixed by configuration; categories are never
// created dynamically.
type CategoryPath string

// String returns the category path as a plain string.
func (c CategoryPath) String() string { return string(c) }

// Branch returns the top-level directory of the category path
// ("All", "One_Shots", "Loops", "Genres", "Unclassified").
func (c CategoryPath) Branch() string {
	for i := 0; i < len(c); i++ {
		if c[i] == '/' {
			return string(c[:i])
		}
	}
	return string(c)
}

// Well-known category paths.
const (
	CategoryAll          CategoryPath = "All"
	CategoryGenreOther   CategoryPath = "Genres/Other"
	CategoryUnclassified CategoryPath = "Unclassified"
)

// SampleKind distinguishes one-shots from loops.
type SampleKind int

const (
	// KindOneShot is a single-hit, non-looping sample.
	KindOneShot SampleKind = iota
	// KindLoop is a repeating, tempo-locked segment.
	KindLoop
	// KindUnknown means neither path markers nor filename heuristics
	// fired. Only produced when the unmatched-kind policy is set to
	// "unclassified"; the default policy folds unknowns into KindOneShot.
	KindUnknown
)

// String implements fmt.Stringer.
func (k SampleKind) String() string {
	switch k {
	case KindOneShot:
		return "one-shot"
	case KindLoop:
		return "loop"
	default:
		return "unknown"
	}
}

// Classification is the result of classifying one source file. It is a pure
// value: the classifier derives it from the path alone.
type Classification struct {
	// Kind is the one-shot/loop decision after the unmatched policy has
	// been applied.
	Kind SampleKind

	// Instrument is the single best-match instrument category within the
	// kind's taxonomy branch ("Kicks", "Bass", ...), or "Other".
	Instrument string

	// Genres holds every matched genre category path, in table order,
	// deduplicated. Empty means the file fell back to Genres/Other.
	Genres []CategoryPath
}

// Categories returns every destination category path the file belongs to:
// All, the kind/instrument leaf, and each genre (or Genres/Other).
func (c Classification) Categories() []CategoryPath {
	out := make([]CategoryPath, 0, len(c.Genres)+3)
	out = append(out, CategoryAll)

	switch c.Kind {
	case KindLoop:
		out = append(out, CategoryPath("Loops/"+c.Instrument))
	case KindOneShot:
		out = append(out, CategoryPath("One_Shots/"+c.Instrument))
	case KindUnknown:
		out = append(out, CategoryUnclassified)
	}

	if len(c.Genres) == 0 {
		out = append(out, CategoryGenreOther)
	} else {
		out = append(out, c.Genres...)
	}
	return out
}
