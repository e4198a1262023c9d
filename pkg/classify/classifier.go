package classify

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/isaacfidler/cratedig/pkg/config"
	"github.com/isaacfidler/cratedig/pkg/errors"
	"github.com/isaacfidler/cratedig/pkg/types"
)

// maxSearchParts bounds how many path components feed the instrument
// search text: the filename stem plus up to four ancestor folders.
const maxSearchParts = 5

// category is one compiled instrument category with its ordered patterns.
type category struct {
	name     string
	patterns []*regexp.Regexp
}

// genreEntry is one compiled genre with the category path it maps to.
type genreEntry struct {
	path     types.CategoryPath
	patterns []*regexp.Regexp
}

// Classifier maps source paths to classifications. Safe for concurrent use
// once constructed; it holds no mutable state.
type Classifier struct {
	sourceRoot     string
	unmatchedKind  string
	skipFolders    map[string]bool
	loopMarkers    []string
	oneShotMarkers []string
	oneShots       []category
	loops          []category
	genres         []genreEntry
	bpmPrefix      *regexp.Regexp
}

// New compiles the configured taxonomy into a Classifier. sourceRoot is
// the watched library root; pack names are the first path segment below it.
func New(cfg config.Classify, sourceRoot string) (*Classifier, error) {
	c := &Classifier{
		sourceRoot:    filepath.Clean(sourceRoot),
		unmatchedKind: cfg.UnmatchedKind,
		skipFolders:   make(map[string]bool, len(cfg.SkipFolders)),
		bpmPrefix:     regexp.MustCompile(`^\d{2,3}_`),
	}
	for _, f := range cfg.SkipFolders {
		c.skipFolders[strings.ToLower(f)] = true
	}
	for _, m := range cfg.LoopMarkers {
		c.loopMarkers = append(c.loopMarkers, "/"+strings.ToLower(m)+"/")
	}
	for _, m := range cfg.OneShotMarkers {
		c.oneShotMarkers = append(c.oneShotMarkers, "/"+strings.ToLower(m)+"/")
	}

	var err error
	if c.oneShots, err = compileCategories(cfg.OneShots); err != nil {
		return nil, err
	}
	if c.loops, err = compileCategories(cfg.Loops); err != nil {
		return nil, err
	}

	for _, group := range cfg.Genres {
		for _, entry := range group.Entries {
			compiled, err := compilePatterns(entry.Name, entry.Patterns)
			if err != nil {
				return nil, err
			}
			c.genres = append(c.genres, genreEntry{
				path:     types.CategoryPath("Genres/" + group.Group + "/" + entry.Name),
				patterns: compiled,
			})
		}
	}

	return c, nil
}

func compileCategories(rules []config.CategoryRule) ([]category, error) {
	out := make([]category, 0, len(rules))
	for _, rule := range rules {
		compiled, err := compilePatterns(rule.Name, rule.Patterns)
		if err != nil {
			return nil, err
		}
		out = append(out, category{name: rule.Name, patterns: compiled})
	}
	return out, nil
}

func compilePatterns(name string, patterns []string) ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigValid,
				"invalid pattern %q for category %s", p, name)
		}
		out = append(out, re)
	}
	return out, nil
}

// Classify derives the classification for one source path. Total: every
// path yields a result, unmatched signals fall back to default buckets.
func (c *Classifier) Classify(sourcePath string) types.Classification {
	kind := c.detectKind(sourcePath)

	result := types.Classification{
		Kind:   kind,
		Genres: c.detectGenres(sourcePath),
	}
	if kind != types.KindUnknown {
		result.Instrument = c.categorize(sourcePath, kind)
	}
	return result
}

// detectKind decides one-shot vs loop: path segment markers first (most
// reliable), then filename heuristics, then the configured policy for
// unmatched files.
func (c *Classifier) detectKind(sourcePath string) types.SampleKind {
	pathLower := "/" + strings.ToLower(filepath.ToSlash(sourcePath)) + "/"

	for _, marker := range c.loopMarkers {
		if strings.Contains(pathLower, marker) {
			return types.KindLoop
		}
	}
	for _, marker := range c.oneShotMarkers {
		if strings.Contains(pathLower, marker) {
			return types.KindOneShot
		}
	}

	stem := strings.ToLower(stemOf(sourcePath))
	if strings.Contains(stem, "_loop") || strings.Contains(stem, "loop_") {
		return types.KindLoop
	}
	// A 2-3 digit prefix is almost always a BPM marker, and BPM-tagged
	// files are loops
	if c.bpmPrefix.MatchString(stem) {
		return types.KindLoop
	}

	if c.unmatchedKind == config.UnmatchedUnclassified {
		return types.KindUnknown
	}
	return types.KindOneShot
}

// categorize picks the single best-match instrument category. Table order
// is the tie-break: the first category with a matching pattern wins.
func (c *Classifier) categorize(sourcePath string, kind types.SampleKind) string {
	searchText := c.instrumentSearchText(sourcePath)

	table := c.oneShots
	if kind == types.KindLoop {
		table = c.loops
	}

	for _, cat := range table {
		for _, re := range cat.patterns {
			if re.MatchString(searchText) {
				return cat.name
			}
		}
	}
	return "Other"
}

// detectGenres matches the pack name and folder structure against every
// genre entry. Multi-match by design: one keyword may fan a file out into
// several genre directories.
func (c *Classifier) detectGenres(sourcePath string) []types.CategoryPath {
	searchText := c.genreSearchText(sourcePath)
	if searchText == "" {
		return nil
	}

	var matched []types.CategoryPath
	for _, entry := range c.genres {
		for _, re := range entry.patterns {
			if re.MatchString(searchText) {
				matched = append(matched, entry.path)
				break
			}
		}
	}
	return matched
}

// instrumentSearchText joins the filename stem with its nearest ancestor
// folder names, skipping structural folders, bounded to maxSearchParts.
func (c *Classifier) instrumentSearchText(sourcePath string) string {
	parts := []string{stemOf(sourcePath)}

	for _, segment := range reverse(c.relSegments(sourcePath)) {
		if len(parts) >= maxSearchParts {
			break
		}
		parts = append(parts, segment)
	}

	return strings.ToLower(strings.Join(parts, " "))
}

// genreSearchText is built from the directory structure only: the pack
// name carries most of the genre signal, so it comes first. The filename
// stem is deliberately excluded; sample names are full of false genre
// tokens ("trap_kick", "house_snare").
func (c *Classifier) genreSearchText(sourcePath string) string {
	return strings.ToLower(strings.Join(c.relSegments(sourcePath), " "))
}

// relSegments returns the directory segments of sourcePath under the
// source root, structural folders removed, pack name first. Paths outside
// the root fall back to their full directory chain.
func (c *Classifier) relSegments(sourcePath string) []string {
	dir := filepath.Dir(sourcePath)
	rel, err := filepath.Rel(c.sourceRoot, dir)
	if err != nil || strings.HasPrefix(rel, "..") {
		rel = dir
	}

	var segments []string
	for _, seg := range strings.Split(filepath.ToSlash(rel), "/") {
		if seg == "" || seg == "." || seg == ".." {
			continue
		}
		if c.skipFolders[strings.ToLower(seg)] {
			continue
		}
		segments = append(segments, seg)
	}
	return segments
}

func stemOf(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func reverse(s []string) []string {
	out := make([]string, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}
