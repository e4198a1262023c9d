package classify

import (
	"github.com/isaacfidler/cratedig/pkg/config"
	"github.com/isaacfidler/cratedig/pkg/types"
)

// Taxonomy returns the complete, fixed set of category paths the
// configuration defines. The reconciler pre-creates all of them so the
// organized tree is browsable even before any sample lands in a bucket.
func Taxonomy(cfg config.Classify) []types.CategoryPath {
	var out []types.CategoryPath

	out = append(out, types.CategoryAll)

	for _, rule := range cfg.OneShots {
		out = append(out, types.CategoryPath("One_Shots/"+rule.Name))
	}
	out = append(out, "One_Shots/Other")

	for _, rule := range cfg.Loops {
		out = append(out, types.CategoryPath("Loops/"+rule.Name))
	}
	out = append(out, "Loops/Other")

	for _, group := range cfg.Genres {
		for _, entry := range group.Entries {
			out = append(out, types.CategoryPath("Genres/"+group.Group+"/"+entry.Name))
		}
	}
	out = append(out, types.CategoryGenreOther)

	if cfg.UnmatchedKind == config.UnmatchedUnclassified {
		out = append(out, types.CategoryUnclassified)
	}

	return out
}
