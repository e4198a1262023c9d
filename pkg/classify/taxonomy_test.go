package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/isaacfidler/cratedig/pkg/config"
	"github.com/isaacfidler/cratedig/pkg/types"
)

func TestTaxonomy(t *testing.T) {
	cfg := testClassify()
	taxonomy := Taxonomy(cfg)

	assert.Contains(t, taxonomy, types.CategoryAll)
	assert.Contains(t, taxonomy, types.CategoryPath("One_Shots/Kicks"))
	assert.Contains(t, taxonomy, types.CategoryPath("One_Shots/Other"))
	assert.Contains(t, taxonomy, types.CategoryPath("Loops/Drums"))
	assert.Contains(t, taxonomy, types.CategoryPath("Loops/Other"))
	assert.Contains(t, taxonomy, types.CategoryPath("Genres/Electronic/Dubstep"))
	assert.Contains(t, taxonomy, types.CategoryPath("Genres/Live/Jazz"))
	assert.Contains(t, taxonomy, types.CategoryGenreOther)

	// The Unclassified branch only exists under the unclassified policy
	assert.NotContains(t, taxonomy, types.CategoryUnclassified)

	cfg.UnmatchedKind = config.UnmatchedUnclassified
	assert.Contains(t, Taxonomy(cfg), types.CategoryUnclassified)
}
