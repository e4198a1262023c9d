package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryPathBranch(t *testing.T) {
	assert.Equal(t, "One_Shots", CategoryPath("One_Shots/Kicks").Branch())
	assert.Equal(t, "Genres", CategoryPath("Genres/Electronic/Dubstep").Branch())
	assert.Equal(t, "All", CategoryAll.Branch())
}

func TestSampleKindString(t *testing.T) {
	assert.Equal(t, "one-shot", KindOneShot.String())
	assert.Equal(t, "loop", KindLoop.String())
	assert.Equal(t, "unknown", KindUnknown.String())
}

func TestClassificationCategories(t *testing.T) {
	tests := []struct {
		name string
		c    Classification
		want []CategoryPath
	}{
		{
			name: "one-shot with genres",
			c: Classification{
				Kind:       KindOneShot,
				Instrument: "Kicks",
				Genres:     []CategoryPath{"Genres/Electronic/House"},
			},
			want: []CategoryPath{CategoryAll, "One_Shots/Kicks", "Genres/Electronic/House"},
		},
		{
			name: "loop with multiple genres",
			c: Classification{
				Kind:       KindLoop,
				Instrument: "Bass",
				Genres:     []CategoryPath{"Genres/Electronic/Dubstep", "Genres/Live/Dub"},
			},
			want: []CategoryPath{CategoryAll, "Loops/Bass", "Genres/Electronic/Dubstep", "Genres/Live/Dub"},
		},
		{
			name: "no genre falls back to Genres/Other",
			c: Classification{
				Kind:       KindOneShot,
				Instrument: "Snares",
			},
			want: []CategoryPath{CategoryAll, "One_Shots/Snares", CategoryGenreOther},
		},
		{
			name: "unknown kind lands in Unclassified",
			c: Classification{
				Kind: KindUnknown,
			},
			want: []CategoryPath{CategoryAll, CategoryUnclassified, CategoryGenreOther},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.Categories())
		})
	}
}
