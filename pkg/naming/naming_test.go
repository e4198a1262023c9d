package naming

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const root = "/library"

func TestPackName(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{
			name: "top-level folder is the pack",
			path: "/library/Deep_House_Vol2/One_Shots/kick.wav",
			want: "Deep_House_Vol2",
		},
		{
			name: "file directly under the root has no pack",
			path: "/library/stray.wav",
			want: UnknownPack,
		},
		{
			name: "file outside the root has no pack",
			path: "/elsewhere/Pack/kick.wav",
			want: UnknownPack,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PackName(tt.path, root))
		})
	}
}

func TestLinkName(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{
			name: "pack prefix with double underscore",
			path: "/library/808_Essentials/One_Shots/drums_kick_punch.wav",
			want: "808_Essentials__drums_kick_punch.wav",
		},
		{
			name: "unsafe characters are sanitized",
			path: "/library/Lo-Fi & Chill (Vol. 2)/kick one.wav",
			want: "Lo-Fi___Chill__Vol__2___kick one.wav",
		},
		{
			name: "stray file gets the unknown prefix",
			path: "/library/stray.wav",
			want: "Unknown__stray.wav",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LinkName(tt.path, root))
		})
	}
}

func TestLinkNameTruncatesLongPack(t *testing.T) {
	pack := strings.Repeat("X", 50)
	got := LinkName("/library/"+pack+"/kick.wav", root)
	assert.Equal(t, strings.Repeat("X", maxPackPrefix)+"__kick.wav", got)
}

func TestSuffixed(t *testing.T) {
	assert.Equal(t, "Pack__kick__2.wav", Suffixed("Pack__kick.wav", 2))
	assert.Equal(t, "Pack__kick__10.wav", Suffixed("Pack__kick.wav", 10))
	assert.Equal(t, "noext__3", Suffixed("noext", 3))
}

func TestDisambiguate(t *testing.T) {
	paths := []string{
		"/library/Pack/One_Shots/kick.wav",
		"/library/Pack/Loops/kick.wav",
		"/library/Pack/Extras/kick.wav",
		"/library/Other_Pack/kick.wav",
	}

	names := Disambiguate(paths, root)

	// Same pack, same base name: suffixes in source-path order
	assert.Equal(t, "Pack__kick__2.wav", names["/library/Pack/Loops/kick.wav"])
	assert.Equal(t, "Pack__kick__3.wav", names["/library/Pack/One_Shots/kick.wav"])
	assert.Equal(t, "Pack__kick.wav", names["/library/Pack/Extras/kick.wav"])

	// Different pack never collides
	assert.Equal(t, "Other_Pack__kick.wav", names["/library/Other_Pack/kick.wav"])
}

func TestDisambiguateIsOrderIndependent(t *testing.T) {
	forward := []string{
		"/library/Pack/a/kick.wav",
		"/library/Pack/b/kick.wav",
		"/library/Pack/c/kick.wav",
	}
	backward := []string{forward[2], forward[0], forward[1]}

	assert.Equal(t, Disambiguate(forward, root), Disambiguate(backward, root))
}
