// Package naming derives destination link filenames. A link is named
// {pack}__{original} so files from different packs never collide on a
// generic name like kick_01.wav without consulting the destination
// directory. Genuine collisions (same pack, same base name) get stable
// numeric suffixes.
package naming

import (
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// maxPackPrefix caps the sanitized pack-name prefix length.
const maxPackPrefix = 30

// UnknownPack is the prefix for files that sit directly under the source
// root, outside any pack directory.
const UnknownPack = "Unknown"

var nonWord = regexp.MustCompile(`[^\w\-]`)

// PackName returns the top-level folder of sourcePath relative to
// sourceRoot, or UnknownPack when the file is not inside a pack.
func PackName(sourcePath, sourceRoot string) string {
	rel, err := filepath.Rel(filepath.Clean(sourceRoot), sourcePath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return UnknownPack
	}
	segments := strings.Split(filepath.ToSlash(rel), "/")
	if len(segments) < 2 {
		return UnknownPack
	}
	return segments[0]
}

// LinkName derives the destination filename for a source file:
// sanitized pack prefix, double underscore, original base name.
func LinkName(sourcePath, sourceRoot string) string {
	return sanitizePack(PackName(sourcePath, sourceRoot)) + "__" + filepath.Base(sourcePath)
}

// Disambiguate assigns final link names to a batch of source paths.
// Paths whose derived names collide (same pack, same base name) receive
// __2, __3, ... suffixes before the extension, in lexicographic order of
// full source path, so repeated runs produce identical names.
func Disambiguate(sourcePaths []string, sourceRoot string) map[string]string {
	byName := make(map[string][]string)
	for _, p := range sourcePaths {
		name := LinkName(p, sourceRoot)
		byName[name] = append(byName[name], p)
	}

	out := make(map[string]string, len(sourcePaths))
	for name, paths := range byName {
		if len(paths) == 1 {
			out[paths[0]] = name
			continue
		}
		sort.Strings(paths)
		for i, p := range paths {
			if i == 0 {
				out[p] = name
				continue
			}
			out[p] = Suffixed(name, i+1)
		}
	}
	return out
}

// Suffixed returns name with a numeric collision suffix inserted before
// the extension: Suffixed("a__kick.wav", 2) == "a__kick__2.wav".
func Suffixed(name string, n int) string {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	return stem + "__" + strconv.Itoa(n) + ext
}

func sanitizePack(pack string) string {
	safe := nonWord.ReplaceAllString(pack, "_")
	if len(safe) > maxPackPrefix {
		safe = safe[:maxPackPrefix]
	}
	return safe
}
