package assets

import (
	"io/fs"
	"maps"
	"path"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/otml-format/go-otml/debug"
	"github.com/otml-format/go-otml/ir"
)

// LikelyDirs are conventional images-base directory names, probed in
// this order. The order is a priority and is part of the contract.
var LikelyDirs = []string{"images", "textures", "icons", "img", "resources", "assets"}

// ImageExts are the recognized image file extensions, in the order
// extension inference tries them during resolution.
var ImageExts = []string{".png", ".jpg", ".jpeg", ".bmp", ".webp", ".gif"}

// ScriptExt is the scripting-language extension scanned by the third
// discovery strategy.
const ScriptExt = ".lua"

// scriptImageRef extracts double-quoted string literals ending in an
// image extension from script text.
var scriptImageRef = regexp.MustCompile(`(?i)"([^"]+\.(?:png|jpg|jpeg|bmp|gif|webp))"`)

// DiscoverBase heuristically picks the images base for a document
// living in docDir. Three strategies run in order, first success
// wins: conventional directory names, basename frequency against the
// tree's image references, and image literals referenced from Lua
// scripts. The result is a snapshot; nothing is cached across calls.
func DiscoverBase(fsys FS, docDir string, root *ir.Node) (string, bool) {
	if p, ok := likelyBase(fsys, docDir); ok {
		if debug.Discover() {
			debug.Logf("discover: likely dir %q\n", p)
		}
		return p, true
	}
	if p, ok := basenameBase(fsys, docDir, root); ok {
		if debug.Discover() {
			debug.Logf("discover: basename scan %q\n", p)
		}
		return p, true
	}
	if p, ok := scriptBase(fsys, docDir); ok {
		if debug.Discover() {
			debug.Logf("discover: script scan %q\n", p)
		}
		return p, true
	}
	return "", false
}

func likelyBase(fsys FS, docDir string) (string, bool) {
	for _, d := range LikelyDirs {
		p := filepath.Join(docDir, d)
		if fsys.IsDir(p) {
			return p, true
		}
	}
	return "", false
}

// basenameBase walks every directory under docDir and counts entries
// whose basename appears among the tree's image references. The walk
// visits directories in lexicographic order and only a strictly
// greater count displaces the best, so ties resolve to the first
// directory in that order and repeated runs agree.
func basenameBase(fsys FS, docDir string, root *ir.Node) (string, bool) {
	names := map[string]bool{}
	for _, v := range ImageSources(root) {
		names[path.Base(strings.ReplaceAll(v, `\`, "/"))] = true
	}
	if len(names) == 0 {
		return "", false
	}
	best, bestCount := "", 0
	walkDirs(fsys, docDir, func(dir string, entries []fs.DirEntry) bool {
		count := 0
		for _, e := range entries {
			if !e.IsDir() && names[e.Name()] {
				count++
			}
		}
		if count > bestCount {
			best, bestCount = dir, count
		}
		return true
	})
	return best, bestCount > 0
}

// scriptBase scans Lua scripts for quoted image paths. Each match
// votes for the parent directory of the path joined to the script's
// directory; the existing directory with the most votes wins, ties
// broken lexicographically. Unreadable scripts are skipped.
func scriptBase(fsys FS, docDir string) (string, bool) {
	hits := map[string]int{}
	walkDirs(fsys, docDir, func(dir string, entries []fs.DirEntry) bool {
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ScriptExt) {
				continue
			}
			d, err := fsys.ReadFile(filepath.Join(dir, e.Name()))
			if err != nil {
				continue
			}
			for _, m := range scriptImageRef.FindAllStringSubmatch(string(d), -1) {
				ref := strings.ReplaceAll(m[1], `\`, "/")
				folder := filepath.Dir(filepath.Join(dir, filepath.FromSlash(ref)))
				hits[folder]++
			}
		}
		return true
	})
	best, bestCount := "", 0
	for _, folder := range slices.Sorted(maps.Keys(hits)) {
		if hits[folder] > bestCount && fsys.IsDir(folder) {
			best, bestCount = folder, hits[folder]
		}
	}
	return best, bestCount > 0
}
