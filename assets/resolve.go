package assets

import (
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/otml-format/go-otml/debug"
)

// Resolve turns one image reference value into a concrete path.
// imagesBase may be empty when discovery failed. Candidates are
// probed in a fixed order: under imagesBase, under docDir (in both
// cases inferring an extension when the value has none), then every
// file under docDir whose basename matches case-insensitively.
// Candidates are deduplicated by canonical absolute path, preserving
// order, and the first existing one wins. A false return means the
// reference does not resolve; that is an expected outcome.
func Resolve(fsys FS, imagesBase, docDir, raw string) (string, bool) {
	v := normalizeRef(raw)
	if v == "" {
		return "", false
	}

	var cands []string
	addUnder := func(base string) {
		p := filepath.Join(base, filepath.FromSlash(v))
		if filepath.Ext(p) != "" {
			cands = append(cands, p)
			return
		}
		for _, ext := range ImageExts {
			cands = append(cands, p+ext)
		}
	}
	if imagesBase != "" {
		addUnder(imagesBase)
	}
	addUnder(docDir)

	want := strings.ToLower(path.Base(v))
	walkDirs(fsys, docDir, func(dir string, entries []fs.DirEntry) bool {
		for _, e := range entries {
			if !e.IsDir() && strings.ToLower(e.Name()) == want {
				cands = append(cands, filepath.Join(dir, e.Name()))
			}
		}
		return true
	})

	seen := map[string]bool{}
	for _, c := range cands {
		abs, err := filepath.Abs(c)
		if err != nil {
			abs = filepath.Clean(c)
		}
		if seen[abs] {
			continue
		}
		seen[abs] = true
		if fsys.Exists(abs) {
			if debug.Resolve() {
				debug.Logf("resolve: %q -> %q\n", raw, abs)
			}
			return abs, true
		}
	}
	if debug.Resolve() {
		debug.Logf("resolve: %q not found (%d candidates)\n", raw, len(cands))
	}
	return "", false
}

// normalizeRef trims, unquotes, normalizes separators to forward
// slashes and strips a leading slash so absolute-looking references
// stay inside the document tree.
func normalizeRef(raw string) string {
	v := stripQuotes(strings.TrimSpace(raw))
	v = strings.ReplaceAll(v, `\`, "/")
	return strings.TrimPrefix(v, "/")
}
