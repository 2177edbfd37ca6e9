// Package header contains the file-level collaborators around the prototype
// core: companion source file resolution, header guard detection, and
// include insertion.
package header

import (
	"os"
	"path/filepath"
	"strings"
)

// Extensions probed when resolving a header's companion source file, in
// preference order.
var sourceExts = []string{".cpp", ".cc", ".cxx", ".c"}

// HeaderExts lists the extensions treated as C/C++ headers.
var HeaderExts = []string{".h", ".hpp", ".hh", ".hxx"}

// IsHeader reports whether path has a header extension.
func IsHeader(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, h := range HeaderExts {
		if ext == h {
			return true
		}
	}
	return false
}

// IsSource reports whether path has a source extension.
func IsSource(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, s := range sourceExts {
		if ext == s {
			return true
		}
	}
	return false
}

// SourceCandidates returns the ordered list of companion source paths probed
// for a header: same directory, a src/ child, a sibling ../src, the parent
// directory, then any caller-supplied extra directories.
func SourceCandidates(headerPath string, extraDirs []string) []string {
	dir := filepath.Dir(headerPath)
	base := strings.TrimSuffix(filepath.Base(headerPath), filepath.Ext(headerPath))

	dirs := []string{
		dir,
		filepath.Join(dir, "src"),
		filepath.Join(filepath.Dir(dir), "src"),
		filepath.Dir(dir),
	}
	dirs = append(dirs, extraDirs...)

	var out []string
	for _, d := range dirs {
		for _, ext := range sourceExts {
			out = append(out, filepath.Join(d, base+ext))
		}
	}
	return out
}

// ResolveSourceFile probes the candidates and returns the first that exists.
func ResolveSourceFile(headerPath string, extraDirs []string) (string, bool) {
	for _, c := range SourceCandidates(headerPath, extraDirs) {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			return c, true
		}
	}
	return "", false
}

// DefaultSourcePath is where a companion source file is created when none of
// the candidates exist: next to the header.
func DefaultSourcePath(headerPath string) string {
	return strings.TrimSuffix(headerPath, filepath.Ext(headerPath)) + sourceExts[0]
}
