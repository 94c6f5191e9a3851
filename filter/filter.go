package filter

import (
	"path/filepath"
	"strings"
)

// Policy decides what happens to files when the allow-list is empty
type Policy int

const (
	// ExplicitOnly passes everything through unless an allow-list is given
	ExplicitOnly Policy = iota
	// DropExtensionless also removes files without an extension when no
	// allow-list is given. Older releases behaved this way.
	DropExtensionless
)

// Extension returns the lower-cased text after the last '.' of the base
// name. Dotfiles like ".bashrc" and names ending in '.' have none.
func Extension(path string) (string, bool) {
	base := filepath.Base(path)
	i := strings.LastIndexByte(base, '.')
	if i <= 0 || i == len(base)-1 {
		return "", false
	}
	return strings.ToLower(base[i+1:]), true
}

// Filter keeps the paths whose extension is in allow, compared
// case-insensitively. Relative order is preserved.
func Filter(paths []string, allow []string, policy Policy) []string {
	if len(allow) == 0 {
		if policy != DropExtensionless {
			return paths
		}
		kept := make([]string, 0, len(paths))
		for _, p := range paths {
			if _, ok := Extension(p); ok {
				kept = append(kept, p)
			}
		}
		return kept
	}

	set := make(map[string]struct{}, len(allow))
	for _, ext := range allow {
		set[strings.ToLower(ext)] = struct{}{}
	}

	kept := make([]string, 0, len(paths))
	for _, p := range paths {
		ext, ok := Extension(p)
		if !ok {
			continue
		}
		if _, allowed := set[ext]; allowed {
			kept = append(kept, p)
		}
	}
	return kept
}
