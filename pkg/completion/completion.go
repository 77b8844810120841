// Package completion post-processes shell-completion candidates: filtering by
// the typed prefix, deduplicating, ordering, and marking complete values with
// the trailing-space convention.
package completion

import (
	"os"
	"sort"
	"strings"
)

// Finalize turns a raw candidate set into the final suggestion list: sorted,
// deduplicated, and suffixed. A candidate already ending in a space (complete
// value) or a path separator (directory to descend into) keeps its suffix;
// everything else gets a trailing space appended.
func Finalize(candidates []string) []string {
	seen := make(map[string]struct{}, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if !strings.HasSuffix(c, " ") && !strings.HasSuffix(c, string(os.PathSeparator)) {
			c += " "
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// FilterPrefix keeps only candidates that start with prefix. Suffix markers
// (trailing space or path separator) are ignored for the comparison.
func FilterPrefix(candidates []string, prefix string) []string {
	if prefix == "" {
		return candidates
	}
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if strings.HasPrefix(strings.TrimRight(c, " "), prefix) {
			out = append(out, c)
		}
	}
	return out
}

// Strip removes the suffix markers, returning the bare values. Useful when
// handing candidates to a completion engine that manages spacing itself.
func Strip(candidates []string) []string {
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = strings.TrimRight(c, " ")
	}
	return out
}
