// Package fspath resolves user-supplied paths to absolute form and browses
// directory entries for filename completion.
package fspath

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Resolve expands the `~` home-directory shorthand and relative segments,
// returning an absolute path.
func Resolve(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~"+string(os.PathSeparator)) || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[1:])
	}
	return filepath.Abs(path)
}

// Browse lists filesystem entries whose name starts with the last segment of
// prefix, searching the directory named by the rest of it (the current
// directory when prefix has no separator). Directory entries carry a trailing
// path separator, file entries a trailing space. An unreadable directory
// yields no candidates; completion has no error channel.
func Browse(prefix string) []string {
	dir, base := filepath.Split(prefix)
	searchDir := dir
	if searchDir == "" {
		searchDir = "."
	}
	entries, err := os.ReadDir(searchDir)
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, base) {
			continue
		}
		if e.IsDir() {
			out = append(out, dir+name+string(os.PathSeparator))
		} else {
			out = append(out, dir+name+" ")
		}
	}
	sort.Strings(out)
	return out
}
