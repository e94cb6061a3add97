// Package ignore implements gitignore-style path filtering for directory
// scans, with defaults suited to javascript projects.
package ignore

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// IgnoreFileName is looked up at the scan root when no explicit ignore file
// is given.
const IgnoreFileName = ".i18nlintignore"

// Directories that never contain first-party source worth linting.
var defaultSkipDirs = map[string]bool{
	"node_modules": true,
	"dist":         true,
	"build":        true,
	"coverage":     true,
	"vendor":       true,
}

type pattern struct {
	raw     string
	negated bool
	dirOnly bool
	glob    string
}

// Matcher evaluates slash-separated, root-relative paths against ignore
// patterns. Later patterns win, so negations can re-include paths.
type Matcher struct {
	patterns []pattern
}

// LoadRoot builds a Matcher for a scan root: the root's ignore file if one
// exists, otherwise an empty matcher. A missing file is not an error.
func LoadRoot(root string) (*Matcher, error) {
	m, err := LoadFile(filepath.Join(root, IgnoreFileName))
	if errors.Is(err, fs.ErrNotExist) {
		return &Matcher{}, nil
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

// LoadFile reads patterns from a file, one per line, with # comments.
func LoadFile(path string) (*Matcher, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return Parse(lines), nil
}

// Parse builds a Matcher from raw pattern lines.
func Parse(lines []string) *Matcher {
	m := &Matcher{}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		p := pattern{raw: line}
		if strings.HasPrefix(line, "!") {
			p.negated = true
			line = line[1:]
		}
		if strings.HasSuffix(line, "/") {
			p.dirOnly = true
			line = strings.TrimSuffix(line, "/")
		}
		p.glob = line
		m.patterns = append(m.patterns, p)
	}
	return m
}

// Skip reports whether a path should be excluded from the scan. Built-in
// directory skips (node_modules and friends, plus dot-directories) apply
// before configured patterns.
func (m *Matcher) Skip(relPath string, isDir bool) bool {
	relPath = filepath.ToSlash(relPath)

	if isDir {
		base := relPath
		if idx := strings.LastIndex(relPath, "/"); idx >= 0 {
			base = relPath[idx+1:]
		}
		if defaultSkipDirs[base] {
			return true
		}
		if len(base) > 1 && strings.HasPrefix(base, ".") {
			return true
		}
	}
	return m.match(relPath, isDir)
}

func (m *Matcher) match(path string, isDir bool) bool {
	if m == nil || len(m.patterns) == 0 {
		return false
	}

	ignored := false
	for _, p := range m.patterns {
		if p.dirOnly && !isDir {
			continue
		}
		if matchGlob(p.glob, path) {
			ignored = !p.negated
		}
	}
	return ignored
}

// matchGlob applies gitignore matching: slash-less patterns match the
// basename or any path component, patterns with a slash match the full path.
func matchGlob(glob, path string) bool {
	if strings.Contains(glob, "/") {
		matched, _ := filepath.Match(glob, path)
		return matched
	}

	if matched, _ := filepath.Match(glob, filepath.Base(path)); matched {
		return true
	}
	for _, part := range strings.Split(path, "/") {
		if matched, _ := filepath.Match(glob, part); matched {
			return true
		}
	}
	return false
}
