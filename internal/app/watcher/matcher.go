package watcher

import (
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// Editor swap and backup files written next to the config
var editorArtifacts = []string{"*.swp", "*.swx", "*~", ".#*", "#*#"}

// Matcher decides whether a changed file in the config directory is relevant
type Matcher interface {
	Match(path string) bool
}

type matcher struct {
	includes []glob.Glob
	ignores  []glob.Glob
}

// NewMatcher compiles include and ignore patterns, editor artifacts are always ignored
func NewMatcher(includes, ignores []string) (Matcher, error) {
	m := &matcher{}

	for _, p := range includes {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, err
		}

		m.includes = append(m.includes, g)
	}

	skip := make([]string, 0, len(ignores)+len(editorArtifacts))
	skip = append(skip, ignores...)
	skip = append(skip, editorArtifacts...)

	for _, p := range skip {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, err
		}

		m.ignores = append(m.ignores, g)
	}

	return m, nil
}

// Match compares the base name of path against the patterns, ignores win
func (m *matcher) Match(path string) bool {
	name := baseName(path)
	if name == "" {
		return false
	}

	for _, g := range m.ignores {
		if g.Match(name) {
			return false
		}
	}

	for _, g := range m.includes {
		if g.Match(name) {
			return true
		}
	}

	return false
}

func baseName(path string) string {
	path = strings.TrimSuffix(filepath.ToSlash(path), "/")
	if i := strings.LastIndex(path, "/"); i >= 0 {
		path = path[i+1:]
	}

	if path == "." {
		return ""
	}

	return path
}
