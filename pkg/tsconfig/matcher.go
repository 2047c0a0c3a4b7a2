package tsconfig

import (
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"

	"github.com/tsresolve/tsconfig/pkg/types"
)

// defaultExcludes applies when a config specifies no exclude of its
// own, mirroring the compiler's defaults.
var defaultExcludes = []string{"node_modules", "bower_components", "jspm_packages"}

// tsExtensions are the extensions selected by include patterns.
// JavaScript extensions join in when allowJs is on. Entries listed in
// files bypass the extension filter entirely.
var tsExtensions = []string{".ts", ".tsx", ".mts", ".cts", ".d.ts"}
var jsExtensions = []string{".js", ".jsx", ".mjs", ".cjs"}

// Matcher reports whether paths belong to a project according to its
// files, include and exclude settings. All paths are slash-separated
// and relative to the project root.
type Matcher struct {
	root    string
	files   map[string]struct{}
	include []string
	exclude []string
	allowJs bool
	// implicit marks the "no files, no include" case where everything
	// under the root is in play.
	implicit bool
}

// NewMatcher builds a matcher for a resolved configuration. root is
// the directory patterns are relative to, normally the directory of
// cfg.Path.
func NewMatcher(cfg *types.Config, root string) *Matcher {
	m := &Matcher{root: filepath.Clean(root)}

	if cfg.CompilerOptions != nil && cfg.CompilerOptions.AllowJs != nil {
		m.allowJs = *cfg.CompilerOptions.AllowJs
	}

	if len(cfg.Files) > 0 {
		m.files = make(map[string]struct{}, len(cfg.Files))
		for _, f := range cfg.Files {
			m.files[path.Clean(filepath.ToSlash(f))] = struct{}{}
		}
	}

	for _, p := range cfg.Include {
		m.include = append(m.include, normalizePattern(p))
	}
	m.implicit = len(cfg.Files) == 0 && len(cfg.Include) == 0

	excludes := cfg.Exclude
	if excludes == nil {
		excludes = defaultExcludes
		if cfg.CompilerOptions != nil && cfg.CompilerOptions.OutDir != nil {
			excludes = append(excludes, *cfg.CompilerOptions.OutDir)
		}
	}
	for _, p := range excludes {
		m.exclude = append(m.exclude, normalizePattern(p))
	}

	return m
}

// Match reports whether rel, a root-relative path, is part of the
// project. Entries named in files always match; include patterns are
// subject to exclude patterns and the extension filter.
func (m *Matcher) Match(rel string) bool {
	rel = path.Clean(filepath.ToSlash(rel))

	if _, ok := m.files[rel]; ok {
		return true
	}

	if !m.matchesExtension(rel) {
		return false
	}
	for _, pattern := range m.exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return false
		}
	}
	if m.implicit {
		return true
	}
	for _, pattern := range m.include {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// Walk enumerates project files under the matcher's root on the given
// filesystem, sorted for stable output.
func (m *Matcher) Walk(fsys afero.Fs) ([]string, error) {
	var out []string
	err := afero.Walk(fsys, m.root, func(p string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if info.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(m.root, p)
		if err != nil {
			return err
		}
		if m.Match(rel) {
			out = append(out, filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(out)
	return out, nil
}

func (m *Matcher) matchesExtension(rel string) bool {
	for _, ext := range tsExtensions {
		if strings.HasSuffix(rel, ext) {
			return true
		}
	}
	if m.allowJs {
		for _, ext := range jsExtensions {
			if strings.HasSuffix(rel, ext) {
				return true
			}
		}
	}
	return false
}

// normalizePattern widens bare directory names the way the compiler
// does: "src" selects everything under src.
func normalizePattern(p string) string {
	p = path.Clean(filepath.ToSlash(p))
	if !strings.ContainsAny(p, "*?[{") && path.Ext(p) == "" {
		p = path.Join(p, "**", "*")
	}
	return p
}
