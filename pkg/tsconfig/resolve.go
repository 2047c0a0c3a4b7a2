package tsconfig

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/tidwall/jsonc"

	"github.com/tsresolve/tsconfig/internal/logging"
	"github.com/tsresolve/tsconfig/pkg/types"
)

// Resolver loads a tsconfig file and folds its extends chain into a
// single effective configuration. The zero-cost default reads the OS
// filesystem; tests and embedders can substitute any afero.Fs.
//
// A Resolver holds no mutable state across calls, so one instance may
// serve concurrent resolutions.
type Resolver struct {
	fs afero.Fs
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithFs substitutes the filesystem the resolver reads from.
func WithFs(fs afero.Fs) Option {
	return func(r *Resolver) { r.fs = fs }
}

// NewResolver returns a resolver reading the OS filesystem unless an
// option says otherwise.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{fs: afero.NewOsFs()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ParseFile resolves and materializes the configuration rooted at
// path using the OS filesystem.
func ParseFile(path string) (*types.Config, error) {
	return NewResolver().ParseFile(path)
}

// ParseFile resolves the extends chain rooted at path and returns the
// typed effective configuration. Any failure along the chain — an
// unreadable file, malformed JSONC, an unlocatable extends target, a
// cycle, or a field of the wrong shape — aborts the whole call.
func (r *Resolver) ParseFile(path string) (*types.Config, error) {
	abs, err := r.canonicalize(path)
	if err != nil {
		return nil, err
	}
	tree, err := r.load(abs, nil)
	if err != nil {
		return nil, err
	}
	cfg, err := Materialize(tree)
	if err != nil {
		return nil, err
	}
	cfg.Path = abs
	return cfg, nil
}

// EffectiveValue resolves the extends chain rooted at path and
// returns the merged generic tree with extends consumed, skipping the
// typed projection. Useful for serialization that must preserve key
// order and unknown fields exactly.
func (r *Resolver) EffectiveValue(path string) (*Value, error) {
	abs, err := r.canonicalize(path)
	if err != nil {
		return nil, err
	}
	return r.load(abs, nil)
}

// load reads one file, resolves its ancestors depth-first, and folds
// them underneath it. chain carries the canonical paths already on
// the current descent for cycle detection; it is owned by this call
// stack alone.
func (r *Resolver) load(path string, chain []string) (*Value, error) {
	for _, seen := range chain {
		if seen == path {
			cycle := append(append([]string(nil), chain...), path)
			return nil, &CircularExtendsError{Chain: cycle}
		}
	}
	chain = append(chain, path)

	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	tree, err := parseBytes(path, data)
	if err != nil {
		return nil, err
	}
	logging.Debug().Str("path", path).Int("depth", len(chain)).Msg("loaded config")

	ext, ok := tree.Get("extends")
	if !ok {
		return tree, nil
	}
	tree.Delete("extends")

	specs, err := extendsList(ext)
	if err != nil {
		return nil, err
	}
	if len(specs) == 0 {
		return tree, nil
	}

	baseDir := filepath.Dir(path)
	var parent *Value
	for _, spec := range specs {
		target, err := r.resolveSpecifier(baseDir, spec)
		if err != nil {
			return nil, err
		}
		logging.Debug().Str("specifier", spec).Str("target", target).Msg("resolved extends target")
		base, err := r.load(target, chain)
		if err != nil {
			return nil, err
		}
		// later bases override earlier ones
		parent = Merge(parent, base)
	}
	return Merge(parent, tree), nil
}

// extendsList normalizes the extends field into specifier strings. A
// null extends is treated as absent.
func extendsList(ext *Value) ([]string, error) {
	switch ext.Kind() {
	case Null:
		return nil, nil
	case String:
		return []string{ext.Text()}, nil
	case Array:
		specs := make([]string, 0, ext.Len())
		for i := 0; i < ext.Len(); i++ {
			elem := ext.Index(i)
			if elem.Kind() != String {
				return nil, &FieldTypeError{
					Field:    fmt.Sprintf("extends[%d]", i),
					Expected: "string",
					Found:    elem.Kind().String(),
				}
			}
			specs = append(specs, elem.Text())
		}
		return specs, nil
	}
	return nil, &FieldTypeError{
		Field:    "extends",
		Expected: "string or array of strings",
		Found:    ext.Kind().String(),
	}
}

// resolveSpecifier turns one extends specifier into the canonical
// path of an existing file, or a NotFoundError.
func (r *Resolver) resolveSpecifier(baseDir, spec string) (string, error) {
	if isPathLike(spec) {
		joined := spec
		if !filepath.IsAbs(joined) {
			joined = filepath.Join(baseDir, spec)
		}
		if found, ok := r.resolvePathLike(joined); ok {
			return r.canonicalize(found)
		}
		return "", &NotFoundError{Specifier: spec, BaseDir: baseDir}
	}

	// Bare specifier: climb node_modules directories toward the root.
	for dir := baseDir; ; {
		candidate := filepath.Join(dir, "node_modules", filepath.FromSlash(spec))
		if found, ok := r.resolvePackage(candidate); ok {
			return r.canonicalize(found)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", &NotFoundError{Specifier: spec, BaseDir: baseDir}
}

func isPathLike(spec string) bool {
	return spec == "." || spec == ".." ||
		strings.HasPrefix(spec, "./") || strings.HasPrefix(spec, "../") ||
		strings.HasPrefix(spec, "/") || filepath.IsAbs(spec)
}

// resolvePathLike applies the file lookup cascade: the path itself,
// then an implicit .json extension, then tsconfig.json inside a
// directory of that name.
func (r *Resolver) resolvePathLike(p string) (string, bool) {
	if r.isFile(p) {
		return p, true
	}
	if filepath.Ext(p) == "" && r.isFile(p+".json") {
		return p + ".json", true
	}
	if r.isDir(p) {
		inside := filepath.Join(p, "tsconfig.json")
		if r.isFile(inside) {
			return inside, true
		}
	}
	return "", false
}

// resolvePackage locates the config a node_modules candidate refers
// to. The specifier may point at a file, a file missing its .json
// extension, or a package directory whose package.json names its
// config through a "tsconfig" field, with tsconfig.json at the
// package root as the fallback.
func (r *Resolver) resolvePackage(candidate string) (string, bool) {
	if r.isFile(candidate) {
		return candidate, true
	}
	if filepath.Ext(candidate) == "" && r.isFile(candidate+".json") {
		return candidate + ".json", true
	}
	if !r.isDir(candidate) {
		return "", false
	}

	if data, err := afero.ReadFile(r.fs, filepath.Join(candidate, "package.json")); err == nil {
		var pkg struct {
			TSConfig string `json:"tsconfig"`
		}
		if json.Unmarshal(jsonc.ToJSON(data), &pkg) == nil && pkg.TSConfig != "" {
			named := filepath.Join(candidate, filepath.FromSlash(pkg.TSConfig))
			if r.isFile(named) {
				return named, true
			}
		}
	}

	fallback := filepath.Join(candidate, "tsconfig.json")
	if r.isFile(fallback) {
		return fallback, true
	}
	return "", false
}

func (r *Resolver) isFile(path string) bool {
	info, err := r.fs.Stat(path)
	return err == nil && !info.IsDir()
}

func (r *Resolver) isDir(path string) bool {
	info, err := r.fs.Stat(path)
	return err == nil && info.IsDir()
}

// canonicalize normalizes a path for cycle-detection equality:
// absolute, cleaned, and with symlinks resolved when the real OS
// filesystem is underneath.
func (r *Resolver) canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("canonicalize %s: %w", path, err)
	}
	abs = filepath.Clean(abs)
	if _, ok := r.fs.(*afero.OsFs); ok {
		if resolved, err := filepath.EvalSymlinks(abs); err == nil {
			return resolved, nil
		}
	}
	return abs, nil
}
