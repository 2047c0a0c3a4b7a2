// Package tsconfig resolves a project's effective TypeScript or
// JavaScript build configuration.
//
// Given a tsconfig.json (or jsconfig.json) file, the package parses
// it tolerantly — comments and trailing commas are fine — and folds
// in every configuration it inherits from through the extends field,
// producing a single materialized result.
//
// # Extends resolution
//
// An extends specifier may be a relative or absolute path, a path
// missing its .json extension, a directory containing a
// tsconfig.json, or a bare package name looked up through
// node_modules directories climbing toward the filesystem root. A
// package may name its shipped config with a "tsconfig" field in its
// package.json; tsconfig.json at the package root is the fallback.
// extends also accepts an array of specifiers, folded left to right
// with later entries overriding earlier ones.
//
// Parent chains are resolved depth-first and eagerly, each parent
// fully resolved before it is merged underneath its child. A chain
// that revisits a file fails with CircularExtendsError carrying the
// whole cycle.
//
// # Merge semantics
//
// The child always wins: objects merge key-by-key recursively so a
// child can override one compiler option without discarding its
// siblings, while scalars and arrays — files, include and exclude
// among them — are replaced wholesale. An explicit null is a real
// overriding value, and the extends field itself never survives into
// the result.
//
// # Typed output
//
// Materialization projects the merged tree onto pkg/types.Config.
// Recognized fields become their semantic types; everything else is
// kept verbatim in residual maps so no data is silently dropped. A
// recognized field of the wrong shape fails with FieldTypeError.
//
// # Usage
//
//	cfg, err := tsconfig.ParseFile("web/tsconfig.json")
//	if err != nil {
//	    var cycle *tsconfig.CircularExtendsError
//	    if errors.As(err, &cycle) {
//	        // cycle.Chain names the full loop
//	    }
//	    return err
//	}
//	if cfg.CompilerOptions != nil && cfg.CompilerOptions.Strict != nil {
//	    strict := *cfg.CompilerOptions.Strict
//	    _ = strict
//	}
//
// Resolution reads files through an afero.Fs, so tests and embedders
// can point a Resolver at an in-memory filesystem with WithFs.
package tsconfig
