package tsconfig

import (
	"fmt"

	"github.com/tsresolve/tsconfig/pkg/types"
)

// Materialize projects a value tree into the typed model. Recognized
// fields are converted to their semantic types; everything else is
// copied verbatim into the residual Extra maps. A recognized field
// whose value cannot be coerced yields a FieldTypeError.
//
// A key holding an explicit null counts as cleared: it stays in the
// generic tree but materializes as unset.
func Materialize(tree *Value) (*types.Config, error) {
	if tree.Kind() != Object {
		return nil, &FieldTypeError{Field: "(root)", Expected: "object", Found: tree.Kind().String()}
	}

	cfg := &types.Config{}
	for _, key := range tree.Keys() {
		v, _ := tree.Get(key)
		var err error
		switch key {
		case "extends":
			// consumed during resolution, never part of the output
		case "compilerOptions":
			cfg.CompilerOptions, err = materializeOptions(v)
		case "files":
			cfg.Files, err = stringSliceField("files", v)
		case "include":
			cfg.Include, err = stringSliceField("include", v)
		case "exclude":
			cfg.Exclude, err = stringSliceField("exclude", v)
		case "references":
			cfg.References, err = materializeReferences(v)
		case "typeAcquisition":
			cfg.TypeAcquisition, err = materializeTypeAcquisition(v)
		case "compileOnSave":
			cfg.CompileOnSave, err = boolField("compileOnSave", v)
		default:
			if cfg.Extra == nil {
				cfg.Extra = make(map[string]any)
			}
			cfg.Extra[key] = v.Interface()
		}
		if err != nil {
			return nil, err
		}
	}
	diagnoseKeys(tree)
	return cfg, nil
}

func materializeOptions(v *Value) (*types.CompilerOptions, error) {
	if v.Kind() == Null {
		return nil, nil
	}
	if v.Kind() != Object {
		return nil, &FieldTypeError{Field: "compilerOptions", Expected: "object", Found: v.Kind().String()}
	}

	opts := &types.CompilerOptions{}
	for _, key := range v.Keys() {
		fv, _ := v.Get(key)
		path := "compilerOptions." + key
		var err error
		switch key {
		case "allowJs":
			opts.AllowJs, err = boolField(path, fv)
		case "checkJs":
			opts.CheckJs, err = boolField(path, fv)
		case "composite":
			opts.Composite, err = boolField(path, fv)
		case "declaration":
			opts.Declaration, err = boolField(path, fv)
		case "declarationMap":
			opts.DeclarationMap, err = boolField(path, fv)
		case "downlevelIteration":
			opts.DownlevelIteration, err = boolField(path, fv)
		case "esModuleInterop":
			opts.EsModuleInterop, err = boolField(path, fv)
		case "importHelpers":
			opts.ImportHelpers, err = boolField(path, fv)
		case "incremental":
			opts.Incremental, err = boolField(path, fv)
		case "isolatedModules":
			opts.IsolatedModules, err = boolField(path, fv)
		case "noEmit":
			opts.NoEmit, err = boolField(path, fv)
		case "removeComments":
			opts.RemoveComments, err = boolField(path, fv)
		case "resolveJsonModule":
			opts.ResolveJsonModule, err = boolField(path, fv)
		case "skipLibCheck":
			opts.SkipLibCheck, err = boolField(path, fv)
		case "sourceMap":
			opts.SourceMap, err = boolField(path, fv)
		case "alwaysStrict":
			opts.AlwaysStrict, err = boolField(path, fv)
		case "noImplicitAny":
			opts.NoImplicitAny, err = boolField(path, fv)
		case "noImplicitThis":
			opts.NoImplicitThis, err = boolField(path, fv)
		case "strict":
			opts.Strict, err = boolField(path, fv)
		case "strictBindCallApply":
			opts.StrictBindCallApply, err = boolField(path, fv)
		case "strictFunctionTypes":
			opts.StrictFunctionTypes, err = boolField(path, fv)
		case "strictNullChecks":
			opts.StrictNullChecks, err = boolField(path, fv)
		case "baseUrl":
			opts.BaseUrl, err = stringField(path, fv)
		case "outDir":
			opts.OutDir, err = stringField(path, fv)
		case "outFile":
			opts.OutFile, err = stringField(path, fv)
		case "rootDir":
			opts.RootDir, err = stringField(path, fv)
		case "tsBuildInfoFile":
			opts.TsBuildInfoFile, err = stringField(path, fv)
		case "jsx":
			opts.Jsx, err = enumField[types.Jsx](path, fv)
		case "target":
			opts.Target, err = enumField[types.Target](path, fv)
		case "module":
			opts.Module, err = enumField[types.ModuleKind](path, fv)
		case "moduleResolution":
			opts.ModuleResolution, err = enumField[types.ModuleResolution](path, fv)
		case "lib":
			opts.Lib, err = libField(path, fv)
		case "paths":
			opts.Paths, err = pathsField(path, fv)
		case "plugins":
			opts.Plugins, err = anySliceField(path, fv)
		default:
			if opts.Extra == nil {
				opts.Extra = make(map[string]any)
			}
			opts.Extra[key] = fv.Interface()
		}
		if err != nil {
			return nil, err
		}
	}
	return opts, nil
}

func materializeReferences(v *Value) (*types.References, error) {
	switch v.Kind() {
	case Null:
		return nil, nil
	case Bool:
		b := v.Bool()
		return &types.References{Bool: &b}, nil
	case Array:
		refs := make([]types.Reference, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			elem := v.Index(i)
			path := fmt.Sprintf("references[%d]", i)
			if elem.Kind() != Object {
				return nil, &FieldTypeError{Field: path, Expected: "object", Found: elem.Kind().String()}
			}
			var ref types.Reference
			if pv, ok := elem.Get("path"); ok {
				s, err := stringField(path+".path", pv)
				if err != nil {
					return nil, err
				}
				if s != nil {
					ref.Path = *s
				}
			}
			if pv, ok := elem.Get("prepend"); ok {
				b, err := boolField(path+".prepend", pv)
				if err != nil {
					return nil, err
				}
				ref.Prepend = b
			}
			refs = append(refs, ref)
		}
		return &types.References{List: refs}, nil
	}
	return nil, &FieldTypeError{Field: "references", Expected: "boolean or array", Found: v.Kind().String()}
}

func materializeTypeAcquisition(v *Value) (*types.TypeAcquisition, error) {
	switch v.Kind() {
	case Null:
		return nil, nil
	case Bool:
		b := v.Bool()
		return &types.TypeAcquisition{Enable: &b}, nil
	case Object:
		ta := &types.TypeAcquisition{}
		var err error
		if fv, ok := v.Get("enable"); ok {
			if ta.Enable, err = boolField("typeAcquisition.enable", fv); err != nil {
				return nil, err
			}
		}
		if fv, ok := v.Get("include"); ok {
			if ta.Include, err = stringSliceField("typeAcquisition.include", fv); err != nil {
				return nil, err
			}
		}
		if fv, ok := v.Get("exclude"); ok {
			if ta.Exclude, err = stringSliceField("typeAcquisition.exclude", fv); err != nil {
				return nil, err
			}
		}
		if fv, ok := v.Get("disableFilenameBasedTypeAcquisition"); ok {
			ta.DisableFilenameBasedTypeAcquisition, err = boolField(
				"typeAcquisition.disableFilenameBasedTypeAcquisition", fv)
			if err != nil {
				return nil, err
			}
		}
		return ta, nil
	}
	return nil, &FieldTypeError{Field: "typeAcquisition", Expected: "boolean or object", Found: v.Kind().String()}
}

func boolField(path string, v *Value) (*bool, error) {
	switch v.Kind() {
	case Null:
		return nil, nil
	case Bool:
		b := v.Bool()
		return &b, nil
	}
	return nil, &FieldTypeError{Field: path, Expected: "boolean", Found: v.Kind().String()}
}

func stringField(path string, v *Value) (*string, error) {
	switch v.Kind() {
	case Null:
		return nil, nil
	case String:
		s := v.Text()
		return &s, nil
	}
	return nil, &FieldTypeError{Field: path, Expected: "string", Found: v.Kind().String()}
}

func enumField[T ~string](path string, v *Value) (*T, error) {
	s, err := stringField(path, v)
	if err != nil || s == nil {
		return nil, err
	}
	t := T(*s)
	return &t, nil
}

func stringSliceField(path string, v *Value) ([]string, error) {
	switch v.Kind() {
	case Null:
		return nil, nil
	case Array:
		out := make([]string, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			elem := v.Index(i)
			if elem.Kind() != String {
				return nil, &FieldTypeError{
					Field:    fmt.Sprintf("%s[%d]", path, i),
					Expected: "string",
					Found:    elem.Kind().String(),
				}
			}
			out = append(out, elem.Text())
		}
		return out, nil
	}
	return nil, &FieldTypeError{Field: path, Expected: "array of strings", Found: v.Kind().String()}
}

func libField(path string, v *Value) ([]types.Lib, error) {
	strs, err := stringSliceField(path, v)
	if err != nil || strs == nil {
		return nil, err
	}
	out := make([]types.Lib, len(strs))
	for i, s := range strs {
		out[i] = types.Lib(s)
	}
	return out, nil
}

func pathsField(path string, v *Value) (map[string][]string, error) {
	switch v.Kind() {
	case Null:
		return nil, nil
	case Object:
		out := make(map[string][]string, v.Len())
		for _, key := range v.Keys() {
			fv, _ := v.Get(key)
			entry, err := stringSliceField(path+"."+key, fv)
			if err != nil {
				return nil, err
			}
			out[key] = entry
		}
		return out, nil
	}
	return nil, &FieldTypeError{Field: path, Expected: "object", Found: v.Kind().String()}
}

func anySliceField(path string, v *Value) ([]any, error) {
	switch v.Kind() {
	case Null:
		return nil, nil
	case Array:
		out, _ := v.Interface().([]any)
		return out, nil
	}
	return nil, &FieldTypeError{Field: path, Expected: "array", Found: v.Kind().String()}
}
