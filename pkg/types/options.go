package types

import "encoding/json"

// CompilerOptions covers the documented compilerOptions surface.
// Values are not validated against any compiler version; unknown
// option names are kept in Extra.
type CompilerOptions struct {
	AllowJs            *bool `json:"allowJs,omitempty"`
	CheckJs            *bool `json:"checkJs,omitempty"`
	Composite          *bool `json:"composite,omitempty"`
	Declaration        *bool `json:"declaration,omitempty"`
	DeclarationMap     *bool `json:"declarationMap,omitempty"`
	DownlevelIteration *bool `json:"downlevelIteration,omitempty"`
	EsModuleInterop    *bool `json:"esModuleInterop,omitempty"`
	ImportHelpers      *bool `json:"importHelpers,omitempty"`
	Incremental        *bool `json:"incremental,omitempty"`
	IsolatedModules    *bool `json:"isolatedModules,omitempty"`
	NoEmit             *bool `json:"noEmit,omitempty"`
	RemoveComments     *bool `json:"removeComments,omitempty"`
	ResolveJsonModule  *bool `json:"resolveJsonModule,omitempty"`
	SkipLibCheck       *bool `json:"skipLibCheck,omitempty"`
	SourceMap          *bool `json:"sourceMap,omitempty"`

	// Strict-family checks.
	AlwaysStrict        *bool `json:"alwaysStrict,omitempty"`
	NoImplicitAny       *bool `json:"noImplicitAny,omitempty"`
	NoImplicitThis      *bool `json:"noImplicitThis,omitempty"`
	Strict              *bool `json:"strict,omitempty"`
	StrictBindCallApply *bool `json:"strictBindCallApply,omitempty"`
	StrictFunctionTypes *bool `json:"strictFunctionTypes,omitempty"`
	StrictNullChecks    *bool `json:"strictNullChecks,omitempty"`

	BaseUrl         *string `json:"baseUrl,omitempty"`
	OutDir          *string `json:"outDir,omitempty"`
	OutFile         *string `json:"outFile,omitempty"`
	RootDir         *string `json:"rootDir,omitempty"`
	TsBuildInfoFile *string `json:"tsBuildInfoFile,omitempty"`

	Jsx              *Jsx              `json:"jsx,omitempty"`
	Target           *Target           `json:"target,omitempty"`
	Module           *ModuleKind       `json:"module,omitempty"`
	ModuleResolution *ModuleResolution `json:"moduleResolution,omitempty"`

	Lib     []Lib               `json:"lib,omitempty"`
	Paths   map[string][]string `json:"paths,omitempty"`
	Plugins []any               `json:"plugins,omitempty"`

	// Extra holds unrecognized compiler options verbatim.
	Extra map[string]any `json:"-"`
}

// MarshalJSON inlines Extra alongside the known options.
func (o *CompilerOptions) MarshalJSON() ([]byte, error) {
	type alias CompilerOptions
	known, err := json.Marshal((*alias)(o))
	if err != nil {
		return nil, err
	}
	if len(o.Extra) == 0 {
		return known, nil
	}
	var out map[string]any
	if err := json.Unmarshal(known, &out); err != nil {
		return nil, err
	}
	for k, v := range o.Extra {
		out[k] = v
	}
	return json.Marshal(out)
}
