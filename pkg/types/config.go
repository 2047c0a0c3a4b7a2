// Package types defines the typed tsconfig data model shared between
// the resolver library and the CLI.
package types

import "encoding/json"

// Config is the materialized form of a tsconfig.json / jsconfig.json
// document after its extends chain has been folded in.
//
// Optional scalars are pointers so "absent" and "set to the zero
// value" stay distinguishable. Top-level keys that are not part of
// the documented surface are preserved verbatim in Extra.
type Config struct {
	CompilerOptions *CompilerOptions `json:"compilerOptions,omitempty"`
	Files           []string         `json:"files,omitempty"`
	Include         []string         `json:"include,omitempty"`
	Exclude         []string         `json:"exclude,omitempty"`
	References      *References      `json:"references,omitempty"`
	TypeAcquisition *TypeAcquisition `json:"typeAcquisition,omitempty"`
	CompileOnSave   *bool            `json:"compileOnSave,omitempty"`

	// Extra holds unrecognized top-level fields so serialization does
	// not silently drop forward-compatible data.
	Extra map[string]any `json:"-"`

	// Path is the canonical path of the file the resolution started
	// from. Empty when the config was parsed from raw bytes.
	Path string `json:"-"`
}

// MarshalJSON inlines Extra alongside the known fields.
func (c *Config) MarshalJSON() ([]byte, error) {
	type alias Config
	known, err := json.Marshal((*alias)(c))
	if err != nil {
		return nil, err
	}
	if len(c.Extra) == 0 {
		return known, nil
	}
	var out map[string]any
	if err := json.Unmarshal(known, &out); err != nil {
		return nil, err
	}
	for k, v := range c.Extra {
		out[k] = v
	}
	return json.Marshal(out)
}

// Reference is a single project reference entry.
type Reference struct {
	Path    string `json:"path"`
	Prepend *bool  `json:"prepend,omitempty"`
}

// References is either a boolean toggle or an explicit list of
// project references, mirroring the two shapes the field may take on
// disk.
type References struct {
	Bool *bool
	List []Reference
}

// MarshalJSON emits whichever shape the source document used.
func (r *References) MarshalJSON() ([]byte, error) {
	if r.Bool != nil {
		return json.Marshal(*r.Bool)
	}
	return json.Marshal(r.List)
}

// TypeAcquisition configures automatic type acquisition. A bare
// boolean in the source document sets Enable and nothing else.
type TypeAcquisition struct {
	Enable                              *bool    `json:"enable,omitempty"`
	Include                             []string `json:"include,omitempty"`
	Exclude                             []string `json:"exclude,omitempty"`
	DisableFilenameBasedTypeAcquisition *bool    `json:"disableFilenameBasedTypeAcquisition,omitempty"`
}
