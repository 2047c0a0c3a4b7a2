package tsconfig

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeChildScalarWins(t *testing.T) {
	parent := mustParse(t, `{"compilerOptions": {"strict": false, "target": "es5"}}`)
	child := mustParse(t, `{"compilerOptions": {"strict": true}}`)

	merged := Merge(parent, child)

	opts, _ := merged.Get("compilerOptions")
	strict, _ := opts.Get("strict")
	assert.True(t, strict.Bool(), "child strict should win")

	target, _ := opts.Get("target")
	assert.Equal(t, "es5", target.Text(), "sibling option from parent should survive")
}

func TestMergeInheritsParentOnlyKeys(t *testing.T) {
	parent := mustParse(t, `{"exclude": ["dist"], "compileOnSave": true}`)
	child := mustParse(t, `{"include": ["src"]}`)

	merged := Merge(parent, child)

	exclude, ok := merged.Get("exclude")
	require.True(t, ok)
	assert.Equal(t, 1, exclude.Len())

	_, ok = merged.Get("compileOnSave")
	assert.True(t, ok)
	_, ok = merged.Get("include")
	assert.True(t, ok)
}

func TestMergeArraysReplaceWholesale(t *testing.T) {
	parent := mustParse(t, `{"include": ["lib"]}`)
	child := mustParse(t, `{"include": ["src"]}`)

	merged := Merge(parent, child)

	include, _ := merged.Get("include")
	require.Equal(t, 1, include.Len())
	assert.Equal(t, "src", include.Index(0).Text())
}

func TestMergeNullIsARealValue(t *testing.T) {
	parent := mustParse(t, `{"compilerOptions": {"outDir": "build"}}`)
	child := mustParse(t, `{"compilerOptions": {"outDir": null}}`)

	merged := Merge(parent, child)

	opts, _ := merged.Get("compilerOptions")
	outDir, ok := opts.Get("outDir")
	require.True(t, ok, "cleared key stays present in the tree")
	assert.Equal(t, Null, outDir.Kind())
}

func TestMergeTypeMismatchChildWins(t *testing.T) {
	parent := mustParse(t, `{"references": {"nested": true}}`)
	child := mustParse(t, `{"references": "flat"}`)

	merged := Merge(parent, child)

	refs, _ := merged.Get("references")
	assert.Equal(t, String, refs.Kind())
	assert.Equal(t, "flat", refs.Text())
}

func TestMergeDeepNestedObjects(t *testing.T) {
	parent := mustParse(t, `{"compilerOptions": {"paths": {"@lib/*": ["lib/*"], "@app/*": ["app/*"]}}}`)
	child := mustParse(t, `{"compilerOptions": {"paths": {"@app/*": ["src/app/*"]}}}`)

	merged := Merge(parent, child)

	opts, _ := merged.Get("compilerOptions")
	paths, _ := opts.Get("paths")

	app, _ := paths.Get("@app/*")
	assert.Equal(t, "src/app/*", app.Index(0).Text())

	lib, ok := paths.Get("@lib/*")
	require.True(t, ok)
	assert.Equal(t, "lib/*", lib.Index(0).Text())
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	parent := mustParse(t, `{"compilerOptions": {"strict": false}}`)
	child := mustParse(t, `{"compilerOptions": {"strict": true}}`)

	parentBefore, err := json.Marshal(parent)
	require.NoError(t, err)
	childBefore, err := json.Marshal(child)
	require.NoError(t, err)

	_ = Merge(parent, child)

	parentAfter, _ := json.Marshal(parent)
	childAfter, _ := json.Marshal(child)
	assert.Equal(t, string(parentBefore), string(parentAfter))
	assert.Equal(t, string(childBefore), string(childAfter))
}

func TestMergeNilInputs(t *testing.T) {
	child := mustParse(t, `{"include": ["src"]}`)

	merged := Merge(nil, child)
	out, err := json.Marshal(merged)
	require.NoError(t, err)
	assert.JSONEq(t, `{"include": ["src"]}`, string(out))

	merged = Merge(child, nil)
	out, err = json.Marshal(merged)
	require.NoError(t, err)
	assert.JSONEq(t, `{"include": ["src"]}`, string(out))
}
