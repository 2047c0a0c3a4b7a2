package tsconfig

import (
	"github.com/agnivade/levenshtein"

	"github.com/tsresolve/tsconfig/internal/logging"
)

// knownTopLevel lists the documented top-level tsconfig fields.
var knownTopLevel = []string{
	"extends",
	"compilerOptions",
	"files",
	"include",
	"exclude",
	"references",
	"typeAcquisition",
	"compileOnSave",
}

// diagnoseKeys logs a debug hint for every unrecognized top-level key
// that sits within a small edit distance of a documented field name.
// Unknown keys are legal (they land in the residual map), so this
// never fails; it only helps track down silent typos like
// "compilerOption".
func diagnoseKeys(tree *Value) {
	for _, key := range tree.Keys() {
		if len(key) < 4 || isKnownKey(key) {
			continue
		}
		for _, want := range knownTopLevel {
			if levenshtein.ComputeDistance(key, want) <= 2 {
				logging.Debug().
					Str("key", key).
					Str("suggestion", want).
					Msg("unrecognized key resembles a documented field")
				break
			}
		}
	}
}

func isKnownKey(key string) bool {
	for _, k := range knownTopLevel {
		if key == k {
			return true
		}
	}
	return false
}
