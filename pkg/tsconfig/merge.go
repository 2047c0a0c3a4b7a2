package tsconfig

// Merge folds a fully resolved parent tree into a child tree and
// returns the combined result. Neither input is modified.
//
// Rules:
//   - objects merge key-by-key, recursively, so a child can override
//     one nested option without losing its siblings
//   - scalars and arrays from the child replace the parent's value
//     wholesale (files/include/exclude are never concatenated)
//   - a key only the parent has is inherited unchanged
//   - an explicit null in the child is a real value and overrides
//   - on a shape mismatch (object vs. scalar) the child wins
func Merge(parent, child *Value) *Value {
	if parent == nil {
		return child.Clone()
	}
	if child == nil {
		return parent.Clone()
	}
	if parent.Kind() != Object || child.Kind() != Object {
		return child.Clone()
	}

	out := parent.Clone()
	for pair := child.obj.Oldest(); pair != nil; pair = pair.Next() {
		if base, ok := out.Get(pair.Key); ok && base.Kind() == Object && pair.Value.Kind() == Object {
			out.Set(pair.Key, Merge(base, pair.Value))
		} else {
			out.Set(pair.Key, pair.Value.Clone())
		}
	}
	return out
}
