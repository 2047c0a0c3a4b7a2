package tsconfig

import (
	"fmt"
	"strings"
)

// ParseError reports malformed JSON/JSONC in a configuration file.
// Line and Column are 1-based positions in the original text,
// including any comments the tolerant reader stripped.
type ParseError struct {
	Path   string
	Line   int
	Column int
	Msg    string
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("parse error at %d:%d: %s", e.Line, e.Column, e.Msg)
	}
	return fmt.Sprintf("%s:%d:%d: %s", e.Path, e.Line, e.Column, e.Msg)
}

// NotFoundError reports an extends target that no lookup rule could
// locate.
type NotFoundError struct {
	Specifier string
	BaseDir   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("cannot locate extends target %q from %s", e.Specifier, e.BaseDir)
}

// CircularExtendsError reports an extends chain that revisits a file.
// Chain lists the canonical paths in visit order; the last entry is
// the repeated one.
type CircularExtendsError struct {
	Chain []string
}

func (e *CircularExtendsError) Error() string {
	return "circular extends: " + strings.Join(e.Chain, " -> ")
}

// FieldTypeError reports a recognized field whose value has the wrong
// shape, e.g. compilerOptions.strict holding a string.
type FieldTypeError struct {
	Field    string
	Expected string
	Found    string
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("%s: expected %s, found %s", e.Field, e.Expected, e.Found)
}
