// Package model holds the compile-time artifacts the generator works with:
// source locations, label directives, and the type declarations they attach
// to. Nothing here exists at runtime in generated code; these values live
// only for the duration of one labelgen invocation.
package model

import "fmt"

// Location describes where an artifact sits in the source tree.
type Location struct {
	FilePath    string
	StartLine   int
	EndLine     int
	StartColumn int
	EndColumn   int
}

// String renders the location in the file:line:col form used by compiler
// diagnostics.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	return fmt.Sprintf("%s:%d:%d", l.FilePath, l.StartLine, l.StartColumn+1)
}

// DeclKind classifies a type declaration for directive validation. Labels
// can only be generated for kinds that accept a method set.
type DeclKind string

const (
	KindStruct    DeclKind = "struct"
	KindInterface DeclKind = "interface"
	KindAlias     DeclKind = "alias"
	// KindNamed covers every other defined type: named basic types
	// (enum-style), slices, maps, funcs.
	KindNamed DeclKind = "named"
)

// Directive is one parsed label attribute: the raw comment text and the
// decoded string literal it carries.
type Directive struct {
	Raw   string
	Label string
	Loc   *Location
}

// TypeDecl records a type declaration seen during scanning, labeled or not.
// The processor uses these to report a requested type that exists but
// carries no directive.
type TypeDecl struct {
	Name string
	Loc  *Location
}

// LabeledType is the generated association before materialization: a type's
// identity bound to its label string.
type LabeledType struct {
	Name string
	// TypeParams holds the declaration's type parameter names, in order.
	// The emitted method receiver repeats them so the implementation is
	// valid for every instantiation.
	TypeParams []string
	Kind       DeclKind
	Label      string
	Loc        *Location
}

// Receiver returns the receiver type expression for the emitted method,
// e.g. "Pair[K, V]" for a generic declaration.
func (t *LabeledType) Receiver() string {
	if len(t.TypeParams) == 0 {
		return t.Name
	}
	recv := t.Name + "["
	for i, p := range t.TypeParams {
		if i > 0 {
			recv += ", "
		}
		recv += p
	}
	return recv + "]"
}

// Package aggregates the labeled types of one package directory, ready for
// emission.
type Package struct {
	Dir        string
	Name       string
	ImportPath string
	Types      []LabeledType
}
