// Command labelgen derives typelabel.Labeled implementations from label
// directives on Go type declarations.
//
// A directive is a comment attached to a type declaration, carrying one Go
// string literal:
//
//	//typelabel:label "activity type"
//	type ActivityType int
//
// For every package under the scan root containing annotated types,
// labelgen writes a single file, zz_generated.typelabel.go, holding for
// each type a label constant and the method implementing the capability:
//
//	// ActivityTypeLabel is the label of ActivityType as a concept.
//	const ActivityTypeLabel = "activity type"
//
//	// TypeLabel implements typelabel.Labeled for ActivityType.
//	func (ActivityType) TypeLabel() string { return ActivityTypeLabel }
//
// Generic types get a receiver repeating their type parameters, so the
// implementation is valid for every instantiation and never conditional on
// the arguments:
//
//	//typelabel:label "pair"
//	type Pair[K comparable, V any] struct{ ... }
//
//	func (Pair[K, V]) TypeLabel() string { return PairLabel }
//
// Usage:
//
//	//go:generate go run github.com/typelabel/typelabel/cmd/labelgen -type=ActivityType
//
// or over a whole tree:
//
//	labelgen -path ./internal
//
// Every invalid directive is a diagnostic: a duplicate on one type, a
// non-string or malformed literal, attachment to anything that is not a
// top-level type declaration (functions, vars, consts, interfaces, type
// aliases, grouped declarations with several specs), or a -type name with
// no directive. Any diagnostic fails the run with a file:line:col message
// and nothing is written, so a bad annotation breaks the build step rather
// than producing partial output.
//
// Labels for types labelgen cannot be applied to (interfaces, types in
// other modules) are written by hand against the same typelabel.Labeled
// contract; the generator is a convenience over that contract, not the
// only way to satisfy it.
package main
