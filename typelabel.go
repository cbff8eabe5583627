// Package typelabel provides a static, human-readable label for a Go type
// as a concept, independent of any value of that type.
//
// A label is to a value's String method what a class is to an instance: an
// ActivityType enum may render a specific variant ("handoff", say) through
// fmt.Stringer, but its label names the type itself ("activity type"). The
// label is fixed at build time and never derived from runtime data.
//
// Types satisfy the capability by implementing Labeled. Implementations can
// be written by hand, or derived with the labelgen tool from a directive
// comment on the type declaration:
//
//	//typelabel:label "activity type"
//	type ActivityType int
//
// labelgen emits a package constant ActivityTypeLabel and a TypeLabel method
// returning it. See cmd/labelgen for the tool.
package typelabel

import "fmt"

// Labeled is the label capability. TypeLabel reports the label of the
// receiver's type, not of the receiver value: implementations must return
// the same constant for every value of the type, including the zero value.
type Labeled interface {
	TypeLabel() string
}

// LabelOf returns the label of T without requiring a value of T from the
// caller. The zero value's TypeLabel is used, which is safe under the
// Labeled contract.
func LabelOf[T Labeled]() string {
	var zero T
	return zero.TypeLabel()
}

// ParseError reports a failure to parse a value of T. The message names T
// by its label, so one error type serves every parseable type without each
// needing its own error and without relying on a value that was never
// successfully produced.
type ParseError[T Labeled] struct {
	Input string
	Err   error
}

// NewParseError returns a ParseError for the given input.
func NewParseError[T Labeled](input string) *ParseError[T] {
	return &ParseError[T]{Input: input}
}

func (e *ParseError[T]) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parsing %s: %v", LabelOf[T](), e.Err)
	}
	return fmt.Sprintf("parsing %s: invalid input %q", LabelOf[T](), e.Input)
}

func (e *ParseError[T]) Unwrap() error { return e.Err }
