// Package sample exercises typelabel end to end: annotated types, the
// go:generate hook, and the checked-in generated output.
package sample

import "github.com/typelabel/typelabel"

//go:generate go run github.com/typelabel/typelabel/cmd/labelgen -type=ActivityType,InputHint,TextFormatType,Pair

//typelabel:label "activity type"
type ActivityType int

const (
	Handoff ActivityType = iota
	Invoke
	Message
)

//typelabel:label "input hint"
type InputHint int

const (
	AcceptingInput InputHint = iota
	ExpectingInput
	IgnoringInput
)

//typelabel:label "text format type"
type TextFormatType int

const (
	Markdown TextFormatType = iota
	Plain
	XML
)

// Pair carries an arbitrary key/value pairing. Its label is a property of
// Pair itself and does not depend on what K and V are instantiated with.
//
//typelabel:label "pair"
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// ParseActivityType parses the wire form of an ActivityType. The error
// names the concept being parsed without needing a value that was never
// produced.
func ParseActivityType(s string) (ActivityType, error) {
	switch s {
	case "handoff":
		return Handoff, nil
	case "invoke":
		return Invoke, nil
	case "message":
		return Message, nil
	default:
		return 0, typelabel.NewParseError[ActivityType](s)
	}
}
