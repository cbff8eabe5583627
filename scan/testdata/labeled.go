package fixtures

//typelabel:label "activity type"
type ActivityType int

// InputHint guides client input handling.
//
//typelabel:label "input hint"
type InputHint int

//typelabel:label "pair of things"
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

//typelabel:label `raw "label"`
type Raw struct{}

//typelabel:label "line1\nline2 é"
type Escaped struct{}

type Unlabeled struct{}

type (
	//typelabel:label "grouped"
	Grouped struct{}
)
