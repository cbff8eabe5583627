package fixtures

//typelabel:label "one"
//typelabel:label "two"
type Dup struct{}
