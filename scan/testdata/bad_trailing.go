package fixtures

//typelabel:label "x" extra
type Trailing struct{}
