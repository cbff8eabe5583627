package fixtures

//typelabel:label
type MissingValue struct{}
