package fixtures

//typelabel:label 42
type NonString struct{}
