package fixtures

//typelabel:tag "x"
type WrongVerb struct{}
