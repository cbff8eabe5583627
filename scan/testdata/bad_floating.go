package fixtures

//typelabel:label "floating"

type Floating struct{}

//typelabel:label "eof"
