package fixtures

type Original struct{}

//typelabel:label "alias"
type Aliased = Original
