package fixtures

//typelabel:label "group"
type (
	First  struct{}
	Second struct{}
)
