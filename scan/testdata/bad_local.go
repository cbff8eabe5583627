package fixtures

func local() {
	//typelabel:label "inner"
	type inner struct{}
	_ = inner{}
}
