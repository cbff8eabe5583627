package fixtures

//typelabel:label "fn"
func DoThing() {}
