package fixtures

//typelabel:label "shape"
type Shape interface {
	Area() float64
}
