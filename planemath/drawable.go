package planemath

// Drawable is anything that can render itself. How a drawable renders is
// implementation defined.
type Drawable interface {
	Draw()
}
