package layout

// Point represents a 2D point or vector in diagram space.
//
// Diagram space is the fixed canvas the layout profiles are tuned for:
// x and y in [-5, 5] with y growing upward. Rendering surfaces own the
// mapping to their device coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Anchor is a point a drawn element attaches to, plus the constant offset
// vector at which its label text is placed. The offset is purely for label
// placement; the element's own geometry never depends on it.
type Anchor struct {
	Point  Point `json:"point"`
	Offset Point `json:"offset"`
}

// LabelPos returns the absolute position of the anchor's label text.
func (a Anchor) LabelPos() Point {
	return a.Point.Add(a.Offset)
}
