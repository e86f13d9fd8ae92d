package geometry

import "exactgeo/src/math/rational"

// Point is a location in the plane with exact coordinates.
type Point struct {
	X rational.Fraction `json:"x"`
	Y rational.Fraction `json:"y"`
}

func NewPoint(x, y rational.Fraction) Point {
	return Point{X: x, Y: y}
}

func (p Point) IsZero() bool {
	return p.X.IsZero() && p.Y.IsZero()
}

func (p Point) String() string {
	return "(" + p.X.String() + ", " + p.Y.String() + ")"
}
