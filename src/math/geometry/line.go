// Package geometry analyzes lines of the plane given in general form
// a*x + b*y + c = 0 with exact rational coefficients.
package geometry

import (
	"fmt"

	"exactgeo/src/math/rational"
)

// Line is the set of points satisfying a*x + b*y + c = 0.
//
// Coefficients are stored as given; a line with a = b = 0 is accepted and
// its queries are not meaningful (see IsDegenerate). Line values are
// comparable, and two lines are == only when their coefficient triples are
// identical, not when they describe the same set of points.
type Line struct {
	a, b, c rational.Fraction
}

func NewLine(a, b, c rational.Fraction) Line {
	return Line{a: a, b: b, c: c}
}

// LineFromInts builds a line from integer coefficients.
func LineFromInts(a, b, c int64) (Line, error) {
	var coef [3]rational.Fraction
	for i, v := range []int64{a, b, c} {
		f, err := rational.FromInt(v)
		if err != nil {
			return Line{}, err
		}
		coef[i] = f
	}
	return NewLine(coef[0], coef[1], coef[2]), nil
}

func (l Line) A() rational.Fraction { return l.a }
func (l Line) B() rational.Fraction { return l.b }
func (l Line) C() rational.Fraction { return l.c }

// IsDegenerate reports whether both a and b are zero.
func (l Line) IsDegenerate() bool {
	return l.a.IsZero() && l.b.IsZero()
}

func (l Line) Equal(other Line) bool {
	return l == other
}

// XIntercept returns the point (-(c/a), 0).
//
// ok is false when b is zero. The guard is on b, not on a: a line with a = 0
// reaches the division and fails with rational.ErrDivisionByZero.
func (l Line) XIntercept() (p Point, ok bool, err error) {
	if l.b.IsZero() {
		return Point{}, false, nil
	}
	var ar arith
	x := ar.mul(ar.div(l.c, l.a), rational.MinusOne)
	if ar.err != nil {
		return Point{}, false, fmt.Errorf("x intercept of %s: %w", l, ar.err)
	}
	return NewPoint(x, rational.Zero), true, nil
}

// YIntercept returns the point (0, -(c/b)).
//
// ok is false when a is zero; a line with b = 0 fails with
// rational.ErrDivisionByZero.
func (l Line) YIntercept() (p Point, ok bool, err error) {
	if l.a.IsZero() {
		return Point{}, false, nil
	}
	var ar arith
	y := ar.mul(ar.div(l.c, l.b), rational.MinusOne)
	if ar.err != nil {
		return Point{}, false, fmt.Errorf("y intercept of %s: %w", l, ar.err)
	}
	return NewPoint(rational.Zero, y), true, nil
}

// Intersect solves the system formed by l and other with Cramer's rule.
// ok is false when the determinant a1*b2 - b1*a2 is zero, i.e. the lines
// are parallel or identical and there is no unique solution.
func (l Line) Intersect(other Line) (p Point, ok bool, err error) {
	var ar arith
	det := ar.sub(ar.mul(l.a, other.b), ar.mul(l.b, other.a))
	if ar.err != nil {
		return Point{}, false, fmt.Errorf("determinant of %s and %s: %w", l, other, ar.err)
	}
	if det.IsZero() {
		return Point{}, false, nil
	}

	x := ar.mul(ar.div(ar.sub(ar.mul(l.c, other.b), ar.mul(l.b, other.c)), det), rational.MinusOne)
	y := ar.mul(ar.div(ar.sub(ar.mul(l.a, other.c), ar.mul(l.c, other.a)), det), rational.MinusOne)
	if ar.err != nil {
		return Point{}, false, fmt.Errorf("intersection of %s and %s: %w", l, other, ar.err)
	}
	return NewPoint(x, y), true, nil
}

// IsParallel reports whether a1*b2 == b1*a2. Every line is parallel to
// itself. The error is only ever rational.ErrOverflow.
func (l Line) IsParallel(other Line) (bool, error) {
	var ar arith
	lhs := ar.mul(l.a, other.b)
	rhs := ar.mul(l.b, other.a)
	if ar.err != nil {
		return false, fmt.Errorf("comparing slopes of %s and %s: %w", l, other, ar.err)
	}
	return lhs.Equal(rhs), nil
}

// String renders the line as "a*x + b*y + c = 0" using the fraction form of
// every coefficient.
func (l Line) String() string {
	return l.a.String() + "*x + " + l.b.String() + "*y + " + l.c.String() + " = 0"
}
