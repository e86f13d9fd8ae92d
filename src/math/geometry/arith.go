package geometry

import "exactgeo/src/math/rational"

// arith chains fraction operations and keeps the first error. Once an error
// is recorded every later call returns the zero fraction.
type arith struct {
	err error
}

func (a *arith) mul(x, y rational.Fraction) rational.Fraction {
	return a.do(x.Mul, y)
}

func (a *arith) sub(x, y rational.Fraction) rational.Fraction {
	return a.do(x.Sub, y)
}

func (a *arith) div(x, y rational.Fraction) rational.Fraction {
	return a.do(x.Div, y)
}

func (a *arith) do(op func(rational.Fraction) (rational.Fraction, error), y rational.Fraction) rational.Fraction {
	if a.err != nil {
		return rational.Zero
	}
	r, err := op(y)
	if err != nil {
		a.err = err
		return rational.Zero
	}
	return r
}
