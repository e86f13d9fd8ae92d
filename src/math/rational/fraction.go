// Package rational implements exact rational numbers with 64-bit numerator
// and denominator.
//
// A Fraction is always kept in lowest terms with a positive denominator, so
// two fractions are numerically equal exactly when they are equal under ==.
// Intermediate products are widened before reduction; an operation whose
// reduced result does not fit in 64 bits fails with ErrOverflow instead of
// wrapping.
package rational

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Fraction is an immutable, normalized rational number.
//
// The denominator is stored biased by one, which makes the zero value of
// Fraction equal to 0/1. Numerator and denominator magnitudes never exceed
// math.MaxInt64.
type Fraction struct {
	num  int64
	den1 int64
}

// New returns num/den reduced to lowest terms with the sign carried by the
// numerator. A zero denominator is rejected with ErrInvalidDenominator.
func New(num, den int64) (Fraction, error) {
	if den == 0 {
		return Fraction{}, ErrInvalidDenominator
	}
	if num == math.MinInt64 || den == math.MinInt64 {
		return fromBig(big.NewInt(num), big.NewInt(den))
	}
	return normalize(num, den), nil
}

// MustNew is like New but panics on error. It is meant for literals.
func MustNew(num, den int64) Fraction {
	f, err := New(num, den)
	if err != nil {
		panic(err)
	}
	return f
}

// FromInt returns n/1.
func FromInt(n int64) (Fraction, error) {
	return New(n, 1)
}

// Parse reads a fraction written as "n/d" or as a bare integer "n".
// Surrounding whitespace is ignored. The result is normalized, so "4/-6"
// parses to -2/3.
func Parse(s string) (Fraction, error) {
	s = strings.TrimSpace(s)
	numStr, denStr, hasDen := strings.Cut(s, "/")
	if !hasDen {
		denStr = "1"
	}

	num, err := parseInt(strings.TrimSpace(numStr))
	if err != nil {
		return Fraction{}, fmt.Errorf("parsing numerator of %q: %w", s, err)
	}
	den, err := parseInt(strings.TrimSpace(denStr))
	if err != nil {
		return Fraction{}, fmt.Errorf("parsing denominator of %q: %w", s, err)
	}
	return New(num, den)
}

func parseInt(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		return v, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, ErrOverflow
	}
	return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
}

func (x Fraction) Num() int64 {
	return x.num
}

func (x Fraction) Den() int64 {
	return x.den1 + 1
}

func (x Fraction) IsZero() bool {
	return x.num == 0
}

// Sign returns -1, 0 or 1.
func (x Fraction) Sign() int {
	switch {
	case x.num < 0:
		return -1
	case x.num > 0:
		return 1
	}
	return 0
}

func (x Fraction) Neg() Fraction {
	return Fraction{num: -x.num, den1: x.den1}
}

// Equal reports whether x and y hold the same normalized pair. Because the
// representation is canonical this is also numeric equality.
func (x Fraction) Equal(y Fraction) bool {
	return x == y
}

// Cmp returns -1 if x < y, 0 if x == y and 1 if x > y.
func (x Fraction) Cmp(y Fraction) int {
	if x == y {
		return 0
	}
	return product(x.num, y.Den()).Cmp(product(y.num, x.Den()))
}

// Add returns (n1*d2 + n2*d1) / (d1*d2) in lowest terms.
func (x Fraction) Add(y Fraction) (Fraction, error) {
	n1, d1 := x.num, x.Den()
	n2, d2 := y.num, y.Den()
	if small(n1, d1, n2, d2) {
		return New(n1*d2+n2*d1, d1*d2)
	}
	num := product(n1, d2)
	num.Add(num, product(n2, d1))
	return fromBig(num, product(d1, d2))
}

// Sub returns (n1*d2 - n2*d1) / (d1*d2) in lowest terms.
func (x Fraction) Sub(y Fraction) (Fraction, error) {
	n1, d1 := x.num, x.Den()
	n2, d2 := y.num, y.Den()
	if small(n1, d1, n2, d2) {
		return New(n1*d2-n2*d1, d1*d2)
	}
	num := product(n1, d2)
	num.Sub(num, product(n2, d1))
	return fromBig(num, product(d1, d2))
}

// Mul returns (n1*n2) / (d1*d2) in lowest terms.
func (x Fraction) Mul(y Fraction) (Fraction, error) {
	n1, d1 := x.num, x.Den()
	n2, d2 := y.num, y.Den()
	if small(n1, d1, n2, d2) {
		return New(n1*n2, d1*d2)
	}
	return fromBig(product(n1, n2), product(d1, d2))
}

// Div returns (n1*d2) / (d1*n2) in lowest terms. Dividing by a fraction
// whose numerator is zero fails with ErrDivisionByZero.
func (x Fraction) Div(y Fraction) (Fraction, error) {
	if y.num == 0 {
		return Fraction{}, ErrDivisionByZero
	}
	n1, d1 := x.num, x.Den()
	n2, d2 := y.num, y.Den()
	if small(n1, d1, n2, d2) {
		return New(n1*d2, d1*n2)
	}
	return fromBig(product(n1, d2), product(d1, n2))
}

// String renders x as "num/den", including integers ("3/1") and zero ("0/1").
func (x Fraction) String() string {
	return strconv.FormatInt(x.num, 10) + "/" + strconv.FormatInt(x.Den(), 10)
}

func (x Fraction) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

func (x *Fraction) UnmarshalText(text []byte) error {
	f, err := Parse(string(text))
	if err != nil {
		return err
	}
	*x = f
	return nil
}

// BigRat converts x to a new big.Rat.
func (x Fraction) BigRat() *big.Rat {
	return big.NewRat(x.num, x.Den())
}

// normalize expects den != 0 and neither argument equal to math.MinInt64.
func normalize(num, den int64) Fraction {
	d := gcd(abs64(num), abs64(den))
	num, den = num/d, den/d
	if den < 0 {
		num, den = -num, -den
	}
	return Fraction{num: num, den1: den - 1}
}

// fromBig reduces num/den and narrows the result back to 64 bits.
func fromBig(num, den *big.Int) (Fraction, error) {
	if den.Sign() == 0 {
		return Fraction{}, ErrInvalidDenominator
	}
	r := new(big.Rat).SetFrac(num, den)
	n, d := r.Num(), r.Denom()
	if n.CmpAbs(maxBigMagnitude) > 0 || d.Cmp(maxBigMagnitude) > 0 {
		return Fraction{}, ErrOverflow
	}
	return Fraction{num: n.Int64(), den1: d.Int64() - 1}, nil
}

func product(a, b int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(a), big.NewInt(b))
}

// small reports whether every argument has a magnitude below maxSmall.
// Stored values are never math.MinInt64, so abs64 cannot overflow here.
func small(vs ...int64) bool {
	for _, v := range vs {
		if abs64(v) >= maxSmall {
			return false
		}
	}
	return true
}

// gcd returns the greatest common divisor of non-negative a and b, with
// gcd(a, 0) = a.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
