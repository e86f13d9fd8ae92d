package rational

import (
	"math"
	"math/big"
)

var (
	Zero     = Fraction{}
	One      = Fraction{num: 1}
	MinusOne = Fraction{num: -1}
)

const (
	// maxSmall bounds the operands of the int64 fast path. Two 31-bit
	// magnitudes multiply into 62 bits, and the sum of two such products
	// needs at most 63.
	maxSmall = math.MaxInt32

	// maxMagnitude is the largest numerator or denominator magnitude that
	// can be stored. The range is symmetric so that Neg never overflows.
	maxMagnitude = math.MaxInt64
)

var maxBigMagnitude = new(big.Int).SetInt64(maxMagnitude)
