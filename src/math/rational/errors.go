package rational

import (
	"errors"
	"fmt"
)

// Errors returned by constructors and arithmetic in this package. Callers
// should match them with errors.Is, since upper layers wrap them.
var (
	ErrDivisionByZero = errors.New("rational: division by zero")
	// ErrInvalidDenominator is a division-by-zero condition detected at
	// construction time, so it also matches ErrDivisionByZero.
	ErrInvalidDenominator = fmt.Errorf("%w: zero denominator", ErrDivisionByZero)
	ErrOverflow           = errors.New("rational: value does not fit in 64 bits")
	ErrSyntax             = errors.New("rational: invalid fraction syntax")
)
