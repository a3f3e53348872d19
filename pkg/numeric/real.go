package numeric

import (
	"strconv"

	api "numericadt/pkg/api/numeric"

	"github.com/pkg/errors"
)

var _ api.Number[Real] = Real(0)

// Real is a float64 number. Its imaginary part is always zero.
type Real float64

// NewReal creates a new real number from a float64 value.
func NewReal(value float64) Real {
	return Real(value)
}

// Kind implements numeric.Number.
func (x Real) Kind() api.Kind { return api.Real }

// IsZero implements numeric.Number.
func (x Real) IsZero() bool { return x == 0 }

// String implements numeric.Number.
func (x Real) String() string {
	return strconv.FormatFloat(float64(x), 'g', -1, 64)
}

// RealPart implements numeric.Number.
func (x Real) RealPart() Real { return x }

// ImagPart implements numeric.Number.
func (x Real) ImagPart() Real { return 0 }

// Conjugate implements numeric.Number.
func (x Real) Conjugate() Real { return x }

// Negative implements numeric.Number.
func (x Real) Negative() Real { return -x }

// Add implements numeric.Number.
func (x Real) Add(y Real) Real { return x + y }

// Sub implements numeric.Number.
func (x Real) Sub(y Real) Real { return x - y }

// Mul implements numeric.Number.
func (x Real) Mul(y Real) Real { return x * y }

// Div implements numeric.Number. Division by zero is an error, never an infinity.
func (x Real) Div(y Real) (Real, error) {
	if y.IsZero() {
		return 0, errors.Wrapf(ErrDivisionByZero, "%s / %s", x, y)
	}
	return x / y, nil
}

// Float64 implements numeric.Number.
func (x Real) Float64() float64 { return float64(x) }

// EqualTo implements numeric.Number.
func (x Real) EqualTo(y Real) bool {
	return floatsEqual(float64(x), float64(y))
}
