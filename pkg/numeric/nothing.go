package numeric

import (
	"math"

	api "numericadt/pkg/api/numeric"

	"github.com/pkg/errors"
)

// nothingValue stands in where no number exists, such as an empty reduction.
type nothingValue struct{}

func (n nothingValue) Kind() api.Kind           { return api.Nothing }
func (n nothingValue) IsZero() bool             { return false }
func (n nothingValue) String() string           { return "" }
func (n nothingValue) RealPart() api.Value      { return n }
func (n nothingValue) ImagPart() api.Value      { return n }
func (n nothingValue) Conjugate() api.Value     { return n }
func (n nothingValue) Negative() api.Value      { return n }
func (n nothingValue) Float64() float64         { return math.NaN() }
func (n nothingValue) EqualTo(y api.Value) bool { return y != nil && y.Kind() == api.Nothing }

func (n nothingValue) Add(y api.Value) (api.Value, error) { return nil, n.mismatch("add", y) }
func (n nothingValue) Sub(y api.Value) (api.Value, error) { return nil, n.mismatch("sub", y) }
func (n nothingValue) Mul(y api.Value) (api.Value, error) { return nil, n.mismatch("mul", y) }
func (n nothingValue) Div(y api.Value) (api.Value, error) { return nil, n.mismatch("div", y) }

func (n nothingValue) mismatch(op string, y api.Value) error {
	return errors.Wrapf(ErrKindMismatch, "%s: %s with %s", op, api.Nothing, kindOf(y))
}

var (
	_ api.Value = nothingValue{}
	// None is the value of kind Nothing
	None api.Value = nothingValue{}
)
