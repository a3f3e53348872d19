package conformance

import (
	"fmt"
	"math/rand/v2"

	apiNum "numericadt/pkg/api/numeric"
	num "numericadt/pkg/numeric"
)

// Generator draws a random value of one variant.
type Generator[T apiNum.Number[T]] func(r *rand.Rand) T

// uniform returns a float in [-100, 100).
func uniform(r *rand.Rand) float64 {
	return r.Float64()*200 - 100
}

// RealGenerator draws reals uniformly from [-100, 100).
func RealGenerator(r *rand.Rand) num.Real {
	return num.NewReal(uniform(r))
}

// ComplexGenerator draws both components uniformly from [-100, 100).
func ComplexGenerator(r *rand.Rand) num.Complex {
	return num.NewComplex(uniform(r), uniform(r))
}

// RationalGenerator draws n/d with |n| <= 1000 and 1 <= d <= 1000.
func RationalGenerator(r *rand.Rand) num.Rational {
	q, _ := num.NewRational(r.Int64N(2001)-1000, r.Int64N(1000)+1)
	return q
}

// DecimalGenerator draws decimals with up to ten significant digits and six fractional ones.
func DecimalGenerator(r *rand.Rand) num.Decimal {
	return num.NewDecimal(r.Int64N(2_000_000_001)-1_000_000_000, -int32(r.IntN(7)))
}

// draw generates one sample. A panicking generator yields a reason instead.
func draw[T apiNum.Number[T]](gen Generator[T], r *rand.Rand) (s sample[T], reason string) {
	defer func() {
		if p := recover(); p != nil {
			reason = "panic: " + fmt.Sprint(p)
		}
	}()
	return sample[T]{x: gen(r), y: gen(r), z: gen(r)}, ""
}
