package split

import (
	"errors"
	"fmt"

	"github.com/avdva/split/internal/mathutil"
)

const (
	// DefaultClampEpsilon is the margin kept between an alignment and ±1
	// before the rapidity transform.
	DefaultClampEpsilon = 1e-6
	// MinClampEpsilon is the smallest accepted clamp epsilon.
	// With smaller margins tanh(2*atanh(1-eps)) rounds to 1 in float64,
	// and products of two saturated alignments leave (-1, 1).
	MinClampEpsilon = 1e-7
	// DefaultZeroWeightGuard is the total weight, at or below which
	// addition falls back to the neutral alignment.
	DefaultZeroWeightGuard = 1e-12
	// DefaultGamma is the default weighting exponent, w(m) = |m|^gamma.
	DefaultGamma = 1.0
)

var (
	// ErrDivisionByZero is returned by Div, if the divisor's magnitude is zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrInvalidParams is wrapped by errors, returned from NewParams.
	ErrInvalidParams = errors.New("invalid params")
)

// Params holds the settings of the algebra.
// Params is a value, and it is never modified by operations,
// so the same Params can be used from multiple goroutines.
type Params struct {
	// ClampEpsilon is the margin subtracted from ±1 before atanh.
	ClampEpsilon float64 `yaml:"clamp_epsilon" json:"clamp_epsilon"`
	// ZeroWeightGuard is the threshold for the total weight in addition.
	ZeroWeightGuard float64 `yaml:"zero_weight_guard" json:"zero_weight_guard"`
	// Gamma is the exponent applied to |magnitude| to derive addition weights.
	// Gamma = 0 weights both operands equally.
	Gamma float64 `yaml:"gamma" json:"gamma"`
}

// DefaultParams returns default settings.
func DefaultParams() Params {
	return Params{
		ClampEpsilon:    DefaultClampEpsilon,
		ZeroWeightGuard: DefaultZeroWeightGuard,
		Gamma:           DefaultGamma,
	}
}

// NewParams returns validated params.
func NewParams(eps, guard, gamma float64) (Params, error) {
	p := Params{ClampEpsilon: eps, ZeroWeightGuard: guard, Gamma: gamma}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// Validate checks that MinClampEpsilon <= ClampEpsilon < 1, and that ZeroWeightGuard
// and Gamma are finite and non-negative.
func (p Params) Validate() error {
	if !(p.ClampEpsilon >= MinClampEpsilon && p.ClampEpsilon < 1) {
		return fmt.Errorf("%w: clamp epsilon %v is out of [%v, 1)", ErrInvalidParams, p.ClampEpsilon, MinClampEpsilon)
	}
	if !finite(p.ZeroWeightGuard) || p.ZeroWeightGuard < 0 {
		return fmt.Errorf("%w: zero weight guard %v", ErrInvalidParams, p.ZeroWeightGuard)
	}
	if !finite(p.Gamma) || p.Gamma < 0 {
		return fmt.Errorf("%w: gamma %v", ErrInvalidParams, p.Gamma)
	}
	return nil
}

// WithGamma returns a copy of p with the given weighting exponent.
// The result is not validated. Add treats a negative or NaN exponent as 0.
func (p Params) WithGamma(gamma float64) Params {
	p.Gamma = gamma
	return p
}

// Add returns x ⊕ y.
// Magnitudes are summed, alignments are averaged in rapidity space,
// weighted by |m|^Gamma. If the total weight is negligible, the resulting
// alignment is 0.
func (p Params) Add(x, y Number) Number {
	u1 := mathutil.ToRapidity(x.Alignment, p.ClampEpsilon)
	u2 := mathutil.ToRapidity(y.Alignment, p.ClampEpsilon)
	w1 := mathutil.Weight(x.Magnitude, p.Gamma)
	w2 := mathutil.Weight(y.Magnitude, p.Gamma)
	var a float64
	if u, ok := mathutil.WeightedMean(u1, w1, u2, w2, p.ZeroWeightGuard); ok {
		a = mathutil.FromRapidity(u)
	}
	return New(x.Magnitude+y.Magnitude, a)
}

// Neg returns -x. Only the magnitude changes its sign.
func (p Params) Neg(x Number) Number {
	return New(-x.Magnitude, x.Alignment)
}

// Sub returns x ⊖ y.
func (p Params) Sub(x, y Number) Number {
	return p.Add(x, p.Neg(y)) // x-y = x+(-y)
}

// Mul returns x ⊗ y.
// Magnitudes are multiplied, rapidities are summed.
func (p Params) Mul(x, y Number) Number {
	u1 := mathutil.ToRapidity(x.Alignment, p.ClampEpsilon)
	u2 := mathutil.ToRapidity(y.Alignment, p.ClampEpsilon)
	return New(x.Magnitude*y.Magnitude, mathutil.FromRapidity(u1+u2))
}

// Div returns x ⊘ y.
// Magnitudes are divided, rapidities are subtracted.
// Returns ErrDivisionByZero if y's magnitude is zero.
func (p Params) Div(x, y Number) (Number, error) {
	if y.Magnitude == 0 {
		return zero, ErrDivisionByZero
	}
	u1 := mathutil.ToRapidity(x.Alignment, p.ClampEpsilon)
	u2 := mathutil.ToRapidity(y.Alignment, p.ClampEpsilon)
	return New(x.Magnitude/y.Magnitude, mathutil.FromRapidity(u1-u2)), nil
}

// Add returns n ⊕ other with default params.
func (n Number) Add(other Number) Number {
	return DefaultParams().Add(n, other)
}

// Sub returns n ⊖ other with default params.
func (n Number) Sub(other Number) Number {
	return DefaultParams().Sub(n, other)
}

// Neg returns -n.
func (n Number) Neg() Number {
	return DefaultParams().Neg(n)
}

// Mul returns n ⊗ other with default params.
func (n Number) Mul(other Number) Number {
	return DefaultParams().Mul(n, other)
}

// Div returns n ⊘ other with default params.
// Returns ErrDivisionByZero if other's magnitude is zero.
func (n Number) Div(other Number) (Number, error) {
	return DefaultParams().Div(n, other)
}

// MustDiv is like Div, but panics on division by zero.
func (n Number) MustDiv(other Number) Number {
	res, err := n.Div(other)
	if err != nil {
		panic(err)
	}
	return res
}

// AddGamma returns n ⊕ other with default params and the given weighting exponent.
// A negative or NaN gamma weights both operands equally, as gamma = 0 does.
func (n Number) AddGamma(other Number, gamma float64) Number {
	return DefaultParams().WithGamma(gamma).Add(n, other)
}

// SubGamma returns n ⊖ other with default params and the given weighting exponent.
func (n Number) SubGamma(other Number, gamma float64) Number {
	return DefaultParams().WithGamma(gamma).Sub(n, other)
}
