// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package split implements split numbers: pairs of a real magnitude
// and an alignment bounded by the open interval (-1, 1).
// Alignments are combined in rapidity space, u = atanh(a), so that
// the result of every operation stays inside the interval.
package split

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/avdva/split/internal/mathutil"
)

var (
	zero = Number{}

	jsonParts = []string{`{"m":`, `,"a":`, `}`}
)

// Number is a split number.
// Alignment is expected to lie in (-1, 1). Values at or beyond the bounds
// are not rejected, operations clamp them before the rapidity transform.
type Number struct {
	Magnitude float64
	Alignment float64
}

// New returns a new Number.
func New(m, a float64) Number {
	return Number{Magnitude: m, Alignment: a}
}

// Valid returns true, if the magnitude is finite and the alignment
// lies strictly inside (-1, 1).
func (n Number) Valid() bool {
	if math.IsNaN(n.Magnitude) || math.IsInf(n.Magnitude, 0) {
		return false
	}
	return n.Alignment > -1 && n.Alignment < 1
}

// IsZero returns true, if n belongs to the zero class, i.e. its magnitude is zero.
func (n Number) IsZero() bool {
	return n.Magnitude == 0
}

// Sign returns -1 if the magnitude is < 0, 0 if it is 0, 1 if > 0.
func (n Number) Sign() int {
	switch {
	case n.Magnitude > 0:
		return 1
	case n.Magnitude < 0:
		return -1
	default:
		return 0
	}
}

// Canonical returns (0, 0) for any member of the zero class, and n otherwise.
func (n Number) Canonical() Number {
	if n.IsZero() {
		return zero
	}
	return n
}

// Eq returns true, if both numbers are the same.
// All members of the zero class are equal.
func (n Number) Eq(other Number) bool {
	return n.Canonical() == other.Canonical()
}

// Close returns true, if magnitudes are equal, and alignments differ by at most tol.
func (n Number) Close(other Number, tol float64) bool {
	return n.Magnitude == other.Magnitude && math.Abs(n.Alignment-other.Alignment) <= tol
}

// Rapidity returns the alignment of n in rapidity space using default params.
func (n Number) Rapidity() float64 {
	return mathutil.ToRapidity(n.Alignment, DefaultClampEpsilon)
}

// String returns a string representation of the number, like `(15, 0.463)`.
func (n Number) String() string {
	var builder strings.Builder
	builder.WriteRune('(')
	builder.WriteString(strconv.FormatFloat(n.Magnitude, 'g', -1, 64))
	builder.WriteString(", ")
	builder.WriteString(strconv.FormatFloat(n.Alignment, 'g', -1, 64))
	builder.WriteRune(')')
	return builder.String()
}

// GoString returns debug string representation.
func (n Number) GoString() string {
	return n.String() + fmt.Sprintf(" {u=%v}", n.Rapidity())
}

// StringFixed returns a string representation with both components rounded
// half away from zero to 'places' decimal digits, like `(15.000, 0.463)`.
func (n Number) StringFixed(places int32) string {
	var builder strings.Builder
	builder.WriteRune('(')
	builder.WriteString(fixedString(n.Magnitude, places))
	builder.WriteString(", ")
	builder.WriteString(fixedString(n.Alignment, places))
	builder.WriteRune(')')
	return builder.String()
}

// Round returns n with both components rounded to 'places' decimal digits.
func (n Number) Round(places int32) Number {
	return New(roundFloat(n.Magnitude, places), roundFloat(n.Alignment, places))
}

// MarshalJSON marshals a number as `{"m":15,"a":0.463}`.
// Infinities and not-a-numbers can not be marshaled.
func (n Number) MarshalJSON() ([]byte, error) {
	if !finite(n.Magnitude) || !finite(n.Alignment) {
		return nil, fmt.Errorf("can not marshal %v", n)
	}
	var builder strings.Builder
	builder.WriteString(jsonParts[0])
	builder.WriteString(strconv.FormatFloat(n.Magnitude, 'g', -1, 64))
	builder.WriteString(jsonParts[1])
	builder.WriteString(strconv.FormatFloat(n.Alignment, 'g', -1, 64))
	builder.WriteString(jsonParts[2])
	return []byte(builder.String()), nil
}

// MarshalYAML marshals a number as a mapping with `m` and `a` keys.
func (n Number) MarshalYAML() (interface{}, error) {
	return struct {
		M float64 `yaml:"m"`
		A float64 `yaml:"a"`
	}{n.Magnitude, n.Alignment}, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func fixedString(f float64, places int32) string {
	if !finite(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return decimal.NewFromFloat(f).StringFixed(places)
}

func roundFloat(f float64, places int32) float64 {
	if !finite(f) {
		return f
	}
	res, _ := decimal.NewFromFloat(f).Round(places).Float64()
	return res
}
