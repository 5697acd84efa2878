package demo

import (
	"fmt"

	"github.com/avdva/split"
)

// Op is an operation of the algebra.
type Op string

// Supported operations.
const (
	OpAdd Op = "add"
	OpSub Op = "sub"
	OpMul Op = "mul"
	OpDiv Op = "div"
)

var opSymbols = map[Op]string{
	OpAdd: "oplus",
	OpSub: "ominus",
	OpMul: "otimes",
	OpDiv: "odiv",
}

// Symbol returns an ASCII name of the operator, like "oplus".
func (op Op) Symbol() string {
	if s, ok := opSymbols[op]; ok {
		return s
	}
	return string(op)
}

// Apply evaluates 'x op y' with given params.
func (op Op) Apply(p split.Params, x, y split.Number) (split.Number, error) {
	switch op {
	case OpAdd:
		return p.Add(x, y), nil
	case OpSub:
		return p.Sub(x, y), nil
	case OpMul:
		return p.Mul(x, y), nil
	case OpDiv:
		return p.Div(x, y)
	default:
		return split.Number{}, fmt.Errorf("unknown op %q", string(op))
	}
}

// Scenario is a single check: 'X Op Y' must be close to Expected.
type Scenario struct {
	Name     string
	Op       Op
	X, Y     split.Number
	Expected split.Number
	// Tolerance overrides the runner's tolerance, if positive.
	Tolerance float64
}

// Scenarios returns the built-in checks: four worked examples,
// identities and inverses.
func Scenarios() []Scenario {
	return []Scenario{
		{Name: "addition", Op: OpAdd, X: split.New(10, 0.8), Y: split.New(5, -0.6), Expected: split.New(15, 0.463)},
		{Name: "subtraction", Op: OpSub, X: split.New(12, 0.7), Y: split.New(5, 0.9), Expected: split.New(7, 0.780)},
		{Name: "multiplication", Op: OpMul, X: split.New(4, 0.6), Y: split.New(3, -0.5), Expected: split.New(12, 0.143)},
		{Name: "division", Op: OpDiv, X: split.New(9, 0.9), Y: split.New(3, 0.5), Expected: split.New(3, 0.728)},
		{Name: "additive identity", Op: OpAdd, X: split.New(7, 0.25), Y: split.New(0, 1), Expected: split.New(7, 0.25)},
		{Name: "multiplicative identity", Op: OpMul, X: split.New(7, 0.25), Y: split.New(1, 0), Expected: split.New(7, 0.25), Tolerance: 1e-12},
		{Name: "additive inverse", Op: OpAdd, X: split.New(3, -0.4), Y: split.New(3, -0.4).Neg(), Expected: split.New(0, -0.4)},
		{Name: "multiplicative inverse", Op: OpMul, X: split.New(2, 0.3), Y: split.New(0.5, -0.3), Expected: split.New(1, 0)},
	}
}
