package blade

import (
	"fmt"
	"strings"
)

// Op names one of the blade products so it can be chosen at run time, e.g. to
// build a product table or from a command line.
type Op uint8

const (
	// OpGeometric is the geometric product AB.
	OpGeometric Op = iota
	// OpExterior is the exterior product A ∧ B.
	OpExterior
	// OpRegressive is the regressive product A ∨ B.
	OpRegressive
	// OpLeftContraction is the left contraction A >> B.
	OpLeftContraction
	// OpRightContraction is the right contraction A << B.
	OpRightContraction
	// OpInner is the bidirectional inner product A | B, zero for scalar operands.
	OpInner
	// OpDot is the bidirectional contraction A · B.
	OpDot
	// OpScalar is the scalar product A * B.
	OpScalar
)

const panicUnknownOp = "blade: Apply: unknown Op"

var opNames = [...]string{
	OpGeometric:        "geometric",
	OpExterior:         "exterior",
	OpRegressive:       "regressive",
	OpLeftContraction:  "left-contraction",
	OpRightContraction: "right-contraction",
	OpInner:            "inner",
	OpDot:              "dot",
	OpScalar:           "scalar",
}

var opSymbols = [...]string{
	OpGeometric:        "",
	OpExterior:         "∧",
	OpRegressive:       "∨",
	OpLeftContraction:  ">>",
	OpRightContraction: "<<",
	OpInner:            "|",
	OpDot:              "·",
	OpScalar:           "*",
}

// opAliases maps accepted spellings to products; names and symbols are added in init.
var opAliases = map[string]Op{
	"gp":    OpGeometric,
	"mul":   OpGeometric,
	"wedge": OpExterior,
	"outer": OpExterior,
	"^":     OpExterior,
	"vee":   OpRegressive,
	"v":     OpRegressive,
	"lc":    OpLeftContraction,
	"rc":    OpRightContraction,
	".":     OpDot,
}

func init() {
	for _, op := range Ops() {
		opAliases[op.String()] = op
		if sym := op.Symbol(); sym != "" {
			opAliases[sym] = op
		}
	}
}

// Ops lists every product in declaration order.
func Ops() []Op {
	return []Op{
		OpGeometric, OpExterior, OpRegressive, OpLeftContraction,
		OpRightContraction, OpInner, OpDot, OpScalar,
	}
}

// ParseOp resolves a product by name ("exterior"), alias ("wedge", "lc") or
// symbol ("∧", "^", ">>"). Matching is case-insensitive.
// Returns ErrUnknownOp for anything else.
func ParseOp(name string) (Op, error) {
	if op, ok := opAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return op, nil
	}

	return 0, errorf(fmt.Sprintf("ParseOp(%q)", name), ErrUnknownOp)
}

// Valid reports whether op is a declared product.
func (op Op) Valid() bool {
	return op <= OpScalar
}

// String returns the product name, e.g. "left-contraction".
func (op Op) String() string {
	if !op.Valid() {
		return fmt.Sprintf("Op(%d)", uint8(op))
	}

	return opNames[op]
}

// Symbol returns the infix operator of the product; the geometric product is
// written by juxtaposition and has the empty symbol.
func (op Op) Symbol() string {
	if !op.Valid() {
		return "?"
	}

	return opSymbols[op]
}

// Format renders "a op b" the way the product is written, e.g. "e0 ∧ e1" or
// "e0 e1" for the geometric product.
func (op Op) Format(a, b fmt.Stringer) string {
	if sym := op.Symbol(); sym != "" {
		return a.String() + " " + sym + " " + b.String()
	}

	return a.String() + " " + b.String()
}

// Apply evaluates the product op on a and b under metric m.
// It panics on an undeclared Op.
func Apply[D Dim](op Op, a, b Basis[D], m Metric[D]) Basis[D] {
	switch op {
	case OpGeometric:
		return a.Geometric(b, m)
	case OpExterior:
		return a.Exterior(b, m)
	case OpRegressive:
		return a.Regressive(b, m)
	case OpLeftContraction:
		return a.LeftContraction(b, m)
	case OpRightContraction:
		return a.RightContraction(b, m)
	case OpInner:
		return a.Inner(b, m)
	case OpDot:
		return a.Dot(b, m)
	case OpScalar:
		return a.Scalar(b, m)
	default:
		panic(fmt.Sprintf("%s %d", panicUnknownOp, uint8(op)))
	}
}
