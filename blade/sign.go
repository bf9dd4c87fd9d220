package blade

// Sign is the two-element multiplicative group {Pos, Neg}.
// Pos is the zero value and the group identity.
type Sign uint8

const (
	// Pos is the positive sign (+1).
	Pos Sign = iota
	// Neg is the negative sign (-1).
	Neg
)

// Neg flips the sign. Neg(Neg(s)) == s.
func (s Sign) Neg() Sign {
	if s == Neg {
		return Pos
	}

	return Neg
}

// Mul is the group operation: equal signs give Pos, different signs give Neg.
func (s Sign) Mul(rhs Sign) Sign {
	if s == rhs {
		return Pos
	}

	return Neg
}

// Valid reports whether s is Pos or Neg.
func (s Sign) Valid() bool {
	return s == Pos || s == Neg
}

// String renders Neg as "-" and Pos as the empty string, the prefix used by
// blade notation.
func (s Sign) String() string {
	if s == Neg {
		return "-"
	}

	return ""
}

// flipIf returns s.Neg() when odd is true and s otherwise.
func (s Sign) flipIf(odd bool) Sign {
	if odd {
		return s.Neg()
	}

	return s
}
