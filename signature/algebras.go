package signature

import (
	"fmt"
	"sort"
	"strings"
)

// Named algebras.
var (
	// Complex is Cl(0,1,0): one generator squaring to -1, the complex numbers.
	Complex = Signature{P: 0, Q: 1, R: 0}
	// Quaternion is Cl(0,2,0): e0, e1, e01 behave as i, j, k.
	Quaternion = Signature{P: 0, Q: 2, R: 0}
	// Dual is Cl(0,0,1): the dual numbers, ε² = 0.
	Dual = Signature{P: 0, Q: 0, R: 1}
	// VGA2 is the Euclidean plane Cl(2,0,0).
	VGA2 = Signature{P: 2, Q: 0, R: 0}
	// VGA3 is Euclidean space Cl(3,0,0).
	VGA3 = Signature{P: 3, Q: 0, R: 0}
	// PGA2 is plane projective geometric algebra Cl(2,0,1).
	PGA2 = Signature{P: 2, Q: 0, R: 1}
	// PGA3 is space projective geometric algebra Cl(3,0,1).
	PGA3 = Signature{P: 3, Q: 0, R: 1}
	// STA is the spacetime algebra Cl(1,3,0).
	STA = Signature{P: 1, Q: 3, R: 0}
	// CGA3 is conformal geometric algebra Cl(4,1,0).
	CGA3 = Signature{P: 4, Q: 1, R: 0}
)

var named = map[string]Signature{
	"complex":    Complex,
	"quaternion": Quaternion,
	"dual":       Dual,
	"vga2":       VGA2,
	"vga3":       VGA3,
	"pga2":       PGA2,
	"pga3":       PGA3,
	"sta":        STA,
	"cga3":       CGA3,
}

// Lookup returns the named algebra; matching is case-insensitive.
// Returns ErrUnknownAlgebra when no algebra has that name.
func Lookup(name string) (Signature, error) {
	if s, ok := named[strings.ToLower(strings.TrimSpace(name))]; ok {
		return s, nil
	}

	return Signature{}, fmt.Errorf("Lookup(%q): %w", name, ErrUnknownAlgebra)
}

// Names lists the registered algebra names in sorted order.
func Names() []string {
	out := make([]string, 0, len(named))
	for name := range named {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}
