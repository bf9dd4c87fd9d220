package blade

import "fmt"

// MaxDim is the largest supported algebra dimension. A presence vector is
// stored as a uint64 with bit i standing for generator eᵢ.
const MaxDim = 64

const panicDimInvalid = "blade: Dim.Len() must be within [0, 64]"

// Dim fixes the dimension N of an algebra at compile time.
// Implementations are empty struct types whose Len reports N:
//
//	type D12 struct{}
//
//	func (D12) Len() int { return 12 }
//
// Len must be constant for a given type and within [0, MaxDim].
type Dim interface {
	Len() int
}

// Predeclared dimensions for the common small algebras.
type (
	D0 struct{}
	D1 struct{}
	D2 struct{}
	D3 struct{}
	D4 struct{}
	D5 struct{}
	D6 struct{}
	D7 struct{}
	D8 struct{}
)

func (D0) Len() int { return 0 }
func (D1) Len() int { return 1 }
func (D2) Len() int { return 2 }
func (D3) Len() int { return 3 }
func (D4) Len() int { return 4 }
func (D5) Len() int { return 5 }
func (D6) Len() int { return 6 }
func (D7) Len() int { return 7 }
func (D8) Len() int { return 8 }

// DimOf reports N for the dimension type D.
// It panics if D.Len() is outside [0, MaxDim]; that is a programmer error.
func DimOf[D Dim]() int {
	var d D
	n := d.Len()
	if n < 0 || n > MaxDim {
		panic(fmt.Sprintf("%s, got %d", panicDimInvalid, n))
	}

	return n
}

// fullMask returns the presence encoding with every generator of D set.
func fullMask[D Dim]() uint64 {
	n := DimOf[D]()
	if n == MaxDim {
		return ^uint64(0)
	}

	return uint64(1)<<uint(n) - 1
}
