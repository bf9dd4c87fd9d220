package cayley

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/clifford/blade"
)

// Table is the product table of one blade.Op over all positive basis blades of
// an algebra. It is immutable once built and safe for concurrent reads.
type Table[D blade.Dim] struct {
	op      blade.Op
	metric  blade.Metric[D]
	blades  []blade.Basis[D] // row/column order
	pos     []int            // presence encoding → row/column index
	cells   []blade.Basis[D] // row-major, len(blades)²
	support *roaring.Bitmap  // i*K+j of every non-vanishing cell
	grades  []*roaring.Bitmap
}

// Build evaluates op for every ordered pair of positive basis blades under m.
// Rows are computed concurrently; canceling ctx aborts the build with ctx.Err().
//
// Errors: ErrTooLarge if N exceeds the configured maximum, blade.ErrUnknownOp
// for an undeclared op, or the context error.
func Build[D blade.Dim](ctx context.Context, m blade.Metric[D], op blade.Op, opts ...Option) (*Table[D], error) {
	o := gatherOptions(opts)
	n := blade.DimOf[D]()
	if n > o.MaxDim || n > hardMaxDim {
		return nil, fmt.Errorf("Build: N=%d above %d: %w", n, min(o.MaxDim, hardMaxDim), ErrTooLarge)
	}
	if !op.Valid() {
		return nil, fmt.Errorf("Build: %s: %w", op, blade.ErrUnknownOp)
	}

	blades := blade.All[D]()
	k := len(blades)
	t := &Table[D]{
		op:     op,
		metric: m,
		blades: blades,
		pos:    make([]int, k),
		cells:  make([]blade.Basis[D], k*k),
	}
	for i, b := range blades {
		mask, _ := b.Bits()
		t.pos[mask] = i
	}

	// Each row owns a disjoint slice of cells, so workers never share writes.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i := range blades {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			row := t.cells[i*k : (i+1)*k]
			for j, rhs := range blades {
				row[j] = blade.Apply(op, blades[i], rhs, m)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	t.support = roaring.New()
	for idx, c := range t.cells {
		if !c.IsZero() {
			t.support.Add(uint32(idx))
		}
	}
	t.grades = make([]*roaring.Bitmap, n+1)
	for grade := range t.grades {
		t.grades[grade] = roaring.New()
	}
	for i, b := range blades {
		grade, _ := b.Grade()
		t.grades[grade].Add(uint32(i))
	}
	t.support.RunOptimize()

	return t, nil
}

// Op returns the tabulated product.
func (t *Table[D]) Op() blade.Op {
	return t.op
}

// Metric returns the metric the table was built under.
func (t *Table[D]) Metric() blade.Metric[D] {
	return t.metric
}

// Size returns K = 2^N, the number of rows and columns.
func (t *Table[D]) Size() int {
	return len(t.blades)
}

// Blades returns a copy of the row/column order.
func (t *Table[D]) Blades() []blade.Basis[D] {
	out := make([]blade.Basis[D], len(t.blades))
	copy(out, t.blades)

	return out
}

// IndexOf returns the row/column index of a positive basis blade.
// Returns ErrNotPositiveBlade for a vanishing or negative blade.
func (t *Table[D]) IndexOf(b blade.Basis[D]) (int, error) {
	mask, ok := b.Bits()
	if sign, _ := b.Sign(); !ok || sign != blade.Pos {
		return 0, fmt.Errorf("IndexOf(%s): %w", b, ErrNotPositiveBlade)
	}

	return t.pos[mask], nil
}

// Cell returns the product of blade i and blade j in table order.
// Returns ErrOutOfRange for an index outside [0, K).
func (t *Table[D]) Cell(i, j int) (blade.Basis[D], error) {
	k := len(t.blades)
	if i < 0 || i >= k || j < 0 || j >= k {
		return blade.Basis[D]{}, fmt.Errorf("Cell(%d, %d): %w", i, j, ErrOutOfRange)
	}

	return t.cells[i*k+j], nil
}

// At looks up the product of a and b. Operand signs are applied to the
// tabulated unit product, every product being linear in each operand; a
// vanishing operand gives the vanishing blade.
func (t *Table[D]) At(a, b blade.Basis[D]) blade.Basis[D] {
	am, aok := a.Bits()
	bm, bok := b.Bits()
	if !aok || !bok {
		return blade.Basis[D]{}
	}
	as, _ := a.Sign()
	bs, _ := b.Sign()

	p := t.cells[t.pos[am]*len(t.blades)+t.pos[bm]]
	if as.Mul(bs) == blade.Neg {
		return p.Neg()
	}

	return p
}

// Support returns the pair indices i*K+j of every non-vanishing cell.
// The bitmap is a copy owned by the caller.
func (t *Table[D]) Support() *roaring.Bitmap {
	return t.support.Clone()
}

// Grade returns the indices of the blades of grade k; empty for k outside [0, N].
// The bitmap is a copy owned by the caller.
func (t *Table[D]) Grade(k int) *roaring.Bitmap {
	if k < 0 || k >= len(t.grades) {
		return roaring.New()
	}

	return t.grades[k].Clone()
}

// Density returns the fraction of non-vanishing cells.
func (t *Table[D]) Density() float64 {
	return float64(t.support.GetCardinality()) / float64(len(t.cells))
}

// Format writes the table as an aligned grid: a header row of blades, then one
// row per left operand. The corner cell names the product.
func (t *Table[D]) Format(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	k := len(t.blades)

	cells := make([]string, 0, k+1)
	cells = append(cells, t.op.String())
	for _, b := range t.blades {
		cells = append(cells, b.String())
	}
	if _, err := fmt.Fprintln(tw, strings.Join(cells, "\t")); err != nil {
		return err
	}

	for i, lhs := range t.blades {
		cells = cells[:0]
		cells = append(cells, lhs.String())
		for _, c := range t.cells[i*k : (i+1)*k] {
			cells = append(cells, c.String())
		}
		if _, err := fmt.Fprintln(tw, strings.Join(cells, "\t")); err != nil {
			return err
		}
	}

	return tw.Flush()
}
