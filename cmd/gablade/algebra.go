package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/clifford/blade"
	"github.com/katalvlaran/clifford/cayley"
	"github.com/katalvlaran/clifford/signature"
)

var errUnsupportedDim = errors.New("gablade: algebras above 8 generators are not supported")

// algebra erases the dimension type parameter so subcommands can work with an
// algebra chosen at run time.
type algebra interface {
	Signature() signature.Signature
	Metric() string
	// Grades lists the blade names grouped by grade.
	Grades() [][]string
	Product(op blade.Op, lhs, rhs string) (string, error)
	Table(ctx context.Context, op blade.Op, w io.Writer, opts ...cayley.Option) (density float64, err error)
}

// newAlgebra picks the predeclared dimension type matching sig.
func newAlgebra(sig signature.Signature) (algebra, error) {
	switch sig.Dim() {
	case 0:
		return newTypedAlgebra[blade.D0](sig)
	case 1:
		return newTypedAlgebra[blade.D1](sig)
	case 2:
		return newTypedAlgebra[blade.D2](sig)
	case 3:
		return newTypedAlgebra[blade.D3](sig)
	case 4:
		return newTypedAlgebra[blade.D4](sig)
	case 5:
		return newTypedAlgebra[blade.D5](sig)
	case 6:
		return newTypedAlgebra[blade.D6](sig)
	case 7:
		return newTypedAlgebra[blade.D7](sig)
	case 8:
		return newTypedAlgebra[blade.D8](sig)
	default:
		return nil, errUnsupportedDim
	}
}

type typedAlgebra[D blade.Dim] struct {
	sig    signature.Signature
	metric blade.Metric[D]
}

func newTypedAlgebra[D blade.Dim](sig signature.Signature) (algebra, error) {
	m, err := signature.Metric[D](sig)
	if err != nil {
		return nil, err
	}

	return &typedAlgebra[D]{sig: sig, metric: m}, nil
}

func (t *typedAlgebra[D]) Signature() signature.Signature {
	return t.sig
}

func (t *typedAlgebra[D]) Metric() string {
	return t.metric.String()
}

func (t *typedAlgebra[D]) Grades() [][]string {
	out := make([][]string, t.sig.Dim()+1)
	for _, b := range blade.All[D]() {
		g, _ := b.Grade()
		out[g] = append(out[g], b.String())
	}

	return out
}

func (t *typedAlgebra[D]) Product(op blade.Op, lhs, rhs string) (string, error) {
	a, err := blade.Parse[D](lhs)
	if err != nil {
		return "", err
	}
	b, err := blade.Parse[D](rhs)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s = %s", op.Format(a, b), blade.Apply(op, a, b, t.metric)), nil
}

func (t *typedAlgebra[D]) Table(ctx context.Context, op blade.Op, w io.Writer, opts ...cayley.Option) (float64, error) {
	tbl, err := cayley.Build(ctx, t.metric, op, opts...)
	if err != nil {
		return 0, err
	}
	if err := tbl.Format(w); err != nil {
		return 0, err
	}

	return tbl.Density(), nil
}
