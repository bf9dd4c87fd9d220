package blade_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/clifford/blade"
)

func TestNewMetric_Validation(t *testing.T) {
	tests := []struct {
		name    string
		squares []blade.Square
		wantErr error
	}{
		{"exact length", []blade.Square{blade.SquarePos, blade.SquareNeg, blade.SquareZero}, nil},
		{"too short", []blade.Square{blade.SquarePos}, blade.ErrDimensionMismatch},
		{"too long", []blade.Square{blade.SquarePos, blade.SquarePos, blade.SquarePos, blade.SquarePos}, blade.ErrDimensionMismatch},
		{"empty", nil, blade.ErrDimensionMismatch},
		{"unknown square", []blade.Square{blade.SquarePos, blade.Square(9), blade.SquarePos}, blade.ErrInvalidSquare},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := blade.NewMetric[blade.D3](tc.squares...)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.squares, m.Squares())
		})
	}
}

func TestMetric_At(t *testing.T) {
	m, err := blade.NewMetric[blade.D3](blade.SquareNeg, blade.SquarePos, blade.SquareZero)
	require.NoError(t, err)

	want := []blade.Square{blade.SquareNeg, blade.SquarePos, blade.SquareZero}
	for i, w := range want {
		got, err := m.At(i)
		require.NoError(t, err)
		assert.Equal(t, w, got, "axis %d", i)
	}

	_, err = m.At(3)
	assert.ErrorIs(t, err, blade.ErrIndexOutOfRange)
	_, err = m.At(-1)
	assert.ErrorIs(t, err, blade.ErrIndexOutOfRange)
	assert.Equal(t, 3, m.Len())
	assert.True(t, m.IsDegenerate())
}

// TestMetric_ZeroValueIsEuclidean pins the documented zero value.
func TestMetric_ZeroValueIsEuclidean(t *testing.T) {
	var m blade.Metric[blade.D4]
	assert.Equal(t, blade.Euclidean[blade.D4](), m)
	assert.Equal(t, []blade.Square{blade.SquarePos, blade.SquarePos, blade.SquarePos, blade.SquarePos}, m.Squares())
	assert.False(t, m.IsDegenerate())
}

func TestMetric_String(t *testing.T) {
	m, err := blade.NewMetric[blade.D3](blade.SquarePos, blade.SquareNeg, blade.SquareZero)
	require.NoError(t, err)
	assert.Equal(t, "e0²=1 e1²=-1 e2²=0", m.String())
	assert.Equal(t, "", blade.Euclidean[blade.D0]().String())
	assert.Equal(t, "Square(5)", blade.Square(5).String())
}
