package blade_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/clifford/blade"
)

func TestString(t *testing.T) {
	tests := []struct {
		name string
		b    blade.Basis[blade.D3]
		want string
	}{
		{"vanishing", blade.Zero[blade.D3](), "0"},
		{"scalar", blade.One[blade.D3](), "e"},
		{"negative scalar", blade.One[blade.D3]().Neg(), "-e"},
		{"pseudoscalar", blade.I[blade.D3](), "i"},
		{"negative pseudoscalar", blade.I[blade.D3]().Neg(), "-i"},
		{"vector", mustNew(t, false, false, true), "e2"},
		{"bivector", mustNew(t, true, true, false), "e01"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.b.String())
		})
	}
}

func mustNew(t *testing.T, presence ...bool) blade.Basis[blade.D3] {
	t.Helper()
	b, err := blade.New[blade.D3](presence...)
	require.NoError(t, err)

	return b
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr error
	}{
		{"0", "0", nil},
		{"e", "e", nil},
		{"-e", "-e", nil},
		{"i", "i", nil},
		{"-i", "-i", nil},
		{"e2", "e2", nil},
		{" e01 ", "e01", nil},
		{"e10", "-e01", nil},
		{"-e10", "e01", nil},
		{"e210", "-i", nil},
		{"e012", "i", nil},
		{"e3", "", blade.ErrIndexOutOfRange},
		{"e00", "", blade.ErrSyntax},
		{"e0x", "", blade.ErrSyntax},
		{"x01", "", blade.ErrSyntax},
		{"", "", blade.ErrSyntax},
		{"-0", "", blade.ErrSyntax},
		{"--e0", "", blade.ErrSyntax},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			b, err := blade.Parse[blade.D3](tc.in)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, b.String())
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	for _, b := range signedBlades[blade.D4]() {
		got, err := blade.Parse[blade.D4](b.String())
		require.NoError(t, err)
		assert.Equal(t, b, got)
	}
	got, err := blade.Parse[blade.D4](blade.Zero[blade.D4]().String())
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { blade.MustParse[blade.D2]("e7") })
	assert.NotPanics(t, func() { blade.MustParse[blade.D2]("e1") })
}
