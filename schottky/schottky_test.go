package schottky_test

import (
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/dirichlet/gcircle"
	"github.com/katalvlaran/dirichlet/schottky"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClassic_Geodesics checks that the classic circles are disk geodesics.
func TestClassic_Geodesics(t *testing.T) {
	for i, p := range schottky.Classic() {
		assert.True(t, p.From.IsGeodesic(1e-9), "pairing %d from", i)
		assert.True(t, p.To.IsGeodesic(1e-9), "pairing %d to", i)
	}
}

// TestGenerators maps each From circle onto its To circle and keeps the
// unit circle invariant.
func TestGenerators(t *testing.T) {
	pairs := schottky.Classic()
	gens, err := schottky.Generators(pairs...)
	require.NoError(t, err)
	require.Len(t, gens, 2)

	unit, err := gcircle.FromCenterRadius(0, 1)
	require.NoError(t, err)

	for i, g := range gens {
		img, err := pairs[i].From.TransformBy(g)
		require.NoError(t, err)
		assert.True(t, img.Equal(pairs[i].To, 1e-9), "generator %d", i)

		u, err := unit.TransformBy(g)
		require.NoError(t, err)
		assert.True(t, u.Equal(unit, 1e-9), "generator %d preserves the disk", i)

		w, err := g.Apply(0)
		require.NoError(t, err)
		assert.Less(t, cmplx.Abs(w), 1.0)
	}
}

// TestGenerators_Errors covers empty input and circles without a triple.
func TestGenerators_Errors(t *testing.T) {
	_, err := schottky.Generators()
	require.ErrorIs(t, err, schottky.ErrNoPairings)

	big, err := gcircle.FromCenterRadius(0.1, 2)
	require.NoError(t, err)
	_, err = schottky.Generators(schottky.Pairing{From: big, To: big})
	require.ErrorIs(t, err, gcircle.ErrDegenerateInput)
}
