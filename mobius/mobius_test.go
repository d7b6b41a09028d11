package mobius_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/dirichlet/mobius"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

// hyperbolicShift is a disk automorphism z ↦ (z + ½)/(½z + 1).
func hyperbolicShift(t *testing.T) mobius.Map {
	t.Helper()
	g, err := mobius.New(1, 0.5, 0.5, 1)
	require.NoError(t, err)

	return g
}

// TestNew_Errors verifies that singular and non-finite matrices are rejected.
func TestNew_Errors(t *testing.T) {
	_, err := mobius.New(1, 2, 2, 4)
	require.ErrorIs(t, err, mobius.ErrSingular)

	_, err = mobius.New(0, 0, 0, 0)
	require.ErrorIs(t, err, mobius.ErrSingular)

	_, err = mobius.New(complex(math.NaN(), 0), 0, 0, 1)
	require.ErrorIs(t, err, mobius.ErrNonFinite)

	_, err = mobius.New(1, cmplx.Inf(), 0, 1)
	require.ErrorIs(t, err, mobius.ErrNonFinite)
}

// TestApply covers the Möbius action, its pole and non-finite input.
func TestApply(t *testing.T) {
	g := hyperbolicShift(t)

	w, err := g.Apply(0)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, real(w), tol)
	assert.InDelta(t, 0.0, imag(w), tol)

	_, err = g.Apply(-2) // ½·(−2) + 1 == 0
	require.ErrorIs(t, err, mobius.ErrPole)

	_, err = g.Apply(complex(math.Inf(1), 0))
	require.ErrorIs(t, err, mobius.ErrNonFinite)
}

// TestApplyAll maps a sequence and reports the failing index.
func TestApplyAll(t *testing.T) {
	g := hyperbolicShift(t)

	out, err := g.ApplyAll([]complex128{0, 0.5})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.InDelta(t, 0.8, real(out[1]), tol) // (½ + ½)/(¼ + 1)

	_, err = g.ApplyAll([]complex128{0, -2})
	require.ErrorIs(t, err, mobius.ErrPole)
}

// TestInverseAndCompose checks g∘g⁻¹ == id and that Adjugate agrees with
// Inverse up to scale while differing as a matrix.
func TestInverseAndCompose(t *testing.T) {
	g := hyperbolicShift(t)

	inv, err := g.Inverse()
	require.NoError(t, err)
	assert.True(t, g.Compose(inv).IsIdentity(tol))
	assert.True(t, inv.Compose(g).IsIdentity(tol))

	adj := g.Adjugate()
	assert.True(t, adj.Equal(inv, tol), "adjugate is projectively the inverse")
	assert.NotEqual(t, adj, inv, "adjugate is not the normalized inverse")

	z := 0.3 + 0.2i
	w, err := g.Apply(z)
	require.NoError(t, err)
	back, err := inv.Apply(w)
	require.NoError(t, err)
	assert.InDelta(t, real(z), real(back), tol)
	assert.InDelta(t, imag(z), imag(back), tol)

	_, err = mobius.Map{}.Inverse()
	require.ErrorIs(t, err, mobius.ErrSingular)
}

// TestCompose_Order verifies that Compose applies its argument first.
func TestCompose_Order(t *testing.T) {
	shift, err := mobius.New(1, 1, 0, 1) // z + 1
	require.NoError(t, err)
	scale, err := mobius.New(2, 0, 0, 1) // 2z
	require.NoError(t, err)

	w, err := scale.Compose(shift).Apply(1) // 2(1 + 1)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, real(w), tol)

	w, err = shift.Compose(scale).Apply(1) // 2·1 + 1
	require.NoError(t, err)
	assert.InDelta(t, 3.0, real(w), tol)
}

// TestEqual_ScaleAware checks projective equality.
func TestEqual_ScaleAware(t *testing.T) {
	g := hyperbolicShift(t)
	scaled := mobius.Map{A: 3i * g.A, B: 3i * g.B, C: 3i * g.C, D: 3i * g.D}

	assert.True(t, g.Equal(scaled, tol))
	assert.True(t, scaled.Equal(g, 0)) // default tolerance
	assert.False(t, g.Equal(mobius.Identity(), tol))
	assert.False(t, g.Equal(mobius.Map{}, tol))
	assert.True(t, mobius.Map{}.Equal(mobius.Map{}, tol))
}

// TestNormalize verifies det == 1 after normalization.
func TestNormalize(t *testing.T) {
	g := hyperbolicShift(t)
	n, err := g.Normalize()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, real(n.Det()), tol)
	assert.InDelta(t, 0.0, imag(n.Det()), tol)
	assert.True(t, n.Equal(g, tol))

	_, err = mobius.Map{}.Normalize()
	require.ErrorIs(t, err, mobius.ErrSingular)
}

// TestFromBoundaryTriple checks 0, 1, ∞ images and degenerate input.
func TestFromBoundaryTriple(t *testing.T) {
	zs := [3]complex128{1, 1i, -1}
	m, err := mobius.FromBoundaryTriple(zs)
	require.NoError(t, err)

	w, err := m.Apply(zs[0])
	require.NoError(t, err)
	assert.InDelta(t, 0.0, cmplx.Abs(w), tol)

	w, err = m.Apply(zs[1])
	require.NoError(t, err)
	assert.InDelta(t, 0.0, cmplx.Abs(w-1), tol)

	_, err = m.Apply(zs[2])
	require.ErrorIs(t, err, mobius.ErrPole)

	_, err = mobius.FromBoundaryTriple([3]complex128{1, 1, 2})
	require.ErrorIs(t, err, mobius.ErrDegenerateTriple)

	_, err = mobius.FromBoundaryTriple([3]complex128{cmplx.NaN(), 1, 2})
	require.ErrorIs(t, err, mobius.ErrNonFinite)
}

// TestTripleToTriple composes two cross ratios into the map between triples.
func TestTripleToTriple(t *testing.T) {
	from := [3]complex128{1, 1i, -1}
	to := [3]complex128{0.5, 2 + 1i, -3i}

	mf, err := mobius.FromBoundaryTriple(from)
	require.NoError(t, err)
	mt, err := mobius.FromBoundaryTriple(to)
	require.NoError(t, err)
	g := mt.Adjugate().Compose(mf)

	for i := range from {
		w, err := g.Apply(from[i])
		require.NoError(t, err)
		assert.InDelta(t, 0.0, cmplx.Abs(w-to[i]), 1e-9, "point %d", i)
	}
}
