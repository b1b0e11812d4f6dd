package polynomial_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/control/polynomial"
)

// TestTruncate_LeadingZeros verifies that leading zero coefficients are
// stripped while trailing zeros survive.
func TestTruncate_LeadingZeros(t *testing.T) {
	p := polynomial.Poly{0, 0, 1, 2}
	assert.Equal(t, polynomial.Poly{1, 2}, p.Truncate(), "leading zeros must be stripped")

	q := polynomial.Poly{0, 3, 2, 0}
	assert.Equal(t, polynomial.Poly{3, 2, 0}, q.Truncate(), "trailing zeros must be preserved")
}

// TestTruncate_AllZero verifies the canonical zero polynomial collapse.
func TestTruncate_AllZero(t *testing.T) {
	assert.Equal(t, polynomial.Poly{0}, polynomial.Poly{0, 0, 0}.Truncate(), "all-zero input collapses to Poly{0}")
	assert.Equal(t, polynomial.Poly{0}, polynomial.Poly{}.Truncate(), "empty input collapses to Poly{0}")
}

// TestTruncate_Idempotent verifies Truncate(Truncate(p)) == Truncate(p).
func TestTruncate_Idempotent(t *testing.T) {
	for _, p := range []polynomial.Poly{
		{0, 0, 1, 2},
		{0, 0, 0},
		{5},
		{},
		{1, 0, -1, 0},
	} {
		once := p.Truncate()
		assert.Equal(t, once, once.Truncate(), "Truncate must be idempotent for %v", p)
	}
}

// TestTruncateTol_Tolerance verifies tolerant stripping of near-zero
// leading coefficients.
func TestTruncateTol_Tolerance(t *testing.T) {
	p := polynomial.Poly{1e-12, -1e-12, 1, 2}

	assert.Equal(t, polynomial.Poly{1, 2}, p.TruncateTol(1e-9), "magnitudes below tol are treated as zero")
	assert.Equal(t, polynomial.Poly{1e-12, -1e-12, 1, 2}, p.TruncateTol(0), "tol=0 keeps tiny leading coefficients")
}

// TestDegree covers canonical, padded and zero polynomials.
func TestDegree(t *testing.T) {
	assert.Equal(t, 2, polynomial.Poly{1, 3, 5}.Degree(), "quadratic has degree 2")
	assert.Equal(t, 1, polynomial.Poly{0, 0, 1, 2}.Degree(), "leading zeros do not add degree")
	assert.Equal(t, 0, polynomial.Poly{0}.Degree(), "zero polynomial has degree 0 by convention")
	assert.Equal(t, 0, polynomial.Poly{7}.Degree(), "constants have degree 0")
}

// TestIsZero distinguishes the zero polynomial from small nonzero ones.
func TestIsZero(t *testing.T) {
	assert.True(t, polynomial.Poly{0, 0}.IsZero(), "all-zero coefficients are zero")
	assert.True(t, polynomial.Poly{}.IsZero(), "empty polynomial counts as zero")
	assert.False(t, polynomial.Poly{0, 1e-300}.IsZero(), "IsZero is exact, not tolerant")
}

// TestClone verifies the copy is independent of the original.
func TestClone(t *testing.T) {
	p := polynomial.Poly{1, 2, 3}
	q := p.Clone()
	q[0] = 99

	assert.Equal(t, polynomial.Poly{1, 2, 3}, p, "mutating the clone must not touch the original")
}

// TestNeg verifies coefficient-wise negation and its involution.
func TestNeg(t *testing.T) {
	p := polynomial.Poly{1, -3, 5}

	assert.Equal(t, polynomial.Poly{-1, 3, -5}, p.Neg(), "negation flips every coefficient")
	assert.Equal(t, p, p.Neg().Neg(), "negation is an involution")
}

// TestEval_Horner checks Horner evaluation at real and complex points.
func TestEval_Horner(t *testing.T) {
	p := polynomial.Poly{1, 3, 5} // s^2 + 3s + 5

	assert.Equal(t, complex(15, 0), p.Eval(complex(2, 0)), "p(2) = 4 + 6 + 5")
	assert.Equal(t, complex(0, 0), polynomial.Poly{1, 0, 1}.Eval(complex(0, 1)), "s^2+1 vanishes at s=j")
	assert.Equal(t, complex(0, 0), polynomial.Poly{}.Eval(complex(3, 4)), "empty polynomial evaluates to 0")
}

// TestAdd_RightAligned verifies constant-term alignment of unequal lengths.
func TestAdd_RightAligned(t *testing.T) {
	sum := polynomial.Add(polynomial.Poly{1, 3, 5}, polynomial.Poly{-1, 3})

	assert.Equal(t, polynomial.Poly{1, 2, 8}, sum, "shorter operand aligns on the constant term")
}

// TestAdd_CancellationTruncates verifies that exact cancellation of the
// leading terms yields a canonical result.
func TestAdd_CancellationTruncates(t *testing.T) {
	sum := polynomial.Add(polynomial.Poly{1, 2}, polynomial.Poly{-1, 3})
	assert.Equal(t, polynomial.Poly{5}, sum, "cancelled leading term must be truncated")

	zero := polynomial.Add(polynomial.Poly{1, 2}, polynomial.Poly{-1, -2})
	assert.Equal(t, polynomial.Poly{0}, zero, "full cancellation yields the zero polynomial")
}

// TestSub verifies Sub(p, q) == Add(p, Neg(q)).
func TestSub(t *testing.T) {
	p := polynomial.Poly{2, 0, -1}
	q := polynomial.Poly{1, 1}

	assert.Equal(t, polynomial.Add(p, q.Neg()), polynomial.Sub(p, q), "Sub must equal Add with a negated operand")
	assert.Equal(t, polynomial.Poly{2, -1, -2}, polynomial.Sub(p, q), "coefficientwise difference")
}

// TestMul_Convolution checks the full convolution product.
func TestMul_Convolution(t *testing.T) {
	got := polynomial.Mul(polynomial.Poly{1, 3, 5}, polynomial.Poly{1, 6, 2, -1})

	assert.Equal(t, polynomial.Poly{1, 9, 25, 35, 7, -5}, got, "convolution of a quadratic and a cubic")
	assert.Equal(t, got, polynomial.Mul(polynomial.Poly{1, 6, 2, -1}, polynomial.Poly{1, 3, 5}), "convolution commutes")
}

// TestMul_Degenerate covers zero and empty operands.
func TestMul_Degenerate(t *testing.T) {
	assert.Equal(t, polynomial.Poly{0}, polynomial.Mul(polynomial.Poly{0}, polynomial.Poly{1, 2, 3}), "zero times anything is zero")
	assert.Equal(t, polynomial.Poly{0}, polynomial.Mul(polynomial.Poly{}, polynomial.Poly{1}), "empty operand acts as zero")
	assert.Equal(t, polynomial.Poly{6}, polynomial.Mul(polynomial.Poly{2}, polynomial.Poly{3}), "constants multiply as scalars")
}

// TestScale verifies scalar multiplication and the zero-scale collapse.
func TestScale(t *testing.T) {
	assert.Equal(t, polynomial.Poly{2, -4, 6}, polynomial.Scale(2, polynomial.Poly{1, -2, 3}), "coefficients scale elementwise")
	assert.Equal(t, polynomial.Poly{0}, polynomial.Scale(0, polynomial.Poly{1, -2, 3}), "scaling by zero yields the zero polynomial")
}

// TestEqual compares canonical forms, so padding must not matter.
func TestEqual(t *testing.T) {
	assert.True(t, polynomial.Equal(polynomial.Poly{0, 1, 2}, polynomial.Poly{1, 2}), "leading zeros are ignored")
	assert.True(t, polynomial.Equal(polynomial.Poly{0, 0}, polynomial.Poly{}), "zero forms coincide")
	assert.False(t, polynomial.Equal(polynomial.Poly{1, 2}, polynomial.Poly{1, 2, 0}), "trailing zeros are significant")
}

// TestMonic normalizes the leading coefficient to exactly 1.
func TestMonic(t *testing.T) {
	m, err := polynomial.Monic(polynomial.Poly{2, 4, 6})
	require.NoError(t, err, "nonzero polynomial must normalize")
	assert.Equal(t, polynomial.Poly{1, 2, 3}, m, "every coefficient divides by the leading one")

	m, err = polynomial.Monic(polynomial.Poly{0, 7, -14})
	require.NoError(t, err)
	assert.Equal(t, polynomial.Poly{1, -2}, m, "normalization works on the truncated form")

	_, err = polynomial.Monic(polynomial.Poly{0, 0})
	assert.ErrorIs(t, err, polynomial.ErrZeroPoly, "the zero polynomial has no monic form")
}

// TestMonic_ExactLeadingOne guards the leading coefficient against
// rounding: x/x is exactly 1 for any finite nonzero x.
func TestMonic_ExactLeadingOne(t *testing.T) {
	m, err := polynomial.Monic(polynomial.Poly{49, 1, -3})
	require.NoError(t, err)

	assert.Equal(t, 1.0, m[0], "leading coefficient must be exactly 1")
}

// TestRoots_Quadratic recovers the roots of (s-1)(s-2).
func TestRoots_Quadratic(t *testing.T) {
	roots, err := polynomial.Roots(polynomial.Poly{1, -3, 2})
	require.NoError(t, err, "root finding must succeed")
	require.Len(t, roots, 2, "a quadratic has two roots")

	lo, hi := real(roots[0]), real(roots[1])
	if lo > hi {
		lo, hi = hi, lo
	}
	assert.InDelta(t, 1, lo, 1e-9, "smaller root of s^2-3s+2")
	assert.InDelta(t, 2, hi, 1e-9, "larger root of s^2-3s+2")
	assert.InDelta(t, 0, imag(roots[0]), 1e-9, "roots are real")
	assert.InDelta(t, 0, imag(roots[1]), 1e-9, "roots are real")
}

// TestRoots_ComplexPair recovers a conjugate pair from s^2 + 2s + 5.
func TestRoots_ComplexPair(t *testing.T) {
	roots, err := polynomial.Roots(polynomial.Poly{1, 2, 5})
	require.NoError(t, err)
	require.Len(t, roots, 2)

	for _, r := range roots {
		assert.InDelta(t, -1, real(r), 1e-9, "real part of -1±2j")
		assert.InDelta(t, 2, math.Abs(imag(r)), 1e-9, "imaginary magnitude of -1±2j")
	}
}

// TestRoots_OriginAndScaling covers a root at the origin and a non-monic
// leading coefficient.
func TestRoots_OriginAndScaling(t *testing.T) {
	roots, err := polynomial.Roots(polynomial.Poly{3, 0}) // 3s
	require.NoError(t, err)
	require.Len(t, roots, 1, "3s has a single root")
	assert.InDelta(t, 0, real(roots[0]), 1e-12, "root sits at the origin")
	assert.InDelta(t, 0, imag(roots[0]), 1e-12, "root sits at the origin")
}

// TestRoots_NoRoots verifies constants and the zero polynomial yield an
// empty root set without erroring.
func TestRoots_NoRoots(t *testing.T) {
	roots, err := polynomial.Roots(polynomial.Poly{5})
	require.NoError(t, err)
	assert.Empty(t, roots, "constants have no roots")

	roots, err = polynomial.Roots(polynomial.Poly{0, 0})
	require.NoError(t, err)
	assert.Empty(t, roots, "the zero polynomial has no roots")
}

// TestRoots_PureArithmetic verifies the argument is never mutated.
func TestRoots_PureArithmetic(t *testing.T) {
	p := polynomial.Poly{2, -6, 4}
	_, err := polynomial.Roots(p)
	require.NoError(t, err)

	assert.Equal(t, polynomial.Poly{2, -6, 4}, p, "Roots must not mutate its argument")
}
