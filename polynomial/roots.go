package polynomial

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by the root-finding helpers.
var (
	// ErrZeroPoly indicates a request that is undefined for the zero
	// polynomial, such as monic normalization.
	ErrZeroPoly = errors.New("polynomial: zero polynomial")

	// ErrEigenFailed indicates that the companion-matrix eigendecomposition
	// backing Roots did not converge.
	ErrEigenFailed = errors.New("polynomial: eigendecomposition failed")
)

// Monic divides p by its leading coefficient so that the result's leading
// coefficient is exactly 1. The zero polynomial has no leading coefficient
// and yields ErrZeroPoly.
func Monic(p Poly) (Poly, error) {
	t := p.Truncate()
	if t.IsZero() {
		return nil, ErrZeroPoly
	}
	out := make(Poly, len(t))
	for i, c := range t {
		out[i] = c / t[0]
	}

	return out, nil
}

// Roots returns the complex roots of p, computed as the eigenvalues of the
// monic companion matrix. The zero polynomial and constants have no roots:
// the result is empty.
//
// Degree n costs one n×n unsymmetric eigendecomposition, O(n³).
func Roots(p Poly) ([]complex128, error) {
	monic, err := Monic(p)
	if err != nil {
		// The zero polynomial has no roots.
		return nil, nil
	}
	n := len(monic) - 1
	if n < 1 {
		return nil, nil
	}

	// Companion matrix: the first row carries the negated monic
	// coefficients, the subdiagonal carries ones.
	c := mat.NewDense(n, n, nil)
	for j := 0; j < n; j++ {
		c.Set(0, j, -monic[j+1])
	}
	for i := 1; i < n; i++ {
		c.Set(i, i-1, 1)
	}

	var eig mat.Eigen
	if ok := eig.Factorize(c, mat.EigenNone); !ok {
		return nil, fmt.Errorf("degree %d companion matrix: %w", n, ErrEigenFailed)
	}

	return eig.Values(nil), nil
}
