package polynomial

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Poly is a dense univariate polynomial over the reals, stored as its
// coefficient sequence ordered highest degree first: Poly{a, b, c}
// represents a·s² + b·s + c.
//
// The canonical form has no leading zero coefficients, except the zero
// polynomial which is the single coefficient Poly{0}. Arithmetic in this
// package always returns canonical results; a Poly built by hand may carry
// leading zeros until Truncate is applied.
type Poly []float64

// Zero returns the canonical zero polynomial.
func Zero() Poly { return Poly{0} }

// One returns the constant polynomial 1.
func One() Poly { return Poly{1} }

// Truncate strips leading zero coefficients, returning the canonical form.
// An all-zero (or empty) polynomial collapses to Poly{0}. Idempotent.
func (p Poly) Truncate() Poly { return p.TruncateTol(0) }

// TruncateTol strips leading coefficients whose magnitude is at most tol;
// tol = 0 strips exact zeros only. Trailing coefficients are preserved
// whatever their value: they encode low-order terms, not noise.
func (p Poly) TruncateTol(tol float64) Poly {
	first := 0
	for first < len(p) && math.Abs(p[first]) <= tol {
		first++
	}
	if first == len(p) {
		return Poly{0}
	}
	out := make(Poly, len(p)-first)
	copy(out, p[first:])

	return out
}

// Degree reports the degree of p, ignoring leading zeros. The zero
// polynomial has degree 0 under this package's convention.
func (p Poly) Degree() int {
	first := 0
	for first < len(p) && p[first] == 0 {
		first++
	}
	if first == len(p) {
		return 0
	}

	return len(p) - first - 1
}

// IsZero reports whether every coefficient of p is exactly zero.
// The empty polynomial counts as zero.
func (p Poly) IsZero() bool {
	for _, c := range p {
		if c != 0 {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of p.
func (p Poly) Clone() Poly {
	out := make(Poly, len(p))
	copy(out, p)

	return out
}

// Neg returns -p with every coefficient negated.
func (p Poly) Neg() Poly {
	out := make(Poly, len(p))
	for i, c := range p {
		out[i] = -c
	}

	return out
}

// Eval computes p(z) by Horner's rule, highest coefficient first.
// The empty polynomial evaluates to 0.
func (p Poly) Eval(z complex128) complex128 {
	var acc complex128
	for _, c := range p {
		acc = acc*z + complex(c, 0)
	}

	return acc
}

// Add returns p + q: coefficients aligned on the constant term
// (right-aligned, since storage is highest degree first) and summed,
// truncated to canonical form.
func Add(p, q Poly) Poly {
	n := max(len(p), len(q))
	if n == 0 {
		return Poly{0}
	}
	out := make(Poly, n)
	copy(out[n-len(p):], p)
	for i, c := range q {
		out[n-len(q)+i] += c
	}

	return out.Truncate()
}

// Sub returns p - q.
func Sub(p, q Poly) Poly { return Add(p, q.Neg()) }

// Mul returns the product p·q as the full convolution of the coefficient
// sequences (length len(p)+len(q)-1), truncated to canonical form.
// Multiplying by the zero polynomial yields Poly{0}.
func Mul(p, q Poly) Poly {
	if len(p) == 0 || len(q) == 0 {
		return Poly{0}
	}
	out := make(Poly, len(p)+len(q)-1)
	for i, a := range p {
		for j, b := range q {
			out[i+j] += a * b
		}
	}

	return out.Truncate()
}

// Scale returns k·p. Scaling by zero yields the zero polynomial.
func Scale(k float64, p Poly) Poly {
	out := p.Clone()
	floats.Scale(k, out)

	return out.Truncate()
}

// Equal reports whether p and q represent the same polynomial, comparing
// canonical forms so leading zeros never affect the outcome.
func Equal(p, q Poly) bool {
	return floats.Equal(p.Truncate(), q.Truncate())
}
