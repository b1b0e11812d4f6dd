// SPDX-License-Identifier: MIT

// Package xferfcn: rational-matrix algebra. This file implements the
// entrywise and matrix-product operations over grids of polynomial
// fractions. No pole/zero cancellation is attempted: results keep the full
// cross-multiplied polynomials, exactly as written, and only pass through
// the shared normalization pipeline (truncation, zero-system collapse).
package xferfcn

import (
	"fmt"

	"github.com/katalvlaran/control/polynomial"
)

// Neg returns the negated system -G: every numerator flips sign, every
// denominator is kept. Negation cannot fail.
func (g *TransferFunction) Neg() *TransferFunction {
	out := &TransferFunction{
		num:     make([][]polynomial.Poly, g.outputs),
		den:     cloneGrid(g.den),
		outputs: g.outputs,
		inputs:  g.inputs,
	}
	for i := 0; i < g.outputs; i++ {
		out.num[i] = make([]polynomial.Poly, g.inputs)
		for j := 0; j < g.inputs; j++ {
			// Truncate restores the canonical zero form after negating 0.
			out.num[i][j] = g.num[i][j].Neg().Truncate()
		}
	}

	return out
}

// Add returns the parallel connection G + H. Operands must share
// dimensions. Each entry is combined by cross-multiplication:
//
//	nG/dG + nH/dH = (nG·dH + nH·dG) / (dG·dH)
func (g *TransferFunction) Add(other *TransferFunction) (*TransferFunction, error) {
	if other == nil {
		return nil, fmt.Errorf("add: %w", ErrNilSystem)
	}
	if g.outputs != other.outputs {
		return nil, fmt.Errorf("first summand has %d output(s), second has %d: %w",
			g.outputs, other.outputs, ErrDimensionMismatch)
	}
	if g.inputs != other.inputs {
		return nil, fmt.Errorf("first summand has %d input(s), second has %d: %w",
			g.inputs, other.inputs, ErrDimensionMismatch)
	}

	num := make([][]polynomial.Poly, g.outputs)
	den := make([][]polynomial.Poly, g.outputs)
	for i := 0; i < g.outputs; i++ {
		num[i] = make([]polynomial.Poly, g.inputs)
		den[i] = make([]polynomial.Poly, g.inputs)
		for j := 0; j < g.inputs; j++ {
			num[i][j], den[i][j] = addSISO(
				g.num[i][j], g.den[i][j],
				other.num[i][j], other.den[i][j],
			)
		}
	}

	return normalize(num, den, DefaultOptions())
}

// Sub returns the difference G - H, built as G + (-H).
func (g *TransferFunction) Sub(other *TransferFunction) (*TransferFunction, error) {
	if other == nil {
		return nil, fmt.Errorf("subtract: %w", ErrNilSystem)
	}

	return g.Add(other.Neg())
}

// Mul returns the series interconnection G·H as a matrix product over the
// fraction ring: entry (i,j) of the result is Σₖ G(i,k)·H(k,j). The inner
// dimensions must agree (G.Inputs == H.Outputs); the result is
// G.Outputs × H.Inputs.
func (g *TransferFunction) Mul(other *TransferFunction) (*TransferFunction, error) {
	if other == nil {
		return nil, fmt.Errorf("multiply: %w", ErrNilSystem)
	}
	if g.inputs != other.outputs {
		return nil, fmt.Errorf("first factor has %d input(s), second has %d output(s): %w",
			g.inputs, other.outputs, ErrDimensionMismatch)
	}

	num := make([][]polynomial.Poly, g.outputs)
	den := make([][]polynomial.Poly, g.outputs)
	for i := 0; i < g.outputs; i++ {
		num[i] = make([]polynomial.Poly, other.inputs)
		den[i] = make([]polynomial.Poly, other.inputs)
		for j := 0; j < other.inputs; j++ {
			// Fold the k-sum starting from the additive identity 0/1.
			accNum, accDen := polynomial.Zero(), polynomial.One()
			for k := 0; k < g.inputs; k++ {
				termNum := polynomial.Mul(g.num[i][k], other.num[k][j])
				termDen := polynomial.Mul(g.den[i][k], other.den[k][j])
				accNum, accDen = addSISO(accNum, accDen, termNum, termDen)
			}
			num[i][j], den[i][j] = accNum, accDen
		}
	}

	return normalize(num, den, DefaultOptions())
}

// Div returns the quotient G/H for SISO operands:
//
//	(nG/dG) / (nH/dH) = (nG·dH) / (dG·nH)
//
// Dividing by a zero system collapses the quotient's denominator and
// surfaces ErrZeroDenominator.
func (g *TransferFunction) Div(other *TransferFunction) (*TransferFunction, error) {
	if other == nil {
		return nil, fmt.Errorf("divide: %w", ErrNilSystem)
	}
	if !g.IsSISO() || !other.IsSISO() {
		return nil, fmt.Errorf("divide %dx%d by %dx%d: %w",
			g.outputs, g.inputs, other.outputs, other.inputs, ErrNotSISO)
	}

	num := polynomial.Mul(g.num[0][0], other.den[0][0])
	den := polynomial.Mul(g.den[0][0], other.num[0][0])

	return normalize(grid1x1(num), grid1x1(den), DefaultOptions())
}

// addSISO combines two polynomial fractions by cross-multiplication.
func addSISO(n1, d1, n2, d2 polynomial.Poly) (num, den polynomial.Poly) {
	num = polynomial.Add(polynomial.Mul(n1, d2), polynomial.Mul(n2, d1))
	den = polynomial.Mul(d1, d2)

	return num, den
}

// grid1x1 wraps a single fraction component as a 1×1 grid.
func grid1x1(p polynomial.Poly) [][]polynomial.Poly {
	return [][]polynomial.Poly{{p}}
}
