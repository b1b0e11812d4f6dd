// SPDX-License-Identifier: MIT

// Package xferfcn: core type and construction. This file defines the
// TransferFunction value, the New constructor with its normalization
// pipeline, and the read-only accessors. Every algebraic operation in this
// package rebuilds its result through the same normalize step, so all
// reachable systems share one canonical form:
//   - leading coefficients within eps of zero are truncated;
//   - a zero denominator is rejected (ErrZeroDenominator);
//   - a zero numerator collapses the entry to the exact zero system 0/1.
package xferfcn

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/go-cmp/cmp"

	"github.com/katalvlaran/control/polynomial"
)

// TransferFunction is an outputs×inputs grid of rational functions in the
// Laplace variable. Entry (i,j) is num[i][j]/den[i][j], the response of
// output i to input j. The zero value is not usable; construct with New.
type TransferFunction struct {
	num [][]polynomial.Poly
	den [][]polynomial.Poly

	outputs int
	inputs  int
}

// New builds a transfer function from numerator and denominator coefficient
// grids. Scalar and Vector arguments describe 1×1 (SISO) systems; Matrix
// describes a full grid. Both grids must carry identical dimensions.
//
// Entries are normalized on entry: leading near-zero coefficients are
// truncated (see WithEpsilon), denominators that reduce to the zero
// polynomial are rejected, and zero numerators collapse to 0/1.
//
// Errors:
//   - ErrCoeffType          on nil arguments or unsupported shapes;
//   - ErrBadEpsilon         on an invalid WithEpsilon value;
//   - ErrNaNInf             on non-finite coefficients (unless disabled);
//   - ErrDimensionMismatch  on ragged grids or num/den shape disagreement;
//   - ErrZeroDenominator    on any all-zero denominator entry.
func New(num, den Coeffs, opts ...Option) (*TransferFunction, error) {
	if num == nil || den == nil {
		return nil, fmt.Errorf("nil coefficient argument: %w", ErrCoeffType)
	}

	o := gatherOptions(opts...)
	if err := o.validate(); err != nil {
		return nil, err
	}

	numGrid, err := num.grid()
	if err != nil {
		return nil, fmt.Errorf("numerator: %w", err)
	}
	denGrid, err := den.grid()
	if err != nil {
		return nil, fmt.Errorf("denominator: %w", err)
	}

	if len(numGrid) != len(denGrid) {
		return nil, fmt.Errorf("numerator has %d output(s), denominator has %d: %w",
			len(numGrid), len(denGrid), ErrDimensionMismatch)
	}
	if len(numGrid[0]) != len(denGrid[0]) {
		return nil, fmt.Errorf("numerator has %d input(s), denominator has %d: %w",
			len(numGrid[0]), len(denGrid[0]), ErrDimensionMismatch)
	}

	return normalize(numGrid, denGrid, o)
}

// normalize runs the canonical-form pipeline over same-shape grids and
// assembles the TransferFunction. Grids must be rectangular and owned by
// the caller; entries are re-sliced by truncation, never shared back.
func normalize(num, den [][]polynomial.Poly, o Options) (*TransferFunction, error) {
	outputs, inputs := len(num), len(num[0])
	g := &TransferFunction{
		num:     make([][]polynomial.Poly, outputs),
		den:     make([][]polynomial.Poly, outputs),
		outputs: outputs,
		inputs:  inputs,
	}

	for i := 0; i < outputs; i++ {
		g.num[i] = make([]polynomial.Poly, inputs)
		g.den[i] = make([]polynomial.Poly, inputs)
		for j := 0; j < inputs; j++ {
			if o.validateNaNInf {
				if hasNonFinite(num[i][j]) {
					return nil, fmt.Errorf("numerator entry (%d,%d): %w", i+1, j+1, ErrNaNInf)
				}
				if hasNonFinite(den[i][j]) {
					return nil, fmt.Errorf("denominator entry (%d,%d): %w", i+1, j+1, ErrNaNInf)
				}
			}

			n := num[i][j].TruncateTol(o.eps)
			d := den[i][j].TruncateTol(o.eps)
			if d.IsZero() {
				return nil, fmt.Errorf("input %d, output %d has a zero denominator: %w",
					j+1, i+1, ErrZeroDenominator)
			}
			if n.IsZero() {
				// 0/d is the zero system; carry its canonical form 0/1.
				d = polynomial.One()
			}

			g.num[i][j], g.den[i][j] = n, d
		}
	}

	return g, nil
}

// Outputs reports the number of system outputs (grid rows).
func (g *TransferFunction) Outputs() int { return g.outputs }

// Inputs reports the number of system inputs (grid columns).
func (g *TransferFunction) Inputs() int { return g.inputs }

// IsSISO reports whether the system is single-input single-output.
func (g *TransferFunction) IsSISO() bool { return g.outputs == 1 && g.inputs == 1 }

// Num returns a copy of the numerator polynomial for output i, input j
// (zero-based). Returns ErrOutOfRange on an invalid index.
func (g *TransferFunction) Num(i, j int) (polynomial.Poly, error) {
	if err := g.checkIndex(i, j); err != nil {
		return nil, err
	}

	return g.num[i][j].Clone(), nil
}

// Den returns a copy of the denominator polynomial for output i, input j
// (zero-based). Returns ErrOutOfRange on an invalid index.
func (g *TransferFunction) Den(i, j int) (polynomial.Poly, error) {
	if err := g.checkIndex(i, j); err != nil {
		return nil, err
	}

	return g.den[i][j].Clone(), nil
}

// NumGrid returns a deep copy of the full numerator grid.
func (g *TransferFunction) NumGrid() [][]polynomial.Poly { return cloneGrid(g.num) }

// DenGrid returns a deep copy of the full denominator grid.
func (g *TransferFunction) DenGrid() [][]polynomial.Poly { return cloneGrid(g.den) }

// Equal reports whether two systems carry identical canonical coefficient
// grids. Comparison is exact; use evaluation for approximate equivalence.
func (g *TransferFunction) Equal(other *TransferFunction) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.outputs != other.outputs || g.inputs != other.inputs {
		return false
	}

	return cmp.Equal(g.num, other.num) && cmp.Equal(g.den, other.den)
}

// String renders the system as stacked num/den fractions. MIMO systems get
// one block per channel, labelled with 1-based input and output indices.
func (g *TransferFunction) String() string {
	var b strings.Builder
	mimo := !g.IsSISO()
	for j := 0; j < g.inputs; j++ {
		for i := 0; i < g.outputs; i++ {
			if mimo {
				if b.Len() > 0 {
					b.WriteByte('\n')
				}
				fmt.Fprintf(&b, "Input %d to output %d:\n", j+1, i+1)
			}

			num := g.num[i][j].String()
			den := g.den[i][j].String()
			width := max(len(num), len(den))
			b.WriteString(pad(num, width))
			b.WriteByte('\n')
			b.WriteString(strings.Repeat("-", width))
			b.WriteByte('\n')
			b.WriteString(pad(den, width))
			b.WriteByte('\n')
		}
	}

	return b.String()
}

// checkIndex validates a zero-based (output, input) pair.
func (g *TransferFunction) checkIndex(i, j int) error {
	if i < 0 || i >= g.outputs || j < 0 || j >= g.inputs {
		return fmt.Errorf("entry (%d,%d) of a %dx%d system: %w",
			i, j, g.outputs, g.inputs, ErrOutOfRange)
	}

	return nil
}

// cloneGrid deep-copies a polynomial grid.
func cloneGrid(grid [][]polynomial.Poly) [][]polynomial.Poly {
	out := make([][]polynomial.Poly, len(grid))
	for i, row := range grid {
		out[i] = make([]polynomial.Poly, len(row))
		for j, p := range row {
			out[i][j] = p.Clone()
		}
	}

	return out
}

// pad left-pads s with spaces so it sits centered in width columns.
func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}

	return strings.Repeat(" ", (width-len(s))/2) + s
}

// hasNonFinite reports whether any coefficient is NaN or ±Inf.
func hasNonFinite(p polynomial.Poly) bool {
	for _, c := range p {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return true
		}
	}

	return false
}
