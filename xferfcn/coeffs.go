// SPDX-License-Identifier: MIT

// Package xferfcn: coefficient ingestion. This file defines the Coeffs
// argument type accepted by New and its constructors. A coefficient
// argument takes one of three shapes, mirroring common control-engineering
// shorthand:
//   - Scalar(k):          the constant polynomial k, broadcast to 1×1;
//   - Vector(c0,...,cn):  one polynomial, highest degree first, 1×1;
//   - Matrix(grid):       a full outputs×inputs grid of coefficient vectors.
//
// From resolves a dynamically-typed value into one of those shapes exactly
// once, at the API boundary; everything past grid() works on
// [][]polynomial.Poly and is statically typed.
package xferfcn

import (
	"fmt"

	"github.com/katalvlaran/control/polynomial"
)

// Coeffs is a numerator or denominator argument for New.
// Implementations resolve to a rectangular grid of polynomials.
type Coeffs interface {
	grid() ([][]polynomial.Poly, error)
}

// Scalar wraps a constant as a 1×1 coefficient grid.
func Scalar(v float64) Coeffs { return scalarCoeffs(v) }

// Vector wraps a single coefficient vector, highest degree first, as a 1×1
// grid. Vector(1, 2, 3) is the polynomial s² + 2s + 3. An empty call yields
// the zero polynomial.
func Vector(coeffs ...float64) Coeffs { return vectorCoeffs(coeffs) }

// Matrix wraps a full outputs×inputs grid of coefficient vectors.
// Rows must all carry the same number of columns.
func Matrix(entries [][][]float64) Coeffs { return matrixCoeffs(entries) }

// From resolves a dynamically-typed coefficient value into a Coeffs.
// Accepted shapes: an existing Coeffs, float64/int scalars, a coefficient
// vector ([]float64 or polynomial.Poly), or a nested grid ([][][]float64 or
// [][]polynomial.Poly). Anything else resolves to ErrCoeffType when the
// value reaches New.
func From(v any) Coeffs {
	switch c := v.(type) {
	case Coeffs:
		return c
	case float64:
		return scalarCoeffs(c)
	case int:
		return scalarCoeffs(float64(c))
	case polynomial.Poly:
		return vectorCoeffs(c)
	case []float64:
		return vectorCoeffs(c)
	case [][][]float64:
		return matrixCoeffs(c)
	case [][]polynomial.Poly:
		return polyGrid(c)
	default:
		return badCoeffs{v}
	}
}

type scalarCoeffs float64

func (c scalarCoeffs) grid() ([][]polynomial.Poly, error) {
	return [][]polynomial.Poly{{{float64(c)}}}, nil
}

type vectorCoeffs []float64

func (c vectorCoeffs) grid() ([][]polynomial.Poly, error) {
	p := make(polynomial.Poly, len(c))
	copy(p, c)

	return [][]polynomial.Poly{{p}}, nil
}

type matrixCoeffs [][][]float64

func (c matrixCoeffs) grid() ([][]polynomial.Poly, error) {
	return nestedGrid(c)
}

type polyGrid [][]polynomial.Poly

func (c polyGrid) grid() ([][]polynomial.Poly, error) {
	return nestedGrid(c)
}

// badCoeffs defers the shape rejection until New unwraps the argument, so
// From itself never needs to return an error.
type badCoeffs struct{ v any }

func (c badCoeffs) grid() ([][]polynomial.Poly, error) {
	return nil, fmt.Errorf("unsupported shape %T: %w", c.v, ErrCoeffType)
}

// nestedGrid copies a rectangular grid of coefficient vectors into fresh
// polynomials. It rejects empty grids and ragged rows.
func nestedGrid[V ~[]float64](entries [][]V) ([][]polynomial.Poly, error) {
	if len(entries) == 0 || len(entries[0]) == 0 {
		return nil, fmt.Errorf("empty coefficient grid: %w", ErrCoeffType)
	}

	cols := len(entries[0])
	out := make([][]polynomial.Poly, len(entries))
	for i, row := range entries {
		if len(row) != cols {
			return nil, fmt.Errorf("row 1 has %d column(s), row %d has %d: %w",
				cols, i+1, len(row), ErrDimensionMismatch)
		}
		out[i] = make([]polynomial.Poly, cols)
		for j, cell := range row {
			p := make(polynomial.Poly, len(cell))
			copy(p, cell)
			out[i][j] = p
		}
	}

	return out, nil
}
