// SPDX-License-Identifier: MIT

// Package xferfcn: frequency-domain evaluation. This file covers pointwise
// evaluation of the rational matrix at a complex point, evaluation on the
// imaginary axis, vectorized magnitude/phase sweeps, and the heuristic that
// picks a decade window of interesting frequencies from a system's poles
// and zeros.
package xferfcn

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/control/polynomial"
)

// DefaultFrequencyPoints is the grid size produced by
// DefaultFrequencyRange.
const DefaultFrequencyPoints = 50

// EvalAt evaluates every entry of the rational matrix at the complex point
// s and returns the outputs×inputs complex matrix of values. An entry whose
// denominator evaluates to exactly zero is a pole of the grid at s and
// yields ErrEvalAtPole.
func (g *TransferFunction) EvalAt(s complex128) (*mat.CDense, error) {
	resp := mat.NewCDense(g.outputs, g.inputs, nil)
	for i := 0; i < g.outputs; i++ {
		for j := 0; j < g.inputs; j++ {
			d := g.den[i][j].Eval(s)
			if d == 0 {
				return nil, fmt.Errorf("entry (%d,%d) has a pole at %v: %w",
					i+1, j+1, s, ErrEvalAtPole)
			}
			resp.Set(i, j, g.num[i][j].Eval(s)/d)
		}
	}

	return resp, nil
}

// EvalFr evaluates the system on the imaginary axis at s = jω.
func (g *TransferFunction) EvalFr(omega float64) (*mat.CDense, error) {
	return g.EvalAt(complex(0, omega))
}

// FrequencyResponse holds the result of a frequency sweep.
// Magnitude[i][j][k] and Phase[i][j][k] describe entry (i,j) at Omega[k];
// phases are principal values in radians, in [-π, π], with no unwrapping
// across frequency samples.
type FrequencyResponse struct {
	Magnitude [][][]float64
	Phase     [][][]float64
	Omega     []float64
}

// FreqResp sweeps the system along the imaginary axis at the supplied
// angular frequencies (rad/s) and reports magnitude and phase per entry.
//
// Errors:
//   - ErrEmptyOmega  when omega carries no points;
//   - ErrNaNInf      when omega carries a non-finite frequency;
//   - ErrEvalAtPole  when some jω is an exact pole of an entry.
func (g *TransferFunction) FreqResp(omega []float64) (*FrequencyResponse, error) {
	if len(omega) == 0 {
		return nil, ErrEmptyOmega
	}
	for k, w := range omega {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("frequency %d is %v: %w", k, w, ErrNaNInf)
		}
	}

	resp := &FrequencyResponse{
		Magnitude: make([][][]float64, g.outputs),
		Phase:     make([][][]float64, g.outputs),
		Omega:     omega,
	}

	vals := make([]complex128, len(omega))
	for i := 0; i < g.outputs; i++ {
		resp.Magnitude[i] = make([][]float64, g.inputs)
		resp.Phase[i] = make([][]float64, g.inputs)
		for j := 0; j < g.inputs; j++ {
			num, den := g.num[i][j], g.den[i][j]
			for k, w := range omega {
				s := complex(0, w)
				d := den.Eval(s)
				if d == 0 {
					return nil, fmt.Errorf("entry (%d,%d) has a pole at %v rad/s: %w",
						i+1, j+1, w, ErrEvalAtPole)
				}
				vals[k] = num.Eval(s) / d
			}

			mag := make([]float64, len(omega))
			cmplxs.Abs(mag, vals)
			phase := make([]float64, len(omega))
			for k, v := range vals {
				phase[k] = cmplx.Phase(v)
			}

			resp.Magnitude[i][j] = mag
			resp.Phase[i][j] = phase
		}
	}

	return resp, nil
}

// DefaultFrequencyRange builds a log-spaced grid of DefaultFrequencyPoints
// angular frequencies covering the interesting range of the given systems:
// one decade below the slowest pole or zero up to one decade above the
// fastest. Features at the origin are ignored; systems with no usable
// features fall back to the window [0.1, 10] rad/s.
func DefaultFrequencyRange(systems ...*TransferFunction) ([]float64, error) {
	var features []float64
	for n, g := range systems {
		if g == nil {
			return nil, fmt.Errorf("system %d: %w", n, ErrNilSystem)
		}
		for i := 0; i < g.outputs; i++ {
			for j := 0; j < g.inputs; j++ {
				for _, p := range []polynomial.Poly{g.num[i][j], g.den[i][j]} {
					roots, err := polynomial.Roots(p)
					if err != nil {
						return nil, fmt.Errorf("entry (%d,%d): %w", i+1, j+1, err)
					}
					for _, r := range roots {
						if a := cmplx.Abs(r); a != 0 {
							features = append(features, math.Log10(a))
						}
					}
				}
			}
		}
	}

	lo, hi := -1.0, 1.0
	if len(features) > 0 {
		lo = math.Floor(floats.Min(features)) - 1
		hi = math.Ceil(floats.Max(features)) + 1
	}

	omega := make([]float64, DefaultFrequencyPoints)
	floats.LogSpan(omega, math.Pow(10, lo), math.Pow(10, hi))

	return omega, nil
}
