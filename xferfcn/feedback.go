// SPDX-License-Identifier: MIT

// Package xferfcn: closed-loop connection and pole/zero analysis.
package xferfcn

import (
	"fmt"

	"github.com/katalvlaran/control/polynomial"
)

// Sign selects the feedback polarity of a closed loop.
type Sign int

const (
	// Negative is the conventional negative-feedback loop (error-driven).
	Negative Sign = -1

	// Positive closes the loop with positive feedback.
	Positive Sign = 1
)

// Feedback closes a loop around G with the feedback path H:
//
//	r ──►(+)──► G ──┬──► y
//	      ▲         │
//	      └─── H ◄──┘
//
// For Negative feedback the closed loop is G/(1+GH); for Positive it is
// G/(1-GH). In polynomial form, with G = nG/dG and H = nH/dH:
//
//	num = nG·dH
//	den = dG·dH - sign·(nG·nH)
//
// Both systems must be SISO. A loop whose denominator cancels to zero
// (e.g. positive unit feedback around a unit gain) yields
// ErrZeroDenominator.
func (g *TransferFunction) Feedback(h *TransferFunction, sign Sign) (*TransferFunction, error) {
	if h == nil {
		return nil, fmt.Errorf("feedback: %w", ErrNilSystem)
	}
	if !g.IsSISO() || !h.IsSISO() {
		return nil, fmt.Errorf("feedback of %dx%d with %dx%d: %w",
			g.outputs, g.inputs, h.outputs, h.inputs, ErrNotSISO)
	}

	nG, dG := g.num[0][0], g.den[0][0]
	nH, dH := h.num[0][0], h.den[0][0]

	num := polynomial.Mul(nG, dH)
	loop := polynomial.Scale(float64(sign), polynomial.Mul(nG, nH))
	den := polynomial.Sub(polynomial.Mul(dG, dH), loop)

	return normalize(grid1x1(num), grid1x1(den), DefaultOptions())
}

// Poles returns the roots of the denominator of a SISO system.
// The result order follows the eigenvalue solver and is not sorted.
func (g *TransferFunction) Poles() ([]complex128, error) {
	if !g.IsSISO() {
		return nil, fmt.Errorf("poles of a %dx%d system: %w", g.outputs, g.inputs, ErrNotSISO)
	}

	roots, err := polynomial.Roots(g.den[0][0])
	if err != nil {
		return nil, fmt.Errorf("poles: %w", err)
	}

	return roots, nil
}

// Zeros returns the roots of the numerator of a SISO system. The zero
// system 0/1 has no zeros.
func (g *TransferFunction) Zeros() ([]complex128, error) {
	if !g.IsSISO() {
		return nil, fmt.Errorf("zeros of a %dx%d system: %w", g.outputs, g.inputs, ErrNotSISO)
	}

	roots, err := polynomial.Roots(g.num[0][0])
	if err != nil {
		return nil, fmt.Errorf("zeros: %w", err)
	}

	return roots, nil
}
