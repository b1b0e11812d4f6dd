// SPDX-License-Identifier: MIT
// Package xferfcn: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// xferfcn package. All operations MUST return these sentinels and tests MUST
// check them via errors.Is. No operation panics on user-triggered error
// conditions.

package xferfcn

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "xferfcn: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// option validation -> coefficient shape -> dimension mismatch -> NaN/Inf ->
// zero denominator -> operand compatibility (nil system, SISO-only) ->
// evaluation (pole, empty omega).

var (
	// ErrCoeffType is returned when a coefficient argument is not one of the
	// accepted shapes: a scalar, a coefficient vector, or a nested grid of
	// coefficient vectors.
	ErrCoeffType = errors.New("xferfcn: coefficients must be a scalar, a coefficient vector, or a nested grid of coefficient vectors")

	// ErrDimensionMismatch indicates incompatible shapes, either between the
	// numerator and denominator grids at construction, or between operands
	// of an algebraic operation.
	ErrDimensionMismatch = errors.New("xferfcn: dimension mismatch")

	// ErrZeroDenominator signals that an entry's denominator reduced to the
	// zero polynomial. Division by a system with a zero numerator surfaces
	// the same sentinel, because the quotient's denominator collapses.
	ErrZeroDenominator = errors.New("xferfcn: zero denominator")

	// ErrNotSISO marks an operation that is only defined for single-input
	// single-output systems (Div, Feedback, Poles, Zeros) applied to a
	// multivariable one.
	ErrNotSISO = errors.New("xferfcn: operation requires 1x1 (SISO) systems")

	// ErrEvalAtPole is returned by EvalAt/EvalFr when the evaluation point is
	// an exact root of some entry's denominator.
	ErrEvalAtPole = errors.New("xferfcn: evaluation at a pole")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required:
	// coefficient grids under the validation policy, or frequency vectors.
	ErrNaNInf = errors.New("xferfcn: NaN or Inf encountered")

	// ErrEmptyOmega indicates that FreqResp received an empty frequency grid.
	ErrEmptyOmega = errors.New("xferfcn: empty frequency vector")

	// ErrNilSystem indicates that a nil *TransferFunction was passed as an
	// operand.
	ErrNilSystem = errors.New("xferfcn: nil transfer function")

	// ErrOutOfRange indicates that an output or input index is outside the
	// system's dimensions. Public indexers (Num/Den) MUST return this, not
	// panic.
	ErrOutOfRange = errors.New("xferfcn: index out of range")

	// ErrBadEpsilon is returned by New when WithEpsilon carried a negative or
	// non-finite tolerance.
	ErrBadEpsilon = errors.New("xferfcn: epsilon must be finite, non-negative")
)
