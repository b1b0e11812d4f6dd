// SPDX-License-Identifier: MIT

// Package xferfcn: functional configuration for transfer-function
// construction. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (pure setters; New validates the result).
//
// Unlike adapters that may panic on programmer error, construction here is
// driven by user data, so invalid option values surface as sentinel errors
// from New rather than panics.
package xferfcn

import "math"

// Defaults (single source of truth).
const (
	// DefaultEpsilon is the tolerance used when truncating leading
	// coefficients at construction. Zero means exact comparison: only
	// coefficients that are exactly 0 are stripped.
	DefaultEpsilon = 0.0

	// DefaultValidateNaNInf toggles strict finite-value validation of
	// coefficient grids on construction.
	DefaultValidateNaNInf = true
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; New accepts ...Option
// and resolves them against DefaultOptions.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// WithEpsilon sets the truncation tolerance: leading coefficients with
// magnitude <= eps are treated as zero when entries are normalized.
// The value is validated by New; a negative or non-finite eps yields
// ErrBadEpsilon.
func WithEpsilon(eps float64) Option {
	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation of coefficient
// grids. This is the default; use WithNoValidateNaNInf to relax.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation of coefficient grids.
// Non-finite coefficients then flow into algebra and evaluation unchecked.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions applies user-provided setters on top of defaults.
// Last-writer-wins semantics.
func gatherOptions(user ...Option) Options {
	o := DefaultOptions()
	for _, set := range user {
		set(&o)
	}

	return o
}

// validate rejects option states that no construction can honor.
func (o Options) validate() error {
	if math.IsNaN(o.eps) || math.IsInf(o.eps, 0) || o.eps < 0 {
		return ErrBadEpsilon
	}

	return nil
}
