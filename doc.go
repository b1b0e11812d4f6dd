// Package control is a transfer-function toolbox for linear time-invariant
// systems — build rational transfer-function matrices, compose them
// block-diagram style, and read off their frequency response.
//
// 🚀 What is control?
//
//	A small, immutable MIMO transfer-function representation with the
//	algebra control engineers actually use:
//		• Polynomials: convolution, Horner evaluation, companion-matrix roots
//		• Systems: scalar/vector/matrix construction with full validation
//		• Algebra: negate, add, subtract, multiply, divide (unreduced)
//		• Feedback: closed-loop reduction with a selectable sign convention
//		• Frequency response: single-point and swept magnitude/phase
//
// ✨ Why choose control?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Explicit errors – package sentinels, errors.Is-friendly, no panics
//   - Pure values – every operation returns a new immutable system
//
// Under the hood, everything is organized under three subpackages:
//
//	polynomial/ — dense real polynomials, highest degree first
//	xferfcn/    — the TransferFunction matrix, its algebra and responses
//	bdalg/      — series / parallel / feedback composition helpers
//
// Quick ASCII example:
//
//	         ┌──────┐
//	 u ──+──▶│ g(s) │──┬──▶ y
//	     ▲-  └──────┘  │
//	     └─────────────┘
//
//	closed, err := bdalg.UnityFeedback(g)
//
// represents the classical unity negative-feedback loop g/(1+g).
//
//	go get github.com/katalvlaran/control
package control
