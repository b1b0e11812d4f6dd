// Package xferfcn models linear time-invariant systems as transfer-function
// matrices: grids of rational functions in the Laplace variable s.
//
// 🚀 What is a transfer function?
//
//	A transfer function G(s) = num(s)/den(s) describes how a linear system
//	responds to an input in the frequency domain.  A MIMO system with m
//	inputs and p outputs is a p×m grid of such fractions.  Typical uses:
//	  • Controller and plant modelling (PID loops, lead/lag compensators)
//	  • Block-diagram algebra (series, parallel, feedback connections)
//	  • Frequency-domain analysis (Bode magnitude and phase data)
//	  • Pole/zero inspection for stability reasoning
//
// ✨ Key features:
//   - flexible construction: scalars, coefficient vectors, or full 2-D grids
//     (scalar/vector shorthand broadcasts to a 1×1 system)
//   - canonical form: leading-zero coefficients are truncated on entry,
//     zero numerators collapse to the exact zero system 0/1
//   - exact polynomial algebra: Add, Sub, Mul, Div, Neg and Feedback with
//     no hidden pole/zero cancellation
//   - pointwise evaluation EvalAt/EvalFr and vectorized FreqResp
//   - DefaultFrequencyRange picks a decade window from the system features
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/control/xferfcn"
//
//	// G(s) = (s + 2) / (s² + 2s + 3)
//	g, err := xferfcn.New(
//	    xferfcn.Vector(1, 2),
//	    xferfcn.Vector(1, 2, 3),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	closed, err := g.Feedback(h, xferfcn.Negative)
//	resp, err := closed.FreqResp([]float64{0.1, 1, 10})
//
// Performance:
//
//   - Algebra: O(p·m·d²) per operation for degree-d entries
//   - FreqResp: O(p·m·d·len(omega))
//
// All operations validate their operands and return sentinel errors from
// errors.go; nothing in this package panics on user input.
package xferfcn
