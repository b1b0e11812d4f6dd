// Package bdalg provides block-diagram algebra: free functions that wire
// transfer functions into series, parallel and feedback interconnections.
//
// 🚀 What is block-diagram algebra?
//
//	Control systems are drawn as block diagrams: boxes (systems) joined
//	by signal lines.  Reducing a diagram to a single equivalent transfer
//	function is pure algebra over the blocks:
//	  • series     u → G₁ → G₂ → y      ⇒  G₂·G₁
//	  • parallel   u → G₁, G₂ → (+) → y ⇒  G₁ + G₂
//	  • feedback   loop around G via H  ⇒  G/(1 + G·H)
//
// ✨ Key features:
//   - variadic Series and Parallel for whole signal chains
//   - Feedback and UnityFeedback for the standard closed loops
//   - pure functions over xferfcn values; operands are never mutated
//
// ⚙️ Usage:
//
//	open, err := bdalg.Series(controller, plant)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	closed, err := bdalg.UnityFeedback(open)
//
// Series follows signal flow: Series(g1, g2) feeds g1's outputs into g2,
// so the result is the matrix product g2·g1.
package bdalg
