// Package polynomial implements dense univariate polynomials with real
// coefficients, stored highest degree first.
//
// 🚀 What is the coefficient form?
//
//	Poly{1, 3, 5} represents s² + 3s + 5. The canonical form carries no
//	leading zero coefficients; the zero polynomial is the single
//	coefficient Poly{0}. Trailing zeros are meaningful (they encode
//	roots at the origin) and are never removed.
//
// ✨ Key features:
//   - Truncate / TruncateTol: canonical form with exact or tolerant zero tests
//   - Add / Sub / Mul / Scale: right-aligned sums and full convolution products
//   - Eval: Horner evaluation at complex points
//   - Monic / Roots: companion-matrix eigenvalue root finding
//   - Format / String: human-readable "3 s^2 + 2 s + 1" rendering
//
// All operations are pure: no function mutates its receiver or arguments,
// and every result is a freshly allocated slice.
//
// ⚙️ Usage:
//
//	p := polynomial.Poly{1, 2, 1}                  // s² + 2s + 1
//	q := polynomial.Mul(p, polynomial.Poly{1, -1}) // s³ + s² - s - 1
//	v := q.Eval(complex(0, 1))                     // evaluate at s = j
//	r, err := polynomial.Roots(q)                  // {-1, -1, 1}
//
// Complexity: Add/Sub/Eval O(n), Mul O(n·m), Roots O(n³) via one
// unsymmetric eigendecomposition of the n×n companion matrix.
package polynomial
