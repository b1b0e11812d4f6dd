package polynomial

import (
	"fmt"
	"math"
	"strings"
)

// String renders p in the transform variable s, e.g. "s^2 + 2 s + 1".
func (p Poly) String() string { return Format(p, "s") }

// Format renders p as a sum of powers of variable, highest power first.
// Coefficients print with %.4g, unit coefficients are elided on
// non-constant terms, zero terms are skipped, and the zero polynomial
// renders as "0".
func Format(p Poly, variable string) string {
	t := p.Truncate()
	degree := len(t) - 1

	var b strings.Builder
	for k, c := range t {
		power := degree - k
		coef := fmt.Sprintf("%.4g", math.Abs(c))

		var term string
		switch {
		case power == 0:
			if coef != "0" {
				term = coef
			} else if k == 0 {
				// Lone constant zero: the zero polynomial.
				term = "0"
			}
		case power == 1:
			switch coef {
			case "0":
			case "1":
				term = variable
			default:
				term = coef + " " + variable
			}
		default:
			switch coef {
			case "0":
			case "1":
				term = fmt.Sprintf("%s^%d", variable, power)
			default:
				term = fmt.Sprintf("%s %s^%d", coef, variable, power)
			}
		}
		if term == "" {
			continue
		}

		switch {
		case b.Len() == 0 && c < 0:
			b.WriteString("-")
		case b.Len() > 0 && c < 0:
			b.WriteString(" - ")
		case b.Len() > 0:
			b.WriteString(" + ")
		}
		b.WriteString(term)
	}

	return b.String()
}
