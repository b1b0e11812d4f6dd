package bdalg

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/control/xferfcn"
)

// ErrNilSystem indicates that a nil *xferfcn.TransferFunction was passed
// as a block.
var ErrNilSystem = errors.New("bdalg: nil system")

// Series connects blocks in signal-flow order: the input feeds first, and
// every following block consumes its predecessor's outputs. The result is
// therefore the reversed matrix product restₙ·…·rest₁·first, and inner
// dimensions must chain (each block's input count equals the previous
// block's output count).
func Series(first *xferfcn.TransferFunction, rest ...*xferfcn.TransferFunction) (*xferfcn.TransferFunction, error) {
	if first == nil {
		return nil, fmt.Errorf("series block 1: %w", ErrNilSystem)
	}

	out := first
	for i, sys := range rest {
		if sys == nil {
			return nil, fmt.Errorf("series block %d: %w", i+2, ErrNilSystem)
		}
		next, err := sys.Mul(out)
		if err != nil {
			return nil, fmt.Errorf("series block %d: %w", i+2, err)
		}
		out = next
	}

	return out, nil
}

// Parallel sums blocks driven by the same input: the result is
// first + rest₁ + … + restₙ. All blocks must share dimensions.
func Parallel(first *xferfcn.TransferFunction, rest ...*xferfcn.TransferFunction) (*xferfcn.TransferFunction, error) {
	if first == nil {
		return nil, fmt.Errorf("parallel block 1: %w", ErrNilSystem)
	}

	out := first
	for i, sys := range rest {
		if sys == nil {
			return nil, fmt.Errorf("parallel block %d: %w", i+2, ErrNilSystem)
		}
		next, err := out.Add(sys)
		if err != nil {
			return nil, fmt.Errorf("parallel block %d: %w", i+2, err)
		}
		out = next
	}

	return out, nil
}

// Negate returns the sign-flipped block -G.
func Negate(sys *xferfcn.TransferFunction) (*xferfcn.TransferFunction, error) {
	if sys == nil {
		return nil, fmt.Errorf("negate: %w", ErrNilSystem)
	}

	return sys.Neg(), nil
}

// Feedback closes the conventional negative-feedback loop of forward path
// g and feedback path h, yielding g/(1 + g·h).
func Feedback(g, h *xferfcn.TransferFunction) (*xferfcn.TransferFunction, error) {
	if g == nil || h == nil {
		return nil, fmt.Errorf("feedback: %w", ErrNilSystem)
	}

	return g.Feedback(h, xferfcn.Negative)
}

// UnityFeedback closes a negative-feedback loop with a unit feedback path,
// yielding g/(1 + g).
func UnityFeedback(g *xferfcn.TransferFunction) (*xferfcn.TransferFunction, error) {
	if g == nil {
		return nil, fmt.Errorf("unity feedback: %w", ErrNilSystem)
	}

	one, err := xferfcn.New(xferfcn.Scalar(1), xferfcn.Scalar(1))
	if err != nil {
		return nil, fmt.Errorf("unity feedback: %w", err)
	}

	return g.Feedback(one, xferfcn.Negative)
}
