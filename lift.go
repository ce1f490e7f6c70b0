package kmlift

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// Decimal context for all coordinate arithmetic. 50 significant digits,
// far beyond the precision of any track data.
var decCtx = apd.BaseContext.WithPrecision(50)

var two = apd.New(2, 0)

// span is an arc that already runs in its short direction and must not be
// split by the chosen cut.
type span struct {
	lo *apd.Decimal
	hi *apd.Decimal
}

// Lift chooses a cut threshold for a sequence of values on a cyclic axis
// with the given period. Renderers draw arcs between successive values on
// an unraveled line rather than a circle, so shifting every value below
// the threshold up by one period makes all consecutive arcs take the short
// direction around the cycle.
//
// Returns nil when there is nothing to do: all arcs are already short, or
// no single cut can fix the sequence (e.g. a path that wraps all the way
// around). Fewer than two values trivially needs no cut. The input slice
// is never modified.
func Lift(values []*apd.Decimal, period *apd.Decimal) (*apd.Decimal, error) {
	if period.Sign() <= 0 {
		return nil, fmt.Errorf("Period must be positive, got %s", period)
	}
	if len(values) < 2 {
		return nil, nil
	}

	var o0, o1 *apd.Decimal
	keep := make([]span, 0, len(values)-1)
	for i := 0; i+1 < len(values); i++ {
		a := values[i]
		b := values[i+1]

		backward, err := cycDist(a, b, period)
		if err != nil {
			return nil, err
		}
		forward, err := cycDist(b, a, period)
		if err != nil {
			return nil, err
		}

		if backward.Cmp(forward) < 0 {
			// Short arc runs downward, wants b below a
			if a.Cmp(b) < 0 {
				o0 = maxDec(o0, a)
				o1 = minDec(o1, b)
			} else {
				keep = append(keep, span{lo: b, hi: a})
			}
		} else {
			// Short arc runs upward, wants a below b
			if b.Cmp(a) < 0 {
				o0 = maxDec(o0, b)
				o1 = minDec(o1, a)
			} else {
				keep = append(keep, span{lo: a, hi: b})
			}
		}
	}

	if o0 == nil || o0.Cmp(o1) >= 0 {
		return nil, nil
	}

	// A cut inside an already-short arc would shift one endpoint but not
	// the other. Push the lower bound above every such arc, then keep the
	// upper bound below the arcs that remain above the cut.
	for _, s := range keep {
		if s.lo.Cmp(o0) <= 0 {
			o0 = maxDec(o0, s.hi)
		}
	}
	for _, s := range keep {
		if s.lo.Cmp(o0) > 0 {
			o1 = minDec(o1, s.lo)
		}
	}

	if o0.Cmp(o1) >= 0 {
		return nil, nil
	}

	// Midpoint of the interval, farthest from both bounds.
	out := &apd.Decimal{}
	if _, err := decCtx.Sub(out, o1, o0); err != nil {
		return nil, err
	}
	if _, err := decCtx.Quo(out, out, two); err != nil {
		return nil, err
	}
	if _, err := decCtx.Add(out, out, o0); err != nil {
		return nil, err
	}
	return out, nil
}

// cycDist computes (a - b) mod m with a non-negative result in [0, m).
func cycDist(a, b, m *apd.Decimal) (*apd.Decimal, error) {
	d := &apd.Decimal{}
	if _, err := decCtx.Sub(d, a, b); err != nil {
		return nil, err
	}
	if _, err := decCtx.Rem(d, d, m); err != nil {
		return nil, err
	}
	if d.Sign() < 0 {
		if _, err := decCtx.Add(d, d, m); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func maxDec(a, b *apd.Decimal) *apd.Decimal {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if b.Cmp(a) > 0 {
		return b
	}
	return a
}

func minDec(a, b *apd.Decimal) *apd.Decimal {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if b.Cmp(a) < 0 {
		return b
	}
	return a
}
