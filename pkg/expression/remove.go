package expression

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/arthur-debert/itemexpr/pkg/errors"
	"github.com/arthur-debert/itemexpr/pkg/inventory"
	"github.com/arthur-debert/itemexpr/pkg/logging"
	"github.com/arthur-debert/itemexpr/pkg/matchers"
)

// NoLimit asks RemoveFromContainer to remove every matching unit.
const NoLimit = -1

// RemoveFromContainer removes amount units of matching stacks from c, taking
// from the slots in order. The amount matcher of e is ignored while
// scanning: it describes a stack, not the total to take.
//
// Removal is all or nothing. When c holds fewer matching units than amount,
// it reports false and c is left untouched. With NoLimit every matching
// stack is emptied and the call always succeeds.
func (e *Expression) RemoveFromContainer(c inventory.Container, amount int) (bool, error) {
	if amount < 0 && amount != NoLimit {
		return false, errors.Newf(errors.ErrInvalidInput, "can't remove %d units", amount).
			WithDetail("amount", amount)
	}

	saved := e.amount
	e.amount = matchers.AnyAmount{}
	defer func() { e.amount = saved }()

	remaining, unlimited := amount, amount == NoLimit
	if unlimited {
		remaining = math.MaxInt
	}

	stacks := c.Contents()
	touched := 0
	for _, stack := range stacks {
		if stack.IsEmpty() || !e.Matches(stack) {
			continue
		}
		if remaining == 0 {
			break
		}

		touched++
		if stack.Amount >= remaining {
			stack.Amount -= remaining
			remaining = 0
			break
		}
		remaining -= stack.Amount
		stack.Amount = 0
	}

	if remaining < 0 {
		panic(fmt.Sprintf("expression: remaining amount is negative (%d) after scanning the container", remaining))
	}

	logger := logging.GetLogger("expression.remove")
	if remaining == 0 || unlimited {
		c.SetContents(stacks)
		logger.Debug().
			Int("requested", amount).
			Int("slots", touched).
			Msg("Removed matching stacks")
		return true, nil
	}

	logger.Debug().
		Int("requested", amount).
		Int("missing", remaining).
		Msg("Not enough matching units, container left unchanged")
	return false, nil
}

// RemoveImplied removes the number of units the amount matcher of e names:
// N for an exact amount, everything for any, and the effective low bound of
// a range. With random set, a range instead yields a count drawn uniformly
// from its effective bounds using rng, which must then be non-nil.
func (e *Expression) RemoveImplied(c inventory.Container, random bool, rng *rand.Rand) (bool, error) {
	amount, err := e.ImpliedAmount(random, rng)
	if err != nil {
		return false, err
	}
	return e.RemoveFromContainer(c, amount)
}

// ImpliedAmount returns the count RemoveImplied would request.
func (e *Expression) ImpliedAmount(random bool, rng *rand.Rand) (int, error) {
	switch m := e.amount.(type) {
	case matchers.ExactlyAmount:
		if m.N < 0 {
			return 0, errors.Newf(errors.ErrInvalidInput, "can't remove a negative amount (%d)", m.N)
		}
		return m.N, nil
	case matchers.AnyAmount:
		return NoLimit, nil
	case matchers.RangeAmount:
		if m.Empty() {
			return 0, errors.Newf(errors.ErrInvalidInput, "range %s accepts no amount", m)
		}
		low, high := max(m.EffectiveLow(), 0), m.EffectiveHigh()
		if high < low {
			return 0, errors.Newf(errors.ErrInvalidInput, "range %s accepts no removable amount", m)
		}
		if !random {
			return low, nil
		}
		if rng == nil {
			return 0, errors.New(errors.ErrInvalidInput, "random removal needs a random source")
		}
		// the span is taken in uint64 so a range up to MaxInt can't overflow
		return low + int(rng.Uint64N(uint64(high-low)+1)), nil
	}
	return 0, errors.Newf(errors.ErrUnsupported,
		"amount matcher %T is not supported for implied-quantity removal", e.amount)
}
