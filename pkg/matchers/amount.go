package matchers

import (
	"fmt"

	"github.com/arthur-debert/itemexpr/pkg/errors"
)

// Amount matches integers: stack sizes, durability and tag levels.
type Amount interface {
	Matcher[int]
	amountMatcher()
}

// AnyAmount accepts any amount.
type AnyAmount struct{}

func (AnyAmount) amountMatcher() {}

func (AnyAmount) Matches(int) bool { return true }

func (AnyAmount) Solve(seed int) (int, error) { return seed, nil }

func (AnyAmount) String() string { return "any" }

// ExactlyAmount accepts only N.
type ExactlyAmount struct {
	N int
}

func (ExactlyAmount) amountMatcher() {}

func (m ExactlyAmount) Matches(n int) bool { return n == m.N }

func (m ExactlyAmount) Solve(int) (int, error) { return m.N, nil }

func (m ExactlyAmount) String() string { return fmt.Sprintf("%d", m.N) }

// RangeAmount accepts amounts between Low and High, each bound inclusive or
// exclusive on its own.
type RangeAmount struct {
	Low           int
	High          int
	LowInclusive  bool
	HighInclusive bool
}

// NewRange returns a range with both bounds inclusive.
func NewRange(low, high int) RangeAmount {
	return RangeAmount{Low: low, High: high, LowInclusive: true, HighInclusive: true}
}

func (RangeAmount) amountMatcher() {}

func (m RangeAmount) Matches(n int) bool {
	if m.LowInclusive {
		if n < m.Low {
			return false
		}
	} else if n <= m.Low {
		return false
	}

	if m.HighInclusive {
		return n <= m.High
	}
	return n < m.High
}

// EffectiveLow is the smallest accepted integer.
func (m RangeAmount) EffectiveLow() int {
	if m.LowInclusive {
		return m.Low
	}
	return m.Low + 1
}

// EffectiveHigh is the largest accepted integer.
func (m RangeAmount) EffectiveHigh() int {
	if m.HighInclusive {
		return m.High
	}
	return m.High - 1
}

// Empty reports whether no integer satisfies the range.
func (m RangeAmount) Empty() bool {
	return m.EffectiveLow() > m.EffectiveHigh()
}

// Solve clamps seed into the range: a seed in range is returned as is,
// otherwise the nearest bound, ties going to the low bound.
func (m RangeAmount) Solve(seed int) (int, error) {
	if m.Empty() {
		return 0, errors.NotSolvable("range %s accepts no amount", m)
	}
	if m.Matches(seed) {
		return seed, nil
	}
	if seed < m.EffectiveLow() {
		return m.EffectiveLow(), nil
	}
	return m.EffectiveHigh(), nil
}

func (m RangeAmount) String() string {
	open, closing := "(", ")"
	if m.LowInclusive {
		open = "["
	}
	if m.HighInclusive {
		closing = "]"
	}
	return fmt.Sprintf("%s%d, %d%s", open, m.Low, m.High, closing)
}
