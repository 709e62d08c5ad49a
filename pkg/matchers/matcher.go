package matchers

import (
	"github.com/arthur-debert/itemexpr/pkg/types"
)

// Matcher is the contract every attribute matcher satisfies.
type Matcher[T any] interface {
	// Matches reports whether value satisfies the predicate.
	Matches(value T) bool
	// Solve returns a value for which Matches holds, using seed as a hint.
	Solve(seed T) (T, error)
}

// ResourceMatcher is a matcher over a whole resource. Solve works on a copy
// of the seed and never mutates it.
type ResourceMatcher interface {
	Matcher[*types.Resource]
}
