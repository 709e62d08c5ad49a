package matchers

// Enum matches a categorical identifier such as a kind or a color.
type Enum[T ~string] interface {
	Matcher[T]
	enumMatcher()
}

type AnyEnum[T ~string] struct{}

func (AnyEnum[T]) enumMatcher() {}

func (AnyEnum[T]) Matches(T) bool { return true }

func (AnyEnum[T]) Solve(seed T) (T, error) { return seed, nil }

type ExactlyEnum[T ~string] struct {
	Value T
}

func (ExactlyEnum[T]) enumMatcher() {}

func (m ExactlyEnum[T]) Matches(v T) bool { return v == m.Value }

func (m ExactlyEnum[T]) Solve(T) (T, error) { return m.Value, nil }

// RegexEnum matches the identifier text, e.g. `DIAMOND_.*`.
type RegexEnum[T ~string] struct {
	Pattern *Pattern
}

func (RegexEnum[T]) enumMatcher() {}

func (m RegexEnum[T]) Matches(v T) bool { return m.Pattern.MatchString(string(v)) }

func (m RegexEnum[T]) Solve(T) (T, error) {
	var zero T
	return zero, notSolvablePattern(m.Pattern)
}
