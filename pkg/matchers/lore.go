package matchers

import (
	"slices"
	"strings"
)

// Lore matches the ordered descriptive lines of a resource. A nil and an
// empty slice are the same value.
type Lore interface {
	Matcher[[]string]
	loreMatcher()
}

type AnyLore struct{}

func (AnyLore) loreMatcher() {}

func (AnyLore) Matches([]string) bool { return true }

func (AnyLore) Solve(seed []string) ([]string, error) { return seed, nil }

type ExactlyLore struct {
	Lines []string
}

func (ExactlyLore) loreMatcher() {}

func (m ExactlyLore) Matches(lines []string) bool { return slices.Equal(lines, m.Lines) }

func (m ExactlyLore) Solve([]string) ([]string, error) {
	return slices.Clone(m.Lines), nil
}

// RegexLore matches the lines joined with "\n" as one value, so a multiline
// pattern can anchor on individual lines.
type RegexLore struct {
	Pattern *Pattern
}

func (RegexLore) loreMatcher() {}

func (m RegexLore) Matches(lines []string) bool {
	return m.Pattern.MatchString(strings.Join(lines, "\n"))
}

func (m RegexLore) Solve([]string) ([]string, error) {
	return nil, notSolvablePattern(m.Pattern)
}
