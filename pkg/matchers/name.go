package matchers

import "fmt"

// Name matches display names. The empty string stands for an unset name.
type Name interface {
	Matcher[string]
	nameMatcher()
}

type AnyName struct{}

func (AnyName) nameMatcher() {}

func (AnyName) Matches(string) bool { return true }

func (AnyName) Solve(seed string) (string, error) { return seed, nil }

type ExactlyName struct {
	Name string
}

func (ExactlyName) nameMatcher() {}

func (m ExactlyName) Matches(s string) bool { return s == m.Name }

func (m ExactlyName) Solve(string) (string, error) { return m.Name, nil }

func (m ExactlyName) String() string { return fmt.Sprintf("%q", m.Name) }

type RegexName struct {
	Pattern *Pattern
}

func (RegexName) nameMatcher() {}

func (m RegexName) Matches(s string) bool { return m.Pattern.MatchString(s) }

func (m RegexName) Solve(string) (string, error) { return "", notSolvablePattern(m.Pattern) }

// VanillaName accepts only a resource whose name was never overridden.
type VanillaName struct{}

func (VanillaName) nameMatcher() {}

func (VanillaName) Matches(s string) bool { return s == "" }

func (VanillaName) Solve(string) (string, error) { return "", nil }
