package matchers

import (
	"time"

	"github.com/dlclark/regexp2"

	"github.com/arthur-debert/itemexpr/pkg/errors"
)

// matchTimeout bounds a single evaluation so a pathological pattern from
// configuration cannot hang matching.
const matchTimeout = 250 * time.Millisecond

// Pattern is a compiled regular expression that only accepts a whole value.
// The syntax is Perl/Java compatible (lookarounds, backreferences).
type Pattern struct {
	source    string
	multiline bool
	re        *regexp2.Regexp
}

// CompilePattern compiles expr for full-value matching. With multiline set,
// ^ and $ also match at line breaks inside the value.
func CompilePattern(expr string, multiline bool) (*Pattern, error) {
	opts := regexp2.None
	if multiline {
		opts |= regexp2.Multiline
	}

	re, err := regexp2.Compile(`\A(?:`+expr+`)\z`, opts)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "invalid pattern %q", expr)
	}
	re.MatchTimeout = matchTimeout

	return &Pattern{source: expr, multiline: multiline, re: re}, nil
}

// MustCompilePattern is like CompilePattern but panics on error.
func MustCompilePattern(expr string, multiline bool) *Pattern {
	p, err := CompilePattern(expr, multiline)
	if err != nil {
		panic(err)
	}
	return p
}

// MatchString reports whether the whole of s matches. A timeout counts as
// no match.
func (p *Pattern) MatchString(s string) bool {
	ok, err := p.re.MatchString(s)
	return err == nil && ok
}

// String returns the expression as written.
func (p *Pattern) String() string { return p.source }

// Multiline reports whether the pattern was compiled in multiline mode.
func (p *Pattern) Multiline() bool { return p.multiline }

func notSolvablePattern(p *Pattern) error {
	return errors.NotSolvable("can't solve a regex").WithDetail("pattern", p.String())
}
