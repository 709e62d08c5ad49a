package matchers

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/itemexpr/pkg/errors"
)

// ListMode is the quantifier applied when a list of matchers is checked
// against a collection of entries.
type ListMode uint8

const (
	// ModeAny holds when some matcher accepts some entry.
	ModeAny ListMode = iota
	// ModeAll holds when every matcher accepts at least one entry. Entries
	// no matcher accepts are allowed, and one entry may satisfy several
	// matchers.
	ModeAll
	// ModeNone is the negation of ModeAny.
	ModeNone
)

func (m ListMode) String() string {
	switch m {
	case ModeAny:
		return "any"
	case ModeAll:
		return "all"
	case ModeNone:
		return "none"
	default:
		return fmt.Sprintf("ListMode(%d)", uint8(m))
	}
}

// ParseListMode parses "any", "all" or "none", ignoring case.
func ParseListMode(s string) (ListMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "any":
		return ModeAny, nil
	case "all":
		return ModeAll, nil
	case "none":
		return ModeNone, nil
	default:
		return 0, errors.Newf(errors.ErrConfigParse, "unknown list mode %q", s)
	}
}

// wildcard is implemented by element matchers that accept every entry and
// make a singleton list vacuously true against an empty collection.
type wildcard interface {
	Wildcard() bool
}

func isVacuous[M any](matchers []M) bool {
	if len(matchers) != 1 {
		return false
	}
	w, ok := any(matchers[0]).(wildcard)
	return ok && w.Wildcard()
}

// MatchList applies mode to matchers over entries.
func MatchList[E any, M Matcher[E]](mode ListMode, matchers []M, entries []E) bool {
	switch mode {
	case ModeAny:
		return matchAny(matchers, entries)
	case ModeAll:
		return matchAll(matchers, entries)
	case ModeNone:
		return !matchAny(matchers, entries)
	default:
		panic(fmt.Sprintf("matchers: unhandled list mode %s", mode))
	}
}

func matchAny[E any, M Matcher[E]](matchers []M, entries []E) bool {
	if len(entries) == 0 && isVacuous(matchers) {
		return true
	}
	for _, m := range matchers {
		for _, e := range entries {
			if m.Matches(e) {
				return true
			}
		}
	}
	return false
}

func matchAll[E any, M Matcher[E]](matchers []M, entries []E) bool {
	if len(entries) == 0 && isVacuous(matchers) {
		return true
	}
	for _, m := range matchers {
		matched := false
		for _, e := range entries {
			if m.Matches(e) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

// SolveList produces one witness entry per matcher, each seeded by the next
// entry from supplier. ModeNone never solves: there is no canonical way to
// construct an absence.
func SolveList[E any, M Matcher[E]](mode ListMode, matchers []M, supplier *EntrySupplier[E]) ([]E, error) {
	if mode == ModeNone {
		return nil, errors.NotSolvable("can't solve a list in none mode")
	}

	out := make([]E, 0, len(matchers))
	for i, m := range matchers {
		entry, err := m.Solve(supplier.Next())
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrNotSolvable, "list matcher %d is not solvable", i)
		}
		out = append(out, entry)
	}
	return out, nil
}

// EntrySupplier hands out seed entries for SolveList. The defaults are only
// computed on the first call to Next and are then handed out in order,
// wrapping around when exhausted.
type EntrySupplier[E any] struct {
	load    func() []E
	entries []E
	loaded  bool
	next    int
}

// NewEntrySupplier returns a supplier backed by the entries load returns.
func NewEntrySupplier[E any](load func() []E) *EntrySupplier[E] {
	return &EntrySupplier[E]{load: load}
}

// Next returns the next default entry, or the zero value when there are
// none.
func (s *EntrySupplier[E]) Next() E {
	if !s.loaded {
		if s.load != nil {
			s.entries = s.load()
		}
		s.loaded = true
	}

	var zero E
	if len(s.entries) == 0 {
		return zero
	}
	e := s.entries[s.next%len(s.entries)]
	s.next++
	return e
}
