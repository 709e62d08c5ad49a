package matchers

import (
	"fmt"

	"github.com/arthur-debert/itemexpr/pkg/errors"
	"github.com/arthur-debert/itemexpr/pkg/types"
)

// Tag matches a single modifier tag with its level.
type Tag interface {
	Matcher[types.Tag]
	tagMatcher()
}

// AnyTag accepts every tag. A list holding only AnyTag also accepts a
// resource with no tags at all.
type AnyTag struct{}

func (AnyTag) tagMatcher() {}

func (AnyTag) Wildcard() bool { return true }

func (AnyTag) Matches(types.Tag) bool { return true }

func (AnyTag) Solve(seed types.Tag) (types.Tag, error) { return seed, nil }

// ExactlyTag accepts tags of one kind whose level satisfies Level.
type ExactlyTag struct {
	Kind  types.TagKind
	Level Amount
}

func (ExactlyTag) tagMatcher() {}

func (m ExactlyTag) Matches(t types.Tag) bool {
	return t.Kind == m.Kind && m.level().Matches(t.Level)
}

func (m ExactlyTag) Solve(seed types.Tag) (types.Tag, error) {
	level, err := m.level().Solve(seed.Level)
	if err != nil {
		return types.Tag{}, errors.Wrapf(err, errors.ErrNotSolvable, "level of %s", m.Kind)
	}
	return types.Tag{Kind: m.Kind, Level: level}, nil
}

func (m ExactlyTag) level() Amount {
	if m.Level == nil {
		return AnyAmount{}
	}
	return m.Level
}

func (m ExactlyTag) String() string { return fmt.Sprintf("%s=%v", m.Kind, m.level()) }

// LevelTag accepts a tag of any kind whose level satisfies Level. Unlike
// AnyTag it never makes a list vacuously true.
type LevelTag struct {
	Level Amount
}

func (LevelTag) tagMatcher() {}

func (m LevelTag) Matches(t types.Tag) bool {
	if m.Level == nil {
		return true
	}
	return m.Level.Matches(t.Level)
}

func (m LevelTag) Solve(seed types.Tag) (types.Tag, error) {
	if m.Level == nil {
		return seed, nil
	}
	level, err := m.Level.Solve(seed.Level)
	if err != nil {
		return types.Tag{}, err
	}
	return types.Tag{Kind: seed.Kind, Level: level}, nil
}

// NoTag accepts nothing.
type NoTag struct{}

func (NoTag) tagMatcher() {}

func (NoTag) Matches(types.Tag) bool { return false }

func (NoTag) Solve(types.Tag) (types.Tag, error) {
	return types.Tag{}, errors.NotSolvable("no tag satisfies NoTag")
}

// TagSet is a list of tag matchers under one quantifier.
type TagSet struct {
	Matchers []Tag
	Mode     ListMode
}

// NewTagSet builds a set. An empty matcher list is rejected: it would make
// "all" trivially true and "any" trivially false.
func NewTagSet(mode ListMode, ms ...Tag) (TagSet, error) {
	if len(ms) == 0 {
		return TagSet{}, errors.New(errors.ErrInvalidInput,
			"tag matchers can not be empty")
	}
	return TagSet{Matchers: ms, Mode: mode}, nil
}

// MustTagSet is like NewTagSet but panics on error.
func MustTagSet(mode ListMode, ms ...Tag) TagSet {
	s, err := NewTagSet(mode, ms...)
	if err != nil {
		panic(err)
	}
	return s
}

// DefaultTagSet is the unconstrained set for mode: [AnyTag] for any and all,
// [NoTag] for none.
func DefaultTagSet(mode ListMode) TagSet {
	if mode == ModeNone {
		return TagSet{Matchers: []Tag{NoTag{}}, Mode: mode}
	}
	return TagSet{Matchers: []Tag{AnyTag{}}, Mode: mode}
}

// IsDefault reports whether the set is the unconstrained set for its mode.
func (s TagSet) IsDefault() bool {
	if len(s.Matchers) != 1 {
		return false
	}
	switch s.Matchers[0].(type) {
	case AnyTag:
		return s.Mode != ModeNone
	case NoTag:
		return s.Mode == ModeNone
	}
	return false
}

// Matches applies the set to tags.
func (s TagSet) Matches(tags types.Tags) bool {
	return MatchList(s.Mode, s.Matchers, tags.Entries())
}

// Solve builds a tag map that satisfies the set. Seeds come from the entries
// of seed, or a single sharpness 1 tag when seed is empty. Witnesses for
// matchers pinned to a tag kind go in first; a later matcher already
// satisfied by the map adds nothing. In all mode two witnesses for one tag
// kind at different levels can't share a map and fail as not solvable; in
// any mode the later one is dropped.
func (s TagSet) Solve(seed types.Tags) (types.Tags, error) {
	supplier := NewEntrySupplier(func() []types.Tag {
		if len(seed) == 0 {
			return []types.Tag{{Kind: types.DefaultTag, Level: 1}}
		}
		return seed.Entries()
	})

	entries, err := SolveList(s.Mode, s.Matchers, supplier)
	if err != nil {
		return nil, err
	}

	out := make(types.Tags, len(entries))
	for _, pinned := range []bool{true, false} {
		for i, m := range s.Matchers {
			if _, ok := m.(ExactlyTag); ok != pinned {
				continue
			}
			if satisfied(m, out) {
				continue
			}
			e := entries[i]
			if level, ok := out[e.Kind]; ok && level != e.Level {
				if s.Mode == ModeAny {
					continue
				}
				return nil, errors.NotSolvable("conflicting levels %d and %d for tag %s", level, e.Level, e.Kind).
					WithDetail("tag", e.Kind.String())
			}
			out[e.Kind] = e.Level
		}
	}

	if !s.Matches(out) {
		return nil, errors.NotSolvable("solved tags %v do not satisfy the %s tag set", out, s.Mode)
	}
	return out, nil
}

func satisfied(m Tag, tags types.Tags) bool {
	for k, v := range tags {
		if m.Matches(types.Tag{Kind: k, Level: v}) {
			return true
		}
	}
	return false
}

// TagSource selects which tag namespace of a resource a matcher reads.
type TagSource uint8

const (
	SourcePrimary TagSource = iota
	SourceStored
)

func (s TagSource) String() string {
	if s == SourceStored {
		return "stored"
	}
	return "primary"
}

// TagSetMatcher applies a TagSet to one namespace of a resource. Stored
// tags only exist on tag container kinds; any other kind does not match.
type TagSetMatcher struct {
	Set    TagSet
	Source TagSource
}

// Unconstrained reports whether the matcher holds the default set for its
// mode. The expression skips such matchers.
func (m TagSetMatcher) Unconstrained() bool {
	return m.Set.IsDefault()
}

func (m TagSetMatcher) Matches(r *types.Resource) bool {
	switch m.Source {
	case SourcePrimary:
		return m.Set.Matches(r.Tags)
	case SourceStored:
		if !r.Kind.IsTagContainer() {
			return false
		}
		return m.Set.Matches(r.StoredTags)
	}
	panic(fmt.Sprintf("matchers: unhandled tag source %d", m.Source))
}

// Prepare returns a copy of r that can carry the tags m reads: for the
// stored source a kind that can't hold stored tags becomes an enchanted book.
func (m TagSetMatcher) Prepare(r *types.Resource) *types.Resource {
	out := r.Clone()
	if m.Source == SourceStored && !out.Kind.IsTagContainer() {
		out.Kind = types.KindEnchantedBook
	}
	return out
}

// Solve adds the solved tags to a prepared copy of r, keeping the tags r
// already carries in that namespace.
func (m TagSetMatcher) Solve(r *types.Resource) (*types.Resource, error) {
	out := m.Prepare(r)

	current := out.Tags
	if m.Source == SourceStored {
		current = out.StoredTags
	}
	seed := current
	if len(seed) == 0 {
		// seed from whatever the item carries
		seed = out.Tags
	}

	solved, err := m.Set.Solve(seed)
	if err != nil {
		return nil, err
	}
	tags := current.Clone()
	if tags == nil {
		tags = make(types.Tags, len(solved))
	}
	for k, v := range solved {
		tags[k] = v
	}
	out.SetTags(m.Source == SourceStored, tags)

	if !m.Matches(out) {
		return nil, errors.NotSolvable("solved tags conflict with the %s tags already present", m.Source)
	}
	return out, nil
}
