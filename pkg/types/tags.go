package types

import (
	"sort"
	"strings"
)

// TagKind identifies a modifier tag (an enchantment), e.g. "sharpness".
// Tag kinds are always lower case.
type TagKind string

// DefaultTag is the tag used to seed synthesis when a resource has none.
const DefaultTag TagKind = "sharpness"

// NewTagKind case-folds an identifier into a TagKind.
func NewTagKind(s string) TagKind {
	return TagKind(strings.ToLower(strings.TrimSpace(s)))
}

func (t TagKind) String() string { return string(t) }

// Tag is a single tag kind with its level.
type Tag struct {
	Kind  TagKind
	Level int
}

// Tags maps tag kinds to levels. Keys are unique by construction.
type Tags map[TagKind]int

// Entries returns the tags sorted by kind, so iteration order is stable.
func (t Tags) Entries() []Tag {
	entries := make([]Tag, 0, len(t))
	for k, v := range t {
		entries = append(entries, Tag{Kind: k, Level: v})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Kind < entries[j].Kind })
	return entries
}

// Clone returns an independent copy; a nil receiver yields nil.
func (t Tags) Clone() Tags {
	if t == nil {
		return nil
	}
	out := make(Tags, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// TagsFromEntries builds a map from entries; later duplicates win.
func TagsFromEntries(entries []Tag) Tags {
	out := make(Tags, len(entries))
	for _, e := range entries {
		out[e.Kind] = e.Level
	}
	return out
}
