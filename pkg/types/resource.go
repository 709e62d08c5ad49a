package types

import (
	"github.com/google/uuid"
)

// Resource is a single stack of items: one kind, a quantity and the
// attributes matchers can inspect. The zero value is an empty slot.
//
// Optional attributes are only meaningful when Kind has the matching
// capability; the accessor methods apply that gating so matchers never read
// an attribute the kind does not carry.
type Resource struct {
	Kind        Kind
	Amount      int
	Durability  int
	DisplayName string
	Lore        []string
	Tags        Tags
	StoredTags  Tags
	Unbreakable bool
	Owner       uuid.UUID
	Location    string
	BodyColor   Color
}

// NewResource returns a plain stack of the given kind and amount.
func NewResource(kind Kind, amount int) *Resource {
	return &Resource{Kind: kind, Amount: amount}
}

// IsEmpty reports whether the resource represents an empty slot.
func (r *Resource) IsEmpty() bool {
	return r == nil || r.Kind.IsEmpty()
}

// HasDisplayName reports whether the default name is overridden.
func (r *Resource) HasDisplayName() bool {
	return r.DisplayName != ""
}

// StoredTagsView returns the stored tags, or nil when the kind is not a tag
// container.
func (r *Resource) StoredTagsView() Tags {
	if !r.Kind.IsTagContainer() {
		return nil
	}
	return r.StoredTags
}

// OwnerOrNil returns the owner identity, or uuid.Nil when the kind carries
// none or it was never set.
func (r *Resource) OwnerOrNil() uuid.UUID {
	if !r.Kind.IsIdentityBearing() {
		return uuid.Nil
	}
	return r.Owner
}

// Clone returns a deep copy. A nil receiver yields nil.
func (r *Resource) Clone() *Resource {
	if r == nil {
		return nil
	}
	out := *r
	if r.Lore != nil {
		out.Lore = append([]string(nil), r.Lore...)
	}
	out.Tags = r.Tags.Clone()
	out.StoredTags = r.StoredTags.Clone()
	return &out
}

// SetTags replaces the tags of the given source namespace.
func (r *Resource) SetTags(stored bool, tags Tags) {
	if stored {
		r.StoredTags = tags
	} else {
		r.Tags = tags
	}
}

// CloneStacks deep-copies a slice of optional stacks, preserving nil slots.
func CloneStacks(stacks []*Resource) []*Resource {
	out := make([]*Resource, len(stacks))
	for i, s := range stacks {
		out[i] = s.Clone()
	}
	return out
}
