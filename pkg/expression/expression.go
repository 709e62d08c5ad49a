package expression

import (
	"slices"

	"github.com/arthur-debert/itemexpr/pkg/matchers"
	"github.com/arthur-debert/itemexpr/pkg/types"
)

// Expression matches resources attribute by attribute. The zero value is not
// usable; build one with New or one of the other constructors.
//
// Setters ignore nil (or empty) matchers so that a partially specified
// configuration leaves earlier matchers in place.
type Expression struct {
	kind        matchers.Enum[types.Kind]
	amount      matchers.Amount
	durability  matchers.Amount
	lore        matchers.Lore
	name        matchers.Name
	tags        [2][3]matchers.TagSetMatcher
	unbreakable types.Tri
	owners      []matchers.UUID
	extras      []matchers.ResourceMatcher
}

// New returns an expression that matches every resource.
func New() *Expression {
	e := &Expression{
		kind:       matchers.AnyEnum[types.Kind]{},
		amount:     matchers.AnyAmount{},
		durability: matchers.AnyAmount{},
		lore:       matchers.AnyLore{},
		name:       matchers.AnyName{},
		owners:     []matchers.UUID{matchers.AnyUUID{}},
	}
	for _, src := range []matchers.TagSource{matchers.SourcePrimary, matchers.SourceStored} {
		for _, mode := range []matchers.ListMode{matchers.ModeAny, matchers.ModeAll, matchers.ModeNone} {
			e.tags[src][mode] = matchers.TagSetMatcher{Set: matchers.DefaultTagSet(mode), Source: src}
		}
	}
	return e
}

// FromResource returns an expression that matches r. With acceptSimilar the
// amount is left open, so any stack that only differs in size also matches.
//
// Attributes the kind carries are pinned to their absent value: an untagged
// resource only matches untagged resources, a resource without an owner
// only matches resources without one. Stored tags are only pinned for tag
// container kinds.
func FromResource(r *types.Resource, acceptSimilar bool) *Expression {
	e := New()
	e.SetKind(matchers.ExactlyEnum[types.Kind]{Value: r.Kind})
	if !acceptSimilar {
		e.SetAmount(matchers.ExactlyAmount{N: r.Amount})
	}
	e.SetDurability(matchers.ExactlyAmount{N: r.Durability})
	e.SetLore(matchers.ExactlyLore{Lines: slices.Clone(r.Lore)})
	if r.HasDisplayName() {
		e.SetName(matchers.ExactlyName{Name: r.DisplayName})
	} else {
		e.SetName(matchers.VanillaName{})
	}

	e.setExactTags(matchers.SourcePrimary, r.Tags)
	if r.Kind.IsTagContainer() {
		e.setExactTags(matchers.SourceStored, r.StoredTags)
	}
	e.SetUnbreakable(types.TriOf(r.Unbreakable))
	e.SetOwners([]matchers.UUID{matchers.ExactlyUUID{ID: r.OwnerOrNil()}})

	if r.Kind.HasLocation() && r.Location != "" {
		e.AddExtra(matchers.LocationMatcher{Location: matchers.ExactlyName{Name: r.Location}})
	}
	if r.Kind.HasBodyColor() && r.BodyColor != "" {
		e.AddExtra(matchers.BodyColorMatcher{Color: matchers.ExactlyEnum[types.Color]{Value: r.BodyColor}})
	}
	return e
}

func (e *Expression) setExactTags(src matchers.TagSource, tags types.Tags) {
	if len(tags) == 0 {
		e.SetTagSet(src, matchers.MustTagSet(matchers.ModeNone,
			matchers.LevelTag{Level: matchers.AnyAmount{}}))
		return
	}

	entries := tags.Entries()
	ms := make([]matchers.Tag, len(entries))
	for i, t := range entries {
		ms[i] = matchers.ExactlyTag{Kind: t.Kind, Level: matchers.ExactlyAmount{N: t.Level}}
	}
	e.SetTagSet(src, matchers.MustTagSet(matchers.ModeAll, ms...))
}

func (e *Expression) Kind() matchers.Enum[types.Kind] { return e.kind }

func (e *Expression) SetKind(m matchers.Enum[types.Kind]) {
	if m != nil {
		e.kind = m
	}
}

func (e *Expression) Amount() matchers.Amount { return e.amount }

func (e *Expression) SetAmount(m matchers.Amount) {
	if m != nil {
		e.amount = m
	}
}

func (e *Expression) Durability() matchers.Amount { return e.durability }

func (e *Expression) SetDurability(m matchers.Amount) {
	if m != nil {
		e.durability = m
	}
}

func (e *Expression) Lore() matchers.Lore { return e.lore }

func (e *Expression) SetLore(m matchers.Lore) {
	if m != nil {
		e.lore = m
	}
}

func (e *Expression) Name() matchers.Name { return e.name }

func (e *Expression) SetName(m matchers.Name) {
	if m != nil {
		e.name = m
	}
}

// TagSet returns the tag set held for a namespace and quantifier.
func (e *Expression) TagSet(src matchers.TagSource, mode matchers.ListMode) matchers.TagSet {
	return e.tags[src][mode].Set
}

// SetTagSet stores s in the slot named by src and s.Mode. A set without
// matchers is ignored.
func (e *Expression) SetTagSet(src matchers.TagSource, s matchers.TagSet) {
	if len(s.Matchers) == 0 {
		return
	}
	e.tags[src][s.Mode] = matchers.TagSetMatcher{Set: s, Source: src}
}

func (e *Expression) Unbreakable() types.Tri { return e.unbreakable }

// SetUnbreakable sets the unbreakable predicate. TriUnset means don't care.
func (e *Expression) SetUnbreakable(t types.Tri) { e.unbreakable = t }

// Owners returns the owner matchers. A resource matches when any of them
// accepts its owner.
func (e *Expression) Owners() []matchers.UUID { return slices.Clone(e.owners) }

// SetOwners replaces the owner matchers. An empty list is ignored.
func (e *Expression) SetOwners(ms []matchers.UUID) {
	if len(ms) == 0 {
		return
	}
	e.owners = slices.Clone(ms)
}

// Extras returns the extension matchers.
func (e *Expression) Extras() []matchers.ResourceMatcher { return slices.Clone(e.extras) }

// AddExtra appends an extension matcher, checked after every built-in one.
func (e *Expression) AddExtra(m matchers.ResourceMatcher) {
	if m != nil {
		e.extras = append(e.extras, m)
	}
}

// Clone returns a copy that can be changed without affecting e. Matchers are
// immutable and shared.
func (e *Expression) Clone() *Expression {
	out := *e
	out.owners = slices.Clone(e.owners)
	out.extras = slices.Clone(e.extras)
	return &out
}

// Matches reports whether r satisfies every matcher. Cheap checks run first
// and evaluation stops at the first failure.
func (e *Expression) Matches(r *types.Resource) bool {
	if r == nil {
		return false
	}

	switch {
	case !e.kind.Matches(r.Kind):
		return false
	case !e.amount.Matches(r.Amount):
		return false
	case !e.durability.Matches(r.Durability):
		return false
	case !e.lore.Matches(r.Lore):
		return false
	case !e.name.Matches(r.DisplayName):
		return false
	case !e.tagsMatch(matchers.SourcePrimary, r):
		return false
	case !e.unbreakable.Matches(r.Unbreakable):
		return false
	case !e.tagsMatch(matchers.SourceStored, r):
		return false
	case !matchers.MatchAnyUUID(e.owners, r.OwnerOrNil()):
		return false
	}

	for _, m := range e.extras {
		if !m.Matches(r) {
			return false
		}
	}
	return true
}

// tagsMatch checks the any, all and none sets of one namespace. Sets left at
// their default do not constrain the resource.
func (e *Expression) tagsMatch(src matchers.TagSource, r *types.Resource) bool {
	for _, m := range e.tags[src] {
		if !m.Unconstrained() && !m.Matches(r) {
			return false
		}
	}
	return true
}
