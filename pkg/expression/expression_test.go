// Test Type: Unit Test
// Description: Tests for expression matching, exact construction and setters

package expression_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/itemexpr/pkg/expression"
	"github.com/arthur-debert/itemexpr/pkg/matchers"
	"github.com/arthur-debert/itemexpr/pkg/types"
)

func TestNew_MatchesEverything(t *testing.T) {
	e := expression.New()
	for _, r := range sampleResources() {
		assert.True(t, e.Matches(r), "%+v", r)
	}
	assert.False(t, e.Matches(nil))
}

func TestFromResource_MatchesItself(t *testing.T) {
	for _, r := range sampleResources() {
		t.Run(r.Kind.String(), func(t *testing.T) {
			assert.True(t, expression.FromResource(r, false).Matches(r))
			assert.True(t, expression.FromResource(r, true).Matches(r))
		})
	}
}

func TestFromResource_IsExact(t *testing.T) {
	sword := &types.Resource{Kind: types.KindDiamondSword, Amount: 1, Tags: types.Tags{"sharpness": 5}}
	e := expression.FromResource(sword, false)

	tests := []struct {
		name   string
		change func(r *types.Resource)
	}{
		{"amount", func(r *types.Resource) { r.Amount = 2 }},
		{"kind", func(r *types.Resource) { r.Kind = types.KindIronAxe }},
		{"durability", func(r *types.Resource) { r.Durability = 1 }},
		{"name", func(r *types.Resource) { r.DisplayName = "Renamed" }},
		{"lore", func(r *types.Resource) { r.Lore = []string{"extra"} }},
		{"tag_level", func(r *types.Resource) { r.Tags = types.Tags{"sharpness": 4} }},
		{"tag_removed", func(r *types.Resource) { r.Tags = nil }},
		{"unbreakable", func(r *types.Resource) { r.Unbreakable = true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := sword.Clone()
			tt.change(other)
			assert.False(t, e.Matches(other))
		})
	}

	t.Run("similar_ignores_amount", func(t *testing.T) {
		other := sword.Clone()
		other.Amount = 40
		assert.True(t, expression.FromResource(sword, true).Matches(other))
	})
}

func TestFromResource_UntaggedRejectsTagged(t *testing.T) {
	plain := types.NewResource(types.KindDiamondSword, 1)
	e := expression.FromResource(plain, false)

	tagged := plain.Clone()
	tagged.Tags = types.Tags{"sharpness": 1}
	assert.False(t, e.Matches(tagged))

	emptyBook := types.NewResource(types.KindEnchantedBook, 1)
	fullBook := emptyBook.Clone()
	fullBook.StoredTags = types.Tags{"mending": 1}
	assert.False(t, expression.FromResource(emptyBook, false).Matches(fullBook))
}

func TestFromResource_Owner(t *testing.T) {
	head := &types.Resource{Kind: types.KindPlayerHead, Amount: 1, Owner: notchID}
	e := expression.FromResource(head, false)

	other := head.Clone()
	other.Owner = jebID
	assert.False(t, e.Matches(other))

	// an owner on a kind that can't carry one reads as no owner
	stone := &types.Resource{Kind: types.KindStone, Amount: 1, Owner: notchID}
	assert.True(t, expression.FromResource(types.NewResource(types.KindStone, 1), false).Matches(stone))
}

func TestSetters_IgnoreNil(t *testing.T) {
	e := expression.New()
	e.SetAmount(matchers.ExactlyAmount{N: 3})

	e.SetKind(nil)
	e.SetAmount(nil)
	e.SetDurability(nil)
	e.SetLore(nil)
	e.SetName(nil)
	e.SetOwners(nil)
	e.SetTagSet(matchers.SourcePrimary, matchers.TagSet{Mode: matchers.ModeAll})
	e.AddExtra(nil)

	assert.Equal(t, matchers.ExactlyAmount{N: 3}, e.Amount())
	assert.Equal(t, matchers.AnyEnum[types.Kind]{}, e.Kind())
	assert.True(t, e.TagSet(matchers.SourcePrimary, matchers.ModeAll).IsDefault())
	assert.Len(t, e.Owners(), 1)
	assert.Empty(t, e.Extras())
}

func TestMatches_TagSlots(t *testing.T) {
	sword := &types.Resource{Kind: types.KindDiamondSword, Amount: 1, Tags: types.Tags{"sharpness": 5, "looting": 2}}

	tests := []struct {
		name string
		set  matchers.TagSet
		src  matchers.TagSource
		want bool
	}{
		{"any_hit", matchers.MustTagSet(matchers.ModeAny, exactly("looting", 2), exactly("mending", 1)), matchers.SourcePrimary, true},
		{"all_miss", matchers.MustTagSet(matchers.ModeAll, exactly("looting", 2), exactly("mending", 1)), matchers.SourcePrimary, false},
		{"none_hit", matchers.MustTagSet(matchers.ModeNone, exactly("looting", 2)), matchers.SourcePrimary, false},
		{"none_miss", matchers.MustTagSet(matchers.ModeNone, exactly("mending", 1)), matchers.SourcePrimary, true},
		{"stored_all_on_non_container", matchers.MustTagSet(matchers.ModeAll, exactly("sharpness", 5)), matchers.SourceStored, false},
		{"stored_none_on_non_container", matchers.MustTagSet(matchers.ModeNone, exactly("sharpness", 5)), matchers.SourceStored, false},
		{"default_stored_set_on_non_container", matchers.DefaultTagSet(matchers.ModeAll), matchers.SourceStored, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := expression.New()
			e.SetTagSet(tt.src, tt.set)
			assert.Equal(t, tt.want, e.Matches(sword))
		})
	}
}

func TestMatches_Unbreakable(t *testing.T) {
	pick := &types.Resource{Kind: types.KindDiamondPickaxe, Amount: 1, Unbreakable: true}

	e := expression.New()
	assert.True(t, e.Matches(pick))

	e.SetUnbreakable(types.TriFalse)
	assert.False(t, e.Matches(pick))

	e.SetUnbreakable(types.TriTrue)
	assert.True(t, e.Matches(pick))
}

func TestMatches_Owners(t *testing.T) {
	e := expression.New()
	e.SetOwners([]matchers.UUID{
		matchers.NameUUID{Name: "jeb_", Resolver: testResolver()},
		matchers.ExactlyUUID{ID: notchID},
	})

	assert.True(t, e.Matches(&types.Resource{Kind: types.KindPlayerHead, Amount: 1, Owner: notchID}))
	assert.True(t, e.Matches(&types.Resource{Kind: types.KindPlayerHead, Amount: 1, Owner: jebID}))
	assert.False(t, e.Matches(&types.Resource{Kind: types.KindPlayerHead, Amount: 1}))
	assert.False(t, e.Matches(types.NewResource(types.KindStone, 1)))
}

func TestClone_IsIndependent(t *testing.T) {
	e := expression.New()
	c := e.Clone()
	c.SetAmount(matchers.ExactlyAmount{N: 2})
	c.AddExtra(matchers.LocationMatcher{Location: matchers.AnyName{}})

	assert.Equal(t, matchers.AnyAmount{}, e.Amount())
	assert.Empty(t, e.Extras())
}

func exactly(kind string, level int) matchers.Tag {
	return matchers.ExactlyTag{Kind: types.TagKind(kind), Level: matchers.ExactlyAmount{N: level}}
}
