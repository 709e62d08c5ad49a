// Test Type: Unit Test
// Description: Tests for kinds, colors, tags, tri-state predicates and resources

package types_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/itemexpr/pkg/errors"
	"github.com/arthur-debert/itemexpr/pkg/types"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    types.Kind
		wantErr bool
	}{
		{"diamond_sword", types.KindDiamondSword, false},
		{"  Player_Head ", types.KindPlayerHead, false},
		{"AIR", types.KindAir, false},
		{"dragon_egg", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := types.ParseKind(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
				assert.Equal(t, tt.in, errors.GetErrorDetails(err)["kind"])
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKindCapabilities(t *testing.T) {
	assert.True(t, types.KindEnchantedBook.IsTagContainer())
	assert.False(t, types.KindBook.IsTagContainer())
	assert.True(t, types.KindPlayerHead.IsIdentityBearing())
	assert.True(t, types.KindFilledMap.HasLocation())
	assert.True(t, types.KindTropicalFishBucket.HasBodyColor())
	assert.False(t, types.KindStone.HasBodyColor())
	assert.True(t, types.KindIronAxe.IsDurable())
	assert.False(t, types.KindCoal.IsDurable())

	assert.True(t, types.Kind("").IsEmpty())
	assert.True(t, types.KindAir.IsEmpty())
	assert.False(t, types.KindStone.IsEmpty())

	t.Run("registered kinds", func(t *testing.T) {
		widget := types.Kind("TEST_WIDGET")
		assert.False(t, widget.Known())

		types.RegisterKind("test_widget", types.CapIdentity|types.CapLocation)
		assert.True(t, widget.Known())
		assert.True(t, widget.IsIdentityBearing())
		assert.True(t, widget.HasLocation())
		assert.Contains(t, types.Kinds(), widget)

		got, err := types.ParseKind("test_widget")
		require.NoError(t, err)
		assert.Equal(t, widget, got)
	})

	kinds := types.Kinds()
	for i := 1; i < len(kinds); i++ {
		assert.Less(t, kinds[i-1], kinds[i])
	}
}

func TestParseColor(t *testing.T) {
	c, err := types.ParseColor("light_blue")
	require.NoError(t, err)
	assert.Equal(t, types.ColorLightBlue, c)

	_, err = types.ParseColor("mauve")
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestTags(t *testing.T) {
	assert.Equal(t, types.TagKind("sharpness"), types.NewTagKind(" Sharpness "))

	tags := types.Tags{"unbreaking": 3, "mending": 1, "sharpness": 5}
	assert.Equal(t, []types.Tag{
		{Kind: "mending", Level: 1},
		{Kind: "sharpness", Level: 5},
		{Kind: "unbreaking", Level: 3},
	}, tags.Entries())

	assert.Equal(t, tags, types.TagsFromEntries(tags.Entries()))

	clone := tags.Clone()
	clone["mending"] = 2
	assert.Equal(t, 1, tags["mending"])

	assert.Nil(t, types.Tags(nil).Clone())
	assert.Empty(t, types.Tags(nil).Entries())
}

func TestTri(t *testing.T) {
	tests := []struct {
		tri       types.Tri
		onTrue    bool
		onFalse   bool
		solveSeed bool
		solved    bool
		str       string
	}{
		{types.TriUnset, true, true, true, true, "unset"},
		{types.TriUnset, true, true, false, false, "unset"},
		{types.TriTrue, true, false, false, true, "true"},
		{types.TriFalse, false, true, true, false, "false"},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			assert.Equal(t, tt.onTrue, tt.tri.Matches(true))
			assert.Equal(t, tt.onFalse, tt.tri.Matches(false))
			assert.Equal(t, tt.solved, tt.tri.Solve(tt.solveSeed))
			assert.Equal(t, tt.str, tt.tri.String())
		})
	}

	assert.Equal(t, types.TriTrue, types.TriOf(true))
	assert.Equal(t, types.TriFalse, types.TriOf(false))
}

func TestResource(t *testing.T) {
	owner := uuid.MustParse("069a79f4-44e9-4726-a5be-fca90e38aaf5")

	t.Run("empty", func(t *testing.T) {
		var nilStack *types.Resource
		assert.True(t, nilStack.IsEmpty())
		assert.True(t, (&types.Resource{}).IsEmpty())
		assert.True(t, types.NewResource(types.KindAir, 3).IsEmpty())
		assert.False(t, types.NewResource(types.KindStone, 1).IsEmpty())
	})

	t.Run("capability gated views", func(t *testing.T) {
		sword := types.NewResource(types.KindDiamondSword, 1)
		sword.StoredTags = types.Tags{"mending": 1}
		sword.Owner = owner
		assert.Nil(t, sword.StoredTagsView())
		assert.Equal(t, uuid.Nil, sword.OwnerOrNil())

		book := types.NewResource(types.KindEnchantedBook, 1)
		book.SetTags(true, types.Tags{"mending": 1})
		assert.Equal(t, types.Tags{"mending": 1}, book.StoredTagsView())

		head := types.NewResource(types.KindPlayerHead, 1)
		head.Owner = owner
		assert.Equal(t, owner, head.OwnerOrNil())
	})

	t.Run("clone is deep", func(t *testing.T) {
		r := types.NewResource(types.KindDiamondSword, 1)
		r.Lore = []string{"Forged in fire"}
		r.SetTags(false, types.Tags{"sharpness": 5})

		c := r.Clone()
		c.Lore[0] = "changed"
		c.Tags["sharpness"] = 1
		assert.Equal(t, "Forged in fire", r.Lore[0])
		assert.Equal(t, 5, r.Tags["sharpness"])

		var nilStack *types.Resource
		assert.Nil(t, nilStack.Clone())
	})

	t.Run("clone stacks keeps empty slots", func(t *testing.T) {
		in := []*types.Resource{types.NewResource(types.KindCoal, 2), nil}
		out := types.CloneStacks(in)
		require.Len(t, out, 2)
		assert.Nil(t, out[1])
		out[0].Amount = 9
		assert.Equal(t, 2, in[0].Amount)
	})
}
