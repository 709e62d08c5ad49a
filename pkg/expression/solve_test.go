// Test Type: Unit Test
// Description: Tests for solving expressions into concrete resources

package expression_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/itemexpr/pkg/errors"
	"github.com/arthur-debert/itemexpr/pkg/expression"
	"github.com/arthur-debert/itemexpr/pkg/matchers"
	"github.com/arthur-debert/itemexpr/pkg/types"
)

func TestSolve_Default(t *testing.T) {
	r, err := expression.New().Solve()
	require.NoError(t, err)
	assert.Equal(t, expression.DefaultSeed(), r)
}

func TestSolve_FromResourceReproducesIt(t *testing.T) {
	for _, r := range sampleResources() {
		t.Run(r.Kind.String(), func(t *testing.T) {
			got, err := expression.FromResource(r, false).Solve()
			require.NoError(t, err)
			assert.True(t, expression.FromResource(r, false).Matches(got))
			assert.Equal(t, r.Kind, got.Kind)
			assert.Equal(t, r.Amount, got.Amount)
		})
	}
}

func TestSolve_Parsed(t *testing.T) {
	e, err := expression.Parse(map[string]any{
		"material":        "DIAMOND_SWORD",
		"amount":          map[string]any{"range": map[string]any{"low": 2, "high": 8}},
		"name":            "Excalibur",
		"lore":            []any{"Forged in fire"},
		"enchantmentsAll": map[string]any{"sharpness": 5, "looting": map[string]any{"range": map[string]any{"low": 1, "high": 3}}},
		"unbreakable":     true,
	})
	require.NoError(t, err)

	r, err := e.Solve()
	require.NoError(t, err)
	assert.True(t, e.Matches(r))
	assert.Equal(t, types.KindDiamondSword, r.Kind)
	assert.Equal(t, 2, r.Amount, "seed amount 1 is clamped to the low bound")
	assert.Equal(t, types.Tags{"sharpness": 5, "looting": 1}, r.Tags)
	assert.True(t, r.Unbreakable)
}

func TestSolveFrom_KeepsSeedWhereOpen(t *testing.T) {
	e := expression.New()
	e.SetName(matchers.ExactlyName{Name: "Renamed"})

	seed := &types.Resource{Kind: types.KindIronAxe, Amount: 1, Durability: 40, Tags: types.Tags{"efficiency": 2}}
	r, err := e.SolveFrom(seed)
	require.NoError(t, err)

	assert.Equal(t, types.KindIronAxe, r.Kind)
	assert.Equal(t, 40, r.Durability)
	assert.Equal(t, "Renamed", r.DisplayName)
	assert.Equal(t, types.Tags{"efficiency": 2}, r.Tags)
	assert.Empty(t, seed.DisplayName, "seed is not modified")
}

func TestSolve_Coercions(t *testing.T) {
	t.Run("stored_tags_make_a_book", func(t *testing.T) {
		e := expression.New()
		e.SetTagSet(matchers.SourceStored, matchers.MustTagSet(matchers.ModeAll, exactly("mending", 1)))

		r, err := e.Solve()
		require.NoError(t, err)
		assert.Equal(t, types.KindEnchantedBook, r.Kind)
		assert.Equal(t, types.Tags{"mending": 1}, r.StoredTags)
	})

	t.Run("owner_makes_a_head", func(t *testing.T) {
		e := expression.New()
		e.SetOwners([]matchers.UUID{matchers.NameUUID{Name: "Notch", Resolver: testResolver()}})

		r, err := e.Solve()
		require.NoError(t, err)
		assert.Equal(t, types.KindPlayerHead, r.Kind)
		assert.Equal(t, notchID, r.Owner)
	})

	t.Run("location_makes_a_map", func(t *testing.T) {
		e := expression.New()
		e.AddExtra(matchers.LocationMatcher{Location: matchers.ExactlyName{Name: "Spawn"}})

		r, err := e.Solve()
		require.NoError(t, err)
		assert.Equal(t, types.KindMap, r.Kind)
		assert.Equal(t, "Spawn", r.Location)
	})
}

func TestSolve_Failures(t *testing.T) {
	tests := []struct {
		name string
		tree map[string]any
	}{
		{"kind_pattern", map[string]any{"material": map[string]any{"regex": "DIAMOND_.*"}}},
		{"name_pattern", map[string]any{"name": map[string]any{"regex": ".*"}}},
		{"lore_pattern", map[string]any{"lore": map[string]any{"regex": ".*"}}},
		{"empty_range", map[string]any{"amount": map[string]any{"range": map[string]any{"low": 5, "high": 5, "inclusiveLow": false}}}},
		{"unknown_owner", map[string]any{"skull": map[string]any{"name": "Herobrine"}}},
		{"stored_tags_on_a_sword", map[string]any{"material": "DIAMOND_SWORD", "enchantmentsHeldAll": map[string]any{"mending": 1}}},
		{"none_set_violated_by_all", map[string]any{"enchantmentsAll": map[string]any{"sharpness": 1}, "enchantmentsNone": map[string]any{"sharpness": "any"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := expression.Parse(tt.tree, expression.WithResolver(testResolver()))
			require.NoError(t, err)

			r, err := e.Solve()
			require.Error(t, err)
			assert.Nil(t, r)
			assert.True(t, errors.IsErrorCode(err, errors.ErrNotSolvable), "got %v", err)
		})
	}
}

func TestSolve_Soundness(t *testing.T) {
	for name, e := range roundTripExpressions(t) {
		for _, seed := range append(sampleResources(), nil) {
			r, err := e.SolveFrom(seed)
			if err != nil {
				assert.True(t, errors.IsErrorCode(err, errors.ErrNotSolvable), "%s: %v", name, err)
				continue
			}
			assert.True(t, e.Matches(r), "%s solved to %+v", name, r)
		}
	}
}
