// Test Type: Unit Test
// Description: Tests for name, lore and enum matchers and the pattern wrapper

package matchers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/itemexpr/pkg/errors"
	"github.com/arthur-debert/itemexpr/pkg/matchers"
	"github.com/arthur-debert/itemexpr/pkg/types"
)

func TestCompilePattern(t *testing.T) {
	t.Run("matches_whole_value_only", func(t *testing.T) {
		p := matchers.MustCompilePattern("Ex.*", false)

		assert.True(t, p.MatchString("Excalibur"))
		assert.False(t, p.MatchString("The Excalibur"))
	})

	t.Run("alternation_is_anchored_as_a_group", func(t *testing.T) {
		p := matchers.MustCompilePattern("a|b", false)

		assert.True(t, p.MatchString("a"))
		assert.True(t, p.MatchString("b"))
		assert.False(t, p.MatchString("ab"))
	})

	t.Run("invalid_pattern_is_config_error", func(t *testing.T) {
		_, err := matchers.CompilePattern("(unclosed", false)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("keeps_source_and_flags", func(t *testing.T) {
		p := matchers.MustCompilePattern("^x$", true)
		assert.Equal(t, "^x$", p.String())
		assert.True(t, p.Multiline())
	})
}

func TestNameMatchers(t *testing.T) {
	t.Run("vanilla_only_accepts_unset_name", func(t *testing.T) {
		m := matchers.VanillaName{}
		assert.True(t, m.Matches(""))
		assert.False(t, m.Matches("Sword"))

		got, err := m.Solve("Sword")
		require.NoError(t, err)
		assert.Equal(t, "", got)
	})

	t.Run("exactly", func(t *testing.T) {
		m := matchers.ExactlyName{Name: "Sting"}
		assert.True(t, m.Matches("Sting"))
		assert.False(t, m.Matches("sting"))

		got, err := m.Solve("")
		require.NoError(t, err)
		assert.Equal(t, "Sting", got)
	})

	t.Run("regex_never_solves", func(t *testing.T) {
		m := matchers.RegexName{Pattern: matchers.MustCompilePattern("S.*", false)}
		assert.True(t, m.Matches("Sting"))

		for _, seed := range []string{"", "Sting", "S"} {
			_, err := m.Solve(seed)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrNotSolvable))
		}
	})
}

func TestLoreMatchers(t *testing.T) {
	t.Run("exactly_treats_nil_as_empty", func(t *testing.T) {
		m := matchers.ExactlyLore{Lines: []string{}}
		assert.True(t, m.Matches(nil))
		assert.False(t, m.Matches([]string{"x"}))
	})

	t.Run("exactly_solve_returns_copy", func(t *testing.T) {
		m := matchers.ExactlyLore{Lines: []string{"a", "b"}}
		got, err := m.Solve(nil)
		require.NoError(t, err)
		got[0] = "changed"
		assert.Equal(t, "a", m.Lines[0])
	})

	t.Run("regex_multiline", func(t *testing.T) {
		m := matchers.RegexLore{Pattern: matchers.MustCompilePattern(`(?s).*^Soulbound$.*`, true)}
		assert.True(t, m.Matches([]string{"Forged in fire", "Soulbound"}))
		assert.False(t, m.Matches([]string{"Forged in fire"}))

		_, err := m.Solve(nil)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotSolvable))
	})
}

func TestEnumMatchers(t *testing.T) {
	exact := matchers.ExactlyEnum[types.Kind]{Value: types.KindDiamondSword}
	assert.True(t, exact.Matches(types.KindDiamondSword))
	assert.False(t, exact.Matches(types.KindIronAxe))

	got, err := exact.Solve(types.KindStone)
	require.NoError(t, err)
	assert.Equal(t, types.KindDiamondSword, got)

	re := matchers.RegexEnum[types.Kind]{Pattern: matchers.MustCompilePattern("DIAMOND_.*", false)}
	assert.True(t, re.Matches(types.KindDiamondPickaxe))
	assert.False(t, re.Matches(types.KindDiamond))
	_, err = re.Solve(types.KindDiamond)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotSolvable))

	anyColor := matchers.AnyEnum[types.Color]{}
	got2, err := anyColor.Solve(types.ColorRed)
	require.NoError(t, err)
	assert.Equal(t, types.ColorRed, got2)
}
