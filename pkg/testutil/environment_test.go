// Test Type: Unit Test
// Description: Tests for the isolated test environment helpers

package testutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/itemexpr/pkg/inventory"
	"github.com/arthur-debert/itemexpr/pkg/testutil"
	"github.com/arthur-debert/itemexpr/pkg/types"
)

func TestTestEnvironment(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	t.Run("xdg isolated", func(t *testing.T) {
		assert.Equal(t, env.ConfigDir, xdg.ConfigHome)
		assert.Equal(t, env.StateDir, xdg.StateHome)
	})

	t.Run("file tree", func(t *testing.T) {
		env.WithFileTree(testutil.FileTree{
			"exprs": testutil.FileTree{
				"coal.yaml": "material: coal\n",
			},
			"readme.txt": "hello",
		})
		data, err := os.ReadFile(filepath.Join(env.Dir, "exprs", "coal.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "material: coal\n", string(data))
		assert.FileExists(t, env.Path("readme.txt"))
	})

	t.Run("user config", func(t *testing.T) {
		path := env.WriteUserConfig(testutil.IdentitiesTOML)
		assert.Equal(t, filepath.Join(env.ConfigDir, "itemexpr", "config.toml"), path)
		assert.FileExists(t, path)
	})

	t.Run("inventory", func(t *testing.T) {
		path := env.WriteInventory("chest.toml",
			testutil.Stack(types.KindCoal, 5),
			nil,
			testutil.Head(testutil.NotchID),
		)
		assert.Equal(t, []int{5, 0, 1}, env.Amounts(path))
	})

	t.Run("inventory attributes", func(t *testing.T) {
		path := env.WriteInventory("loot.yaml",
			testutil.Named(types.KindDiamondSword, 1, "Excalibur"),
			testutil.Enchanted(types.KindIronAxe, types.Tags{"efficiency": 4}),
			testutil.Book(types.Tags{"mending": 1}),
		)

		doc, err := inventory.ReadDocument(path)
		require.NoError(t, err)
		c, err := doc.Container()
		require.NoError(t, err)

		assert.Equal(t, "Excalibur", c.Slot(0).DisplayName)
		assert.Equal(t, types.Tags{"efficiency": 4}, c.Slot(1).Tags)
		assert.Equal(t, types.Tags{"mending": 1}, c.Slot(2).StoredTags)
	})
}

func TestResolver(t *testing.T) {
	r := testutil.Resolver()
	id, ok := r.IdentityOf("notch")
	require.True(t, ok)
	assert.Equal(t, testutil.NotchID, id)

	name, ok := r.NameOf(testutil.JebID)
	require.True(t, ok)
	assert.Equal(t, "jeb_", name)
}
