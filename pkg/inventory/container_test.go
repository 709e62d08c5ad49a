// Test Type: Unit Test
// Description: Tests for the in-memory slot container

package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/itemexpr/pkg/inventory"
	"github.com/arthur-debert/itemexpr/pkg/types"
)

func TestSlotContainer_Snapshots(t *testing.T) {
	c := inventory.FromStacks(
		types.NewResource(types.KindCoal, 5),
		nil,
		types.NewResource(types.KindDiamond, 2),
	)

	t.Run("contents_are_copies", func(t *testing.T) {
		contents := c.Contents()
		contents[0].Amount = 1
		contents[1] = types.NewResource(types.KindStone, 64)

		assert.Equal(t, []int{5, 0, 2}, c.Amounts())
		assert.Nil(t, c.Slot(1))
	})

	t.Run("set_contents_copies_and_clears_spent_stacks", func(t *testing.T) {
		stacks := c.Contents()
		stacks[0].Amount = 0
		c.SetContents(stacks)
		stacks[2].Amount = 40

		assert.Equal(t, []int{0, 0, 2}, c.Amounts())
		assert.Nil(t, c.Slot(0))
		assert.Equal(t, 3, c.Size())
	})
}

func TestSlotContainer_Put(t *testing.T) {
	c := inventory.NewSlotContainer(1)
	c.Put(3, types.NewResource(types.KindBread, 8))

	assert.Equal(t, 4, c.Size())
	assert.Equal(t, []int{0, 0, 0, 8}, c.Amounts())
	assert.Nil(t, c.Slot(-1))
	assert.Nil(t, c.Slot(10))
}

func TestCount(t *testing.T) {
	c := inventory.FromStacks(
		types.NewResource(types.KindCoal, 5),
		types.NewResource(types.KindDiamond, 2),
		nil,
		types.NewResource(types.KindCoal, 7),
	)

	isCoal := func(r *types.Resource) bool { return r.Kind == types.KindCoal }
	assert.Equal(t, 12, inventory.Count(c, isCoal))
	assert.Equal(t, 14, inventory.Count(c, nil))
	assert.Equal(t, []types.Kind{types.KindCoal, types.KindDiamond}, inventory.Kinds(c))
}
