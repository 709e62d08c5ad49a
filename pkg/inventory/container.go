package inventory

import (
	"github.com/arthur-debert/itemexpr/pkg/types"
)

// Container is an ordered sequence of optional stacks with bulk access.
type Container interface {
	// Contents returns the stacks in slot order. Empty slots are nil.
	Contents() []*types.Resource
	// SetContents replaces every slot.
	SetContents(stacks []*types.Resource)
}

// SlotContainer is an in-memory Container. It is not safe for concurrent
// use; callers sequence access.
type SlotContainer struct {
	slots []*types.Resource
}

// NewSlotContainer returns a container with size empty slots.
func NewSlotContainer(size int) *SlotContainer {
	return &SlotContainer{slots: make([]*types.Resource, size)}
}

// FromStacks returns a container holding copies of stacks, one per slot.
func FromStacks(stacks ...*types.Resource) *SlotContainer {
	return &SlotContainer{slots: types.CloneStacks(stacks)}
}

// Contents returns a deep copy of the slots.
func (c *SlotContainer) Contents() []*types.Resource {
	return types.CloneStacks(c.slots)
}

// SetContents stores a deep copy of stacks. Stacks emptied down to a zero
// amount become empty slots.
func (c *SlotContainer) SetContents(stacks []*types.Resource) {
	out := types.CloneStacks(stacks)
	for i, s := range out {
		if s != nil && (s.IsEmpty() || s.Amount <= 0) {
			out[i] = nil
		}
	}
	c.slots = out
}

// Size is the number of slots.
func (c *SlotContainer) Size() int { return len(c.slots) }

// Slot returns a copy of the stack at i, or nil when the slot is empty or
// out of range.
func (c *SlotContainer) Slot(i int) *types.Resource {
	if i < 0 || i >= len(c.slots) {
		return nil
	}
	return c.slots[i].Clone()
}

// Put stores a copy of r in slot i, growing the container if needed.
func (c *SlotContainer) Put(i int, r *types.Resource) {
	for len(c.slots) <= i {
		c.slots = append(c.slots, nil)
	}
	c.slots[i] = r.Clone()
}

// Amounts returns the amount held in each slot, zero for empty slots.
func (c *SlotContainer) Amounts() []int {
	out := make([]int, len(c.slots))
	for i, s := range c.slots {
		if !s.IsEmpty() {
			out[i] = s.Amount
		}
	}
	return out
}

// Count sums the amounts of the stacks accepted by match.
func Count(c Container, match func(*types.Resource) bool) int {
	total := 0
	for _, s := range c.Contents() {
		if s.IsEmpty() {
			continue
		}
		if match == nil || match(s) {
			total += s.Amount
		}
	}
	return total
}
