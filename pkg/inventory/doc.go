// Package inventory holds slotted containers of resource stacks and the
// document formats used to read and write them.
//
// A Container is read and written as a whole: Contents returns a snapshot
// and SetContents replaces every slot at once. Allocation relies on this to
// stage changes on a private copy and commit them in one step.
//
// Documents are YAML or TOML, chosen by file extension:
//
//	slots:
//	  - kind: DIAMOND_SWORD
//	    amount: 1
//	    enchantments:
//	      sharpness: 5
//	  - {}
//	  - kind: COAL
//	    amount: 32
//
// An empty table (or kind AIR) is an empty slot.
package inventory
