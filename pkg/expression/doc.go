// Package expression implements the item expression: an aggregate of
// attribute matchers that is evaluated against resources, solved into a
// resource that satisfies it, and used to remove matching stacks from a
// container.
//
// An expression starts out accepting every resource. Constructors narrow it
// from a concrete resource (FromResource) or from a configuration tree
// (FromConfig, Parse):
//
//	material: DIAMOND_SWORD
//	amount:
//	  range:
//	    low: 1
//	    high: 16
//	name:
//	  regex: "Blade of .*"
//	enchantmentsAll:
//	  sharpness: 5
//	  looting: any
//	enchantmentsNone:
//	  "*": any
//	skull:
//	  names: [Notch]
//	unbreakable: true
//
// Keys that are absent leave the current matcher in place. ToConfig writes
// the matchers back out in the same shape.
package expression
