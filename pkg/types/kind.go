package types

import (
	"sort"
	"strings"

	"github.com/arthur-debert/itemexpr/pkg/errors"
)

// Kind is the categorical type of a resource, e.g. DIAMOND_SWORD.
// Identifiers are upper case with underscores.
type Kind string

// Well-known kinds. The list is not exhaustive for matching purposes (any
// registered identifier is valid), but these are the ones the engine gives
// special capabilities to or uses as synthesis defaults.
const (
	KindAir                Kind = "AIR"
	KindStone              Kind = "STONE"
	KindDiamond            Kind = "DIAMOND"
	KindDiamondSword       Kind = "DIAMOND_SWORD"
	KindDiamondPickaxe     Kind = "DIAMOND_PICKAXE"
	KindIronAxe            Kind = "IRON_AXE"
	KindIronIngot          Kind = "IRON_INGOT"
	KindGoldIngot          Kind = "GOLD_INGOT"
	KindCoal               Kind = "COAL"
	KindBook               Kind = "BOOK"
	KindEnchantedBook      Kind = "ENCHANTED_BOOK"
	KindPlayerHead         Kind = "PLAYER_HEAD"
	KindMap                Kind = "MAP"
	KindFilledMap          Kind = "FILLED_MAP"
	KindTropicalFishBucket Kind = "TROPICAL_FISH_BUCKET"
	KindEmerald            Kind = "EMERALD"
	KindBread              Kind = "BREAD"
)

// Capability is a bit set of the optional attributes a kind carries.
type Capability uint8

const (
	// CapTagContainer marks kinds that hold stored modifier tags.
	CapTagContainer Capability = 1 << iota
	// CapIdentity marks kinds that carry an owner identity.
	CapIdentity
	// CapLocation marks kinds that carry a named location.
	CapLocation
	// CapBodyColor marks kinds that carry a body color variant.
	CapBodyColor
	// CapDurability marks kinds that wear down with use.
	CapDurability
)

// kindTable is the static registry of known kinds and their capabilities.
var kindTable = map[Kind]Capability{
	KindAir:                0,
	KindStone:              0,
	KindDiamond:            0,
	KindDiamondSword:       CapDurability,
	KindDiamondPickaxe:     CapDurability,
	KindIronAxe:            CapDurability,
	KindIronIngot:          0,
	KindGoldIngot:          0,
	KindCoal:               0,
	KindBook:               0,
	KindEnchantedBook:      CapTagContainer,
	KindPlayerHead:         CapIdentity,
	KindMap:                CapLocation,
	KindFilledMap:          CapLocation,
	KindTropicalFishBucket: CapBodyColor,
	KindEmerald:            0,
	KindBread:              0,
}

// RegisterKind adds a kind to the registry, or replaces its capabilities.
// Hosts call it at startup; it is not safe for concurrent use with lookups.
func RegisterKind(k Kind, caps Capability) {
	kindTable[Kind(strings.ToUpper(string(k)))] = caps
}

// ParseKind resolves an identifier case-insensitively against the registry.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := kindTable[k]; !ok {
		return "", errors.Newf(errors.ErrConfigParse, "unknown kind %q", s).
			WithDetail("kind", s)
	}
	return k, nil
}

// Kinds returns every registered kind in lexical order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(kindTable))
	for k := range kindTable {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Known reports whether the kind is registered.
func (k Kind) Known() bool {
	_, ok := kindTable[k]
	return ok
}

// Has reports whether the kind carries all capabilities in c.
func (k Kind) Has(c Capability) bool {
	return kindTable[k]&c == c
}

// IsEmpty reports whether the kind denotes an empty slot.
func (k Kind) IsEmpty() bool {
	return k == "" || k == KindAir
}

// IsTagContainer reports whether the kind stores modifier tags.
func (k Kind) IsTagContainer() bool { return k.Has(CapTagContainer) }

// IsIdentityBearing reports whether the kind carries an owner identity.
func (k Kind) IsIdentityBearing() bool { return k.Has(CapIdentity) }

// IsDurable reports whether the kind wears down with use.
func (k Kind) IsDurable() bool { return k.Has(CapDurability) }

func (k Kind) HasLocation() bool { return k.Has(CapLocation) }

func (k Kind) HasBodyColor() bool { return k.Has(CapBodyColor) }

func (k Kind) String() string { return string(k) }
