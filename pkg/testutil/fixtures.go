package testutil

import (
	"github.com/google/uuid"

	"github.com/arthur-debert/itemexpr/pkg/identity"
	"github.com/arthur-debert/itemexpr/pkg/types"
)

// Owner identities used across tests.
var (
	NotchID = uuid.MustParse("069a79f4-44e9-4726-a5be-fca90e38aaf5")
	JebID   = uuid.MustParse("853c80ef-3c37-49fd-aa49-938b674adae6")
)

// IdentitiesTOML is a config [identities] table naming NotchID and JebID.
const IdentitiesTOML = `[identities]
Notch = "069a79f4-44e9-4726-a5be-fca90e38aaf5"
jeb_ = "853c80ef-3c37-49fd-aa49-938b674adae6"
`

// Resolver knows Notch and jeb_.
func Resolver() *identity.StaticResolver {
	r := identity.NewStaticResolver()
	r.Add("Notch", NotchID)
	r.Add("jeb_", JebID)
	return r
}

// Stack returns a plain stack.
func Stack(kind types.Kind, amount int) *types.Resource {
	return types.NewResource(kind, amount)
}

// Named returns a renamed stack.
func Named(kind types.Kind, amount int, name string) *types.Resource {
	r := types.NewResource(kind, amount)
	r.DisplayName = name
	return r
}

// Enchanted returns a stack carrying tags.
func Enchanted(kind types.Kind, tags types.Tags) *types.Resource {
	r := types.NewResource(kind, 1)
	r.Tags = tags
	return r
}

// Book returns an enchanted book storing tags.
func Book(tags types.Tags) *types.Resource {
	r := types.NewResource(types.KindEnchantedBook, 1)
	r.StoredTags = tags
	return r
}

// Head returns a player head owned by id.
func Head(id uuid.UUID) *types.Resource {
	r := types.NewResource(types.KindPlayerHead, 1)
	r.Owner = id
	return r
}
