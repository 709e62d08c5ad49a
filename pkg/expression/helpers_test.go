package expression_test

import (
	"os"

	"github.com/google/uuid"

	"github.com/arthur-debert/itemexpr/pkg/identity"
	"github.com/arthur-debert/itemexpr/pkg/types"
)

var (
	notchID = uuid.MustParse("069a79f4-44e9-4726-a5be-fca90e38aaf5")
	jebID   = uuid.MustParse("853c80ef-3c37-49fd-aa49-938b674adae6")
)

func testResolver() *identity.StaticResolver {
	r := identity.NewStaticResolver()
	r.Add("Notch", notchID)
	r.Add("jeb_", jebID)
	return r
}

// sampleResources covers every attribute the expression can inspect, with
// a few values per attribute.
func sampleResources() []*types.Resource {
	return []*types.Resource{
		types.NewResource(types.KindStone, 1),
		types.NewResource(types.KindStone, 64),
		types.NewResource(types.KindCoal, 10),
		types.NewResource(types.KindDiamond, 3),
		{Kind: types.KindDiamondSword, Amount: 1, Durability: 12, Tags: types.Tags{"sharpness": 5}},
		{Kind: types.KindDiamondSword, Amount: 1, Tags: types.Tags{"sharpness": 2, "looting": 3}},
		{Kind: types.KindDiamondSword, Amount: 1, DisplayName: "Excalibur", Lore: []string{"Forged in fire", "Soulbound"}},
		{Kind: types.KindDiamondPickaxe, Amount: 1, Unbreakable: true, Tags: types.Tags{"efficiency": 4}},
		{Kind: types.KindIronAxe, Amount: 1, DisplayName: "any", Lore: []string{"Soulbound"}},
		{Kind: types.KindIronAxe, Amount: 1, DisplayName: "Blade of Night"},
		{Kind: types.KindEnchantedBook, Amount: 1, StoredTags: types.Tags{"mending": 1}},
		{Kind: types.KindEnchantedBook, Amount: 1, StoredTags: types.Tags{"sharpness": 4, "unbreaking": 3}},
		{Kind: types.KindEnchantedBook, Amount: 1},
		{Kind: types.KindPlayerHead, Amount: 1, Owner: notchID},
		{Kind: types.KindPlayerHead, Amount: 1, Owner: jebID},
		{Kind: types.KindPlayerHead, Amount: 1},
		{Kind: types.KindFilledMap, Amount: 1, Location: "Spawn"},
		{Kind: types.KindMap, Amount: 1, Location: "Nether Hub"},
		{Kind: types.KindTropicalFishBucket, Amount: 1, BodyColor: types.ColorOrange},
		{Kind: types.KindTropicalFishBucket, Amount: 1, BodyColor: types.ColorBlue},
		{Kind: types.KindBread, Amount: 16, Durability: 0, Lore: []string{}},
	}
}

func writeBytes(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}
