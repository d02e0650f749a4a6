// internal/defs/items.go
package defs

// ItemID identifies one entry of the fixed shop catalogue.
// The zero value means "empty slot".
type ItemID int

const (
	ItemNone ItemID = iota
	ItemLaserBeam
	ItemSplashBlade
	ItemDivineShield
	ItemRapidFire
	ItemCriticalStrike
	ItemMidasHand
)

// Slot is the equipment slot an item occupies.
type Slot int

const (
	SlotWeapon Slot = iota
	SlotArmor
	SlotAccessory
)

func (s Slot) String() string {
	switch s {
	case SlotWeapon:
		return "weapon"
	case SlotArmor:
		return "armor"
	default:
		return "accessory"
	}
}

// Effect is the single behaviour an item switches on.
type Effect int

const (
	EffectInstantFourthAttack Effect = iota
	EffectSplashEverySecond
	EffectBlockDamage
	EffectSpeedOnKill
	EffectCritChance
	EffectGoldBonus
)

// ItemDefinition holds the static data for a shop item.
type ItemDefinition struct {
	ID          ItemID
	Key         string
	Name        string
	Description string
	Cost        int
	Slot        Slot
	Effect      Effect
}

// ItemLibrary is the closed item set, in shop order.
var ItemLibrary = []ItemDefinition{
	{
		ID:          ItemLaserBeam,
		Key:         "laser-beam",
		Name:        "Laser Beam",
		Description: "Every 4th attack is instant with a laser animation",
		Cost:        500,
		Slot:        SlotWeapon,
		Effect:      EffectInstantFourthAttack,
	},
	{
		ID:          ItemSplashBlade,
		Key:         "splash-blade",
		Name:        "Splash Blade",
		Description: "Every other attack deals AOE damage around the target",
		Cost:        600,
		Slot:        SlotWeapon,
		Effect:      EffectSplashEverySecond,
	},
	{
		ID:          ItemDivineShield,
		Key:         "divine-shield",
		Name:        "Divine Shield",
		Description: "Blocks one instance of damage. 35s cooldown.",
		Cost:        400,
		Slot:        SlotArmor,
		Effect:      EffectBlockDamage,
	},
	{
		ID:          ItemRapidFire,
		Key:         "rapid-fire",
		Name:        "Rapid Fire",
		Description: "Increases attack speed by 50% for 5s after getting a kill",
		Cost:        700,
		Slot:        SlotWeapon,
		Effect:      EffectSpeedOnKill,
	},
	{
		ID:          ItemCriticalStrike,
		Key:         "critical-strike",
		Name:        "Critical Strike",
		Description: "25% chance to deal double damage",
		Cost:        800,
		Slot:        SlotWeapon,
		Effect:      EffectCritChance,
	},
	{
		ID:          ItemMidasHand,
		Key:         "midas-hand",
		Name:        "Midas Hand",
		Description: "Gain 30% more gold from last hits",
		Cost:        900,
		Slot:        SlotAccessory,
		Effect:      EffectGoldBonus,
	},
}

// Item looks up an item by id.
func Item(id ItemID) (ItemDefinition, bool) {
	for _, def := range ItemLibrary {
		if def.ID == id {
			return def, true
		}
	}
	return ItemDefinition{}, false
}

// EffectOf returns the effect of an item. ItemNone has none.
func EffectOf(id ItemID) (Effect, bool) {
	def, ok := Item(id)
	if !ok {
		return 0, false
	}
	return def.Effect, true
}

// ItemByKey looks up an item by its catalogue key ("laser-beam", ...).
func ItemByKey(key string) (ItemDefinition, bool) {
	for _, def := range ItemLibrary {
		if def.Key == key {
			return def, true
		}
	}
	return ItemDefinition{}, false
}
