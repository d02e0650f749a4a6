package component

import (
	"go-lane-skirmish/internal/defs"
	"go-lane-skirmish/internal/types"
)

// Unit — боевое состояние героя или крипа.
type Unit struct {
	Team   types.Team
	Kind   types.UnitKind
	HP     float64 // может уйти в минус, ≤0 означает смерть
	MaxHP  float64
	Radius float64
	Stats  defs.Stats

	State          types.UnitState
	AttackTimer    float64
	CooldownTimer  float64
	HasDealtDamage bool
	TargetID       types.EntityID
	// PendingTargetID — цель героя, выбранная кликом, когда атаковать сразу было нельзя.
	PendingTargetID types.EntityID

	LaneOffset float64
	Gold       int

	Weapon    defs.ItemID
	Armor     defs.ItemID
	Accessory defs.ItemID

	AttackCount       int
	ShieldActive      bool
	ItemCooldown      float64
	RapidFireActive   bool
	RapidFireDuration float64
}

// Alive reports whether the unit still has health.
func (u *Unit) Alive() bool {
	return u.HP > 0
}

// IsHero reports whether the unit is a hero.
func (u *Unit) IsHero() bool {
	return u.Kind == types.KindHero
}

// ItemIn returns the item held in a slot.
func (u *Unit) ItemIn(slot defs.Slot) defs.ItemID {
	switch slot {
	case defs.SlotWeapon:
		return u.Weapon
	case defs.SlotArmor:
		return u.Armor
	default:
		return u.Accessory
	}
}

// HasEffect reports whether any equipped item carries the effect.
func (u *Unit) HasEffect(effect defs.Effect) bool {
	for _, id := range [...]defs.ItemID{u.Weapon, u.Armor, u.Accessory} {
		if e, ok := defs.EffectOf(id); ok && e == effect {
			return true
		}
	}
	return false
}

// Equip puts an item into its slot.
func (u *Unit) Equip(item defs.ItemDefinition) {
	switch item.Slot {
	case defs.SlotWeapon:
		u.Weapon = item.ID
	case defs.SlotArmor:
		u.Armor = item.ID
	default:
		u.Accessory = item.ID
	}
}
