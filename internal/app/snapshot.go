package app

import (
	"image/color"

	"go-lane-skirmish/internal/config"
	"go-lane-skirmish/internal/defs"
	"go-lane-skirmish/internal/event"
	"go-lane-skirmish/internal/types"
)

// UnitView — то, что внешний слой знает о юните.
type UnitView struct {
	ID       types.EntityID `json:"id" msgpack:"id"`
	Team     string         `json:"team" msgpack:"team"`
	Kind     string         `json:"kind" msgpack:"kind"`
	Ranged   bool           `json:"ranged" msgpack:"ranged"`
	X        float64        `json:"x" msgpack:"x"`
	Y        float64        `json:"y" msgpack:"y"`
	HP       float64        `json:"hp" msgpack:"hp"`
	MaxHP    float64        `json:"max_hp" msgpack:"max_hp"`
	Radius   float64        `json:"radius" msgpack:"radius"`
	State    string         `json:"state" msgpack:"state"`
	TargetID types.EntityID `json:"target_id,omitempty" msgpack:"target_id,omitempty"`
	Shielded bool           `json:"shielded,omitempty" msgpack:"shielded,omitempty"`
}

// HealthRatio — доля оставшегося здоровья в [0,1].
func (u UnitView) HealthRatio() float64 {
	if u.MaxHP <= 0 || u.HP <= 0 {
		return 0
	}
	return u.HP / u.MaxHP
}

type ProjectileView struct {
	ID   types.EntityID `json:"id" msgpack:"id"`
	Team string         `json:"team" msgpack:"team"`
	X    float64        `json:"x" msgpack:"x"`
	Y    float64        `json:"y" msgpack:"y"`
}

type BarrierView struct {
	Team          string  `json:"team" msgpack:"team"`
	X1            float64 `json:"x1" msgpack:"x1"`
	Y1            float64 `json:"y1" msgpack:"y1"`
	X2            float64 `json:"x2" msgpack:"x2"`
	Y2            float64 `json:"y2" msgpack:"y2"`
	HitsRemaining int     `json:"hits_remaining" msgpack:"hits_remaining"`
}

// Opacity пропорциональна оставшимся зарядам.
func (b BarrierView) Opacity() float64 {
	return float64(b.HitsRemaining) / config.BarrierCharges
}

type TextView struct {
	X     float64    `json:"x" msgpack:"x"`
	Y     float64    `json:"y" msgpack:"y"`
	Text  string     `json:"text" msgpack:"text"`
	Color color.RGBA `json:"color" msgpack:"color"`
	Alpha float64    `json:"alpha" msgpack:"alpha"`
}

type BeamView struct {
	FromX float64    `json:"from_x" msgpack:"from_x"`
	FromY float64    `json:"from_y" msgpack:"from_y"`
	ToX   float64    `json:"to_x" msgpack:"to_x"`
	ToY   float64    `json:"to_y" msgpack:"to_y"`
	Color color.RGBA `json:"color" msgpack:"color"`
	Alpha float64    `json:"alpha" msgpack:"alpha"`
}

// HeroView — состояние героя игрока для HUD.
type HeroView struct {
	ID           types.EntityID `json:"id" msgpack:"id"`
	Gold         int            `json:"gold" msgpack:"gold"`
	Weapon       string         `json:"weapon,omitempty" msgpack:"weapon,omitempty"`
	Armor        string         `json:"armor,omitempty" msgpack:"armor,omitempty"`
	Accessory    string         `json:"accessory,omitempty" msgpack:"accessory,omitempty"`
	ItemCooldown float64        `json:"item_cooldown" msgpack:"item_cooldown"`
	ShieldReady  bool           `json:"shield_ready" msgpack:"shield_ready"`
	RapidFire    bool           `json:"rapid_fire,omitempty" msgpack:"rapid_fire,omitempty"`
	AttackCount  int            `json:"attack_count" msgpack:"attack_count"`
}

// Snapshot — телеметрия одного тика, только для чтения.
type Snapshot struct {
	Tick        uint64           `json:"tick" msgpack:"tick"`
	Time        float64          `json:"time" msgpack:"time"`
	Wave        int              `json:"wave" msgpack:"wave"`
	NextWaveIn  float64          `json:"next_wave_in" msgpack:"next_wave_in"`
	LastHits    int              `json:"last_hits" msgpack:"last_hits"`
	Denies      int              `json:"denies" msgpack:"denies"`
	ShopOpen    bool             `json:"shop_open" msgpack:"shop_open"`
	Targeting   bool             `json:"targeting" msgpack:"targeting"`
	Hero        HeroView         `json:"hero" msgpack:"hero"`
	Units       []UnitView       `json:"units" msgpack:"units"`
	Projectiles []ProjectileView `json:"projectiles" msgpack:"projectiles"`
	Barriers    []BarrierView    `json:"barriers" msgpack:"barriers"`
	Texts       []TextView       `json:"texts" msgpack:"texts"`
	Beams       []BeamView       `json:"beams" msgpack:"beams"`
	Events      []string         `json:"events,omitempty" msgpack:"events,omitempty"`
}

// Unit finds a unit in the snapshot by id.
func (s *Snapshot) Unit(id types.EntityID) (UnitView, bool) {
	for _, u := range s.Units {
		if u.ID == id {
			return u, true
		}
	}
	return UnitView{}, false
}

func itemName(id defs.ItemID) string {
	if def, ok := defs.Item(id); ok {
		return def.Name
	}
	return ""
}

// Snapshot копирует наблюдаемое состояние мира.
func (g *Game) Snapshot() *Snapshot {
	ecs := g.ECS
	s := &Snapshot{
		Tick:       ecs.Tick,
		Time:       ecs.GameTime,
		Wave:       ecs.Wave.Number,
		NextWaveIn: g.WaveSystem.TimeToNextWave(),
		LastHits:   ecs.Score.LastHits,
		Denies:     ecs.Score.Denies,
		ShopOpen:   g.shopOpen,
		Targeting:  g.targeting,
	}

	if hero, ok := ecs.Units[g.HeroA]; ok {
		s.Hero = HeroView{
			ID:           g.HeroA,
			Gold:         hero.Gold,
			Weapon:       itemName(hero.Weapon),
			Armor:        itemName(hero.Armor),
			Accessory:    itemName(hero.Accessory),
			ItemCooldown: hero.ItemCooldown,
			ShieldReady:  g.ShieldReady(),
			RapidFire:    hero.RapidFireActive,
			AttackCount:  hero.AttackCount,
		}
	}

	s.Units = make([]UnitView, 0, len(ecs.Units))
	for _, id := range ecs.UnitIDs() {
		u, pos, ok := ecs.Unit(id)
		if !ok {
			continue
		}
		s.Units = append(s.Units, UnitView{
			ID:       id,
			Team:     u.Team.String(),
			Kind:     u.Kind.String(),
			Ranged:   u.Stats.IsRanged(),
			X:        pos.X,
			Y:        pos.Y,
			HP:       u.HP,
			MaxHP:    u.MaxHP,
			Radius:   u.Radius,
			State:    u.State.String(),
			TargetID: u.TargetID,
			Shielded: u.ShieldActive,
		})
	}

	s.Projectiles = make([]ProjectileView, 0, len(ecs.Projectiles))
	for _, id := range ecs.ProjectileIDs() {
		p := ecs.Projectiles[id]
		pos := ecs.Positions[id]
		s.Projectiles = append(s.Projectiles, ProjectileView{ID: id, Team: p.Team.String(), X: pos.X, Y: pos.Y})
	}

	for _, b := range ecs.Barriers {
		s.Barriers = append(s.Barriers, BarrierView{
			Team:          b.Team.String(),
			X1:            b.X1,
			Y1:            b.Y1,
			X2:            b.X2,
			Y2:            b.Y2,
			HitsRemaining: b.HitsRemaining,
		})
	}
	for _, ft := range ecs.Texts {
		s.Texts = append(s.Texts, TextView{X: ft.X, Y: ft.Y, Text: ft.Text, Color: ft.Color, Alpha: ft.Duration / ft.MaxDuration})
	}
	for _, b := range ecs.Beams {
		s.Beams = append(s.Beams, BeamView{
			FromX: b.FromX,
			FromY: b.FromY,
			ToX:   b.ToX,
			ToY:   b.ToY,
			Color: b.Color,
			Alpha: b.Duration / b.MaxDuration,
		})
	}
	for _, t := range g.recent {
		s.Events = append(s.Events, string(t))
	}
	return s
}

// HasEvent reports whether an event of the given type fired during the last tick.
func (s *Snapshot) HasEvent(t event.EventType) bool {
	for _, e := range s.Events {
		if e == string(t) {
			return true
		}
	}
	return false
}
