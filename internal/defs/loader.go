// internal/defs/loader.go
package defs

import (
	"errors"
	"fmt"
	"log"
	"os"

	"go-lane-skirmish/internal/config"

	"gopkg.in/yaml.v3"
)

// WaveTiming controls how often the wave scheduler spawns a formation.
type WaveTiming struct {
	Interval     float64 `yaml:"interval"`
	ShopDuration float64 `yaml:"shop_duration"`
}

// Period is the full time between two waves.
func (w WaveTiming) Period() float64 {
	return w.Interval + w.ShopDuration
}

// Balance is the tunable data one simulation run is built from.
type Balance struct {
	Hero        UnitDefinition `yaml:"hero"`
	MeleeCreep  UnitDefinition `yaml:"melee_creep"`
	RangedCreep UnitDefinition `yaml:"ranged_creep"`
	Waves       WaveTiming     `yaml:"waves"`
	Formation   Formation      `yaml:"formation"`
	ItemCosts   map[string]int `yaml:"item_costs"`
}

// DefaultBalance returns the stock tuning.
func DefaultBalance() *Balance {
	return &Balance{
		Hero:        HeroDefinition,
		MeleeCreep:  MeleeCreepDefinition,
		RangedCreep: RangedCreepDefinition,
		Waves: WaveTiming{
			Interval:     config.WaveInterval,
			ShopDuration: config.ShopDuration,
		},
		Formation: DefaultFormation,
		ItemCosts: map[string]int{},
	}
}

// ItemCost returns the price of an item, honouring overrides.
func (b *Balance) ItemCost(def ItemDefinition) int {
	if cost, ok := b.ItemCosts[def.Key]; ok {
		return cost
	}
	return def.Cost
}

// Validate rejects tunings the simulation cannot run with.
func (b *Balance) Validate() error {
	var errs []error
	for name, def := range map[string]UnitDefinition{
		"hero":         b.Hero,
		"melee_creep":  b.MeleeCreep,
		"ranged_creep": b.RangedCreep,
	} {
		if def.HP <= 0 {
			errs = append(errs, fmt.Errorf("%s: hp must be positive, got %v", name, def.HP))
		}
		if def.Radius <= 0 {
			errs = append(errs, fmt.Errorf("%s: radius must be positive, got %v", name, def.Radius))
		}
		if def.Stats.AttackSpeed <= 0 {
			errs = append(errs, fmt.Errorf("%s: attack_speed must be positive, got %v", name, def.Stats.AttackSpeed))
		}
	}
	if b.Waves.Period() <= 0 {
		errs = append(errs, fmt.Errorf("waves: interval+shop_duration must be positive"))
	}
	if b.Formation.Melee < 0 || b.Formation.Ranged < 0 || b.Formation.Size() == 0 {
		errs = append(errs, fmt.Errorf("formation: needs at least one creep, got %d melee and %d ranged", b.Formation.Melee, b.Formation.Ranged))
	}
	for key, cost := range b.ItemCosts {
		if _, ok := ItemByKey(key); !ok {
			errs = append(errs, fmt.Errorf("item_costs: unknown item %q", key))
		}
		if cost < 0 {
			errs = append(errs, fmt.Errorf("item_costs: %s cost must not be negative", key))
		}
	}
	return errors.Join(errs...)
}

// ParseBalance applies a YAML document on top of the default tuning.
// Fields missing from the document keep their defaults.
func ParseBalance(data []byte) (*Balance, error) {
	b := DefaultBalance()
	if err := yaml.Unmarshal(data, b); err != nil {
		return nil, fmt.Errorf("failed to unmarshal balance: %w", err)
	}
	if b.ItemCosts == nil {
		b.ItemCosts = map[string]int{}
	}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("invalid balance: %w", err)
	}
	return b, nil
}

// LoadBalance reads a balance file. An empty path yields the defaults.
func LoadBalance(path string) (*Balance, error) {
	if path == "" {
		return DefaultBalance(), nil
	}
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read balance file: %w", err)
	}
	b, err := ParseBalance(file)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded balance from %s (%d item cost overrides)", path, len(b.ItemCosts))
	return b, nil
}
