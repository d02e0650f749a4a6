// internal/defs/stats.go
package defs

// Stats is the combat stat block shared by heroes and creeps.
type Stats struct {
	BaseDamage      float64 `yaml:"base_damage"`
	AttackSpeed     float64 `yaml:"attack_speed"`
	BaseAttackPoint float64 `yaml:"base_attack_point"` // windup fraction
	BaseBackswing   float64 `yaml:"base_backswing"`
	AttackRange     float64 `yaml:"attack_range"`
	MoveSpeed       float64 `yaml:"move_speed"`
	Armor           float64 `yaml:"armor"`
	ProjectileSpeed float64 `yaml:"projectile_speed"`
}

// IsRanged reports whether a unit with these stats fires projectiles.
func (s Stats) IsRanged() bool {
	return s.ProjectileSpeed > 0
}

// UnitDefinition holds the static data a unit class is spawned with.
type UnitDefinition struct {
	HP     float64 `yaml:"hp"`
	Radius float64 `yaml:"radius"`
	Gold   int     `yaml:"gold"`
	Stats  Stats   `yaml:"stats"`
}

var HeroDefinition = UnitDefinition{
	HP:     1100,
	Radius: 28,
	Gold:   500,
	Stats: Stats{
		BaseDamage:      55,
		AttackSpeed:     1.5,
		BaseAttackPoint: 0.3,
		BaseBackswing:   0.5,
		AttackRange:     700,
		MoveSpeed:       0,
		Armor:           5,
		ProjectileSpeed: 600,
	},
}

var MeleeCreepDefinition = UnitDefinition{
	HP:     550,
	Radius: 22,
	Stats: Stats{
		BaseDamage:      21,
		AttackSpeed:     1.0,
		BaseAttackPoint: 0.4,
		BaseBackswing:   0.5,
		AttackRange:     30,
		MoveSpeed:       50,
		Armor:           2,
		ProjectileSpeed: 0,
	},
}

var RangedCreepDefinition = UnitDefinition{
	HP:     300,
	Radius: 22,
	Stats: Stats{
		BaseDamage:      24,
		AttackSpeed:     1.0,
		BaseAttackPoint: 0.5,
		BaseBackswing:   0.5,
		AttackRange:     200,
		MoveSpeed:       50,
		Armor:           0,
		ProjectileSpeed: 400,
	},
}
