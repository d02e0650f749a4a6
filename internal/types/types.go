// internal/types/types.go
package types

// EntityID — уникальный идентификатор юнита или снаряда.
// Ноль означает «нет сущности».
type EntityID uint64

// Team — одна из двух сторон линии.
type Team int

const (
	TeamA Team = iota // игрок
	TeamB
)

func (t Team) String() string {
	if t == TeamA {
		return "A"
	}
	return "B"
}

// Enemy возвращает противоположную команду.
func (t Team) Enemy() Team {
	if t == TeamA {
		return TeamB
	}
	return TeamA
}

// UnitKind различает героев и крипов.
type UnitKind int

const (
	KindHero UnitKind = iota
	KindCreep
)

func (k UnitKind) String() string {
	if k == KindHero {
		return "hero"
	}
	return "creep"
}

// UnitState — состояние боевого автомата юнита.
type UnitState int

const (
	StateIdle UnitState = iota
	StateAttacking
)

func (s UnitState) String() string {
	if s == StateAttacking {
		return "attacking"
	}
	return "idle"
}
