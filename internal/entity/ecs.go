// internal/entity/ecs.go
package entity

import (
	"go-lane-skirmish/internal/component"
	"go-lane-skirmish/internal/types"
)

// ECS владеет всеми юнитами, снарядами и барьерами симуляции.
// Порядок обхода юнитов и снарядов — порядок создания, чтобы тик был детерминированным.
type ECS struct {
	GameTime      float64
	Tick          uint64
	NextID        types.EntityID
	Positions     map[types.EntityID]*component.Position
	PrevPositions map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	Units         map[types.EntityID]*component.Unit
	Projectiles   map[types.EntityID]*component.Projectile
	Barriers      []*component.Barrier
	Texts         []*component.FloatingText
	Beams         []*component.Beam
	Wave          *component.WaveClock
	Score         *component.Score

	unitOrder       []types.EntityID
	projectileOrder []types.EntityID
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		PrevPositions: make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Units:         make(map[types.EntityID]*component.Unit),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		Wave:          &component.WaveClock{},
		Score:         &component.Score{},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// AddUnit регистрирует юнит в позиции (x, y) с нулевой скоростью.
func (ecs *ECS) AddUnit(id types.EntityID, unit *component.Unit, x, y float64) {
	ecs.Units[id] = unit
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Velocities[id] = &component.Velocity{}
	ecs.unitOrder = append(ecs.unitOrder, id)
}

// RemoveUnit удаляет юнит из всех таблиц.
func (ecs *ECS) RemoveUnit(id types.EntityID) {
	if _, ok := ecs.Units[id]; !ok {
		return
	}
	delete(ecs.Units, id)
	delete(ecs.Positions, id)
	delete(ecs.PrevPositions, id)
	delete(ecs.Velocities, id)
	ecs.unitOrder = removeID(ecs.unitOrder, id)
}

// UnitIDs returns a snapshot of unit ids in creation order.
// Callers may add or remove units while iterating over it.
func (ecs *ECS) UnitIDs() []types.EntityID {
	return append([]types.EntityID(nil), ecs.unitOrder...)
}

// Unit resolves an id to a unit and its position. A reaped or unknown id is "not found".
func (ecs *ECS) Unit(id types.EntityID) (*component.Unit, *component.Position, bool) {
	if id == 0 {
		return nil, nil, false
	}
	u, ok := ecs.Units[id]
	if !ok {
		return nil, nil, false
	}
	pos, ok := ecs.Positions[id]
	if !ok {
		return nil, nil, false
	}
	return u, pos, true
}

// LiveUnit is Unit restricted to units with health left.
func (ecs *ECS) LiveUnit(id types.EntityID) (*component.Unit, *component.Position, bool) {
	u, pos, ok := ecs.Unit(id)
	if !ok || !u.Alive() {
		return nil, nil, false
	}
	return u, pos, true
}

// AddProjectile регистрирует снаряд в позиции (x, y).
func (ecs *ECS) AddProjectile(id types.EntityID, proj *component.Projectile, x, y float64) {
	ecs.Projectiles[id] = proj
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.projectileOrder = append(ecs.projectileOrder, id)
}

// RemoveProjectile удаляет снаряд.
func (ecs *ECS) RemoveProjectile(id types.EntityID) {
	if _, ok := ecs.Projectiles[id]; !ok {
		return
	}
	delete(ecs.Projectiles, id)
	delete(ecs.Positions, id)
	ecs.projectileOrder = removeID(ecs.projectileOrder, id)
}

// ProjectileIDs returns a snapshot of projectile ids in creation order.
func (ecs *ECS) ProjectileIDs() []types.EntityID {
	return append([]types.EntityID(nil), ecs.projectileOrder...)
}

func removeID(ids []types.EntityID, id types.EntityID) []types.EntityID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
