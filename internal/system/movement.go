// internal/system/movement.go
package system

import (
	"go-lane-skirmish/internal/component"
	"go-lane-skirmish/internal/entity"
)

// MovementSystem интегрирует скорости юнитов и запоминает позицию прошлого тика
// (по ней BarrierSystem ловит пересечения).
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.UnitIDs() {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		prev, ok := s.ecs.PrevPositions[id]
		if !ok {
			prev = &component.Position{}
			s.ecs.PrevPositions[id] = prev
		}
		*prev = *pos

		u := s.ecs.Units[id]
		vel, ok := s.ecs.Velocities[id]
		if !ok || !u.Alive() {
			continue
		}
		pos.X += vel.X * deltaTime
		pos.Y += vel.Y * deltaTime
	}
}
