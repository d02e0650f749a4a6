// internal/system/projectile.go
package system

import (
	"math"

	"go-lane-skirmish/internal/component"
	"go-lane-skirmish/internal/config"
	"go-lane-skirmish/internal/entity"
	"go-lane-skirmish/internal/types"
	"go-lane-skirmish/internal/utils"
	"go-lane-skirmish/pkg/lane"
)

// ProjectileSystem управляет летящими снарядами и нанесением урона по прилёту
type ProjectileSystem struct {
	ecs    *entity.ECS
	damage *DamageSystem
}

func NewProjectileSystem(ecs *entity.ECS, damage *DamageSystem) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:    ecs,
		damage: damage,
	}
}

// Spawn выпускает снаряд из текущей позиции атакующего в цель.
func (s *ProjectileSystem) Spawn(attackerID, targetID types.EntityID, damage int) types.EntityID {
	attacker, from, ok := s.ecs.Unit(attackerID)
	if !ok {
		return 0
	}
	_, to, ok := s.ecs.Unit(targetID)
	if !ok {
		return 0
	}

	dist := lane.Distance(from.X, from.Y, to.X, to.Y)
	id := s.ecs.NewEntity()
	s.ecs.AddProjectile(id, &component.Projectile{
		AttackerID:   attackerID,
		TargetID:     targetID,
		Team:         attacker.Team,
		StartX:       from.X,
		StartY:       from.Y,
		Damage:       damage,
		Speed:        attacker.Stats.ProjectileSpeed,
		ArcHeight:    math.Min(dist*config.ProjectileArcFactor, config.ProjectileArcMax),
		AttackNumber: attacker.AttackCount,
	}, from.X, from.Y)
	return id
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.ProjectileIDs() {
		proj := s.ecs.Projectiles[id]
		proj.LifeTime += deltaTime

		// Цель пропала или умерла, либо снаряд завис: промах
		_, targetPos, ok := s.ecs.LiveUnit(proj.TargetID)
		if !ok || proj.LifeTime > config.ProjectileLifetime {
			s.ecs.RemoveProjectile(id)
			continue
		}

		// Самонаведение: шаг считается от текущей позиции цели
		totalDist := lane.Distance(proj.StartX, proj.StartY, targetPos.X, targetPos.Y)
		proj.Progress = utils.Clamp(proj.Progress+proj.Speed*deltaTime/math.Max(totalDist, config.ProjectileMinDivisor), 0, 1)

		if proj.Progress >= 1 {
			s.damage.ApplyFromProjectile(proj.AttackerID, proj.TargetID, proj.Damage, proj.AttackNumber)
			s.ecs.RemoveProjectile(id)
			continue
		}

		p := lane.ArcPoint(
			lane.Point{X: proj.StartX, Y: proj.StartY},
			lane.Point{X: targetPos.X, Y: targetPos.Y},
			proj.Progress, proj.ArcHeight, lane.ArcSide(proj.Team),
		)
		pos := s.ecs.Positions[id]
		pos.X, pos.Y = p.X, p.Y
	}
}
