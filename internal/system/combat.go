package system

import (
	"math"
	"sort"

	"go-lane-skirmish/internal/component"
	"go-lane-skirmish/internal/config"
	"go-lane-skirmish/internal/defs"
	"go-lane-skirmish/internal/entity"
	"go-lane-skirmish/internal/types"
	"go-lane-skirmish/pkg/lane"
)

// CombatSystem ведёт боевой автомат каждого юнита: таймеры, ИИ крипов,
// замах → удар → откат.
type CombatSystem struct {
	ecs         *entity.ECS
	damage      *DamageSystem
	projectiles *ProjectileSystem
	effects     *EffectsSystem
}

func NewCombatSystem(ecs *entity.ECS, damage *DamageSystem, projectiles *ProjectileSystem, effects *EffectsSystem) *CombatSystem {
	return &CombatSystem{
		ecs:         ecs,
		damage:      damage,
		projectiles: projectiles,
		effects:     effects,
	}
}

// Update продвигает всех живых юнитов на deltaTime секунд.
func (s *CombatSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.UnitIDs() {
		u, ok := s.ecs.Units[id]
		if !ok || !u.Alive() {
			continue
		}
		s.updateTimers(u, deltaTime)
		if u.IsHero() {
			s.updateHero(id, u, deltaTime)
		} else {
			s.updateCreep(id, u, deltaTime)
		}
	}
}

// updateTimers тикает перезарядки и баффы.
// CooldownTimer не зажимается в ноль: важен только знак.
func (s *CombatSystem) updateTimers(u *component.Unit, deltaTime float64) {
	if u.CooldownTimer > 0 {
		u.CooldownTimer -= deltaTime
	}

	if u.ItemCooldown > 0 {
		u.ItemCooldown -= deltaTime
		if u.ItemCooldown <= 0 {
			u.ItemCooldown = 0
			// Divine Shield включается сам, когда перезарядка закончилась
			if u.HasEffect(defs.EffectBlockDamage) {
				u.ShieldActive = true
			}
		}
	}

	if u.RapidFireDuration > 0 {
		u.RapidFireDuration -= deltaTime
		if u.RapidFireDuration <= 0 {
			u.RapidFireDuration = 0
			u.RapidFireActive = false
		}
	}
}

// updateHero: герой сам не ходит и не ищет цели. Он только доигрывает атаку
// и подхватывает отложенную цель, когда это становится возможным.
func (s *CombatSystem) updateHero(id types.EntityID, u *component.Unit, deltaTime float64) {
	if u.State == types.StateAttacking {
		s.handleAttack(id, u, deltaTime)
	}
	if u.PendingTargetID == 0 || u.State != types.StateIdle {
		return
	}

	target, targetPos, ok := s.ecs.LiveUnit(u.PendingTargetID)
	if !ok {
		u.PendingTargetID = 0
		return
	}
	pos := s.ecs.Positions[id]
	if u.CooldownTimer <= 0 && lane.EdgeDistance(pos.X, pos.Y, u.Radius, targetPos.X, targetPos.Y, target.Radius) <= u.Stats.AttackRange {
		pending := u.PendingTargetID
		u.PendingTargetID = 0
		s.StartAttack(id, pending)
	}
}

func (s *CombatSystem) updateCreep(id types.EntityID, u *component.Unit, deltaTime float64) {
	if u.State == types.StateAttacking {
		s.handleAttack(id, u, deltaTime)
	}

	target, targetPos, ok := s.ecs.Unit(u.TargetID)
	if ok && !target.Alive() {
		u.TargetID = 0
		ok = false
		s.resetAttack(u)
	} else if !ok {
		u.TargetID = 0
	}

	if ok {
		s.tickCreepWithTarget(id, u, target, targetPos)
	} else {
		s.tickCreepWithoutTarget(id, u)
	}
	s.applySeparation(id, u)
}

// tickCreepWithTarget: догнать цель или бить, если она в радиусе атаки.
func (s *CombatSystem) tickCreepWithTarget(id types.EntityID, u *component.Unit, target *component.Unit, targetPos *component.Position) {
	// Бездельничающий крип, идущий за героем, сначала ищет цель получше
	if target.IsHero() && u.State == types.StateIdle {
		heroID := u.TargetID
		s.AcquireTarget(id)
		if reassigned, pos, ok := s.ecs.LiveUnit(u.TargetID); ok {
			target, targetPos = reassigned, pos
		} else {
			u.TargetID = heroID
		}
	}

	pos := s.ecs.Positions[id]
	dist := lane.Distance(pos.X, pos.Y, targetPos.X, targetPos.Y)
	edgeDist := dist - u.Radius - target.Radius

	if edgeDist <= u.Stats.AttackRange {
		s.setVelocity(id, 0, 0)
		if u.State == types.StateIdle && u.CooldownTimer <= 0 {
			s.StartAttack(id, u.TargetID)
		}
		return
	}
	speed := u.Stats.MoveSpeed
	s.setVelocity(id, (targetPos.X-pos.X)/dist*speed, (targetPos.Y-pos.Y)/dist*speed)
}

// tickCreepWithoutTarget: поискать цель, иначе шагать по линии.
func (s *CombatSystem) tickCreepWithoutTarget(id types.EntityID, u *component.Unit) {
	if u.State == types.StateAttacking {
		s.resetAttack(u)
	}
	if u.State == types.StateIdle {
		s.AcquireTarget(id)
	}

	// Новая цель обрабатывается со следующего тика
	if u.TargetID != 0 {
		s.setVelocity(id, 0, 0)
		return
	}
	s.moveCreepToBase(id, u)
}

// moveCreepToBase ведёт крипа к цели линии; у базы переключает его на вражеского героя.
func (s *CombatSystem) moveCreepToBase(id types.EntityID, u *component.Unit) {
	pos := s.ecs.Positions[id]
	goal := lane.Goal(u.Team, u.LaneOffset)

	if lane.Distance(pos.X, pos.Y, goal.X, goal.Y) <= config.GoalReachDist {
		if heroPos, ok := s.enemyHeroPos(u.Team); ok {
			goal = lane.Point{X: heroPos.X, Y: heroPos.Y}
		}
	}

	dist := lane.Distance(pos.X, pos.Y, goal.X, goal.Y)
	if dist <= config.MovementStopDist {
		s.setVelocity(id, 0, 0)
		return
	}
	speed := u.Stats.MoveSpeed
	s.setVelocity(id, (goal.X-pos.X)/dist*speed, (goal.Y-pos.Y)/dist*speed)
}

func (s *CombatSystem) enemyHeroPos(team types.Team) (*component.Position, bool) {
	for _, id := range s.ecs.UnitIDs() {
		u, pos, ok := s.ecs.LiveUnit(id)
		if ok && u.IsHero() && u.Team != team {
			return pos, true
		}
	}
	return nil, false
}

type targetCandidate struct {
	id    types.EntityID
	dist  float64
	creep bool
}

// AcquireTarget выбирает крипу ближайшего врага, на котором ещё нет
// MaxAttackersPerTarget атакующих. Крипы предпочтительнее героев.
// Если подходящих нет, цель сбрасывается.
func (s *CombatSystem) AcquireTarget(id types.EntityID) {
	u, pos, ok := s.ecs.Unit(id)
	if !ok || u.IsHero() {
		return
	}

	aggro := u.Stats.AttackRange + config.AggroRangeBonus + u.Radius
	var candidates []targetCandidate
	for _, otherID := range s.ecs.UnitIDs() {
		other, otherPos, ok := s.ecs.LiveUnit(otherID)
		if !ok || other.Team == u.Team || !lane.InBounds(otherPos.X, otherPos.Y) {
			continue
		}
		dist := lane.Distance(pos.X, pos.Y, otherPos.X, otherPos.Y)
		if dist <= aggro {
			candidates = append(candidates, targetCandidate{id: otherID, dist: dist, creep: !other.IsHero()})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].creep != candidates[j].creep {
			return candidates[i].creep
		}
		return candidates[i].dist < candidates[j].dist
	})

	u.TargetID = 0
	for _, c := range candidates {
		if s.countAttackers(c.id) < config.MaxAttackersPerTarget {
			u.TargetID = c.id
			return
		}
	}
}

// countAttackers — сколько юнитов сейчас атакуют targetID.
func (s *CombatSystem) countAttackers(targetID types.EntityID) int {
	count := 0
	for _, u := range s.ecs.Units {
		if u.TargetID == targetID && u.State == types.StateAttacking {
			count++
		}
	}
	return count
}

// StartAttack переводит юнит в атаку по targetID.
func (s *CombatSystem) StartAttack(id, targetID types.EntityID) {
	u, ok := s.ecs.Units[id]
	if !ok {
		return
	}
	u.State = types.StateAttacking
	u.TargetID = targetID
	u.HasDealtDamage = false
	u.AttackTimer = 0
	s.setVelocity(id, 0, 0)

	if u.IsHero() {
		u.AttackCount++
		// Лазер: таймер заряжен заранее, удар почти мгновенный
		if isLaserAttack(u) {
			u.AttackTimer = u.Stats.BaseAttackPoint
		}
	}
}

func isLaserAttack(u *component.Unit) bool {
	return u.IsHero() && u.HasEffect(defs.EffectInstantFourthAttack) && u.AttackCount%config.LaserEveryNth == 0
}

// EffectiveAttackSpeed учитывает бафф Rapid Fire.
func EffectiveAttackSpeed(u *component.Unit) float64 {
	if u.RapidFireActive {
		return u.Stats.AttackSpeed * config.RapidFireSpeedMult
	}
	return u.Stats.AttackSpeed
}

// handleAttack продвигает текущую атаку: удар в точке замаха, конец после отката.
func (s *CombatSystem) handleAttack(id types.EntityID, u *component.Unit, deltaTime float64) {
	u.AttackTimer += deltaTime

	speed := EffectiveAttackSpeed(u)
	cooldown := 1 / speed
	attackPoint := u.Stats.BaseAttackPoint / speed
	backswing := u.Stats.BaseBackswing / speed

	target, targetPos, ok := s.ecs.LiveUnit(u.TargetID)
	if !ok {
		u.TargetID = 0
		s.resetAttack(u)
		return
	}

	pos := s.ecs.Positions[id]
	edgeDist := lane.EdgeDistance(pos.X, pos.Y, u.Radius, targetPos.X, targetPos.Y, target.Radius)

	// До удара цель может уйти из радиуса, и атака отменяется
	if !u.HasDealtDamage && edgeDist > u.Stats.AttackRange {
		u.TargetID = 0
		s.resetAttack(u)
		return
	}

	if !u.HasDealtDamage && u.AttackTimer >= attackPoint {
		damage := s.damage.ResolveDamage(id, u, target)
		switch {
		case isLaserAttack(u):
			s.damage.ApplyInstant(id, u.TargetID, damage)
			s.effects.AddBeam(pos.X, pos.Y, targetPos.X, targetPos.Y, config.LaserColors[u.Team])
		case u.Stats.IsRanged():
			s.projectiles.Spawn(id, u.TargetID, damage)
		default:
			s.damage.ApplyInstant(id, u.TargetID, damage)
		}
		u.HasDealtDamage = true
		u.CooldownTimer = cooldown
	}

	if u.AttackTimer >= attackPoint+backswing {
		s.resetAttack(u)
	}
}

// resetAttack возвращает юнит в состояние ожидания.
func (s *CombatSystem) resetAttack(u *component.Unit) {
	u.State = types.StateIdle
	u.AttackTimer = 0
	u.HasDealtDamage = false
}

// applySeparation расталкивает перекрывающихся юнитов одной команды.
// Толчок добавляется к уже выбранной скорости.
func (s *CombatSystem) applySeparation(id types.EntityID, u *component.Unit) {
	pos := s.ecs.Positions[id]
	var sx, sy float64
	for _, otherID := range s.ecs.UnitIDs() {
		if otherID == id {
			continue
		}
		other, otherPos, ok := s.ecs.LiveUnit(otherID)
		if !ok || other.Team != u.Team {
			continue
		}
		dx := pos.X - otherPos.X
		dy := pos.Y - otherPos.Y
		dist := math.Hypot(dx, dy)
		minDist := u.Radius + other.Radius + config.SeparationPadding
		if dist < minDist && dist > 0 {
			overlap := (minDist - dist) / minDist
			sx += dx / dist * overlap
			sy += dy / dist * overlap
		}
	}
	if sx != 0 || sy != 0 {
		if vel, ok := s.ecs.Velocities[id]; ok {
			vel.X += sx * config.SeparationStrength
			vel.Y += sy * config.SeparationStrength
		}
	}
}

func (s *CombatSystem) setVelocity(id types.EntityID, vx, vy float64) {
	if vel, ok := s.ecs.Velocities[id]; ok {
		vel.X = vx
		vel.Y = vy
	}
}
