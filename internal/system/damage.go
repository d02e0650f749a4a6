// internal/system/damage.go
package system

import (
	"fmt"
	"math"

	"go-lane-skirmish/internal/component"
	"go-lane-skirmish/internal/config"
	"go-lane-skirmish/internal/defs"
	"go-lane-skirmish/internal/entity"
	"go-lane-skirmish/internal/event"
	"go-lane-skirmish/internal/types"
	"go-lane-skirmish/internal/utils"
	"go-lane-skirmish/pkg/lane"
)

// ArmorMultiplier — множитель урона от брони.
// Положительная броня уменьшает урон, отрицательная усиливает (до 2x).
func ArmorMultiplier(armor float64) float64 {
	if armor >= 0 {
		return 1 - (0.06*armor)/(1+0.06*armor)
	}
	return 2 - math.Pow(0.94, -armor)
}

// CalculateDamage применяет броню к базовому урону. Результат — неотрицательное целое.
func CalculateDamage(baseDamage, armor float64) int {
	dmg := math.Round(baseDamage * ArmorMultiplier(armor))
	if dmg < 0 || math.IsNaN(dmg) {
		return 0
	}
	return int(dmg)
}

// DamageSystem рассчитывает и наносит урон, разбирает добивания и денаи.
type DamageSystem struct {
	ecs             *entity.ECS
	effects         *EffectsSystem
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
}

func NewDamageSystem(ecs *entity.ECS, effects *EffectsSystem, eventDispatcher *event.Dispatcher, rng *utils.PRNGService) *DamageSystem {
	return &DamageSystem{
		ecs:             ecs,
		effects:         effects,
		eventDispatcher: eventDispatcher,
		rng:             rng,
	}
}

// ResolveDamage — итоговый урон атаки: броня цели и, для героя с Critical Strike, бросок крита.
func (s *DamageSystem) ResolveDamage(attackerID types.EntityID, attacker, defender *component.Unit) int {
	dmg := CalculateDamage(attacker.Stats.BaseDamage, defender.Stats.Armor)
	if attacker.IsHero() && attacker.HasEffect(defs.EffectCritChance) && s.rng.Chance(config.CritChance) {
		dmg *= config.CritMultiplier
		if pos, ok := s.ecs.Positions[attackerID]; ok {
			s.effects.AddFloatingText(pos.X, pos.Y-config.CritTextOffsetY, "CRIT!", config.CritColor)
		}
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.CriticalStrike,
			Data: event.CriticalStrikeData{AttackerID: attackerID, Damage: dmg},
		})
	}
	return dmg
}

// ApplyInstant наносит мгновенный удар. Номер атаки берётся из текущего счётчика атакующего.
func (s *DamageSystem) ApplyInstant(attackerID, targetID types.EntityID, damage int) {
	attacker, ok := s.ecs.Units[attackerID]
	if !ok {
		return
	}
	s.applyHit(attackerID, attacker, targetID, damage, attacker.AttackCount)
}

// ApplyFromProjectile наносит удар прилетевшего снаряда. Если атакующий уже убран
// со сцены, снаряд считается промахом.
func (s *DamageSystem) ApplyFromProjectile(attackerID, targetID types.EntityID, damage, attackNumber int) {
	attacker, ok := s.ecs.Units[attackerID]
	if !ok {
		return
	}
	s.applyHit(attackerID, attacker, targetID, damage, attackNumber)
}

func (s *DamageSystem) applyHit(attackerID types.EntityID, attacker *component.Unit, targetID types.EntityID, damage, attackNumber int) {
	target, targetPos, ok := s.ecs.Unit(targetID)
	if !ok {
		return
	}

	// Щит поглощает удар целиком и уходит на перезарядку
	if target.ShieldActive {
		target.ShieldActive = false
		target.ItemCooldown = config.ShieldItemCooldown
		return
	}

	s.damageUnit(attackerID, attacker, targetID, target, float64(damage))

	// Splash Blade: каждая вторая атака бьёт по области вокруг основной цели.
	// Всплеск не проверяет щиты и не критует.
	if attacker.IsHero() && attacker.HasEffect(defs.EffectSplashEverySecond) && attackNumber%config.SplashEveryNth == 0 {
		aoeDamage := float64(damage) * config.SplashAoeDamageMult
		for _, id := range s.ecs.UnitIDs() {
			if id == targetID {
				continue
			}
			u, pos, ok := s.ecs.LiveUnit(id)
			if !ok || u.Team == attacker.Team {
				continue
			}
			if lane.Distance(pos.X, pos.Y, targetPos.X, targetPos.Y) <= config.SplashAoeRadius {
				s.damageUnit(attackerID, attacker, id, u, aoeDamage)
			}
		}
		s.effects.AddBeam(
			targetPos.X-config.SplashAoeRadius, targetPos.Y,
			targetPos.X+config.SplashAoeRadius, targetPos.Y,
			config.SplashColor,
		)
	}
}

// damageUnit снимает здоровье и, если юнит умер именно сейчас, разбирает добивание.
func (s *DamageSystem) damageUnit(attackerID types.EntityID, attacker *component.Unit, targetID types.EntityID, target *component.Unit, amount float64) {
	prevHP := target.HP
	target.HP -= amount
	if target.HP <= 0 && prevHP > 0 {
		s.handleLastHit(attackerID, attacker, targetID, target)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.UnitDied,
			Data: event.UnitDiedData{ID: targetID, KillerID: attackerID},
		})
	}
}

func (s *DamageSystem) handleLastHit(attackerID types.EntityID, attacker *component.Unit, targetID types.EntityID, target *component.Unit) {
	if !attacker.IsHero() || target.Kind != types.KindCreep {
		return
	}
	pos := s.ecs.Positions[targetID]

	if target.Team != attacker.Team {
		gold := goldForCreep(target, s.rng)
		if attacker.HasEffect(defs.EffectGoldBonus) {
			gold = int(math.Floor(float64(gold) * config.MidasGoldMult))
		}
		attacker.Gold += gold

		if attacker.HasEffect(defs.EffectSpeedOnKill) {
			attacker.RapidFireActive = true
			attacker.RapidFireDuration = config.RapidFireDuration
		}
		if pos != nil {
			s.effects.AddFloatingText(pos.X, pos.Y, fmt.Sprintf("+%d", gold), config.GoldColor)
		}
		if attacker.Team == types.TeamA {
			s.ecs.Score.LastHits++
		}
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.LastHit,
			Data: event.LastHitData{HeroID: attackerID, CreepID: targetID, Team: attacker.Team, Gold: gold},
		})
		return
	}

	// Денай: свой крип добит, золото противнику не достанется
	if pos != nil {
		s.effects.AddFloatingText(pos.X, pos.Y, "!", config.DenyColors[attacker.Team])
	}
	if attacker.Team == types.TeamA {
		s.ecs.Score.Denies++
	}
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.Denied,
		Data: event.LastHitData{HeroID: attackerID, CreepID: targetID, Team: attacker.Team},
	})
}

// goldForCreep — базовая награда по классу крипа плюс случайный бонус.
func goldForCreep(creep *component.Unit, rng *utils.PRNGService) int {
	base := config.MeleeCreepGoldBase
	if creep.Stats.AttackRange > config.RangedRangeThreshold {
		base = config.RangedCreepGoldBase
	}
	return base + rng.Intn(config.CreepGoldVariance)
}
