package system

import (
	"go-lane-skirmish/internal/component"
	"go-lane-skirmish/internal/defs"
	"go-lane-skirmish/internal/entity"
	"go-lane-skirmish/internal/event"
	"go-lane-skirmish/internal/types"
	"go-lane-skirmish/internal/utils"
)

type testWorld struct {
	ecs         *entity.ECS
	events      *event.Dispatcher
	effects     *EffectsSystem
	damage      *DamageSystem
	projectiles *ProjectileSystem
	combat      *CombatSystem
	barriers    *BarrierSystem
	movement    *MovementSystem
}

func newTestWorld() *testWorld {
	ecs := entity.NewECS()
	events := event.NewDispatcher()
	effects := NewEffectsSystem(ecs)
	damage := NewDamageSystem(ecs, effects, events, utils.NewPRNGService(42))
	projectiles := NewProjectileSystem(ecs, damage)
	return &testWorld{
		ecs:         ecs,
		events:      events,
		effects:     effects,
		damage:      damage,
		projectiles: projectiles,
		combat:      NewCombatSystem(ecs, damage, projectiles, effects),
		barriers:    NewBarrierSystem(ecs, effects, events),
		movement:    NewMovementSystem(ecs),
	}
}

func (w *testWorld) hero(team types.Team, x, y float64) (types.EntityID, *component.Unit) {
	id := SpawnUnit(w.ecs, w.events, defs.HeroDefinition, team, types.KindHero, x, y, 0)
	return id, w.ecs.Units[id]
}

func (w *testWorld) melee(team types.Team, x, y float64) (types.EntityID, *component.Unit) {
	id := SpawnUnit(w.ecs, w.events, defs.MeleeCreepDefinition, team, types.KindCreep, x, y, 0)
	return id, w.ecs.Units[id]
}

func (w *testWorld) ranged(team types.Team, x, y float64) (types.EntityID, *component.Unit) {
	id := SpawnUnit(w.ecs, w.events, defs.RangedCreepDefinition, team, types.KindCreep, x, y, 0)
	return id, w.ecs.Units[id]
}

type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) { l.events = append(l.events, e) }

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}
