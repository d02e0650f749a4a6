package system

import (
	"go-lane-skirmish/internal/component"
	"go-lane-skirmish/internal/defs"
	"go-lane-skirmish/internal/entity"
	"go-lane-skirmish/internal/event"
	"go-lane-skirmish/internal/types"
)

// SpawnUnit создаёт юнит по определению и сообщает о нём через UnitSpawned.
func SpawnUnit(ecs *entity.ECS, eventDispatcher *event.Dispatcher, def defs.UnitDefinition, team types.Team, kind types.UnitKind, x, y, laneOffset float64) types.EntityID {
	id := ecs.NewEntity()
	unit := &component.Unit{
		Team:       team,
		Kind:       kind,
		HP:         def.HP,
		MaxHP:      def.HP,
		Radius:     def.Radius,
		Stats:      def.Stats,
		LaneOffset: laneOffset,
	}
	if kind == types.KindHero {
		unit.Gold = def.Gold
	}
	ecs.AddUnit(id, unit, x, y)

	eventDispatcher.Dispatch(event.Event{
		Type: event.UnitSpawned,
		Data: event.UnitSpawnedData{
			ID:         id,
			Team:       team,
			Kind:       kind,
			X:          x,
			Y:          y,
			HP:         def.HP,
			Radius:     def.Radius,
			Stats:      def.Stats,
			LaneOffset: laneOffset,
		},
	})
	return id
}
