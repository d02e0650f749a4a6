package system

import (
	"math"

	"go-lane-skirmish/internal/component"
	"go-lane-skirmish/internal/config"
	"go-lane-skirmish/internal/entity"
	"go-lane-skirmish/internal/event"
	"go-lane-skirmish/internal/types"
	"go-lane-skirmish/pkg/lane"
)

// BarrierSystem держит по барьеру на команду и убивает вражеских крипов,
// пересёкших барьер за тик.
type BarrierSystem struct {
	ecs             *entity.ECS
	effects         *EffectsSystem
	eventDispatcher *event.Dispatcher
}

func NewBarrierSystem(ecs *entity.ECS, effects *EffectsSystem, eventDispatcher *event.Dispatcher) *BarrierSystem {
	return &BarrierSystem{
		ecs:             ecs,
		effects:         effects,
		eventDispatcher: eventDispatcher,
	}
}

// Init ставит оба барьера поперёк диагонали поля. Вызывается один раз.
func (s *BarrierSystem) Init() {
	diag := math.Hypot(config.ScreenWidth, config.ScreenHeight)
	px := config.ScreenHeight / diag
	py := config.ScreenWidth / diag

	barrier := func(team types.Team, cx, cy float64) *component.Barrier {
		return &component.Barrier{
			Team:          team,
			X1:            cx - px*diag,
			Y1:            cy - py*diag,
			X2:            cx + px*diag,
			Y2:            cy + py*diag,
			HitsRemaining: config.BarrierCharges,
		}
	}
	s.ecs.Barriers = []*component.Barrier{
		barrier(types.TeamA, config.ScreenWidth*0.25, config.ScreenHeight*0.75),
		barrier(types.TeamB, config.ScreenWidth*0.75, config.ScreenHeight*0.25),
	}
}

func (s *BarrierSystem) Update(deltaTime float64) {
	for _, b := range s.ecs.Barriers {
		if !b.Active() {
			continue
		}
		for _, id := range s.ecs.UnitIDs() {
			u, pos, ok := s.ecs.LiveUnit(id)
			if !ok || u.IsHero() || u.Team == b.Team {
				continue
			}
			prev, ok := s.ecs.PrevPositions[id]
			if !ok {
				continue
			}
			if !lane.Crosses(b.X1, b.Y1, b.X2, b.Y2, lane.Point{X: prev.X, Y: prev.Y}, lane.Point{X: pos.X, Y: pos.Y}) {
				continue
			}

			u.HP = 0
			b.HitsRemaining--
			s.effects.AddFloatingText(pos.X, pos.Y-config.BlockedTextOffsetY, "BLOCKED!", config.BarrierColors[b.Team])
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.BarrierBlocked,
				Data: event.BarrierBlockedData{Team: b.Team, CreepID: id, HitsRemaining: b.HitsRemaining},
			})
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.UnitDied,
				Data: event.UnitDiedData{ID: id},
			})
			if !b.Active() {
				break
			}
		}
	}
}
