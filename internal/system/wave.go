// internal/system/wave.go
package system

import (
	"log"

	"go-lane-skirmish/internal/defs"
	"go-lane-skirmish/internal/entity"
	"go-lane-skirmish/internal/event"
	"go-lane-skirmish/internal/types"
	"go-lane-skirmish/pkg/lane"
)

const waveTimerEpsilon = 1e-9

// WaveSystem выпускает формацию крипов каждой команде раз в период волны.
type WaveSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	balance         *defs.Balance
}

func NewWaveSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, balance *defs.Balance) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		balance:         balance,
	}
}

// Start сразу запускает первую волну.
func (s *WaveSystem) Start() {
	s.ecs.Wave.Number = 1
	s.ecs.Wave.Timer = 0
	s.spawnWave()
}

func (s *WaveSystem) Update(deltaTime float64) {
	wave := s.ecs.Wave
	wave.Timer += deltaTime
	// Накопленный таймер при dt=1/60 недобирает до периода на ~1e-12
	if wave.Timer >= s.balance.Waves.Period()-waveTimerEpsilon {
		wave.Number++
		wave.Timer = 0
		s.spawnWave()
	}
}

// TimeToNextWave — сколько секунд осталось до следующей волны.
func (s *WaveSystem) TimeToNextWave() float64 {
	return s.balance.Waves.Period() - s.ecs.Wave.Timer
}

func (s *WaveSystem) spawnWave() {
	s.spawnTeam(types.TeamA)
	s.spawnTeam(types.TeamB)
	log.Printf("Wave %d started", s.ecs.Wave.Number)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveStarted,
		Data: event.WaveStartedData{Number: s.ecs.Wave.Number},
	})
}

// spawnTeam: ближники поперёк линии на точке появления, дальники чуть позади.
func (s *WaveSystem) spawnTeam(team types.Team) {
	formation := s.balance.Formation
	start := lane.SpawnPos(team)

	for _, offset := range formation.RowOffsets(formation.Melee) {
		p := lane.Offset(team, start, offset)
		SpawnUnit(s.ecs, s.eventDispatcher, s.balance.MeleeCreep, team, types.KindCreep, p.X, p.Y, offset)
	}

	back := start.Add(lane.Direction(team).Scale(-formation.RangedBack))
	for _, offset := range formation.RowOffsets(formation.Ranged) {
		p := lane.Offset(team, back, offset)
		SpawnUnit(s.ecs, s.eventDispatcher, s.balance.RangedCreep, team, types.KindCreep, p.X, p.Y, offset)
	}
}
