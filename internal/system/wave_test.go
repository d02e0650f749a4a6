package system

import (
	"math"
	"testing"

	"go-lane-skirmish/internal/config"
	"go-lane-skirmish/internal/defs"
	"go-lane-skirmish/internal/event"
	"go-lane-skirmish/internal/types"
	"go-lane-skirmish/pkg/lane"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countCreeps(w *testWorld, team types.Team) (melee, ranged int) {
	for _, u := range w.ecs.Units {
		if u.Team != team || u.IsHero() {
			continue
		}
		if u.Stats.IsRanged() {
			ranged++
		} else {
			melee++
		}
	}
	return melee, ranged
}

func TestWaveStartSpawnsFormation(t *testing.T) {
	w := newTestWorld()
	log := &eventLog{}
	w.events.SubscribeAll(log, event.UnitSpawned, event.WaveStarted)

	waves := NewWaveSystem(w.ecs, w.events, defs.DefaultBalance())
	waves.Start()

	assert.Equal(t, 1, w.ecs.Wave.Number)
	for _, team := range []types.Team{types.TeamA, types.TeamB} {
		melee, ranged := countCreeps(w, team)
		assert.Equal(t, 3, melee)
		assert.Equal(t, 1, ranged)
	}
	assert.Equal(t, 8, log.count(event.UnitSpawned))
	assert.Equal(t, 1, log.count(event.WaveStarted))

	// Ближники стоят поперёк линии через CreepSpacing, дальник позади
	ids := w.ecs.UnitIDs()
	start := lane.SpawnPos(types.TeamA)
	var offsets []float64
	for _, id := range ids[:3] {
		offsets = append(offsets, w.ecs.Units[id].LaneOffset)
		pos := w.ecs.Positions[id]
		assert.InDelta(t, w.ecs.Units[id].LaneOffset, lane.Distance(start.X, start.Y, pos.X, pos.Y)*sign(w.ecs.Units[id].LaneOffset), 1e-9)
	}
	assert.Equal(t, []float64{-config.CreepSpacing, 0, config.CreepSpacing}, offsets)

	rangedPos := w.ecs.Positions[ids[3]]
	assert.InDelta(t, config.RangedBackOffset, lane.Distance(start.X, start.Y, rangedPos.X, rangedPos.Y), 1e-9)
	assert.Zero(t, w.ecs.Units[ids[3]].LaneOffset)
	spawned := log.events[0].Data.(event.UnitSpawnedData)
	assert.Equal(t, ids[0], spawned.ID)
	assert.Equal(t, defs.MeleeCreepDefinition.HP, spawned.HP)
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

func TestWaveScheduling(t *testing.T) {
	w := newTestWorld()
	balance := defs.DefaultBalance()
	waves := NewWaveSystem(w.ecs, w.events, balance)
	waves.Start()

	const dt = 0.125
	steps := int(balance.Waves.Period() / dt)
	for i := 0; i < steps-1; i++ {
		waves.Update(dt)
	}
	assert.Equal(t, 1, w.ecs.Wave.Number)
	assert.InDelta(t, dt, waves.TimeToNextWave(), 1e-9)

	waves.Update(dt)
	require.Equal(t, 2, w.ecs.Wave.Number)
	assert.Zero(t, w.ecs.Wave.Timer)
	melee, ranged := countCreeps(w, types.TeamB)
	assert.Equal(t, 6, melee)
	assert.Equal(t, 2, ranged)
}

func TestWaveHonoursBalance(t *testing.T) {
	w := newTestWorld()
	balance := defs.DefaultBalance()
	balance.Waves = defs.WaveTiming{Interval: 1, ShopDuration: 1}
	waves := NewWaveSystem(w.ecs, w.events, balance)
	waves.Start()

	for i := 0; i < 8; i++ {
		waves.Update(0.5)
	}
	assert.Equal(t, 3, w.ecs.Wave.Number)
}

func TestWaveUsesBalanceFormation(t *testing.T) {
	w := newTestWorld()
	balance := defs.DefaultBalance()
	balance.Formation = defs.Formation{Melee: 2, Ranged: 2, Spacing: 40, RangedBack: 100}
	waves := NewWaveSystem(w.ecs, w.events, balance)
	waves.Start()

	melee, ranged := countCreeps(w, types.TeamA)
	assert.Equal(t, 2, melee)
	assert.Equal(t, 2, ranged)

	ids := w.ecs.UnitIDs()
	assert.Equal(t, -20.0, w.ecs.Units[ids[0]].LaneOffset)
	assert.Equal(t, 20.0, w.ecs.Units[ids[1]].LaneOffset)
	assert.Equal(t, -20.0, w.ecs.Units[ids[2]].LaneOffset)
	assert.Equal(t, 20.0, w.ecs.Units[ids[3]].LaneOffset)
}

func TestWaveArrivesAtCommonFrameRates(t *testing.T) {
	for _, dt := range []float64{1.0 / 60, 1.0 / 30, 0.1, 0.02} {
		w := newTestWorld()
		balance := defs.DefaultBalance()
		waves := NewWaveSystem(w.ecs, w.events, balance)
		waves.Start()

		steps := int(math.Round(balance.Waves.Period() / dt))
		for i := 0; i < steps-1; i++ {
			waves.Update(dt)
		}
		assert.Equal(t, 1, w.ecs.Wave.Number, "dt=%v: one step early", dt)

		waves.Update(dt)
		assert.Equal(t, 2, w.ecs.Wave.Number, "dt=%v", dt)
		melee, ranged := countCreeps(w, types.TeamA)
		assert.Equal(t, 6, melee, "dt=%v", dt)
		assert.Equal(t, 2, ranged, "dt=%v", dt)
	}
}
