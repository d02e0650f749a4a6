package system

import (
	"testing"

	"go-lane-skirmish/internal/config"
	"go-lane-skirmish/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectileFliesAndHits(t *testing.T) {
	w := newTestWorld()
	heroID, _ := w.hero(types.TeamA, 100, 200)
	targetID, target := w.melee(types.TeamB, 400, 200)

	projID := w.projectiles.Spawn(heroID, targetID, 30)
	require.NotZero(t, projID)
	proj := w.ecs.Projectiles[projID]
	assert.InDelta(t, 75.0, proj.ArcHeight, 1e-9)

	// 600 px/s по дистанции 300: половина пути за 0.25 с
	w.projectiles.Update(0.25)
	assert.InDelta(t, 0.5, proj.Progress, 1e-9)
	pos := w.ecs.Positions[projID]
	assert.InDelta(t, 250.0, pos.X, 1e-9)
	assert.InDelta(t, 200.0-75.0, pos.Y, 1e-9, "team A arcs to the negative side")
	assert.Equal(t, target.MaxHP, target.HP)

	w.projectiles.Update(0.25)
	assert.Empty(t, w.ecs.Projectiles)
	assert.NotContains(t, w.ecs.Positions, projID)
	assert.Equal(t, target.MaxHP-30, target.HP)
}

func TestProjectileArcIsCapped(t *testing.T) {
	w := newTestWorld()
	heroID, _ := w.hero(types.TeamB, 0, 200)
	targetID, _ := w.melee(types.TeamA, 800, 200)
	projID := w.projectiles.Spawn(heroID, targetID, 1)
	assert.Equal(t, config.ProjectileArcMax, w.ecs.Projectiles[projID].ArcHeight)
}

func TestProjectileHomesOnMovingTarget(t *testing.T) {
	w := newTestWorld()
	heroID, _ := w.hero(types.TeamA, 100, 200)
	targetID, _ := w.melee(types.TeamB, 400, 200)
	projID := w.projectiles.Spawn(heroID, targetID, 30)

	// Цель отошла вдвое дальше: шаг прогресса уменьшился
	w.ecs.Positions[targetID].X = 700
	w.projectiles.Update(0.25)
	assert.InDelta(t, 0.25, w.ecs.Projectiles[projID].Progress, 1e-9)
}

func TestProjectileDiscardedWhenTargetDead(t *testing.T) {
	w := newTestWorld()
	heroID, hero := w.hero(types.TeamA, 100, 200)
	targetID, target := w.melee(types.TeamB, 110, 200)
	w.projectiles.Spawn(heroID, targetID, 30)
	target.HP = 0

	w.projectiles.Update(0.016)
	assert.Empty(t, w.ecs.Projectiles)
	assert.Equal(t, 0.0, target.HP)
	assert.Equal(t, hero.MaxHP, hero.HP)
}

func TestProjectileDiscardedWhenTargetReaped(t *testing.T) {
	w := newTestWorld()
	heroID, _ := w.hero(types.TeamA, 100, 200)
	targetID, _ := w.melee(types.TeamB, 400, 200)
	w.projectiles.Spawn(heroID, targetID, 30)
	w.ecs.RemoveUnit(targetID)

	w.projectiles.Update(0.016)
	assert.Empty(t, w.ecs.Projectiles)
}

func TestProjectileExpires(t *testing.T) {
	w := newTestWorld()
	heroID, _ := w.hero(types.TeamA, 100, 200)
	targetID, target := w.melee(types.TeamB, 400, 200)
	projID := w.projectiles.Spawn(heroID, targetID, 30)
	w.ecs.Projectiles[projID].Speed = 1

	w.projectiles.Update(2.9)
	require.Len(t, w.ecs.Projectiles, 1)
	w.projectiles.Update(0.2)
	assert.Empty(t, w.ecs.Projectiles)
	assert.Equal(t, target.MaxHP, target.HP)
}

func TestProjectileAttackerGone(t *testing.T) {
	w := newTestWorld()
	creepID, _ := w.ranged(types.TeamA, 100, 200)
	targetID, target := w.melee(types.TeamB, 110, 200)
	w.projectiles.Spawn(creepID, targetID, 30)
	w.ecs.RemoveUnit(creepID)

	w.projectiles.Update(0.1)
	assert.Empty(t, w.ecs.Projectiles)
	assert.Equal(t, target.MaxHP, target.HP)
}
