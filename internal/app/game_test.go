package app

import (
	"testing"

	"go-lane-skirmish/internal/config"
	"go-lane-skirmish/internal/defs"
	"go-lane-skirmish/internal/event"
	"go-lane-skirmish/internal/system"
	"go-lane-skirmish/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := NewGame(Options{Seed: 7})
	require.NoError(t, err)
	return g
}

// placeCreep ставит крипа прямо на поле в обход волн.
func placeCreep(g *Game, team types.Team, x, y float64) types.EntityID {
	return system.SpawnUnit(g.ECS, g.EventDispatcher, g.Balance.MeleeCreep, team, types.KindCreep, x, y, 0)
}

func TestNewGameSetsUpWorld(t *testing.T) {
	g := newTestGame(t)

	heroA, posA, ok := g.ECS.Unit(g.HeroA)
	require.True(t, ok)
	assert.Equal(t, types.TeamA, heroA.Team)
	assert.Equal(t, defs.HeroDefinition.Gold, heroA.Gold)
	assert.Equal(t, config.HeroCornerInset, posA.X)
	assert.Equal(t, config.ScreenHeight-config.HeroCornerInset, posA.Y)

	_, posB, ok := g.ECS.Unit(g.HeroB)
	require.True(t, ok)
	assert.Equal(t, config.ScreenWidth-config.HeroCornerInset, posB.X)

	assert.Len(t, g.ECS.Units, 10, "two heroes and the first wave")
	assert.Len(t, g.ECS.Barriers, 2)
	assert.Equal(t, 1, g.ECS.Wave.Number)
	assert.False(t, g.ShopOpen())
}

func TestNewGameRejectsInvalidBalance(t *testing.T) {
	balance := defs.DefaultBalance()
	balance.Hero.HP = 0
	_, err := NewGame(Options{Balance: balance})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hero: hp must be positive")
}

func TestSecondWaveArrives(t *testing.T) {
	g := newTestGame(t)
	spawned := map[types.Team][]types.EntityID{}
	g.EventDispatcher.Subscribe(event.UnitSpawned, event.ListenerFunc(func(e event.Event) {
		data := e.Data.(event.UnitSpawnedData)
		spawned[data.Team] = append(spawned[data.Team], data.ID)
	}))

	const dt = 0.125
	steps := int(g.Balance.Waves.Period() / dt)
	for i := 0; i < steps; i++ {
		g.Advance(dt)
	}

	require.Equal(t, 2, g.ECS.Wave.Number)
	assert.Equal(t, uint64(steps), g.ECS.Tick)
	for _, team := range []types.Team{types.TeamA, types.TeamB} {
		require.Len(t, spawned[team], 4)
		ranged := 0
		for _, id := range spawned[team] {
			u, _, ok := g.ECS.LiveUnit(id)
			require.True(t, ok, "fresh creep %d must be on the lane", id)
			if u.Stats.IsRanged() {
				ranged++
			}
		}
		assert.Equal(t, 1, ranged)
	}
	assert.True(t, g.Snapshot().HasEvent(event.WaveStarted))
}

func TestReapKeepsHeroes(t *testing.T) {
	g := newTestGame(t)
	creep := placeCreep(g, types.TeamB, 400, 200)
	g.ECS.Units[creep].HP = 0
	g.ECS.Units[g.HeroB].HP = 0

	g.Advance(0.01)
	assert.NotContains(t, g.ECS.Units, creep)
	assert.Contains(t, g.ECS.Units, g.HeroB)
}

func TestClickStartsAttack(t *testing.T) {
	g := newTestGame(t)
	enemy := placeCreep(g, types.TeamB, 300, 300)

	g.OnUnitClicked(enemy)
	hero := g.ECS.Units[g.HeroA]
	assert.Equal(t, types.StateIdle, hero.State, "clicks wait for the next tick")

	g.Advance(0.01)
	assert.Equal(t, types.StateAttacking, hero.State)
	assert.Equal(t, enemy, hero.TargetID)
	assert.Equal(t, 1, hero.AttackCount)
}

func TestClickWhileCoolingDownQueues(t *testing.T) {
	g := newTestGame(t)
	enemy := placeCreep(g, types.TeamB, 300, 300)
	hero := g.ECS.Units[g.HeroA]
	hero.CooldownTimer = 1

	g.OnUnitClicked(enemy)
	g.Advance(0.01)
	assert.Equal(t, types.StateIdle, hero.State)
	assert.Equal(t, enemy, hero.PendingTargetID)
}

func TestClickIgnoresHeroAndHealthyAlly(t *testing.T) {
	g := newTestGame(t)
	ally := placeCreep(g, types.TeamA, 300, 300)
	hero := g.ECS.Units[g.HeroA]

	g.OnUnitClicked(g.HeroA)
	g.OnUnitClicked(ally)
	g.OnUnitClicked(0)
	g.Advance(0.01)
	assert.Equal(t, types.StateIdle, hero.State)
	assert.Zero(t, hero.PendingTargetID)

	// Подраненного до половины уже можно денаить
	g.ECS.Units[ally].HP = g.ECS.Units[ally].MaxHP * config.DenyHealthFraction
	g.OnUnitClicked(ally)
	g.Advance(0.01)
	assert.Equal(t, types.StateAttacking, hero.State)
	assert.Equal(t, ally, hero.TargetID)
}

func TestClickIgnoredWhileShopOpen(t *testing.T) {
	g := newTestGame(t)
	enemy := placeCreep(g, types.TeamB, 300, 300)

	g.SetShopOpen(true)
	g.OnUnitClicked(enemy)
	g.Advance(0.01)
	hero := g.ECS.Units[g.HeroA]
	assert.Equal(t, types.StateIdle, hero.State)
	assert.Zero(t, hero.PendingTargetID)
}

func TestPickUnitMargin(t *testing.T) {
	g := newTestGame(t)
	_, pos, _ := g.ECS.Unit(g.HeroA)
	reach := config.HeroRadius + config.PickMargin

	assert.Equal(t, g.HeroA, g.PickUnit(pos.X+reach-0.5, pos.Y))
	assert.Zero(t, g.PickUnit(pos.X+reach+1, pos.Y))

	assert.Equal(t, g.HeroA, g.ClickAt(pos.X, pos.Y))
	require.Len(t, g.inputs, 1)
}

func TestPurchaseRules(t *testing.T) {
	g := newTestGame(t)
	hero := g.ECS.Units[g.HeroA]

	require.NoError(t, g.Purchase(defs.ItemDivineShield))
	assert.Equal(t, 500, hero.Gold, "gold is debited on the next tick")
	g.Advance(0.01)
	assert.Equal(t, 100, hero.Gold)
	assert.Equal(t, defs.ItemDivineShield, hero.Armor)
	assert.False(t, hero.ShieldActive, "buying the shield does not raise it")
	assert.True(t, g.Snapshot().HasEvent(event.ItemPurchased))

	assert.ErrorIs(t, g.Purchase(defs.ItemDivineShield), ErrSlotOccupied)
	assert.ErrorIs(t, g.Purchase(defs.ItemMidasHand), ErrNotEnoughGold)
	assert.ErrorIs(t, g.Purchase(defs.ItemID(99)), ErrUnknownItem)

	g.ECS.Units[g.HeroA].HP = 0
	assert.ErrorIs(t, g.Purchase(defs.ItemLaserBeam), ErrNotEnoughGold)
	hero.Gold = 10000
	g.ECS.RemoveUnit(g.HeroA)
	assert.ErrorIs(t, g.Purchase(defs.ItemLaserBeam), ErrNoHero)
}

func TestPurchaseRevalidatedOnApply(t *testing.T) {
	g := newTestGame(t)
	hero := g.ECS.Units[g.HeroA]

	// Обе покупки проходят проверку, но слот один
	require.NoError(t, g.Purchase(defs.ItemLaserBeam))
	require.NoError(t, g.Purchase(defs.ItemLaserBeam))
	g.Advance(0.01)
	assert.Zero(t, hero.Gold)
	assert.Equal(t, defs.ItemLaserBeam, hero.Weapon)
}

func TestPurchaseHonoursCostOverride(t *testing.T) {
	balance := defs.DefaultBalance()
	balance.ItemCosts["midas-hand"] = 50
	g, err := NewGame(Options{Balance: balance, Seed: 1})
	require.NoError(t, err)

	require.NoError(t, g.Purchase(defs.ItemMidasHand))
	g.Advance(0.01)
	assert.Equal(t, 450, g.ECS.Units[g.HeroA].Gold)
	assert.Equal(t, "Midas Hand", g.Snapshot().Hero.Accessory)
}

func TestShieldTargeting(t *testing.T) {
	g := newTestGame(t)
	assert.False(t, g.ToggleTargeting(), "no shield, no targeting")

	require.NoError(t, g.Purchase(defs.ItemDivineShield))
	g.Advance(0.01)
	require.True(t, g.ShieldReady())
	require.True(t, g.ToggleTargeting())
	g.Advance(0.01)
	require.True(t, g.Targeting())

	enemy := placeCreep(g, types.TeamB, 300, 300)
	ally := placeCreep(g, types.TeamA, 320, 300)

	g.OnUnitClicked(enemy)
	g.Advance(0.01)
	assert.True(t, g.Targeting(), "enemies cannot be shielded")
	assert.False(t, g.ECS.Units[enemy].ShieldActive)

	g.OnUnitClicked(ally)
	g.Advance(0.01)
	assert.False(t, g.Targeting())
	assert.True(t, g.ECS.Units[ally].ShieldActive)
	hero := g.ECS.Units[g.HeroA]
	assert.InDelta(t, config.ShieldItemCooldown, hero.ItemCooldown, 0.1)
	assert.False(t, g.ShieldReady())
	assert.False(t, g.ToggleTargeting())

	snap := g.Snapshot()
	assert.True(t, snap.HasEvent(event.ShieldCast))
	var texts []string
	for _, ft := range snap.Texts {
		texts = append(texts, ft.Text)
	}
	assert.Contains(t, texts, "SHIELD!")
}

func TestTargetingCanAlwaysBeTurnedOff(t *testing.T) {
	g := newTestGame(t)
	require.NoError(t, g.Purchase(defs.ItemDivineShield))
	g.Advance(0.01)
	require.True(t, g.ToggleTargeting())
	g.Advance(0.01)

	g.ECS.Units[g.HeroA].ItemCooldown = 10
	assert.True(t, g.ToggleTargeting())
	g.Advance(0.01)
	assert.False(t, g.Targeting())
}

func TestShopPausesSimulation(t *testing.T) {
	g := newTestGame(t)
	g.Advance(0.5)
	require.Equal(t, uint64(1), g.ECS.Tick)

	g.ToggleShop()
	g.Advance(0.5)
	g.Advance(0.5)
	assert.True(t, g.ShopOpen())
	assert.Equal(t, uint64(1), g.ECS.Tick)
	assert.Equal(t, 0.5, g.ECS.GameTime)

	// В магазине покупки работают
	require.NoError(t, g.Purchase(defs.ItemDivineShield))
	g.ToggleShop()
	g.Advance(0.5)
	assert.False(t, g.ShopOpen())
	assert.Equal(t, uint64(2), g.ECS.Tick)
	assert.Equal(t, defs.ItemDivineShield, g.ECS.Units[g.HeroA].Armor)
}

func TestToggleShopSeesQueuedInput(t *testing.T) {
	g := newTestGame(t)
	g.ToggleShop()
	g.ToggleShop()
	g.Advance(0.5)
	assert.False(t, g.ShopOpen())
}

func TestSnapshotReflectsWorld(t *testing.T) {
	g := newTestGame(t)
	snap := g.Snapshot()

	assert.Equal(t, 1, snap.Wave)
	assert.InDelta(t, g.Balance.Waves.Period(), snap.NextWaveIn, 1e-9)
	assert.Len(t, snap.Units, 10)
	require.Len(t, snap.Barriers, 2)
	assert.Equal(t, 1.0, snap.Barriers[0].Opacity())
	assert.Equal(t, g.HeroA, snap.Hero.ID)
	assert.Equal(t, 500, snap.Hero.Gold)
	assert.True(t, snap.HasEvent(event.WaveStarted))

	hero, ok := snap.Unit(g.HeroA)
	require.True(t, ok)
	assert.Equal(t, "A", hero.Team)
	assert.Equal(t, "hero", hero.Kind)
	assert.Equal(t, 1.0, hero.HealthRatio())

	g.Advance(0.01)
	snap = g.Snapshot()
	assert.False(t, snap.HasEvent(event.WaveStarted), "events cover one tick")
	assert.Equal(t, uint64(1), snap.Tick)
}
