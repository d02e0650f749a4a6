package system

import (
	"math"
	"testing"

	"go-lane-skirmish/internal/config"
	"go-lane-skirmish/internal/defs"
	"go-lane-skirmish/internal/event"
	"go-lane-skirmish/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateDamageArmorCurve(t *testing.T) {
	assert.Equal(t, 100, CalculateDamage(100, 0))

	for armor := -20.0; armor <= 30; armor++ {
		dmg := CalculateDamage(100, armor)
		assert.GreaterOrEqual(t, dmg, 0)
		if armor >= 0 {
			assert.LessOrEqual(t, dmg, 100, "armor %v", armor)
		} else {
			assert.Greater(t, dmg, 100, "armor %v", armor)
		}
	}

	assert.Equal(t, 42, CalculateDamage(55, 5))
	assert.Equal(t, 19, CalculateDamage(21, 2))
	assert.Equal(t, 0, CalculateDamage(0, 10))
	assert.Equal(t, 0, CalculateDamage(-5, 0))
}

func TestArmorMultiplierNegativeCapsAtTwo(t *testing.T) {
	assert.InDelta(t, 1.06, ArmorMultiplier(-1), 1e-9)
	assert.Less(t, ArmorMultiplier(-50), 2.0)
	assert.False(t, math.IsNaN(ArmorMultiplier(-1000)))
}

func TestResolveDamageCrit(t *testing.T) {
	w := newTestWorld()
	heroID, hero := w.hero(types.TeamA, 100, 100)
	_, creep := w.ranged(types.TeamB, 300, 100)

	// Без предмета крита нет
	for i := 0; i < 50; i++ {
		assert.Equal(t, 55, w.damage.ResolveDamage(heroID, hero, creep))
	}
	assert.Empty(t, w.ecs.Texts)

	log := &eventLog{}
	w.events.Subscribe(event.CriticalStrike, log)
	hero.Weapon = defs.ItemCriticalStrike
	crits := 0
	for i := 0; i < 200; i++ {
		dmg := w.damage.ResolveDamage(heroID, hero, creep)
		require.Contains(t, []int{55, 110}, dmg)
		if dmg == 110 {
			crits++
		}
	}
	assert.Greater(t, crits, 0)
	assert.Less(t, crits, 200)
	assert.Equal(t, crits, log.count(event.CriticalStrike))
	assert.Equal(t, "CRIT!", w.ecs.Texts[0].Text)
	assert.InDelta(t, 100-config.CritTextOffsetY, w.ecs.Texts[0].Y, 1e-9)
}

func TestShieldAbsorbsOneHit(t *testing.T) {
	w := newTestWorld()
	heroID, _ := w.hero(types.TeamA, 100, 100)
	creepID, creep := w.melee(types.TeamB, 300, 100)
	creep.ShieldActive = true

	w.damage.ApplyInstant(heroID, creepID, 100000)
	assert.Equal(t, creep.MaxHP, creep.HP)
	assert.False(t, creep.ShieldActive)
	assert.Greater(t, creep.ItemCooldown, 0.0)

	w.damage.ApplyInstant(heroID, creepID, 50)
	assert.Equal(t, creep.MaxHP-50, creep.HP)
}

func TestLastHitAndDenyCounters(t *testing.T) {
	w := newTestWorld()
	log := &eventLog{}
	w.events.SubscribeAll(log, event.LastHit, event.Denied, event.UnitDied)

	heroID, hero := w.hero(types.TeamA, 100, 100)
	enemyID, enemy := w.melee(types.TeamB, 300, 100)
	enemy.HP = 1

	w.damage.ApplyInstant(heroID, enemyID, 50)
	assert.Equal(t, 1, w.ecs.Score.LastHits)
	assert.Equal(t, 0, w.ecs.Score.Denies)
	assert.GreaterOrEqual(t, hero.Gold, 500+config.MeleeCreepGoldBase)
	assert.Less(t, hero.Gold, 500+config.MeleeCreepGoldBase+config.CreepGoldVariance)
	require.Len(t, w.ecs.Texts, 1)
	assert.Equal(t, config.GoldColor, w.ecs.Texts[0].Color)

	// Добивать мёртвого повторно нельзя
	w.damage.ApplyInstant(heroID, enemyID, 50)
	assert.Equal(t, 1, w.ecs.Score.LastHits)

	ownID, own := w.melee(types.TeamA, 200, 100)
	own.HP = 1
	gold := hero.Gold
	w.damage.ApplyInstant(heroID, ownID, 50)
	assert.Equal(t, 1, w.ecs.Score.LastHits)
	assert.Equal(t, 1, w.ecs.Score.Denies)
	assert.Equal(t, gold, hero.Gold)
	assert.Equal(t, "!", w.ecs.Texts[1].Text)

	assert.Equal(t, 1, log.count(event.LastHit))
	assert.Equal(t, 1, log.count(event.Denied))
	assert.Equal(t, 2, log.count(event.UnitDied))
}

func TestLastHitTeamBDoesNotCount(t *testing.T) {
	w := newTestWorld()
	heroID, hero := w.hero(types.TeamB, 700, 100)
	creepID, creep := w.ranged(types.TeamA, 500, 100)
	creep.HP = 1
	// Порог строгий: дальность 200 ещё считается ближником
	creep.Stats.AttackRange = config.RangedRangeThreshold + 50

	w.damage.ApplyInstant(heroID, creepID, 50)
	assert.Equal(t, 0, w.ecs.Score.LastHits)
	assert.GreaterOrEqual(t, hero.Gold, 500+config.RangedCreepGoldBase)
}

func TestCreepKillsGiveNothing(t *testing.T) {
	w := newTestWorld()
	creepA, _ := w.melee(types.TeamA, 100, 100)
	creepB, b := w.melee(types.TeamB, 150, 100)
	b.HP = 1

	w.damage.ApplyInstant(creepA, creepB, 10)
	assert.False(t, b.Alive())
	assert.Zero(t, w.ecs.Score.LastHits)
	assert.Zero(t, w.ecs.Score.Denies)
	assert.Empty(t, w.ecs.Texts)
}

func TestMidasAndRapidFireOnKill(t *testing.T) {
	w := newTestWorld()
	heroID, hero := w.hero(types.TeamA, 100, 100)
	hero.Accessory = defs.ItemMidasHand
	hero.Weapon = defs.ItemRapidFire
	creepID, creep := w.melee(types.TeamB, 300, 100)
	creep.HP = 5

	w.damage.ApplyInstant(heroID, creepID, 10)
	earned := hero.Gold - 500
	assert.GreaterOrEqual(t, earned, int(math.Floor(config.MeleeCreepGoldBase*config.MidasGoldMult)))
	assert.LessOrEqual(t, earned, int(math.Floor((config.MeleeCreepGoldBase+config.CreepGoldVariance-1)*config.MidasGoldMult)))
	assert.True(t, hero.RapidFireActive)
	assert.Equal(t, config.RapidFireDuration, hero.RapidFireDuration)
}

func TestSplashOnEvenAttacks(t *testing.T) {
	w := newTestWorld()
	heroID, hero := w.hero(types.TeamA, 100, 200)
	hero.Weapon = defs.ItemSplashBlade

	primaryID, primary := w.melee(types.TeamB, 400, 200)
	_, near := w.melee(types.TeamB, 450, 200)
	_, far := w.melee(types.TeamB, 700, 200)
	_, own := w.melee(types.TeamA, 420, 200)
	near.ShieldActive = true

	hero.AttackCount = 1
	w.damage.ApplyInstant(heroID, primaryID, 40)
	assert.Equal(t, primary.MaxHP-40, primary.HP)
	assert.Equal(t, near.MaxHP, near.HP, "odd attack does not splash")
	assert.Empty(t, w.ecs.Beams)

	hero.AttackCount = 2
	w.damage.ApplyInstant(heroID, primaryID, 40)
	assert.Equal(t, primary.MaxHP-80, primary.HP)
	assert.Equal(t, near.MaxHP-20, near.HP, "splash ignores shields")
	assert.True(t, near.ShieldActive)
	assert.Equal(t, far.MaxHP, far.HP)
	assert.Equal(t, own.MaxHP, own.HP)
	require.Len(t, w.ecs.Beams, 1)
	assert.InDelta(t, 400-config.SplashAoeRadius, w.ecs.Beams[0].FromX, 1e-9)
	assert.InDelta(t, 400+config.SplashAoeRadius, w.ecs.Beams[0].ToX, 1e-9)
}

func TestSplashLastHitsEachVictim(t *testing.T) {
	w := newTestWorld()
	heroID, hero := w.hero(types.TeamA, 100, 200)
	hero.Weapon = defs.ItemSplashBlade
	hero.AttackCount = 2

	primaryID, _ := w.melee(types.TeamB, 400, 200)
	_, a := w.melee(types.TeamB, 430, 200)
	_, b := w.melee(types.TeamB, 400, 240)
	a.HP, b.HP = 5, 5

	w.damage.ApplyInstant(heroID, primaryID, 20)
	assert.Equal(t, 2, w.ecs.Score.LastHits)
}

func TestProjectileHitWithoutAttackerIsMiss(t *testing.T) {
	w := newTestWorld()
	creepID, creep := w.melee(types.TeamB, 300, 100)
	w.damage.ApplyFromProjectile(999, creepID, 50, 1)
	assert.Equal(t, creep.MaxHP, creep.HP)
}
