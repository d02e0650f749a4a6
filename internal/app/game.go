// internal/app/game.go
package app

import (
	"fmt"
	"log"

	"go-lane-skirmish/internal/config"
	"go-lane-skirmish/internal/defs"
	"go-lane-skirmish/internal/entity"
	"go-lane-skirmish/internal/event"
	"go-lane-skirmish/internal/system"
	"go-lane-skirmish/internal/types"
	"go-lane-skirmish/internal/utils"
)

// Options — параметры одного прогона симуляции.
type Options struct {
	Balance *defs.Balance // nil — стандартный баланс
	Seed    int64         // 0 — сид от текущего времени
	Verbose bool          // логировать отклонённый ввод
}

// Game holds the simulation state and the tick pipeline.
type Game struct {
	ECS              *entity.ECS
	EventDispatcher  *event.Dispatcher
	Rng              *utils.PRNGService
	Balance          *defs.Balance
	EffectsSystem    *system.EffectsSystem
	DamageSystem     *system.DamageSystem
	ProjectileSystem *system.ProjectileSystem
	CombatSystem     *system.CombatSystem
	MovementSystem   *system.MovementSystem
	BarrierSystem    *system.BarrierSystem
	WaveSystem       *system.WaveSystem
	Verbose          bool

	HeroA types.EntityID // герой игрока
	HeroB types.EntityID

	shopOpen  bool
	targeting bool
	inputs    []command
	// события, случившиеся за последний тик; уходят в Snapshot
	recent []event.EventType
}

// NewGame собирает мир: герои, барьеры и первая волна.
func NewGame(opts Options) (*Game, error) {
	balance := opts.Balance
	if balance == nil {
		balance = defs.DefaultBalance()
	}
	if err := balance.Validate(); err != nil {
		return nil, fmt.Errorf("invalid balance: %w", err)
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(opts.Seed)
	g := &Game{
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		Balance:         balance,
		Verbose:         opts.Verbose,
	}
	g.EffectsSystem = system.NewEffectsSystem(ecs)
	g.DamageSystem = system.NewDamageSystem(ecs, g.EffectsSystem, eventDispatcher, rng)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, g.DamageSystem)
	g.CombatSystem = system.NewCombatSystem(ecs, g.DamageSystem, g.ProjectileSystem, g.EffectsSystem)
	g.MovementSystem = system.NewMovementSystem(ecs)
	g.BarrierSystem = system.NewBarrierSystem(ecs, g.EffectsSystem, eventDispatcher)
	g.WaveSystem = system.NewWaveSystem(ecs, eventDispatcher, balance)

	listener := &GameEventListener{game: g}
	eventDispatcher.SubscribeAll(listener,
		event.UnitSpawned,
		event.UnitDied,
		event.LastHit,
		event.Denied,
		event.CriticalStrike,
		event.BarrierBlocked,
		event.WaveStarted,
		event.ItemPurchased,
		event.ShieldCast,
	)

	g.spawnHeroes()
	g.BarrierSystem.Init()
	g.WaveSystem.Start()
	return g, nil
}

func (g *Game) spawnHeroes() {
	inset := config.HeroCornerInset
	g.HeroA = system.SpawnUnit(g.ECS, g.EventDispatcher, g.Balance.Hero, types.TeamA, types.KindHero,
		inset, config.ScreenHeight-inset, 0)
	g.HeroB = system.SpawnUnit(g.ECS, g.EventDispatcher, g.Balance.Hero, types.TeamB, types.KindHero,
		config.ScreenWidth-inset, inset, 0)
}

// Advance продвигает симуляцию на deltaTime секунд.
// Ввод, накопленный с прошлого тика, применяется первым. Пока открыт магазин,
// мир стоит.
func (g *Game) Advance(deltaTime float64) {
	g.recent = g.recent[:0]
	g.drainInputs()
	if g.shopOpen {
		return
	}

	g.ECS.GameTime += deltaTime
	g.WaveSystem.Update(deltaTime)
	g.CombatSystem.Update(deltaTime)
	g.MovementSystem.Update(deltaTime)
	g.ProjectileSystem.Update(deltaTime)
	g.BarrierSystem.Update(deltaTime)
	g.EffectsSystem.Update(deltaTime)
	g.cleanupDeadUnits()
	g.ECS.Tick++
}

// cleanupDeadUnits убирает мёртвых крипов. Герои остаются лежать.
func (g *Game) cleanupDeadUnits() {
	for _, id := range g.ECS.UnitIDs() {
		u := g.ECS.Units[id]
		if !u.Alive() && !u.IsHero() {
			g.ECS.RemoveUnit(id)
		}
	}
}

// ShopOpen reports whether the shop phase pauses the simulation.
func (g *Game) ShopOpen() bool {
	return g.shopOpen
}

// Targeting reports whether the next friendly click casts the shield.
func (g *Game) Targeting() bool {
	return g.targeting
}

// GameEventListener собирает события тика для телеметрии.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	l.game.recent = append(l.game.recent, e.Type)
	if !l.game.Verbose {
		return
	}
	switch data := e.Data.(type) {
	case event.LastHitData:
		log.Printf("%s: hero %d, creep %d, gold %d", e.Type, data.HeroID, data.CreepID, data.Gold)
	case event.BarrierBlockedData:
		log.Printf("%s: barrier %s, creep %d, %d charges left", e.Type, data.Team, data.CreepID, data.HitsRemaining)
	case event.ItemPurchasedData:
		log.Printf("%s: hero %d bought item %d for %d", e.Type, data.HeroID, data.Item, data.Cost)
	}
}
