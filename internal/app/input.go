package app

import (
	"errors"
	"fmt"
	"log"

	"go-lane-skirmish/internal/config"
	"go-lane-skirmish/internal/defs"
	"go-lane-skirmish/internal/event"
	"go-lane-skirmish/internal/types"
	"go-lane-skirmish/pkg/lane"
)

var (
	ErrUnknownItem   = errors.New("unknown item")
	ErrNotEnoughGold = errors.New("not enough gold")
	ErrSlotOccupied  = errors.New("slot already occupied")
	ErrNoHero        = errors.New("player hero is gone")
)

type commandKind int

const (
	cmdClick commandKind = iota
	cmdPurchase
	cmdToggleTargeting
	cmdSetShop
)

// command — ввод внешнего слоя, который применяется в начале следующего тика.
type command struct {
	kind   commandKind
	unitID types.EntityID
	item   defs.ItemID
	open   bool
}

// OnUnitClicked ставит в очередь клик игрока по юниту.
func (g *Game) OnUnitClicked(id types.EntityID) {
	if id == 0 {
		return
	}
	g.inputs = append(g.inputs, command{kind: cmdClick, unitID: id})
}

// ClickAt резолвит экранную точку в юнит и ставит клик в очередь.
// Возвращает выбранный id или 0.
func (g *Game) ClickAt(x, y float64) types.EntityID {
	id := g.PickUnit(x, y)
	g.OnUnitClicked(id)
	return id
}

// PickUnit находит ближайший живой юнит, в тело которого (плюс PickMargin) попадает точка.
func (g *Game) PickUnit(x, y float64) types.EntityID {
	var picked types.EntityID
	best := 0.0
	for _, id := range g.ECS.UnitIDs() {
		u, pos, ok := g.ECS.LiveUnit(id)
		if !ok {
			continue
		}
		d := lane.Distance(x, y, pos.X, pos.Y)
		if d <= u.Radius+config.PickMargin && (picked == 0 || d < best) {
			picked, best = id, d
		}
	}
	return picked
}

// Purchase проверяет покупку для героя игрока и ставит её в очередь.
// Ошибка говорит UI, почему покупка отклонена; состояние при этом не меняется.
func (g *Game) Purchase(item defs.ItemID) error {
	if _, err := g.checkPurchase(item); err != nil {
		return err
	}
	g.inputs = append(g.inputs, command{kind: cmdPurchase, item: item})
	return nil
}

func (g *Game) checkPurchase(item defs.ItemID) (defs.ItemDefinition, error) {
	def, ok := defs.Item(item)
	if !ok {
		return def, fmt.Errorf("%w: %d", ErrUnknownItem, item)
	}
	hero, _, ok := g.ECS.Unit(g.HeroA)
	if !ok {
		return def, ErrNoHero
	}
	if hero.ItemIn(def.Slot) != defs.ItemNone {
		return def, fmt.Errorf("%w: %s", ErrSlotOccupied, def.Slot)
	}
	cost := g.Balance.ItemCost(def)
	if hero.Gold < cost {
		return def, fmt.Errorf("%w: %s costs %d, have %d", ErrNotEnoughGold, def.Name, cost, hero.Gold)
	}
	return def, nil
}

// ToggleTargeting включает режим наложения щита. Включить можно только
// с Divine Shield и без перезарядки; выключить — всегда.
func (g *Game) ToggleTargeting() bool {
	if !g.targeting && !g.ShieldReady() {
		return false
	}
	g.inputs = append(g.inputs, command{kind: cmdToggleTargeting})
	return true
}

// ShieldReady reports whether the player hero can cast the shield now.
func (g *Game) ShieldReady() bool {
	hero, _, ok := g.ECS.Unit(g.HeroA)
	return ok && hero.HasEffect(defs.EffectBlockDamage) && hero.ItemCooldown <= 0
}

// ToggleShop открывает или закрывает магазин.
func (g *Game) ToggleShop() {
	g.SetShopOpen(!g.pendingShopOpen())
}

// SetShopOpen задаёт состояние магазина со следующего тика.
func (g *Game) SetShopOpen(open bool) {
	g.inputs = append(g.inputs, command{kind: cmdSetShop, open: open})
}

// pendingShopOpen — состояние магазина с учётом ещё не применённого ввода.
func (g *Game) pendingShopOpen() bool {
	open := g.shopOpen
	for _, c := range g.inputs {
		if c.kind == cmdSetShop {
			open = c.open
		}
	}
	return open
}

func (g *Game) drainInputs() {
	inputs := g.inputs
	g.inputs = nil
	for _, c := range inputs {
		switch c.kind {
		case cmdClick:
			g.handleClick(c.unitID)
		case cmdPurchase:
			g.applyPurchase(c.item)
		case cmdToggleTargeting:
			g.targeting = !g.targeting
		case cmdSetShop:
			g.shopOpen = c.open
		}
	}
}

func (g *Game) applyPurchase(item defs.ItemID) {
	def, err := g.checkPurchase(item)
	if err != nil {
		g.debugf("purchase rejected: %v", err)
		return
	}
	hero := g.ECS.Units[g.HeroA]
	cost := g.Balance.ItemCost(def)
	hero.Gold -= cost
	hero.Equip(def)
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.ItemPurchased,
		Data: event.ItemPurchasedData{HeroID: g.HeroA, Item: def.ID, Cost: cost},
	})
}

// handleClick — управление героем игрока кликом.
func (g *Game) handleClick(id types.EntityID) {
	if g.shopOpen {
		return
	}
	hero, heroPos, ok := g.ECS.LiveUnit(g.HeroA)
	if !ok {
		return
	}
	target, targetPos, ok := g.ECS.LiveUnit(id)
	if !ok {
		g.debugf("click on missing unit %d", id)
		return
	}

	if g.targeting {
		// В режиме щита клики по врагам игнорируются
		if target.Team != types.TeamA {
			return
		}
		target.ShieldActive = true
		hero.ItemCooldown = config.ShieldItemCooldown
		g.EffectsSystem.AddFloatingText(targetPos.X, targetPos.Y-config.CritTextOffsetY, "SHIELD!", config.GoldColor)
		g.EventDispatcher.Dispatch(event.Event{
			Type: event.ShieldCast,
			Data: event.ShieldCastData{CasterID: g.HeroA, TargetID: id},
		})
		g.targeting = false
		return
	}

	if id == g.HeroA {
		return
	}
	// Денаить можно только подраненного своего крипа
	if target.Team == hero.Team && !target.IsHero() && target.HP > target.MaxHP*config.DenyHealthFraction {
		return
	}

	edgeDist := lane.EdgeDistance(heroPos.X, heroPos.Y, hero.Radius, targetPos.X, targetPos.Y, target.Radius)
	if edgeDist <= hero.Stats.AttackRange && hero.State == types.StateIdle && hero.CooldownTimer <= 0 {
		hero.PendingTargetID = 0
		g.CombatSystem.StartAttack(g.HeroA, id)
		return
	}
	hero.PendingTargetID = id
}

func (g *Game) debugf(format string, args ...interface{}) {
	if g.Verbose {
		log.Printf(format, args...)
	}
}
