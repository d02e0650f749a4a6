// internal/state/battle_state.go
package state

import (
	"go-lane-skirmish/internal/app"
	"go-lane-skirmish/internal/ui"
	"go-lane-skirmish/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
)

// Убеждаемся, что BattleState соответствует интерфейсу State
var _ State = (*BattleState)(nil)

// BattleState — основной экран: поле, HUD, управление героем мышью.
type BattleState struct {
	sm       *StateMachine
	game     *app.Game
	renderer *render.LaneRenderer
	hud      *ui.HUD
	shop     *ui.ShopPanel
	face     font.Face
	snapshot *app.Snapshot

	// OnTick получает снимок после каждого Advance (например, для зрителей).
	OnTick func(*app.Snapshot)
}

func NewBattleState(sm *StateMachine, game *app.Game, face font.Face) *BattleState {
	return &BattleState{
		sm:       sm,
		game:     game,
		renderer: render.NewLaneRenderer(render.DefaultFieldColors(), face),
		hud:      ui.NewHUD(face),
		shop:     ui.NewShopPanel(game.Balance),
		face:     face,
		snapshot: game.Snapshot(),
	}
}

// Game возвращает симуляцию, которой управляет экран.
func (b *BattleState) Game() *app.Game {
	return b.game
}

func (b *BattleState) Enter() {
	b.snapshot = b.game.Snapshot()
}

func (b *BattleState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		b.sm.SetState(NewPauseState(b.sm, b))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		b.openShop()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		b.game.ToggleTargeting()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if action, consumed := b.hud.HandleClick(x, y, b.snapshot); consumed {
			switch action {
			case ui.ActionToggleShop:
				b.openShop()
				return
			case ui.ActionToggleTargeting:
				b.game.ToggleTargeting()
			}
		} else if id := b.game.ClickAt(float64(x), float64(y)); id != 0 {
			b.hud.Info.SetTarget(id)
		} else {
			b.hud.Info.Hide()
		}
	}

	b.tick(deltaTime)
}

// tick продвигает симуляцию и обновляет снимок для отрисовки.
func (b *BattleState) tick(deltaTime float64) {
	b.game.Advance(deltaTime)
	b.snapshot = b.game.Snapshot()
	b.hud.Update(b.snapshot)
	if b.OnTick != nil {
		b.OnTick(b.snapshot)
	}
}

func (b *BattleState) openShop() {
	b.game.SetShopOpen(true)
	b.sm.SetState(NewShopState(b.sm, b))
}

func (b *BattleState) Draw(screen *ebiten.Image) {
	b.renderer.Draw(screen, b.snapshot)
	b.hud.Draw(screen, b.snapshot)
}

func (b *BattleState) Exit() {}
