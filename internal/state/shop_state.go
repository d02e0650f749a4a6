// internal/state/shop_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*ShopState)(nil)

// ShopState — магазин поверх боя. Симуляция стоит, пока он открыт:
// Advance только применяет покупки.
type ShopState struct {
	sm     *StateMachine
	battle *BattleState
}

func NewShopState(sm *StateMachine, battle *BattleState) *ShopState {
	return &ShopState{sm: sm, battle: battle}
}

func (s *ShopState) Enter() {}

func (s *ShopState) Update(deltaTime float64) {
	game := s.battle.game
	closeShop := inpututil.IsKeyJustPressed(ebiten.KeyB) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if s.battle.shop.Close.Contains(x, y) {
			closeShop = true
		} else if item, ok := s.battle.shop.ItemAt(x, y); ok {
			if err := game.Purchase(item); err != nil {
				s.battle.shop.SetMessage(err.Error())
			}
		}
	}

	if closeShop {
		game.SetShopOpen(false)
	}
	s.battle.tick(deltaTime)
	if closeShop {
		s.sm.SetState(s.battle)
	}
}

func (s *ShopState) Draw(screen *ebiten.Image) {
	s.battle.Draw(screen)
	s.battle.shop.Draw(screen, s.battle.face, s.battle.snapshot)
}

func (s *ShopState) Exit() {}
