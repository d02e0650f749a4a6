// internal/state/pause_state.go
package state

import (
	"image/color"

	"go-lane-skirmish/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*PauseState)(nil)

// PauseState замораживает бой целиком: в отличие от магазина, ввод в симуляцию не идёт.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *BattleState
}

func NewPauseState(sm *StateMachine, prevState *BattleState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 128}, false)

	face := s.previousState.face
	pauseText := "PAUSED"
	bounds := text.BoundString(face, pauseText)
	text.Draw(screen, pauseText, face, (config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/2, color.White)
}

func (s *PauseState) Exit() {}
