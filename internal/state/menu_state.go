// internal/state/menu_state.go
package state

import (
	"image/color"

	"go-lane-skirmish/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// MenuState — заставка перед боем
type MenuState struct {
	sm   *StateMachine
	next State
	face font.Face
}

func NewMenuState(sm *StateMachine, next State, face font.Face) *MenuState {
	return &MenuState{sm: sm, next: next, face: face}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(m.next)
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})
	lines := []string{"LANE SKIRMISH", "", "click creeps to last-hit, B - shop, T - shield, P - pause", "", "press SPACE"}
	for i, line := range lines {
		bounds := text.BoundString(m.face, line)
		text.Draw(screen, line, m.face, (config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/3+i*18, config.TextLightColor)
	}
}

func (m *MenuState) Exit() {}
