// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"go-lane-skirmish/internal/app"
	"go-lane-skirmish/internal/config"
	"go-lane-skirmish/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

const (
	panelHeight    = 70
	panelWidth     = 260
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 16
	columnSpacing  = 120
)

var (
	panelBg     = color.RGBA{25, 35, 45, 230}
	panelBorder = color.RGBA{70, 130, 180, 255}
)

// InfoPanel показывает сведения о последнем кликнутом юните. Выезжает снизу.
type InfoPanel struct {
	IsVisible    bool
	TargetEntity types.EntityID
	fontFace     font.Face
	currentY     float64
	targetY      float64
}

func NewInfoPanel(face font.Face) *InfoPanel {
	return &InfoPanel{
		fontFace: face,
		currentY: config.ScreenHeight,
		targetY:  config.ScreenHeight,
	}
}

func (p *InfoPanel) SetTarget(entityID types.EntityID) {
	p.TargetEntity = entityID
	p.IsVisible = true
	p.targetY = config.ScreenHeight - panelHeight
}

func (p *InfoPanel) Hide() {
	p.targetY = config.ScreenHeight
}

// Update двигает панель и прячет её, когда выбранный юнит пропал из мира.
func (p *InfoPanel) Update(snap *app.Snapshot) {
	if p.TargetEntity != 0 {
		if _, ok := snap.Unit(p.TargetEntity); !ok {
			p.Hide()
		}
	}

	if p.currentY != p.targetY {
		diff := p.targetY - p.currentY
		if math.Abs(diff) < animationSpeed {
			p.currentY = p.targetY
		} else if diff > 0 {
			p.currentY += animationSpeed
		} else {
			p.currentY -= animationSpeed
		}

		if p.currentY >= config.ScreenHeight {
			p.IsVisible = false
			p.TargetEntity = 0
		}
	}
}

// Rect — текущий прямоугольник панели.
func (p *InfoPanel) Rect() image.Rectangle {
	left := config.ScreenWidth/2 - panelWidth/2
	return image.Rect(left, int(p.currentY)+panelMargin, left+panelWidth, int(p.currentY)+panelHeight-panelMargin)
}

// unitLines — две колонки описания юнита.
func unitLines(u app.UnitView) ([]string, []string) {
	title := fmt.Sprintf("%s %s", u.Team, u.Kind)
	if u.Ranged && u.Kind != types.KindHero.String() {
		title += " (ranged)"
	}
	left := []string{
		title,
		fmt.Sprintf("HP: %.0f / %.0f", math.Max(0, u.HP), u.MaxHP),
	}
	right := []string{
		fmt.Sprintf("State: %s", u.State),
	}
	if u.TargetID != 0 {
		right = append(right, fmt.Sprintf("Target: #%d", u.TargetID))
	}
	if u.Shielded {
		right = append(right, "Shielded")
	}
	return left, right
}

func (p *InfoPanel) Draw(screen *ebiten.Image, snap *app.Snapshot) {
	if !p.IsVisible && p.currentY >= config.ScreenHeight {
		return
	}
	r := p.Rect()
	drawPanel(screen, r, panelBg, panelBorder)

	u, ok := snap.Unit(p.TargetEntity)
	if !ok {
		return
	}
	left, right := unitLines(u)
	x := r.Min.X + 10
	y := r.Min.Y + lineHeight
	for i, line := range left {
		text.Draw(screen, line, p.fontFace, x, y+i*lineHeight, config.TextLightColor)
	}
	for i, line := range right {
		text.Draw(screen, line, p.fontFace, x+columnSpacing, y+i*lineHeight, config.TextLightColor)
	}
}
