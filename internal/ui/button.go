// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную прямоугольную кнопку.
type Button struct {
	Rect        image.Rectangle
	Text        string
	TextColor   color.Color
	BgColor     color.RGBA
	BorderColor color.RGBA
}

// NewButton создает кнопку с центром в (cx, cy).
func NewButton(cx, cy, width, height int, label string) *Button {
	return &Button{
		Rect:        image.Rect(cx-width/2, cy-height/2, cx+width/2, cy+height/2),
		Text:        label,
		TextColor:   color.White,
		BgColor:     color.RGBA{102, 102, 102, 255},
		BorderColor: color.RGBA{68, 68, 68, 255},
	}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw отрисовывает кнопку с подписью по центру.
func (b *Button) Draw(screen *ebiten.Image, face font.Face) {
	drawPanel(screen, b.Rect, b.BgColor, b.BorderColor)
	center := b.Rect.Min.Add(b.Rect.Max).Div(2)
	drawTextCentered(screen, b.Text, face, center.X, center.Y, b.TextColor)
}

func drawPanel(screen *ebiten.Image, r image.Rectangle, bg, border color.RGBA) {
	x, y := float32(r.Min.X), float32(r.Min.Y)
	w, h := float32(r.Dx()), float32(r.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 2, border, false)
}

// drawTextCentered центрирует строку по обеим осям относительно (cx, cy).
func drawTextCentered(screen *ebiten.Image, s string, face font.Face, cx, cy int, clr color.Color) {
	bounds := text.BoundString(face, s)
	x := cx - bounds.Dx()/2 - bounds.Min.X
	y := cy - bounds.Dy()/2 - bounds.Min.Y
	text.Draw(screen, s, face, x, y, clr)
}
