// internal/ui/wave_indicator.go
package ui

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"go-lane-skirmish/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator отображает номер текущей волны римскими цифрами и таймер до следующей.
type WaveIndicator struct {
	X, Y             int
	Color            color.Color
	OutlineColor     color.Color
	OutlineThickness int
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y int) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.GoldColor,
		OutlineColor:     color.Black,
		OutlineThickness: 1,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// waveLabel — подпись индикатора: "Wave IV  12s".
func waveLabel(waveNumber int, nextIn float64) string {
	if nextIn < 0 {
		nextIn = 0
	}
	return fmt.Sprintf("Wave %s  %ds", toRoman(waveNumber), int(math.Ceil(nextIn)))
}

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(screen *ebiten.Image, face font.Face, waveNumber int, nextIn float64) {
	if waveNumber <= 0 {
		return
	}
	label := waveLabel(waveNumber, nextIn)

	bounds := text.BoundString(face, label)
	textX := i.X - bounds.Dx()/2
	textY := i.Y

	// Обводка
	for y := -i.OutlineThickness; y <= i.OutlineThickness; y++ {
		for x := -i.OutlineThickness; x <= i.OutlineThickness; x++ {
			if x == 0 && y == 0 {
				continue
			}
			text.Draw(screen, label, face, textX+x, textY+y, i.OutlineColor)
		}
	}
	text.Draw(screen, label, face, textX, textY, i.Color)
}
