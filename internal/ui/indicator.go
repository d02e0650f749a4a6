// internal/ui/indicator.go
package ui

import (
	"image"
	"image/color"
	"math"
	"strings"
	"time"

	"go-lane-skirmish/internal/app"
	"go-lane-skirmish/internal/config"
	"go-lane-skirmish/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	slotSize    = 50
	slotSpacing = 55
	slotCenterX = 35
	slotTopY    = 60
)

var (
	slotLabels      = [...]string{"W", "A", "S"}
	slotEmptyBg     = color.RGBA{26, 26, 26, 255}
	slotFilledBg    = color.RGBA{42, 42, 42, 255}
	slotEmptyBorder = color.RGBA{68, 68, 68, 255}
	slotEmptyText   = color.RGBA{102, 102, 102, 255}
	slotTargetingBg = config.ProjectileColors[0]
)

// ItemSlots — колонка слотов героя: оружие, броня, аксессуар.
// Клик по броне с готовым Divine Shield включает режим щита.
type ItemSlots struct {
	LastClickTime time.Time
}

func NewItemSlots() *ItemSlots {
	return &ItemSlots{}
}

// SlotRect — прямоугольник слота на экране.
func (s *ItemSlots) SlotRect(slot defs.Slot) image.Rectangle {
	cy := slotTopY + int(slot)*slotSpacing
	return image.Rect(slotCenterX-slotSize/2, cy-slotSize/2, slotCenterX+slotSize/2, cy+slotSize/2)
}

// SlotAt возвращает слот под курсором.
func (s *ItemSlots) SlotAt(x, y int) (defs.Slot, bool) {
	for _, slot := range []defs.Slot{defs.SlotWeapon, defs.SlotArmor, defs.SlotAccessory} {
		if image.Pt(x, y).In(s.SlotRect(slot)) {
			return slot, true
		}
	}
	return 0, false
}

// HandleClick запоминает время клика для анимации.
func (s *ItemSlots) HandleClick() {
	s.LastClickTime = time.Now()
}

// slotCaption — первое слово названия предмета либо буква слота.
func slotCaption(slot defs.Slot, itemName string) string {
	if itemName == "" {
		return slotLabels[slot]
	}
	return strings.Fields(itemName)[0]
}

// Draw отрисовывает слоты.
func (s *ItemSlots) Draw(screen *ebiten.Image, face font.Face, hero app.HeroView, targeting bool) {
	names := [...]string{hero.Weapon, hero.Armor, hero.Accessory}
	elapsed := time.Since(s.LastClickTime).Seconds()
	pulse := float32(1.0 + 0.3*math.Exp(-elapsed*8))

	for i, name := range names {
		slot := defs.Slot(i)
		r := s.SlotRect(slot)
		bg, border, fg := slotEmptyBg, slotEmptyBorder, color.Color(slotEmptyText)
		if name != "" {
			bg, border, fg = slotFilledBg, config.GoldColor, config.GoldColor
			if targeting && slot == defs.SlotArmor {
				bg = slotTargetingBg
			}
		}
		drawPanel(screen, r, bg, border)

		center := r.Min.Add(r.Max).Div(2)
		if slot == defs.SlotArmor && name != "" {
			// Перезарядка щита: кольцо сжимается к нулю, готовый щит пульсирует
			radius := float32(slotSize/2 + 4)
			ringColor := config.HPBarMid
			if hero.ShieldReady {
				radius *= pulse
				ringColor = config.GoldColor
			} else {
				radius *= float32(hero.ItemCooldown / config.ShieldItemCooldown)
			}
			vector.StrokeCircle(screen, float32(center.X), float32(center.Y), radius, 1, ringColor, true)
		}
		drawTextCentered(screen, slotCaption(slot, name), face, center.X, center.Y, fg)
	}
}
