// internal/ui/hud.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"go-lane-skirmish/internal/app"
	"go-lane-skirmish/internal/config"
	"go-lane-skirmish/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// Action — что HUD просит сделать в ответ на клик.
type Action int

const (
	ActionNone Action = iota
	ActionToggleShop
	ActionToggleTargeting
)

var statsColor = color.RGBA{204, 204, 204, 255}

// HUD собирает виджеты поверх поля: золото, LH/DN, волна, слоты предметов.
type HUD struct {
	face  font.Face
	Slots *ItemSlots
	Wave  *WaveIndicator
	Info  *InfoPanel
}

func NewHUD(face font.Face) *HUD {
	return &HUD{
		face:  face,
		Slots: NewItemSlots(),
		Wave:  NewWaveIndicator(config.ScreenWidth/2, 20),
		Info:  NewInfoPanel(face),
	}
}

// goldRect — область золота в правом нижнем углу; клик по ней открывает магазин.
func (h *HUD) goldRect(gold int) image.Rectangle {
	bounds := text.BoundString(h.face, strconv.Itoa(gold))
	right := config.ScreenWidth - 20
	bottom := config.ScreenHeight - 12
	return image.Rect(right-bounds.Dx()-16, bottom-bounds.Dy()-8, right, bottom)
}

// HandleClick переводит клик в действие HUD. ActionNone — клик ушёл на поле.
func (h *HUD) HandleClick(x, y int, snap *app.Snapshot) (Action, bool) {
	if image.Pt(x, y).In(h.goldRect(snap.Hero.Gold)) {
		return ActionToggleShop, true
	}
	if slot, ok := h.Slots.SlotAt(x, y); ok {
		h.Slots.HandleClick()
		if slot == defs.SlotArmor && snap.Hero.ShieldReady {
			return ActionToggleTargeting, true
		}
		return ActionNone, true
	}
	return ActionNone, false
}

func (h *HUD) Update(snap *app.Snapshot) {
	h.Info.Update(snap)
}

func (h *HUD) Draw(screen *ebiten.Image, snap *app.Snapshot) {
	gold := h.goldRect(snap.Hero.Gold)
	text.Draw(screen, strconv.Itoa(snap.Hero.Gold), h.face, gold.Min.X+8, gold.Max.Y-6, config.GoldColor)

	stats := fmt.Sprintf("LH: %d | D: %d", snap.LastHits, snap.Denies)
	bounds := text.BoundString(h.face, stats)
	text.Draw(screen, stats, h.face, config.ScreenWidth-20-bounds.Dx(), gold.Min.Y-8, statsColor)

	h.Wave.Draw(screen, h.face, snap.Wave, snap.NextWaveIn)
	h.Slots.Draw(screen, h.face, snap.Hero, snap.Targeting)
	h.Info.Draw(screen, snap)

	if snap.Targeting {
		drawTextCentered(screen, "Click a friendly unit to shield it", h.face, config.ScreenWidth/2, 40, config.ProjectileColors[0])
	}
}
