// internal/ui/shop_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"go-lane-skirmish/internal/app"
	"go-lane-skirmish/internal/config"
	"go-lane-skirmish/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	shopTitleY      = 20
	shopFirstRowY   = 65
	shopRowSpacing  = 55
	shopButtonH     = 45
	messageDuration = 2 * time.Second
)

var (
	shopOverlay      = color.RGBA{0, 0, 0, 217}
	shopButtonBg     = color.RGBA{74, 74, 74, 255}
	shopButtonBorder = color.RGBA{102, 102, 102, 255}
	shopOwnedBorder  = config.GoldColor
	shopDescColor    = color.RGBA{204, 204, 204, 255}
	shopDimColor     = color.RGBA{120, 120, 120, 255}
)

type itemButton struct {
	item defs.ItemDefinition
	rect image.Rectangle
}

// ShopPanel — окно магазина в две колонки по каталогу предметов.
type ShopPanel struct {
	balance *defs.Balance
	buttons []itemButton
	Close   *Button

	message     string
	messageTime time.Time
}

// NewShopPanel раскладывает кнопки предметов в порядке каталога.
func NewShopPanel(balance *defs.Balance) *ShopPanel {
	p := &ShopPanel{
		balance: balance,
		Close:   NewButton(config.ScreenWidth/2, config.ScreenHeight-30, 90, 30, "Close"),
	}
	width := float64(config.ScreenWidth)
	btnW := int(width * 0.4)
	for i, item := range defs.ItemLibrary {
		col := i % 2
		row := i / 2
		cx := int(width*0.28 + float64(col)*width*0.44)
		cy := shopFirstRowY + row*shopRowSpacing
		p.buttons = append(p.buttons, itemButton{
			item: item,
			rect: image.Rect(cx-btnW/2, cy-shopButtonH/2, cx+btnW/2, cy+shopButtonH/2),
		})
	}
	return p
}

// ItemAt возвращает предмет под курсором.
func (p *ShopPanel) ItemAt(x, y int) (defs.ItemID, bool) {
	pt := image.Pt(x, y)
	for _, b := range p.buttons {
		if pt.In(b.rect) {
			return b.item.ID, true
		}
	}
	return defs.ItemNone, false
}

// SetMessage показывает строку состояния (например, причину отказа в покупке).
func (p *ShopPanel) SetMessage(msg string) {
	p.message = msg
	p.messageTime = time.Now()
}

// Message — текущая строка состояния, пустая после messageDuration.
func (p *ShopPanel) Message() string {
	if time.Since(p.messageTime) > messageDuration {
		return ""
	}
	return p.message
}

// Draw отрисовывает магазин поверх поля.
func (p *ShopPanel) Draw(screen *ebiten.Image, face font.Face, snap *app.Snapshot) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, shopOverlay, false)
	drawTextCentered(screen, fmt.Sprintf("Shop  (%d gold)", snap.Hero.Gold), face, config.ScreenWidth/2, shopTitleY, config.GoldColor)

	owned := map[string]bool{
		snap.Hero.Weapon:    true,
		snap.Hero.Armor:     true,
		snap.Hero.Accessory: true,
	}
	lineHeight := face.Metrics().Height.Ceil()
	for _, b := range p.buttons {
		border := shopButtonBorder
		if owned[b.item.Name] {
			border = shopOwnedBorder
		}
		drawPanel(screen, b.rect, shopButtonBg, border)

		cost := p.balance.ItemCost(b.item)
		titleColor := color.Color(config.GoldColor)
		if cost > snap.Hero.Gold && !owned[b.item.Name] {
			titleColor = shopDimColor
		}
		x := b.rect.Min.X + 8
		y := b.rect.Min.Y + lineHeight + 2
		text.Draw(screen, fmt.Sprintf("%s - %dg (%s)", b.item.Name, cost, b.item.Slot), face, x, y, titleColor)
		text.Draw(screen, b.item.Description, face, x, y+lineHeight+4, shopDescColor)
	}

	p.Close.Draw(screen, face)
	if msg := p.Message(); msg != "" {
		drawTextCentered(screen, msg, face, config.ScreenWidth/2, config.ScreenHeight-60, config.CritColor)
	}
}
