// internal/tui/viewer.go
package tui

import (
	"fmt"
	"strings"
	"time"

	"go-lane-skirmish/internal/app"
	"go-lane-skirmish/internal/config"
	"go-lane-skirmish/internal/defs"
	"go-lane-skirmish/internal/types"

	"github.com/gdamore/tcell/v2"
)

const (
	frameInterval = 16 * time.Millisecond // ~60 FPS
	statusRows    = 2
	barrierDots   = 120
)

var (
	teamStyles = [2]tcell.Style{
		tcell.StyleDefault.Foreground(tcell.ColorDodgerBlue),
		tcell.StyleDefault.Foreground(tcell.ColorIndianRed),
	}
	goldStyle   = tcell.StyleDefault.Foreground(tcell.ColorGold)
	dimStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkSlateGray)
)

// Viewer — терминальный фронт симуляции: поле в клетках, клики мышью, магазин с клавиатуры.
type Viewer struct {
	screen  tcell.Screen
	game    *app.Game
	cues    *Cues
	message string

	// OnTick получает снимок после каждого Advance.
	OnTick func(*app.Snapshot)
}

func NewViewer(screen tcell.Screen, game *app.Game, cues *Cues) *Viewer {
	screen.EnableMouse()
	return &Viewer{screen: screen, game: game, cues: cues}
}

// fieldRows — строки, отданные под поле.
func fieldRows(rows int) int {
	if rows <= statusRows {
		return 1
	}
	return rows - statusRows
}

// cellFor переводит координаты поля в клетку терминала.
func cellFor(x, y float64, cols, rows int) (int, int, bool) {
	fr := fieldRows(rows)
	cx := int(x / config.ScreenWidth * float64(cols))
	cy := int(y / config.ScreenHeight * float64(fr))
	if cx < 0 || cy < 0 || cx >= cols || cy >= fr {
		return 0, 0, false
	}
	return cx, cy, true
}

// fieldPoint — центр клетки в координатах поля.
func fieldPoint(cx, cy, cols, rows int) (float64, float64) {
	fr := fieldRows(rows)
	return (float64(cx) + 0.5) * config.ScreenWidth / float64(cols),
		(float64(cy) + 0.5) * config.ScreenHeight / float64(fr)
}

// unitRune — буква юнита: H герой, m ближник, r дальник. Мёртвые строчные/точка.
func unitRune(u app.UnitView) rune {
	switch {
	case u.HP <= 0:
		return 'x'
	case u.Kind == types.KindHero.String():
		return 'H'
	case u.Ranged:
		return 'r'
	default:
		return 'm'
	}
}

func teamStyle(team string) tcell.Style {
	if team == types.TeamB.String() {
		return teamStyles[1]
	}
	return teamStyles[0]
}

// Run крутит цикл до выхода по q/Ctrl-C. dt берётся по настенным часам.
func (v *Viewer) Run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !v.handleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			deltaTime := now.Sub(last).Seconds()
			if deltaTime > config.MaxDeltaTime {
				deltaTime = config.MaxDeltaTime
			}
			last = now
			v.Step(deltaTime)
		}
	}
}

// Step — один кадр: тик симуляции, звук, отрисовка.
func (v *Viewer) Step(deltaTime float64) {
	v.game.Advance(deltaTime)
	snap := v.game.Snapshot()
	if v.cues != nil {
		v.cues.Play(snap.Events)
	}
	if v.OnTick != nil {
		v.OnTick(snap)
	}
	v.Draw(snap)
}

// handleEvent возвращает false, когда пора выходить.
func (v *Viewer) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.handleKey(ev)
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 && !v.game.ShopOpen() {
			cols, rows := v.screen.Size()
			cx, cy := ev.Position()
			x, y := fieldPoint(cx, cy, cols, rows)
			v.clickNear(x, y, float64(config.ScreenWidth)/float64(cols))
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

// clickNear пробует центр клетки, затем её левый и правый край.
func (v *Viewer) clickNear(x, y, cellWidth float64) {
	for _, dx := range []float64{0, -cellWidth / 2, cellWidth / 2} {
		if id := v.game.ClickAt(x+dx, y); id != 0 {
			return
		}
	}
}

func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEscape:
		if v.game.ShopOpen() {
			v.game.SetShopOpen(false)
			return true
		}
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	switch r := ev.Rune(); {
	case r == 'q':
		return false
	case r == 'b':
		v.game.ToggleShop()
	case r == 't':
		if !v.game.ToggleTargeting() {
			v.message = "shield not ready"
		}
	case r >= '1' && r <= '9' && v.game.ShopOpen():
		idx := int(r - '1')
		if idx >= len(defs.ItemLibrary) {
			return true
		}
		if err := v.game.Purchase(defs.ItemLibrary[idx].ID); err != nil {
			v.message = err.Error()
		} else {
			v.message = "bought " + defs.ItemLibrary[idx].Name
		}
	}
	return true
}

func (v *Viewer) putString(x, y int, s string, style tcell.Style) {
	for i, r := range s {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

// Draw рисует снимок.
func (v *Viewer) Draw(snap *app.Snapshot) {
	v.screen.Clear()
	cols, rows := v.screen.Size()

	for _, b := range snap.Barriers {
		if b.HitsRemaining <= 0 {
			continue
		}
		for i := 0; i <= barrierDots; i++ {
			t := float64(i) / barrierDots
			if cx, cy, ok := cellFor(b.X1+(b.X2-b.X1)*t, b.Y1+(b.Y2-b.Y1)*t, cols, rows); ok {
				v.screen.SetContent(cx, cy, '.', nil, teamStyle(b.Team))
			}
		}
	}
	for _, p := range snap.Projectiles {
		if cx, cy, ok := cellFor(p.X, p.Y, cols, rows); ok {
			v.screen.SetContent(cx, cy, '*', nil, teamStyle(p.Team))
		}
	}
	for _, u := range snap.Units {
		if cx, cy, ok := cellFor(u.X, u.Y, cols, rows); ok {
			style := teamStyle(u.Team)
			if u.Shielded {
				style = style.Bold(true).Underline(true)
			}
			v.screen.SetContent(cx, cy, unitRune(u), nil, style)
		}
	}
	for _, ft := range snap.Texts {
		if cx, cy, ok := cellFor(ft.X, ft.Y, cols, rows); ok {
			v.putString(cx-len(ft.Text)/2, cy, ft.Text, goldStyle)
		}
	}

	if snap.ShopOpen {
		v.drawShop(snap)
	}
	v.drawStatus(snap, cols, rows)
	v.screen.Show()
}

func statusLine(snap *app.Snapshot) string {
	items := []string{}
	for _, name := range []string{snap.Hero.Weapon, snap.Hero.Armor, snap.Hero.Accessory} {
		if name != "" {
			items = append(items, name)
		}
	}
	line := fmt.Sprintf(" Wave %d (%.0fs) | Gold %d | LH %d | D %d",
		snap.Wave, snap.NextWaveIn, snap.Hero.Gold, snap.LastHits, snap.Denies)
	if len(items) > 0 {
		line += " | " + strings.Join(items, ", ")
	}
	if snap.Targeting {
		line += " | TARGETING"
	}
	return line
}

func (v *Viewer) drawStatus(snap *app.Snapshot, cols, rows int) {
	y := fieldRows(rows)
	line := statusLine(snap)
	for x := 0; x < cols; x++ {
		v.screen.SetContent(x, y, ' ', nil, statusStyle)
	}
	v.putString(0, y, line, statusStyle)
	help := " click: attack | b: shop | t: shield | q: quit"
	if v.message != "" {
		help = " " + v.message
	}
	v.putString(0, y+1, help, dimStyle)
}

func (v *Viewer) drawShop(snap *app.Snapshot) {
	v.putString(2, 1, fmt.Sprintf("SHOP (%d gold) - press 1-%d to buy, b to close", snap.Hero.Gold, len(defs.ItemLibrary)), goldStyle)
	for i, item := range defs.ItemLibrary {
		style := tcell.StyleDefault
		cost := v.game.Balance.ItemCost(item)
		if cost > snap.Hero.Gold {
			style = dimStyle
		}
		v.putString(4, 3+i, fmt.Sprintf("%d. %-16s %4dg  %s", i+1, item.Name, cost, item.Description), style)
	}
}
