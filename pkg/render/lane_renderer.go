// pkg/render/lane_renderer.go
package render

import (
	"image/color"

	"go-lane-skirmish/internal/app"
	"go-lane-skirmish/internal/config"
	"go-lane-skirmish/internal/types"
	"go-lane-skirmish/pkg/lane"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	laneWidth     = 90
	hpBarHeight   = 4
	hpBarOffset   = 6
	shieldPadding = 4
	beamWidth     = 3
	barrierWidth  = 3
)

// LaneRenderer рисует поле и телеметрию одного тика.
type LaneRenderer struct {
	colors   FieldColors
	fontFace font.Face
	mapImage *ebiten.Image // предрендеренный задник
}

func NewLaneRenderer(colors FieldColors, face font.Face) *LaneRenderer {
	r := &LaneRenderer{
		colors:   colors,
		fontFace: face,
		mapImage: ebiten.NewImage(config.ScreenWidth, config.ScreenHeight),
	}
	r.RenderMapImage()
	return r
}

// RenderMapImage создаёт предрендеренное изображение задника: фон, диагональ линии, базы.
func (r *LaneRenderer) RenderMapImage() {
	r.mapImage.Fill(r.colors.BackgroundColor)

	from, to := lane.SpawnPos(types.TeamA), lane.SpawnPos(types.TeamB)
	vector.StrokeLine(r.mapImage, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), laneWidth, r.colors.LaneColor, true)

	for _, team := range []types.Team{types.TeamA, types.TeamB} {
		base := lane.TargetPos(team.Enemy())
		vector.StrokeCircle(r.mapImage, float32(base.X), float32(base.Y), config.GoalReachDist, r.colors.StrokeWidth, r.colors.BaseColors[team], true)
	}
}

// Draw рисует кадр по снимку.
func (r *LaneRenderer) Draw(screen *ebiten.Image, snap *app.Snapshot) {
	screen.DrawImage(r.mapImage, nil)

	for _, b := range snap.Barriers {
		if b.HitsRemaining <= 0 {
			continue
		}
		clr := WithAlpha(config.BarrierColors[TeamIndex(b.Team)], b.Opacity())
		vector.StrokeLine(screen, float32(b.X1), float32(b.Y1), float32(b.X2), float32(b.Y2), barrierWidth, clr, true)
	}

	for _, u := range snap.Units {
		r.drawUnit(screen, u)
	}

	for _, p := range snap.Projectiles {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), config.ProjectileRadius, config.ProjectileColors[TeamIndex(p.Team)], true)
	}

	for _, b := range snap.Beams {
		vector.StrokeLine(screen, float32(b.FromX), float32(b.FromY), float32(b.ToX), float32(b.ToY), beamWidth, WithAlpha(b.Color, b.Alpha), true)
	}

	for _, ft := range snap.Texts {
		bounds := text.BoundString(r.fontFace, ft.Text)
		text.Draw(screen, ft.Text, r.fontFace, int(ft.X)-bounds.Dx()/2, int(ft.Y), WithAlpha(ft.Color, ft.Alpha))
	}
}

func (r *LaneRenderer) drawUnit(screen *ebiten.Image, u app.UnitView) {
	x, y, radius := float32(u.X), float32(u.Y), float32(u.Radius)
	team := TeamIndex(u.Team)

	body := UnitColor(u.Kind, u.Ranged, team)
	if u.HP <= 0 {
		// Павший герой лежит тёмным кругом
		body = DarkenColor(DarkenColor(body))
	}
	vector.DrawFilledCircle(screen, x, y, radius, body, true)
	if u.State == types.StateAttacking.String() {
		vector.StrokeCircle(screen, x, y, radius, 1, color.White, true)
	}
	if u.Shielded {
		vector.StrokeCircle(screen, x, y, radius+shieldPadding, 2, config.GoldColor, true)
	}

	// HP бар над юнитом
	ratio := u.HealthRatio()
	barX, barY := x-radius, y-radius-hpBarOffset-hpBarHeight/2
	vector.DrawFilledRect(screen, barX, barY, 2*radius, hpBarHeight, config.HPBarBackground, false)
	if ratio > 0 {
		vector.DrawFilledRect(screen, barX, barY, 2*radius*float32(ratio), hpBarHeight, HealthColor(ratio), false)
	}
}
