// pkg/render/color.go
package render

import (
	"image/color"

	"go-lane-skirmish/internal/config"
	"go-lane-skirmish/internal/types"
)

// FieldColors holds the colours of the static playfield background.
type FieldColors struct {
	BackgroundColor color.RGBA
	LaneColor       color.RGBA
	BaseColors      [2]color.RGBA
	StrokeWidth     float32
}

// DefaultFieldColors derives the field palette from the config colours.
func DefaultFieldColors() FieldColors {
	return FieldColors{
		BackgroundColor: config.BackgroundColor,
		LaneColor:       color.RGBA{34, 34, 34, 255},
		BaseColors:      [2]color.RGBA{DarkenColor(config.HeroColors[0]), DarkenColor(config.HeroColors[1])},
		StrokeWidth:     2,
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha scales a colour's opacity by alpha in [0,1]. Colours are premultiplied.
func WithAlpha(c color.RGBA, alpha float64) color.RGBA {
	if alpha <= 0 {
		return color.RGBA{}
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

// HealthColor picks the hp bar colour: green above half, orange above a quarter, red below.
func HealthColor(ratio float64) color.RGBA {
	switch {
	case ratio > 0.5:
		return config.HPBarHigh
	case ratio > 0.25:
		return config.HPBarMid
	default:
		return config.HPBarLow
	}
}

// UnitColor returns the body colour for a unit of the given team index.
func UnitColor(kind string, ranged bool, team int) color.RGBA {
	switch {
	case kind == types.KindHero.String():
		return config.HeroColors[team]
	case ranged:
		return config.RangedCreepColors[team]
	default:
		return config.MeleeCreepColors[team]
	}
}

// TeamIndex maps the telemetry team label to a palette index.
func TeamIndex(team string) int {
	if team == types.TeamB.String() {
		return 1
	}
	return 0
}
