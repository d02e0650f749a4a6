// internal/system/visual_effect.go
package system

import (
	"image/color"

	"go-lane-skirmish/internal/component"
	"go-lane-skirmish/internal/config"
	"go-lane-skirmish/internal/entity"
)

// EffectsSystem управляет визуальными подсказками: всплывающим текстом и лучами.
// Симуляция только создаёт их, отрисовка читает.
type EffectsSystem struct {
	ecs *entity.ECS
}

// NewEffectsSystem создает новую систему визуальных эффектов.
func NewEffectsSystem(ecs *entity.ECS) *EffectsSystem {
	return &EffectsSystem{ecs: ecs}
}

// AddFloatingText добавляет всплывающую надпись в точке (x, y).
func (s *EffectsSystem) AddFloatingText(x, y float64, text string, c color.RGBA) {
	s.ecs.Texts = append(s.ecs.Texts, &component.FloatingText{
		X:           x,
		Y:           y,
		Text:        text,
		Color:       c,
		Duration:    config.FloatingTextDuration,
		MaxDuration: config.FloatingTextDuration,
	})
}

// AddBeam добавляет луч от (x1, y1) до (x2, y2).
func (s *EffectsSystem) AddBeam(x1, y1, x2, y2 float64, c color.RGBA) {
	s.ecs.Beams = append(s.ecs.Beams, &component.Beam{
		FromX:       x1,
		FromY:       y1,
		ToX:         x2,
		ToY:         y2,
		Color:       c,
		Duration:    config.BeamDuration,
		MaxDuration: config.BeamDuration,
	})
}

// Update старит эффекты и удаляет истёкшие.
func (s *EffectsSystem) Update(deltaTime float64) {
	texts := s.ecs.Texts[:0]
	for _, ft := range s.ecs.Texts {
		ft.Duration -= deltaTime
		ft.Y -= config.FloatingTextRiseSpeed * deltaTime
		if ft.Duration > 0 {
			texts = append(texts, ft)
		}
	}
	s.ecs.Texts = texts

	beams := s.ecs.Beams[:0]
	for _, b := range s.ecs.Beams {
		b.Duration -= deltaTime
		if b.Duration > 0 {
			beams = append(beams, b)
		}
	}
	s.ecs.Beams = beams
}
