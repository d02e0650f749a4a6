// internal/defs/waves.go
package defs

import "go-lane-skirmish/internal/config"

// Formation описывает, кого одна команда выпускает за волну.
// Ближники встают поперёк линии через Spacing, центр строя на точке появления;
// дальники стоят на RangedBack позади и тоже растягиваются поперёк.
type Formation struct {
	Melee      int     `yaml:"melee"`
	Ranged     int     `yaml:"ranged"`
	Spacing    float64 `yaml:"spacing"`
	RangedBack float64 `yaml:"ranged_back"`
}

// DefaultFormation — три ближника и один дальник.
var DefaultFormation = Formation{
	Melee:      config.MeleePerWave,
	Ranged:     1,
	Spacing:    config.CreepSpacing,
	RangedBack: config.RangedBackOffset,
}

// RowOffsets — смещения поперёк линии для n юнитов одного ряда: для трёх это -1, 0, +1 шага.
func (f Formation) RowOffsets(n int) []float64 {
	offsets := make([]float64, n)
	for i := range offsets {
		offsets[i] = (float64(i) - float64(n-1)/2) * f.Spacing
	}
	return offsets
}

// Size — число крипов в формации.
func (f Formation) Size() int {
	return f.Melee + f.Ranged
}
