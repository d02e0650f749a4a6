package component

import "go-lane-skirmish/internal/types"

// Barrier — статичный барьер на линии, убивающий вражеских крипов при пересечении.
type Barrier struct {
	Team          types.Team
	X1, Y1        float64
	X2, Y2        float64
	HitsRemaining int
}

// Active reports whether the barrier still blocks.
func (b *Barrier) Active() bool {
	return b.HitsRemaining > 0
}
