// internal/component/projectile.go
package component

import "go-lane-skirmish/internal/types"

// Projectile представляет летящий снаряд с одной назначенной целью.
type Projectile struct {
	AttackerID types.EntityID
	TargetID   types.EntityID
	Team       types.Team
	StartX     float64
	StartY     float64
	Damage     int
	Speed      float64
	Progress   float64 // [0,1] вдоль линии старт → текущая позиция цели
	ArcHeight  float64
	LifeTime   float64
	// AttackNumber — номер атаки героя, выпустившей снаряд (для эффектов «каждая N-я атака»).
	AttackNumber int
}
