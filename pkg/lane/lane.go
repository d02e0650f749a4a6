// pkg/lane/lane.go
package lane

import (
	"math"

	"go-lane-skirmish/internal/config"
	"go-lane-skirmish/internal/types"
	"go-lane-skirmish/internal/utils"
)

// Point — точка на поле в пикселях.
type Point struct {
	X, Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p * k.
func (p Point) Scale(k float64) Point { return Point{p.X * k, p.Y * k} }

// Len returns the euclidean length of p.
func (p Point) Len() float64 { return math.Hypot(p.X, p.Y) }

// Distance между двумя точками.
func Distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}

// EdgeDistance — расстояние между краями двух кругов (может быть отрицательным).
func EdgeDistance(ax, ay, ar, bx, by, br float64) float64 {
	return Distance(ax, ay, bx, by) - ar - br
}

// SpawnPos — точка появления крипов команды (за пределами видимого поля).
func SpawnPos(team types.Team) Point {
	if team == types.TeamA {
		return Point{X: config.ScreenWidth * -0.15, Y: config.ScreenHeight * 1.15}
	}
	return Point{X: config.ScreenWidth * 1.15, Y: config.ScreenHeight * -0.15}
}

// TargetPos — конечная точка линии для команды (база противника).
func TargetPos(team types.Team) Point {
	if team == types.TeamA {
		return Point{X: config.ScreenWidth * 0.85, Y: config.ScreenHeight * 0.15}
	}
	return Point{X: config.ScreenWidth * 0.15, Y: config.ScreenHeight * 0.85}
}

// Direction — единичный вектор от точки появления к цели линии.
func Direction(team types.Team) Point {
	d := TargetPos(team).Sub(SpawnPos(team))
	return d.Scale(1 / d.Len())
}

// Perpendicular — единичный вектор поперёк линии, (-dy, dx).
func Perpendicular(team types.Team) Point {
	d := Direction(team)
	return Point{X: -d.Y, Y: d.X}
}

// Offset смещает точку поперёк линии на offset пикселей.
func Offset(team types.Team, p Point, offset float64) Point {
	return p.Add(Perpendicular(team).Scale(offset))
}

// Goal — цель марша крипа: точка базы со смещением laneOffset поперёк линии,
// чтобы крипы одной волны не шли в одну точку.
func Goal(team types.Team, laneOffset float64) Point {
	return Offset(team, TargetPos(team), laneOffset)
}

// InBounds reports whether the point lies inside the visible playfield.
func InBounds(x, y float64) bool {
	return x >= 0 && x <= config.ScreenWidth && y >= 0 && y <= config.ScreenHeight
}

// Side — знак векторного произведения (b-a)×(p-a): по какую сторону прямой ab лежит p.
func Side(ax, ay, bx, by, px, py float64) float64 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// Crosses reports whether the move from prev to cur crosses segment ab.
// The sign of Side must flip and the crossing point must fall within the segment.
func Crosses(ax, ay, bx, by float64, prev, cur Point) bool {
	s1 := Side(ax, ay, bx, by, prev.X, prev.Y)
	s2 := Side(ax, ay, bx, by, cur.X, cur.Y)
	if s1*s2 >= 0 {
		return false
	}
	// Параметр пересечения вдоль сегмента
	t := s1 / (s1 - s2)
	ix := utils.Lerp(prev.X, cur.X, t)
	iy := utils.Lerp(prev.Y, cur.Y, t)
	dx, dy := bx-ax, by-ay
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return false
	}
	u := ((ix-ax)*dx + (iy-ay)*dy) / lenSq
	return u >= 0 && u <= 1
}

// ArcPoint returns the rendered position of a projectile at progress t along
// from→to, lifted perpendicular to the line by arcHeight·sin(πt).
// Side flips the arc to the other side of the line.
func ArcPoint(from, to Point, t, arcHeight float64, side float64) Point {
	lx := utils.Lerp(from.X, to.X, t)
	ly := utils.Lerp(from.Y, to.Y, t)
	arc := arcHeight * math.Sin(t*math.Pi)
	dx := to.X - from.X
	dy := to.Y - from.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		dist = 1
	}
	return Point{
		X: lx + (-dy/dist)*arc*side,
		Y: ly + (dx/dist)*arc*side,
	}
}

// ArcSide — сторона дуги снаряда для команды.
func ArcSide(team types.Team) float64 {
	if team == types.TeamA {
		return -1
	}
	return 1
}
