// component/movement.go
package component

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Velocity — скорость в пикселях в секунду
type Velocity struct {
	X, Y float64
}
