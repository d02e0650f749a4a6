package component

import "image/color"

// FloatingText — всплывающая надпись («+42», «CRIT!», «BLOCKED!»).
type FloatingText struct {
	X, Y        float64
	Text        string
	Color       color.RGBA
	Duration    float64 // сколько осталось
	MaxDuration float64
}

// Beam представляет собой визуальный эффект луча: лазер или всплеск сплэша.
type Beam struct {
	FromX, FromY float64
	ToX, ToY     float64
	Color        color.RGBA
	Duration     float64
	MaxDuration  float64
}
