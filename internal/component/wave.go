package component

// WaveClock — номер текущей волны и время с момента её появления.
type WaveClock struct {
	Number int
	Timer  float64
}
