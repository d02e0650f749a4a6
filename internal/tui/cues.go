// internal/tui/cues.go
package tui

import (
	"fmt"
	"sync"
	"time"

	"go-lane-skirmish/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate   = beep.SampleRate(44100)
	toneDuration = 60 * time.Millisecond
)

// tone — одна нота звукового сигнала.
type tone struct {
	freq     float64
	duration time.Duration
}

// cueTones — какие события озвучиваются и чем.
var cueTones = map[event.EventType][]tone{
	event.LastHit:        {{988, toneDuration}, {1319, toneDuration}}, // монетка
	event.Denied:         {{440, toneDuration}},
	event.CriticalStrike: {{1760, toneDuration / 2}},
	event.BarrierBlocked: {{220, 2 * toneDuration}},
	event.ShieldCast:     {{660, toneDuration}, {880, toneDuration}},
}

// Cues проигрывает короткие тоны на события тика. Без звука — молча ничего не делает.
type Cues struct {
	mu      sync.Mutex
	enabled bool
}

// NewCues инициализирует динамик. При enabled=false устройство не трогается.
func NewCues(enabled bool) (*Cues, error) {
	c := &Cues{}
	if !enabled {
		return c, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return c, fmt.Errorf("failed to init speaker: %w", err)
	}
	c.enabled = true
	return c, nil
}

// tonesFor собирает ноты для событий тика; одинаковые события звучат один раз.
func tonesFor(events []string) []tone {
	var out []tone
	seen := make(map[string]bool)
	for _, e := range events {
		if seen[e] {
			continue
		}
		seen[e] = true
		out = append(out, cueTones[event.EventType(e)]...)
	}
	return out
}

// Play озвучивает события одного тика.
func (c *Cues) Play(events []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.enabled {
		return
	}
	tones := tonesFor(events)
	if len(tones) == 0 {
		return
	}
	var seq []beep.Streamer
	for _, t := range tones {
		sine, err := generators.SineTone(sampleRate, t.freq)
		if err != nil {
			continue
		}
		seq = append(seq, beep.Take(sampleRate.N(t.duration), sine))
	}
	speaker.Play(beep.Seq(seq...))
}

func (c *Cues) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.enabled {
		speaker.Close()
		c.enabled = false
	}
}
