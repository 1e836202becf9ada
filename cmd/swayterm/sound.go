package main

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	chimeTime  = 40 * time.Millisecond
	baseFreq   = 440.0
)

// chime plays a short tone per completion event, pitched by row.
type chime struct {
	enabled bool
}

func newChime(mute bool) *chime {
	c := &chime{}
	if mute {
		return c
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		// Non-fatal, the demo runs silently.
		return c
	}
	c.enabled = true
	return c
}

func chimeFreq(row int) float64 {
	return baseFreq * math.Pow(2, float64(row%24)/12)
}

func (c *chime) play(row int) {
	if !c.enabled {
		return
	}
	sine, err := generators.SineTone(sampleRate, chimeFreq(row))
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(chimeTime), sine))
}

func (c *chime) close() {
	if c.enabled {
		speaker.Close()
	}
}
