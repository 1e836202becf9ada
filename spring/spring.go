// Package spring builds easing curves from a damped harmonic oscillator.
//
// The spring starts at 0 and is pulled toward 1 over one tween cycle. Low
// damping overshoots and wobbles; a damping ratio of 1 or more settles
// without overshoot:
//
//	wobbly := sway.Must(spring.NewEasing(12, 0.3))
//	tw, err := sway.NewTween(wobbly, sway.Once, time.Second, lens)
package spring

import (
	"fmt"

	"github.com/charmbracelet/harmonica"
)

const samples = 240

// Easing is a spring response sampled over one cycle.
type Easing struct {
	frequency float64
	damping   float64
	curve     [samples + 1]float32
}

// NewEasing simulates a spring with the given angular frequency (per cycle)
// and damping ratio. The frequency must be positive and the damping must not
// be negative.
func NewEasing(frequency, damping float64) (*Easing, error) {
	if frequency <= 0 {
		return nil, fmt.Errorf("spring: frequency must be positive, got %v", frequency)
	}
	if damping < 0 {
		return nil, fmt.Errorf("spring: damping must not be negative, got %v", damping)
	}

	e := &Easing{frequency: frequency, damping: damping}
	s := harmonica.NewSpring(1.0/samples, frequency, damping)
	var pos, vel float64
	for i := 1; i <= samples; i++ {
		pos, vel = s.Update(pos, vel, 1)
		e.curve[i] = float32(pos)
	}
	return e, nil
}

// Frequency returns the angular frequency the curve was built with.
func (e *Easing) Frequency() float64 { return e.frequency }

// Damping returns the damping ratio the curve was built with.
func (e *Easing) Damping() float64 { return e.damping }

// Ease implements sway.Easing. Samples are interpolated linearly and the
// endpoints are pinned to 0 and 1, so a spring that has not settled by the
// end of the cycle snaps to the target.
func (e *Easing) Ease(ratio float32) float32 {
	if ratio <= 0 {
		return 0
	}
	if ratio >= 1 {
		return 1
	}
	x := ratio * samples
	i := int(x)
	frac := x - float32(i)
	return e.curve[i] + (e.curve[i+1]-e.curve[i])*frac
}
