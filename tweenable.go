package sway

import (
	"math"
	"time"
)

// Forever is the total duration of a tweenable that never completes.
const Forever = time.Duration(math.MaxInt64)

// TweenState is the outcome of a tick.
type TweenState uint8

const (
	Active    TweenState = iota // still animating
	Completed                   // reached its terminal state
)

func (s TweenState) String() string {
	if s == Completed {
		return "Completed"
	}
	return "Active"
}

// Tweenable is anything an Animator can drive: a Tween, Sequence, Tracks or
// Delay. Implementations nest freely but form a strict tree.
type Tweenable[T any] interface {
	// Duration is the length of one cycle.
	Duration() time.Duration
	// TotalDuration is the time until completion, or Forever.
	TotalDuration() time.Duration
	// Elapsed is the time consumed so far, capped at TotalDuration.
	Elapsed() time.Duration
	// Progress is Elapsed over TotalDuration, or the current cycle's
	// progress for tweenables that never complete.
	Progress() float32
	// TimesCompleted counts crossed cycle boundaries.
	TimesCompleted() int
	// Tick advances by delta, mutates target and appends any completion
	// events to events (which may be nil). Ticking a completed tweenable
	// is a no-op.
	Tick(delta time.Duration, target *T, events *[]TweenCompleted) TweenState
	// Reset rewinds to the initial state and forgets captured start values.
	Reset()
}

func addDurations(a, b time.Duration) time.Duration {
	if a == Forever || b == Forever || a > Forever-b {
		return Forever
	}
	return a + b
}

func ratioOf(elapsed, total time.Duration) float32 {
	if total <= 0 {
		return 0
	}
	r := float64(elapsed) / float64(total)
	if r > 1 {
		r = 1
	}
	return float32(r)
}
