package sway

import (
	"fmt"
	"time"
)

// Delay is a Tweenable that only lets time pass. Use it to put gaps in a
// Sequence.
type Delay[T any] struct {
	duration  time.Duration
	elapsed   time.Duration
	completed int

	event    bool
	userData uint64
}

// NewDelay creates a delay of duration d.
func NewDelay[T any](d time.Duration) (*Delay[T], error) {
	if d <= 0 {
		return nil, fmt.Errorf("sway: new delay: %w (got %v)", ErrInvalidDuration, d)
	}
	return &Delay[T]{duration: d}, nil
}

// WithCompletedEvent makes the delay emit a TweenCompleted carrying userData
// when it expires.
func (d *Delay[T]) WithCompletedEvent(userData uint64) *Delay[T] {
	d.event = true
	d.userData = userData
	return d
}

// Then returns a Sequence playing d and then next.
func (d *Delay[T]) Then(next Tweenable[T]) *Sequence[T] {
	return Must(NewSequence[T](d, next))
}

func (d *Delay[T]) Duration() time.Duration      { return d.duration }
func (d *Delay[T]) TotalDuration() time.Duration { return d.duration }
func (d *Delay[T]) Elapsed() time.Duration       { return d.elapsed }
func (d *Delay[T]) TimesCompleted() int          { return d.completed }
func (d *Delay[T]) Progress() float32            { return ratioOf(d.elapsed, d.duration) }

// Tick implements Tweenable. The target is never touched.
func (d *Delay[T]) Tick(delta time.Duration, _ *T, events *[]TweenCompleted) TweenState {
	if d.elapsed >= d.duration {
		return Completed
	}
	if delta > 0 {
		d.elapsed = addDurations(d.elapsed, delta)
	}
	if d.elapsed < d.duration {
		return Active
	}
	d.elapsed = d.duration
	d.completed = 1
	emit(events, d.event, d.userData, d.completed)
	return Completed
}

// Reset rewinds the delay.
func (d *Delay[T]) Reset() {
	d.elapsed = 0
	d.completed = 0
}
