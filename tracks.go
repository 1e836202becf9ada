package sway

import (
	"fmt"
	"time"
)

// Tracks runs several tweenables in parallel on the same target. Every tick
// is delivered to every track; tracks that already completed ignore it. The
// group completes when the longest track does.
type Tracks[T any] struct {
	tracks    []Tweenable[T]
	duration  time.Duration
	elapsed   time.Duration
	completed int

	event    bool
	userData uint64
}

// NewTracks creates a parallel group.
func NewTracks[T any](tracks ...Tweenable[T]) (*Tracks[T], error) {
	if len(tracks) == 0 {
		return nil, fmt.Errorf("sway: new tracks: %w", ErrEmpty)
	}
	g := &Tracks[T]{tracks: make([]Tweenable[T], len(tracks))}
	for i, tr := range tracks {
		if tr == nil {
			return nil, fmt.Errorf("sway: new tracks: track %d: %w", i, ErrNilTweenable)
		}
		g.tracks[i] = tr
		if d := tr.TotalDuration(); d > g.duration {
			g.duration = d
		}
	}
	return g, nil
}

// WithCompletedEvent makes the group emit a TweenCompleted carrying userData
// once every track has completed.
func (g *Tracks[T]) WithCompletedEvent(userData uint64) *Tracks[T] {
	g.event = true
	g.userData = userData
	return g
}

// Then returns a Sequence playing g and then next.
func (g *Tracks[T]) Then(next Tweenable[T]) *Sequence[T] {
	return Must(NewSequence[T](g, next))
}

// Len returns the number of tracks.
func (g *Tracks[T]) Len() int { return len(g.tracks) }

// Track returns the i-th track.
func (g *Tracks[T]) Track(i int) Tweenable[T] { return g.tracks[i] }

func (g *Tracks[T]) Duration() time.Duration      { return g.duration }
func (g *Tracks[T]) TotalDuration() time.Duration { return g.duration }
func (g *Tracks[T]) Elapsed() time.Duration       { return g.elapsed }
func (g *Tracks[T]) TimesCompleted() int          { return g.completed }

func (g *Tracks[T]) Progress() float32 {
	if g.duration == Forever {
		var p float32
		for _, tr := range g.tracks {
			if tp := tr.Progress(); tp > p {
				p = tp
			}
		}
		return p
	}
	return ratioOf(g.elapsed, g.duration)
}

// Tick implements Tweenable.
func (g *Tracks[T]) Tick(delta time.Duration, target *T, events *[]TweenCompleted) TweenState {
	if g.completed > 0 {
		return Completed
	}
	if delta < 0 {
		delta = 0
	}
	done := true
	for _, tr := range g.tracks {
		if tr.Tick(delta, target, events) == Active {
			done = false
		}
	}
	g.elapsed = addDurations(g.elapsed, delta)
	if g.elapsed > g.duration {
		g.elapsed = g.duration
	}
	if !done {
		return Active
	}
	g.completed = 1
	emit(events, g.event, g.userData, g.completed)
	return Completed
}

// Reset rewinds every track.
func (g *Tracks[T]) Reset() {
	for _, tr := range g.tracks {
		tr.Reset()
	}
	g.elapsed = 0
	g.completed = 0
}
