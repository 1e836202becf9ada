package sway

import (
	"fmt"
	"time"
)

// Sequence plays its steps one after another. A single tick may complete
// several short steps: time left over when a step completes is carried into
// the next step in the same tick, so splitting a delta across ticks never
// changes the outcome.
type Sequence[T any] struct {
	steps     []Tweenable[T]
	index     int
	duration  time.Duration
	elapsed   time.Duration
	completed int

	event    bool
	userData uint64
}

// NewSequence creates a sequence from the ordered steps. Every step except
// the last must eventually complete.
func NewSequence[T any](steps ...Tweenable[T]) (*Sequence[T], error) {
	if len(steps) == 0 {
		return nil, fmt.Errorf("sway: new sequence: %w", ErrEmpty)
	}
	s := &Sequence[T]{steps: make([]Tweenable[T], 0, len(steps))}
	for i, step := range steps {
		if err := s.push(step); err != nil {
			return nil, fmt.Errorf("sway: new sequence: step %d: %w", i, err)
		}
	}
	return s, nil
}

func (s *Sequence[T]) push(step Tweenable[T]) error {
	if step == nil {
		return ErrNilTweenable
	}
	if n := len(s.steps); n > 0 && s.steps[n-1].TotalDuration() == Forever {
		return ErrUnreachableStep
	}
	s.steps = append(s.steps, step)
	s.duration = addDurations(s.duration, step.TotalDuration())
	return nil
}

// Then appends next and returns s. It panics if next is nil or the current
// last step never completes.
func (s *Sequence[T]) Then(next Tweenable[T]) *Sequence[T] {
	if err := s.push(next); err != nil {
		panic(fmt.Errorf("sway: sequence then: %w", err))
	}
	return s
}

// WithCompletedEvent makes the sequence emit a TweenCompleted carrying
// userData after its last step completes.
func (s *Sequence[T]) WithCompletedEvent(userData uint64) *Sequence[T] {
	s.event = true
	s.userData = userData
	return s
}

// Index returns the position of the active step; it equals Len once the
// sequence has completed.
func (s *Sequence[T]) Index() int { return s.index }

// Len returns the number of steps.
func (s *Sequence[T]) Len() int { return len(s.steps) }

// Current returns the active step, or the last one once completed.
func (s *Sequence[T]) Current() Tweenable[T] {
	if s.index >= len(s.steps) {
		return s.steps[len(s.steps)-1]
	}
	return s.steps[s.index]
}

func (s *Sequence[T]) Duration() time.Duration      { return s.duration }
func (s *Sequence[T]) TotalDuration() time.Duration { return s.duration }
func (s *Sequence[T]) Elapsed() time.Duration       { return s.elapsed }
func (s *Sequence[T]) TimesCompleted() int          { return s.completed }

func (s *Sequence[T]) Progress() float32 {
	if s.duration == Forever {
		return s.Current().Progress()
	}
	return ratioOf(s.elapsed, s.duration)
}

// Tick implements Tweenable.
func (s *Sequence[T]) Tick(delta time.Duration, target *T, events *[]TweenCompleted) TweenState {
	if s.index >= len(s.steps) {
		return Completed
	}
	if delta < 0 {
		delta = 0
	}
	for {
		step := s.steps[s.index]
		before := step.Elapsed()
		if step.Tick(delta, target, events) == Active {
			s.elapsed = addDurations(s.elapsed, delta)
			return Active
		}

		used := step.TotalDuration() - before
		if used > delta {
			used = delta
		}
		if used < 0 {
			used = 0
		}
		delta -= used
		s.elapsed += used
		s.index++

		if s.index >= len(s.steps) {
			s.completed = 1
			emit(events, s.event, s.userData, s.completed)
			return Completed
		}
		if globalDebug {
			debugLog("sequence advanced to step %d/%d, carrying %v", s.index+1, len(s.steps), delta)
		}
	}
}

// Reset rewinds every step and returns to the first one.
func (s *Sequence[T]) Reset() {
	for _, step := range s.steps {
		step.Reset()
	}
	s.index = 0
	s.elapsed = 0
	s.completed = 0
}
