package sway

import "time"

// AnimatorState is the play state of an Animator.
type AnimatorState uint8

const (
	Playing AnimatorState = iota
	Paused
)

func (s AnimatorState) String() string {
	if s == Paused {
		return "Paused"
	}
	return "Playing"
}

// Animator drives one Tweenable tree against one target. The host calls Tick
// once per frame; while paused, Tick does nothing, and play/pause never
// touches the tree's progress.
//
// There is no global animation manager: each animator is independent, so
// hosts may tick different animators on different goroutines as long as no
// two of them share a target.
type Animator[T any] struct {
	root  Tweenable[T]
	state AnimatorState
	speed float64

	events []TweenCompleted
}

// NewAnimator creates a playing animator for root.
func NewAnimator[T any](root Tweenable[T]) *Animator[T] {
	return &Animator[T]{root: root, speed: 1}
}

// WithState sets the initial play state.
func (a *Animator[T]) WithState(s AnimatorState) *Animator[T] {
	a.state = s
	return a
}

// WithSpeed sets the playback speed multiplier; see SetSpeed.
func (a *Animator[T]) WithSpeed(speed float64) *Animator[T] {
	a.SetSpeed(speed)
	return a
}

// State returns the current play state.
func (a *Animator[T]) State() AnimatorState { return a.state }

// Play resumes ticking.
func (a *Animator[T]) Play() {
	if a.state != Playing && globalDebug {
		debugLog("animator play")
	}
	a.state = Playing
}

// Pause suspends ticking. Progress is kept.
func (a *Animator[T]) Pause() {
	if a.state != Paused && globalDebug {
		debugLog("animator pause at %v", a.elapsed())
	}
	a.state = Paused
}

// Stop pauses the animator and rewinds its tree.
func (a *Animator[T]) Stop() {
	a.Pause()
	a.Reset()
}

// Reset rewinds the tree without changing the play state.
func (a *Animator[T]) Reset() {
	if a.root != nil {
		a.root.Reset()
	}
}

// Speed returns the playback speed multiplier.
func (a *Animator[T]) Speed() float64 { return a.speed }

// SetSpeed scales every delta passed to Tick. Negative values are treated as
// zero. A scaled delta past Forever saturates.
func (a *Animator[T]) SetSpeed(speed float64) {
	if !(speed >= 0) {
		speed = 0
	}
	a.speed = speed
}

// Tweenable returns the root of the animation tree.
func (a *Animator[T]) Tweenable() Tweenable[T] { return a.root }

// SetTweenable replaces the tree and resets it, so its start values are
// captured afresh from the target.
func (a *Animator[T]) SetTweenable(root Tweenable[T]) {
	a.root = root
	a.Reset()
}

// Progress reports the tree's progress, or 0 without a tree.
func (a *Animator[T]) Progress() float32 {
	if a.root == nil {
		return 0
	}
	return a.root.Progress()
}

func (a *Animator[T]) elapsed() time.Duration {
	if a.root == nil {
		return 0
	}
	return a.root.Elapsed()
}

// Tick advances the tree by delta and forwards completion events to sink,
// tagged with owner, in the order they were produced. It returns the state of
// the tree. A paused animator does nothing; an animator without a tree
// reports Completed.
func (a *Animator[T]) Tick(delta time.Duration, target *T, owner uint64, sink EventSink) TweenState {
	if a.root == nil {
		return Completed
	}
	if a.state == Paused {
		if a.root.Elapsed() >= a.root.TotalDuration() {
			return Completed
		}
		return Active
	}
	if a.speed != 1 {
		if d := float64(delta) * a.speed; d >= float64(Forever) {
			delta = Forever
		} else {
			delta = time.Duration(d)
		}
	}

	a.events = a.events[:0]
	state := a.root.Tick(delta, target, &a.events)
	for i := range a.events {
		a.events[i].Entity = owner
		if sink != nil {
			sink.EmitCompleted(a.events[i])
		}
	}
	return state
}
