package sway

import (
	"fmt"
	"strings"
	"time"
)

// RepeatPolicy governs what a Tween does when it reaches the end of a cycle.
type RepeatPolicy uint8

const (
	Once     RepeatPolicy = iota // play one cycle, then hold the end state
	Loop                         // restart from the beginning of the curve
	PingPong                     // reverse direction every cycle
)

var repeatNames = [...]string{"Once", "Loop", "PingPong"}

func (p RepeatPolicy) String() string {
	if int(p) < len(repeatNames) {
		return repeatNames[p]
	}
	return fmt.Sprintf("RepeatPolicy(%d)", uint8(p))
}

// ParseRepeatPolicy resolves "Once", "Loop" or "PingPong" (also "ping_pong"),
// ignoring case.
func ParseRepeatPolicy(name string) (RepeatPolicy, error) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "_", ""))
	for i, n := range repeatNames {
		if strings.ToLower(n) == key {
			return RepeatPolicy(i), nil
		}
	}
	return 0, fmt.Errorf("sway: unknown repeat policy %q", name)
}

// Direction is the playback direction of a Tween.
type Direction uint8

const (
	Forward  Direction = iota // ratio runs 0 -> 1
	Backward                  // ratio runs 1 -> 0
)

func (d Direction) String() string {
	if d == Backward {
		return "Backward"
	}
	return "Forward"
}

// Tween is the leaf Tweenable: it converts elapsed time into an eased ratio
// and hands it to a Lens.
//
// The start snapshot passed to the lens is captured from the live target on
// the first tick after construction or Reset, and kept until the next Reset.
// Looping never recaptures it.
type Tween[T any] struct {
	easing    Easing
	lens      Lens[T]
	duration  time.Duration
	repeat    RepeatPolicy
	count     int // cycles until completion, 0 = unbounded
	direction Direction

	elapsed   time.Duration
	completed int

	start    T
	hasStart bool

	event    bool
	userData uint64
}

// NewTween creates a tween that runs lens over duration per cycle.
func NewTween[T any](easing Easing, repeat RepeatPolicy, duration time.Duration, lens Lens[T]) (*Tween[T], error) {
	if duration <= 0 {
		return nil, fmt.Errorf("sway: new tween: %w (got %v)", ErrInvalidDuration, duration)
	}
	if easing == nil {
		return nil, fmt.Errorf("sway: new tween: %w", ErrNilEasing)
	}
	if lens == nil {
		return nil, fmt.Errorf("sway: new tween: %w", ErrNilLens)
	}
	if f, ok := lens.(LensFunc[T]); ok && f == nil {
		return nil, fmt.Errorf("sway: new tween: %w", ErrNilLens)
	}
	if repeat > PingPong {
		return nil, fmt.Errorf("sway: new tween: %w (%v)", ErrInvalidRepeat, repeat)
	}
	t := &Tween[T]{
		easing:   easing,
		lens:     lens,
		duration: duration,
		repeat:   repeat,
	}
	if repeat == Once {
		t.count = 1
	}
	return t, nil
}

// WithCompletedEvent makes the tween emit a TweenCompleted carrying userData
// at every cycle boundary.
func (t *Tween[T]) WithCompletedEvent(userData uint64) *Tween[T] {
	t.event = true
	t.userData = userData
	return t
}

// WithDirection sets the playback direction.
func (t *Tween[T]) WithDirection(d Direction) *Tween[T] {
	t.direction = d
	return t
}

// WithRepeatCount bounds a Loop or PingPong tween to n cycles. Zero means
// forever. It has no effect on Once tweens.
func (t *Tween[T]) WithRepeatCount(n int) *Tween[T] {
	if t.repeat == Once {
		return t
	}
	if n < 0 {
		n = 0
	}
	t.count = n
	return t
}

// Then returns a Sequence playing t and then next. It panics if t never
// completes; use NewSequence to get an error instead.
func (t *Tween[T]) Then(next Tweenable[T]) *Sequence[T] {
	return Must(NewSequence[T](t, next))
}

func (t *Tween[T]) Easing() Easing          { return t.easing }
func (t *Tween[T]) Repeat() RepeatPolicy    { return t.repeat }
func (t *Tween[T]) RepeatCount() int        { return t.count }
func (t *Tween[T]) Direction() Direction    { return t.direction }
func (t *Tween[T]) Duration() time.Duration { return t.duration }
func (t *Tween[T]) Elapsed() time.Duration  { return t.elapsed }
func (t *Tween[T]) TimesCompleted() int     { return t.completed }

// TotalDuration returns the cycle duration times the repeat count, or
// Forever for unbounded loops.
func (t *Tween[T]) TotalDuration() time.Duration {
	if t.count == 0 {
		return Forever
	}
	if int64(t.count) > int64(Forever/t.duration) {
		return Forever
	}
	return t.duration * time.Duration(t.count)
}

// Progress returns overall progress for bounded tweens, and the progress
// through the current cycle for unbounded ones.
func (t *Tween[T]) Progress() float32 {
	if t.count == 0 {
		return ratioOf(t.elapsed%t.duration, t.duration)
	}
	return ratioOf(t.elapsed, t.TotalDuration())
}

// Tick implements Tweenable. The lens is applied on every tick while the
// tween is active, including the tick that completes it, which applies the
// exact end ratio.
func (t *Tween[T]) Tick(delta time.Duration, target *T, events *[]TweenCompleted) TweenState {
	total := t.TotalDuration()
	if t.elapsed >= total {
		return Completed
	}
	if delta < 0 {
		delta = 0
	}
	t.elapsed = addDurations(t.elapsed, delta)
	if t.elapsed > total {
		t.elapsed = total
	}

	if !t.hasStart {
		t.start = snapshot(target)
		t.hasStart = true
	}
	t.lens.Lerp(target, &t.start, t.easing.Ease(t.cycleRatio()))

	cycles := int(t.elapsed / t.duration)
	if !t.event || events == nil {
		t.completed = cycles
	}
	for t.completed < cycles {
		t.completed++
		emit(events, t.event, t.userData, t.completed)
	}

	if t.elapsed >= total {
		return Completed
	}
	return Active
}

// cycleRatio maps elapsed time to the linear ratio within the current cycle,
// folding in ping-pong reversal and playback direction.
func (t *Tween[T]) cycleRatio() float32 {
	idx := t.elapsed / t.duration
	local := t.elapsed - idx*t.duration
	if local == 0 && idx > 0 && t.count > 0 && int(idx) >= t.count {
		// Finished: hold the end of the last cycle instead of wrapping.
		idx--
		local = t.duration
	}
	ratio := ratioOf(local, t.duration)
	if t.repeat == PingPong && idx%2 == 1 {
		ratio = 1 - ratio
	}
	if t.direction == Backward {
		ratio = 1 - ratio
	}
	return ratio
}

// Reset rewinds the tween and drops the captured start value, so the next
// tick recaptures it from the target as it is then.
func (t *Tween[T]) Reset() {
	var zero T
	t.elapsed = 0
	t.completed = 0
	t.start = zero
	t.hasStart = false
}
