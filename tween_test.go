package sway

import (
	"errors"
	"math"
	"testing"
	"time"
)

// toward returns a lens that moves a float32 from its captured start to end.
func toward(end float32) LensFunc[float32] {
	return func(target, start *float32, r float32) {
		*target = *start + (end-*start)*r
	}
}

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestTweenConcreteScenario(t *testing.T) {
	tw := Must(NewTween(QuadraticIn, Once, 3*time.Second, Lens[float32](toward(10)))).WithCompletedEvent(1)
	var v float32
	var events []TweenCompleted

	if st := tw.Tick(1500*time.Millisecond, &v, &events); st != Active {
		t.Fatalf("state after 1.5s = %v, want Active", st)
	}
	if !approx(v, 2.5) {
		t.Errorf("v = %v at half time, want 2.5 (quadratic)", v)
	}
	if len(events) != 0 {
		t.Fatalf("got %d events before completion", len(events))
	}

	if st := tw.Tick(1500*time.Millisecond, &v, &events); st != Completed {
		t.Fatalf("state after 3s = %v, want Completed", st)
	}
	if v != 10 {
		t.Errorf("v = %v, want exactly 10", v)
	}
	if len(events) != 1 || events[0].UserData != 1 || events[0].Cycle != 1 {
		t.Errorf("events = %+v, want one event for user 1 cycle 1", events)
	}
}

func TestTweenOnceHoldsEndState(t *testing.T) {
	tw := Must(NewTween[float32](Linear, Once, time.Second, toward(4)))
	var v float32
	tw.Tick(2*time.Second, &v, nil)
	if v != 4 {
		t.Fatalf("v = %v, want 4", v)
	}
	if tw.Elapsed() != time.Second {
		t.Errorf("Elapsed = %v, want capped at 1s", tw.Elapsed())
	}

	// A completed tween must not touch the target again.
	v = 99
	if st := tw.Tick(time.Second, &v, nil); st != Completed {
		t.Errorf("state = %v, want Completed", st)
	}
	if v != 99 {
		t.Errorf("completed tween wrote %v", v)
	}
}

func TestTweenLoopPeriodicity(t *testing.T) {
	const d = 400 * time.Millisecond
	var atZero float32 = 2
	ref := Must(NewTween[float32](CubicInOut, Loop, d, toward(8)))
	ref.Tick(0, &atZero, nil)

	for k := 1; k <= 3; k++ {
		var v float32 = 2
		tw := Must(NewTween[float32](CubicInOut, Loop, d, toward(8)))
		if st := tw.Tick(time.Duration(k)*d, &v, nil); st != Active {
			t.Fatalf("loop reported %v", st)
		}
		if v != atZero {
			t.Errorf("after %d cycles v = %v, want %v", k, v, atZero)
		}
		if tw.TimesCompleted() != k {
			t.Errorf("TimesCompleted = %d, want %d", tw.TimesCompleted(), k)
		}
	}
}

func TestTweenLoopWrapsMidCycle(t *testing.T) {
	tw := Must(NewTween[float32](Linear, Loop, time.Second, toward(10)))
	var v float32
	tw.Tick(2500*time.Millisecond, &v, nil)
	if !approx(v, 5) {
		t.Errorf("v = %v, want 5 half way through the third cycle", v)
	}
	if p := tw.Progress(); !approx(p, 0.5) {
		t.Errorf("Progress = %v, want 0.5", p)
	}
	if tw.TotalDuration() != Forever {
		t.Errorf("TotalDuration = %v, want Forever", tw.TotalDuration())
	}
}

func TestTweenPingPongRoundTrip(t *testing.T) {
	const d = time.Second
	tw := Must(NewTween[float32](SineInOut, PingPong, d, toward(6)))
	var v float32 = 1

	tw.Tick(d, &v, nil)
	if v != 6 {
		t.Errorf("after one cycle v = %v, want 6", v)
	}
	tw.Tick(d/2, &v, nil)
	if !approx(v, 3.5) {
		t.Errorf("half way back v = %v, want 3.5", v)
	}
	tw.Tick(d/2, &v, nil)
	if v != 1 {
		t.Errorf("after round trip v = %v, want 1", v)
	}
}

func TestTweenPingPongEventsPerCycle(t *testing.T) {
	tw := Must(NewTween[float32](Linear, PingPong, 100*time.Millisecond, toward(1))).WithCompletedEvent(9)
	var v float32
	var events []TweenCompleted
	tw.Tick(350*time.Millisecond, &v, &events)
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	for i, e := range events {
		if e.Cycle != i+1 || e.UserData != 9 {
			t.Errorf("event %d = %+v", i, e)
		}
	}
}

func TestTweenRepeatCount(t *testing.T) {
	tw := Must(NewTween[float32](Linear, PingPong, time.Second, toward(10))).WithRepeatCount(2)
	if tw.TotalDuration() != 2*time.Second {
		t.Fatalf("TotalDuration = %v, want 2s", tw.TotalDuration())
	}
	var v float32
	tw.Tick(1500*time.Millisecond, &v, nil)
	if !approx(v, 5) {
		t.Errorf("v = %v, want 5 on the way back", v)
	}
	if st := tw.Tick(time.Second, &v, nil); st != Completed {
		t.Fatalf("state = %v, want Completed", st)
	}
	if v != 0 {
		t.Errorf("v = %v, want back at 0", v)
	}
	if tw.TimesCompleted() != 2 {
		t.Errorf("TimesCompleted = %d, want 2", tw.TimesCompleted())
	}

	loop := Must(NewTween[float32](Linear, Loop, time.Second, toward(10))).WithRepeatCount(3)
	var w float32
	loop.Tick(10*time.Second, &w, nil)
	if w != 10 {
		t.Errorf("bounded loop ends at %v, want 10", w)
	}
}

func TestTweenRepeatCountIgnoredForOnce(t *testing.T) {
	tw := Must(NewTween[float32](Linear, Once, time.Second, toward(1))).WithRepeatCount(5)
	if tw.TotalDuration() != time.Second {
		t.Errorf("TotalDuration = %v, want 1s", tw.TotalDuration())
	}
}

func TestTweenBackward(t *testing.T) {
	tw := Must(NewTween[float32](Linear, Once, time.Second, LensFunc[float32](func(v, _ *float32, r float32) {
		*v = Lerp[float32](0, 10, r)
	}))).WithDirection(Backward)
	var v float32
	tw.Tick(250*time.Millisecond, &v, nil)
	if !approx(v, 7.5) {
		t.Errorf("v = %v, want 7.5", v)
	}
	tw.Tick(time.Second, &v, nil)
	if v != 0 {
		t.Errorf("v = %v, want 0", v)
	}
	if tw.Direction() != Backward {
		t.Errorf("Direction = %v", tw.Direction())
	}
}

func TestTweenCapturesStartLazily(t *testing.T) {
	tw := Must(NewTween[float32](Linear, Once, time.Second, toward(10)))
	v := float32(6)
	tw.Tick(500*time.Millisecond, &v, nil)
	if !approx(v, 8) {
		t.Errorf("v = %v, want 8 (half way from captured 6)", v)
	}
}

func TestTweenResetRecapturesStart(t *testing.T) {
	tw := Must(NewTween[float32](Linear, Once, time.Second, toward(10)))
	var v float32
	tw.Tick(time.Second, &v, nil)

	tw.Reset()
	if tw.Elapsed() != 0 || tw.TimesCompleted() != 0 {
		t.Fatalf("Reset left elapsed=%v completed=%d", tw.Elapsed(), tw.TimesCompleted())
	}
	v = 20
	tw.Tick(500*time.Millisecond, &v, nil)
	if !approx(v, 15) {
		t.Errorf("v = %v, want 15 (half way from recaptured 20)", v)
	}
}

func TestTweenZeroDeltaIsIdempotent(t *testing.T) {
	tw := Must(NewTween[float32](Linear, Once, time.Second, toward(10)))
	var v float32
	tw.Tick(300*time.Millisecond, &v, nil)
	before := v
	tw.Tick(0, &v, nil)
	tw.Tick(0, &v, nil)
	if v != before {
		t.Errorf("zero ticks moved v from %v to %v", before, v)
	}
	tw.Tick(-time.Second, &v, nil)
	if v != before || tw.Elapsed() != 300*time.Millisecond {
		t.Errorf("negative delta rewound the tween: v=%v elapsed=%v", v, tw.Elapsed())
	}
}

type samples []float32

func (s samples) Clone() samples { return append(samples(nil), s...) }

func TestTweenClonesStart(t *testing.T) {
	tw := Must(NewTween[samples](Linear, Once, time.Second, LensFunc[samples](func(v, start *samples, r float32) {
		for i := range *v {
			(*v)[i] = (*start)[i] * (1 - r)
		}
	})))
	v := samples{2, 4}
	tw.Tick(500*time.Millisecond, &v, nil)
	tw.Tick(250*time.Millisecond, &v, nil)
	if !approx(v[0], 0.5) || !approx(v[1], 1) {
		t.Errorf("v = %v, want [0.5 1]; start snapshot must not alias the target", v)
	}
}

func TestNewTweenValidation(t *testing.T) {
	lens := toward(1)
	tests := []struct {
		name string
		err  error
		fn   func() error
	}{
		{"zero duration", ErrInvalidDuration, func() error {
			_, err := NewTween[float32](Linear, Once, 0, lens)
			return err
		}},
		{"negative duration", ErrInvalidDuration, func() error {
			_, err := NewTween[float32](Linear, Once, -time.Second, lens)
			return err
		}},
		{"nil easing", ErrNilEasing, func() error {
			_, err := NewTween[float32](nil, Once, time.Second, lens)
			return err
		}},
		{"nil lens", ErrNilLens, func() error {
			_, err := NewTween[float32](Linear, Once, time.Second, nil)
			return err
		}},
		{"nil lens func", ErrNilLens, func() error {
			_, err := NewTween[float32](Linear, Once, time.Second, LensFunc[float32](nil))
			return err
		}},
		{"bad repeat", ErrInvalidRepeat, func() error {
			_, err := NewTween[float32](Linear, RepeatPolicy(7), time.Second, lens)
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.fn(); !errors.Is(err, tt.err) {
				t.Errorf("err = %v, want %v", err, tt.err)
			}
		})
	}
}

func TestMustPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Must did not panic")
		}
	}()
	Must(NewTween[float32](Linear, Once, 0, toward(1)))
}

func TestParseRepeatPolicy(t *testing.T) {
	for in, want := range map[string]RepeatPolicy{
		"once": Once, "Loop": Loop, "ping_pong": PingPong, "PingPong": PingPong,
	} {
		got, err := ParseRepeatPolicy(in)
		if err != nil || got != want {
			t.Errorf("ParseRepeatPolicy(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseRepeatPolicy("forever"); err == nil {
		t.Error("expected error")
	}
}

func TestTweenTickZeroAlloc(t *testing.T) {
	tw := Must(NewTween[float32](SineInOut, PingPong, time.Second, toward(100))).WithCompletedEvent(1)
	var v float32
	events := make([]TweenCompleted, 0, 64)
	tw.Tick(time.Millisecond, &v, &events)

	result := testing.AllocsPerRun(100, func() {
		events = events[:0]
		tw.Tick(16*time.Millisecond, &v, &events)
	})
	if result > 0 {
		t.Errorf("Tween.Tick allocated %f times per run, want 0", result)
	}
}

func TestTweenLongTickWithoutEventsIsConstantTime(t *testing.T) {
	tw := Must(NewTween[float32](Linear, Loop, time.Microsecond, toward(1)))
	var v float32

	start := time.Now()
	tw.Tick(time.Hour, &v, nil)
	if took := time.Since(start); took > 100*time.Millisecond {
		t.Errorf("Tick(1h) took %v", took)
	}
	if tw.TimesCompleted() != int(time.Hour/time.Microsecond) {
		t.Errorf("TimesCompleted = %d, want %d", tw.TimesCompleted(), int(time.Hour/time.Microsecond))
	}

	// An event id without a buffer records nothing either.
	tw = Must(NewTween[float32](Linear, Loop, time.Microsecond, toward(1))).WithCompletedEvent(3)
	start = time.Now()
	tw.Tick(time.Hour, &v, nil)
	if took := time.Since(start); took > 100*time.Millisecond {
		t.Errorf("Tick(1h) with nil events took %v", took)
	}

	// Recording resumes counting from the skipped total.
	var events []TweenCompleted
	tw.Tick(2*time.Microsecond, &v, &events)
	if len(events) != 2 || events[1].Cycle != int(time.Hour/time.Microsecond)+2 {
		t.Errorf("events = %+v", events)
	}
}
