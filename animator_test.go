package sway

import (
	"testing"
	"time"
)

func TestAnimatorForwardsTaggedEvents(t *testing.T) {
	seq := twoStepSequence().WithCompletedEvent(3)
	a := NewAnimator[float32](seq)
	var buf EventBuffer
	var v float32

	if st := a.Tick(3*time.Second, &v, 77, &buf); st != Completed {
		t.Fatalf("state = %v, want Completed", st)
	}
	if buf.Len() != 3 {
		t.Fatalf("got %d events, want 3", buf.Len())
	}
	for i, e := range buf.Events() {
		if e.Entity != 77 {
			t.Errorf("event %d owner = %d, want 77", i, e.Entity)
		}
		if e.UserData != uint64(i+1) {
			t.Errorf("event %d user = %d, want %d", i, e.UserData, i+1)
		}
	}

	var drained []TweenCompleted
	buf.Drain(func(e TweenCompleted) { drained = append(drained, e) })
	if len(drained) != 3 || buf.Len() != 0 {
		t.Errorf("Drain: got %d, left %d", len(drained), buf.Len())
	}
}

func TestAnimatorPausedTicksAreNoOps(t *testing.T) {
	tw := Must(NewTween[float32](SineInOut, Once, 2*time.Second, toward(10))).WithCompletedEvent(1)
	a := NewAnimator[float32](tw)
	var v float32
	a.Tick(500*time.Millisecond, &v, 1, nil)
	atPause := v

	a.Pause()
	if a.State() != Paused {
		t.Fatalf("State = %v", a.State())
	}
	var buf EventBuffer
	for i := 0; i < 100; i++ {
		if st := a.Tick(100*time.Millisecond, &v, 1, &buf); st != Active {
			t.Fatalf("paused unfinished animator reported %v", st)
		}
	}
	if v != atPause {
		t.Errorf("v drifted while paused: %v -> %v", atPause, v)
	}
	if tw.Elapsed() != 500*time.Millisecond {
		t.Errorf("Elapsed = %v while paused", tw.Elapsed())
	}
	if buf.Len() != 0 {
		t.Errorf("paused animator emitted %d events", buf.Len())
	}

	a.Play()
	a.Tick(0, &v, 1, nil)
	if v != atPause {
		t.Errorf("resume changed v: %v -> %v", atPause, v)
	}
	a.Tick(1500*time.Millisecond, &v, 1, &buf)
	if v != 10 || buf.Len() != 1 {
		t.Errorf("after resume v = %v events = %d", v, buf.Len())
	}
}

func TestAnimatorPausedCompletedReportsCompleted(t *testing.T) {
	a := NewAnimator[float32](Must(NewTween[float32](Linear, Once, time.Second, toward(1))))
	var v float32
	a.Tick(time.Second, &v, 0, nil)
	a.Pause()
	if st := a.Tick(time.Second, &v, 0, nil); st != Completed {
		t.Errorf("state = %v, want Completed", st)
	}
}

func TestAnimatorStartsPausedWithState(t *testing.T) {
	a := NewAnimator[float32](Must(NewTween[float32](Linear, Once, time.Second, toward(1)))).WithState(Paused)
	var v float32
	a.Tick(time.Second, &v, 0, nil)
	if v != 0 {
		t.Errorf("v = %v, want untouched", v)
	}
}

func TestAnimatorSpeed(t *testing.T) {
	a := NewAnimator[float32](Must(NewTween[float32](Linear, Once, time.Second, toward(10)))).WithSpeed(2)
	var v float32
	a.Tick(250*time.Millisecond, &v, 0, nil)
	if !approx(v, 5) {
		t.Errorf("v = %v, want 5 at double speed", v)
	}
	a.SetSpeed(-1)
	if a.Speed() != 0 {
		t.Errorf("Speed = %v, want clamped to 0", a.Speed())
	}
	a.Tick(time.Second, &v, 0, nil)
	if !approx(v, 5) {
		t.Errorf("v = %v, zero speed must freeze", v)
	}
}

func TestAnimatorStopRewinds(t *testing.T) {
	tw := Must(NewTween[float32](Linear, Once, time.Second, toward(10)))
	a := NewAnimator[float32](tw)
	var v float32
	a.Tick(600*time.Millisecond, &v, 0, nil)
	a.Stop()
	if a.State() != Paused || tw.Elapsed() != 0 || a.Progress() != 0 {
		t.Errorf("Stop: state=%v elapsed=%v", a.State(), tw.Elapsed())
	}
}

func TestAnimatorSetTweenable(t *testing.T) {
	a := NewAnimator[float32](Must(NewTween[float32](Linear, Once, time.Second, toward(10))))
	var v float32
	a.Tick(time.Second, &v, 0, nil)

	next := Must(NewTween[float32](Linear, Once, time.Second, toward(0)))
	a.SetTweenable(next)
	if a.Tweenable() != Tweenable[float32](next) {
		t.Fatal("Tweenable() did not return the new root")
	}
	a.Tick(500*time.Millisecond, &v, 0, nil)
	if v != 5 {
		t.Errorf("v = %v, want 5 half way back from 10", v)
	}
}

func TestAnimatorNilRoot(t *testing.T) {
	a := NewAnimator[float32](nil)
	var v float32
	if st := a.Tick(time.Second, &v, 0, nil); st != Completed {
		t.Errorf("state = %v", st)
	}
	a.Stop()
	if a.Progress() != 0 {
		t.Error("Progress without tree should be 0")
	}
}

func TestAnimatorSinkFunc(t *testing.T) {
	a := NewAnimator[float32](Must(NewTween[float32](Linear, Loop, 100*time.Millisecond, toward(1))).WithCompletedEvent(4))
	var got []TweenCompleted
	sink := SinkFunc(func(e TweenCompleted) { got = append(got, e) })
	var v float32
	a.Tick(250*time.Millisecond, &v, 8, sink)
	if len(got) != 2 || got[0].Cycle != 1 || got[1].Cycle != 2 || got[1].Entity != 8 {
		t.Errorf("got %+v", got)
	}
}

func TestAnimatorTickZeroAlloc(t *testing.T) {
	seq := twoStepSequence()
	a := NewAnimator[float32](Must(NewTracks[float32](seq)))
	var v float32
	var buf EventBuffer
	a.Tick(time.Millisecond, &v, 1, &buf)

	result := testing.AllocsPerRun(100, func() {
		a.Tick(time.Millisecond, &v, 1, &buf)
	})
	if result > 0 {
		t.Errorf("Animator.Tick allocated %f times per run, want 0", result)
	}
}

func TestAnimatorSpeedSaturates(t *testing.T) {
	a := NewAnimator[float32](Must(NewTween[float32](Linear, Once, time.Second, toward(10)))).WithSpeed(1e12)
	var v float32
	if st := a.Tick(time.Hour, &v, 0, nil); st != Completed {
		t.Errorf("state = %v, want Completed", st)
	}
	if v != 10 {
		t.Errorf("v = %v, want 10", v)
	}
}
