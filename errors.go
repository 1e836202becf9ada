package sway

import "errors"

// Construction errors. Constructors wrap these with context; test with errors.Is.
var (
	ErrInvalidDuration = errors.New("duration must be positive")
	ErrNilLens         = errors.New("lens is nil")
	ErrNilEasing       = errors.New("easing is nil")
	ErrInvalidRepeat   = errors.New("unknown repeat policy")
	ErrEmpty           = errors.New("no tweenables given")
	ErrNilTweenable    = errors.New("tweenable is nil")
	ErrUnreachableStep = errors.New("step follows a step that never completes")
)

// Must panics if err is non-nil and otherwise returns v. It is intended for
// animation trees written as literals, where a bad duration is a programming
// error:
//
//	tw := sway.Must(sway.NewTween(sway.SineIn, sway.Once, time.Second, lens))
func Must[V any](v V, err error) V {
	if err != nil {
		panic(err)
	}
	return v
}
