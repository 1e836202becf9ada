package sway

// Lens writes an interpolated state into target. start is the snapshot of
// the target taken when the owning tween began; ratio is the eased ratio,
// usually in [0, 1].
type Lens[T any] interface {
	Lerp(target *T, start *T, ratio float32)
}

// LensFunc adapts an ordinary function to Lens. A single closure may drive
// any number of fields of T:
//
//	lens := sway.LensFunc[Sprite](func(s, _ *Sprite, r float32) {
//		s.Pos = from.Lerp(to, r)
//		s.Tint = red.Lerp(blue, r)
//	})
type LensFunc[T any] func(target *T, start *T, ratio float32)

// Lerp calls f(target, start, ratio).
func (f LensFunc[T]) Lerp(target *T, start *T, ratio float32) {
	f(target, start, ratio)
}

// Cloner is implemented by target types whose plain value copy would share
// state (slices, maps, pointers). Tweens use Clone to take the start snapshot
// when it is available.
type Cloner[T any] interface {
	Clone() T
}

func snapshot[T any](target *T) T {
	if c, ok := any(target).(Cloner[T]); ok {
		return c.Clone()
	}
	if c, ok := any(*target).(Cloner[T]); ok {
		return c.Clone()
	}
	return *target
}
