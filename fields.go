package sway

// FieldLens animates one numeric field of T from its value in the start
// snapshot to a fixed target. field must return a pointer into the value it
// is given:
//
//	fade := sway.FieldLens(func(s *Sprite) *float64 { return &s.Alpha }, 0)
func FieldLens[T any, N Number](field func(*T) *N, to N) Lens[T] {
	return LensFunc[T](func(target, start *T, ratio float32) {
		*field(target) = Lerp(*field(start), to, ratio)
	})
}

// Vec2Lens animates a Vec2 field of T toward to.
func Vec2Lens[T any](field func(*T) *Vec2, to Vec2) Lens[T] {
	return LensFunc[T](func(target, start *T, ratio float32) {
		*field(target) = field(start).Lerp(to, ratio)
	})
}

// ColorLens animates a Color field of T toward to.
func ColorLens[T any](field func(*T) *Color, to Color) Lens[T] {
	return LensFunc[T](func(target, start *T, ratio float32) {
		*field(target) = field(start).Lerp(to, ratio)
	})
}

// MultiLens applies several lenses of the same target with one ratio, in
// order, so a single tween can move position, scale and tint together.
type MultiLens[T any] []Lens[T]

// Lerp applies every lens in order.
func (m MultiLens[T]) Lerp(target, start *T, ratio float32) {
	for _, l := range m {
		l.Lerp(target, start, ratio)
	}
}
