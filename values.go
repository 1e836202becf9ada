package sway

// Number is the set of scalar types Lerp accepts.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Lerp returns the value between a and b at ratio. Integer results truncate
// toward zero.
func Lerp[N Number](a, b N, ratio float32) N {
	return N(float64(a) + (float64(b)-float64(a))*float64(ratio))
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// Lerp interpolates every component toward to.
func (c Color) Lerp(to Color, ratio float32) Color {
	return Color{
		R: Lerp(c.R, to.R, ratio),
		G: Lerp(c.G, to.G, ratio),
		B: Lerp(c.B, to.B, ratio),
		A: Lerp(c.A, to.A, ratio),
	}
}

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float64
}

// Lerp interpolates toward to.
func (v Vec2) Lerp(to Vec2, ratio float32) Vec2 {
	return Vec2{Lerp(v.X, to.X, ratio), Lerp(v.Y, to.Y, ratio)}
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Vec3 is a 3D vector; Z is typically used for draw order.
type Vec3 struct {
	X, Y, Z float64
}

// Lerp interpolates toward to.
func (v Vec3) Lerp(to Vec3, ratio float32) Vec3 {
	return Vec3{Lerp(v.X, to.X, ratio), Lerp(v.Y, to.Y, ratio), Lerp(v.Z, to.Z, ratio)}
}

// Pair bundles two values so a single animator can drive both, e.g. two
// components of the same entity.
type Pair[A, B any] struct {
	First  A
	Second B
}
