package sway

import (
	"fmt"
	"strings"

	"github.com/tanema/gween/ease"
)

// Easing maps a linear progress ratio in [0, 1] to an eased ratio. Overshoot
// curves may return values slightly outside [0, 1] between the endpoints.
type Easing interface {
	Ease(ratio float32) float32
}

// EaseFunction selects one of the built-in easing curves.
type EaseFunction uint8

const (
	Linear EaseFunction = iota
	QuadraticIn
	QuadraticOut
	QuadraticInOut
	CubicIn
	CubicOut
	CubicInOut
	QuarticIn
	QuarticOut
	QuarticInOut
	QuinticIn
	QuinticOut
	QuinticInOut
	SineIn
	SineOut
	SineInOut
	CircularIn
	CircularOut
	CircularInOut
	ExponentialIn
	ExponentialOut
	ExponentialInOut
	ElasticIn
	ElasticOut
	ElasticInOut
	BackIn
	BackOut
	BackInOut
	BounceIn
	BounceOut
	BounceInOut

	easeFunctionCount
)

var easeCurves = [easeFunctionCount]ease.TweenFunc{
	Linear:           ease.Linear,
	QuadraticIn:      ease.InQuad,
	QuadraticOut:     ease.OutQuad,
	QuadraticInOut:   ease.InOutQuad,
	CubicIn:          ease.InCubic,
	CubicOut:         ease.OutCubic,
	CubicInOut:       ease.InOutCubic,
	QuarticIn:        ease.InQuart,
	QuarticOut:       ease.OutQuart,
	QuarticInOut:     ease.InOutQuart,
	QuinticIn:        ease.InQuint,
	QuinticOut:       ease.OutQuint,
	QuinticInOut:     ease.InOutQuint,
	SineIn:           ease.InSine,
	SineOut:          ease.OutSine,
	SineInOut:        ease.InOutSine,
	CircularIn:       ease.InCirc,
	CircularOut:      ease.OutCirc,
	CircularInOut:    ease.InOutCirc,
	ExponentialIn:    ease.InExpo,
	ExponentialOut:   ease.OutExpo,
	ExponentialInOut: ease.InOutExpo,
	ElasticIn:        ease.InElastic,
	ElasticOut:       ease.OutElastic,
	ElasticInOut:     ease.InOutElastic,
	BackIn:           ease.InBack,
	BackOut:          ease.OutBack,
	BackInOut:        ease.InOutBack,
	BounceIn:         ease.InBounce,
	BounceOut:        ease.OutBounce,
	BounceInOut:      ease.InOutBounce,
}

var easeNames = [easeFunctionCount]string{
	"Linear",
	"QuadraticIn", "QuadraticOut", "QuadraticInOut",
	"CubicIn", "CubicOut", "CubicInOut",
	"QuarticIn", "QuarticOut", "QuarticInOut",
	"QuinticIn", "QuinticOut", "QuinticInOut",
	"SineIn", "SineOut", "SineInOut",
	"CircularIn", "CircularOut", "CircularInOut",
	"ExponentialIn", "ExponentialOut", "ExponentialInOut",
	"ElasticIn", "ElasticOut", "ElasticInOut",
	"BackIn", "BackOut", "BackInOut",
	"BounceIn", "BounceOut", "BounceInOut",
}

// EaseFunctions returns every built-in curve in declaration order.
func EaseFunctions() []EaseFunction {
	out := make([]EaseFunction, easeFunctionCount)
	for i := range out {
		out[i] = EaseFunction(i)
	}
	return out
}

// Ease applies the curve. The ratio is clamped to [0, 1] and the endpoints
// are pinned so that Ease(0) == 0 and Ease(1) == 1 exactly for every curve.
func (f EaseFunction) Ease(ratio float32) float32 {
	if ratio <= 0 {
		return 0
	}
	if ratio >= 1 {
		return 1
	}
	if f >= easeFunctionCount {
		return ratio
	}
	return easeCurves[f](ratio, 0, 1, 1)
}

// Overshoots reports whether the curve may leave [0, 1] between the endpoints.
func (f EaseFunction) Overshoots() bool {
	return f >= ElasticIn && f <= BackInOut
}

// String returns the curve's name, e.g. "QuadraticIn".
func (f EaseFunction) String() string {
	if f >= easeFunctionCount {
		return fmt.Sprintf("EaseFunction(%d)", uint8(f))
	}
	return easeNames[f]
}

// ParseEaseFunction resolves a curve by name. Both "QuadraticIn" and
// "quadratic_in" spellings are accepted; matching ignores case.
func ParseEaseFunction(name string) (EaseFunction, error) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "_", ""))
	for i, n := range easeNames {
		if strings.ToLower(n) == key {
			return EaseFunction(i), nil
		}
	}
	return 0, fmt.Errorf("sway: unknown ease function %q", name)
}

// EaseTweenFunc adapts any gween easing function to Easing.
type EaseTweenFunc ease.TweenFunc

// Ease evaluates the function over a unit change and unit duration.
func (f EaseTweenFunc) Ease(ratio float32) float32 {
	if ratio <= 0 {
		return 0
	}
	if ratio >= 1 {
		return 1
	}
	return f(ratio, 0, 1, 1)
}

// Discrete is a step curve: 0 below the threshold, 1 at or above it.
type Discrete float32

// Ease implements Easing.
func (d Discrete) Ease(ratio float32) float32 {
	if ratio < float32(d) {
		return 0
	}
	return 1
}
