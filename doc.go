// Package sway animates arbitrary values over time for entity-component
// scenes.
//
// Sway separates what changes from how it changes over time. A [Lens]
// knows how to write an interpolated state into a value of type T; a
// [Tweenable] knows how elapsed time maps onto that lens. The core never
// learns what T is: a position, a color, a struct of several components.
//
// # Tweenables
//
// A [Tween] is the leaf. It owns an [Easing] curve, a cycle duration, a
// [RepeatPolicy] (Once, Loop, PingPong) and a lens:
//
//	fade := sway.Must(sway.NewTween(sway.SineInOut, sway.Once, 500*time.Millisecond,
//		sway.LensFunc[Sprite](func(s, start *Sprite, r float32) {
//			s.Alpha = sway.Lerp(start.Alpha, 0, r)
//		})))
//
// The start argument is a snapshot of the target taken the first time the
// tween ticks, so one tween definition can be attached to targets that start
// from different states.
//
// Tweenables compose. [Sequence] plays steps back to back (build one with
// [NewSequence] or Then), [Tracks] plays members in parallel, and [Delay]
// waits:
//
//	intro := fadeIn.Then(sway.Must(sway.NewDelay[Sprite](time.Second))).Then(slide)
//
// # Driving animations
//
// An [Animator] owns one tree and is ticked once per frame by the host:
//
//	anim := sway.NewAnimator[Sprite](intro)
//	// each frame:
//	anim.Tick(dt, &sprite, entityID, sink)
//
// Completion events ([TweenCompleted]) are produced by tweenables configured
// with WithCompletedEvent and relayed to an [EventSink] in the order their
// boundaries were crossed.
//
// There is no global animation manager; the host decides which animators to
// tick. The [github.com/phanxgames/sway/ecs] module runs animators as
// [Donburi] systems, [github.com/phanxgames/sway/preset] loads animation
// trees from YAML, and [github.com/phanxgames/sway/ebitenhost] hooks them
// into an [Ebitengine] game loop. Curves beyond the built-in set come from
// [github.com/phanxgames/sway/script] (Tengo expressions) and
// [github.com/phanxgames/sway/spring] (damped springs).
//
// [Donburi]: https://github.com/yohamta/donburi
// [Ebitengine]: https://ebitengine.org
package sway
