// Package ecs runs sway animators inside a [Donburi] world.
//
// Attach an animator next to the component it animates, then let an
// [AnimatorSystem] tick every entity that has both each frame:
//
//	positions := donburi.NewComponentType[Position]()
//	animators := ecs.NewAnimatorComponent[Position]()
//
//	ecs.Attach(world.Entry(e), animators, sway.NewAnimator[Position](tween))
//
//	system := ecs.NewAnimatorSystem(positions, animators)
//	// each frame:
//	system.Update(world, dt)
//	ecs.TweenCompletedEvent.ProcessEvents(world)
//
// Completion events are published to [TweenCompletedEvent] with the Entity
// field set to the owning entity; subscribe to it from game systems.
// [BundleSystem] animates two components of one entity through a single
// animator over a [sway.Pair].
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
