package ecs

import (
	"time"

	"github.com/phanxgames/sway"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// TweenCompletedEvent is the Donburi event type for sway completion events.
// Subscribe to this in your ECS systems to react to finished tweens.
var TweenCompletedEvent = events.NewEventType[sway.TweenCompleted]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink that publishes completion events to
// TweenCompletedEvent. Events are queued until ProcessEvents is called.
func NewDonburiSink(world donburi.World) sway.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitCompleted(event sway.TweenCompleted) {
	TweenCompletedEvent.Publish(s.world, event)
}

// Entity converts a completion event's owner back into a Donburi entity.
func Entity(event sway.TweenCompleted) donburi.Entity {
	return donburi.Entity(event.Entity)
}

// NewAnimatorComponent creates the component type that stores animators for
// targets of type T.
func NewAnimatorComponent[T any]() *donburi.ComponentType[sway.Animator[T]] {
	return donburi.NewComponentType[sway.Animator[T]]()
}

// Attach stores a copy of anim on the entry, replacing any animator already
// there. The pointer passed in is not retained: control the attached animator
// through component.Get(entry).
func Attach[T any](entry *donburi.Entry, component *donburi.ComponentType[sway.Animator[T]], anim *sway.Animator[T]) {
	if entry.HasComponent(component) {
		component.SetValue(entry, *anim)
		return
	}
	donburi.Add(entry, component, anim)
}

// AnimatorSystem ticks every entity that has both a target component and an
// animator for it.
type AnimatorSystem[T any] struct {
	target   *donburi.ComponentType[T]
	animator *donburi.ComponentType[sway.Animator[T]]
	query    *donburi.Query
	sink     sway.EventSink
	fallback worldSink
}

// worldSink caches the default Donburi sink for the last world updated.
type worldSink struct {
	world donburi.World
	sink  sway.EventSink
}

func (c *worldSink) get(world donburi.World) sway.EventSink {
	if c.sink == nil || c.world != world {
		c.world = world
		c.sink = NewDonburiSink(world)
	}
	return c.sink
}

// NewAnimatorSystem creates a system over entities carrying target and
// animator components.
func NewAnimatorSystem[T any](target *donburi.ComponentType[T], animator *donburi.ComponentType[sway.Animator[T]]) *AnimatorSystem[T] {
	return &AnimatorSystem[T]{
		target:   target,
		animator: animator,
		query:    donburi.NewQuery(filter.Contains(target, animator)),
	}
}

// WithSink routes completion events to sink instead of TweenCompletedEvent.
func (s *AnimatorSystem[T]) WithSink(sink sway.EventSink) *AnimatorSystem[T] {
	s.sink = sink
	return s
}

// Update ticks every matching animator by delta.
func (s *AnimatorSystem[T]) Update(world donburi.World, delta time.Duration) {
	sink := s.sink
	if sink == nil {
		sink = s.fallback.get(world)
	}
	s.query.Each(world, func(entry *donburi.Entry) {
		anim := s.animator.Get(entry)
		anim.Tick(delta, s.target.Get(entry), uint64(entry.Entity()), sink)
	})
}

// BundleSystem animates two components of the same entity with one animator
// over a Pair. Both components are copied into the pair, ticked together and
// written back.
type BundleSystem[A, B any] struct {
	first    *donburi.ComponentType[A]
	second   *donburi.ComponentType[B]
	animator *donburi.ComponentType[sway.Animator[sway.Pair[A, B]]]
	query    *donburi.Query
	sink     sway.EventSink
	fallback worldSink
}

// NewBundleSystem creates a system over entities carrying first, second and
// a bundle animator.
func NewBundleSystem[A, B any](first *donburi.ComponentType[A], second *donburi.ComponentType[B], animator *donburi.ComponentType[sway.Animator[sway.Pair[A, B]]]) *BundleSystem[A, B] {
	return &BundleSystem[A, B]{
		first:    first,
		second:   second,
		animator: animator,
		query:    donburi.NewQuery(filter.Contains(first, second, animator)),
	}
}

// WithSink routes completion events to sink instead of TweenCompletedEvent.
func (s *BundleSystem[A, B]) WithSink(sink sway.EventSink) *BundleSystem[A, B] {
	s.sink = sink
	return s
}

// Update ticks every matching bundle animator by delta. Paused animators are
// skipped without copying.
func (s *BundleSystem[A, B]) Update(world donburi.World, delta time.Duration) {
	sink := s.sink
	if sink == nil {
		sink = s.fallback.get(world)
	}
	s.query.Each(world, func(entry *donburi.Entry) {
		anim := s.animator.Get(entry)
		if anim.State() == sway.Paused {
			return
		}
		a, b := s.first.Get(entry), s.second.Get(entry)
		pair := sway.Pair[A, B]{First: *a, Second: *b}
		anim.Tick(delta, &pair, uint64(entry.Entity()), sink)
		*a, *b = pair.First, pair.Second
	})
}
