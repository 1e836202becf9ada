package sway

// TweenCompleted is emitted each time a tweenable with a completion event
// crosses a cycle boundary.
type TweenCompleted struct {
	// Entity identifies the owner of the animator that produced the event.
	// It is zero until the Animator tags it.
	Entity uint64
	// UserData is the identifier passed to WithCompletedEvent.
	UserData uint64
	// Cycle is the number of cycles completed so far, starting at 1.
	Cycle int
}

// EventSink receives completion events relayed by an Animator.
type EventSink interface {
	EmitCompleted(event TweenCompleted)
}

// SinkFunc adapts a function to EventSink.
type SinkFunc func(event TweenCompleted)

// EmitCompleted calls f(event).
func (f SinkFunc) EmitCompleted(event TweenCompleted) { f(event) }

// EventBuffer is an EventSink that queues events until drained. The zero
// value is ready to use.
type EventBuffer struct {
	events []TweenCompleted
}

// EmitCompleted appends the event.
func (b *EventBuffer) EmitCompleted(event TweenCompleted) {
	b.events = append(b.events, event)
}

// Len returns the number of queued events.
func (b *EventBuffer) Len() int { return len(b.events) }

// Events returns the queued events. The returned slice MUST NOT be retained
// past the next Drain or Reset.
func (b *EventBuffer) Events() []TweenCompleted { return b.events }

// Drain calls fn for every queued event in order, then empties the buffer
// keeping its capacity.
func (b *EventBuffer) Drain(fn func(TweenCompleted)) {
	for _, e := range b.events {
		fn(e)
	}
	b.events = b.events[:0]
}

// Reset discards queued events.
func (b *EventBuffer) Reset() { b.events = b.events[:0] }

func emit(events *[]TweenCompleted, enabled bool, userData uint64, cycle int) {
	if !enabled || events == nil {
		return
	}
	*events = append(*events, TweenCompleted{UserData: userData, Cycle: cycle})
	if globalDebug {
		debugLog("completed user=%d cycle=%d", userData, cycle)
	}
}
