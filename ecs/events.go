package ecs

// EventKind identifies gameplay events raised by systems.
type EventKind string

const (
	EventSalvageSpawned   EventKind = "salvage_spawned"
	EventSalvageCollected EventKind = "salvage_collected"
	EventAbsorbed         EventKind = "absorbed"
	EventBounce           EventKind = "bounce"
	EventSessionEnded     EventKind = "session_ended"
)

// Event is a gameplay event payload. Entity is the subject; Data carries
// kind-specific detail such as the collecting player id.
type Event struct {
	Kind   EventKind
	Entity Entity
	Data   any
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
