package ecs

// EventKind identifies editor and simulation events.
type EventKind string

const (
	EventToolSelected   EventKind = "tool_selected"
	EventToolChanged    EventKind = "tool_changed"
	EventToolCleared    EventKind = "tool_cleared"
	EventPlaced         EventKind = "placed"
	EventReplaced       EventKind = "replaced"
	EventLevelCleared   EventKind = "level_cleared"
	EventSaveRequested  EventKind = "save_requested"
	EventBlockTriggered EventKind = "block_triggered"
	EventBlockReleased  EventKind = "block_released"
)

// Event is a generic ECS event payload.
type Event struct {
	Kind   EventKind
	Entity Entity
	Data   any
}

// EventQueue is a simple FIFO queue drained once per frame by the game loop.
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

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
