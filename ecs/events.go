package ecs

// EventKind identifies simulation events.
type EventKind string

const (
	EventBombPlanted     EventKind = "bomb_planted"
	EventBombExploded    EventKind = "bomb_exploded"
	EventWallDestroyed   EventKind = "wall_destroyed"
	EventEnemyDestroyed  EventKind = "enemy_destroyed"
	EventPlayerDied      EventKind = "player_died"
	EventPowerUpTaken    EventKind = "power_up_taken"
	EventPlayerReachExit EventKind = "player_reached_exit"
)

// Event is a one-shot notification emitted during a tick. Presentation code
// may drain them for sound cues or effects; the simulation never reads them.
type Event struct {
	Kind   EventKind
	Entity Entity
	X, Y   int
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

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
