package models

import "github.com/google/uuid"

// Event represents a shared-cost occasion whose total is split evenly among its players.
type Event struct {
	// ID is the unique identifier for the event (UUID format for new events).
	ID string

	// Name is the display name of the event (e.g., "Friday Match").
	Name string

	// Sport is a free-form label (e.g., "Soccer"). May be empty.
	Sport string

	// Players is the roster in insertion order, which is also display order.
	Players []Player

	// TotalCost is the total as typed by the user. It is not normalized;
	// see calculator.ParseCost for how it is interpreted.
	TotalCost string
}

// NewEvent creates an event with a fresh ID, an empty roster and an empty cost.
func NewEvent(name, sport string) Event {
	return Event{
		ID:    uuid.New().String(),
		Name:  name,
		Sport: sport,
	}
}

// Clone returns a deep copy of the event so the roster can be mutated independently.
func (e Event) Clone() Event {
	c := e
	if e.Players != nil {
		c.Players = make([]Player, len(e.Players))
		copy(c.Players, e.Players)
	}
	return c
}

// PlayerIndex returns the roster position of the player with the given ID, or -1.
func (e Event) PlayerIndex(playerID string) int {
	for i, p := range e.Players {
		if p.ID == playerID {
			return i
		}
	}
	return -1
}

// PaidCount returns how many players on the roster have paid.
func (e Event) PaidCount() int {
	n := 0
	for _, p := range e.Players {
		if p.Paid {
			n++
		}
	}
	return n
}
