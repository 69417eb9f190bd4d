package models

import "github.com/google/uuid"

// PhoneLength is the number of characters a phone number must have when a player is added.
// It is checked at input time only; stored numbers are never re-validated.
const PhoneLength = 9

// Player represents one participant of an Event.
type Player struct {
	// ID is the unique identifier for the player. New players get a UUID;
	// identifiers read back from storage (including legacy numeric ones) are kept as-is.
	ID string

	// Name is the display name of the player.
	Name string

	// Phone is the player's phone number as typed.
	Phone string

	// Paid reports whether the player has paid their share.
	Paid bool
}

// NewPlayer creates an unpaid player with a fresh ID.
func NewPlayer(name, phone string) Player {
	return Player{
		ID:    uuid.New().String(),
		Name:  name,
		Phone: phone,
	}
}
