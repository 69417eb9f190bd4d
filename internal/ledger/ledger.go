// Package ledger holds the in-memory event collection that every front-end mutates.
//
// The Book is the single source of truth: views read events from it by ID and
// never keep their own copies. Every mutation is applied to a copy of the
// collection, saved in full, and only then made visible, so a failed save
// leaves the Book unchanged.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/mmynk/courtsplit/internal/calculator"
	"github.com/mmynk/courtsplit/internal/metrics"
	"github.com/mmynk/courtsplit/internal/models"
	"github.com/mmynk/courtsplit/internal/persistence"
)

var (
	// ErrBlankName is returned when an event or player name is empty after trimming.
	ErrBlankName = errors.New("name must not be blank")
	// ErrInvalidPhone is returned when a phone number is not exactly models.PhoneLength runes.
	ErrInvalidPhone = fmt.Errorf("phone number must have exactly %d characters", models.PhoneLength)
	// ErrEventNotFound is returned when no event has the requested ID.
	ErrEventNotFound = errors.New("event not found")
	// ErrPlayerNotFound is returned when the event has no player with the requested ID.
	ErrPlayerNotFound = errors.New("player not found")
)

// Saver persists the full event collection.
type Saver interface {
	Save(ctx context.Context, events []models.Event) error
}

// Repository loads and saves the full event collection.
type Repository interface {
	Saver
	Load(ctx context.Context) ([]models.Event, persistence.Report, error)
}

// Book is the event collection.
type Book struct {
	mu     sync.RWMutex
	events []models.Event
	saver  Saver
}

// New creates a Book holding events, persisting every mutation through saver.
func New(saver Saver, events []models.Event) *Book {
	if events == nil {
		events = []models.Event{}
	}
	metrics.Events.Set(float64(len(events)))
	return &Book{events: events, saver: saver}
}

// Open loads the stored collection once and returns a Book over it.
func Open(ctx context.Context, repo Repository) (*Book, error) {
	events, _, err := repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("Ledger loaded", "events", len(events))
	return New(repo, events), nil
}

// ValidateEventName rejects blank event names.
func ValidateEventName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrBlankName
	}
	return nil
}

// ValidatePlayer checks the add-player form: a non-blank name and a phone
// number of exactly models.PhoneLength characters. Digits are not enforced.
func ValidatePlayer(name, phone string) error {
	if strings.TrimSpace(name) == "" {
		return ErrBlankName
	}
	if utf8.RuneCountInString(phone) != models.PhoneLength {
		return ErrInvalidPhone
	}
	return nil
}

// Events returns a copy of the collection in display order.
func (b *Book) Events() []models.Event {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return cloneAll(b.events)
}

// Len returns the number of events.
func (b *Book) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.events)
}

// Event returns a copy of the event with the given ID.
func (b *Book) Event(id string) (models.Event, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	i := indexOf(b.events, id)
	if i < 0 {
		return models.Event{}, ErrEventNotFound
	}
	return b.events[i].Clone(), nil
}

// Summary computes the share and payment progress of an event.
func (b *Book) Summary(id string) (calculator.Summary, error) {
	ev, err := b.Event(id)
	if err != nil {
		return calculator.Summary{}, err
	}
	return calculator.Summarize(ev.TotalCost, len(ev.Players), ev.PaidCount()), nil
}

// CreateEvent appends a new event with an empty roster and cost.
func (b *Book) CreateEvent(ctx context.Context, name, sport string) (models.Event, error) {
	if err := ValidateEventName(name); err != nil {
		return models.Event{}, err
	}
	ev := models.NewEvent(name, sport)
	err := b.mutate(ctx, "create_event", func(events []models.Event) ([]models.Event, error) {
		return append(events, ev), nil
	})
	if err != nil {
		return models.Event{}, err
	}
	return ev.Clone(), nil
}

// DeleteEvent removes the event with the given ID. There is no undo.
func (b *Book) DeleteEvent(ctx context.Context, id string) error {
	return b.mutate(ctx, "delete_event", func(events []models.Event) ([]models.Event, error) {
		i := indexOf(events, id)
		if i < 0 {
			return nil, ErrEventNotFound
		}
		return append(events[:i], events[i+1:]...), nil
	})
}

// AddPlayer appends an unpaid player to the event's roster.
func (b *Book) AddPlayer(ctx context.Context, eventID, name, phone string) (models.Player, error) {
	if err := ValidatePlayer(name, phone); err != nil {
		return models.Player{}, err
	}
	p := models.NewPlayer(name, phone)
	err := b.mutateEvent(ctx, "add_player", eventID, func(ev *models.Event) error {
		ev.Players = append(ev.Players, p)
		return nil
	})
	if err != nil {
		return models.Player{}, err
	}
	return p, nil
}

// TogglePaid flips the paid flag of one player and returns the updated player.
func (b *Book) TogglePaid(ctx context.Context, eventID, playerID string) (models.Player, error) {
	var updated models.Player
	err := b.mutateEvent(ctx, "toggle_paid", eventID, func(ev *models.Event) error {
		i := ev.PlayerIndex(playerID)
		if i < 0 {
			return ErrPlayerNotFound
		}
		ev.Players[i].Paid = !ev.Players[i].Paid
		updated = ev.Players[i]
		return nil
	})
	return updated, err
}

// SetPaid sets the paid flag of one player and returns the updated player.
func (b *Book) SetPaid(ctx context.Context, eventID, playerID string, paid bool) (models.Player, error) {
	var updated models.Player
	err := b.mutateEvent(ctx, "set_paid", eventID, func(ev *models.Event) error {
		i := ev.PlayerIndex(playerID)
		if i < 0 {
			return ErrPlayerNotFound
		}
		ev.Players[i].Paid = paid
		updated = ev.Players[i]
		return nil
	})
	return updated, err
}

// RemovePlayer removes one player from the event's roster.
func (b *Book) RemovePlayer(ctx context.Context, eventID, playerID string) error {
	return b.mutateEvent(ctx, "remove_player", eventID, func(ev *models.Event) error {
		i := ev.PlayerIndex(playerID)
		if i < 0 {
			return ErrPlayerNotFound
		}
		ev.Players = append(ev.Players[:i], ev.Players[i+1:]...)
		return nil
	})
}

// SetTotalCost stores text verbatim as the event's total cost.
func (b *Book) SetTotalCost(ctx context.Context, eventID, text string) error {
	return b.mutateEvent(ctx, "set_total_cost", eventID, func(ev *models.Event) error {
		ev.TotalCost = text
		return nil
	})
}

func (b *Book) mutateEvent(ctx context.Context, op, eventID string, fn func(ev *models.Event) error) error {
	return b.mutate(ctx, op, func(events []models.Event) ([]models.Event, error) {
		i := indexOf(events, eventID)
		if i < 0 {
			return nil, ErrEventNotFound
		}
		if err := fn(&events[i]); err != nil {
			return nil, err
		}
		return events, nil
	})
}

// mutate applies fn to a copy of the collection, saves the result and commits it.
func (b *Book) mutate(ctx context.Context, op string, fn func(events []models.Event) ([]models.Event, error)) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	next, err := fn(cloneAll(b.events))
	if err != nil {
		return err
	}
	if err := b.saver.Save(ctx, next); err != nil {
		return err
	}

	b.events = next
	metrics.Mutations.WithLabelValues(op).Inc()
	metrics.Events.Set(float64(len(next)))
	return nil
}

func indexOf(events []models.Event, id string) int {
	for i := range events {
		if events[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneAll(events []models.Event) []models.Event {
	out := make([]models.Event, len(events))
	for i, e := range events {
		out[i] = e.Clone()
	}
	return out
}
