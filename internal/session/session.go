// Package session implements the two-state view machine of the interactive
// front-end: the event list, and the detail of one selected event.
//
// A Session never holds event data of its own. It remembers which event is
// selected plus the add-player form inputs, and reads everything else from the
// ledger on demand. Invalid form input is ignored rather than reported.
package session

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/mmynk/courtsplit/internal/calculator"
	"github.com/mmynk/courtsplit/internal/ledger"
	"github.com/mmynk/courtsplit/internal/models"
)

// View identifies which screen is showing.
type View int

const (
	ListView View = iota
	DetailView
)

func (v View) String() string {
	switch v {
	case DetailView:
		return "detail"
	default:
		return "list"
	}
}

// ErrNoSelection is returned by detail actions while the list is showing.
var ErrNoSelection = errors.New("no event selected")

// PlayerForm holds the add-player inputs of the detail view.
type PlayerForm struct {
	Name  string
	Phone string
}

// Session is the view state of one interactive user.
type Session struct {
	book     *ledger.Book
	selected string
	form     PlayerForm
}

// New creates a Session showing the event list.
func New(book *ledger.Book) *Session {
	return &Session{book: book}
}

// View returns the current screen. A selection whose event no longer exists
// in the ledger reads as the list; View itself never changes the selection.
func (s *Session) View() View {
	if s.selected == "" {
		return ListView
	}
	if _, err := s.book.Event(s.selected); err != nil {
		return ListView
	}
	return DetailView
}

// Events returns the events shown in the list.
func (s *Session) Events() []models.Event {
	return s.book.Events()
}

// CreateEvent adds an event from the new-event dialog. A blank name is ignored
// and reported as created=false; only storage failures are errors.
func (s *Session) CreateEvent(ctx context.Context, name, sport string) (bool, error) {
	if ledger.ValidateEventName(name) != nil {
		return false, nil
	}
	if _, err := s.book.CreateEvent(ctx, name, sport); err != nil {
		return false, err
	}
	return true, nil
}

// DeleteEvent removes an event straight from the list, without confirmation.
func (s *Session) DeleteEvent(ctx context.Context, id string) error {
	if err := s.book.DeleteEvent(ctx, id); err != nil && !errors.Is(err, ledger.ErrEventNotFound) {
		return err
	}
	if s.selected == id {
		s.Back()
	}
	return nil
}

// Select opens the detail view of an event.
func (s *Session) Select(id string) error {
	if _, err := s.book.Event(id); err != nil {
		return err
	}
	s.selected = id
	s.form = PlayerForm{}
	return nil
}

// Back returns to the list.
func (s *Session) Back() {
	s.selected = ""
	s.form = PlayerForm{}
}

// Current returns the selected event.
func (s *Session) Current() (models.Event, bool) {
	if s.View() != DetailView {
		return models.Event{}, false
	}
	ev, err := s.book.Event(s.selected)
	return ev, err == nil
}

// Summary returns the money view of the selected event.
func (s *Session) Summary() (calculator.Summary, error) {
	if s.View() != DetailView {
		return calculator.Summary{}, ErrNoSelection
	}
	return s.book.Summary(s.selected)
}

// Form returns the add-player inputs.
func (s *Session) Form() PlayerForm {
	return s.form
}

// SetPlayerName updates the player name input.
func (s *Session) SetPlayerName(name string) {
	s.form.Name = name
}

// SetPlayerPhone updates the phone input. Input longer than the phone length
// is refused and the previous value kept; it reports whether the value changed.
func (s *Session) SetPlayerPhone(phone string) bool {
	if utf8.RuneCountInString(phone) > models.PhoneLength {
		return false
	}
	s.form.Phone = phone
	return true
}

// CanAddPlayer reports whether the add-player action is enabled.
func (s *Session) CanAddPlayer() bool {
	return ledger.ValidatePlayer(s.form.Name, s.form.Phone) == nil
}

// AddPlayer submits the form. When the action is disabled nothing happens and
// added is false. On success the form is cleared.
func (s *Session) AddPlayer(ctx context.Context) (bool, error) {
	if s.View() != DetailView {
		return false, ErrNoSelection
	}
	if !s.CanAddPlayer() {
		return false, nil
	}
	if _, err := s.book.AddPlayer(ctx, s.selected, s.form.Name, s.form.Phone); err != nil {
		return false, err
	}
	s.form = PlayerForm{}
	return true, nil
}

// TogglePaid flips the paid flag of a player of the selected event.
func (s *Session) TogglePaid(ctx context.Context, playerID string) error {
	if s.View() != DetailView {
		return ErrNoSelection
	}
	_, err := s.book.TogglePaid(ctx, s.selected, playerID)
	return err
}

// RemovePlayer removes a player from the selected event.
func (s *Session) RemovePlayer(ctx context.Context, playerID string) error {
	if s.View() != DetailView {
		return ErrNoSelection
	}
	return s.book.RemovePlayer(ctx, s.selected, playerID)
}

// SetTotalCost stores the cost input of the selected event verbatim.
func (s *Session) SetTotalCost(ctx context.Context, text string) error {
	if s.View() != DetailView {
		return ErrNoSelection
	}
	return s.book.SetTotalCost(ctx, s.selected, text)
}
