package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/courtsplit/internal/ledger"
	"github.com/mmynk/courtsplit/internal/persistence"
	"github.com/mmynk/courtsplit/internal/storage/memory"
)

func newSession(t *testing.T) (*Session, *ledger.Book) {
	t.Helper()
	book, err := ledger.Open(context.Background(), persistence.NewAdapter(memory.New(), ""))
	require.NoError(t, err)
	return New(book), book
}

func TestStartsInList(t *testing.T) {
	s, _ := newSession(t)
	assert.Equal(t, ListView, s.View())
	_, ok := s.Current()
	assert.False(t, ok)
}

func TestSelectAndBack(t *testing.T) {
	ctx := context.Background()
	s, book := newSession(t)
	ev, _ := book.CreateEvent(ctx, "Friday Match", "Soccer")

	require.NoError(t, s.Select(ev.ID))
	assert.Equal(t, DetailView, s.View())
	cur, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, ev.ID, cur.ID)

	s.Back()
	assert.Equal(t, ListView, s.View())

	assert.ErrorIs(t, s.Select("missing"), ledger.ErrEventNotFound)
	assert.Equal(t, ListView, s.View())
}

func TestCreateEvent_BlankIgnored(t *testing.T) {
	ctx := context.Background()
	s, book := newSession(t)

	created, err := s.CreateEvent(ctx, " ", "Soccer")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 0, book.Len())

	created, err = s.CreateEvent(ctx, "Friday Match", "")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Len(t, s.Events(), 1)
}

func TestDeletedSelectionFallsBackToList(t *testing.T) {
	ctx := context.Background()
	s, book := newSession(t)
	ev, _ := book.CreateEvent(ctx, "Friday Match", "Soccer")
	require.NoError(t, s.Select(ev.ID))

	s.SetPlayerName("Ana")

	// Deleted behind the session's back, straight on the ledger.
	require.NoError(t, book.DeleteEvent(ctx, ev.ID))
	assert.Equal(t, ListView, s.View())
	assert.Equal(t, ListView, s.View())
	assert.Equal(t, "Ana", s.Form().Name, "View must not reset state")
	_, ok := s.Current()
	assert.False(t, ok)
	assert.ErrorIs(t, s.SetTotalCost(ctx, "10"), ErrNoSelection)

	other, _ := book.CreateEvent(ctx, "Padel", "Padel")
	require.NoError(t, s.Select(other.ID))
	assert.Equal(t, DetailView, s.View())
	assert.Empty(t, s.Form().Name)
}

func TestDeleteEvent(t *testing.T) {
	ctx := context.Background()
	s, book := newSession(t)
	a, _ := book.CreateEvent(ctx, "A", "")
	b, _ := book.CreateEvent(ctx, "B", "")

	require.NoError(t, s.DeleteEvent(ctx, a.ID))
	require.NoError(t, s.DeleteEvent(ctx, a.ID))
	events := s.Events()
	require.Len(t, events, 1)
	assert.Equal(t, b.ID, events[0].ID)
}

func TestAddPlayerForm(t *testing.T) {
	ctx := context.Background()
	s, book := newSession(t)
	ev, _ := book.CreateEvent(ctx, "Friday Match", "Soccer")
	require.NoError(t, s.Select(ev.ID))

	s.SetPlayerName("Ana")
	assert.True(t, s.SetPlayerPhone("98765432"))
	assert.False(t, s.CanAddPlayer())

	added, err := s.AddPlayer(ctx)
	require.NoError(t, err)
	assert.False(t, added)
	cur, _ := s.Current()
	assert.Empty(t, cur.Players)

	// Longer input is refused and the previous value kept.
	assert.False(t, s.SetPlayerPhone("9876543210"))
	assert.Equal(t, "98765432", s.Form().Phone)

	assert.True(t, s.SetPlayerPhone("987654321"))
	assert.True(t, s.CanAddPlayer())

	added, err = s.AddPlayer(ctx)
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, PlayerForm{}, s.Form())

	cur, _ = s.Current()
	require.Len(t, cur.Players, 1)
	assert.Equal(t, "Ana", cur.Players[0].Name)
	assert.False(t, cur.Players[0].Paid)
}

func TestFormResetsOnSelect(t *testing.T) {
	ctx := context.Background()
	s, book := newSession(t)
	ev, _ := book.CreateEvent(ctx, "Friday Match", "Soccer")

	require.NoError(t, s.Select(ev.ID))
	s.SetPlayerName("Ana")
	s.Back()
	require.NoError(t, s.Select(ev.ID))
	assert.Equal(t, PlayerForm{}, s.Form())
}

func TestDetailActions(t *testing.T) {
	ctx := context.Background()
	s, book := newSession(t)
	ev, _ := book.CreateEvent(ctx, "Friday Match", "Soccer")
	ana, _ := book.AddPlayer(ctx, ev.ID, "Ana", "987654321")
	leo, _ := book.AddPlayer(ctx, ev.ID, "Leo", "912345678")
	require.NoError(t, s.Select(ev.ID))

	require.NoError(t, s.SetTotalCost(ctx, "100"))
	summary, err := s.Summary()
	require.NoError(t, err)
	assert.Equal(t, 50.0, summary.Share)

	require.NoError(t, s.TogglePaid(ctx, leo.ID))
	cur, _ := s.Current()
	assert.False(t, cur.Players[0].Paid)
	assert.True(t, cur.Players[1].Paid)

	require.NoError(t, s.RemovePlayer(ctx, ana.ID))
	summary, _ = s.Summary()
	assert.Equal(t, 100.0, summary.Share)
	assert.Equal(t, 1, summary.Paid)
}

func TestDetailActionsNeedSelection(t *testing.T) {
	ctx := context.Background()
	s, _ := newSession(t)

	_, err := s.AddPlayer(ctx)
	assert.ErrorIs(t, err, ErrNoSelection)
	assert.ErrorIs(t, s.TogglePaid(ctx, "p1"), ErrNoSelection)
	assert.ErrorIs(t, s.RemovePlayer(ctx, "p1"), ErrNoSelection)
	_, err = s.Summary()
	assert.ErrorIs(t, err, ErrNoSelection)
}
