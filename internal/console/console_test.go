package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/courtsplit/internal/ledger"
	"github.com/mmynk/courtsplit/internal/persistence"
	"github.com/mmynk/courtsplit/internal/session"
	"github.com/mmynk/courtsplit/internal/storage/memory"
)

func newConsole(t *testing.T, blob string) (*Console, *session.Session, *bytes.Buffer, *memory.Store) {
	t.Helper()
	ctx := context.Background()
	store := memory.New()
	require.NoError(t, store.Put(ctx, persistence.DefaultKey, blob))
	book, err := ledger.Open(ctx, persistence.NewAdapter(store, ""))
	require.NoError(t, err)

	sess := session.New(book)
	out := &bytes.Buffer{}
	return New(sess, out, "S/"), sess, out, store
}

func TestRun_Script(t *testing.T) {
	c, sess, out, store := newConsole(t, "")

	script := strings.Join([]string{
		"new Friday Match / Soccer",
		"new   ",
		"open 1",
		"name Ana",
		"phone 987654321",
		"add",
		"name Leo",
		"phone 12345",
		"add",
		"phone 912345678",
		"add",
		"cost 100",
		"pay 2",
		"show",
		"quit",
	}, "\n")

	require.NoError(t, c.Run(context.Background(), strings.NewReader(script)))

	assert.Equal(t, session.DetailView, sess.View())
	ev, ok := sess.Current()
	require.True(t, ok)
	assert.Equal(t, "Friday Match", ev.Name)
	assert.Equal(t, "Soccer", ev.Sport)
	require.Len(t, ev.Players, 2)
	assert.False(t, ev.Players[0].Paid)
	assert.True(t, ev.Players[1].Paid)
	assert.Len(t, sess.Events(), 1)

	text := out.String()
	assert.Contains(t, text, "SOCCER")
	assert.Contains(t, text, "EACH PAYS: S/ 50.00")
	assert.Contains(t, text, "[x] Leo  912345678")

	raw, _ := store.Get(context.Background(), persistence.DefaultKey)
	assert.Contains(t, raw, "|Friday Match|Soccer|100|")
}

func TestRun_LoadsAndNavigates(t *testing.T) {
	c, sess, out, _ := newConsole(t, "e1|Solo|Tennis|40")

	require.NoError(t, c.Run(context.Background(), strings.NewReader("open 1\n")))
	assert.Equal(t, session.DetailView, sess.View())
	assert.Contains(t, out.String(), "PARTICIPANTS: 0 people  EACH PAYS: S/ 40.00")

	_, err := c.Exec(context.Background(), "back")
	require.NoError(t, err)
	assert.Equal(t, session.ListView, sess.View())
}

func TestExec_DeleteAndBadIndexes(t *testing.T) {
	ctx := context.Background()
	c, sess, _, _ := newConsole(t, "e1|A|Soccer|10|###e2|B|Tennis|20|")

	for _, line := range []string{"open 0", "open 9", "open x", "rm 5"} {
		quit, err := c.Exec(ctx, line)
		require.NoError(t, err)
		assert.False(t, quit)
		assert.Equal(t, session.ListView, sess.View())
	}

	_, err := c.Exec(ctx, "rm 1")
	require.NoError(t, err)
	events := sess.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "e2", events[0].ID)

	_, err = c.Exec(ctx, "open 1")
	require.NoError(t, err)
	for _, line := range []string{"pay 3", "drop 0", "drop y"} {
		_, err := c.Exec(ctx, line)
		require.NoError(t, err)
	}
}

func TestExec_Quit(t *testing.T) {
	c, _, _, _ := newConsole(t, "")
	quit, err := c.Exec(context.Background(), "quit")
	require.NoError(t, err)
	assert.True(t, quit)
}

func TestExec_UnknownCommand(t *testing.T) {
	c, _, out, _ := newConsole(t, "")
	_, err := c.Exec(context.Background(), "dance")
	require.NoError(t, err)
	assert.Contains(t, out.String(), `unknown command "dance"`)
}

func TestExec_NewKeepsNameAsTyped(t *testing.T) {
	ctx := context.Background()
	c, sess, _, _ := newConsole(t, "")

	for _, line := range []string{
		"new  Padel night  / Padel ",
		"new Tennis/Clay",
		"new Futsal",
		"new  / Soccer",
	} {
		_, err := c.Exec(ctx, line)
		require.NoError(t, err)
	}

	events := sess.Events()
	require.Len(t, events, 3)
	assert.Equal(t, " Padel night ", events[0].Name)
	assert.Equal(t, "Padel ", events[0].Sport)
	assert.Equal(t, "Tennis", events[1].Name)
	assert.Equal(t, "Clay", events[1].Sport)
	assert.Equal(t, "Futsal", events[2].Name)
	assert.Equal(t, "", events[2].Sport)
}

func TestRun_StopsOnCancel(t *testing.T) {
	c, _, _, _ := newConsole(t, "")
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx, pr) }()

	_, err := pw.Write([]byte("ls\n"))
	require.NoError(t, err)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after the context was cancelled")
	}
}
