// Package console is the line-oriented terminal front-end. It renders the
// current view of a session and turns typed commands into session actions.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mmynk/courtsplit/internal/calculator"
	"github.com/mmynk/courtsplit/internal/ledger"
	"github.com/mmynk/courtsplit/internal/session"
)

const listHelp = `commands:
  new <name> [/ <sport>]   create an event
  open <n>                 show event n
  rm <n>                   delete event n
  ls                       redraw the list
  quit                     exit`

const detailHelp = `commands:
  name <text>    set the player name
  phone <text>   set the phone number (9 characters)
  add            add the player
  pay <n>        toggle paid for player n
  drop <n>       remove player n
  cost <text>    set the total cost
  show           redraw the event
  back           return to the list
  quit           exit`

// Console drives one session from a text stream.
type Console struct {
	sess     *session.Session
	out      io.Writer
	currency string
}

// New creates a Console writing to out. Amounts are prefixed with currency.
func New(sess *session.Session, out io.Writer, currency string) *Console {
	return &Console{sess: sess, out: out, currency: currency}
}

// Run renders the current view, then executes one command per input line
// until quit, end of input or ctx is done. A pending read is abandoned when
// ctx is cancelled and Run returns ctx.Err().
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				readErr <- ctx.Err()
				return
			}
		}
		readErr <- scanner.Err()
	}()

	c.Render()
	for {
		fmt.Fprint(c.out, "> ")
		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(c.out)
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				fmt.Fprintln(c.out)
				return <-readErr
			}
			line = l
		}

		quit, err := c.Exec(ctx, line)
		if err != nil {
			slog.Error("Command failed", "command", line, "error", err)
			fmt.Fprintf(c.out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

// Exec runs a single command line and reports whether the user asked to quit.
// Returned errors are storage failures; invalid input is ignored.
func (c *Console) Exec(ctx context.Context, line string) (bool, error) {
	cmd, arg, _ := strings.Cut(strings.TrimLeft(line, " \t"), " ")
	switch cmd {
	case "":
		return false, nil
	case "quit", "exit":
		return true, nil
	}

	if c.sess.View() == session.DetailView {
		return false, c.execDetail(ctx, cmd, arg)
	}
	return false, c.execList(ctx, cmd, arg)
}

func (c *Console) execList(ctx context.Context, cmd, arg string) error {
	switch cmd {
	case "ls":
	case "new":
		name, sport := splitEventArg(arg)
		if _, err := c.sess.CreateEvent(ctx, name, sport); err != nil {
			return err
		}
	case "open":
		id, ok := c.eventID(arg)
		if !ok {
			return nil
		}
		if err := c.sess.Select(id); err != nil && !errors.Is(err, ledger.ErrEventNotFound) {
			return err
		}
	case "rm":
		id, ok := c.eventID(arg)
		if !ok {
			return nil
		}
		if err := c.sess.DeleteEvent(ctx, id); err != nil {
			return err
		}
	case "help":
		fmt.Fprintln(c.out, listHelp)
		return nil
	default:
		fmt.Fprintf(c.out, "unknown command %q, type help\n", cmd)
		return nil
	}
	c.Render()
	return nil
}

func (c *Console) execDetail(ctx context.Context, cmd, arg string) error {
	var err error
	switch cmd {
	case "show":
	case "back":
		c.sess.Back()
	case "name":
		c.sess.SetPlayerName(arg)
	case "phone":
		c.sess.SetPlayerPhone(arg)
	case "add":
		_, err = c.sess.AddPlayer(ctx)
	case "pay":
		if id, ok := c.playerID(arg); ok {
			err = c.sess.TogglePaid(ctx, id)
		}
	case "drop":
		if id, ok := c.playerID(arg); ok {
			err = c.sess.RemovePlayer(ctx, id)
		}
	case "cost":
		err = c.sess.SetTotalCost(ctx, arg)
	case "help":
		fmt.Fprintln(c.out, detailHelp)
		return nil
	default:
		fmt.Fprintf(c.out, "unknown command %q, type help\n", cmd)
		return nil
	}
	if err != nil && !errors.Is(err, ledger.ErrPlayerNotFound) {
		return err
	}
	c.Render()
	return nil
}

// eventID maps a 1-based list position to an event ID.
func (c *Console) eventID(arg string) (string, bool) {
	events := c.sess.Events()
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n < 1 || n > len(events) {
		return "", false
	}
	return events[n-1].ID, true
}

// playerID maps a 1-based roster position of the selected event to a player ID.
func (c *Console) playerID(arg string) (string, bool) {
	ev, ok := c.sess.Current()
	if !ok {
		return "", false
	}
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n < 1 || n > len(ev.Players) {
		return "", false
	}
	return ev.Players[n-1].ID, true
}

// Render writes the current view.
func (c *Console) Render() {
	if c.sess.View() == session.DetailView {
		c.renderDetail()
		return
	}
	c.renderList()
}

func (c *Console) renderList() {
	fmt.Fprintln(c.out, "COURTSPLIT")
	fmt.Fprintln(c.out, "My tabs")
	events := c.sess.Events()
	if len(events) == 0 {
		fmt.Fprintln(c.out, "  (no events, type: new <name> / <sport>)")
		return
	}
	for i, ev := range events {
		fmt.Fprintf(c.out, "%3d. %s\n", i+1, ev.Name)
		if ev.Sport != "" {
			fmt.Fprintf(c.out, "     %s\n", strings.ToUpper(ev.Sport))
		}
	}
}

func (c *Console) renderDetail() {
	ev, ok := c.sess.Current()
	if !ok {
		c.renderList()
		return
	}
	summary, err := c.sess.Summary()
	if err != nil {
		c.renderList()
		return
	}

	fmt.Fprintf(c.out, "< %s\n", ev.Name)

	form := c.sess.Form()
	addState := "disabled"
	if c.sess.CanAddPlayer() {
		addState = "ready"
	}
	fmt.Fprintf(c.out, "  new player: name=%q phone=%q add=%s\n", form.Name, form.Phone, addState)

	for i, p := range ev.Players {
		mark := " "
		if p.Paid {
			mark = "x"
		}
		fmt.Fprintf(c.out, "%3d. [%s] %s  %s\n", i+1, mark, p.Name, p.Phone)
	}

	fmt.Fprintf(c.out, "TOTAL COST: %s\n", ev.TotalCost)
	fmt.Fprintf(c.out, "PARTICIPANTS: %d people  EACH PAYS: %s\n", summary.Participants, c.money(summary.Share))
	fmt.Fprintf(c.out, "PAID: %d/%d  COLLECTED: %s  OUTSTANDING: %s\n",
		summary.Paid, summary.Participants, c.money(summary.Collected), c.money(summary.Outstanding))
}

func (c *Console) money(v float64) string {
	return strings.TrimSpace(c.currency + " " + calculator.FormatAmount(v))
}

// splitEventArg splits "name / sport" at the first separator. Only the
// spaces that belong to the separator are dropped; the name and sport are
// otherwise kept as typed.
func splitEventArg(arg string) (name, sport string) {
	if name, sport, ok := strings.Cut(arg, " / "); ok {
		return name, sport
	}
	name, sport, _ = strings.Cut(arg, "/")
	return name, sport
}
