package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/courtsplit/internal/calculator"
	"github.com/mmynk/courtsplit/internal/ledger"
	"github.com/mmynk/courtsplit/internal/models"
	"github.com/mmynk/courtsplit/pkg/api"
	"github.com/mmynk/courtsplit/pkg/api/apiconnect"
)

// EventService implements the Connect EventService over a ledger.
type EventService struct {
	apiconnect.UnimplementedEventServiceHandler
	book     *ledger.Book
	currency string
}

// NewEventService creates a new EventService. Share amounts are rendered with currency.
func NewEventService(book *ledger.Book, currency string) *EventService {
	return &EventService{book: book, currency: currency}
}

// toConnectError maps ledger errors to Connect codes.
func toConnectError(err error) error {
	switch {
	case errors.Is(err, ledger.ErrBlankName), errors.Is(err, ledger.ErrInvalidPhone):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, ledger.ErrEventNotFound), errors.Is(err, ledger.ErrPlayerNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

func toAPIPlayer(p models.Player) *api.Player {
	return &api.Player{
		ID:    p.ID,
		Name:  p.Name,
		Phone: p.Phone,
		Paid:  p.Paid,
	}
}

func toAPIEvent(ev models.Event) *api.Event {
	players := make([]*api.Player, len(ev.Players))
	for i, p := range ev.Players {
		players[i] = toAPIPlayer(p)
	}
	return &api.Event{
		ID:        ev.ID,
		Name:      ev.Name,
		Sport:     ev.Sport,
		Players:   players,
		TotalCost: ev.TotalCost,
	}
}

func (s *EventService) toAPISummary(sum calculator.Summary) *api.Summary {
	return &api.Summary{
		Total:        sum.Total,
		Share:        sum.Share,
		Participants: int32(sum.Participants),
		Paid:         int32(sum.Paid),
		Collected:    sum.Collected,
		Outstanding:  sum.Outstanding,
		ShareText:    strings.TrimSpace(s.currency + " " + calculator.FormatAmount(sum.Share)),
	}
}

// ListEvents returns every event in display order.
func (s *EventService) ListEvents(ctx context.Context, req *connect.Request[api.ListEventsRequest]) (*connect.Response[api.ListEventsResponse], error) {
	events := s.book.Events()
	out := make([]*api.Event, len(events))
	for i, ev := range events {
		out[i] = toAPIEvent(ev)
	}

	slog.Debug("ListEvents successful", "count", len(out))

	return connect.NewResponse(&api.ListEventsResponse{Events: out}), nil
}

// GetEvent returns one event with its summary.
func (s *EventService) GetEvent(ctx context.Context, req *connect.Request[api.GetEventRequest]) (*connect.Response[api.GetEventResponse], error) {
	ev, err := s.book.Event(req.Msg.EventID)
	if err != nil {
		slog.Warn("GetEvent failed", "event_id", req.Msg.EventID, "error", err)
		return nil, toConnectError(err)
	}

	sum := calculator.Summarize(ev.TotalCost, len(ev.Players), ev.PaidCount())

	return connect.NewResponse(&api.GetEventResponse{
		Event:   toAPIEvent(ev),
		Summary: s.toAPISummary(sum),
	}), nil
}

// CreateEvent appends a new event with an empty roster.
func (s *EventService) CreateEvent(ctx context.Context, req *connect.Request[api.CreateEventRequest]) (*connect.Response[api.CreateEventResponse], error) {
	slog.Info("CreateEvent request received", "name", req.Msg.Name, "sport", req.Msg.Sport)

	ev, err := s.book.CreateEvent(ctx, req.Msg.Name, req.Msg.Sport)
	if err != nil {
		slog.Error("CreateEvent failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Event created", "event_id", ev.ID)

	return connect.NewResponse(&api.CreateEventResponse{Event: toAPIEvent(ev)}), nil
}

// DeleteEvent removes an event.
func (s *EventService) DeleteEvent(ctx context.Context, req *connect.Request[api.DeleteEventRequest]) (*connect.Response[api.DeleteEventResponse], error) {
	if err := s.book.DeleteEvent(ctx, req.Msg.EventID); err != nil {
		slog.Error("DeleteEvent failed", "event_id", req.Msg.EventID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Event deleted", "event_id", req.Msg.EventID)

	return connect.NewResponse(&api.DeleteEventResponse{}), nil
}

// AddPlayer appends an unpaid player to an event.
func (s *EventService) AddPlayer(ctx context.Context, req *connect.Request[api.AddPlayerRequest]) (*connect.Response[api.AddPlayerResponse], error) {
	p, err := s.book.AddPlayer(ctx, req.Msg.EventID, req.Msg.Name, req.Msg.Phone)
	if err != nil {
		slog.Error("AddPlayer failed", "event_id", req.Msg.EventID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Player added", "event_id", req.Msg.EventID, "player_id", p.ID)

	return connect.NewResponse(&api.AddPlayerResponse{Player: toAPIPlayer(p)}), nil
}

// TogglePlayerPaid flips a player's paid flag.
func (s *EventService) TogglePlayerPaid(ctx context.Context, req *connect.Request[api.TogglePlayerPaidRequest]) (*connect.Response[api.TogglePlayerPaidResponse], error) {
	p, err := s.book.TogglePaid(ctx, req.Msg.EventID, req.Msg.PlayerID)
	if err != nil {
		slog.Error("TogglePlayerPaid failed", "event_id", req.Msg.EventID, "player_id", req.Msg.PlayerID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.TogglePlayerPaidResponse{Player: toAPIPlayer(p)}), nil
}

// SetPlayerPaid sets a player's paid flag.
func (s *EventService) SetPlayerPaid(ctx context.Context, req *connect.Request[api.SetPlayerPaidRequest]) (*connect.Response[api.SetPlayerPaidResponse], error) {
	p, err := s.book.SetPaid(ctx, req.Msg.EventID, req.Msg.PlayerID, req.Msg.Paid)
	if err != nil {
		slog.Error("SetPlayerPaid failed", "event_id", req.Msg.EventID, "player_id", req.Msg.PlayerID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.SetPlayerPaidResponse{Player: toAPIPlayer(p)}), nil
}

// RemovePlayer removes a player from an event.
func (s *EventService) RemovePlayer(ctx context.Context, req *connect.Request[api.RemovePlayerRequest]) (*connect.Response[api.RemovePlayerResponse], error) {
	if err := s.book.RemovePlayer(ctx, req.Msg.EventID, req.Msg.PlayerID); err != nil {
		slog.Error("RemovePlayer failed", "event_id", req.Msg.EventID, "player_id", req.Msg.PlayerID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Player removed", "event_id", req.Msg.EventID, "player_id", req.Msg.PlayerID)

	return connect.NewResponse(&api.RemovePlayerResponse{}), nil
}

// SetTotalCost stores the cost text verbatim and returns the new summary.
func (s *EventService) SetTotalCost(ctx context.Context, req *connect.Request[api.SetTotalCostRequest]) (*connect.Response[api.SetTotalCostResponse], error) {
	if err := s.book.SetTotalCost(ctx, req.Msg.EventID, req.Msg.TotalCost); err != nil {
		slog.Error("SetTotalCost failed", "event_id", req.Msg.EventID, "error", err)
		return nil, toConnectError(err)
	}

	sum, err := s.book.Summary(req.Msg.EventID)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.SetTotalCostResponse{Summary: s.toAPISummary(sum)}), nil
}

// GetSummary returns the per-person share and payment progress of an event.
func (s *EventService) GetSummary(ctx context.Context, req *connect.Request[api.GetSummaryRequest]) (*connect.Response[api.GetSummaryResponse], error) {
	sum, err := s.book.Summary(req.Msg.EventID)
	if err != nil {
		slog.Warn("GetSummary failed", "event_id", req.Msg.EventID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.GetSummaryResponse{Summary: s.toAPISummary(sum)}), nil
}
