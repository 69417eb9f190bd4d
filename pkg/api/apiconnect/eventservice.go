// Package apiconnect wires the courtsplit.v1.EventService messages to Connect
// handlers and clients.
package apiconnect

import (
	"context"
	"errors"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/courtsplit/pkg/api"
)

// EventServiceName is the fully-qualified name of the EventService service.
const EventServiceName = "courtsplit.v1.EventService"

// Procedure paths of the EventService RPCs.
const (
	EventServiceListEventsProcedure       = "/" + EventServiceName + "/ListEvents"
	EventServiceGetEventProcedure         = "/" + EventServiceName + "/GetEvent"
	EventServiceCreateEventProcedure      = "/" + EventServiceName + "/CreateEvent"
	EventServiceDeleteEventProcedure      = "/" + EventServiceName + "/DeleteEvent"
	EventServiceAddPlayerProcedure        = "/" + EventServiceName + "/AddPlayer"
	EventServiceTogglePlayerPaidProcedure = "/" + EventServiceName + "/TogglePlayerPaid"
	EventServiceSetPlayerPaidProcedure    = "/" + EventServiceName + "/SetPlayerPaid"
	EventServiceRemovePlayerProcedure     = "/" + EventServiceName + "/RemovePlayer"
	EventServiceSetTotalCostProcedure     = "/" + EventServiceName + "/SetTotalCost"
	EventServiceGetSummaryProcedure       = "/" + EventServiceName + "/GetSummary"
)

// EventServiceHandler is implemented by the server side of EventService.
type EventServiceHandler interface {
	ListEvents(context.Context, *connect.Request[api.ListEventsRequest]) (*connect.Response[api.ListEventsResponse], error)
	GetEvent(context.Context, *connect.Request[api.GetEventRequest]) (*connect.Response[api.GetEventResponse], error)
	CreateEvent(context.Context, *connect.Request[api.CreateEventRequest]) (*connect.Response[api.CreateEventResponse], error)
	DeleteEvent(context.Context, *connect.Request[api.DeleteEventRequest]) (*connect.Response[api.DeleteEventResponse], error)
	AddPlayer(context.Context, *connect.Request[api.AddPlayerRequest]) (*connect.Response[api.AddPlayerResponse], error)
	TogglePlayerPaid(context.Context, *connect.Request[api.TogglePlayerPaidRequest]) (*connect.Response[api.TogglePlayerPaidResponse], error)
	SetPlayerPaid(context.Context, *connect.Request[api.SetPlayerPaidRequest]) (*connect.Response[api.SetPlayerPaidResponse], error)
	RemovePlayer(context.Context, *connect.Request[api.RemovePlayerRequest]) (*connect.Response[api.RemovePlayerResponse], error)
	SetTotalCost(context.Context, *connect.Request[api.SetTotalCostRequest]) (*connect.Response[api.SetTotalCostResponse], error)
	GetSummary(context.Context, *connect.Request[api.GetSummaryRequest]) (*connect.Response[api.GetSummaryResponse], error)
}

// NewEventServiceHandler builds an HTTP handler serving every EventService RPC.
// It returns the path to mount the handler on.
func NewEventServiceHandler(svc EventServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(jsonCodec{})}, opts...)

	listEventsHandler := connect.NewUnaryHandler(EventServiceListEventsProcedure, svc.ListEvents, opts...)
	getEventHandler := connect.NewUnaryHandler(EventServiceGetEventProcedure, svc.GetEvent, opts...)
	createEventHandler := connect.NewUnaryHandler(EventServiceCreateEventProcedure, svc.CreateEvent, opts...)
	deleteEventHandler := connect.NewUnaryHandler(EventServiceDeleteEventProcedure, svc.DeleteEvent, opts...)
	addPlayerHandler := connect.NewUnaryHandler(EventServiceAddPlayerProcedure, svc.AddPlayer, opts...)
	togglePlayerPaidHandler := connect.NewUnaryHandler(EventServiceTogglePlayerPaidProcedure, svc.TogglePlayerPaid, opts...)
	setPlayerPaidHandler := connect.NewUnaryHandler(EventServiceSetPlayerPaidProcedure, svc.SetPlayerPaid, opts...)
	removePlayerHandler := connect.NewUnaryHandler(EventServiceRemovePlayerProcedure, svc.RemovePlayer, opts...)
	setTotalCostHandler := connect.NewUnaryHandler(EventServiceSetTotalCostProcedure, svc.SetTotalCost, opts...)
	getSummaryHandler := connect.NewUnaryHandler(EventServiceGetSummaryProcedure, svc.GetSummary, opts...)

	return "/" + EventServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case EventServiceListEventsProcedure:
			listEventsHandler.ServeHTTP(w, r)
		case EventServiceGetEventProcedure:
			getEventHandler.ServeHTTP(w, r)
		case EventServiceCreateEventProcedure:
			createEventHandler.ServeHTTP(w, r)
		case EventServiceDeleteEventProcedure:
			deleteEventHandler.ServeHTTP(w, r)
		case EventServiceAddPlayerProcedure:
			addPlayerHandler.ServeHTTP(w, r)
		case EventServiceTogglePlayerPaidProcedure:
			togglePlayerPaidHandler.ServeHTTP(w, r)
		case EventServiceSetPlayerPaidProcedure:
			setPlayerPaidHandler.ServeHTTP(w, r)
		case EventServiceRemovePlayerProcedure:
			removePlayerHandler.ServeHTTP(w, r)
		case EventServiceSetTotalCostProcedure:
			setTotalCostHandler.ServeHTTP(w, r)
		case EventServiceGetSummaryProcedure:
			getSummaryHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// EventServiceClient is a client for EventService.
type EventServiceClient interface {
	ListEvents(context.Context, *connect.Request[api.ListEventsRequest]) (*connect.Response[api.ListEventsResponse], error)
	GetEvent(context.Context, *connect.Request[api.GetEventRequest]) (*connect.Response[api.GetEventResponse], error)
	CreateEvent(context.Context, *connect.Request[api.CreateEventRequest]) (*connect.Response[api.CreateEventResponse], error)
	DeleteEvent(context.Context, *connect.Request[api.DeleteEventRequest]) (*connect.Response[api.DeleteEventResponse], error)
	AddPlayer(context.Context, *connect.Request[api.AddPlayerRequest]) (*connect.Response[api.AddPlayerResponse], error)
	TogglePlayerPaid(context.Context, *connect.Request[api.TogglePlayerPaidRequest]) (*connect.Response[api.TogglePlayerPaidResponse], error)
	SetPlayerPaid(context.Context, *connect.Request[api.SetPlayerPaidRequest]) (*connect.Response[api.SetPlayerPaidResponse], error)
	RemovePlayer(context.Context, *connect.Request[api.RemovePlayerRequest]) (*connect.Response[api.RemovePlayerResponse], error)
	SetTotalCost(context.Context, *connect.Request[api.SetTotalCostRequest]) (*connect.Response[api.SetTotalCostResponse], error)
	GetSummary(context.Context, *connect.Request[api.GetSummaryRequest]) (*connect.Response[api.GetSummaryResponse], error)
}

// NewEventServiceClient creates a client for the EventService served at baseURL.
func NewEventServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) EventServiceClient {
	opts = append([]connect.ClientOption{connect.WithCodec(jsonCodec{})}, opts...)
	return &eventServiceClient{
		listEvents:       connect.NewClient[api.ListEventsRequest, api.ListEventsResponse](httpClient, baseURL+EventServiceListEventsProcedure, opts...),
		getEvent:         connect.NewClient[api.GetEventRequest, api.GetEventResponse](httpClient, baseURL+EventServiceGetEventProcedure, opts...),
		createEvent:      connect.NewClient[api.CreateEventRequest, api.CreateEventResponse](httpClient, baseURL+EventServiceCreateEventProcedure, opts...),
		deleteEvent:      connect.NewClient[api.DeleteEventRequest, api.DeleteEventResponse](httpClient, baseURL+EventServiceDeleteEventProcedure, opts...),
		addPlayer:        connect.NewClient[api.AddPlayerRequest, api.AddPlayerResponse](httpClient, baseURL+EventServiceAddPlayerProcedure, opts...),
		togglePlayerPaid: connect.NewClient[api.TogglePlayerPaidRequest, api.TogglePlayerPaidResponse](httpClient, baseURL+EventServiceTogglePlayerPaidProcedure, opts...),
		setPlayerPaid:    connect.NewClient[api.SetPlayerPaidRequest, api.SetPlayerPaidResponse](httpClient, baseURL+EventServiceSetPlayerPaidProcedure, opts...),
		removePlayer:     connect.NewClient[api.RemovePlayerRequest, api.RemovePlayerResponse](httpClient, baseURL+EventServiceRemovePlayerProcedure, opts...),
		setTotalCost:     connect.NewClient[api.SetTotalCostRequest, api.SetTotalCostResponse](httpClient, baseURL+EventServiceSetTotalCostProcedure, opts...),
		getSummary:       connect.NewClient[api.GetSummaryRequest, api.GetSummaryResponse](httpClient, baseURL+EventServiceGetSummaryProcedure, opts...),
	}
}

type eventServiceClient struct {
	listEvents       *connect.Client[api.ListEventsRequest, api.ListEventsResponse]
	getEvent         *connect.Client[api.GetEventRequest, api.GetEventResponse]
	createEvent      *connect.Client[api.CreateEventRequest, api.CreateEventResponse]
	deleteEvent      *connect.Client[api.DeleteEventRequest, api.DeleteEventResponse]
	addPlayer        *connect.Client[api.AddPlayerRequest, api.AddPlayerResponse]
	togglePlayerPaid *connect.Client[api.TogglePlayerPaidRequest, api.TogglePlayerPaidResponse]
	setPlayerPaid    *connect.Client[api.SetPlayerPaidRequest, api.SetPlayerPaidResponse]
	removePlayer     *connect.Client[api.RemovePlayerRequest, api.RemovePlayerResponse]
	setTotalCost     *connect.Client[api.SetTotalCostRequest, api.SetTotalCostResponse]
	getSummary       *connect.Client[api.GetSummaryRequest, api.GetSummaryResponse]
}

func (c *eventServiceClient) ListEvents(ctx context.Context, req *connect.Request[api.ListEventsRequest]) (*connect.Response[api.ListEventsResponse], error) {
	return c.listEvents.CallUnary(ctx, req)
}

func (c *eventServiceClient) GetEvent(ctx context.Context, req *connect.Request[api.GetEventRequest]) (*connect.Response[api.GetEventResponse], error) {
	return c.getEvent.CallUnary(ctx, req)
}

func (c *eventServiceClient) CreateEvent(ctx context.Context, req *connect.Request[api.CreateEventRequest]) (*connect.Response[api.CreateEventResponse], error) {
	return c.createEvent.CallUnary(ctx, req)
}

func (c *eventServiceClient) DeleteEvent(ctx context.Context, req *connect.Request[api.DeleteEventRequest]) (*connect.Response[api.DeleteEventResponse], error) {
	return c.deleteEvent.CallUnary(ctx, req)
}

func (c *eventServiceClient) AddPlayer(ctx context.Context, req *connect.Request[api.AddPlayerRequest]) (*connect.Response[api.AddPlayerResponse], error) {
	return c.addPlayer.CallUnary(ctx, req)
}

func (c *eventServiceClient) TogglePlayerPaid(ctx context.Context, req *connect.Request[api.TogglePlayerPaidRequest]) (*connect.Response[api.TogglePlayerPaidResponse], error) {
	return c.togglePlayerPaid.CallUnary(ctx, req)
}

func (c *eventServiceClient) SetPlayerPaid(ctx context.Context, req *connect.Request[api.SetPlayerPaidRequest]) (*connect.Response[api.SetPlayerPaidResponse], error) {
	return c.setPlayerPaid.CallUnary(ctx, req)
}

func (c *eventServiceClient) RemovePlayer(ctx context.Context, req *connect.Request[api.RemovePlayerRequest]) (*connect.Response[api.RemovePlayerResponse], error) {
	return c.removePlayer.CallUnary(ctx, req)
}

func (c *eventServiceClient) SetTotalCost(ctx context.Context, req *connect.Request[api.SetTotalCostRequest]) (*connect.Response[api.SetTotalCostResponse], error) {
	return c.setTotalCost.CallUnary(ctx, req)
}

func (c *eventServiceClient) GetSummary(ctx context.Context, req *connect.Request[api.GetSummaryRequest]) (*connect.Response[api.GetSummaryResponse], error) {
	return c.getSummary.CallUnary(ctx, req)
}

// UnimplementedEventServiceHandler returns CodeUnimplemented from every method.
type UnimplementedEventServiceHandler struct{}

func (UnimplementedEventServiceHandler) ListEvents(context.Context, *connect.Request[api.ListEventsRequest]) (*connect.Response[api.ListEventsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("courtsplit.v1.EventService.ListEvents is not implemented"))
}

func (UnimplementedEventServiceHandler) GetEvent(context.Context, *connect.Request[api.GetEventRequest]) (*connect.Response[api.GetEventResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("courtsplit.v1.EventService.GetEvent is not implemented"))
}

func (UnimplementedEventServiceHandler) CreateEvent(context.Context, *connect.Request[api.CreateEventRequest]) (*connect.Response[api.CreateEventResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("courtsplit.v1.EventService.CreateEvent is not implemented"))
}

func (UnimplementedEventServiceHandler) DeleteEvent(context.Context, *connect.Request[api.DeleteEventRequest]) (*connect.Response[api.DeleteEventResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("courtsplit.v1.EventService.DeleteEvent is not implemented"))
}

func (UnimplementedEventServiceHandler) AddPlayer(context.Context, *connect.Request[api.AddPlayerRequest]) (*connect.Response[api.AddPlayerResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("courtsplit.v1.EventService.AddPlayer is not implemented"))
}

func (UnimplementedEventServiceHandler) TogglePlayerPaid(context.Context, *connect.Request[api.TogglePlayerPaidRequest]) (*connect.Response[api.TogglePlayerPaidResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("courtsplit.v1.EventService.TogglePlayerPaid is not implemented"))
}

func (UnimplementedEventServiceHandler) SetPlayerPaid(context.Context, *connect.Request[api.SetPlayerPaidRequest]) (*connect.Response[api.SetPlayerPaidResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("courtsplit.v1.EventService.SetPlayerPaid is not implemented"))
}

func (UnimplementedEventServiceHandler) RemovePlayer(context.Context, *connect.Request[api.RemovePlayerRequest]) (*connect.Response[api.RemovePlayerResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("courtsplit.v1.EventService.RemovePlayer is not implemented"))
}

func (UnimplementedEventServiceHandler) SetTotalCost(context.Context, *connect.Request[api.SetTotalCostRequest]) (*connect.Response[api.SetTotalCostResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("courtsplit.v1.EventService.SetTotalCost is not implemented"))
}

func (UnimplementedEventServiceHandler) GetSummary(context.Context, *connect.Request[api.GetSummaryRequest]) (*connect.Response[api.GetSummaryResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("courtsplit.v1.EventService.GetSummary is not implemented"))
}
