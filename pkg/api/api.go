// Package api defines the request and response messages of the
// courtsplit.v1.EventService RPC service. Messages travel as JSON.
package api

// Player is one participant of an event.
type Player struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Paid  bool   `json:"paid"`
}

// Event is a shared-cost occasion with its roster.
type Event struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Sport     string    `json:"sport"`
	Players   []*Player `json:"players"`
	TotalCost string    `json:"total_cost"`
}

// Summary is the derived money view of an event.
type Summary struct {
	Total        float64 `json:"total"`
	Share        float64 `json:"share"`
	Participants int32   `json:"participants"`
	Paid         int32   `json:"paid"`
	Collected    float64 `json:"collected"`
	Outstanding  float64 `json:"outstanding"`
	// ShareText is Share formatted with two decimals and the currency symbol.
	ShareText string `json:"share_text"`
}

type ListEventsRequest struct{}

type ListEventsResponse struct {
	Events []*Event `json:"events"`
}

type GetEventRequest struct {
	EventID string `json:"event_id"`
}

type GetEventResponse struct {
	Event   *Event   `json:"event"`
	Summary *Summary `json:"summary"`
}

type CreateEventRequest struct {
	Name  string `json:"name"`
	Sport string `json:"sport"`
}

type CreateEventResponse struct {
	Event *Event `json:"event"`
}

type DeleteEventRequest struct {
	EventID string `json:"event_id"`
}

type DeleteEventResponse struct{}

type AddPlayerRequest struct {
	EventID string `json:"event_id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
}

type AddPlayerResponse struct {
	Player *Player `json:"player"`
}

type TogglePlayerPaidRequest struct {
	EventID  string `json:"event_id"`
	PlayerID string `json:"player_id"`
}

type TogglePlayerPaidResponse struct {
	Player *Player `json:"player"`
}

type SetPlayerPaidRequest struct {
	EventID  string `json:"event_id"`
	PlayerID string `json:"player_id"`
	Paid     bool   `json:"paid"`
}

type SetPlayerPaidResponse struct {
	Player *Player `json:"player"`
}

type RemovePlayerRequest struct {
	EventID  string `json:"event_id"`
	PlayerID string `json:"player_id"`
}

type RemovePlayerResponse struct{}

type SetTotalCostRequest struct {
	EventID   string `json:"event_id"`
	TotalCost string `json:"total_cost"`
}

type SetTotalCostResponse struct {
	Summary *Summary `json:"summary"`
}

type GetSummaryRequest struct {
	EventID string `json:"event_id"`
}

type GetSummaryResponse struct {
	Summary *Summary `json:"summary"`
}
