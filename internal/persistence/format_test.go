package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/courtsplit/internal/calculator"
	"github.com/mmynk/courtsplit/internal/models"
)

func TestDecode_Empty(t *testing.T) {
	events, report := Decode("")
	assert.Empty(t, events)
	assert.Equal(t, Report{}, report)
}

func TestDecode_FridayMatch(t *testing.T) {
	events, report := Decode("e1|Friday Match|Soccer|100|p1,Ana,987654321,false;p2,Leo,912345678,true")
	require.Len(t, events, 1)
	assert.Equal(t, Report{}, report)

	ev := events[0]
	assert.Equal(t, "e1", ev.ID)
	assert.Equal(t, "Friday Match", ev.Name)
	assert.Equal(t, "Soccer", ev.Sport)
	assert.Equal(t, "100", ev.TotalCost)
	assert.Equal(t, []models.Player{
		{ID: "p1", Name: "Ana", Phone: "987654321", Paid: false},
		{ID: "p2", Name: "Leo", Phone: "912345678", Paid: true},
	}, ev.Players)

	share := calculator.PerPersonShare(calculator.ParseCost(ev.TotalCost), len(ev.Players))
	assert.Equal(t, "50.00", calculator.FormatAmount(share))
}

func TestDecode_NoPlayerSegment(t *testing.T) {
	events, _ := Decode("e1|Solo|Tennis|40")
	require.Len(t, events, 1)
	assert.Empty(t, events[0].Players)

	share := calculator.PerPersonShare(calculator.ParseCost(events[0].TotalCost), len(events[0].Players))
	assert.Equal(t, "40.00", calculator.FormatAmount(share))
}

func TestDecode_DropsMalformedRecords(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantIDs     []string
		wantPlayers []int
		wantReport  Report
	}{
		{
			name:        "event with three fields",
			raw:         "e1|A|Soccer###e2|B|Tennis|10|",
			wantIDs:     []string{"e2"},
			wantPlayers: []int{0},
			wantReport:  Report{DroppedEvents: 1},
		},
		{
			name:        "player with three sub-fields",
			raw:         "e1|A|Soccer|10|p1,Ana,987654321;p2,Leo,912345678,true",
			wantIDs:     []string{"e1"},
			wantPlayers: []int{1},
			wantReport:  Report{DroppedPlayers: 1},
		},
		{
			name:        "player with five sub-fields",
			raw:         "e1|A|Soccer|10|p1,Ana,Maria,987654321,true",
			wantIDs:     []string{"e1"},
			wantPlayers: []int{0},
			wantReport:  Report{DroppedPlayers: 1},
		},
		{
			name:        "delimiter in name leaves roster untrusted",
			raw:         "e1|A|B|Soccer|10|p1,Ana,987654321,true",
			wantIDs:     []string{"e1"},
			wantPlayers: []int{0},
		},
		{
			name:        "duplicate event id",
			raw:         "e1|A|Soccer|10|###e1|B|Tennis|20|",
			wantIDs:     []string{"e1"},
			wantPlayers: []int{0},
			wantReport:  Report{DroppedEvents: 1},
		},
		{
			name:        "empty record between separators",
			raw:         "e1|A|Soccer|10|######e2|B|Tennis|20|",
			wantIDs:     []string{"e1", "e2"},
			wantPlayers: []int{0, 0},
			wantReport:  Report{DroppedEvents: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, report := Decode(tt.raw)
			require.Len(t, events, len(tt.wantIDs))
			for i, ev := range events {
				assert.Equal(t, tt.wantIDs[i], ev.ID)
				assert.Len(t, ev.Players, tt.wantPlayers[i])
			}
			assert.Equal(t, tt.wantReport, report)
		})
	}
}

func TestDecode_PaidIsCaseInsensitive(t *testing.T) {
	events, _ := Decode("e1|A|Soccer|10|p1,Ana,987654321,TRUE;p2,Leo,912345678,yes")
	require.Len(t, events, 1)
	require.Len(t, events[0].Players, 2)
	assert.True(t, events[0].Players[0].Paid)
	assert.False(t, events[0].Players[1].Paid)
}

func TestDecode_LegacyNumericPlayerIDs(t *testing.T) {
	events, _ := Decode("e1|A|Soccer|10|1718000000000,Ana,987654321,false;not-a-number,Leo,912345678,true")
	require.Len(t, events, 1)
	require.Len(t, events[0].Players, 2)
	assert.Equal(t, "1718000000000", events[0].Players[0].ID)
	assert.Equal(t, "not-a-number", events[0].Players[1].ID)
}

func TestEncode(t *testing.T) {
	events := []models.Event{
		{ID: "e1", Name: "Friday Match", Sport: "Soccer", TotalCost: "100", Players: []models.Player{
			{ID: "p1", Name: "Ana", Phone: "987654321"},
			{ID: "p2", Name: "Leo", Phone: "912345678", Paid: true},
		}},
		{ID: "e2", Name: "Solo", Sport: "Tennis", TotalCost: "40"},
	}

	got := Encode(events)
	assert.Equal(t, "e1|Friday Match|Soccer|100|p1,Ana,987654321,false;p2,Leo,912345678,true###e2|Solo|Tennis|40|", got)
	assert.Equal(t, "", Encode(nil))
}

func TestRoundTrip(t *testing.T) {
	events := []models.Event{
		models.NewEvent("Friday Match", "Soccer"),
		models.NewEvent("Padel night", ""),
		models.NewEvent("Sunday run", "Running"),
	}
	events[0].TotalCost = "100"
	events[0].Players = []models.Player{
		models.NewPlayer("Ana", "987654321"),
		models.NewPlayer("Leo", "912345678"),
	}
	events[0].Players[1].Paid = true
	events[1].TotalCost = "12.5"
	events[2].TotalCost = "not yet"

	decoded, report := Decode(Encode(events))
	assert.Equal(t, Report{}, report)
	assert.Equal(t, events, decoded)

	// Idempotent: encoding the decoded collection yields the same blob.
	assert.Equal(t, Encode(events), Encode(decoded))
}
