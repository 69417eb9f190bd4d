// Package persistence flattens the event collection into the single delimited
// text blob kept in the key-value store, and reads it back.
//
// Format:
//
//	store   := event ('###' event)*
//	event   := id '|' name '|' sport '|' totalCost ['|' players]
//	players := player (';' player)*
//	player  := id ',' name ',' phone ',' paid
//
// Field values are written verbatim. A name containing one of the delimiters
// corrupts its record on the next load.
package persistence

import (
	"strconv"
	"strings"

	"github.com/mmynk/courtsplit/internal/models"
)

const (
	eventSep       = "###"
	fieldSep       = "|"
	playerSep      = ";"
	playerFieldSep = ","

	minEventFields = 4
	playerFields   = 4
)

// Report describes records skipped while decoding.
type Report struct {
	DroppedEvents  int
	DroppedPlayers int
}

// Encode serializes the whole collection. Every event is written with its
// player segment, which is empty for an empty roster.
func Encode(events []models.Event) string {
	var b strings.Builder
	for i, e := range events {
		if i > 0 {
			b.WriteString(eventSep)
		}
		b.WriteString(e.ID)
		b.WriteString(fieldSep)
		b.WriteString(e.Name)
		b.WriteString(fieldSep)
		b.WriteString(e.Sport)
		b.WriteString(fieldSep)
		b.WriteString(e.TotalCost)
		b.WriteString(fieldSep)
		for j, p := range e.Players {
			if j > 0 {
				b.WriteString(playerSep)
			}
			b.WriteString(p.ID)
			b.WriteString(playerFieldSep)
			b.WriteString(p.Name)
			b.WriteString(playerFieldSep)
			b.WriteString(p.Phone)
			b.WriteString(playerFieldSep)
			b.WriteString(strconv.FormatBool(p.Paid))
		}
	}
	return b.String()
}

// Decode parses a blob produced by Encode. It never fails: events with fewer
// than four fields, events repeating an earlier ID and players without exactly
// four sub-fields are skipped and counted in the report.
func Decode(raw string) ([]models.Event, Report) {
	var report Report
	events := []models.Event{}
	if raw == "" {
		return events, report
	}

	seen := make(map[string]bool)
	for _, rec := range strings.Split(raw, eventSep) {
		fields := strings.Split(rec, fieldSep)
		if len(fields) < minEventFields || seen[fields[0]] {
			report.DroppedEvents++
			continue
		}
		seen[fields[0]] = true

		event := models.Event{
			ID:        fields[0],
			Name:      fields[1],
			Sport:     fields[2],
			TotalCost: fields[3],
		}
		// A sixth field means a delimiter leaked into a value; the roster is not trusted then.
		if len(fields) == minEventFields+1 && fields[minEventFields] != "" {
			for _, ps := range strings.Split(fields[minEventFields], playerSep) {
				player, ok := decodePlayer(ps)
				if !ok {
					report.DroppedPlayers++
					continue
				}
				event.Players = append(event.Players, player)
			}
		}
		events = append(events, event)
	}
	return events, report
}

func decodePlayer(rec string) (models.Player, bool) {
	f := strings.Split(rec, playerFieldSep)
	if len(f) != playerFields {
		return models.Player{}, false
	}
	return models.Player{
		ID:    f[0],
		Name:  f[1],
		Phone: f[2],
		Paid:  strings.EqualFold(f[3], "true"),
	}, true
}
