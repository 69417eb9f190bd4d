package calculator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Summary is the derived money view of one event.
type Summary struct {
	Total        float64 // Parsed total cost
	Share        float64 // What each player pays
	Participants int
	Paid         int
	Collected    float64 // Share × paid players
	Outstanding  float64 // Total - Collected
}

// ParseCost interprets free-text cost input as a decimal number.
// Empty, malformed, hexadecimal, NaN and infinite input all count as zero.
func ParseCost(text string) float64 {
	if isHex(text) {
		return 0
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// isHex reports whether text carries a 0x prefix after an optional sign.
// ParseFloat accepts hex floats (and underscores within them), cost input does not.
func isHex(text string) bool {
	text = strings.TrimLeft(text, "+-")
	return len(text) >= 2 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X')
}

// PerPersonShare splits total evenly among players.
// With an empty roster the divisor is 1, so the share is the full total.
func PerPersonShare(total float64, players int) float64 {
	divisor := players
	if divisor < 1 {
		divisor = 1
	}
	return total / float64(divisor)
}

// Summarize computes the share and payment progress for an event whose
// total cost text is totalCost, with the given roster size and paid count.
func Summarize(totalCost string, participants, paid int) Summary {
	total := ParseCost(totalCost)
	share := PerPersonShare(total, participants)
	collected := share * float64(paid)
	return Summary{
		Total:        total,
		Share:        share,
		Participants: participants,
		Paid:         paid,
		Collected:    collected,
		Outstanding:  total - collected,
	}
}

// FormatAmount renders an amount with two fractional digits.
func FormatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
