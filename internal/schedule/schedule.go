// Package schedule converts weekly recurrence rules between their in-memory
// set form and the flat string persisted in the trackers table.
package schedule

import (
	"strconv"
	"strings"

	"github.com/drakoger/tracker/internal/models"
)

// Encode renders a weekday set as a comma-joined list of day codes in code
// order. The empty set encodes to the empty string.
func Encode(days models.WeekDaySet) string {
	if len(days) == 0 {
		return ""
	}
	codes := make([]string, 0, len(days))
	for _, d := range models.AllWeekDays {
		if days.Contains(d) {
			codes = append(codes, strconv.Itoa(d.Code()))
		}
	}
	return strings.Join(codes, ",")
}

// Decode parses a persisted schedule string back into a weekday set. Tokens
// that are not integers, or integers matching no weekday code, are dropped:
// a damaged schedule degrades to fewer active days, never to an error.
func Decode(s string) models.WeekDaySet {
	days := models.WeekDaySet{}
	if s == "" {
		return days
	}
	for _, tok := range strings.Split(s, ",") {
		code, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			continue
		}
		d, ok := models.WeekDayFromCode(code)
		if !ok {
			continue
		}
		days[d] = true
	}
	return days
}
