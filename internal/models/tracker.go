package models

import (
	"time"

	"github.com/drakoger/tracker/internal/constants"
)

// Tracker is one trackable item: a habit when ActiveDays is non-empty, a
// one-off event when it is empty. Trackers are immutable after creation;
// the ID is assigned once and never reused.
type Tracker struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Color      string     `json:"color"` // #RRGGBB
	Icon       string     `json:"icon"`
	ActiveDays WeekDaySet `json:"active_days,omitempty"`
	Category   string     `json:"category"`
}

// IsEvent reports whether the tracker is a one-off event, i.e. has no
// weekly recurrence rule.
func (t Tracker) IsEvent() bool {
	return len(t.ActiveDays) == 0
}

// TrackerGroup is a named, ordered collection of trackers. Entry order is
// insertion order and only matters for display.
type TrackerGroup struct {
	Name    string    `json:"name"`
	Entries []Tracker `json:"entries"`
}

// CompletionRecord is the fact that a tracker was completed on a calendar
// day. Day carries no time-of-day component.
type CompletionRecord struct {
	EntryID string `json:"entry_id"`
	Day     string `json:"day"` // YYYY-MM-DD format
}

// DayKey renders a date as the calendar-day key used by the completion
// ledger. Two instants on the same calendar day map to the same key.
func DayKey(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// SameDay reports whether two instants fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return DayKey(a) == DayKey(b)
}
