// Package scheduler decides which trackers are due on a given calendar day.
package scheduler

import (
	"time"

	"github.com/drakoger/tracker/internal/models"
)

// DueEntries filters groups down to the trackers due on date, dropping any
// group left without entries. Group and entry order is otherwise preserved.
//
// A habit is due when date's weekday is in its active days. A one-off event
// (no active days) is due only when date falls on the same calendar day as
// now: past and future days never show events, even the day the event was
// created on. The rule is deliberate and must not drift.
//
// The function is pure; now is passed in rather than read from the clock so
// callers and tests control the evaluation moment.
func DueEntries(groups []models.TrackerGroup, date, now time.Time) []models.TrackerGroup {
	day := models.WeekdayOf(date)
	isToday := models.SameDay(date, now)

	var due []models.TrackerGroup
	for _, g := range groups {
		var entries []models.Tracker
		for _, e := range g.Entries {
			if isDue(e, day, isToday) {
				entries = append(entries, e)
			}
		}
		if len(entries) == 0 {
			continue
		}
		due = append(due, models.TrackerGroup{Name: g.Name, Entries: entries})
	}
	return due
}

func isDue(t models.Tracker, day models.WeekDay, isToday bool) bool {
	if t.IsEvent() {
		return isToday
	}
	return t.ActiveDays.Contains(day)
}
