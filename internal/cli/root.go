package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/drakoger/tracker/internal/constants"
	"github.com/drakoger/tracker/internal/models"
	"github.com/drakoger/tracker/internal/service"
	"github.com/drakoger/tracker/internal/storage"
)

type Context struct {
	Store storage.Provider
}

// Trackers loads the store and hydrates the tracker service.
func (c *Context) Trackers() (*service.TrackerService, error) {
	if err := c.Store.Load(); err != nil {
		return nil, err
	}
	return service.NewTrackerService(c.Store)
}

// Toggles loads the store and returns the completion toggle service.
func (c *Context) Toggles() (*service.ToggleService, error) {
	if err := c.Store.Load(); err != nil {
		return nil, err
	}
	return service.NewToggleService(c.Store), nil
}

// ParseWeekdays parses a comma-separated list of weekdays given as names
// ("mon", "monday") or day codes (1=Sunday .. 7=Saturday).
func ParseWeekdays(s string) (models.WeekDaySet, error) {
	days := models.WeekDaySet{}
	if strings.TrimSpace(s) == "" {
		return days, nil
	}

	dayMap := map[string]models.WeekDay{
		"sun": models.Sunday, "sunday": models.Sunday,
		"mon": models.Monday, "monday": models.Monday,
		"tue": models.Tuesday, "tuesday": models.Tuesday,
		"wed": models.Wednesday, "wednesday": models.Wednesday,
		"thu": models.Thursday, "thursday": models.Thursday,
		"fri": models.Friday, "friday": models.Friday,
		"sat": models.Saturday, "saturday": models.Saturday,
	}

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if wd, ok := dayMap[part]; ok {
			days[wd] = true
			continue
		}
		num, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid weekday: %s", part)
		}
		wd, ok := models.WeekDayFromCode(num)
		if !ok {
			return nil, fmt.Errorf("invalid weekday code: %d (expected 1-7)", num)
		}
		days[wd] = true
	}

	return days, nil
}

// ParseDate parses a YYYY-MM-DD argument in local time, defaulting to today
// when empty.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation(constants.DateFormat, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", s)
	}
	return t, nil
}

// FormatSchedule formats a weekly schedule for display.
func FormatSchedule(days models.WeekDaySet) string {
	if len(days) == 0 {
		return "one-off"
	}
	if len(days) == len(models.AllWeekDays) {
		return "every day"
	}
	var abbrevs []string
	for _, d := range days.Days() {
		abbrevs = append(abbrevs, d.Abbrev())
	}
	return strings.Join(abbrevs, ", ")
}
