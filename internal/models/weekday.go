package models

import "time"

// WeekDay is one of the seven weekdays, numbered 1 (Sunday) through 7
// (Saturday). The numbering matches the day codes in persisted schedule
// strings, so existing data decodes unchanged.
type WeekDay int

const (
	Sunday WeekDay = iota + 1
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// AllWeekDays lists every weekday in code order.
var AllWeekDays = [7]WeekDay{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// Code returns the stable persisted day code (1..7).
func (d WeekDay) Code() int {
	return int(d)
}

func (d WeekDay) String() string {
	switch d {
	case Sunday:
		return "Sunday"
	case Monday:
		return "Monday"
	case Tuesday:
		return "Tuesday"
	case Wednesday:
		return "Wednesday"
	case Thursday:
		return "Thursday"
	case Friday:
		return "Friday"
	case Saturday:
		return "Saturday"
	default:
		return "Unknown"
	}
}

// Abbrev returns the short display form of the weekday.
func (d WeekDay) Abbrev() string {
	switch d {
	case Sunday:
		return "Sun"
	case Monday:
		return "Mon"
	case Tuesday:
		return "Tue"
	case Wednesday:
		return "Wed"
	case Thursday:
		return "Thu"
	case Friday:
		return "Fri"
	case Saturday:
		return "Sat"
	default:
		return "???"
	}
}

// WeekDayFromCode returns the weekday with the given persisted code.
// The second return value is false when the code matches no weekday.
func WeekDayFromCode(code int) (WeekDay, bool) {
	if code < int(Sunday) || code > int(Saturday) {
		return 0, false
	}
	return WeekDay(code), true
}

// WeekdayOf returns the WeekDay a date falls on. Go numbers weekdays from
// 0 (Sunday) while the persisted codes start at 1, hence the offset.
func WeekdayOf(t time.Time) WeekDay {
	return WeekDay(int(t.Weekday()) + 1)
}

// WeekDaySet is a set of weekdays forming a weekly recurrence rule. The
// empty set is meaningful: it marks a one-off event rather than a habit.
type WeekDaySet map[WeekDay]bool

// NewWeekDaySet builds a set from the given days.
func NewWeekDaySet(days ...WeekDay) WeekDaySet {
	set := make(WeekDaySet, len(days))
	for _, d := range days {
		set[d] = true
	}
	return set
}

// Contains reports whether d is in the set.
func (s WeekDaySet) Contains(d WeekDay) bool {
	return s[d]
}

// Days returns the set's members in code order.
func (s WeekDaySet) Days() []WeekDay {
	var days []WeekDay
	for _, d := range AllWeekDays {
		if s[d] {
			days = append(days, d)
		}
	}
	return days
}
