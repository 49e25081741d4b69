package models

import (
	"testing"
	"time"
)

func TestWeekDayCodes(t *testing.T) {
	t.Run("codes are bijective", func(t *testing.T) {
		seen := map[int]WeekDay{}
		for _, d := range AllWeekDays {
			code := d.Code()
			if code < 1 || code > 7 {
				t.Errorf("%v has code %d, want 1..7", d, code)
			}
			if prev, ok := seen[code]; ok {
				t.Errorf("code %d shared by %v and %v", code, prev, d)
			}
			seen[code] = d

			got, ok := WeekDayFromCode(code)
			if !ok {
				t.Fatalf("WeekDayFromCode(%d) not ok", code)
			}
			if got != d {
				t.Errorf("WeekDayFromCode(%d) = %v, want %v", code, got, d)
			}
		}
		if len(seen) != 7 {
			t.Errorf("got %d distinct codes, want 7", len(seen))
		}
	})

	t.Run("out of range codes rejected", func(t *testing.T) {
		for _, code := range []int{0, 8, -1, 100} {
			if _, ok := WeekDayFromCode(code); ok {
				t.Errorf("WeekDayFromCode(%d) ok, want not ok", code)
			}
		}
	})

	t.Run("sunday is 1", func(t *testing.T) {
		if Sunday.Code() != 1 {
			t.Errorf("Sunday.Code() = %d, want 1", Sunday.Code())
		}
		if Saturday.Code() != 7 {
			t.Errorf("Saturday.Code() = %d, want 7", Saturday.Code())
		}
	})
}

func TestWeekdayOf(t *testing.T) {
	// 2025-06-01 was a Sunday.
	tests := []struct {
		day  int
		want WeekDay
	}{
		{1, Sunday},
		{2, Monday},
		{3, Tuesday},
		{4, Wednesday},
		{5, Thursday},
		{6, Friday},
		{7, Saturday},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			date := time.Date(2025, 6, tt.day, 12, 0, 0, 0, time.Local)
			if got := WeekdayOf(date); got != tt.want {
				t.Errorf("WeekdayOf(2025-06-%02d) = %v, want %v", tt.day, got, tt.want)
			}
		})
	}
}

func TestWeekDaySet(t *testing.T) {
	set := NewWeekDaySet(Monday, Wednesday)

	if !set.Contains(Monday) || !set.Contains(Wednesday) {
		t.Error("set missing its own members")
	}
	if set.Contains(Tuesday) {
		t.Error("set contains Tuesday, want absent")
	}

	days := set.Days()
	if len(days) != 2 || days[0] != Monday || days[1] != Wednesday {
		t.Errorf("Days() = %v, want [Monday Wednesday]", days)
	}
}

func TestDayKey(t *testing.T) {
	morning := time.Date(2025, 6, 2, 0, 30, 0, 0, time.Local)
	evening := time.Date(2025, 6, 2, 23, 59, 0, 0, time.Local)
	nextDay := time.Date(2025, 6, 3, 0, 0, 0, 0, time.Local)

	if DayKey(morning) != "2025-06-02" {
		t.Errorf("DayKey = %q, want 2025-06-02", DayKey(morning))
	}
	if !SameDay(morning, evening) {
		t.Error("SameDay(morning, evening) = false, want true")
	}
	if SameDay(evening, nextDay) {
		t.Error("SameDay(evening, nextDay) = true, want false")
	}
}
