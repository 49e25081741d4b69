package cli

import (
	"testing"
	"time"

	"github.com/drakoger/tracker/internal/models"
)

func TestParseWeekdays(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []models.WeekDay
		wantErr bool
	}{
		{"empty", "", nil, false},
		{"short names", "mon,wed", []models.WeekDay{models.Monday, models.Wednesday}, false},
		{"long names", "monday,saturday", []models.WeekDay{models.Monday, models.Saturday}, false},
		{"codes", "1,7", []models.WeekDay{models.Sunday, models.Saturday}, false},
		{"mixed with spaces", " Mon , 4 ", []models.WeekDay{models.Monday, models.Wednesday}, false},
		{"invalid name", "mon,funday", nil, true},
		{"code out of range", "8", nil, true},
		{"zero code", "0", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWeekdays(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseWeekdays(%q) succeeded, want error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseWeekdays(%q): %v", tt.in, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseWeekdays(%q) = %v, want %v", tt.in, got, tt.want)
			}
			for _, d := range tt.want {
				if !got.Contains(d) {
					t.Errorf("ParseWeekdays(%q) missing %v", tt.in, d)
				}
			}
		})
	}
}

func TestFormatSchedule(t *testing.T) {
	tests := []struct {
		name string
		days models.WeekDaySet
		want string
	}{
		{"empty is one-off", models.NewWeekDaySet(), "one-off"},
		{"all days", models.NewWeekDaySet(models.AllWeekDays[:]...), "every day"},
		{"subset in code order", models.NewWeekDaySet(models.Wednesday, models.Monday), "Mon, Wed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatSchedule(tt.days); got != tt.want {
				t.Errorf("FormatSchedule = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		got, err := ParseDate("2025-06-02")
		if err != nil {
			t.Fatalf("ParseDate: %v", err)
		}
		if models.DayKey(got) != "2025-06-02" {
			t.Errorf("DayKey = %q, want 2025-06-02", models.DayKey(got))
		}
	})

	t.Run("empty defaults to today", func(t *testing.T) {
		got, err := ParseDate("")
		if err != nil {
			t.Fatalf("ParseDate: %v", err)
		}
		if !models.SameDay(got, time.Now()) {
			t.Errorf("ParseDate(\"\") = %s, want today", models.DayKey(got))
		}
	})

	t.Run("invalid format rejected", func(t *testing.T) {
		for _, in := range []string{"06-02-2025", "2025/06/02", "notadate"} {
			if _, err := ParseDate(in); err == nil {
				t.Errorf("ParseDate(%q) succeeded, want error", in)
			}
		}
	})
}
