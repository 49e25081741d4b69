package schedule

import (
	"reflect"
	"testing"

	"github.com/drakoger/tracker/internal/models"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		days models.WeekDaySet
		want string
	}{
		{"empty set", models.NewWeekDaySet(), ""},
		{"single day", models.NewWeekDaySet(models.Monday), "2"},
		{"two days in code order", models.NewWeekDaySet(models.Wednesday, models.Monday), "2,4"},
		{"all days", models.NewWeekDaySet(models.AllWeekDays[:]...), "1,2,3,4,5,6,7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Encode(tt.days); got != tt.want {
				t.Errorf("Encode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want models.WeekDaySet
	}{
		{"empty string", "", models.NewWeekDaySet()},
		{"single day", "2", models.NewWeekDaySet(models.Monday)},
		{"order does not matter", "4,2", models.NewWeekDaySet(models.Monday, models.Wednesday)},
		{"whitespace tolerated", " 2 , 4 ", models.NewWeekDaySet(models.Monday, models.Wednesday)},
		{"non-integer tokens dropped", "2,x,4", models.NewWeekDaySet(models.Monday, models.Wednesday)},
		{"out-of-range codes dropped", "0,2,9", models.NewWeekDaySet(models.Monday)},
		{"empty tokens dropped", "2,,4", models.NewWeekDaySet(models.Monday, models.Wednesday)},
		{"fully malformed degrades to empty", "a,b,99", models.NewWeekDaySet()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decode(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Decode(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	sets := []models.WeekDaySet{
		models.NewWeekDaySet(),
		models.NewWeekDaySet(models.Sunday),
		models.NewWeekDaySet(models.Saturday),
		models.NewWeekDaySet(models.Monday, models.Wednesday, models.Friday),
		models.NewWeekDaySet(models.AllWeekDays[:]...),
	}

	for _, s := range sets {
		got := Decode(Encode(s))
		if !reflect.DeepEqual(got, s) {
			t.Errorf("Decode(Encode(%v)) = %v, want the original set", s, got)
		}
	}
}
