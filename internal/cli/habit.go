package cli

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/drakoger/tracker/internal/models"
)

type HabitCmd struct {
	Add HabitAddCmd `cmd:"" help:"Add a new habit."`
}

type HabitAddCmd struct {
	Name     string `arg:"" help:"Habit name."`
	Days     string `required:"" help:"Active weekdays, comma-separated (e.g. mon,wed or 2,4)."`
	Category string `required:"" help:"Category to file the habit under."`
	Icon     string `help:"Emoji or short glyph." default:"✅"`
	Color    string `help:"Card color as #RRGGBB." default:"#33cf69"`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	days, err := ParseWeekdays(c.Days)
	if err != nil {
		return err
	}
	if len(days) == 0 {
		return fmt.Errorf("a habit needs at least one active weekday; use 'event add' for one-offs")
	}

	trackers, err := ctx.Trackers()
	if err != nil {
		return err
	}

	tracker := models.Tracker{
		ID:         uuid.New().String(),
		Name:       c.Name,
		Color:      c.Color,
		Icon:       c.Icon,
		ActiveDays: days,
		Category:   c.Category,
	}

	if err := trackers.Save(tracker); err != nil {
		return err
	}

	fmt.Printf("Added habit %q (%s) to %q\n", c.Name, FormatSchedule(days), c.Category)
	return nil
}
