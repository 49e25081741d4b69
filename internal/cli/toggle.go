package cli

import (
	"errors"
	"fmt"

	"github.com/drakoger/tracker/internal/service"
)

type ToggleCmd struct {
	Name string `arg:"" help:"Tracker name."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *ToggleCmd) Run(ctx *Context) error {
	date, err := ParseDate(c.Date)
	if err != nil {
		return err
	}

	trackers, err := ctx.Trackers()
	if err != nil {
		return err
	}

	tracker, ok := trackers.FindByName(c.Name)
	if !ok {
		return fmt.Errorf("tracker %q not found", c.Name)
	}

	toggles, err := ctx.Toggles()
	if err != nil {
		return err
	}

	completed, err := toggles.Toggle(tracker.ID, date)
	if errors.Is(err, service.ErrFutureDate) {
		return fmt.Errorf("cannot mark %q complete on a future date", c.Name)
	}
	if err != nil {
		return err
	}

	if completed {
		fmt.Printf("Marked %q complete (%d days total)\n", c.Name, toggles.Count(tracker.ID))
	} else {
		fmt.Printf("Unmarked %q (%d days total)\n", c.Name, toggles.Count(tracker.ID))
	}
	return nil
}
