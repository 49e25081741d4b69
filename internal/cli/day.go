package cli

import (
	"fmt"
	"time"
)

type DayCmd struct {
	Date string `arg:"" optional:"" help:"Date in YYYY-MM-DD format (default: today)."`
}

func (c *DayCmd) Run(ctx *Context) error {
	date, err := ParseDate(c.Date)
	if err != nil {
		return err
	}

	trackers, err := ctx.Trackers()
	if err != nil {
		return err
	}
	toggles, err := ctx.Toggles()
	if err != nil {
		return err
	}

	groups := trackers.Due(date, time.Now())
	if len(groups) == 0 {
		fmt.Println("Nothing due.")
		return nil
	}

	for _, g := range groups {
		fmt.Println(g.Name)
		for _, e := range g.Entries {
			mark := " "
			if toggles.IsCompleted(e.ID, date) {
				mark = "x"
			}
			fmt.Printf("  [%s] %s %s (%d done, %s)\n",
				mark, e.Icon, e.Name, toggles.Count(e.ID), FormatSchedule(e.ActiveDays))
		}
	}
	return nil
}
