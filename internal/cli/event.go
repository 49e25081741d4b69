package cli

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/drakoger/tracker/internal/models"
)

type EventCmd struct {
	Add EventAddCmd `cmd:"" help:"Add a new one-off event."`
}

type EventAddCmd struct {
	Name     string `arg:"" help:"Event name."`
	Category string `required:"" help:"Category to file the event under."`
	Icon     string `help:"Emoji or short glyph." default:"🎉"`
	Color    string `help:"Card color as #RRGGBB." default:"#7f5bd4"`
}

func (c *EventAddCmd) Run(ctx *Context) error {
	trackers, err := ctx.Trackers()
	if err != nil {
		return err
	}

	// No active days: the event shows up on the current day only.
	tracker := models.Tracker{
		ID:       uuid.New().String(),
		Name:     c.Name,
		Color:    c.Color,
		Icon:     c.Icon,
		Category: c.Category,
	}

	if err := trackers.Save(tracker); err != nil {
		return err
	}

	fmt.Printf("Added event %q to %q\n", c.Name, c.Category)
	return nil
}
