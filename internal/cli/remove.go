package cli

import "fmt"

type RemoveCmd struct {
	Name string `arg:"" help:"Tracker name."`
}

func (c *RemoveCmd) Run(ctx *Context) error {
	trackers, err := ctx.Trackers()
	if err != nil {
		return err
	}

	tracker, ok := trackers.FindByName(c.Name)
	if !ok {
		return fmt.Errorf("tracker %q not found", c.Name)
	}

	// Completion records go with the tracker (schema cascade).
	if err := ctx.Store.DeleteTracker(tracker.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted tracker %q\n", c.Name)
	return nil
}
