// Package validation checks tracker creation input before it reaches the
// store. The store itself only enforces the category constraint; everything
// user-shaped is caught here.
package validation

import (
	"fmt"
	"strings"

	"github.com/drakoger/tracker/internal/models"
)

// ValidateTracker checks a tracker about to be saved. It does not verify
// that the category exists; that is the store's strict-save concern.
func ValidateTracker(t models.Tracker) error {
	if t.ID == "" {
		return fmt.Errorf("tracker id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("tracker name is required")
	}
	if strings.TrimSpace(t.Category) == "" {
		return fmt.Errorf("tracker category is required")
	}
	if _, err := models.NormalizeColor(t.Color); err != nil {
		return err
	}
	for d := range t.ActiveDays {
		if _, ok := models.WeekDayFromCode(d.Code()); !ok {
			return fmt.Errorf("invalid weekday code %d: expected 1-7", d.Code())
		}
	}
	return nil
}
