// Package service orchestrates the creation, browse, and completion-toggle
// workflows on top of the storage provider.
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/drakoger/tracker/internal/logger"
	"github.com/drakoger/tracker/internal/models"
	"github.com/drakoger/tracker/internal/storage"
)

// ErrFutureDate is returned when a toggle targets a day after today.
// Future days can never be marked complete.
var ErrFutureDate = errors.New("cannot complete a tracker on a future date")

// ToggleService flips completion state for (tracker, day) pairs against the
// completion ledger, preserving at-most-one-record-per-day by checking
// existing state before every insert.
type ToggleService struct {
	store storage.Provider
	now   func() time.Time
}

func NewToggleService(store storage.Provider) *ToggleService {
	return &ToggleService{store: store, now: time.Now}
}

// Toggle flips the completion state of entryID for date's calendar day and
// returns the new state. Days strictly after today are refused with
// ErrFutureDate and leave the ledger untouched. Two toggles in a row always
// restore the original state.
func (s *ToggleService) Toggle(entryID string, date time.Time) (bool, error) {
	day := models.DayKey(date)
	today := models.DayKey(s.now())
	// Day keys are YYYY-MM-DD, so lexical order is chronological order.
	if day > today {
		return false, ErrFutureDate
	}

	completed, err := s.store.HasRecord(entryID, day)
	if err != nil {
		return false, fmt.Errorf("failed to read completion state: %w", err)
	}

	if completed {
		if err := s.store.DeleteRecord(entryID, day); err != nil {
			return true, err
		}
		return false, nil
	}

	if err := s.store.AddRecord(entryID, day); err != nil {
		return false, err
	}
	return true, nil
}

// IsCompleted reports whether entryID was completed on date's calendar day.
// Lookup failures degrade to false.
func (s *ToggleService) IsCompleted(entryID string, date time.Time) bool {
	completed, err := s.store.HasRecord(entryID, models.DayKey(date))
	if err != nil {
		logger.Warn("Completion lookup failed", "entry", entryID, "error", err)
		return false
	}
	return completed
}

// Count returns the all-time number of completed days for entryID.
// Lookup failures degrade to zero.
func (s *ToggleService) Count(entryID string) int {
	count, err := s.store.CountRecords(entryID)
	if err != nil {
		logger.Warn("Completion count failed", "entry", entryID, "error", err)
		return 0
	}
	return count
}
