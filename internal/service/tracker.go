package service

import (
	"fmt"
	"time"

	"github.com/drakoger/tracker/internal/models"
	"github.com/drakoger/tracker/internal/registry"
	"github.com/drakoger/tracker/internal/scheduler"
	"github.com/drakoger/tracker/internal/storage"
	"github.com/drakoger/tracker/internal/validation"
)

// TrackerService runs the creation and browse workflows. It keeps an
// in-memory registry hydrated from the durable store so browse calls do not
// refetch, and mirrors every successful write into it.
type TrackerService struct {
	store storage.Provider
	reg   *registry.Registry
}

// NewTrackerService hydrates the registry from the store.
func NewTrackerService(store storage.Provider) (*TrackerService, error) {
	groups, err := store.GetAllGroups()
	if err != nil {
		return nil, fmt.Errorf("failed to load tracker groups: %w", err)
	}

	reg := registry.New()
	for _, g := range groups {
		reg.EnsureCategory(g.Name)
		for _, e := range g.Entries {
			reg.AddEntry(e, g.Name)
		}
	}

	return &TrackerService{store: store, reg: reg}, nil
}

// EnsureCategory creates the category in the store and registry if it does
// not exist. Idempotent.
func (s *TrackerService) EnsureCategory(name string) error {
	if err := s.store.EnsureCategory(name); err != nil {
		return err
	}
	s.reg.EnsureCategory(name)
	return nil
}

// Save validates t and persists it under t.Category via the strict path:
// a missing category aborts the save with a CategoryNotFoundError and
// nothing is written. On success the registry mirrors the new tracker.
func (s *TrackerService) Save(t models.Tracker) error {
	if err := validation.ValidateTracker(t); err != nil {
		return err
	}
	if err := s.store.AddTracker(t, t.Category); err != nil {
		return err
	}
	s.reg.AddEntry(t, t.Category)
	return nil
}

// Groups returns every group sorted by name, entries in creation order.
func (s *TrackerService) Groups() []models.TrackerGroup {
	return s.reg.FetchAll()
}

// Due returns the groups filtered to the trackers due on date, evaluated
// against now.
func (s *TrackerService) Due(date, now time.Time) []models.TrackerGroup {
	return scheduler.DueEntries(s.reg.FetchAll(), date, now)
}

// FindByName looks a tracker up by display name across all groups.
func (s *TrackerService) FindByName(name string) (models.Tracker, bool) {
	for _, g := range s.reg.FetchAll() {
		for _, e := range g.Entries {
			if e.Name == name {
				return e, true
			}
		}
	}
	return models.Tracker{}, false
}
