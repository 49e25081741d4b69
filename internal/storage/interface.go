package storage

import "github.com/drakoger/tracker/internal/models"

// Provider is the durable record store behind the category registry, the
// tracker save workflow, and the completion ledger. All operations are
// synchronous; mutations must be serialized by the caller (single writer).
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Categories
	EnsureCategory(name string) error
	GetAllCategories() ([]string, error)

	// Trackers. AddTracker is the strict save path: it fails with a
	// CategoryNotFoundError when no category record matches, writing nothing.
	AddTracker(t models.Tracker, categoryName string) error
	GetTracker(id string) (models.Tracker, error)
	GetTrackerByName(name string) (models.Tracker, error)
	GetAllGroups() ([]models.TrackerGroup, error)
	DeleteTracker(id string) error

	// Completion ledger. Days are YYYY-MM-DD keys (models.DayKey).
	// AddRecord appends without deduplicating; the toggle service
	// checks existing state first.
	AddRecord(entryID, day string) error
	DeleteRecord(entryID, day string) error
	HasRecord(entryID, day string) (bool, error)
	CountRecords(entryID string) (int, error)
	GetRecordsForDay(day string) ([]models.CompletionRecord, error)

	// Utils
	GetConfigPath() string
}
