package constants

const (
	AppName           = "tracker"
	DefaultConfigPath = "~/.config/tracker/tracker.db"
	Version           = "v0.1.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"
)

// DefaultCategories are seeded at init time so the creation flow always has
// a category to save into.
var DefaultCategories = []string{"Cleaning", "Homework"}
