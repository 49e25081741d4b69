package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/drakoger/tracker/internal/errors"
	"github.com/drakoger/tracker/internal/logger"
	"github.com/drakoger/tracker/internal/models"
	"github.com/drakoger/tracker/internal/schedule"
)

// AddTracker is the strict save path: the category must already exist or
// the save fails with a CategoryNotFoundError and nothing is written.
func (s *Store) AddTracker(t models.Tracker, categoryName string) error {
	exists, err := s.categoryExists(categoryName)
	if err != nil {
		return err
	}
	if !exists {
		return &apperrors.CategoryNotFoundError{Name: categoryName}
	}

	_, err = s.db.Exec(`
		INSERT INTO trackers (id, title, emoji, color, schedule, category, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Name, t.Icon, t.Color, schedule.Encode(t.ActiveDays), categoryName,
		time.Now().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to insert tracker: %w", err)
	}
	return nil
}

func (s *Store) GetTracker(id string) (models.Tracker, error) {
	row := s.db.QueryRow(`
		SELECT id, title, emoji, color, schedule, category
		FROM trackers WHERE id = ?`, id)
	return scanTracker(row)
}

func (s *Store) GetTrackerByName(name string) (models.Tracker, error) {
	row := s.db.QueryRow(`
		SELECT id, title, emoji, color, schedule, category
		FROM trackers WHERE title = ?`, name)
	return scanTracker(row)
}

// GetAllGroups returns every category with its trackers, categories sorted
// by title ascending, trackers in creation order. Tracker rows missing an
// id or title are skipped rather than surfaced.
func (s *Store) GetAllGroups() ([]models.TrackerGroup, error) {
	rows, err := s.db.Query(`
		SELECT c.title, t.id, t.title, t.emoji, t.color, t.schedule
		FROM categories c
		LEFT JOIN trackers t ON t.category = c.title
		ORDER BY c.title, t.created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to query groups: %w", err)
	}
	defer rows.Close()

	var groups []models.TrackerGroup
	for rows.Next() {
		var category string
		var id, title, emoji, color, sched sql.NullString
		if err := rows.Scan(&category, &id, &title, &emoji, &color, &sched); err != nil {
			return nil, err
		}

		if len(groups) == 0 || groups[len(groups)-1].Name != category {
			groups = append(groups, models.TrackerGroup{Name: category})
		}

		// A category with no trackers joins to a single all-NULL tracker row.
		if !id.Valid {
			continue
		}
		if id.String == "" || title.String == "" {
			logger.Warn("Skipping malformed tracker row", "category", category)
			continue
		}

		g := &groups[len(groups)-1]
		g.Entries = append(g.Entries, models.Tracker{
			ID:         id.String,
			Name:       title.String,
			Icon:       emoji.String,
			Color:      color.String,
			ActiveDays: schedule.Decode(sched.String),
			Category:   category,
		})
	}
	return groups, rows.Err()
}

// DeleteTracker removes the tracker and, through the schema's cascade, its
// completion records.
func (s *Store) DeleteTracker(id string) error {
	result, err := s.db.Exec(`DELETE FROM trackers WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete tracker: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("tracker not found")
	}
	return nil
}

func scanTracker(row *sql.Row) (models.Tracker, error) {
	var t models.Tracker
	var sched string
	err := row.Scan(&t.ID, &t.Name, &t.Icon, &t.Color, &sched, &t.Category)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Tracker{}, err
	}
	if err != nil {
		return models.Tracker{}, fmt.Errorf("failed to scan tracker: %w", err)
	}
	t.ActiveDays = schedule.Decode(sched)
	return t, nil
}
