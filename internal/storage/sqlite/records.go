package sqlite

import (
	"fmt"
	"time"

	"github.com/drakoger/tracker/internal/models"
)

// AddRecord appends a completion record for (entryID, day). It does not
// deduplicate; the toggle service checks existing state before inserting.
func (s *Store) AddRecord(entryID, day string) error {
	_, err := s.db.Exec(`
		INSERT INTO completion_records (tracker_id, day, created_at)
		VALUES (?, ?, ?)`,
		entryID, day, time.Now().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to insert completion record: %w", err)
	}
	return nil
}

// DeleteRecord removes every completion record matching (entryID, day).
// Removing a record that does not exist is a no-op, not an error.
func (s *Store) DeleteRecord(entryID, day string) error {
	_, err := s.db.Exec(`
		DELETE FROM completion_records WHERE tracker_id = ? AND day = ?`,
		entryID, day)
	if err != nil {
		return fmt.Errorf("failed to delete completion record: %w", err)
	}
	return nil
}

// HasRecord reports whether a completion record exists for (entryID, day).
// Duplicate records collapse to true.
func (s *Store) HasRecord(entryID, day string) (bool, error) {
	var count int
	row := s.db.QueryRow(`
		SELECT count(*) FROM completion_records WHERE tracker_id = ? AND day = ?`,
		entryID, day)
	if err := row.Scan(&count); err != nil {
		return false, fmt.Errorf("failed to query completion record: %w", err)
	}
	return count > 0, nil
}

// CountRecords returns the number of distinct days on which entryID was
// completed. Counting distinct days keeps a stray duplicate record from
// inflating the total.
func (s *Store) CountRecords(entryID string) (int, error) {
	var count int
	row := s.db.QueryRow(`
		SELECT count(DISTINCT day) FROM completion_records WHERE tracker_id = ?`,
		entryID)
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count completion records: %w", err)
	}
	return count, nil
}

func (s *Store) GetRecordsForDay(day string) ([]models.CompletionRecord, error) {
	rows, err := s.db.Query(`
		SELECT DISTINCT tracker_id, day FROM completion_records WHERE day = ?`,
		day)
	if err != nil {
		return nil, fmt.Errorf("failed to query completion records: %w", err)
	}
	defer rows.Close()

	var records []models.CompletionRecord
	for rows.Next() {
		var r models.CompletionRecord
		if err := rows.Scan(&r.EntryID, &r.Day); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
