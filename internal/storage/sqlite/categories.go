package sqlite

import "fmt"

// EnsureCategory creates the category record if no category with that exact
// title exists. Idempotent.
func (s *Store) EnsureCategory(name string) error {
	_, err := s.db.Exec(`
		INSERT INTO categories (title) VALUES (?)
		ON CONFLICT(title) DO NOTHING`, name)
	if err != nil {
		return fmt.Errorf("failed to ensure category %q: %w", name, err)
	}
	return nil
}

func (s *Store) GetAllCategories() ([]string, error) {
	rows, err := s.db.Query(`SELECT title FROM categories ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *Store) categoryExists(name string) (bool, error) {
	var count int
	row := s.db.QueryRow(`SELECT count(*) FROM categories WHERE title = ?`, name)
	if err := row.Scan(&count); err != nil {
		return false, fmt.Errorf("failed to look up category %q: %w", name, err)
	}
	return count > 0, nil
}
