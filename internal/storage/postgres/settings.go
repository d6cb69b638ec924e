package postgres

import (
	"github.com/julianstephens/datefmt/internal/models"
	"github.com/julianstephens/datefmt/internal/storage"
)

func (s *Store) GetSettings() (models.Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	data := map[string]string{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		data[key] = value
	}
	if err := rows.Err(); err != nil {
		return models.Settings{}, err
	}

	if len(data) == 0 {
		return models.Settings{}, storage.ErrSettingsNotFound
	}

	return models.MapToSettings(data), nil
}

// SaveSettings upserts every setting in one transaction. Failures on a
// schema with pending migrations carry storage.ErrMigrationsPending.
func (s *Store) SaveSettings(settings models.Settings) error {
	// The transaction must be closed before the schema status is read
	if err := s.saveSettings(settings); err != nil {
		return storage.WithMigrationHint(s, err)
	}
	return nil
}

func (s *Store) saveSettings(settings models.Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO settings (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for key, value := range models.SettingsToMap(settings) {
		if _, err := stmt.Exec(key, value); err != nil {
			return err
		}
	}

	return tx.Commit()
}
