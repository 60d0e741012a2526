package postgres

import (
	"fmt"

	"github.com/julianstephens/flowmind/internal/models"
)

func (s *Store) GetTimerSettings() (models.TimerSettings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings WHERE key LIKE 'timer.%'")
	if err != nil {
		return models.TimerSettings{}, err
	}
	defer rows.Close()

	data := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.TimerSettings{}, err
		}
		data[key] = value
	}
	if err := rows.Err(); err != nil {
		return models.TimerSettings{}, err
	}

	if len(data) == 0 {
		return models.TimerSettings{}, fmt.Errorf("settings not found")
	}

	return models.MapToTimerSettings(data), nil
}

func (s *Store) SaveTimerSettings(settings models.TimerSettings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO settings (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for key, value := range models.TimerSettingsToMap(settings) {
		if _, err := stmt.Exec(key, value); err != nil {
			return fmt.Errorf("saving %s: %w", key, err)
		}
	}

	return tx.Commit()
}
