package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/julianstephens/flowmind/internal/models"
	"github.com/julianstephens/flowmind/internal/storage"
)

func (s *Store) SaveCheckin(c models.Checkin) error {
	_, err := s.db.Exec(`
		INSERT INTO checkins (date, emotion, energy, notes) VALUES ($1, $2, $3, $4)
		ON CONFLICT (date) DO UPDATE
		SET emotion = EXCLUDED.emotion, energy = EXCLUDED.energy, notes = EXCLUDED.notes`,
		c.Date, string(c.Emotion), string(c.Energy), c.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to save check-in: %w", err)
	}
	return nil
}

func (s *Store) GetCheckin(date string) (models.Checkin, error) {
	var c models.Checkin
	var emotion, energy string
	err := s.db.QueryRow("SELECT date, emotion, energy, notes FROM checkins WHERE date = $1", date).
		Scan(&c.Date, &emotion, &energy, &c.Notes)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Checkin{}, fmt.Errorf("check-in %s: %w", date, storage.ErrNotFound)
	}
	if err != nil {
		return models.Checkin{}, err
	}
	c.Emotion = models.Emotion(emotion)
	c.Energy = models.EnergyLevel(energy)
	return c, nil
}

func (s *Store) GetCheckins(start, end string) ([]models.Checkin, error) {
	rows, err := s.db.Query(`
		SELECT date, emotion, energy, notes FROM checkins
		WHERE date >= $1 AND date <= $2
		ORDER BY date`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Checkin
	for rows.Next() {
		var c models.Checkin
		var emotion, energy string
		if err := rows.Scan(&c.Date, &emotion, &energy, &c.Notes); err != nil {
			return nil, err
		}
		c.Emotion = models.Emotion(emotion)
		c.Energy = models.EnergyLevel(energy)
		out = append(out, c)
	}
	return out, rows.Err()
}
