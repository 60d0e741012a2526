package storage

import (
	"errors"

	"github.com/julianstephens/flowmind/internal/models"
)

// ErrNotFound is returned when a task or check-in does not exist.
var ErrNotFound = errors.New("not found")

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Timer settings
	GetTimerSettings() (models.TimerSettings, error)
	SaveTimerSettings(models.TimerSettings) error

	// Tasks
	AddTask(models.Task) error
	GetTask(id string) (models.Task, error)
	GetAllTasks() ([]models.Task, error)
	UpdateTask(models.Task) error
	DeleteTask(id string) error

	// Check-ins
	// SaveCheckin replaces any existing check-in for the same date.
	SaveCheckin(models.Checkin) error
	GetCheckin(date string) (models.Checkin, error)
	// GetCheckins returns check-ins with start <= date <= end, oldest first.
	GetCheckins(start, end string) ([]models.Checkin, error)

	// Utils
	GetConfigPath() string
}
