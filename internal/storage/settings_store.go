package storage

import "github.com/julianstephens/flowmind/internal/models"

// SettingsStore exposes a provider's timer settings as the load/save pair
// the timer expects.
type SettingsStore struct {
	provider Provider
}

func NewSettingsStore(p Provider) *SettingsStore {
	return &SettingsStore{provider: p}
}

func (s *SettingsStore) Load() (models.TimerSettings, error) {
	return s.provider.GetTimerSettings()
}

func (s *SettingsStore) Save(settings models.TimerSettings) error {
	return s.provider.SaveTimerSettings(settings)
}
