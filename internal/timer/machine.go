package timer

import (
	"slices"
	"sync"

	"github.com/julianstephens/flowmind/internal/constants"
	apperrors "github.com/julianstephens/flowmind/internal/errors"
	"github.com/julianstephens/flowmind/internal/logger"
	"github.com/julianstephens/flowmind/internal/models"
)

// SettingsStore loads and persists timer settings.
type SettingsStore interface {
	Load() (models.TimerSettings, error)
	Save(models.TimerSettings) error
}

// Completion is emitted once each time an interval counts down to zero.
// Status is always StatusCompleted. By the time listeners run the machine
// has already moved on to an idle NextMode.
type Completion struct {
	Mode              models.TimerMode   // the interval that finished
	Status            models.TimerStatus // the status it finished in
	NextMode          models.TimerMode
	SessionsCompleted int
}

// SettingsUpdate carries the fields to change. Nil or non-positive fields
// keep their current value.
type SettingsUpdate struct {
	FocusDuration          *int
	ShortBreakDuration     *int
	LongBreakDuration      *int
	SessionsUntilLongBreak *int
}

// Machine is a focus/break countdown. Each session owns its own Machine.
type Machine struct {
	mu        sync.Mutex
	settings  models.TimerSettings
	state     models.TimerState
	total     int // length of the current interval in seconds
	cycle     int // sessions until long break, fixed until the next idle
	ticks     TickSource
	store     SettingsStore
	stop      func()
	gen       uint64
	listeners []func(Completion)
}

// New creates an idle focus timer. Settings come from store when it is
// non-nil and loads cleanly; otherwise the defaults apply.
func New(ticks TickSource, store SettingsStore) *Machine {
	settings := models.DefaultTimerSettings()
	if store != nil {
		loaded, err := store.Load()
		if err != nil {
			logger.Warn("Failed to load timer settings, using defaults", "error", err)
		} else {
			models.ApplyDefaultTimerSettings(&loaded)
			settings = loaded
		}
	}

	m := &Machine{
		settings: settings,
		ticks:    ticks,
		store:    store,
	}
	m.state.Mode = models.ModeFocus
	m.enterIdle()
	return m
}

// OnComplete registers fn to receive completion signals. fn runs on the
// ticking goroutine after the machine has switched to the next mode, and
// may call back into the machine.
func (m *Machine) OnComplete(fn func(Completion)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}

func (m *Machine) State() models.TimerState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Machine) Settings() models.TimerSettings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settings
}

// Progress returns the elapsed fraction of the current interval in [0, 1].
func (m *Machine) Progress() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.total <= 0 {
		return 0
	}
	p := 1 - float64(m.state.RemainingSeconds)/float64(m.total)
	return min(max(p, 0), 1)
}

// Start begins counting down from idle. Starting a running timer is a no-op.
func (m *Machine) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.state.Status {
	case models.StatusIdle:
	case models.StatusCompleted:
		m.state.RemainingSeconds = m.settings.DurationSeconds(m.state.Mode)
		m.total = m.state.RemainingSeconds
	default:
		return
	}
	m.state.Status = models.StatusRunning
	logger.Session(string(m.state.Mode), m.state.SessionsCompleted).Debug("Interval started", "seconds", m.state.RemainingSeconds)
	m.startTicking()
}

func (m *Machine) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.Status != models.StatusRunning {
		return
	}
	m.stopTicking()
	m.state.Status = models.StatusPaused
}

func (m *Machine) Resume() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.Status != models.StatusPaused {
		return
	}
	m.state.Status = models.StatusRunning
	m.startTicking()
}

// Reset returns to idle with the full duration of the current mode.
func (m *Machine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopTicking()
	m.enterIdle()
}

// SwitchMode moves to target and leaves the timer idle. Unknown modes are
// ignored.
func (m *Machine) SwitchMode(target models.TimerMode) {
	if _, ok := models.ParseTimerMode(string(target)); !ok {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.switchModeLocked(target)
}

// Tick advances a running timer by one second.
func (m *Machine) Tick() {
	m.mu.Lock()
	gen := m.gen
	m.mu.Unlock()
	m.tick(gen)
}

// UpdateSettings merges the positive fields of u into the settings. An idle
// timer picks up the new duration at once; a running or paused one on its
// next reset or mode switch. A failed save leaves the new settings in
// effect and returns a recoverable error.
func (m *Machine) UpdateSettings(u SettingsUpdate) error {
	m.mu.Lock()
	changed := false
	merge := func(dst *int, v *int) {
		if v != nil && *v > 0 && *v != *dst {
			*dst = *v
			changed = true
		}
	}
	merge(&m.settings.FocusDuration, u.FocusDuration)
	merge(&m.settings.ShortBreakDuration, u.ShortBreakDuration)
	merge(&m.settings.LongBreakDuration, u.LongBreakDuration)
	merge(&m.settings.SessionsUntilLongBreak, u.SessionsUntilLongBreak)

	if changed && m.state.Status == models.StatusIdle {
		m.enterIdle()
	}
	settings := m.settings
	store := m.store
	m.mu.Unlock()

	if !changed || store == nil {
		return nil
	}
	if err := store.Save(settings); err != nil {
		logger.Warn("Failed to save timer settings", "error", err)
		return apperrors.Recoverable("save timer settings", err)
	}
	return nil
}

// Close stops any active tick subscription.
func (m *Machine) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopTicking()
}

func (m *Machine) tick(gen uint64) {
	m.mu.Lock()
	if gen != m.gen || m.state.Status != models.StatusRunning {
		m.mu.Unlock()
		return
	}

	m.state.RemainingSeconds--
	if m.state.RemainingSeconds > 0 {
		m.mu.Unlock()
		return
	}

	m.stopTicking()
	m.state.RemainingSeconds = 0
	m.state.Status = models.StatusCompleted

	finished := m.state.Mode
	next := models.ModeFocus
	if finished == models.ModeFocus {
		m.state.SessionsCompleted++
		next = models.ModeShortBreak
		if m.state.SessionsCompleted%m.cycle == 0 {
			next = models.ModeLongBreak
		}
	}
	ev := Completion{
		Mode:              finished,
		Status:            m.state.Status,
		NextMode:          next,
		SessionsCompleted: m.state.SessionsCompleted,
	}
	logger.Session(string(finished), ev.SessionsCompleted).Debug("Interval completed", "next", next)

	m.switchModeLocked(next)
	listeners := slices.Clone(m.listeners)
	m.mu.Unlock()

	for _, fn := range listeners {
		fn(ev)
	}
}

func (m *Machine) switchModeLocked(target models.TimerMode) {
	m.stopTicking()
	m.state.Mode = target
	m.enterIdle()
}

func (m *Machine) enterIdle() {
	m.cycle = m.settings.SessionsUntilLongBreak
	m.state.Status = models.StatusIdle
	m.state.RemainingSeconds = m.settings.DurationSeconds(m.state.Mode)
	m.total = m.state.RemainingSeconds
}

func (m *Machine) startTicking() {
	m.stopTicking()
	m.gen++
	if m.ticks == nil {
		return
	}
	gen := m.gen
	m.stop = m.ticks.Start(constants.TickInterval, func() { m.tick(gen) })
}

func (m *Machine) stopTicking() {
	if m.stop != nil {
		m.stop()
		m.stop = nil
	}
}
