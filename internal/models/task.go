package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/flowmind/internal/constants"
)

type EnergyLevel string

const (
	EnergyLow    EnergyLevel = "low"
	EnergyMedium EnergyLevel = "medium"
	EnergyHigh   EnergyLevel = "high"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type Task struct {
	ID             string      `json:"id"`
	Title          string      `json:"title"`
	Description    string      `json:"description,omitempty"`
	DueDate        string      `json:"due_date,omitempty"` // YYYY-MM-DD format
	Energy         EnergyLevel `json:"energy"`
	Priority       Priority    `json:"priority"`
	Completed      bool        `json:"completed"`
	PostponedCount int         `json:"postponed_count"`
}

// Validate checks that the task has the fields the store requires.
func (t Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("task title cannot be empty")
	}
	if _, ok := ParseEnergyLevel(string(t.Energy)); !ok {
		return fmt.Errorf("invalid energy level: %q", t.Energy)
	}
	if _, ok := ParsePriority(string(t.Priority)); !ok {
		return fmt.Errorf("invalid priority: %q", t.Priority)
	}
	if t.DueDate != "" {
		if _, err := time.Parse(constants.DateFormat, t.DueDate); err != nil {
			return fmt.Errorf("invalid due date (expected YYYY-MM-DD): %w", err)
		}
	}
	if t.PostponedCount < 0 {
		return fmt.Errorf("postponed count cannot be negative")
	}
	return nil
}

// Due returns the due date as local midnight in loc. The second return value
// is false when the task has no due date or it cannot be parsed.
func (t Task) Due(loc *time.Location) (time.Time, bool) {
	if t.DueDate == "" {
		return time.Time{}, false
	}
	d, err := time.ParseInLocation(constants.DateFormat, t.DueDate, loc)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// ToggleComplete flips the completion flag.
func (t *Task) ToggleComplete() {
	t.Completed = !t.Completed
}

// Postpone defers the task by one day. A task without a due date becomes
// due tomorrow.
func (t *Task) Postpone(today time.Time) {
	t.PostponedCount++
	if due, ok := t.Due(today.Location()); ok {
		t.DueDate = due.AddDate(0, 0, 1).Format(constants.DateFormat)
		return
	}
	t.DueDate = today.AddDate(0, 0, 1).Format(constants.DateFormat)
}

// TodaysTasks returns incomplete tasks that are undated or due on or before
// today, preserving input order.
func TodaysTasks(tasks []Task, today time.Time) []Task {
	y, m, d := today.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, today.Location())

	var out []Task
	for _, t := range tasks {
		if t.Completed {
			continue
		}
		due, ok := t.Due(today.Location())
		if ok && due.After(midnight) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// SplitByCompletion partitions tasks into completed and pending slices.
func SplitByCompletion(tasks []Task) (completed, pending []Task) {
	for _, t := range tasks {
		if t.Completed {
			completed = append(completed, t)
		} else {
			pending = append(pending, t)
		}
	}
	return completed, pending
}

func ParseEnergyLevel(s string) (EnergyLevel, bool) {
	switch e := EnergyLevel(s); e {
	case EnergyLow, EnergyMedium, EnergyHigh:
		return e, true
	}
	return "", false
}

func ParsePriority(s string) (Priority, bool) {
	switch p := Priority(s); p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p, true
	}
	return "", false
}
