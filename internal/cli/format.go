package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/flowmind/internal/models"
)

// FormatTask renders a task as a single listing line.
func FormatTask(t models.Task) string {
	box := "[ ]"
	if t.Completed {
		box = "[x]"
	}

	var meta []string
	meta = append(meta, string(t.Priority)+" priority", string(t.Energy)+" energy")
	if t.DueDate != "" {
		meta = append(meta, "due "+t.DueDate)
	}
	if t.PostponedCount > 0 {
		meta = append(meta, fmt.Sprintf("postponed %dx", t.PostponedCount))
	}

	return fmt.Sprintf("%s %s  %s (%s)", box, ShortID(t.ID), t.Title, strings.Join(meta, ", "))
}
