package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/julianstephens/flowmind/internal/models"
	"github.com/julianstephens/flowmind/internal/storage"
)

const taskColumns = `id, title, description, due_date, energy, priority, completed, postponed_count`

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(row scanner) (models.Task, error) {
	var t models.Task
	var energy, priority string
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.DueDate, &energy, &priority, &t.Completed, &t.PostponedCount)
	if err != nil {
		return models.Task{}, err
	}
	t.Energy = models.EnergyLevel(energy)
	t.Priority = models.Priority(priority)
	return t, nil
}

func (s *Store) AddTask(task models.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}
	_, err := s.db.Exec(`
		INSERT INTO tasks (`+taskColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		task.ID, task.Title, task.Description, task.DueDate, string(task.Energy), string(task.Priority),
		task.Completed, task.PostponedCount,
	)
	if err != nil {
		return fmt.Errorf("failed to add task: %w", err)
	}
	return nil
}

func (s *Store) GetTask(id string) (models.Task, error) {
	row := s.db.QueryRow(`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, fmt.Errorf("task %s: %w", id, storage.ErrNotFound)
	}
	return t, err
}

// GetAllTasks returns every task in insertion order.
func (s *Store) GetAllTasks() ([]models.Task, error) {
	rows, err := s.db.Query(`SELECT ` + taskColumns + ` FROM tasks ORDER BY created_at, rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (s *Store) UpdateTask(task models.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}
	res, err := s.db.Exec(`
		UPDATE tasks
		SET title = ?, description = ?, due_date = ?, energy = ?, priority = ?, completed = ?, postponed_count = ?
		WHERE id = ?`,
		task.Title, task.Description, task.DueDate, string(task.Energy), string(task.Priority),
		task.Completed, task.PostponedCount, task.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	return requireRow(res, "task", task.ID)
}

func (s *Store) DeleteTask(id string) error {
	res, err := s.db.Exec("DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return requireRow(res, "task", id)
}

func requireRow(res sql.Result, kind, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, storage.ErrNotFound)
	}
	return nil
}
