package sqlite

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/julianstephens/flowmind/internal/models"
	"github.com/julianstephens/flowmind/internal/storage"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "flowmind.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestInit_SeedsDefaultSettings(t *testing.T) {
	store := setupStore(t)

	got, err := store.GetTimerSettings()
	if err != nil {
		t.Fatalf("GetTimerSettings failed: %v", err)
	}
	if got != models.DefaultTimerSettings() {
		t.Errorf("expected defaults, got %+v", got)
	}
}

func TestInit_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flowmind.db")

	first := NewStore(path)
	if err := first.Init(); err != nil {
		t.Fatalf("first Init failed: %v", err)
	}
	custom := models.TimerSettings{FocusDuration: 45, ShortBreakDuration: 5, LongBreakDuration: 20, SessionsUntilLongBreak: 3}
	if err := first.SaveTimerSettings(custom); err != nil {
		t.Fatalf("SaveTimerSettings failed: %v", err)
	}
	first.Close()

	second := NewStore(path)
	if err := second.Init(); err != nil {
		t.Fatalf("second Init failed: %v", err)
	}
	defer second.Close()

	got, err := second.GetTimerSettings()
	if err != nil {
		t.Fatalf("GetTimerSettings failed: %v", err)
	}
	if got != custom {
		t.Errorf("re-running Init overwrote settings: got %+v", got)
	}
}

func TestLoad_Uninitialized(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Error("expected error loading an uninitialized store")
	}
}

func TestMigrate_UpToDate(t *testing.T) {
	store := setupStore(t)

	n, err := store.Migrate(nil)
	if err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}
	if n != 0 {
		t.Errorf("expected no pending migrations, got %d", n)
	}
}

func TestTaskCRUD(t *testing.T) {
	store := setupStore(t)

	task := models.Task{
		ID:       "t1",
		Title:    "Write report",
		DueDate:  "2026-01-11",
		Energy:   models.EnergyHigh,
		Priority: models.PriorityHigh,
	}
	if err := store.AddTask(task); err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}

	got, err := store.GetTask("t1")
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if got != task {
		t.Errorf("expected %+v, got %+v", task, got)
	}

	task.Completed = true
	task.PostponedCount = 2
	task.Description = "quarterly numbers"
	if err := store.UpdateTask(task); err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}
	got, err = store.GetTask("t1")
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if got != task {
		t.Errorf("expected %+v after update, got %+v", task, got)
	}

	if err := store.DeleteTask("t1"); err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}
	if _, err := store.GetTask("t1"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestTaskNotFound(t *testing.T) {
	store := setupStore(t)

	missing := models.Task{ID: "nope", Title: "x", Energy: models.EnergyLow, Priority: models.PriorityLow}
	if err := store.UpdateTask(missing); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("UpdateTask: expected ErrNotFound, got %v", err)
	}
	if err := store.DeleteTask("nope"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("DeleteTask: expected ErrNotFound, got %v", err)
	}
}

func TestAddTask_RejectsInvalid(t *testing.T) {
	store := setupStore(t)

	err := store.AddTask(models.Task{ID: "bad", Title: " ", Energy: models.EnergyLow, Priority: models.PriorityLow})
	if err == nil {
		t.Error("expected validation error for empty title")
	}
}

func TestGetAllTasks_PreservesInsertionOrder(t *testing.T) {
	store := setupStore(t)

	ids := []string{"c", "a", "b"}
	for _, id := range ids {
		task := models.Task{ID: id, Title: "task " + id, Energy: models.EnergyMedium, Priority: models.PriorityMedium}
		if err := store.AddTask(task); err != nil {
			t.Fatalf("AddTask(%s) failed: %v", id, err)
		}
	}

	tasks, err := store.GetAllTasks()
	if err != nil {
		t.Fatalf("GetAllTasks failed: %v", err)
	}
	if len(tasks) != len(ids) {
		t.Fatalf("expected %d tasks, got %d", len(ids), len(tasks))
	}
	for i, id := range ids {
		if tasks[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, tasks[i].ID)
		}
	}
}

func TestCheckins(t *testing.T) {
	store := setupStore(t)

	for _, c := range []models.Checkin{
		{Date: "2026-01-03", Emotion: models.EmotionCalm, Energy: models.EnergyMedium},
		{Date: "2026-01-01", Emotion: models.EmotionTired, Energy: models.EnergyLow},
		{Date: "2026-01-10", Emotion: models.EmotionHappy, Energy: models.EnergyHigh},
	} {
		if err := store.SaveCheckin(c); err != nil {
			t.Fatalf("SaveCheckin failed: %v", err)
		}
	}

	overwrite := models.Checkin{Date: "2026-01-03", Emotion: models.EmotionAnxious, Energy: models.EnergyLow, Notes: "deadline"}
	if err := store.SaveCheckin(overwrite); err != nil {
		t.Fatalf("SaveCheckin (overwrite) failed: %v", err)
	}

	got, err := store.GetCheckin("2026-01-03")
	if err != nil {
		t.Fatalf("GetCheckin failed: %v", err)
	}
	if got != overwrite {
		t.Errorf("expected %+v, got %+v", overwrite, got)
	}

	if _, err := store.GetCheckin("2026-02-01"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	ranged, err := store.GetCheckins("2026-01-01", "2026-01-05")
	if err != nil {
		t.Fatalf("GetCheckins failed: %v", err)
	}
	if len(ranged) != 2 || ranged[0].Date != "2026-01-01" || ranged[1].Date != "2026-01-03" {
		t.Errorf("unexpected range result: %+v", ranged)
	}
}

func TestSettingsStoreAdapter(t *testing.T) {
	store := setupStore(t)
	adapter := storage.NewSettingsStore(store)

	want := models.TimerSettings{FocusDuration: 30, ShortBreakDuration: 6, LongBreakDuration: 18, SessionsUntilLongBreak: 5}
	if err := adapter.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := adapter.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestGetTimerSettings_IgnoresMalformedRows(t *testing.T) {
	store := setupStore(t)

	if _, err := store.GetDB().Exec("UPDATE settings SET value = 'soon' WHERE key = 'timer.focus_duration'"); err != nil {
		t.Fatalf("failed to corrupt setting: %v", err)
	}

	got, err := store.GetTimerSettings()
	if err != nil {
		t.Fatalf("GetTimerSettings failed: %v", err)
	}
	if got.FocusDuration != 25 {
		t.Errorf("expected malformed value to fall back to 25, got %d", got.FocusDuration)
	}
}

func TestSchemaVersion(t *testing.T) {
	store := setupStore(t)

	current, latest, err := store.SchemaVersion()
	if err != nil {
		t.Fatalf("SchemaVersion failed: %v", err)
	}
	if current != latest || latest < 1 {
		t.Errorf("expected an up-to-date schema, got current=%d latest=%d", current, latest)
	}
}
