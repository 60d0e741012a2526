package backup

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/flowmind/internal/models"
	"github.com/julianstephens/flowmind/internal/storage/sqlite"
)

var baseTime = time.Date(2026, 1, 10, 9, 30, 0, 0, time.Local)

// setupTestDB creates an initialized flowmind database holding one task.
func setupTestDB(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "flowmind.db")
	store := sqlite.NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	defer store.Close()

	task := models.Task{ID: "t1", Title: "original", Energy: models.EnergyLow, Priority: models.PriorityLow}
	if err := store.AddTask(task); err != nil {
		t.Fatalf("failed to add task: %v", err)
	}
	return dbPath
}

// steppingClock advances one second per call.
func steppingClock(start time.Time) func() time.Time {
	n := 0
	return func() time.Time {
		n++
		return start.Add(time.Duration(n-1) * time.Second)
	}
}

func taskTitles(t *testing.T, dbPath string) []string {
	t.Helper()
	store := sqlite.NewStore(dbPath)
	if err := store.Load(); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	defer store.Close()

	tasks, err := store.GetAllTasks()
	if err != nil {
		t.Fatal(err)
	}
	var titles []string
	for _, task := range tasks {
		titles = append(titles, task.Title)
	}
	return titles
}

func TestCreate(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath).WithClock(func() time.Time { return baseTime })

	path, err := mgr.Create()
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if filepath.Base(path) != "flowmind-20260110-093000.db" {
		t.Errorf("unexpected backup name %s", filepath.Base(path))
	}
	if filepath.Dir(path) != mgr.Dir() {
		t.Errorf("backup written outside %s: %s", mgr.Dir(), path)
	}
	if err := Verify(path); err != nil {
		t.Errorf("backup does not verify: %v", err)
	}
	if got := taskTitles(t, path); len(got) != 1 || got[0] != "original" {
		t.Errorf("backup content mismatch: %v", got)
	}
}

func TestCreate_NoDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := mgr.Create(); !errors.Is(err, ErrNoDatabase) {
		t.Errorf("expected ErrNoDatabase, got %v", err)
	}
}

func TestCreate_UniqueNamesWithinSecond(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath).WithClock(func() time.Time { return baseTime })

	seen := make(map[string]bool)
	for i := 0; i < 3; i++ {
		path, err := mgr.Create()
		if err != nil {
			t.Fatalf("Create %d failed: %v", i, err)
		}
		if seen[path] {
			t.Fatalf("duplicate backup path %s", path)
		}
		seen[path] = true
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 3 {
		t.Fatalf("expected 3 backups, got %d", len(backups))
	}
	if filepath.Base(backups[0].Path) != "flowmind-20260110-093000-2.db" {
		t.Errorf("expected the last same-second backup first, got %s", filepath.Base(backups[0].Path))
	}
}

func TestRotation(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath).WithClock(steppingClock(baseTime))

	for i := 0; i < MaxBackups+3; i++ {
		if _, err := mgr.Create(); err != nil {
			t.Fatalf("Create %d failed: %v", i, err)
		}
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != MaxBackups {
		t.Fatalf("expected %d backups after rotation, got %d", MaxBackups, len(backups))
	}
	oldestKept := baseTime.Add(3 * time.Second)
	if !backups[len(backups)-1].Timestamp.Equal(oldestKept) {
		t.Errorf("expected oldest kept backup at %v, got %v", oldestKept, backups[len(backups)-1].Timestamp)
	}
}

func TestList(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath).WithClock(steppingClock(baseTime))

	empty, err := mgr.List()
	if err != nil {
		t.Fatalf("List without backup dir failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected no backups, got %d", len(empty))
	}

	for i := 0; i < 2; i++ {
		if _, err := mgr.Create(); err != nil {
			t.Fatal(err)
		}
	}
	for _, junk := range []string{"notes.txt", "flowmind-garbage.db", "flowmind-20260110-093000-x.db"} {
		if err := os.WriteFile(filepath.Join(mgr.Dir(), junk), []byte("x"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != 2 {
		t.Fatalf("expected 2 backups, got %d", len(backups))
	}
	if !backups[0].Timestamp.After(backups[1].Timestamp) {
		t.Errorf("expected newest first, got %v then %v", backups[0].Timestamp, backups[1].Timestamp)
	}
	if backups[0].Size == 0 {
		t.Error("expected a non-zero size")
	}
}

func TestRestore(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath).WithClock(steppingClock(baseTime))

	snapshot, err := mgr.Create()
	if err != nil {
		t.Fatal(err)
	}

	store := sqlite.NewStore(dbPath)
	if err := store.Load(); err != nil {
		t.Fatal(err)
	}
	extra := models.Task{ID: "t2", Title: "added later", Energy: models.EnergyHigh, Priority: models.PriorityHigh}
	if err := store.AddTask(extra); err != nil {
		t.Fatal(err)
	}
	store.Close()

	saved, err := mgr.Restore(snapshot)
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	if got := taskTitles(t, dbPath); len(got) != 1 || got[0] != "original" {
		t.Errorf("expected restored database to hold only the original task, got %v", got)
	}
	if saved == "" {
		t.Fatal("expected the pre-restore database to be saved")
	}
	if got := taskTitles(t, saved); len(got) != 2 {
		t.Errorf("pre-restore backup should keep both tasks, got %v", got)
	}
	if _, err := os.Stat(dbPath + ".restore.tmp"); !os.IsNotExist(err) {
		t.Error("temporary restore file was left behind")
	}
}

func TestRestore_Rejects(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)
	dir := t.TempDir()

	corrupt := filepath.Join(dir, "corrupt.db")
	if err := os.WriteFile(corrupt, []byte("this is not sqlite"), 0600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "nope.db")},
		{"corrupted file", corrupt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := mgr.Restore(tt.path); err == nil {
				t.Error("expected error")
			}
		})
	}

	if got := taskTitles(t, dbPath); len(got) != 1 {
		t.Errorf("database changed after rejected restore: %v", got)
	}
}

func TestParseName(t *testing.T) {
	tests := []struct {
		name    string
		wantOK  bool
		wantSeq int
	}{
		{"flowmind-20260110-093000.db", true, 0},
		{"flowmind-20260110-093000-7.db", true, 7},
		{"flowmind-20260110-093000-0.db", false, 0},
		{"flowmind-20260110.db", false, 0},
		{"otherapp-20260110-093000.db", false, 0},
		{"flowmind-20260110-093000.sqlite", false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, seq, ok := parseName(tt.name)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if seq != tt.wantSeq {
				t.Errorf("seq = %d, want %d", seq, tt.wantSeq)
			}
			if !ts.Equal(baseTime) {
				t.Errorf("timestamp = %v, want %v", ts, baseTime)
			}
		})
	}
}
