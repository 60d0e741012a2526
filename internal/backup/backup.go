package backup

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/flowmind/internal/constants"
	"github.com/julianstephens/flowmind/internal/logger"
)

const (
	// MaxBackups is the number of snapshots kept after rotation.
	MaxBackups = 14
	DirName    = "backups"
	FilePrefix = constants.AppName + "-"
	FileSuffix = ".db"

	timestampLayout = "20060102-150405"
)

// ErrNoDatabase is returned when there is no database file to snapshot.
var ErrNoDatabase = errors.New("database does not exist")

// Info describes one snapshot on disk.
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64

	seq int
}

// Manager snapshots a flowmind SQLite database into a sibling backups/
// directory.
type Manager struct {
	dbPath    string
	backupDir string
	now       func() time.Time
}

func NewManager(dbPath string) *Manager {
	return &Manager{
		dbPath:    dbPath,
		backupDir: filepath.Join(filepath.Dir(dbPath), DirName),
		now:       time.Now,
	}
}

// WithClock returns a copy of m that stamps snapshots using now.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	cp := *m
	cp.now = now
	return &cp
}

func (m *Manager) Dir() string {
	return m.backupDir
}

// Create writes a new snapshot and prunes the oldest ones beyond MaxBackups.
func (m *Manager) Create() (string, error) {
	path, err := m.snapshot()
	if err != nil {
		return "", err
	}
	if err := m.rotate(); err != nil {
		logger.Warn("Failed to rotate old backups", "error", err)
	}
	return path, nil
}

func (m *Manager) snapshot() (string, error) {
	if _, err := os.Stat(m.dbPath); os.IsNotExist(err) {
		return "", fmt.Errorf("%w: %s", ErrNoDatabase, m.dbPath)
	}
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	path, err := m.nextPath()
	if err != nil {
		return "", err
	}
	if err := vacuumInto(m.dbPath, path); err != nil {
		return "", fmt.Errorf("failed to backup database: %w", err)
	}
	logger.Debug("Created backup", "path", path)
	return path, nil
}

// nextPath picks an unused file name for the current timestamp, appending a
// counter when several snapshots land in the same second.
func (m *Manager) nextPath() (string, error) {
	stamp := m.now().Format(timestampLayout)
	path := filepath.Join(m.backupDir, FilePrefix+stamp+FileSuffix)
	for n := 1; fileExists(path); n++ {
		if n > 100 {
			return "", fmt.Errorf("failed to generate unique backup filename")
		}
		path = filepath.Join(m.backupDir, fmt.Sprintf("%s%s-%d%s", FilePrefix, stamp, n, FileSuffix))
	}
	return path, nil
}

func vacuumInto(src, dst string) error {
	db, err := sql.Open("sqlite", src+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open source database: %w", err)
	}
	defer db.Close()

	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&n); err != nil {
		return fmt.Errorf("source database appears to be corrupted: %w", err)
	}
	if _, err := db.Exec("VACUUM INTO ?", dst); err != nil {
		db.Close()
		return copyFile(src, dst)
	}
	return nil
}

// List returns the snapshots in the backup directory, newest first.
func (m *Manager) List() ([]Info, error) {
	entries, err := os.ReadDir(m.backupDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var out []Info
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ts, seq, ok := parseName(entry.Name())
		if !ok {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		out = append(out, Info{
			Path:      filepath.Join(m.backupDir, entry.Name()),
			Timestamp: ts,
			Size:      info.Size(),
			seq:       seq,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].seq > out[j].seq
		}
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

// parseName extracts the timestamp and same-second counter from
// flowmind-YYYYMMDD-HHMMSS[-N].db.
func parseName(name string) (time.Time, int, bool) {
	if !strings.HasPrefix(name, FilePrefix) || !strings.HasSuffix(name, FileSuffix) {
		return time.Time{}, 0, false
	}
	stamp := strings.TrimSuffix(strings.TrimPrefix(name, FilePrefix), FileSuffix)
	if len(stamp) < len(timestampLayout) {
		return time.Time{}, 0, false
	}
	ts, err := time.ParseInLocation(timestampLayout, stamp[:len(timestampLayout)], time.Local)
	if err != nil {
		return time.Time{}, 0, false
	}

	seq := 0
	if rest := stamp[len(timestampLayout):]; rest != "" {
		n, err := strconv.Atoi(strings.TrimPrefix(rest, "-"))
		if err != nil || !strings.HasPrefix(rest, "-") || n < 1 {
			return time.Time{}, 0, false
		}
		seq = n
	}
	return ts, seq, true
}

func (m *Manager) rotate() error {
	backups, err := m.List()
	if err != nil {
		return err
	}
	for i := MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}

// Restore replaces the database with the snapshot at path. The current
// database is snapshotted first; its path is returned (empty when there was
// no database to save).
func (m *Manager) Restore(path string) (string, error) {
	if !fileExists(path) {
		return "", fmt.Errorf("backup file does not exist: %s", path)
	}
	if err := Verify(path); err != nil {
		return "", fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}

	var saved string
	if fileExists(m.dbPath) {
		p, err := m.snapshot()
		if err != nil {
			return "", fmt.Errorf("failed to backup current database before restore: %w", err)
		}
		saved = p
	}

	tmp := m.dbPath + ".restore.tmp"
	if err := copyFile(path, tmp); err != nil {
		return saved, fmt.Errorf("failed to copy backup file: %w", err)
	}
	if err := os.Rename(tmp, m.dbPath); err != nil {
		if rmErr := os.Remove(tmp); rmErr != nil {
			logger.Warn("Failed to remove temporary restore file", "path", tmp, "error", rmErr)
		}
		return saved, fmt.Errorf("failed to restore database: %w", err)
	}
	return saved, nil
}

// Verify checks that path is a SQLite database carrying the flowmind schema.
func Verify(path string) error {
	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return err
	}
	defer db.Close()

	var n int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('tasks', 'checkins', 'settings')").Scan(&n)
	if err != nil {
		return err
	}
	if n != 3 {
		return fmt.Errorf("not a %s database", constants.AppName)
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.ReadFrom(in); err != nil {
		return err
	}
	return out.Sync()
}
