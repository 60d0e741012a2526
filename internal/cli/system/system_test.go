package system

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/flowmind/internal/cli"
	"github.com/julianstephens/flowmind/internal/storage/sqlite"
)

var fixedNow = time.Date(2026, 1, 10, 15, 0, 0, 0, time.UTC)

func setupTestDB(t *testing.T) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	var out bytes.Buffer
	return &cli.Context{
		Store: store,
		Out:   &out,
		Now:   func() time.Time { return fixedNow },
	}, &out
}

type fakeNotifier struct {
	sent []string
	err  error
}

func (f *fakeNotifier) Notify(_ context.Context, text string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, text)
	return nil
}
