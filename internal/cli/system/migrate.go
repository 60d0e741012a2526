package system

import (
	"errors"
	"fmt"

	"github.com/julianstephens/flowmind/internal/cli"
)

// migrator is implemented by the SQL-backed stores.
type migrator interface {
	Migrate(logFn func(string)) (int, error)
}

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	m, ok := ctx.Store.(migrator)
	if !ok {
		return errors.New("storage backend does not support migrations")
	}

	count, err := m.Migrate(func(msg string) {
		ctx.Println(msg)
	})
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if count == 0 {
		ctx.Println("No migrations to apply. Database is up to date.")
	} else {
		ctx.Printf("\nSuccessfully applied %d migration(s).\n", count)
	}
	return nil
}
