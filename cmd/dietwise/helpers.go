package dietwise

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aravindcleaerr/DietWise/internal/app"
	"github.com/aravindcleaerr/DietWise/internal/caldate"
	"github.com/aravindcleaerr/DietWise/internal/ledger"
	"github.com/aravindcleaerr/DietWise/internal/storage"
)

func withDB(run func(*sql.DB) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := storage.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := storage.ApplyMigrations(sqldb); err != nil {
		return err
	}
	return run(sqldb)
}

// withStore loads the persisted state into a store, runs the command
// body against it, and writes the whole state back. Every command is a
// full load-mutate-save cycle.
func withStore(run func(*ledger.Store) error) error {
	return withDB(func(sqldb *sql.DB) error {
		store := ledger.NewStore()
		raw, ok, err := storage.LoadState(sqldb)
		if err != nil {
			return err
		}
		if ok {
			var state ledger.State
			if err := json.Unmarshal(raw, &state); err != nil {
				return fmt.Errorf("decode stored state: %w", err)
			}
			store.Restore(state)
		}

		if err := run(store); err != nil {
			return err
		}

		out, err := json.Marshal(store.Snapshot())
		if err != nil {
			return fmt.Errorf("encode state: %w", err)
		}
		return storage.SaveState(sqldb, out)
	})
}

// parseDateOrToday resolves an optional --date flag.
func parseDateOrToday(value string) (caldate.Date, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return caldate.Today(), nil
	}
	return caldate.Parse(value)
}
