package sqlstore

import (
	"context"
	"fmt"
)

type migration struct {
	version int
	sql     map[string]string // keyed by driver; "" is the fallback for both
}

func (m migration) forDriver(driver string) string {
	if q, ok := m.sql[driver]; ok {
		return q
	}
	return m.sql[""]
}

var migrations = []migration{
	{
		version: 1,
		sql: map[string]string{
			DriverPostgres: `
				CREATE TABLE IF NOT EXISTS tasks (
					id           BIGSERIAL PRIMARY KEY,
					title        VARCHAR(100) NOT NULL,
					description  TEXT NOT NULL,
					deadline     TIMESTAMPTZ,
					tags         VARCHAR(50),
					completed    BOOLEAN NOT NULL DEFAULT FALSE,
					date_created TIMESTAMPTZ NOT NULL
				)`,
			DriverSQLite: `
				CREATE TABLE IF NOT EXISTS tasks (
					id           INTEGER PRIMARY KEY AUTOINCREMENT,
					title        TEXT NOT NULL,
					description  TEXT NOT NULL,
					deadline     TIMESTAMP,
					tags         TEXT,
					completed    BOOLEAN NOT NULL DEFAULT 0,
					date_created TIMESTAMP NOT NULL
				)`,
		},
	},
	{
		version: 2,
		sql: map[string]string{
			"": `CREATE INDEX IF NOT EXISTS idx_tasks_date_created ON tasks (date_created)`,
		},
	},
}

// migrate applies outstanding migrations in order, recording each applied
// version in schema_version.
func (s *Store) migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx,
		`CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY)`)
	if err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	var current int
	err = s.db.GetContext(ctx, &current,
		`SELECT COALESCE(MAX(version), 0) FROM schema_version`)
	if err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		if _, err := s.db.ExecContext(ctx, m.forDriver(s.driver)); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
		if _, err := s.db.ExecContext(ctx,
			s.rebind(`INSERT INTO schema_version (version) VALUES (?)`), m.version); err != nil {
			return fmt.Errorf("recording migration v%d: %w", m.version, err)
		}
	}
	return nil
}
