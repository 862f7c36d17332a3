package database

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/golang-migrate/migrate/v4/database/multistmt"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const maxMigrationSize = 10 << 20

var statementDelimiter = []byte(";")

// ErrDirty is returned when a previous migration failed half way.
// The schema has to be repaired by hand and the version forced.
var ErrDirty = errors.New("database is in a dirty migration state")

// Migrator applies numbered migrations from an fs.FS and records the current
// version in schema_migrations, one row with (version, dirty).
type Migrator struct {
	db     *sqlx.DB
	src    source.Driver
	logger *zap.Logger
}

// NewMigrator reads migrations named <version>_<title>.(up|down).sql from dir in fsys.
func NewMigrator(db *sqlx.DB, fsys fs.FS, dir string, logger *zap.Logger) (*Migrator, error) {
	src, err := iofs.New(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open migration source: %w", err)
	}
	return &Migrator{db: db, src: src, logger: logger}, nil
}

// Close releases the migration source.
func (m *Migrator) Close() error {
	return m.src.Close()
}

// Version returns the applied version. ok is false when nothing was applied yet.
func (m *Migrator) Version(ctx context.Context) (version uint, dirty bool, ok bool, err error) {
	if err := m.ensureVersionTable(ctx); err != nil {
		return 0, false, false, err
	}

	var row struct {
		Version int64 `db:"version"`
		Dirty   int   `db:"dirty"`
	}
	err = m.db.GetContext(ctx, &row, `SELECT version "version", dirty "dirty" FROM schema_migrations`)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, false, nil
	}
	if err != nil {
		return 0, false, false, fmt.Errorf("failed to read schema version: %w", err)
	}
	return uint(row.Version), row.Dirty != 0, true, nil
}

// Up applies every pending migration and returns how many ran.
func (m *Migrator) Up(ctx context.Context) (int, error) {
	current, dirty, ok, err := m.Version(ctx)
	if err != nil {
		return 0, err
	}
	if dirty {
		return 0, fmt.Errorf("%w: version %d", ErrDirty, current)
	}

	var next uint
	if ok {
		next, err = m.src.Next(current)
	} else {
		next, err = m.src.First()
	}

	applied := 0
	for err == nil {
		r, identifier, readErr := m.src.ReadUp(next)
		if readErr != nil {
			return applied, fmt.Errorf("failed to read up migration %d: %w", next, readErr)
		}
		if runErr := m.run(ctx, next, r); runErr != nil {
			return applied, fmt.Errorf("migration %d_%s failed: %w", next, identifier, runErr)
		}
		if setErr := m.setVersion(ctx, next, false); setErr != nil {
			return applied, setErr
		}
		m.logger.Info("Applied migration", zap.Uint("version", next), zap.String("name", identifier))
		applied++
		next, err = m.src.Next(next)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return applied, fmt.Errorf("failed to find next migration: %w", err)
	}
	return applied, nil
}

// Down reverts up to steps migrations, or all of them when steps <= 0.
func (m *Migrator) Down(ctx context.Context, steps int) (int, error) {
	current, dirty, ok, err := m.Version(ctx)
	if err != nil {
		return 0, err
	}
	if dirty {
		return 0, fmt.Errorf("%w: version %d", ErrDirty, current)
	}

	reverted := 0
	for ok && (steps <= 0 || reverted < steps) {
		r, identifier, err := m.src.ReadDown(current)
		if err != nil {
			return reverted, fmt.Errorf("failed to read down migration %d: %w", current, err)
		}
		if err := m.run(ctx, current, r); err != nil {
			return reverted, fmt.Errorf("revert of %d_%s failed: %w", current, identifier, err)
		}

		prev, err := m.src.Prev(current)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			ok = false
			err = m.clearVersion(ctx)
		case err != nil:
			return reverted, fmt.Errorf("failed to find previous migration: %w", err)
		default:
			err = m.setVersion(ctx, prev, false)
		}
		if err != nil {
			return reverted, err
		}

		m.logger.Info("Reverted migration", zap.Uint("version", current), zap.String("name", identifier))
		reverted++
		current = prev
	}
	return reverted, nil
}

// run marks the version dirty, then executes each statement of the file.
// go-ora accepts one statement per Exec.
func (m *Migrator) run(ctx context.Context, version uint, r io.ReadCloser) error {
	defer r.Close()

	if err := m.setVersion(ctx, version, true); err != nil {
		return err
	}

	var execErr error
	parseErr := multistmt.Parse(r, statementDelimiter, maxMigrationSize, func(stmt []byte) bool {
		stmt = bytes.TrimSpace(bytes.TrimSuffix(bytes.TrimSpace(stmt), statementDelimiter))
		if len(stmt) == 0 {
			return true
		}
		if _, err := m.db.ExecContext(ctx, string(stmt)); err != nil {
			execErr = err
			return false
		}
		return true
	})
	if execErr != nil {
		return execErr
	}
	return parseErr
}

func (m *Migrator) ensureVersionTable(ctx context.Context) error {
	var count int
	err := m.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM user_tables WHERE table_name = 'SCHEMA_MIGRATIONS'`)
	if err != nil {
		return fmt.Errorf("failed to check schema_migrations: %w", err)
	}
	if count > 0 {
		return nil
	}
	_, err = m.db.ExecContext(ctx,
		`CREATE TABLE schema_migrations (version NUMBER(19) NOT NULL, dirty NUMBER(1) NOT NULL)`)
	if err != nil {
		return fmt.Errorf("failed to create schema_migrations: %w", err)
	}
	return nil
}

func (m *Migrator) setVersion(ctx context.Context, version uint, dirty bool) error {
	d := 0
	if dirty {
		d = 1
	}

	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin version update: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM schema_migrations`); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to clear schema version: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations (version, dirty) VALUES (:1, :2)`, int64(version), d); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to write schema version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit schema version: %w", err)
	}
	return nil
}

func (m *Migrator) clearVersion(ctx context.Context) error {
	if _, err := m.db.ExecContext(ctx, `DELETE FROM schema_migrations`); err != nil {
		return fmt.Errorf("failed to clear schema version: %w", err)
	}
	return nil
}
