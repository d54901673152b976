// Package store persists users, posts and comments in SQLite or PostgreSQL.
package store

import (
	"bloggo/config"
	"bloggo/domain"
	"context"
	"database/sql"
	"embed"
	"fmt"
	"runtime/debug"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/gommon/log"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	litedriver "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

//go:embed migrations
var migrations embed.FS

func init() {
	// modernc registers itself as "sqlite", which sqlx does not know about.
	sqlx.BindDriver(config.DriverSQLite, sqlx.QUESTION)
}

type Store struct {
	db     *sqlx.DB
	driver string
}

func Open(driver, dataSourceName string) (*Store, error) {
	db, err := sqlx.Open(driver, dataSourceName)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s database", driver)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.Wrapf(err, "ping %s database", driver)
	}

	switch driver {
	case config.DriverSQLite:
		// one writer at a time; transactions must not wait on a second connection
		db.SetMaxOpenConns(1)
	default:
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
	}

	return &Store{db: db, driver: driver}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Driver() string {
	return s.driver
}

func (s *Store) migrator() (*migrate.Migrate, error) {
	src, err := iofs.New(migrations, "migrations/"+s.driver)
	if err != nil {
		return nil, errors.Wrap(err, "load embedded migrations")
	}

	var driver database.Driver
	switch s.driver {
	case config.DriverSQLite:
		driver, err = sqlite.WithInstance(s.db.DB, &sqlite.Config{})
	case config.DriverPostgres:
		driver, err = postgres.WithInstance(s.db.DB, &postgres.Config{})
	default:
		return nil, fmt.Errorf("no migrations for driver %q", s.driver)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "create %s migration driver", s.driver)
	}

	return migrate.NewWithInstance("iofs", src, s.driver, driver)
}

// MigrateUp applies all pending migrations. It returns migrate.ErrNoChange when
// the schema is already at the latest version.
//
// The migrator is not closed: closing it would close the shared *sql.DB.
func (s *Store) MigrateUp() error {
	m, err := s.migrator()
	if err != nil {
		return err
	}
	return m.Up()
}

func (s *Store) MigrateDown() error {
	m, err := s.migrator()
	if err != nil {
		return err
	}
	return m.Down()
}

// WithTx runs fn inside a transaction, committing when fn returns nil and
// rolling back otherwise.
func (s *Store) WithTx(ctx context.Context, reason string, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrapf(err, "begin transaction (%s)", reason)
	}

	committed := false
	defer func() {
		if p := recover(); p != nil {
			log.Errorf("panic in transaction (%s): %v\n%s", reason, p, debug.Stack())
			tx.Rollback()
			panic(p)
		}
		if committed {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
			log.Errorf("transaction rollback error (%s): %v", reason, rbErr)
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return errors.Wrapf(err, "commit transaction (%s)", reason)
	}
	committed = true
	log.Debugf("committed transaction (%s)", reason)

	return nil
}

func notFound(err error, what string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return errors.Wrap(err, what)
}

// uniqueViolation reports whether err is a UNIQUE constraint failure from either driver.
func uniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	var liteErr *litedriver.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
	}
	return false
}
