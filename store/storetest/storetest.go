// Package storetest opens migrated SQLite stores for tests.
package storetest

import (
	"bloggo/config"
	"bloggo/store"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func New(t testing.TB) *store.Store {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "bloggo.db") + "?_pragma=foreign_keys(1)"
	s, err := store.Open(config.DriverSQLite, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	require.NoError(t, s.MigrateUp())
	return s
}
