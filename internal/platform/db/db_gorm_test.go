package db

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpen_SQLite(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("SQLITE_PATH", ":memory:")

	conn := Open()

	sqlDB, err := conn.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Ping())
	_ = sqlDB.Close()
}

func TestDialector_Selection(t *testing.T) {
	t.Run("defaults to sqlite", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "")
		t.Setenv("SQLITE_PATH", "")

		require.Equal(t, "sqlite", dialector().Name())
	})

	t.Run("postgres via env", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "postgres")
		t.Setenv("DATABASE_DSN", "host=localhost user=app dbname=taskboard")

		require.Equal(t, "postgres", dialector().Name())
	})
}
