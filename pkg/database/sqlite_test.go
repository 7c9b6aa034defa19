package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"doctors/config"
)

func TestWithForeignKeys(t *testing.T) {
	assert.Equal(t, "doctors.db?_foreign_keys=on", withForeignKeys("doctors.db"))
	assert.Equal(t, "file:x?mode=memory&_foreign_keys=on", withForeignKeys("file:x?mode=memory"))
	assert.Equal(t, "x.db?_fk=1", withForeignKeys("x.db?_fk=1"))
}

func TestNewSQLiteDBCreatesParentDir(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "nested", "doctors.db")

	db, err := NewSQLiteDB(dsn, zap.NewNop())
	require.NoError(t, err)

	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
	assert.DirExists(t, filepath.Dir(dsn))
}

func TestPostgresConnString(t *testing.T) {
	got := PostgresConnString(config.PostgresConfig{
		Host:     "db",
		Port:     "5432",
		Username: "u",
		Password: "p",
		DBName:   "doctors",
		SSLMode:  "disable",
	})
	assert.Equal(t, "postgres://u:p@db:5432/doctors?sslmode=disable", got)
}

func TestSQLiteLowerFoldsUnicode(t *testing.T) {
	for range 2 {
		db, err := NewSQLiteDB("file::memory:", zap.NewNop())
		require.NoError(t, err)

		var lowered string
		require.NoError(t, db.Raw("SELECT "+SQLiteLowerFunc+"(?)", "ÄRZTIN Ş").Scan(&lowered).Error)
		assert.Equal(t, "ärztin ş", lowered)
	}
}
