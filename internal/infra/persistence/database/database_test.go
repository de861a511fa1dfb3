package database

import (
	"context"
	"testing"

	"pocketratings/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "plain path", path: "ratings.db", want: "file:ratings.db?_foreign_keys=on&_busy_timeout=5000"},
		{name: "existing query", path: "file:x?mode=memory", want: "file:x?mode=memory&_foreign_keys=on&_busy_timeout=5000"},
		{name: "keeps explicit setting", path: "file:x?_foreign_keys=off", want: "file:x?_foreign_keys=off&_busy_timeout=5000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sqliteDSN(tt.path))
		})
	}
}

func TestStatements(t *testing.T) {
	stmts := Statements()
	require.NotEmpty(t, stmts)
	for _, s := range stmts {
		assert.NotContains(t, s, ";")
	}
	assert.Contains(t, stmts[0], "CREATE TABLE IF NOT EXISTS users")
}

func TestMigrate_SQLiteIsIdempotent(t *testing.T) {
	cfg := &config.Config{Database: config.DatabaseConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	}}

	db, err := Open(cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	ctx := context.Background()
	require.NoError(t, Migrate(ctx, db))
	require.NoError(t, Migrate(ctx, db))

	for _, table := range []string{"users", "categories", "products", "locations", "purchases", "reviews"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	var fk int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&fk).Error)
	assert.Equal(t, 1, fk)
}
