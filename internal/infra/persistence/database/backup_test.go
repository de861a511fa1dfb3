package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"pocketratings/config"
	domainerrors "pocketratings/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBackupPath(t *testing.T) {
	assert.Equal(t, "ratings.db.backup", DefaultBackupPath("ratings.db"))
	assert.Equal(t, "/data/ratings.db.backup", DefaultBackupPath("file:/data/ratings.db?_foreign_keys=on"))
}

func TestCheckBackupPath(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "taken.db")
	require.NoError(t, os.WriteFile(existing, []byte("x"), 0o600))

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "fresh file", path: filepath.Join(dir, "snap.db")},
		{name: "parent traversal", path: dir + "/../snap.db", wantErr: true},
		{name: "control character", path: filepath.Join(dir, "snap\n.db"), wantErr: true},
		{name: "existing file", path: existing, wantErr: true},
		{name: "blank", path: " ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckBackupPath(tt.path)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestBackup_SQLiteSnapshot(t *testing.T) {
	ctx := context.Background()
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
	require.NoError(t, Migrate(ctx, db))
	require.NoError(t, db.Exec("INSERT INTO locations (id, name) VALUES (?, ?)", uuid.NewString(), "Corner shop").Error)

	out := filepath.Join(t.TempDir(), "snap.db")
	require.NoError(t, Backup(ctx, db, out))

	// a second run must not overwrite the snapshot
	assert.ErrorIs(t, Backup(ctx, db, out), domainerrors.ErrValidationFailed)

	snapCfg := &config.Config{Database: config.DatabaseConfig{Driver: config.DriverSQLite, SQLitePath: out}}
	snap, err := Open(snapCfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := snap.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	var count int64
	require.NoError(t, snap.Table("locations").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
