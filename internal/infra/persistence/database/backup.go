package database

import (
	"context"
	"os"
	"strings"
	"unicode"

	domainerrors "pocketratings/internal/domain/errors"
	"pocketratings/internal/errors"

	"gorm.io/gorm"
)

// DefaultBackupPath derives the snapshot path from the configured SQLite path or DSN.
func DefaultBackupPath(sqlitePath string) string {
	path := strings.TrimPrefix(sqlitePath, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}

	return path + ".backup"
}

// CheckBackupPath rejects paths with ".." or control characters and paths that already exist.
func CheckBackupPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("output: required")
	}
	if strings.Contains(path, "..") || strings.ContainsFunc(path, unicode.IsControl) {
		return domainerrors.ErrValidationFailed.WithDetails("output: refusing path with '..' or control characters")
	}
	if _, err := os.Stat(path); err == nil {
		return domainerrors.ErrValidationFailed.WithDetails("output: " + path + " already exists")
	}

	return nil
}

// Backup writes a consistent snapshot of a SQLite database to path with VACUUM INTO.
// It is safe to run while the server is serving requests.
func Backup(ctx context.Context, db *gorm.DB, path string) error {
	if name := db.Dialector.Name(); name != "sqlite" {
		return domainerrors.ErrValidationFailed.WithDetails("backup needs the sqlite driver, not " + name)
	}
	if err := CheckBackupPath(path); err != nil {
		return err
	}

	if err := db.WithContext(ctx).Exec("VACUUM INTO ?", path).Error; err != nil {
		return errors.Wrapf(err, "backup to %s", path)
	}

	return nil
}
