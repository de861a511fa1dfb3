package gormrepo

import (
	"strings"

	domainerrors "pocketratings/internal/domain/errors"
	"pocketratings/internal/domain/repository"
	"pocketratings/internal/errors"

	"gorm.io/gorm"
)

// Both dialects run with TranslateError enabled, so constraint failures arrive as gorm sentinels.
// The message checks cover drivers that do not translate.

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "sqlstate 23505")
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "foreign key constraint") || strings.Contains(msg, "sqlstate 23503")
}

// writeError classifies a failed INSERT, UPDATE or DELETE.
func writeError(err error, details string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return errors.Wrap(repository.ErrDuplicateKey, details)
	case isForeignKeyConstraintViolation(err):
		return errors.Wrap(repository.ErrStillReferenced, details)
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

// readError classifies a failed SELECT; missing rows map to notFound.
func readError(err error, notFound error, details string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}
