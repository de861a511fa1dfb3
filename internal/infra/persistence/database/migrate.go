package database

import (
	"context"
	_ "embed"
	"strings"

	"pocketratings/internal/errors"

	"gorm.io/gorm"
)

//go:embed schema.sql
var schema string

// Statements returns the schema DDL split into single statements.
func Statements() []string {
	parts := strings.Split(schema, ";")
	stmts := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			stmts = append(stmts, s)
		}
	}

	return stmts
}

// Migrate applies the schema in one transaction. Every statement is idempotent.
func Migrate(ctx context.Context, db *gorm.DB) error {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, stmt := range Statements() {
			if err := tx.Exec(stmt).Error; err != nil {
				return errors.Wrapf(err, "apply %q", firstLine(stmt))
			}
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "migrate schema")
	}

	return nil
}

func firstLine(stmt string) string {
	line, _, _ := strings.Cut(stmt, "\n")

	return strings.TrimSpace(line)
}
