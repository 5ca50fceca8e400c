// Package store is the data-access layer. A Store wraps one *gorm.DB that
// the caller opens at startup and closes at shutdown; every method runs a
// single query against a single table, optionally preloading one relation.
package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

var (
	// ErrValidation marks input the caller must fix. Controllers answer 400.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound is returned when an identifier does not resolve. Controllers
	// do not distinguish it from other failures.
	ErrNotFound = errors.New("record not found")
)

type Store struct {
	db  *gorm.DB
	now func() time.Time
}

func New(db *gorm.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// WithClock replaces the time source used by date-relative queries.
func (s *Store) WithClock(now func() time.Time) *Store {
	return &Store{db: s.db, now: now}
}

// DB exposes the handle for migrations and seeding.
func (s *Store) DB() *gorm.DB {
	return s.db
}

func (s *Store) conn(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

// authorColumns limits preloaded users to what the API and pages show.
func authorColumns(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "role")
}

// containsPattern builds a LIKE pattern matching s anywhere, with LIKE
// metacharacters escaped. Matching stays case-sensitive on Postgres.
func containsPattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}
