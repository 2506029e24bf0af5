// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the journal schema and applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-parkour-client/internal/logger"
	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

var errNilDB = errors.New("db is nil")

// Migrate applies all pending migrations to db. goose output goes to log,
// never to stdout.
func Migrate(db *sql.DB, log *logger.Logger) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(&gooseLogger{log: log})

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// gooseLogger routes goose messages into zerolog.
type gooseLogger struct {
	log *logger.Logger
}

func (g *gooseLogger) Printf(format string, v ...any) {
	g.log.Debug().Str("func", "goose").Msgf(format, v...)
}

// Fatalf logs at error level and does not exit; goose returns the error to
// Migrate anyway.
func (g *gooseLogger) Fatalf(format string, v ...any) {
	g.log.Error().Str("func", "goose").Msgf(format, v...)
}
