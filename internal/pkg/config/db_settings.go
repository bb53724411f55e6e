package config

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// DatabaseSettings describes how the ORM client connects to the relational database.
type DatabaseSettings struct {
	Type string `mapstructure:"type" validate:"required,oneof=postgres sqlite"`
	DSN  string `mapstructure:"dsn"`
	// DBName is created on first connect when set (postgres only).
	DBName string `mapstructure:"name"`
}

// dbNamePattern keeps DBName safe to interpolate into CREATE DATABASE.
var dbNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,62}$`)

// Validate checks the database settings. Postgres requires a DSN; SQLite falls back to
// an in-memory database.
func (s *DatabaseSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}
	if s.Type == PostgresDbType && s.DSN == "" {
		return fmt.Errorf("dsn is required for %s", PostgresDbType)
	}
	if s.DBName != "" && !dbNamePattern.MatchString(s.DBName) {
		return fmt.Errorf("database name %q must be a plain identifier", s.DBName)
	}
	return nil
}
