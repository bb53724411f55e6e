package persistence

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/bella-carwash/bella-api/internal/infrastructure/persistence/models"
	"github.com/bella-carwash/bella-api/internal/pkg/apperr"
	"github.com/bella-carwash/bella-api/internal/pkg/config"
	"github.com/bella-carwash/bella-api/internal/pkg/logger"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDBConnection creates a database connection based on settings. GORM's
// query log is written to log.
func NewDBConnection(settings config.DatabaseSettings, log logger.Logger) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	cfg := gormConfig(log)
	switch settings.Type {
	case config.PostgresDbType:
		db, err = connectPostgres(settings, cfg)
	case config.SqliteDbType:
		db, err = connectSQLite(settings, cfg)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", settings.Type)
	}

	if err != nil {
		return nil, err
	}

	return db, nil
}

func gormConfig(log logger.Logger) *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         newGormLogger(log),
	}
}

// connectPostgres establishes PostgreSQL connection with optional database creation
func connectPostgres(settings config.DatabaseSettings, cfg *gorm.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(settings.DSN), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	if settings.DBName != "" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get raw DB connection: %w", err)
		}

		// Idempotent: the error is ignored when the database exists.
		_, _ = sqlDB.Exec(fmt.Sprintf("CREATE DATABASE %s", settings.DBName))

		if err := sqlDB.Close(); err != nil {
			return nil, fmt.Errorf("failed to close initial DB connection: %w", err)
		}

		dsn, err := withDatabase(settings.DSN, settings.DBName)
		if err != nil {
			return nil, err
		}
		db, err = gorm.Open(postgres.Open(dsn), cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database '%s': %w", settings.DBName, err)
		}
	}

	return db, nil
}

// withDatabase points dsn at dbName. It accepts both the URL form
// (postgres://host/db) and the keyword form (host=... dbname=...).
func withDatabase(dsn, dbName string) (string, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		u, err := url.Parse(dsn)
		if err != nil {
			return "", fmt.Errorf("invalid database url: %w", err)
		}
		u.Path = "/" + dbName
		u.RawPath = ""
		return u.String(), nil
	}
	return fmt.Sprintf("%s dbname=%s", dsn, dbName), nil
}

// connectSQLite establishes SQLite connection
func connectSQLite(settings config.DatabaseSettings, cfg *gorm.Config) (*gorm.DB, error) {
	dsn := settings.DSN
	if dsn == "" {
		dsn = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(dsn), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite: %w", err)
	}

	// An in-memory database lives as long as its single connection.
	if dsn == ":memory:" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get raw DB connection: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

// partialIndexes are constraints GORM struct tags cannot express.
// Both PostgreSQL and SQLite accept this syntax.
var partialIndexes = []string{
	// A user holds at most one active or past-due subscription.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_subscriptions_current_user
		ON subscriptions (user_id) WHERE status IN ('active', 'past_due')`,
}

// AutoMigrate creates or updates every table used by the API.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	for _, stmt := range partialIndexes {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	return nil
}

// CloseDB closes the database connection
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

// DropDatabase drops a PostgreSQL database (test cleanup utility)
func DropDatabase(adminDSN, dbName string) (err error) {
	db, err := gorm.Open(postgres.Open(adminDSN), &gorm.Config{Logger: gormlogger.Discard})
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer func() {
		err = errors.Join(err, CloseDB(db))
	}()

	if err := db.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS %s", dbName)).Error; err != nil {
		return fmt.Errorf("failed to drop database '%s': %w", dbName, err)
	}
	return nil
}

// translateError maps driver errors onto apperr sentinels.
func translateError(err error, action, entity string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s %w", entity, apperr.ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s already exists: %w", entity, apperr.ErrConflict)
	default:
		return fmt.Errorf("failed to %s %s: %w", action, entity, err)
	}
}

type statusCount struct {
	Status string
	Count  int64
}

// countByStatus groups rows of model by their status column.
func countByStatus(db *gorm.DB, model interface{}) (map[string]int64, error) {
	var rows []statusCount
	if err := db.Model(model).Select("status, count(*) as count").Group("status").Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func paginate(db *gorm.DB, limit, offset int) *gorm.DB {
	if limit > 0 {
		db = db.Limit(limit)
	}
	if offset > 0 {
		db = db.Offset(offset)
	}
	return db
}
