package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bella-carwash/bella-api/internal/pkg/logger"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// gormLogger sends GORM's query log to the application logger.
type gormLogger struct {
	log   logger.Logger
	level gormlogger.LogLevel
	slow  time.Duration
}

func newGormLogger(log logger.Logger) gormlogger.Interface {
	return &gormLogger{
		log:   log.With("component", "gorm"),
		level: gormlogger.Warn,
		slow:  slowQueryThreshold,
	}
}

func (l *gormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	child := *l
	child.level = level
	return &child
}

func (l *gormLogger) Info(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Info {
		l.log.Info(fmt.Sprintf(msg, args...))
	}
}

func (l *gormLogger) Warn(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Warn {
		l.log.Warn(fmt.Sprintf(msg, args...))
	}
}

func (l *gormLogger) Error(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Error {
		l.log.Error(fmt.Sprintf(msg, args...))
	}
}

// Trace reports failed and slow statements. Missing rows and duplicate keys
// are translated into API errors by the repositories and are not logged here.
func (l *gormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && l.level >= gormlogger.Error &&
		!errors.Is(err, gorm.ErrRecordNotFound) && !errors.Is(err, gorm.ErrDuplicatedKey):
		sql, rows := fc()
		l.log.Error("Query failed after ", elapsed, " (rows ", rows, "): ", err, ": ", sql)
	case elapsed > l.slow && l.level >= gormlogger.Warn:
		sql, rows := fc()
		l.log.Warn("Slow query took ", elapsed, " (rows ", rows, "): ", sql)
	case l.level >= gormlogger.Info:
		sql, rows := fc()
		l.log.Debug("Query took ", elapsed, " (rows ", rows, "): ", sql)
	}
}
