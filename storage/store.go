// Package storage persists league records in a relational database and routes
// domain values to the matching table operation.
package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"moul.io/zapgorm2"
)

const memoryDSN = "file::memory:?_pragma=foreign_keys(1)"

// Options configures Open.
type Options struct {
	// DatabaseURL selects the backend. Empty opens a private in-memory
	// SQLite database, postgres:// and postgresql:// URLs open PostgreSQL,
	// anything else is treated as a SQLite file DSN.
	DatabaseURL string
	Logger      *zap.Logger
}

// Store owns the league tables. It holds exactly one database connection for
// the lifetime of the process, so calls are serialized at the connection.
type Store struct {
	db     *gorm.DB
	log    *zap.Logger
	driver string
}

// Open connects to the database, enables foreign keys and creates the schema.
func Open(ctx context.Context, opts Options) (*Store, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	driver, dialector := dialectorFor(opts.DatabaseURL)

	gormLog := zapgorm2.New(log.Named("gorm"))
	gormLog.IgnoreRecordNotFoundError = true
	gormLog.SlowThreshold = 200 * time.Millisecond

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormLog.LogMode(gormlogger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)
	sqlDB.SetConnMaxIdleTime(0)

	s := &Store{db: db, log: log, driver: driver}

	if driver == "sqlite" {
		if err := db.WithContext(ctx).Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("enable foreign keys: %w", err)
		}
	}

	if err := s.Migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}

	log.Info("storage ready", zap.String("driver", driver))
	return s, nil
}

func dialectorFor(databaseURL string) (string, gorm.Dialector) {
	url := strings.TrimSpace(databaseURL)
	switch {
	case url == "":
		return "sqlite", sqlite.Open(memoryDSN)
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return "postgres", postgres.Open(url)
	default:
		return "sqlite", sqlite.Open(url)
	}
}

// Migrate creates the player, team, membership and tournament tables.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(schema...); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// Close releases the connection. The in-memory database is discarded.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Driver reports the backend in use, "sqlite" or "postgres".
func (s *Store) Driver() string { return s.driver }

// Stats counts the rows of the league tables.
type Stats struct {
	Players     int64 `json:"players"`
	Teams       int64 `json:"teams"`
	Memberships int64 `json:"memberships"`
}

// Stats returns the current row counts.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	db := s.db.WithContext(ctx)
	if err := db.Model(&playerRow{}).Count(&st.Players).Error; err != nil {
		return Stats{}, fmt.Errorf("count players: %w", err)
	}
	if err := db.Model(&teamRow{}).Count(&st.Teams).Error; err != nil {
		return Stats{}, fmt.Errorf("count teams: %w", err)
	}
	if err := db.Model(&membershipRow{}).Count(&st.Memberships).Error; err != nil {
		return Stats{}, fmt.Errorf("count memberships: %w", err)
	}
	return st, nil
}
