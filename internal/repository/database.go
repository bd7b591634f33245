package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver
	"go.uber.org/zap"

	"github.com/Okelahbegitu/fesnuk-api/internal/config"
)

// queryer is the slice of sqlx both *sqlx.DB and *sqlx.Conn provide, so the
// repositories run unchanged on either connection mode.
type queryer interface {
	sqlx.QueryerContext
	sqlx.ExecerContext
}

// Database is the process-wide handle to PostgreSQL. In pool mode queries run
// against a bounded connection pool that recreates dropped connections and
// blocks callers while saturated. In single mode one connection is acquired at
// startup and every query runs on it; after the connection is lost operations
// fail until the process restarts.
type Database struct {
	db     *sqlx.DB
	conn   *sqlx.Conn
	ext    queryer
	logger *zap.Logger
}

// NewPostgresDB establishes the connection to PostgreSQL according to the
// configured mode.
func NewPostgresDB(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Database, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.User,
		cfg.Database.Password, cfg.Database.Name, cfg.Database.SSLMode)

	db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	d := &Database{db: db, ext: db, logger: logger}

	switch cfg.Database.Mode {
	case config.DBModeSingle:
		db.SetMaxOpenConns(1)
		conn, err := db.Connx(ctx)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to acquire connection: %w", err)
		}
		d.conn = conn
		d.ext = conn
		logger.Info("Successfully connected to the database", zap.String("mode", config.DBModeSingle))
	default:
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxOpenConns)
		db.SetConnMaxLifetime(5 * time.Minute)
		logger.Info("Successfully connected to the database",
			zap.String("mode", config.DBModePool),
			zap.Int("max_open_conns", cfg.Database.MaxOpenConns))
	}

	return d, nil
}

// NewDatabase wraps an already established handle. Used by tests.
func NewDatabase(db *sqlx.DB, logger *zap.Logger) *Database {
	return &Database{db: db, ext: db, logger: logger}
}

func (d *Database) Ping(ctx context.Context) error {
	if d.conn != nil {
		return d.conn.PingContext(ctx)
	}
	return d.db.PingContext(ctx)
}

func (d *Database) Close() error {
	if d.conn != nil {
		_ = d.conn.Close()
	}
	return d.db.Close()
}
