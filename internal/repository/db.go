package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"habit-tracker/internal/model"
)

// liveQuery is re-evaluated after every successful commit, whichever store
// triggered it.
type liveQuery interface {
	refresh()
}

// DB owns the single SQLite session every store shares. All mutations go
// through Commit, so a write by one store re-evaluates the live queries of
// all of them exactly once.
type DB struct {
	gorm    *gorm.DB
	log     *zap.Logger
	queries []liveQuery
}

// NewDB opens a SQLite database and runs migrations.
func NewDB(dsn string, lg *zap.Logger) (*DB, error) {
	if dsn == "" {
		dsn = "habit_tracker.db"
	}

	if err := ensureDirForSQLite(dsn); err != nil {
		return nil, err
	}

	dbLogger := logger.New(
		zap.NewStdLog(lg),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: dbLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := db.AutoMigrate(&model.Category{}, &model.Tracker{}, &model.Record{}); err != nil {
		return nil, fmt.Errorf("migrate db: %w", err)
	}

	return &DB{gorm: db, log: lg}, nil
}

// register adds a live query to the commit cycle. Stores call this once at
// construction.
func (d *DB) register(q liveQuery) {
	d.queries = append(d.queries, q)
}

// Commit runs fn in a transaction and, on success, re-evaluates every
// registered live query. On failure gorm rolls the transaction back and the
// error is returned with nothing re-evaluated, so the caller's view and the
// database cannot diverge. DPanic makes a failed commit fatal in
// development builds and a logged error in production.
func (d *DB) Commit(fn func(tx *gorm.DB) error) error {
	if err := d.gorm.Transaction(fn); err != nil {
		d.log.DPanic("commit failed", zap.Error(err))
		return err
	}
	for _, q := range d.queries {
		q.refresh()
	}
	return nil
}

// Session returns the shared gorm handle for read-only queries.
func (d *DB) Session() *gorm.DB {
	return d.gorm
}

func (d *DB) Close() error {
	sqlDB, err := d.gorm.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// ensureDirForSQLite creates the parent dir for the SQLite file if needed.
func ensureDirForSQLite(dsn string) error {
	// Ignore DSNs with explicit mode=memory or network.
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		return nil
	}
	// Strip file: prefix if present.
	clean := strings.TrimPrefix(dsn, "file:")
	clean = strings.Split(clean, "?")[0]
	dir := filepath.Dir(clean)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db dir %q: %w", dir, err)
	}
	return nil
}
