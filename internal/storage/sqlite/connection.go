package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"finance-tracker/config"
	"finance-tracker/internal/logger"
	"finance-tracker/internal/storage"
)

// SQLiteStorage представляет хранилище SQLite
type SQLiteStorage struct {
	DB              *sql.DB
	checkoutTimeout time.Duration
}

var _ storage.Store = (*SQLiteStorage)(nil)

// NewConnection создает новое соединение с SQLite
func NewConnection(cfg *config.Config) (*SQLiteStorage, error) {
	dbPath := cfg.DB.DBPath
	if dbPath == "" {
		dbPath = "./data/finance.db"
	}

	maxConns := cfg.DB.MaxOpenConns
	var dsn string
	if dbPath == ":memory:" {
		// Каждое соединение с :memory: видит свою базу
		maxConns = 1
		dsn = "file::memory:?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	} else {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		dsn = fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", dbPath)
	}
	if maxConns <= 0 {
		maxConns = 1
	}

	logger.Log.Info("Connecting to SQLite", zap.String("path", dbPath))

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Настройка пула соединений
	db.SetMaxOpenConns(maxConns)
	db.SetMaxIdleConns(maxConns)
	if dbPath != ":memory:" {
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	timeout := cfg.DB.CheckoutTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	s := &SQLiteStorage{DB: db, checkoutTimeout: timeout}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	logger.Log.Info("SQLite connection established")
	return s, nil
}

// Close закрывает соединение с БД
func (s *SQLiteStorage) Close() error {
	return s.DB.Close()
}

// checkout берет соединение из пула, ожидая не дольше checkoutTimeout
func (s *SQLiteStorage) checkout(ctx context.Context) (*sql.Conn, error) {
	cctx, cancel := context.WithTimeout(ctx, s.checkoutTimeout)
	defer cancel()

	conn, err := s.DB.Conn(cctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", storage.ErrConnUnavailable, err)
	}
	return conn, nil
}

// WithTx выполняет fn в транзакции на одном соединении
func (s *SQLiteStorage) WithTx(ctx context.Context, fn func(storage.Repository) error) error {
	conn, err := s.checkout(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return classifyError(fmt.Errorf("failed to begin transaction: %w", err))
	}

	if err := fn(&Queries{db: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Log.Error("Rollback failed", zap.Error(rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return classifyError(fmt.Errorf("failed to commit transaction: %w", err))
	}
	return nil
}

// WithConn выполняет fn на одном соединении без транзакции
func (s *SQLiteStorage) WithConn(ctx context.Context, fn func(storage.Repository) error) error {
	conn, err := s.checkout(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	return fn(&Queries{db: conn})
}
