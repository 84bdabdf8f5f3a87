package askpod

import (
	"context"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var _ Storage = &SQLiteStorage{}

// SQLiteStorage implements the Storage interface using SQLite.
// It provides functionality to store and retrieve run transcripts.
type SQLiteStorage struct {
	db *gorm.DB
}

// NewSQLiteStorage creates a new SQLiteStorage instance with the provided
// database file path. It initializes the schema if it doesn't exist.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(&RunRecord{}); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &SQLiteStorage{db: db}, nil
}

// SaveRun stores the transcript of a completed run.
func (s *SQLiteStorage) SaveRun(ctx context.Context, run *RunRecord) error {
	if err := s.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}
	return nil
}

// Runs retrieves stored run transcripts, newest first.
func (s *SQLiteStorage) Runs(ctx context.Context, limit, offset int) ([]RunRecord, error) {
	var runs []RunRecord
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	return runs, nil
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
