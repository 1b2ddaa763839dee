package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// ProgressEntry is one stored key with its serialized value.
type ProgressEntry struct {
	Key       string `gorm:"primaryKey;size:255"`
	Value     string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ProgressEntry) TableName() string { return "progress_entries" }

// PostgresStorage persists values in a postgres table through gorm.
type PostgresStorage struct {
	DB *gorm.DB
}

// OpenPostgres connects with dsn and migrates the progress_entries table.
func OpenPostgres(dsn string) (*PostgresStorage, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return NewPostgresStorage(db)
}

// NewPostgresStorage wraps an existing gorm connection.
func NewPostgresStorage(db *gorm.DB) (*PostgresStorage, error) {
	if err := db.AutoMigrate(&ProgressEntry{}); err != nil {
		return nil, fmt.Errorf("migrate progress_entries: %w", err)
	}
	return &PostgresStorage{DB: db}, nil
}

func (p *PostgresStorage) Get(ctx context.Context, key string) (string, bool, error) {
	var entry ProgressEntry
	if err := p.DB.WithContext(ctx).Where("key = ?", key).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("query %s: %w", key, err)
	}
	return entry.Value, true, nil
}

func (p *PostgresStorage) Set(ctx context.Context, key, value string) error {
	entry := ProgressEntry{Key: key, Value: value}
	err := p.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func (p *PostgresStorage) Close() error {
	sqlDB, err := p.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
