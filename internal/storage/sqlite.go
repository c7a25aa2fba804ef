package storage

import (
	"context"
	"errors"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Record is one persisted key-value row
type Record struct {
	Key       string `gorm:"primarykey"`
	Value     string
	UpdatedAt time.Time `gorm:"index"`
}

// SQLiteGateway stores records in a SQLite database file
type SQLiteGateway struct {
	db *gorm.DB
}

// NewSQLiteGateway opens (creating if needed) the database at dbFilePath and
// migrates the records table. Pass ":memory:" for an ephemeral database.
func NewSQLiteGateway(dbFilePath string) (*SQLiteGateway, error) {
	// Silent logger so "record not found" lookups don't print
	db, err := gorm.Open(sqlite.Open(dbFilePath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, err
	}

	return &SQLiteGateway{db: db}, nil
}

// Get reads the value stored under key
func (g *SQLiteGateway) Get(ctx context.Context, key string) (string, bool, error) {
	var record Record
	result := g.db.WithContext(ctx).Where("key = ?", key).First(&record)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if result.Error != nil {
		return "", false, result.Error
	}
	return record.Value, true, nil
}

// Set stores value under key, overwriting any previous value
func (g *SQLiteGateway) Set(ctx context.Context, key, value string) error {
	record := Record{Key: key, Value: value}
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&record).Error
}

// Close closes the database connection. This should be called when the
// gateway is no longer needed, especially in tests to allow cleanup of
// temporary database files on Windows.
func (g *SQLiteGateway) Close() error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
