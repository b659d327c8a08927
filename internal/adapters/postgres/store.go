package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/5yazahamed/TalesOfBrowniesE-Commerce/internal/core"
)

// DocumentModel is the GORM model for one persisted document. One row
// per well-known key; the upsert in Put replaces the value wholesale,
// preserving last-write-wins between concurrent writers.
type DocumentModel struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Value     []byte    `gorm:"column:value;type:jsonb"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName sets the table name for DocumentModel.
func (DocumentModel) TableName() string {
	return "documents"
}

// Store implements core.DocumentStore using GORM with the pgx driver.
type Store struct {
	db *gorm.DB
}

// NewStore connects to Postgres and returns a document store.
func NewStore(dbURL string) (*Store, error) {
	// GORM with pgx driver (postgres driver uses pgx under the hood)
	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return &Store{db: db}, nil
}

// Migrate creates the documents table when it does not exist.
func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(&DocumentModel{}); err != nil {
		return fmt.Errorf("failed to migrate documents table: %w", err)
	}
	return nil
}

// Get retrieves a document.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var doc DocumentModel
	if err := s.db.WithContext(ctx).First(&doc, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, core.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get document %q: %w", key, err)
	}
	return doc.Value, nil
}

// Put overwrites a document.
func (s *Store) Put(ctx context.Context, key string, data []byte) error {
	doc := DocumentModel{Key: key, Value: data, UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&doc).Error
	if err != nil {
		return fmt.Errorf("failed to put document %q: %w", key, err)
	}
	return nil
}

// Delete removes a document.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Delete(&DocumentModel{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("failed to delete document %q: %w", key, err)
	}
	return nil
}
