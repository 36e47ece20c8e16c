package kvstore

import (
	"context"
	"errors"
	"time"

	"contractor_pro/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type kvEntry struct {
	Key       string `gorm:"column:storage_key;primaryKey;size:64"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// GormStore keeps storage keys as rows of a single table. SQLite is the
// on-device default; Postgres works with the same schema.
type GormStore struct {
	db    *gorm.DB
	table string
}

var _ interfaces.IKeyValueStore = (*GormStore)(nil)

// NewGormStore migrates the table and returns the store.
func NewGormStore(db *gorm.DB, table string) (*GormStore, error) {
	if table == "" {
		table = defaultKVTableName
	}
	if err := db.Table(table).AutoMigrate(&kvEntry{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db, table: table}, nil
}

func (s *GormStore) Get(ctx context.Context, key string) (string, bool, error) {
	var e kvEntry
	err := s.db.WithContext(ctx).Table(s.table).Where("storage_key = ?", key).Take(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return e.Value, true, nil
}

func (s *GormStore) Set(ctx context.Context, key, value string) error {
	e := kvEntry{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	return s.db.WithContext(ctx).Table(s.table).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "storage_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&e).Error
}

// Close releases the underlying connection pool.
func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
