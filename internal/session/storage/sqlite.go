package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/spec-kit/learnhub-portal/internal/domain"
)

type credentialRecord struct {
	Role      string `gorm:"primaryKey;column:role"`
	Token     string `gorm:"column:token"`
	UpdatedAt time.Time
}

func (credentialRecord) TableName() string { return "credentials" }

type sqliteStorage struct {
	db *gorm.DB
}

// NewSQLite opens (or creates) the credential database at path. This is the
// default driver: tokens survive a portal restart the way browser storage
// survives a page reload.
func NewSQLite(path string) (Storage, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite storage requires a path")
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.AutoMigrate(&credentialRecord{}); err != nil {
		return nil, fmt.Errorf("migrate credentials: %w", err)
	}
	return &sqliteStorage{db: db}, nil
}

func (s *sqliteStorage) Load(ctx context.Context, role domain.Role) (string, error) {
	var record credentialRecord
	err := s.db.WithContext(ctx).First(&record, "role = ?", string(role)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return record.Token, nil
}

func (s *sqliteStorage) Save(ctx context.Context, role domain.Role, token string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("role = ?", string(role)).Delete(&credentialRecord{}).Error; err != nil {
			return err
		}
		return tx.Create(&credentialRecord{Role: string(role), Token: token}).Error
	})
}

func (s *sqliteStorage) Delete(ctx context.Context, role domain.Role) error {
	return s.db.WithContext(ctx).Where("role = ?", string(role)).Delete(&credentialRecord{}).Error
}

func (s *sqliteStorage) Close(context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
