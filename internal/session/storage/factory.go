package storage

import (
	"fmt"

	"github.com/spec-kit/learnhub-portal/internal/config"
)

// New creates a credential storage based on the provided configuration.
func New(cfg config.StorageConfig) (Storage, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = DriverSQLite
	}

	switch driver {
	case DriverMemory:
		return NewMemory(), nil
	case DriverSQLite:
		return NewSQLite(cfg.SQLitePath)
	case DriverRedis:
		return NewRedis(cfg.Redis)
	default:
		return nil, fmt.Errorf("unsupported credential storage driver: %s", driver)
	}
}
