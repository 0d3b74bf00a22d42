// Package storage persists at most one bearer token per role. It is the
// portal's analog of durable browser storage: two keys, last write wins.
package storage

import (
	"context"

	"github.com/spec-kit/learnhub-portal/internal/domain"
)

// Storage defines the behaviour required by the session stores.
// Load returns an empty string when no token is stored for the role.
type Storage interface {
	Load(ctx context.Context, role domain.Role) (string, error)
	Save(ctx context.Context, role domain.Role, token string) error
	Delete(ctx context.Context, role domain.Role) error
	Close(ctx context.Context) error
}

// Driver identifiers supported by the factory.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
)
