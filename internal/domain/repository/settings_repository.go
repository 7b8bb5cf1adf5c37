package repository

import (
	"context"

	"github.com/shopbook/shopbook-api/internal/domain/entity"
)

// SettingsRepository defines the interface for company settings operations
type SettingsRepository interface {
	// Get returns the settings row, nil when none exists yet
	Get(ctx context.Context) (*entity.CompanySettings, error)
	Save(ctx context.Context, settings *entity.CompanySettings) error
}

// UserRepository defines the interface for owner account operations
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Count(ctx context.Context) (int64, error)
}
