package repository

import (
	"context"
	"errors"

	"github.com/shopbook/shopbook-api/internal/domain/entity"
	domainRepo "github.com/shopbook/shopbook-api/internal/domain/repository"
	"gorm.io/gorm"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new company settings repository
func NewSettingsRepository(db *gorm.DB) domainRepo.SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(ctx context.Context) (*entity.CompanySettings, error) {
	var settings entity.CompanySettings
	err := conn(ctx, r.db).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &settings, err
}

func (r *settingsRepository) Save(ctx context.Context, settings *entity.CompanySettings) error {
	return conn(ctx, r.db).Save(settings).Error
}
