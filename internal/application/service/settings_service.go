package service

import (
	"context"

	"github.com/shopbook/shopbook-api/internal/domain/entity"
	"github.com/shopbook/shopbook-api/internal/domain/repository"
)

// SettingsService handles the company settings singleton
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings returns the company settings, creating the row with
// defaults on first read.
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.CompanySettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &entity.CompanySettings{
			CompanyName:    "My Shop",
			Currency:       "NGN",
			Timezone:       "Africa/Lagos",
			LowStockAlerts: true,
		}
		if err := s.settingsRepo.Save(ctx, settings); err != nil {
			return nil, err
		}
	}
	return settings, nil
}

// UpdateSettingsInput represents the settings update input. Nil fields
// are left unchanged.
type UpdateSettingsInput struct {
	CompanyName    *string
	CompanyDetails *string
	CompanyImage   *string
	Currency       *string
	Timezone       *string
	LowStockAlerts *bool
}

// UpdateSettings updates the company settings
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.CompanySettings, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if input.CompanyName != nil && *input.CompanyName != "" {
		settings.CompanyName = *input.CompanyName
	}
	if input.CompanyDetails != nil {
		settings.CompanyDetails = *input.CompanyDetails
	}
	if input.CompanyImage != nil {
		settings.CompanyImage = input.CompanyImage
	}
	if input.Currency != nil && *input.Currency != "" {
		settings.Currency = *input.Currency
	}
	if input.Timezone != nil && *input.Timezone != "" {
		settings.Timezone = *input.Timezone
	}
	if input.LowStockAlerts != nil {
		settings.LowStockAlerts = *input.LowStockAlerts
	}

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
