package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "ledgerbook/internal/errors"
	"ledgerbook/internal/models"
	"ledgerbook/internal/tax"
)

// settingsService handles company tax settings.
type settingsService struct {
	db *gorm.DB
}

// NewSettingsService creates a new SettingsServicer.
func NewSettingsService(db *gorm.DB) SettingsServicer {
	return &settingsService{db: db}
}

// GetSettings returns the user's company settings. If no row exists, defaults
// are returned without persisting anything: VAT-exempt, default tax rates.
func (s *settingsService) GetSettings(userID string) (*models.CompanySettings, error) {
	var settings models.CompanySettings
	err := s.db.Where("user_id = ?", userID).First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.CompanySettings{
				UserID:        userID,
				VATRegistered: false,
				VATRate:       models.DefaultVATRate,
				IncomeTaxRate: models.DefaultIncomeTaxRate,
			}, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &settings, nil
}

// UpsertSettings creates or fully replaces the user's company settings.
func (s *settingsService) UpsertSettings(userID string, input SettingsInput) (*models.CompanySettings, error) {
	var settings models.CompanySettings
	err := s.db.Where("user_id = ?", userID).First(&settings).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.CompanySettings{UserID: userID}
	}

	settings.VATRegistered = input.VATRegistered
	settings.VATRate = input.VATRate
	settings.IncomeTaxRate = input.IncomeTaxRate
	settings.EReceiptEnabled = input.EReceiptEnabled
	settings.EReceiptRegisterNo = input.EReceiptRegisterNo

	if err := s.db.Save(&settings).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &settings, nil
}

// TaxSettings resolves the calculation settings for a user, applying
// defaults when no settings row exists.
func (s *settingsService) TaxSettings(userID string) (tax.Settings, error) {
	settings, err := s.GetSettings(userID)
	if err != nil {
		return tax.Settings{}, err
	}
	return tax.FromModel(settings), nil
}
