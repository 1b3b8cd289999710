package models

// Default tax rates applied when a user has no stored settings.
const (
	DefaultVATRate       = 10.0
	DefaultIncomeTaxRate = 10.0
)

// CompanySettings holds per-user tax configuration. At most one row per user;
// absence implies VAT-exempt with default income tax rate.
type CompanySettings struct {
	Base
	UserID             string  `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	VATRegistered      bool    `gorm:"default:false" json:"vat_registered"`
	VATRate            float64 `gorm:"default:10" json:"vat_rate"`
	IncomeTaxRate      float64 `gorm:"default:10" json:"income_tax_rate"`
	EReceiptEnabled    bool    `gorm:"default:false" json:"ereceipt_enabled"`
	EReceiptRegisterNo string  `json:"ereceipt_register_no,omitempty"`
}
