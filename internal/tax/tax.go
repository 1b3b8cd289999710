// Package tax computes VAT and income tax breakdowns from per-user company
// settings. Amounts are VAT-inclusive cents; the VAT component is extracted,
// not added on top.
package tax

import (
	"math"

	"ledgerbook/internal/models"
)

// Settings is the tax configuration used for a calculation. The zero value
// means VAT-exempt; use Defaults for users without stored settings.
type Settings struct {
	VATRegistered bool
	VATRate       float64
	IncomeTaxRate float64
}

// Defaults returns the settings applied when a user has no company settings row.
func Defaults() Settings {
	return Settings{
		VATRegistered: false,
		VATRate:       models.DefaultVATRate,
		IncomeTaxRate: models.DefaultIncomeTaxRate,
	}
}

// FromModel converts a stored settings row into calculation settings.
func FromModel(cs *models.CompanySettings) Settings {
	if cs == nil {
		return Defaults()
	}
	return Settings{
		VATRegistered: cs.VATRegistered,
		VATRate:       cs.VATRate,
		IncomeTaxRate: cs.IncomeTaxRate,
	}
}

// Breakdown is the result of a tax calculation. All amounts are cents,
// each rounded independently at the end of its computation.
type Breakdown struct {
	Amount           int64   `json:"amount"`
	VATRate          float64 `json:"vat_rate"`
	VATAmount        int64   `json:"vat_amount"`
	AmountWithoutVAT int64   `json:"amount_without_vat"`
	IncomeTaxRate    float64 `json:"income_tax_rate,omitempty"`
	IncomeTaxAmount  int64   `json:"income_tax_amount,omitempty"`
}

// Calculate computes the VAT and income tax components of a VAT-inclusive
// amount. Income tax applies to income transactions only, on the VAT-exclusive
// amount. The computation is stateless and side-effect free.
func Calculate(amount int64, txType models.TransactionType, s Settings) Breakdown {
	b := Breakdown{Amount: amount}

	if s.VATRegistered {
		b.VATRate = s.VATRate
		// Extract the VAT component from a tax-inclusive price:
		// amount * rate / (100 + rate), not amount * rate / 100.
		b.VATAmount = roundHalfUp(float64(amount) * s.VATRate / (100 + s.VATRate))
	}
	b.AmountWithoutVAT = amount - b.VATAmount

	if txType == models.TransactionTypeIncome {
		b.IncomeTaxRate = s.IncomeTaxRate
		b.IncomeTaxAmount = roundHalfUp(float64(b.AmountWithoutVAT) * s.IncomeTaxRate / 100)
	}

	return b
}

func roundHalfUp(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}
