package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "ledgerbook/internal/errors"
	"ledgerbook/internal/models"
	"ledgerbook/internal/services"
	"ledgerbook/internal/tax"
)

// TaxHandler handles tax calculation requests.
type TaxHandler struct {
	settingsService services.SettingsServicer
}

// NewTaxHandler creates a new TaxHandler.
func NewTaxHandler(settingsService services.SettingsServicer) *TaxHandler {
	return &TaxHandler{settingsService: settingsService}
}

// CalculateTaxRequest represents the request payload for a tax calculation.
// Amount is VAT-inclusive, in cents.
type CalculateTaxRequest struct {
	Amount int64                  `json:"amount" binding:"required,gt=0"`
	Type   models.TransactionType `json:"type" binding:"required,transaction_type"`
}

// Calculate computes the VAT and income tax breakdown for an amount using
// the authenticated user's company settings.
func (h *TaxHandler) Calculate(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CalculateTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	settings, err := h.settingsService.TaxSettings(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	breakdown := tax.Calculate(req.Amount, req.Type, settings)

	c.JSON(http.StatusOK, gin.H{"breakdown": breakdown})
}
