package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "ledgerbook/internal/errors"
	"ledgerbook/internal/services"
)

// SettingsHandler handles company tax settings requests.
type SettingsHandler struct {
	settingsService services.SettingsServicer
	auditService    services.AuditServicer
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsService services.SettingsServicer, auditService services.AuditServicer) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService, auditService: auditService}
}

// UpdateSettingsRequest represents the request payload for replacing the
// user's company tax settings.
type UpdateSettingsRequest struct {
	VATRegistered      bool    `json:"vat_registered"`
	VATRate            float64 `json:"vat_rate" binding:"omitempty,gte=0,lte=100"`
	IncomeTaxRate      float64 `json:"income_tax_rate" binding:"omitempty,gte=0,lte=100"`
	EReceiptEnabled    bool    `json:"ereceipt_enabled"`
	EReceiptRegisterNo string  `json:"ereceipt_register_no" binding:"max=100"`
}

// GetSettings returns the user's company tax settings, or defaults when none
// are stored.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	settings, err := h.settingsService.GetSettings(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// UpdateSettings creates or replaces the user's company tax settings.
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	input := services.SettingsInput{
		VATRegistered:      req.VATRegistered,
		VATRate:            req.VATRate,
		IncomeTaxRate:      req.IncomeTaxRate,
		EReceiptEnabled:    req.EReceiptEnabled,
		EReceiptRegisterNo: req.EReceiptRegisterNo,
	}

	settings, err := h.settingsService.UpsertSettings(userID, input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_SETTINGS", "company_settings", settings.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"settings": settings})
}
