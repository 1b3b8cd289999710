package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"ledgerbook/internal/models"
	"ledgerbook/internal/services"
)

func newSettingsRouter(service services.SettingsServicer) (*gin.Engine, *mockAuditService) {
	audit := &mockAuditService{}
	handler := NewSettingsHandler(service, audit)
	router := gin.New()
	router.Use(injectUserID("user-1"))
	router.GET("/settings/tax", handler.GetSettings)
	router.PUT("/settings/tax", handler.UpdateSettings)
	return router, audit
}

func TestGetSettingsHandler(t *testing.T) {
	service := &mockSettingsService{
		GetSettingsFn: func(userID string) (*models.CompanySettings, error) {
			return &models.CompanySettings{
				UserID:        userID,
				VATRegistered: false,
				VATRate:       models.DefaultVATRate,
				IncomeTaxRate: models.DefaultIncomeTaxRate,
			}, nil
		},
	}
	router, _ := newSettingsRouter(service)

	w := doRequest(router, http.MethodGet, "/settings/tax", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Settings models.CompanySettings `json:"settings"`
	}
	parseJSON(t, w, &resp)
	if resp.Settings.VATRegistered || resp.Settings.VATRate != models.DefaultVATRate {
		t.Errorf("unexpected settings: %+v", resp.Settings)
	}
}

func TestUpdateSettingsHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotInput services.SettingsInput
		service := &mockSettingsService{
			UpsertSettingsFn: func(userID string, input services.SettingsInput) (*models.CompanySettings, error) {
				gotInput = input
				return &models.CompanySettings{
					Base:          models.Base{ID: "settings-1"},
					UserID:        userID,
					VATRegistered: input.VATRegistered,
					VATRate:       input.VATRate,
					IncomeTaxRate: input.IncomeTaxRate,
				}, nil
			},
		}
		router, audit := newSettingsRouter(service)

		w := doRequest(router, http.MethodPut, "/settings/tax", gin.H{
			"vat_registered":  true,
			"vat_rate":        18,
			"income_tax_rate": 15,
		})

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (body: %s)", w.Code, w.Body.String())
		}
		if !gotInput.VATRegistered || gotInput.VATRate != 18 || gotInput.IncomeTaxRate != 15 {
			t.Errorf("unexpected input: %+v", gotInput)
		}
		if len(audit.calls) != 1 || audit.calls[0] != "UPDATE_SETTINGS" {
			t.Errorf("expected audit entry, got %v", audit.calls)
		}
	})

	t.Run("rejects_out_of_range_rates", func(t *testing.T) {
		router, _ := newSettingsRouter(&mockSettingsService{})

		w := doRequest(router, http.MethodPut, "/settings/tax", gin.H{
			"vat_registered": true,
			"vat_rate":       150,
		})
		assertErrorCode(t, w, http.StatusBadRequest, "INVALID_INPUT")
	})
}
