package handlers

import (
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "ledgerbook/internal/errors"
	"ledgerbook/internal/reports"
	"ledgerbook/internal/services"
)

func newReportRouter(service services.ReportServicer) *gin.Engine {
	handler := NewReportHandler(service)
	router := gin.New()
	router.Use(injectUserID("user-1"))
	router.GET("/reports/summary", handler.GetSummary)
	router.GET("/reports/export", handler.ExportCSV)
	return router
}

func TestGetSummaryHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		service := &mockReportService{
			SummaryFn: func(userID string, from, to time.Time) (*reports.Summary, error) {
				if !from.Equal(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)) {
					t.Errorf("unexpected from date %v", from)
				}
				return &reports.Summary{TotalIncome: 10000, TotalExpenses: 4000, NetBalance: 6000}, nil
			},
		}
		router := newReportRouter(service)

		w := doRequest(router, http.MethodGet, "/reports/summary?from=2024-01-01&to=2024-01-31", nil)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (body: %s)", w.Code, w.Body.String())
		}
		var resp struct {
			Summary reports.Summary `json:"summary"`
		}
		parseJSON(t, w, &resp)
		if resp.Summary.NetBalance != 6000 {
			t.Errorf("unexpected summary: %+v", resp.Summary)
		}
	})

	t.Run("requires_range_parameters", func(t *testing.T) {
		router := newReportRouter(&mockReportService{})

		w := doRequest(router, http.MethodGet, "/reports/summary?from=2024-01-01", nil)
		assertErrorCode(t, w, http.StatusBadRequest, "INVALID_INPUT")

		w = doRequest(router, http.MethodGet, "/reports/summary", nil)
		assertErrorCode(t, w, http.StatusBadRequest, "INVALID_INPUT")
	})

	t.Run("inverted_range_passes_through", func(t *testing.T) {
		service := &mockReportService{
			SummaryFn: func(userID string, from, to time.Time) (*reports.Summary, error) {
				return nil, apperrors.ErrInvalidDateRange
			},
		}
		router := newReportRouter(service)

		w := doRequest(router, http.MethodGet, "/reports/summary?from=2024-02-01&to=2024-01-01", nil)
		assertErrorCode(t, w, http.StatusBadRequest, "INVALID_DATE_RANGE")
	})
}

func TestExportCSVHandler(t *testing.T) {
	service := &mockReportService{
		ExportCSVFn: func(w io.Writer, userID string, from, to time.Time) error {
			_, err := w.Write([]byte("date,type,amount\n2024-01-10,income,100.00\n"))
			return err
		},
	}
	router := newReportRouter(service)

	w := doRequest(router, http.MethodGet, "/reports/export?from=2024-01-01&to=2024-01-31", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("expected text/csv content type, got %s", ct)
	}
	disposition := w.Header().Get("Content-Disposition")
	if !strings.Contains(disposition, "attachment") || !strings.Contains(disposition, "transactions_2024-01-01_2024-01-31.csv") {
		t.Errorf("unexpected content disposition: %s", disposition)
	}
	if !strings.Contains(w.Body.String(), "2024-01-10,income,100.00") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}
