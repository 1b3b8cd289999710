package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "ledgerbook/internal/errors"
	"ledgerbook/internal/services"
)

// ReportHandler handles report requests.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// parseRange reads the required from/to query parameters as inclusive
// calendar dates.
func parseRange(c *gin.Context) (time.Time, time.Time, error) {
	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" || toStr == "" {
		return time.Time{}, time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "from and to query parameters are required")
	}

	from, err := parseDate(fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid from date, use YYYY-MM-DD")
	}

	to, err := parseDate(toStr)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid to date, use YYYY-MM-DD")
	}

	return from, to, nil
}

// GetSummary returns totals, category breakdowns, and the monthly trend for
// the inclusive date range.
func (h *ReportHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	from, to, err := parseRange(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.reportService.Summary(userID, from, to)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// ExportCSV streams the date range's transactions as a CSV attachment.
func (h *ReportHandler) ExportCSV(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	from, to, err := parseRange(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := h.reportService.ExportCSV(&buf, userID, from, to); err != nil {
		respondWithError(c, err)
		return
	}

	filename := fmt.Sprintf("transactions_%s_%s.csv", from.Format("2006-01-02"), to.Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
