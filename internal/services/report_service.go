package services

import (
	"io"
	"time"

	"gorm.io/gorm"

	apperrors "ledgerbook/internal/errors"
	"ledgerbook/internal/models"
	"ledgerbook/internal/reports"
)

// reportService derives report views over the ledger store.
type reportService struct {
	db *gorm.DB
}

// NewReportService creates a new ReportServicer.
func NewReportService(db *gorm.DB) ReportServicer {
	return &reportService{db: db}
}

// rangeTransactions loads the user's transactions for [from, to] with their
// categories, oldest first.
func (s *reportService) rangeTransactions(userID string, from, to time.Time) ([]models.Transaction, error) {
	if from.After(to) {
		return nil, apperrors.ErrInvalidDateRange
	}

	var transactions []models.Transaction
	if err := s.db.Preload("Category").
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date ASC, created_at ASC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// Summary computes totals, category breakdowns, and the monthly trend for the
// inclusive date range.
func (s *reportService) Summary(userID string, from, to time.Time) (*reports.Summary, error) {
	transactions, err := s.rangeTransactions(userID, from, to)
	if err != nil {
		return nil, err
	}

	summary := reports.Summarize(transactions, from, to)
	return &summary, nil
}

// ExportCSV streams the user's transactions in the range to w as CSV.
func (s *reportService) ExportCSV(w io.Writer, userID string, from, to time.Time) error {
	transactions, err := s.rangeTransactions(userID, from, to)
	if err != nil {
		return err
	}

	if err := reports.WriteCSV(w, transactions, from, to); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
