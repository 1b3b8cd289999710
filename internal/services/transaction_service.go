package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "ledgerbook/internal/errors"
	"ledgerbook/internal/models"
	"ledgerbook/internal/pagination"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db              *gorm.DB
	categoryService CategoryServicer
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, categoryService CategoryServicer) TransactionServicer {
	return &transactionService{
		db:              db,
		categoryService: categoryService,
	}
}

// validateInput checks the invariants shared by create and replace.
func (s *transactionService) validateInput(userID string, input TransactionInput) error {
	if input.Amount <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}

	switch input.Type {
	case models.TransactionTypeIncome, models.TransactionTypeExpense:
	default:
		return apperrors.ErrInvalidTransactionType
	}

	if input.Date.IsZero() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "date is required")
	}

	// A referenced category must exist and belong to the same user.
	if input.CategoryID != nil {
		if _, err := s.categoryService.GetCategoryByID(userID, *input.CategoryID); err != nil {
			return err
		}
	}

	return nil
}

// CreateTransaction creates a new transaction for a user.
func (s *transactionService) CreateTransaction(userID string, input TransactionInput) (*models.Transaction, error) {
	if err := s.validateInput(userID, input); err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		UserID:      userID,
		CategoryID:  input.CategoryID,
		Type:        input.Type,
		Amount:      input.Amount,
		Date:        input.Date,
		Account:     input.Account,
		DocumentNo:  input.DocumentNo,
		Description: input.Description,
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.GetTransactionByID(userID, transaction.ID)
}

// GetUserTransactions retrieves a paginated, filtered list of the user's
// transactions with their categories, newest date first. Same-date rows come
// back in reverse insertion order.
func (s *transactionService) GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID)
	base = applyTransactionFilters(base, filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Scopes(pagination.Paginate(page)).
		Preload("Category").
		Order("date DESC, created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

func applyTransactionFilters(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.FromDate != nil {
		q = q.Where("date >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("date <= ?", *f.ToDate)
	}
	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	return q
}

// GetTransactionByID retrieves a transaction with its category for a specific user.
func (s *transactionService) GetTransactionByID(userID, transactionID string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Preload("Category").
		Where("id = ? AND user_id = ?", transactionID, userID).
		First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// ReplaceTransaction replaces every writable field of an existing transaction.
// This is a whole-record replace, not a patch: omitted optional fields are
// cleared, including the category reference.
func (s *transactionService) ReplaceTransaction(userID, transactionID string, input TransactionInput) (*models.Transaction, error) {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return nil, err
	}

	if err := s.validateInput(userID, input); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"category_id": input.CategoryID,
		"type":        input.Type,
		"amount":      input.Amount,
		"date":        input.Date,
		"account":     input.Account,
		"document_no": input.DocumentNo,
		"description": input.Description,
	}

	if err := s.db.Model(transaction).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.GetTransactionByID(userID, transactionID)
}

// DeleteTransaction deletes a transaction and returns its snapshot.
// A second delete of the same ID reports not found, never silent success.
func (s *transactionService) DeleteTransaction(userID, transactionID string) (*models.Transaction, error) {
	transaction, err := s.GetTransactionByID(userID, transactionID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Delete(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return transaction, nil
}
