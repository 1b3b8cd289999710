package services

import (
	"io"
	"time"

	"ledgerbook/internal/models"
	"ledgerbook/internal/pagination"
	"ledgerbook/internal/reports"
	"ledgerbook/internal/tax"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, name string, userType models.UserType, organizationName, organizationID string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	CreateCategory(userID, name string, categoryType models.CategoryType, color string) (*models.Category, error)
	SeedDefaultCategories(userID string) error
	GetUserCategories(userID string, categoryType *models.CategoryType, page pagination.PageRequest) (*pagination.PageResponse[models.Category], error)
	GetCategoryByID(userID, categoryID string) (*models.Category, error)
	UpdateCategory(userID, categoryID, name, color string) (*models.Category, error)
	DeleteCategory(userID, categoryID string) error
}

// TransactionInput holds the full set of writable transaction fields. It is
// used both for creation and for whole-record replacement on update.
type TransactionInput struct {
	CategoryID  *string
	Type        models.TransactionType
	Amount      int64
	Date        time.Time
	Account     string
	DocumentNo  string
	Description string
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate   *time.Time
	ToDate     *time.Time
	Type       *models.TransactionType
	CategoryID *string
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(userID string, input TransactionInput) (*models.Transaction, error)
	GetUserTransactions(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(userID, transactionID string) (*models.Transaction, error)
	ReplaceTransaction(userID, transactionID string, input TransactionInput) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID string) (*models.Transaction, error)
}

// SettingsInput holds the writable company tax settings fields.
type SettingsInput struct {
	VATRegistered      bool
	VATRate            float64
	IncomeTaxRate      float64
	EReceiptEnabled    bool
	EReceiptRegisterNo string
}

// SettingsServicer defines the contract for company tax settings.
type SettingsServicer interface {
	GetSettings(userID string) (*models.CompanySettings, error)
	UpsertSettings(userID string, input SettingsInput) (*models.CompanySettings, error)
	TaxSettings(userID string) (tax.Settings, error)
}

// ReportServicer derives report views over a user's ledger.
type ReportServicer interface {
	Summary(userID string, from, to time.Time) (*reports.Summary, error)
	ExportCSV(w io.Writer, userID string, from, to time.Time) error
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
