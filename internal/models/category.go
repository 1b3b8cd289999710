package models

// CategoryType represents the type of category
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Category represents a transaction category
type Category struct {
	Base
	UserID string       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name   string       `gorm:"not null" json:"name"`
	Type   CategoryType `gorm:"not null" json:"type"`
	Color  string       `json:"color"`

	Transactions []Transaction `gorm:"foreignKey:CategoryID" json:"transactions,omitempty"`
}

// DefaultCategories returns the category set seeded for every new user.
func DefaultCategories(userID string) []Category {
	return []Category{
		{UserID: userID, Name: "Sales", Type: CategoryTypeIncome, Color: "#10B981"},
		{UserID: userID, Name: "Services", Type: CategoryTypeIncome, Color: "#3B82F6"},
		{UserID: userID, Name: "Other Income", Type: CategoryTypeIncome, Color: "#8B5CF6"},
		{UserID: userID, Name: "Rent", Type: CategoryTypeExpense, Color: "#EF4444"},
		{UserID: userID, Name: "Salaries", Type: CategoryTypeExpense, Color: "#F59E0B"},
		{UserID: userID, Name: "Supplies", Type: CategoryTypeExpense, Color: "#6366F1"},
		{UserID: userID, Name: "Utilities", Type: CategoryTypeExpense, Color: "#14B8A6"},
		{UserID: userID, Name: "Other Expense", Type: CategoryTypeExpense, Color: "#6B7280"},
	}
}
