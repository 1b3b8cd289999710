package models

import "time"

// UserType distinguishes individual bookkeepers from organization accounts.
type UserType string

const (
	UserTypeIndividual   UserType = "individual"
	UserTypeOrganization UserType = "organization"
)

// User represents the user model in the database
type User struct {
	Base
	Email            string     `gorm:"uniqueIndex;not null" json:"email"`
	Password         string     `gorm:"not null" json:"-"`
	Name             string     `json:"name"`
	UserType         UserType   `gorm:"default:individual" json:"user_type"`
	OrganizationName string     `json:"organization_name,omitempty"`
	OrganizationID   string     `json:"organization_id,omitempty"`
	IsActive         bool       `gorm:"default:true" json:"is_active"`
	LastLoginAt      *time.Time `json:"last_login_at,omitempty"`

	Categories   []Category       `gorm:"foreignKey:UserID" json:"categories,omitempty"`
	Transactions []Transaction    `gorm:"foreignKey:UserID" json:"transactions,omitempty"`
	Settings     *CompanySettings `gorm:"foreignKey:UserID" json:"settings,omitempty"`
}
