package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents an account that can sign in to the POS backend.
// Authorization is intentionally flat: two boolean flags instead of a
// role/permission system. Admins bypass the approval check; everyone
// else must be approved by an admin before accessing protected routes.
type User struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name       string         `gorm:"size:255;not null" json:"name"`
	Email      string         `gorm:"size:255;unique;not null" json:"email"`
	Password   string         `gorm:"size:255" json:"-"`
	Provider   string         `gorm:"size:50;default:'local'" json:"provider"`
	ProviderID *string        `gorm:"size:255" json:"-"`
	Photo      *string        `gorm:"size:255" json:"photo,omitempty"`
	IsAdmin    bool           `gorm:"default:false" json:"is_admin"`
	IsApproved bool           `gorm:"default:false" json:"is_approved"`
	ApprovedAt *time.Time     `json:"approved_at,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Stores   []Store   `gorm:"foreignKey:OwnerID" json:"-"`
	Receipts []Receipt `gorm:"foreignKey:OwnerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// CanAccess reports whether the user may use protected endpoints.
// Admins always can; regular users need approval.
func (u *User) CanAccess() bool {
	return u.IsAdmin || u.IsApproved
}
