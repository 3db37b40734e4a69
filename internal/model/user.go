package model

import "time"

// DefaultRoleID is the pre-provisioned role every new user is attached to.
const DefaultRoleID uint = 1

// User represents an authenticated user of the rental platform.
//
// IsActive is a pointer because legacy rows carry NULL, which the lookup
// treats as active. Email uniqueness is enforced by the index; MySQL's
// default collation makes it case-insensitive.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	IsActive     *bool     `json:"is_active" gorm:"default:true;index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Roles         []Role         `json:"roles,omitempty" gorm:"many2many:user_roles"`
	RefreshTokens []RefreshToken `json:"-" gorm:"foreignKey:UserID"`
	AuditLogs     []AuditLog     `json:"-" gorm:"foreignKey:UserID"`
}
