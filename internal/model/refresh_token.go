package model

import "time"

// RefreshToken is part of the schema but not used by the current auth flows;
// tokens are stateless and logout is client-side.
type RefreshToken struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	UserID    *uint      `json:"user_id" gorm:"index"`
	Token     string     `json:"-" gorm:"size:512;not null"`
	ExpiresAt time.Time  `json:"expires_at"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
}
