package model

import "time"

// AuditLog mirrors the platform schema; nothing in the auth flows writes to
// it yet.
type AuditLog struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    *uint     `json:"user_id" gorm:"index"`
	Action    string    `json:"action" gorm:"size:255;not null"`
	CreatedAt time.Time `json:"created_at"`
}
