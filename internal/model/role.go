package model

// Role is reference data provisioned ahead of time (see cmd/seed).
// The auth flows only ever attach existing roles by id.
type Role struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;size:50;not null"`
}
