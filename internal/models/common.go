// internal/models/common.go
package models

import (
	"time"
)

// Base model with common fields. Identifiers are store-assigned
// auto-increment integers; callers treat them as opaque.
type BaseModel struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Enums
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)
