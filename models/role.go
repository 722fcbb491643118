package models

import "github.com/google/uuid"

// Role represents an access role assigned to users
type Role struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name string    `gorm:"unique" json:"name"`
}

const (
	RoleAdmin      = "admin"
	RoleProduction = "production"
	RoleUser       = "user"
)
