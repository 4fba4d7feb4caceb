package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleClient = "client"
	RoleAdmin  = "admin"
)

// Client type mirrors the registration form: individual (PF) or company (PJ).
const (
	ClientTypePF = "PF"
	ClientTypePJ = "PJ"
)

type User struct {
	ID         string     `gorm:"primaryKey;type:uuid" json:"id"`
	Name       string     `gorm:"not null" json:"name"`
	Email      string     `gorm:"uniqueIndex;not null" json:"email"`
	Password   string     `gorm:"column:password_hash;not null" json:"-"` // Not show in JSON
	Document   string     `gorm:"uniqueIndex;not null" json:"document"`   // CPF or CNPJ
	Phone      string     `json:"phone"`
	ClientType string     `gorm:"type:varchar(2);default:'PF'" json:"client_type"`
	Role       string     `gorm:"default:'client';not null" json:"role"` // only 2 roles: "client", "admin"
	Active     bool       `gorm:"default:true" json:"active"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	LastLogin  *time.Time `json:"last_login,omitempty"`
}

// BeforeCreate hook to set UUID before creating a User
func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	// If the ID is not already set, generate a new one.
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	return
}

func (User) TableName() string {
	return "users"
}
