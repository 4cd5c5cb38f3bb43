package entity

import (
	"github.com/uptrace/bun"
)

// User is an account record. The password hash never serializes.
type User struct {
	bun.BaseModel `bun:"table:users"`

	BasicEntity
	Email    string `json:"email" bun:"email"`
	Password string `json:"-" bun:"password"`
	Name     string `json:"name" bun:"name"`
	Role     string `json:"role" bun:"role"`
	IsActive bool   `json:"isActive" bun:"is_active"`
}
