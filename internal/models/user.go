package models

import (
	"time"
)

// User represents a registered account.
// The Password field holds the bcrypt hash, never the plaintext, and is
// excluded from every JSON response.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `json:"-"`
	Role      string    `gorm:"default:'user'" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
