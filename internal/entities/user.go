package entities

import "time"

// User represents a user entity in the database
type User struct {
	ID           string    `json:"id"` // UUID
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        *string   `json:"phone"` // Pointer allows nil (phone is optional)
	PasswordHash string    `json:"-"`     // Don't expose password hash in JSON
	CreatedAt    time.Time `json:"created_at"`
}
