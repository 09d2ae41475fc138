package domain

import "time"

// User is the domain model for administrators who review feedback.
// PasswordHash is never serialized in responses.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
