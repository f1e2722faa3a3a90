package user

import "time"

// User is an operator account for the management console. Employee records
// are separate reference data; a user may or may not correspond to one.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
