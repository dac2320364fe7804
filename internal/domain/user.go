package domain

import "time"

// Role enumerates account roles.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User is the domain model for travelers and administrators. Email is the
// login subject and uniquely identifies one account.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Role         Role
	Age          int
	Country      string
	Passport     string
	Percentage   int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
