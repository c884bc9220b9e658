package model

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleAgent    Role = "AGENT"
	RoleAdmin    Role = "ADMIN"
)

type User struct {
	ID            uuid.UUID
	FirstName     string
	LastName      string
	Email         string
	PasswordHash  string
	Role          Role
	DOB           *time.Time
	LicenseNumber *string
	CreatedAt     time.Time
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Principal is the acting user as resolved by the transport boundary.
// Lifecycle services receive it explicitly and never read ambient state.
type Principal struct {
	UserID uuid.UUID
	Role   Role
}

func (p Principal) IsCustomer() bool {
	return p.Role == RoleCustomer
}

func (p Principal) IsAgent() bool {
	return p.Role == RoleAgent
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
