package domain

import (
	"errors"
	"time"
)

const (
	// RoleUser is a regular account: browse, like, review.
	RoleUser = "user"
	// RoleOwner is a privileged account: may list and manage properties
	// and receives notifications.
	RoleOwner = "owner"
)

var ErrInvalidInput = errors.New("invalid input")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidToken = errors.New("invalid token")
var ErrTokenExpired = errors.New("token expired")
var ErrTokenReused = errors.New("refresh token invalid or already used")
var ErrForbidden = errors.New("access forbidden")

// ValidRole reports whether role is one of the known account roles.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleOwner
}

// User models an authenticated actor in the system.
//
// RefreshToken holds the single currently valid refresh token for the
// account; an empty value means the user is logged out. Issuing a new pair
// always overwrites it, so at most one refresh token is valid at a time.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	ProfileImage string    `json:"profile_image,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	RefreshToken string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
