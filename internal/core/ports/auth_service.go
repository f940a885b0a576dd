package ports

import (
	"context"

	"github.com/estately/listings-api/internal/core/domain"
)

// RegisterInput carries the fields required to create an account.
type RegisterInput struct {
	Name         string
	Phone        string
	Email        string
	Password     string
	Role         string
	ProfileImage string
}

// AuthService implements account lifecycle and credential checks.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, *TokenPair, error)
	Login(ctx context.Context, email, password string) (*domain.User, *TokenPair, error)
	Logout(ctx context.Context, userID string) error
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error
	UpdateProfile(ctx context.Context, userID string, upd ProfileUpdate) (*domain.User, error)
	UpdateProfileImage(ctx context.Context, userID, imageURL string) (*domain.User, error)
}
