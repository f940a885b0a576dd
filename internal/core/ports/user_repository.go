package ports

import (
	"context"

	"github.com/estately/listings-api/internal/core/domain"
)

// ProfileUpdate carries the optional account fields of a partial profile
// update. Empty strings mean "leave unchanged".
type ProfileUpdate struct {
	Name  string
	Phone string
	Email string
}

// UserRepository defines the persistence contract for user credentials.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)

	// UpdateRefreshToken overwrites the stored refresh token. An empty
	// token clears it (logout). The write must complete before returning.
	UpdateRefreshToken(ctx context.Context, userID, token string) error

	// RotateRefreshToken replaces the stored refresh token with next only
	// if the current value equals old (compare-and-swap). It reports whether
	// the swap matched; false means the token was already rotated or cleared.
	RotateRefreshToken(ctx context.Context, userID, old, next string) (bool, error)

	UpdatePassword(ctx context.Context, userID, passwordHash string) error
	UpdateProfile(ctx context.Context, userID string, upd ProfileUpdate) (*domain.User, error)
	UpdateProfileImage(ctx context.Context, userID, imageURL string) (*domain.User, error)
}
