package ports

import (
	"context"

	"github.com/estately/listings-api/internal/core/domain"
)

// LikeRepository defines the persistence contract for likes. Find returns
// (nil, nil) when no like exists; errors are storage failures only.
type LikeRepository interface {
	Find(ctx context.Context, propertyID, userID string) (*domain.Like, error)
	Create(ctx context.Context, like *domain.Like) error
	Delete(ctx context.Context, propertyID, userID string) error
	FindByUser(ctx context.Context, userID string) ([]domain.Like, error)
}

// LikeService implements the like toggle and liked-property lookup.
type LikeService interface {
	// Toggle likes the property if not yet liked, otherwise removes the
	// like. Reports the resulting state.
	Toggle(ctx context.Context, propertyID, userID string) (liked bool, err error)

	Liked(ctx context.Context, userID string) ([]domain.Like, error)
}
