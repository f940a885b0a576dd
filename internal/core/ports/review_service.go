package ports

import (
	"context"

	"github.com/estately/listings-api/internal/core/domain"
)

// ReviewRepository defines the persistence contract for reviews.
type ReviewRepository interface {
	Create(ctx context.Context, r *domain.Review) (*domain.Review, error)
	FindByID(ctx context.Context, id string) (*domain.Review, error)
	FindByProperty(ctx context.Context, propertyID string) ([]domain.Review, error)
	FindByAuthorAndProperty(ctx context.Context, author, propertyID string) (*domain.Review, error)
	Delete(ctx context.Context, id string) error
}

// ReviewService implements property reviews: one per user per property.
type ReviewService interface {
	Add(ctx context.Context, propertyID, author string, rating int, comment string) (*domain.Review, error)
	ListForProperty(ctx context.Context, propertyID string) ([]domain.Review, error)

	// DeleteOwn removes the requester's review; domain.ErrForbidden when
	// the requester is not the author.
	DeleteOwn(ctx context.Context, reviewID, requesterID string) error

	// Moderate lets the owner of the reviewed property remove any review
	// on it; domain.ErrForbidden otherwise.
	Moderate(ctx context.Context, reviewID, requesterID string) error
}
