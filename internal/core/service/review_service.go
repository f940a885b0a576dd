package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/estately/listings-api/internal/core/domain"
	"github.com/estately/listings-api/internal/core/ports"
)

// ReviewService implements property reviews. Adding a review notifies the
// property owner through the notification queue.
type ReviewService struct {
	reviews    ports.ReviewRepository
	properties ports.PropertyRepository
	queue      ports.NotificationQueue
}

func NewReviewService(reviews ports.ReviewRepository, properties ports.PropertyRepository, queue ports.NotificationQueue) *ReviewService {
	return &ReviewService{reviews: reviews, properties: properties, queue: queue}
}

func (s *ReviewService) Add(ctx context.Context, propertyID, author string, rating int, comment string) (*domain.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrInvalidInput)
	}

	property, err := s.properties.FindByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	if _, err := s.reviews.FindByAuthorAndProperty(ctx, author, propertyID); err == nil {
		return nil, domain.ErrReviewExists
	} else if !errors.Is(err, domain.ErrReviewNotFound) {
		return nil, err
	}

	review := &domain.Review{
		PropertyID: propertyID,
		Author:     author,
		Rating:     rating,
		Comment:    comment,
		CreatedAt:  time.Now().UTC(),
	}
	created, err := s.reviews.Create(ctx, review)
	if err != nil {
		return nil, err
	}

	if property.Owner != author {
		s.queue.Enqueue(ports.NotificationInput{
			Recipient:  property.Owner,
			Actor:      author,
			PropertyID: propertyID,
			Kind:       domain.NotificationReview,
		})
	}
	return created, nil
}

func (s *ReviewService) ListForProperty(ctx context.Context, propertyID string) ([]domain.Review, error) {
	if _, err := s.properties.FindByID(ctx, propertyID); err != nil {
		return nil, err
	}
	return s.reviews.FindByProperty(ctx, propertyID)
}

func (s *ReviewService) DeleteOwn(ctx context.Context, reviewID, requesterID string) error {
	review, err := s.reviews.FindByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if review.Author != requesterID {
		return domain.ErrForbidden
	}
	return s.reviews.Delete(ctx, reviewID)
}

func (s *ReviewService) Moderate(ctx context.Context, reviewID, requesterID string) error {
	review, err := s.reviews.FindByID(ctx, reviewID)
	if err != nil {
		return err
	}

	property, err := s.properties.FindByID(ctx, review.PropertyID)
	if err != nil {
		return err
	}
	if property.Owner != requesterID {
		return domain.ErrForbidden
	}
	return s.reviews.Delete(ctx, reviewID)
}
