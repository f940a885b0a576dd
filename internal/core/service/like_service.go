package service

import (
	"context"
	"time"

	"github.com/estately/listings-api/internal/core/domain"
	"github.com/estately/listings-api/internal/core/ports"
)

// LikeService implements the like toggle. Liking a property notifies its
// owner; removing a like does not.
type LikeService struct {
	likes      ports.LikeRepository
	properties ports.PropertyRepository
	queue      ports.NotificationQueue
}

func NewLikeService(likes ports.LikeRepository, properties ports.PropertyRepository, queue ports.NotificationQueue) *LikeService {
	return &LikeService{likes: likes, properties: properties, queue: queue}
}

func (s *LikeService) Toggle(ctx context.Context, propertyID, userID string) (bool, error) {
	property, err := s.properties.FindByID(ctx, propertyID)
	if err != nil {
		return false, err
	}

	existing, err := s.likes.Find(ctx, propertyID, userID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		if err := s.likes.Delete(ctx, propertyID, userID); err != nil {
			return false, err
		}
		return false, nil
	}

	like := &domain.Like{
		PropertyID: propertyID,
		UserID:     userID,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.likes.Create(ctx, like); err != nil {
		return false, err
	}

	if property.Owner != userID {
		s.queue.Enqueue(ports.NotificationInput{
			Recipient:  property.Owner,
			Actor:      userID,
			PropertyID: propertyID,
			Kind:       domain.NotificationLike,
		})
	}
	return true, nil
}

func (s *LikeService) Liked(ctx context.Context, userID string) ([]domain.Like, error) {
	return s.likes.FindByUser(ctx, userID)
}
