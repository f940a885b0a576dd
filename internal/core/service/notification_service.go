package service

import (
	"context"
	"fmt"
	"time"

	"github.com/estately/listings-api/internal/core/domain"
	"github.com/estately/listings-api/internal/core/ports"
)

// NotificationService persists and serves owner notifications.
type NotificationService struct {
	repo ports.NotificationRepository
}

func NewNotificationService(repo ports.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

func (s *NotificationService) Deliver(ctx context.Context, in ports.NotificationInput) error {
	if in.Recipient == "" || in.PropertyID == "" {
		return fmt.Errorf("%w: recipient and property are required", domain.ErrInvalidInput)
	}

	n := &domain.Notification{
		Recipient:  in.Recipient,
		Actor:      in.Actor,
		PropertyID: in.PropertyID,
		Kind:       in.Kind,
		Message:    messageFor(in.Kind),
		CreatedAt:  time.Now().UTC(),
	}
	return s.repo.Create(ctx, n)
}

func (s *NotificationService) ListForRecipient(ctx context.Context, recipient string) ([]domain.Notification, error) {
	return s.repo.FindByRecipient(ctx, recipient)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, recipient string) error {
	return s.repo.MarkAllRead(ctx, recipient)
}

func messageFor(kind domain.NotificationKind) string {
	switch kind {
	case domain.NotificationLike:
		return "someone liked your property"
	case domain.NotificationReview:
		return "someone reviewed your property"
	default:
		return "activity on your property"
	}
}
