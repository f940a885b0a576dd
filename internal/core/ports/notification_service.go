package ports

import (
	"context"

	"github.com/estately/listings-api/internal/core/domain"
)

// NotificationInput is the unit of work handed to the notification queue.
type NotificationInput struct {
	Recipient  string
	Actor      string
	PropertyID string
	Kind       domain.NotificationKind
}

// NotificationRepository defines the persistence contract for notifications.
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	FindByRecipient(ctx context.Context, recipient string) ([]domain.Notification, error)
	MarkAllRead(ctx context.Context, recipient string) error
}

// NotificationService delivers and serves owner notifications.
type NotificationService interface {
	Deliver(ctx context.Context, in NotificationInput) error
	ListForRecipient(ctx context.Context, recipient string) ([]domain.Notification, error)
	MarkAllRead(ctx context.Context, recipient string) error
}

// NotificationQueue decouples notification producers (likes, reviews) from
// persistence. Enqueue must not block request handling.
type NotificationQueue interface {
	Enqueue(in NotificationInput)
}
