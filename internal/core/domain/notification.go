package domain

import (
	"errors"
	"time"
)

var ErrNotificationNotFound = errors.New("notification not found")

// NotificationKind identifies the activity that produced a notification.
type NotificationKind string

const (
	NotificationLike   NotificationKind = "like"
	NotificationReview NotificationKind = "review"
)

// Notification informs a property owner about activity on one of their
// listings.
type Notification struct {
	ID         string           `json:"id" bson:"_id,omitempty"`
	Recipient  string           `json:"recipient" bson:"recipient"`
	Actor      string           `json:"actor" bson:"actor"`
	PropertyID string           `json:"property_id" bson:"property_id"`
	Kind       NotificationKind `json:"kind" bson:"kind"`
	Message    string           `json:"message" bson:"message"`
	Read       bool             `json:"read" bson:"read"`
	CreatedAt  time.Time        `json:"created_at" bson:"created_at"`
}
