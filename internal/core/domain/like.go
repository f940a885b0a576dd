package domain

import "time"

// Like marks a property as liked by a user. Toggling an existing like
// removes it.
type Like struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	PropertyID string    `json:"property_id" bson:"property_id"`
	UserID     string    `json:"user_id" bson:"user_id"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}
