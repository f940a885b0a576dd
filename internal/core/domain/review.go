package domain

import (
	"errors"
	"time"
)

var ErrReviewNotFound = errors.New("review not found")
var ErrReviewExists = errors.New("review already exists")

// Review is a rating left by a user on a property. A user may leave at most
// one review per property.
type Review struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	PropertyID string    `json:"property_id" bson:"property_id"`
	Author     string    `json:"author" bson:"author"`
	Rating     int       `json:"rating" bson:"rating"`
	Comment    string    `json:"comment,omitempty" bson:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}
