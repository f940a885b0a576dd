package ports

import (
	"context"
	"time"

	"github.com/estately/listings-api/internal/core/domain"
)

// MediaField selects which media array of a property an operation targets.
type MediaField string

const (
	MediaImages MediaField = "images"
	MediaVideos MediaField = "videos"
)

// PropertyFilter narrows and paginates a listing search. Zero values mean
// "no constraint". Page is 1-based.
type PropertyFilter struct {
	City            string
	PropertyType    string
	TransactionType domain.TransactionType
	Furnished       domain.FurnishedState
	MinAmount       int64
	MaxAmount       int64
	Rooms           int
	Page            int
	Limit           int
}

// PropertyUpdate is a partial update; nil fields are left unchanged.
type PropertyUpdate struct {
	Name               *string
	Description        *string
	Address            *string
	City               *string
	State              *string
	Pincode            *string
	AvailableFrom      *time.Time
	Amount             *int64
	PropertyType       *string
	TransactionType    *domain.TransactionType
	Rooms              *int
	Bathrooms          *int
	Balconies          *int
	AreaSqft           *float64
	Furnished          *domain.FurnishedState
	Parking            *bool
	YearOfConstruction *int
	TenantType         *string
	Amenities          *domain.Amenities
	Nearby             *domain.Nearby
}

// PropertyRepository defines the persistence contract for listings.
type PropertyRepository interface {
	Create(ctx context.Context, p *domain.Property) (*domain.Property, error)
	FindByID(ctx context.Context, id string) (*domain.Property, error)
	FindByOwner(ctx context.Context, ownerID string) ([]domain.Property, error)
	Find(ctx context.Context, filter PropertyFilter) ([]domain.Property, int64, error)
	Update(ctx context.Context, id string, upd PropertyUpdate) (*domain.Property, error)
	Delete(ctx context.Context, id string) error
	AddMedia(ctx context.Context, id string, field MediaField, urls []string) (*domain.Property, error)
	RemoveMedia(ctx context.Context, id string, field MediaField, urls []string) (*domain.Property, error)
}
