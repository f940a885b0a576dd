package ports

import (
	"context"
	"time"

	"github.com/estately/listings-api/internal/core/domain"
)

// CreatePropertyInput carries the full payload for a new listing.
type CreatePropertyInput struct {
	Name               string
	Description        string
	Address            string
	City               string
	State              string
	Pincode            string
	AvailableFrom      time.Time
	Amount             int64
	PropertyType       string
	TransactionType    domain.TransactionType
	Rooms              int
	Bathrooms          int
	Balconies          int
	AreaSqft           float64
	Furnished          domain.FurnishedState
	Parking            bool
	YearOfConstruction int
	TenantType         string
	Amenities          domain.Amenities
	Nearby             domain.Nearby
	Images             []string
	Videos             []string
}

// PropertyPage is one page of a filtered listing search.
type PropertyPage struct {
	Items []domain.Property `json:"items"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

// PropertyService implements listing management and browse operations.
type PropertyService interface {
	Create(ctx context.Context, ownerID string, in CreatePropertyInput) (*domain.Property, error)

	// Get returns a listing and records a view by viewerID.
	Get(ctx context.Context, id, viewerID string) (*domain.Property, error)

	List(ctx context.Context, filter PropertyFilter) (*PropertyPage, error)
	Mine(ctx context.Context, ownerID string) ([]domain.Property, error)
	Update(ctx context.Context, id string, upd PropertyUpdate) (*domain.Property, error)
	Delete(ctx context.Context, id string) error

	AddMedia(ctx context.Context, id string, field MediaField, urls []string) (*domain.Property, error)
	RemoveMedia(ctx context.Context, id string, field MediaField, urls []string) (*domain.Property, error)

	TotalViews(ctx context.Context, id string) (int64, error)
	Visitors(ctx context.Context, id string) ([]string, error)
}

// ViewTracker records and reports property page views.
type ViewTracker interface {
	Record(ctx context.Context, propertyID, viewerID string) error
	Total(ctx context.Context, propertyID string) (int64, error)
	Visitors(ctx context.Context, propertyID string) ([]string, error)
}
