package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/estately/listings-api/internal/api/metrics"
	"github.com/estately/listings-api/internal/core/domain"
	"github.com/estately/listings-api/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// PropertyService implements listing management. Views are recorded in the
// tracker as a best-effort side channel: a tracker failure never fails the
// read that triggered it.
type PropertyService struct {
	repo  ports.PropertyRepository
	views ports.ViewTracker
	log   zerolog.Logger
}

func NewPropertyService(repo ports.PropertyRepository, views ports.ViewTracker, log zerolog.Logger) *PropertyService {
	return &PropertyService{repo: repo, views: views, log: log}
}

func (s *PropertyService) Create(ctx context.Context, ownerID string, in ports.CreatePropertyInput) (*domain.Property, error) {
	if len(in.Images) == 0 {
		return nil, fmt.Errorf("%w: at least one property image is required", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	p := &domain.Property{
		Owner:              ownerID,
		Name:               in.Name,
		Description:        in.Description,
		Address:            in.Address,
		City:               in.City,
		State:              in.State,
		Pincode:            in.Pincode,
		AvailableFrom:      in.AvailableFrom,
		Amount:             in.Amount,
		PropertyType:       in.PropertyType,
		TransactionType:    in.TransactionType,
		Rooms:              in.Rooms,
		Bathrooms:          in.Bathrooms,
		Balconies:          in.Balconies,
		AreaSqft:           in.AreaSqft,
		Furnished:          in.Furnished,
		Parking:            in.Parking,
		YearOfConstruction: in.YearOfConstruction,
		TenantType:         in.TenantType,
		Amenities:          in.Amenities,
		Nearby:             in.Nearby,
		Images:             in.Images,
		Videos:             in.Videos,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	return s.repo.Create(ctx, p)
}

func (s *PropertyService) Get(ctx context.Context, id, viewerID string) (*domain.Property, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Owners viewing their own listing do not count as visitors.
	if viewerID != "" && viewerID != p.Owner {
		if err := s.views.Record(ctx, id, viewerID); err != nil {
			s.log.Warn().Err(err).Str("property_id", id).Msg("view tracking failed")
		} else {
			metrics.PropertyViewsTotal.Inc()
		}
	}
	return p, nil
}

func (s *PropertyService) List(ctx context.Context, filter ports.PropertyFilter) (*ports.PropertyPage, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultPageLimit
	}
	if filter.Limit > maxPageLimit {
		filter.Limit = maxPageLimit
	}

	items, total, err := s.repo.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &ports.PropertyPage{Items: items, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *PropertyService) Mine(ctx context.Context, ownerID string) ([]domain.Property, error) {
	return s.repo.FindByOwner(ctx, ownerID)
}

func (s *PropertyService) Update(ctx context.Context, id string, upd ports.PropertyUpdate) (*domain.Property, error) {
	return s.repo.Update(ctx, id, upd)
}

func (s *PropertyService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *PropertyService) AddMedia(ctx context.Context, id string, field ports.MediaField, urls []string) (*domain.Property, error) {
	if len(urls) == 0 {
		return nil, fmt.Errorf("%w: no media urls provided", domain.ErrInvalidInput)
	}
	return s.repo.AddMedia(ctx, id, field, urls)
}

func (s *PropertyService) RemoveMedia(ctx context.Context, id string, field ports.MediaField, urls []string) (*domain.Property, error) {
	if len(urls) == 0 {
		return nil, fmt.Errorf("%w: no media urls provided", domain.ErrInvalidInput)
	}
	return s.repo.RemoveMedia(ctx, id, field, urls)
}

func (s *PropertyService) TotalViews(ctx context.Context, id string) (int64, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return 0, err
	}
	return s.views.Total(ctx, id)
}

func (s *PropertyService) Visitors(ctx context.Context, id string) ([]string, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return s.views.Visitors(ctx, id)
}
