package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/estately/listings-api/internal/api/metrics"
	"github.com/estately/listings-api/internal/core/domain"
	"github.com/estately/listings-api/internal/core/ports"
)

type stubPropertyRepo struct {
	props  map[string]*domain.Property
	nextID int
}

func newStubPropertyRepo() *stubPropertyRepo {
	return &stubPropertyRepo{props: make(map[string]*domain.Property)}
}

func cloneProperty(p *domain.Property) *domain.Property {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

func (r *stubPropertyRepo) Create(_ context.Context, p *domain.Property) (*domain.Property, error) {
	r.nextID++
	copy := cloneProperty(p)
	copy.ID = fmt.Sprintf("prop-%d", r.nextID)
	r.props[copy.ID] = cloneProperty(copy)
	return cloneProperty(copy), nil
}

func (r *stubPropertyRepo) FindByID(_ context.Context, id string) (*domain.Property, error) {
	p, ok := r.props[id]
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}
	return cloneProperty(p), nil
}

func (r *stubPropertyRepo) FindByOwner(_ context.Context, ownerID string) ([]domain.Property, error) {
	var out []domain.Property
	for _, p := range r.props {
		if p.Owner == ownerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPropertyRepo) Find(_ context.Context, filter ports.PropertyFilter) ([]domain.Property, int64, error) {
	var out []domain.Property
	for _, p := range r.props {
		if filter.City != "" && p.City != filter.City {
			continue
		}
		if filter.Rooms > 0 && p.Rooms < filter.Rooms {
			continue
		}
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubPropertyRepo) Update(_ context.Context, id string, upd ports.PropertyUpdate) (*domain.Property, error) {
	p, ok := r.props[id]
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Amount != nil {
		p.Amount = *upd.Amount
	}
	return cloneProperty(p), nil
}

func (r *stubPropertyRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.props[id]; !ok {
		return domain.ErrPropertyNotFound
	}
	delete(r.props, id)
	return nil
}

func (r *stubPropertyRepo) AddMedia(_ context.Context, id string, field ports.MediaField, urls []string) (*domain.Property, error) {
	p, ok := r.props[id]
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}
	if field == ports.MediaImages {
		p.Images = append(p.Images, urls...)
	} else {
		p.Videos = append(p.Videos, urls...)
	}
	return cloneProperty(p), nil
}

func (r *stubPropertyRepo) RemoveMedia(_ context.Context, id string, field ports.MediaField, urls []string) (*domain.Property, error) {
	p, ok := r.props[id]
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}
	remove := make(map[string]struct{}, len(urls))
	for _, u := range urls {
		remove[u] = struct{}{}
	}
	filter := func(in []string) []string {
		var out []string
		for _, u := range in {
			if _, drop := remove[u]; !drop {
				out = append(out, u)
			}
		}
		return out
	}
	if field == ports.MediaImages {
		p.Images = filter(p.Images)
	} else {
		p.Videos = filter(p.Videos)
	}
	return cloneProperty(p), nil
}

type stubViewTracker struct {
	views    map[string]int64
	visitors map[string][]string
}

func newStubViewTracker() *stubViewTracker {
	return &stubViewTracker{views: make(map[string]int64), visitors: make(map[string][]string)}
}

func (t *stubViewTracker) Record(_ context.Context, propertyID, viewerID string) error {
	t.views[propertyID]++
	t.visitors[propertyID] = append(t.visitors[propertyID], viewerID)
	return nil
}

func (t *stubViewTracker) Total(_ context.Context, propertyID string) (int64, error) {
	return t.views[propertyID], nil
}

func (t *stubViewTracker) Visitors(_ context.Context, propertyID string) ([]string, error) {
	return t.visitors[propertyID], nil
}

func createInput() ports.CreatePropertyInput {
	return ports.CreatePropertyInput{
		Name:            "Sunny Apartment",
		Description:     "Two bedroom flat close to the centre",
		Address:         "12 Elm Street",
		City:            "Pune",
		State:           "MH",
		Pincode:         "411001",
		Amount:          25000,
		PropertyType:    "apartment",
		TransactionType: domain.TransactionRent,
		Rooms:           2,
		Bathrooms:       1,
		AreaSqft:        860,
		Furnished:       domain.SemiFurnished,
		Images:          []string{"https://cdn.example.com/p1.jpg"},
	}
}

func TestPropertyService_Create_RequiresImage(t *testing.T) {
	svc := NewPropertyService(newStubPropertyRepo(), newStubViewTracker(), zerolog.Nop())

	in := createInput()
	in.Images = nil
	if _, err := svc.Create(context.Background(), "owner-1", in); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPropertyService_Create_SetsOwner(t *testing.T) {
	svc := NewPropertyService(newStubPropertyRepo(), newStubViewTracker(), zerolog.Nop())

	p, err := svc.Create(context.Background(), "owner-1", createInput())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if p.Owner != "owner-1" {
		t.Fatalf("expected owner owner-1, got %s", p.Owner)
	}
	if p.ID == "" {
		t.Fatalf("expected assigned id")
	}
}

func TestPropertyService_Get_RecordsViewForVisitors(t *testing.T) {
	repo := newStubPropertyRepo()
	tracker := newStubViewTracker()
	svc := NewPropertyService(repo, tracker, zerolog.Nop())

	p, err := svc.Create(context.Background(), "owner-1", createInput())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := svc.Get(context.Background(), p.ID, "visitor-1"); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	// The owner's own visit is not a view.
	if _, err := svc.Get(context.Background(), p.ID, "owner-1"); err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	total, err := svc.TotalViews(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("TotalViews failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected 1 view, got %d", total)
	}

	visitors, err := svc.Visitors(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("Visitors failed: %v", err)
	}
	if len(visitors) != 1 || visitors[0] != "visitor-1" {
		t.Fatalf("unexpected visitors: %v", visitors)
	}
}

func TestPropertyService_Get_CountsViewMetric(t *testing.T) {
	repo := newStubPropertyRepo()
	svc := NewPropertyService(repo, newStubViewTracker(), zerolog.Nop())

	p, err := svc.Create(context.Background(), "owner-1", createInput())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	before := testutil.ToFloat64(metrics.PropertyViewsTotal)

	if _, err := svc.Get(context.Background(), p.ID, "visitor-1"); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	// Owner self-views are not recorded, so they must not count either.
	if _, err := svc.Get(context.Background(), p.ID, "owner-1"); err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if got := testutil.ToFloat64(metrics.PropertyViewsTotal) - before; got != 1 {
		t.Fatalf("expected view counter to grow by 1, got %v", got)
	}
}

func TestPropertyService_Get_NotFound(t *testing.T) {
	svc := NewPropertyService(newStubPropertyRepo(), newStubViewTracker(), zerolog.Nop())

	if _, err := svc.Get(context.Background(), "missing", "viewer"); !errors.Is(err, domain.ErrPropertyNotFound) {
		t.Fatalf("expected ErrPropertyNotFound, got %v", err)
	}
}

func TestPropertyService_List_DefaultsPagination(t *testing.T) {
	svc := NewPropertyService(newStubPropertyRepo(), newStubViewTracker(), zerolog.Nop())

	page, err := svc.List(context.Background(), ports.PropertyFilter{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if page.Page != 1 || page.Limit != defaultPageLimit {
		t.Fatalf("expected defaults 1/%d, got %d/%d", defaultPageLimit, page.Page, page.Limit)
	}

	page, err = svc.List(context.Background(), ports.PropertyFilter{Limit: 10_000})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if page.Limit != maxPageLimit {
		t.Fatalf("expected limit clamped to %d, got %d", maxPageLimit, page.Limit)
	}
}

func TestPropertyService_MediaRoundTrip(t *testing.T) {
	svc := NewPropertyService(newStubPropertyRepo(), newStubViewTracker(), zerolog.Nop())

	p, err := svc.Create(context.Background(), "owner-1", createInput())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	p, err = svc.AddMedia(context.Background(), p.ID, ports.MediaImages, []string{"https://cdn.example.com/p2.jpg"})
	if err != nil {
		t.Fatalf("AddMedia failed: %v", err)
	}
	if len(p.Images) != 2 {
		t.Fatalf("expected 2 images, got %d", len(p.Images))
	}

	p, err = svc.RemoveMedia(context.Background(), p.ID, ports.MediaImages, []string{"https://cdn.example.com/p1.jpg"})
	if err != nil {
		t.Fatalf("RemoveMedia failed: %v", err)
	}
	if len(p.Images) != 1 || p.Images[0] != "https://cdn.example.com/p2.jpg" {
		t.Fatalf("unexpected images after removal: %v", p.Images)
	}

	if _, err := svc.AddMedia(context.Background(), p.ID, ports.MediaImages, nil); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty url list, got %v", err)
	}
}
