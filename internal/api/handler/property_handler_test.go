package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/estately/listings-api/internal/core/domain"
	"github.com/estately/listings-api/internal/core/ports"
)

type stubPropertyService struct {
	createFn func(ctx context.Context, ownerID string, in ports.CreatePropertyInput) (*domain.Property, error)
	getFn    func(ctx context.Context, id, viewerID string) (*domain.Property, error)
	listFn   func(ctx context.Context, filter ports.PropertyFilter) (*ports.PropertyPage, error)
	updateFn func(ctx context.Context, id string, upd ports.PropertyUpdate) (*domain.Property, error)
	viewsFn  func(ctx context.Context, id string) (int64, error)
}

func (s *stubPropertyService) Create(ctx context.Context, ownerID string, in ports.CreatePropertyInput) (*domain.Property, error) {
	return s.createFn(ctx, ownerID, in)
}

func (s *stubPropertyService) Get(ctx context.Context, id, viewerID string) (*domain.Property, error) {
	return s.getFn(ctx, id, viewerID)
}

func (s *stubPropertyService) List(ctx context.Context, filter ports.PropertyFilter) (*ports.PropertyPage, error) {
	return s.listFn(ctx, filter)
}

func (s *stubPropertyService) Mine(context.Context, string) ([]domain.Property, error) {
	return nil, errors.New("not implemented")
}

func (s *stubPropertyService) Update(ctx context.Context, id string, upd ports.PropertyUpdate) (*domain.Property, error) {
	return s.updateFn(ctx, id, upd)
}

func (s *stubPropertyService) Delete(context.Context, string) error {
	return errors.New("not implemented")
}

func (s *stubPropertyService) AddMedia(context.Context, string, ports.MediaField, []string) (*domain.Property, error) {
	return nil, errors.New("not implemented")
}

func (s *stubPropertyService) RemoveMedia(context.Context, string, ports.MediaField, []string) (*domain.Property, error) {
	return nil, errors.New("not implemented")
}

func (s *stubPropertyService) TotalViews(ctx context.Context, id string) (int64, error) {
	return s.viewsFn(ctx, id)
}

func (s *stubPropertyService) Visitors(context.Context, string) ([]string, error) {
	return nil, errors.New("not implemented")
}

const validPropertyBody = `{
	"name":"Sunny flat","description":"Bright 2BHK","address":"12 Main St",
	"city":"Pune","state":"MH","pincode":"411001","amount":25000,
	"property_type":"apartment","transaction_type":"rent","rooms":2,
	"bathrooms":1,"area_sqft":900,"furnished":"semi_furnished",
	"images":["https://cdn.example.com/1.jpg"]
}`

func TestPropertyHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	svc := &stubPropertyService{
		createFn: func(_ context.Context, ownerID string, in ports.CreatePropertyInput) (*domain.Property, error) {
			if ownerID != "owner-1" {
				t.Fatalf("unexpected owner %q", ownerID)
			}
			if in.TransactionType != domain.TransactionRent || len(in.Images) != 1 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Property{ID: "p1", Owner: ownerID, Name: in.Name, TransactionType: in.TransactionType}, nil
		},
	}
	h := NewPropertyHandler(svc)

	c, rec := jsonRequest(e, http.MethodPost, "/properties", validPropertyBody)
	c.Set("user", &domain.User{ID: "owner-1", Role: domain.RoleOwner})

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestPropertyHandler_Create_MissingImages(t *testing.T) {
	e := newTestEcho()
	svc := &stubPropertyService{
		createFn: func(context.Context, string, ports.CreatePropertyInput) (*domain.Property, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewPropertyHandler(svc)

	body := `{"name":"Flat","description":"d","address":"a","city":"c","state":"s",
		"pincode":"1","amount":100,"property_type":"apartment",
		"transaction_type":"sale","furnished":"furnished","images":[]}`
	c, _ := jsonRequest(e, http.MethodPost, "/properties", body)
	c.Set("user", &domain.User{ID: "owner-1", Role: domain.RoleOwner})

	assertHandlerStatus(t, h.Create(c), http.StatusBadRequest)
}

func TestPropertyHandler_Get_RecordsViewer(t *testing.T) {
	e := newTestEcho()
	svc := &stubPropertyService{
		getFn: func(_ context.Context, id, viewerID string) (*domain.Property, error) {
			if id != "p1" || viewerID != "u2" {
				t.Fatalf("unexpected args: %s %s", id, viewerID)
			}
			return &domain.Property{ID: id, Owner: "u1"}, nil
		},
	}
	h := NewPropertyHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("p1")
	c.Set("user", &domain.User{ID: "u2", Role: domain.RoleUser})

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestPropertyHandler_Get_NotFound(t *testing.T) {
	e := newTestEcho()
	svc := &stubPropertyService{
		getFn: func(context.Context, string, string) (*domain.Property, error) {
			return nil, domain.ErrPropertyNotFound
		},
	}
	h := NewPropertyHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")
	c.Set("user", &domain.User{ID: "u2", Role: domain.RoleUser})

	if err := h.Get(c); !errors.Is(err, domain.ErrPropertyNotFound) {
		t.Fatalf("expected ErrPropertyNotFound, got %v", err)
	}
}

func TestPropertyHandler_List_BindsFilters(t *testing.T) {
	e := newTestEcho()
	svc := &stubPropertyService{
		listFn: func(_ context.Context, filter ports.PropertyFilter) (*ports.PropertyPage, error) {
			if filter.City != "Pune" || filter.TransactionType != domain.TransactionRent {
				t.Fatalf("unexpected filter: %+v", filter)
			}
			if filter.MinAmount != 10000 || filter.Page != 2 || filter.Limit != 5 {
				t.Fatalf("unexpected filter: %+v", filter)
			}
			return &ports.PropertyPage{
				Items: []domain.Property{{ID: "p1"}},
				Total: 11, Page: 2, Limit: 5,
			}, nil
		},
	}
	h := NewPropertyHandler(svc)

	req := httptest.NewRequest(http.MethodGet,
		"/properties?city=Pune&transaction_type=rent&min_amount=10000&page=2&limit=5", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp propertyListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Total != 11 || len(resp.Properties) != 1 {
		t.Fatalf("unexpected page: %+v", resp)
	}
}

func TestPropertyHandler_List_RejectsUnknownTransactionType(t *testing.T) {
	e := newTestEcho()
	svc := &stubPropertyService{
		listFn: func(context.Context, ports.PropertyFilter) (*ports.PropertyPage, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewPropertyHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/properties?transaction_type=lease", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assertHandlerStatus(t, h.List(c), http.StatusBadRequest)
}

func TestPropertyHandler_Update_PatchesTransactionAndYear(t *testing.T) {
	e := newTestEcho()
	svc := &stubPropertyService{
		updateFn: func(_ context.Context, id string, upd ports.PropertyUpdate) (*domain.Property, error) {
			if id != "p1" {
				t.Fatalf("unexpected id %q", id)
			}
			if upd.TransactionType == nil || *upd.TransactionType != domain.TransactionSale {
				t.Fatalf("transaction type not patched: %+v", upd.TransactionType)
			}
			if upd.YearOfConstruction == nil || *upd.YearOfConstruction != 1998 {
				t.Fatalf("year of construction not patched: %+v", upd.YearOfConstruction)
			}
			if upd.Name != nil {
				t.Fatalf("unset fields must stay nil, got name %q", *upd.Name)
			}
			return &domain.Property{ID: id, TransactionType: domain.TransactionSale, YearOfConstruction: 1998}, nil
		},
	}
	h := NewPropertyHandler(svc)

	c, rec := jsonRequest(e, http.MethodPatch, "/",
		`{"transaction_type":"sale","year_of_construction":1998}`)
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestPropertyHandler_Update_RejectsUnknownTransactionType(t *testing.T) {
	e := newTestEcho()
	svc := &stubPropertyService{
		updateFn: func(context.Context, string, ports.PropertyUpdate) (*domain.Property, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewPropertyHandler(svc)

	c, _ := jsonRequest(e, http.MethodPatch, "/", `{"transaction_type":"lease"}`)
	c.SetParamNames("id")
	c.SetParamValues("p1")

	assertHandlerStatus(t, h.Update(c), http.StatusBadRequest)
}

func TestPropertyHandler_Views(t *testing.T) {
	e := newTestEcho()
	svc := &stubPropertyService{
		viewsFn: func(_ context.Context, id string) (int64, error) {
			if id != "p1" {
				t.Fatalf("unexpected id %q", id)
			}
			return 42, nil
		},
	}
	h := NewPropertyHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := h.Views(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["views"] != float64(42) {
		t.Fatalf("unexpected views: %v", resp["views"])
	}
}
