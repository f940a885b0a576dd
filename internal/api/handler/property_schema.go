package handler

import (
	"time"

	"github.com/estately/listings-api/internal/core/domain"
	"github.com/estately/listings-api/internal/core/ports"
)

type amenitiesPayload struct {
	Gym            bool `json:"gym"`
	VisitorParking bool `json:"visitor_parking"`
	Garden         bool `json:"garden"`
	SwimmingPool   bool `json:"swimming_pool"`
	ClubHouse      bool `json:"club_house"`
}

type nearbyPayload struct {
	SchoolKm         float64 `json:"school_km" validate:"gte=0"`
	HospitalKm       float64 `json:"hospital_km" validate:"gte=0"`
	BusStationKm     float64 `json:"bus_station_km" validate:"gte=0"`
	RailwayStationKm float64 `json:"railway_station_km" validate:"gte=0"`
}

type createPropertyRequest struct {
	Name               string           `json:"name" validate:"required"`
	Description        string           `json:"description" validate:"required"`
	Address            string           `json:"address" validate:"required"`
	City               string           `json:"city" validate:"required"`
	State              string           `json:"state" validate:"required"`
	Pincode            string           `json:"pincode" validate:"required"`
	AvailableFrom      time.Time        `json:"available_from"`
	Amount             int64            `json:"amount" validate:"required,min=1"`
	PropertyType       string           `json:"property_type" validate:"required"`
	TransactionType    string           `json:"transaction_type" validate:"required,oneof=sale rent"`
	Rooms              int              `json:"rooms" validate:"min=0"`
	Bathrooms          int              `json:"bathrooms" validate:"min=0"`
	Balconies          int              `json:"balconies" validate:"min=0"`
	AreaSqft           float64          `json:"area_sqft" validate:"min=0"`
	Furnished          string           `json:"furnished" validate:"required,oneof=furnished semi_furnished unfurnished"`
	Parking            bool             `json:"parking"`
	YearOfConstruction int              `json:"year_of_construction" validate:"omitempty,min=1800"`
	TenantType         string           `json:"tenant_type"`
	Amenities          amenitiesPayload `json:"amenities"`
	Nearby             nearbyPayload    `json:"nearby"`
	Images             []string         `json:"images" validate:"required,min=1,dive,url"`
	Videos             []string         `json:"videos" validate:"omitempty,dive,url"`
}

func (r createPropertyRequest) toInput() ports.CreatePropertyInput {
	return ports.CreatePropertyInput{
		Name:               r.Name,
		Description:        r.Description,
		Address:            r.Address,
		City:               r.City,
		State:              r.State,
		Pincode:            r.Pincode,
		AvailableFrom:      r.AvailableFrom,
		Amount:             r.Amount,
		PropertyType:       r.PropertyType,
		TransactionType:    domain.TransactionType(r.TransactionType),
		Rooms:              r.Rooms,
		Bathrooms:          r.Bathrooms,
		Balconies:          r.Balconies,
		AreaSqft:           r.AreaSqft,
		Furnished:          domain.FurnishedState(r.Furnished),
		Parking:            r.Parking,
		YearOfConstruction: r.YearOfConstruction,
		TenantType:         r.TenantType,
		Amenities:          domain.Amenities(r.Amenities),
		Nearby:             domain.Nearby(r.Nearby),
		Images:             r.Images,
		Videos:             r.Videos,
	}
}

type updatePropertyRequest struct {
	Name          *string           `json:"name" validate:"omitempty,min=1"`
	Description   *string           `json:"description" validate:"omitempty,min=1"`
	Address       *string           `json:"address" validate:"omitempty,min=1"`
	City          *string           `json:"city" validate:"omitempty,min=1"`
	State         *string           `json:"state" validate:"omitempty,min=1"`
	Pincode       *string           `json:"pincode" validate:"omitempty,min=1"`
	AvailableFrom      *time.Time        `json:"available_from"`
	Amount             *int64            `json:"amount" validate:"omitempty,min=1"`
	PropertyType       *string           `json:"property_type" validate:"omitempty,min=1"`
	TransactionType    *string           `json:"transaction_type" validate:"omitempty,oneof=sale rent"`
	Rooms              *int              `json:"rooms" validate:"omitempty,min=0"`
	Bathrooms          *int              `json:"bathrooms" validate:"omitempty,min=0"`
	Balconies          *int              `json:"balconies" validate:"omitempty,min=0"`
	AreaSqft           *float64          `json:"area_sqft" validate:"omitempty,min=0"`
	Furnished          *string           `json:"furnished" validate:"omitempty,oneof=furnished semi_furnished unfurnished"`
	Parking            *bool             `json:"parking"`
	YearOfConstruction *int              `json:"year_of_construction" validate:"omitempty,min=1800"`
	TenantType         *string           `json:"tenant_type"`
	Amenities          *amenitiesPayload `json:"amenities"`
	Nearby             *nearbyPayload    `json:"nearby"`
}

func (r updatePropertyRequest) toUpdate() ports.PropertyUpdate {
	upd := ports.PropertyUpdate{
		Name:               r.Name,
		Description:        r.Description,
		Address:            r.Address,
		City:               r.City,
		State:              r.State,
		Pincode:            r.Pincode,
		AvailableFrom:      r.AvailableFrom,
		Amount:             r.Amount,
		PropertyType:       r.PropertyType,
		Rooms:              r.Rooms,
		Bathrooms:          r.Bathrooms,
		Balconies:          r.Balconies,
		AreaSqft:           r.AreaSqft,
		Parking:            r.Parking,
		YearOfConstruction: r.YearOfConstruction,
		TenantType:         r.TenantType,
	}
	if r.TransactionType != nil {
		tt := domain.TransactionType(*r.TransactionType)
		upd.TransactionType = &tt
	}
	if r.Furnished != nil {
		f := domain.FurnishedState(*r.Furnished)
		upd.Furnished = &f
	}
	if r.Amenities != nil {
		a := domain.Amenities(*r.Amenities)
		upd.Amenities = &a
	}
	if r.Nearby != nil {
		n := domain.Nearby(*r.Nearby)
		upd.Nearby = &n
	}
	return upd
}

// listPropertiesQuery binds the browse filters from the query string.
type listPropertiesQuery struct {
	City            string `query:"city"`
	PropertyType    string `query:"property_type"`
	TransactionType string `query:"transaction_type" validate:"omitempty,oneof=sale rent"`
	Furnished       string `query:"furnished" validate:"omitempty,oneof=furnished semi_furnished unfurnished"`
	MinAmount       int64  `query:"min_amount" validate:"min=0"`
	MaxAmount       int64  `query:"max_amount" validate:"min=0"`
	Rooms           int    `query:"rooms" validate:"min=0"`
	Page            int    `query:"page" validate:"min=0"`
	Limit           int    `query:"limit" validate:"min=0,max=100"`
}

func (q listPropertiesQuery) toFilter() ports.PropertyFilter {
	return ports.PropertyFilter{
		City:            q.City,
		PropertyType:    q.PropertyType,
		TransactionType: domain.TransactionType(q.TransactionType),
		Furnished:       domain.FurnishedState(q.Furnished),
		MinAmount:       q.MinAmount,
		MaxAmount:       q.MaxAmount,
		Rooms:           q.Rooms,
		Page:            q.Page,
		Limit:           q.Limit,
	}
}

type mediaRequest struct {
	URLs []string `json:"urls" validate:"required,min=1,dive,url"`
}

type propertyResponse struct {
	Success  bool             `json:"success"`
	Property *domain.Property `json:"property"`
}

type propertyListResponse struct {
	Success    bool              `json:"success"`
	Properties []domain.Property `json:"properties"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
}
