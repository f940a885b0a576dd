package domain

import (
	"errors"
	"time"
)

// TransactionType is how a property is offered on the market.
type TransactionType string

const (
	TransactionSale TransactionType = "sale"
	TransactionRent TransactionType = "rent"
)

// FurnishedState describes the furnishing level of a listing.
type FurnishedState string

const (
	Furnished     FurnishedState = "furnished"
	SemiFurnished FurnishedState = "semi_furnished"
	Unfurnished   FurnishedState = "unfurnished"
)

var ErrPropertyNotFound = errors.New("property not found")

// Amenities groups the optional yes/no features of a listing.
type Amenities struct {
	Gym            bool `json:"gym" bson:"gym"`
	VisitorParking bool `json:"visitor_parking" bson:"visitor_parking"`
	Garden         bool `json:"garden" bson:"garden"`
	SwimmingPool   bool `json:"swimming_pool" bson:"swimming_pool"`
	ClubHouse      bool `json:"club_house" bson:"club_house"`
}

// Nearby captures distances (km) to common points of interest.
type Nearby struct {
	SchoolKm         float64 `json:"school_km" bson:"school_km"`
	HospitalKm       float64 `json:"hospital_km" bson:"hospital_km"`
	BusStationKm     float64 `json:"bus_station_km" bson:"bus_station_km"`
	RailwayStationKm float64 `json:"railway_station_km" bson:"railway_station_km"`
}

// Property is the listing aggregate root. Owner references the User that
// created the listing; mutations require requester id == Owner.
type Property struct {
	ID                 string          `json:"id" bson:"_id,omitempty"`
	Owner              string          `json:"owner" bson:"owner"`
	Name               string          `json:"name" bson:"name"`
	Description        string          `json:"description" bson:"description"`
	Address            string          `json:"address" bson:"address"`
	City               string          `json:"city" bson:"city"`
	State              string          `json:"state" bson:"state"`
	Pincode            string          `json:"pincode" bson:"pincode"`
	AvailableFrom      time.Time       `json:"available_from" bson:"available_from"`
	Amount             int64           `json:"amount" bson:"amount"`
	PropertyType       string          `json:"property_type" bson:"property_type"`
	TransactionType    TransactionType `json:"transaction_type" bson:"transaction_type"`
	Rooms              int             `json:"rooms" bson:"rooms"`
	Bathrooms          int             `json:"bathrooms" bson:"bathrooms"`
	Balconies          int             `json:"balconies" bson:"balconies"`
	AreaSqft           float64         `json:"area_sqft" bson:"area_sqft"`
	Furnished          FurnishedState  `json:"furnished" bson:"furnished"`
	Parking            bool            `json:"parking" bson:"parking"`
	YearOfConstruction int             `json:"year_of_construction" bson:"year_of_construction"`
	TenantType         string          `json:"tenant_type,omitempty" bson:"tenant_type,omitempty"`
	Amenities          Amenities       `json:"amenities" bson:"amenities"`
	Nearby             Nearby          `json:"nearby" bson:"nearby"`
	Images             []string        `json:"images" bson:"images"`
	Videos             []string        `json:"videos,omitempty" bson:"videos,omitempty"`
	CreatedAt          time.Time       `json:"created_at" bson:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at" bson:"updated_at"`
}
