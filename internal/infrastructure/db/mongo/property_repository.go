package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/estately/listings-api/internal/core/domain"
	"github.com/estately/listings-api/internal/core/ports"
)

const propertiesCollection = "properties"

// PropertyRepository implements ports.PropertyRepository on MongoDB.
type PropertyRepository struct {
	coll *mongo.Collection
}

func NewPropertyRepository(db *mongo.Database) *PropertyRepository {
	return &PropertyRepository{coll: db.Collection(propertiesCollection)}
}

type propertyDoc struct {
	ID                 primitive.ObjectID     `bson:"_id,omitempty"`
	Owner              string                 `bson:"owner"`
	Name               string                 `bson:"name"`
	Description        string                 `bson:"description"`
	Address            string                 `bson:"address"`
	City               string                 `bson:"city"`
	State              string                 `bson:"state"`
	Pincode            string                 `bson:"pincode"`
	AvailableFrom      time.Time              `bson:"available_from"`
	Amount             int64                  `bson:"amount"`
	PropertyType       string                 `bson:"property_type"`
	TransactionType    domain.TransactionType `bson:"transaction_type"`
	Rooms              int                    `bson:"rooms"`
	Bathrooms          int                    `bson:"bathrooms"`
	Balconies          int                    `bson:"balconies"`
	AreaSqft           float64                `bson:"area_sqft"`
	Furnished          domain.FurnishedState  `bson:"furnished"`
	Parking            bool                   `bson:"parking"`
	YearOfConstruction int                    `bson:"year_of_construction"`
	TenantType         string                 `bson:"tenant_type,omitempty"`
	Amenities          domain.Amenities       `bson:"amenities"`
	Nearby             domain.Nearby          `bson:"nearby"`
	Images             []string               `bson:"images"`
	Videos             []string               `bson:"videos,omitempty"`
	CreatedAt          time.Time              `bson:"created_at"`
	UpdatedAt          time.Time              `bson:"updated_at"`
}

func fromProperty(p *domain.Property) propertyDoc {
	return propertyDoc{
		Owner:              p.Owner,
		Name:               p.Name,
		Description:        p.Description,
		Address:            p.Address,
		City:               p.City,
		State:              p.State,
		Pincode:            p.Pincode,
		AvailableFrom:      p.AvailableFrom.UTC(),
		Amount:             p.Amount,
		PropertyType:       p.PropertyType,
		TransactionType:    p.TransactionType,
		Rooms:              p.Rooms,
		Bathrooms:          p.Bathrooms,
		Balconies:          p.Balconies,
		AreaSqft:           p.AreaSqft,
		Furnished:          p.Furnished,
		Parking:            p.Parking,
		YearOfConstruction: p.YearOfConstruction,
		TenantType:         p.TenantType,
		Amenities:          p.Amenities,
		Nearby:             p.Nearby,
		Images:             p.Images,
		Videos:             p.Videos,
		CreatedAt:          p.CreatedAt.UTC(),
		UpdatedAt:          p.UpdatedAt.UTC(),
	}
}

func (d *propertyDoc) toDomain() *domain.Property {
	return &domain.Property{
		ID:                 d.ID.Hex(),
		Owner:              d.Owner,
		Name:               d.Name,
		Description:        d.Description,
		Address:            d.Address,
		City:               d.City,
		State:              d.State,
		Pincode:            d.Pincode,
		AvailableFrom:      d.AvailableFrom,
		Amount:             d.Amount,
		PropertyType:       d.PropertyType,
		TransactionType:    d.TransactionType,
		Rooms:              d.Rooms,
		Bathrooms:          d.Bathrooms,
		Balconies:          d.Balconies,
		AreaSqft:           d.AreaSqft,
		Furnished:          d.Furnished,
		Parking:            d.Parking,
		YearOfConstruction: d.YearOfConstruction,
		TenantType:         d.TenantType,
		Amenities:          d.Amenities,
		Nearby:             d.Nearby,
		Images:             d.Images,
		Videos:             d.Videos,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}

func (r *PropertyRepository) Create(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	res, err := r.coll.InsertOne(ctx, fromProperty(p))
	if err != nil {
		return nil, fmt.Errorf("insert property: %w", err)
	}

	created := *p
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *PropertyRepository) FindByID(ctx context.Context, id string) (*domain.Property, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPropertyNotFound
	}

	var doc propertyDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("find property: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PropertyRepository) FindByOwner(ctx context.Context, ownerID string) ([]domain.Property, error) {
	cur, err := r.coll.Find(ctx, bson.M{"owner": ownerID}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find properties by owner: %w", err)
	}
	return decodeProperties(ctx, cur)
}

func (r *PropertyRepository) Find(ctx context.Context, filter ports.PropertyFilter) ([]domain.Property, int64, error) {
	query := bson.M{}
	if filter.City != "" {
		query["city"] = filter.City
	}
	if filter.PropertyType != "" {
		query["property_type"] = filter.PropertyType
	}
	if filter.TransactionType != "" {
		query["transaction_type"] = filter.TransactionType
	}
	if filter.Furnished != "" {
		query["furnished"] = filter.Furnished
	}
	if filter.Rooms > 0 {
		query["rooms"] = bson.M{"$gte": filter.Rooms}
	}
	if filter.MinAmount > 0 || filter.MaxAmount > 0 {
		amount := bson.M{}
		if filter.MinAmount > 0 {
			amount["$gte"] = filter.MinAmount
		}
		if filter.MaxAmount > 0 {
			amount["$lte"] = filter.MaxAmount
		}
		query["amount"] = amount
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count properties: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find properties: %w", err)
	}

	items, err := decodeProperties(ctx, cur)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *PropertyRepository) Update(ctx context.Context, id string, upd ports.PropertyUpdate) (*domain.Property, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPropertyNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	setIf := func(key string, v any, ok bool) {
		if ok {
			set[key] = v
		}
	}
	setIf("name", deref(upd.Name), upd.Name != nil)
	setIf("description", deref(upd.Description), upd.Description != nil)
	setIf("address", deref(upd.Address), upd.Address != nil)
	setIf("city", deref(upd.City), upd.City != nil)
	setIf("state", deref(upd.State), upd.State != nil)
	setIf("pincode", deref(upd.Pincode), upd.Pincode != nil)
	if upd.AvailableFrom != nil {
		set["available_from"] = upd.AvailableFrom.UTC()
	}
	if upd.Amount != nil {
		set["amount"] = *upd.Amount
	}
	setIf("property_type", deref(upd.PropertyType), upd.PropertyType != nil)
	if upd.TransactionType != nil {
		set["transaction_type"] = *upd.TransactionType
	}
	if upd.Rooms != nil {
		set["rooms"] = *upd.Rooms
	}
	if upd.Bathrooms != nil {
		set["bathrooms"] = *upd.Bathrooms
	}
	if upd.Balconies != nil {
		set["balconies"] = *upd.Balconies
	}
	if upd.AreaSqft != nil {
		set["area_sqft"] = *upd.AreaSqft
	}
	if upd.Furnished != nil {
		set["furnished"] = *upd.Furnished
	}
	if upd.Parking != nil {
		set["parking"] = *upd.Parking
	}
	if upd.YearOfConstruction != nil {
		set["year_of_construction"] = *upd.YearOfConstruction
	}
	setIf("tenant_type", deref(upd.TenantType), upd.TenantType != nil)
	if upd.Amenities != nil {
		set["amenities"] = *upd.Amenities
	}
	if upd.Nearby != nil {
		set["nearby"] = *upd.Nearby
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc propertyDoc
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("update property: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PropertyRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPropertyNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete property: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPropertyNotFound
	}
	return nil
}

func (r *PropertyRepository) AddMedia(ctx context.Context, id string, field ports.MediaField, urls []string) (*domain.Property, error) {
	return r.updateMedia(ctx, id, bson.M{
		"$push": bson.M{string(field): bson.M{"$each": urls}},
	})
}

func (r *PropertyRepository) RemoveMedia(ctx context.Context, id string, field ports.MediaField, urls []string) (*domain.Property, error) {
	return r.updateMedia(ctx, id, bson.M{
		"$pull": bson.M{string(field): bson.M{"$in": urls}},
	})
}

func (r *PropertyRepository) updateMedia(ctx context.Context, id string, update bson.M) (*domain.Property, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPropertyNotFound
	}

	update["$set"] = bson.M{"updated_at": time.Now().UTC()}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc propertyDoc
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("update property media: %w", err)
	}
	return doc.toDomain(), nil
}

// EnsureIndexes creates the indexes the browse filters rely on.
func (r *PropertyRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner", Value: 1}}},
		{Keys: bson.D{{Key: "city", Value: 1}, {Key: "transaction_type", Value: 1}}},
		{Keys: bson.D{{Key: "amount", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func decodeProperties(ctx context.Context, cur *mongo.Cursor) ([]domain.Property, error) {
	defer cur.Close(ctx)

	var out []domain.Property
	for cur.Next(ctx) {
		var doc propertyDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode property: %w", err)
		}
		out = append(out, *doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate properties: %w", err)
	}
	return out, nil
}

func deref(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
