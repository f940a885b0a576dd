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
)

const likesCollection = "likes"

// LikeRepository implements ports.LikeRepository on MongoDB.
type LikeRepository struct {
	coll *mongo.Collection
}

func NewLikeRepository(db *mongo.Database) *LikeRepository {
	return &LikeRepository{coll: db.Collection(likesCollection)}
}

type likeDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	PropertyID string             `bson:"property_id"`
	UserID     string             `bson:"user_id"`
	CreatedAt  time.Time          `bson:"created_at"`
}

func (d *likeDoc) toDomain() *domain.Like {
	return &domain.Like{
		ID:         d.ID.Hex(),
		PropertyID: d.PropertyID,
		UserID:     d.UserID,
		CreatedAt:  d.CreatedAt,
	}
}

// Find returns (nil, nil) when the user has not liked the property.
func (r *LikeRepository) Find(ctx context.Context, propertyID, userID string) (*domain.Like, error) {
	var doc likeDoc
	err := r.coll.FindOne(ctx, bson.M{"property_id": propertyID, "user_id": userID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find like: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *LikeRepository) Create(ctx context.Context, like *domain.Like) error {
	doc := likeDoc{
		PropertyID: like.PropertyID,
		UserID:     like.UserID,
		CreatedAt:  like.CreatedAt.UTC(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		// A concurrent toggle already inserted the like; treat as done.
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		return fmt.Errorf("insert like: %w", err)
	}
	return nil
}

func (r *LikeRepository) Delete(ctx context.Context, propertyID, userID string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"property_id": propertyID, "user_id": userID}); err != nil {
		return fmt.Errorf("delete like: %w", err)
	}
	return nil
}

func (r *LikeRepository) FindByUser(ctx context.Context, userID string) ([]domain.Like, error) {
	cur, err := r.coll.Find(ctx, bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find likes: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Like
	for cur.Next(ctx) {
		var doc likeDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode like: %w", err)
		}
		out = append(out, *doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate likes: %w", err)
	}
	return out, nil
}

// EnsureIndexes enforces at most one like per user per property.
func (r *LikeRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "property_id", Value: 1}, {Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
