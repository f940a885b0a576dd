package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/estately/listings-api/internal/core/domain"
)

const notificationsCollection = "notifications"

// NotificationRepository implements ports.NotificationRepository on MongoDB.
type NotificationRepository struct {
	coll *mongo.Collection
}

func NewNotificationRepository(db *mongo.Database) *NotificationRepository {
	return &NotificationRepository{coll: db.Collection(notificationsCollection)}
}

type notificationDoc struct {
	ID         primitive.ObjectID      `bson:"_id,omitempty"`
	Recipient  string                  `bson:"recipient"`
	Actor      string                  `bson:"actor,omitempty"`
	PropertyID string                  `bson:"property_id"`
	Kind       domain.NotificationKind `bson:"kind"`
	Message    string                  `bson:"message"`
	Read       bool                    `bson:"read"`
	CreatedAt  time.Time               `bson:"created_at"`
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	doc := notificationDoc{
		Recipient:  n.Recipient,
		Actor:      n.Actor,
		PropertyID: n.PropertyID,
		Kind:       n.Kind,
		Message:    n.Message,
		Read:       n.Read,
		CreatedAt:  n.CreatedAt.UTC(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// FindByRecipient returns notifications unread first, newest first.
func (r *NotificationRepository) FindByRecipient(ctx context.Context, recipient string) ([]domain.Notification, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "read", Value: 1},
		{Key: "created_at", Value: -1},
	})
	cur, err := r.coll.Find(ctx, bson.M{"recipient": recipient}, opts)
	if err != nil {
		return nil, fmt.Errorf("find notifications: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Notification
	for cur.Next(ctx) {
		var doc notificationDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode notification: %w", err)
		}
		out = append(out, domain.Notification{
			ID:         doc.ID.Hex(),
			Recipient:  doc.Recipient,
			Actor:      doc.Actor,
			PropertyID: doc.PropertyID,
			Kind:       doc.Kind,
			Message:    doc.Message,
			Read:       doc.Read,
			CreatedAt:  doc.CreatedAt,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate notifications: %w", err)
	}
	return out, nil
}

// MarkAllRead flips every unread notification for the recipient. Marking an
// already-read set is a no-op.
func (r *NotificationRepository) MarkAllRead(ctx context.Context, recipient string) error {
	_, err := r.coll.UpdateMany(ctx,
		bson.M{"recipient": recipient, "read": false},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return fmt.Errorf("mark notifications read: %w", err)
	}
	return nil
}

// EnsureIndexes supports the recipient inbox query.
func (r *NotificationRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "recipient", Value: 1}, {Key: "read", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}
