package databases

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gencareclinic/gencare-api/models"
)

const notificationCollection = "notifications"

// NotificationDatabase contains the methods to use with the notifications
// collection
type NotificationDatabase interface {
	Create(ctx context.Context, notification *models.Notification) error
	ListByUser(ctx context.Context, userID primitive.ObjectID, limit, page int64) ([]models.Notification, *models.Pagination, error)
	ListUnread(ctx context.Context, userID primitive.ObjectID) ([]models.Notification, error)
	MarkRead(ctx context.Context, id primitive.ObjectID, userID primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID, userID primitive.ObjectID) error
}

type notificationDatabase struct {
	db DatabaseHelper
}

// NewNotificationDatabase initializes a new instance of notification
// database with the provided db connection
func NewNotificationDatabase(db DatabaseHelper) NotificationDatabase {
	return &notificationDatabase{db: db}
}

func (n *notificationDatabase) Create(ctx context.Context, notification *models.Notification) error {
	notification.CreatedAt = primitive.NewDateTimeFromTime(time.Now())
	if notification.ID.IsZero() {
		notification.ID = primitive.NewObjectID()
	}
	_, err := n.db.Collection(notificationCollection).InsertOne(ctx, notification)
	return err
}

func (n *notificationDatabase) ListByUser(ctx context.Context, userID primitive.ObjectID, limit, page int64) ([]models.Notification, *models.Pagination, error) {
	filter := bson.M{"userId": userID}
	opts := newMongoPaginate(limit, page).getPaginatedOpts().SetSort(bson.M{"createdAt": -1})
	cursor, err := n.db.Collection(notificationCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, nil, err
	}
	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, nil, err
	}
	total, err := n.db.Collection(notificationCollection).CountDocuments(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	return notifications, buildPagination(total, limit, page), nil
}

func (n *notificationDatabase) ListUnread(ctx context.Context, userID primitive.ObjectID) ([]models.Notification, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1}).SetLimit(100)
	cursor, err := n.db.Collection(notificationCollection).Find(ctx, bson.M{"userId": userID, "read": false}, opts)
	if err != nil {
		return nil, err
	}
	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (n *notificationDatabase) MarkRead(ctx context.Context, id primitive.ObjectID, userID primitive.ObjectID) error {
	_, err := n.db.Collection(notificationCollection).UpdateOne(ctx, bson.M{"_id": id, "userId": userID}, bson.M{
		"$set": bson.M{"read": true},
	})
	return err
}

func (n *notificationDatabase) Delete(ctx context.Context, id primitive.ObjectID, userID primitive.ObjectID) error {
	_, err := n.db.Collection(notificationCollection).DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	return err
}
