package databases

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gencareclinic/gencare-api/models"
)

const loginHistoryCollection = "loginHistory"

// LoginHistoryDatabase contains the methods to use with the login history
// collection
type LoginHistoryDatabase interface {
	Create(ctx context.Context, entry *models.LoginHistory) error
	ListByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.LoginHistory, error)
}

type loginHistoryDatabase struct {
	db DatabaseHelper
}

// NewLoginHistoryDatabase initializes a new instance of login history
// database with the provided db connection
func NewLoginHistoryDatabase(db DatabaseHelper) LoginHistoryDatabase {
	return &loginHistoryDatabase{db: db}
}

func (l *loginHistoryDatabase) Create(ctx context.Context, entry *models.LoginHistory) error {
	entry.CreatedAt = primitive.NewDateTimeFromTime(time.Now())
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	_, err := l.db.Collection(loginHistoryCollection).InsertOne(ctx, entry)
	return err
}

func (l *loginHistoryDatabase) ListByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.LoginHistory, error) {
	if limit <= 0 {
		limit = 50
	}
	opts := options.Find().SetSort(bson.M{"createdAt": -1}).SetLimit(limit)
	cursor, err := l.db.Collection(loginHistoryCollection).Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	var entries []models.LoginHistory
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
