package databases

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gencareclinic/gencare-api/models"
)

const wishlistCollection = "wishlists"

// WishlistDatabase contains the methods to use with the wishlists collection
type WishlistDatabase interface {
	Add(ctx context.Context, item *models.WishlistItem) error
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.WishlistItem, error)
	Remove(ctx context.Context, id primitive.ObjectID, userID primitive.ObjectID) error
}

type wishlistDatabase struct {
	db DatabaseHelper
}

// NewWishlistDatabase initializes a new instance of wishlist database with
// the provided db connection
func NewWishlistDatabase(db DatabaseHelper) WishlistDatabase {
	return &wishlistDatabase{db: db}
}

func (w *wishlistDatabase) Add(ctx context.Context, item *models.WishlistItem) error {
	item.CreatedAt = primitive.NewDateTimeFromTime(time.Now())
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	_, err := w.db.Collection(wishlistCollection).InsertOne(ctx, item)
	return err
}

func (w *wishlistDatabase) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.WishlistItem, error) {
	cursor, err := w.db.Collection(wishlistCollection).Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	var items []models.WishlistItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (w *wishlistDatabase) Remove(ctx context.Context, id primitive.ObjectID, userID primitive.ObjectID) error {
	_, err := w.db.Collection(wishlistCollection).DeleteOne(ctx, bson.M{"_id": id, "userId": userID})
	return err
}
