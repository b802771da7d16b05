package databases

// go generate: mockery --name PackagePurchaseDatabase

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gencareclinic/gencare-api/models"
)

const packagePurchaseCollection = "packagePurchases"

// ErrUsageExhausted is returned when a conditional usage update matched no
// redeemable purchase
var ErrUsageExhausted = errors.New("no redeemable usage on package purchase")

// PackagePurchaseDatabase contains the methods to use with the package
// purchases collection. ConsumeUsage and RefundUsage are conditional updates
// that keep remainingUsages inside [0, totalAllowedUses].
type PackagePurchaseDatabase interface {
	GetByID(ctx context.Context, id string) (*models.PackagePurchase, error)
	Create(ctx context.Context, purchase *models.PackagePurchase) (primitive.ObjectID, error)
	Activate(ctx context.Context, id primitive.ObjectID, totalUses int, expiresAt time.Time) error
	ConsumeUsage(ctx context.Context, id primitive.ObjectID, now time.Time) error
	RefundUsage(ctx context.Context, id primitive.ObjectID) error
	ListByCustomer(ctx context.Context, customerID primitive.ObjectID) ([]models.PackagePurchase, error)
}

type packagePurchaseDatabase struct {
	db DatabaseHelper
}

// NewPackagePurchaseDatabase initializes a new instance of package purchase
// database with the provided db connection
func NewPackagePurchaseDatabase(db DatabaseHelper) PackagePurchaseDatabase {
	return &packagePurchaseDatabase{db: db}
}

func (p *packagePurchaseDatabase) GetByID(ctx context.Context, id string) (*models.PackagePurchase, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var purchase models.PackagePurchase
	if err := p.db.Collection(packagePurchaseCollection).FindOne(ctx, bson.M{"_id": objectID}).Decode(&purchase); err != nil {
		return nil, err
	}
	return &purchase, nil
}

func (p *packagePurchaseDatabase) Create(ctx context.Context, purchase *models.PackagePurchase) (primitive.ObjectID, error) {
	if purchase.ID.IsZero() {
		purchase.ID = primitive.NewObjectID()
	}
	purchase.PurchasedAt = primitive.NewDateTimeFromTime(time.Now())
	_, err := p.db.Collection(packagePurchaseCollection).InsertOne(ctx, purchase)
	return purchase.ID, err
}

func (p *packagePurchaseDatabase) Activate(ctx context.Context, id primitive.ObjectID, totalUses int, expiresAt time.Time) error {
	_, err := p.db.Collection(packagePurchaseCollection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"status":           models.PurchaseStatusActive,
			"totalAllowedUses": totalUses,
			"remainingUsages":  totalUses,
			"expiresAt":        primitive.NewDateTimeFromTime(expiresAt),
		},
	})
	return err
}

// ConsumeUsage decrements remainingUsages on an active, unexpired purchase
// with usages left. The filter is the guard, the update only runs when every
// condition still holds.
func (p *packagePurchaseDatabase) ConsumeUsage(ctx context.Context, id primitive.ObjectID, now time.Time) error {
	filter := bson.M{
		"_id":             id,
		"status":          models.PurchaseStatusActive,
		"remainingUsages": bson.M{"$gt": 0},
		"expiresAt":       bson.M{"$gt": primitive.NewDateTimeFromTime(now)},
	}
	res, err := p.db.Collection(packagePurchaseCollection).UpdateOne(ctx, filter, bson.M{
		"$inc": bson.M{"remainingUsages": -1},
	})
	if err != nil {
		return err
	}
	if res.ModifiedCount == 0 {
		return ErrUsageExhausted
	}
	return nil
}

// RefundUsage increments remainingUsages, capped at totalAllowedUses via the
// $expr guard so a double refund can never push it over the top
func (p *packagePurchaseDatabase) RefundUsage(ctx context.Context, id primitive.ObjectID) error {
	filter := bson.M{
		"_id":   id,
		"$expr": bson.M{"$lt": bson.A{"$remainingUsages", "$totalAllowedUses"}},
	}
	res, err := p.db.Collection(packagePurchaseCollection).UpdateOne(ctx, filter, bson.M{
		"$inc": bson.M{"remainingUsages": 1},
	})
	if err != nil {
		return err
	}
	if res.ModifiedCount == 0 {
		return ErrUsageExhausted
	}
	return nil
}

func (p *packagePurchaseDatabase) ListByCustomer(ctx context.Context, customerID primitive.ObjectID) ([]models.PackagePurchase, error) {
	cursor, err := p.db.Collection(packagePurchaseCollection).Find(ctx, bson.M{"customerId": customerID})
	if err != nil {
		return nil, err
	}
	var purchases []models.PackagePurchase
	if err := cursor.All(ctx, &purchases); err != nil {
		return nil, err
	}
	return purchases, nil
}
