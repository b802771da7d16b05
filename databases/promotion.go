package databases

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gencareclinic/gencare-api/models"
)

const promotionCollection = "promotions"

// PromotionDatabase contains the methods to use with the promotions
// collection
type PromotionDatabase interface {
	GetByCode(ctx context.Context, code string) (*models.Promotion, error)
	Create(ctx context.Context, promotion *models.Promotion) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) error
	List(ctx context.Context, filter interface{}, limit, page int64) ([]models.Promotion, *models.Pagination, error)
}

type promotionDatabase struct {
	db DatabaseHelper
}

// NewPromotionDatabase initializes a new instance of promotion database with
// the provided db connection
func NewPromotionDatabase(db DatabaseHelper) PromotionDatabase {
	return &promotionDatabase{db: db}
}

func (p *promotionDatabase) GetByCode(ctx context.Context, code string) (*models.Promotion, error) {
	var promotion models.Promotion
	if err := p.db.Collection(promotionCollection).FindOne(ctx, bson.M{"code": code}).Decode(&promotion); err != nil {
		return nil, err
	}
	return &promotion, nil
}

func (p *promotionDatabase) Create(ctx context.Context, promotion *models.Promotion) (primitive.ObjectID, error) {
	now := primitive.NewDateTimeFromTime(time.Now())
	promotion.CreatedAt = now
	promotion.UpdatedAt = now
	if promotion.ID.IsZero() {
		promotion.ID = primitive.NewObjectID()
	}
	_, err := p.db.Collection(promotionCollection).InsertOne(ctx, promotion)
	return promotion.ID, err
}

func (p *promotionDatabase) Update(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	set["updatedAt"] = primitive.NewDateTimeFromTime(time.Now())
	_, err := p.db.Collection(promotionCollection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}

func (p *promotionDatabase) List(ctx context.Context, filter interface{}, limit, page int64) ([]models.Promotion, *models.Pagination, error) {
	cursor, err := p.db.Collection(promotionCollection).Find(ctx, filter, newMongoPaginate(limit, page).getPaginatedOpts())
	if err != nil {
		return nil, nil, err
	}
	var promotions []models.Promotion
	if err := cursor.All(ctx, &promotions); err != nil {
		return nil, nil, err
	}
	total, err := p.db.Collection(promotionCollection).CountDocuments(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	return promotions, buildPagination(total, limit, page), nil
}
