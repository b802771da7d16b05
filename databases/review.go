package databases

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gencareclinic/gencare-api/models"
)

const reviewCollection = "reviews"

// ReviewDatabase contains the methods to use with the reviews collection
type ReviewDatabase interface {
	GetByID(ctx context.Context, id string) (*models.Review, error)
	Create(ctx context.Context, review *models.Review) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) error
	ListByDoctor(ctx context.Context, doctorID primitive.ObjectID, limit, page int64) ([]models.Review, *models.Pagination, error)
	AverageForDoctor(ctx context.Context, doctorID primitive.ObjectID) (float64, int64, error)
}

type reviewDatabase struct {
	db DatabaseHelper
}

// NewReviewDatabase initializes a new instance of review database with the
// provided db connection
func NewReviewDatabase(db DatabaseHelper) ReviewDatabase {
	return &reviewDatabase{db: db}
}

func (r *reviewDatabase) GetByID(ctx context.Context, id string) (*models.Review, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var review models.Review
	if err := r.db.Collection(reviewCollection).FindOne(ctx, bson.M{"_id": objectID}).Decode(&review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewDatabase) Create(ctx context.Context, review *models.Review) (primitive.ObjectID, error) {
	now := primitive.NewDateTimeFromTime(time.Now())
	review.CreatedAt = now
	review.UpdatedAt = now
	if review.ID.IsZero() {
		review.ID = primitive.NewObjectID()
	}
	_, err := r.db.Collection(reviewCollection).InsertOne(ctx, review)
	return review.ID, err
}

func (r *reviewDatabase) Update(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	set["updatedAt"] = primitive.NewDateTimeFromTime(time.Now())
	_, err := r.db.Collection(reviewCollection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}

func (r *reviewDatabase) ListByDoctor(ctx context.Context, doctorID primitive.ObjectID, limit, page int64) ([]models.Review, *models.Pagination, error) {
	filter := bson.M{"doctorId": doctorID, "active": true}
	opts := newMongoPaginate(limit, page).getPaginatedOpts().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.db.Collection(reviewCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, nil, err
	}
	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, nil, err
	}
	total, err := r.db.Collection(reviewCollection).CountDocuments(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	return reviews, buildPagination(total, limit, page), nil
}

// AverageForDoctor aggregates the mean rating and review count for a doctor
func (r *reviewDatabase) AverageForDoctor(ctx context.Context, doctorID primitive.ObjectID) (float64, int64, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"doctorId": doctorID, "active": true}},
		{"$group": bson.M{
			"_id":    nil,
			"rating": bson.M{"$avg": "$rating"},
			"count":  bson.M{"$sum": 1},
		}},
	}
	cursor, err := r.db.Collection(reviewCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, err
	}
	var results []struct {
		Rating float64 `bson:"rating"`
		Count  int64   `bson:"count"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, 0, err
	}
	if len(results) == 0 {
		return 0, 0, nil
	}
	return results[0].Rating, results[0].Count, nil
}
