package databases

// go generate: mockery --name DoctorDatabase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gencareclinic/gencare-api/models"
)

const doctorCollection = "doctors"

// DoctorDatabase contains the methods to use with the doctors collection
type DoctorDatabase interface {
	GetByID(ctx context.Context, id string) (*models.Doctor, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Doctor, error)
	Create(ctx context.Context, doctor *models.Doctor) (primitive.ObjectID, error)
	Update(ctx context.Context, id string, set bson.M) error
	List(ctx context.Context, filter interface{}, limit, page int64) ([]models.Doctor, *models.Pagination, error)
	ApplyRating(ctx context.Context, doctorID primitive.ObjectID, rating float64, count int64) error
}

type doctorDatabase struct {
	db DatabaseHelper
}

// NewDoctorDatabase initializes a new instance of doctor database with the
// provided db connection
func NewDoctorDatabase(db DatabaseHelper) DoctorDatabase {
	return &doctorDatabase{db: db}
}

func (d *doctorDatabase) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var doctor models.Doctor
	if err := d.db.Collection(doctorCollection).FindOne(ctx, bson.M{"_id": objectID}).Decode(&doctor); err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (d *doctorDatabase) GetByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := d.db.Collection(doctorCollection).FindOne(ctx, bson.M{"userId": userID}).Decode(&doctor); err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (d *doctorDatabase) Create(ctx context.Context, doctor *models.Doctor) (primitive.ObjectID, error) {
	now := primitive.NewDateTimeFromTime(time.Now())
	doctor.CreatedAt = now
	doctor.UpdatedAt = now
	if doctor.ID.IsZero() {
		doctor.ID = primitive.NewObjectID()
	}
	_, err := d.db.Collection(doctorCollection).InsertOne(ctx, doctor)
	return doctor.ID, err
}

func (d *doctorDatabase) Update(ctx context.Context, id string, set bson.M) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	set["updatedAt"] = primitive.NewDateTimeFromTime(time.Now())
	_, err = d.db.Collection(doctorCollection).UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": set})
	return err
}

func (d *doctorDatabase) List(ctx context.Context, filter interface{}, limit, page int64) ([]models.Doctor, *models.Pagination, error) {
	cursor, err := d.db.Collection(doctorCollection).Find(ctx, filter, newMongoPaginate(limit, page).getPaginatedOpts())
	if err != nil {
		return nil, nil, err
	}
	var doctors []models.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, nil, err
	}
	total, err := d.db.Collection(doctorCollection).CountDocuments(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	return doctors, buildPagination(total, limit, page), nil
}

func (d *doctorDatabase) ApplyRating(ctx context.Context, doctorID primitive.ObjectID, rating float64, count int64) error {
	_, err := d.db.Collection(doctorCollection).UpdateOne(ctx, bson.M{"_id": doctorID}, bson.M{
		"$set": bson.M{
			"rating":      rating,
			"ratingCount": count,
			"updatedAt":   primitive.NewDateTimeFromTime(time.Now()),
		},
	})
	return err
}
