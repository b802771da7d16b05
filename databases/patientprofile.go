package databases

// go generate: mockery --name PatientProfileDatabase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gencareclinic/gencare-api/models"
)

const patientProfileCollection = "patientProfiles"

// PatientProfileDatabase contains the methods to use with the patient
// profiles collection
type PatientProfileDatabase interface {
	GetByID(ctx context.Context, id string) (*models.PatientProfile, error)
	Create(ctx context.Context, profile *models.PatientProfile) (primitive.ObjectID, error)
	Update(ctx context.Context, id string, set bson.M) error
	ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.PatientProfile, error)
	Delete(ctx context.Context, id string) error
}

type patientProfileDatabase struct {
	db DatabaseHelper
}

// NewPatientProfileDatabase initializes a new instance of patient profile
// database with the provided db connection
func NewPatientProfileDatabase(db DatabaseHelper) PatientProfileDatabase {
	return &patientProfileDatabase{db: db}
}

func (p *patientProfileDatabase) GetByID(ctx context.Context, id string) (*models.PatientProfile, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var profile models.PatientProfile
	if err := p.db.Collection(patientProfileCollection).FindOne(ctx, bson.M{"_id": objectID}).Decode(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (p *patientProfileDatabase) Create(ctx context.Context, profile *models.PatientProfile) (primitive.ObjectID, error) {
	now := primitive.NewDateTimeFromTime(time.Now())
	profile.CreatedAt = now
	profile.UpdatedAt = now
	if profile.ID.IsZero() {
		profile.ID = primitive.NewObjectID()
	}
	_, err := p.db.Collection(patientProfileCollection).InsertOne(ctx, profile)
	return profile.ID, err
}

func (p *patientProfileDatabase) Update(ctx context.Context, id string, set bson.M) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	set["updatedAt"] = primitive.NewDateTimeFromTime(time.Now())
	_, err = p.db.Collection(patientProfileCollection).UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": set})
	return err
}

func (p *patientProfileDatabase) ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.PatientProfile, error) {
	cursor, err := p.db.Collection(patientProfileCollection).Find(ctx, bson.M{"ownerUserId": ownerID})
	if err != nil {
		return nil, err
	}
	var profiles []models.PatientProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (p *patientProfileDatabase) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = p.db.Collection(patientProfileCollection).DeleteOne(ctx, bson.M{"_id": objectID})
	return err
}
