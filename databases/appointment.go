package databases

// go generate: mockery --name AppointmentDatabase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gencareclinic/gencare-api/models"
)

const appointmentCollection = "appointments"

// AppointmentDatabase contains the methods to use with the appointments
// collection
type AppointmentDatabase interface {
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	Create(ctx context.Context, appointment *models.Appointment) (primitive.ObjectID, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error
	AppendNote(ctx context.Context, id primitive.ObjectID, note models.AppointmentNote) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	List(ctx context.Context, filter interface{}, limit, page int64) ([]models.Appointment, *models.Pagination, error)
	FindStalePendingPayment(ctx context.Context, olderThan time.Time) ([]models.Appointment, error)
}

type appointmentDatabase struct {
	db DatabaseHelper
}

// NewAppointmentDatabase initializes a new instance of appointment database
// with the provided db connection
func NewAppointmentDatabase(db DatabaseHelper) AppointmentDatabase {
	return &appointmentDatabase{db: db}
}

func (a *appointmentDatabase) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var appointment models.Appointment
	if err := a.db.Collection(appointmentCollection).FindOne(ctx, bson.M{"_id": objectID}).Decode(&appointment); err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (a *appointmentDatabase) Create(ctx context.Context, appointment *models.Appointment) (primitive.ObjectID, error) {
	now := primitive.NewDateTimeFromTime(time.Now())
	appointment.CreatedAt = now
	appointment.UpdatedAt = now
	if appointment.ID.IsZero() {
		appointment.ID = primitive.NewObjectID()
	}
	if appointment.Notes == nil {
		appointment.Notes = []models.AppointmentNote{}
	}
	_, err := a.db.Collection(appointmentCollection).InsertOne(ctx, appointment)
	return appointment.ID, err
}

func (a *appointmentDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	return a.db.Collection(appointmentCollection).UpdateOne(ctx, filter, update, opts...)
}

func (a *appointmentDatabase) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	_, err := a.db.Collection(appointmentCollection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"status":    status,
			"updatedAt": primitive.NewDateTimeFromTime(time.Now()),
		},
	})
	return err
}

func (a *appointmentDatabase) AppendNote(ctx context.Context, id primitive.ObjectID, note models.AppointmentNote) error {
	_, err := a.db.Collection(appointmentCollection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$push": bson.M{"notes": note},
		"$set":  bson.M{"updatedAt": primitive.NewDateTimeFromTime(time.Now())},
	})
	return err
}

// Delete removes an appointment document. Only used to compensate a failed
// booking, cancellation elsewhere is a status change.
func (a *appointmentDatabase) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := a.db.Collection(appointmentCollection).DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (a *appointmentDatabase) List(ctx context.Context, filter interface{}, limit, page int64) ([]models.Appointment, *models.Pagination, error) {
	opts := newMongoPaginate(limit, page).getPaginatedOpts().SetSort(bson.M{"createdAt": -1})
	cursor, err := a.db.Collection(appointmentCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, nil, err
	}
	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, nil, err
	}
	total, err := a.db.Collection(appointmentCollection).CountDocuments(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	return appointments, buildPagination(total, limit, page), nil
}

func (a *appointmentDatabase) FindStalePendingPayment(ctx context.Context, olderThan time.Time) ([]models.Appointment, error) {
	filter := bson.M{
		"status":    models.AppointmentStatusPendingPayment,
		"createdAt": bson.M{"$lt": primitive.NewDateTimeFromTime(olderThan)},
	}
	cursor, err := a.db.Collection(appointmentCollection).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}
