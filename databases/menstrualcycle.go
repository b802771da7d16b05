package databases

// go generate: mockery --name MenstrualCycleDatabase --name CycleDayDatabase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gencareclinic/gencare-api/models"
)

const (
	menstrualCycleCollection = "menstrualCycles"
	cycleDayCollection       = "cycleDays"
)

// MenstrualCycleDatabase contains the methods to use with the menstrual
// cycles collection
type MenstrualCycleDatabase interface {
	GetByID(ctx context.Context, id string) (*models.MenstrualCycle, error)
	Create(ctx context.Context, cycle *models.MenstrualCycle) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) error
	ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.MenstrualCycle, error)
	CountByOwner(ctx context.Context, ownerID primitive.ObjectID) (int64, error)
}

// CycleDayDatabase contains the methods to use with the cycle days
// collection
type CycleDayDatabase interface {
	GetByCycleAndDate(ctx context.Context, cycleID primitive.ObjectID, date string) (*models.CycleDay, error)
	Upsert(ctx context.Context, day *models.CycleDay) error
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	ListByCycle(ctx context.Context, cycleID primitive.ObjectID) ([]models.CycleDay, error)
	InsertMany(ctx context.Context, days []models.CycleDay) error
}

type menstrualCycleDatabase struct {
	db DatabaseHelper
}

// NewMenstrualCycleDatabase initializes a new instance of menstrual cycle
// database with the provided db connection
func NewMenstrualCycleDatabase(db DatabaseHelper) MenstrualCycleDatabase {
	return &menstrualCycleDatabase{db: db}
}

func (m *menstrualCycleDatabase) GetByID(ctx context.Context, id string) (*models.MenstrualCycle, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var cycle models.MenstrualCycle
	if err := m.db.Collection(menstrualCycleCollection).FindOne(ctx, bson.M{"_id": objectID}).Decode(&cycle); err != nil {
		return nil, err
	}
	return &cycle, nil
}

func (m *menstrualCycleDatabase) Create(ctx context.Context, cycle *models.MenstrualCycle) (primitive.ObjectID, error) {
	now := primitive.NewDateTimeFromTime(time.Now())
	cycle.CreatedAt = now
	cycle.UpdatedAt = now
	if cycle.ID.IsZero() {
		cycle.ID = primitive.NewObjectID()
	}
	_, err := m.db.Collection(menstrualCycleCollection).InsertOne(ctx, cycle)
	return cycle.ID, err
}

func (m *menstrualCycleDatabase) Update(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	set["updatedAt"] = primitive.NewDateTimeFromTime(time.Now())
	_, err := m.db.Collection(menstrualCycleCollection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}

func (m *menstrualCycleDatabase) ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.MenstrualCycle, error) {
	opts := options.Find().SetSort(bson.M{"cycleNumber": -1})
	cursor, err := m.db.Collection(menstrualCycleCollection).Find(ctx, bson.M{"ownerId": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	var cycles []models.MenstrualCycle
	if err := cursor.All(ctx, &cycles); err != nil {
		return nil, err
	}
	return cycles, nil
}

func (m *menstrualCycleDatabase) CountByOwner(ctx context.Context, ownerID primitive.ObjectID) (int64, error) {
	return m.db.Collection(menstrualCycleCollection).CountDocuments(ctx, bson.M{"ownerId": ownerID})
}

type cycleDayDatabase struct {
	db DatabaseHelper
}

// NewCycleDayDatabase initializes a new instance of cycle day database with
// the provided db connection
func NewCycleDayDatabase(db DatabaseHelper) CycleDayDatabase {
	return &cycleDayDatabase{db: db}
}

func (c *cycleDayDatabase) GetByCycleAndDate(ctx context.Context, cycleID primitive.ObjectID, date string) (*models.CycleDay, error) {
	var day models.CycleDay
	if err := c.db.Collection(cycleDayCollection).FindOne(ctx, bson.M{"cycleId": cycleID, "date": date}).Decode(&day); err != nil {
		return nil, err
	}
	return &day, nil
}

// Upsert writes one observation keyed by (cycleId, date) so re-submitting a
// day replaces it instead of duplicating it
func (c *cycleDayDatabase) Upsert(ctx context.Context, day *models.CycleDay) error {
	now := primitive.NewDateTimeFromTime(time.Now())
	day.UpdatedAt = now
	if day.ID.IsZero() {
		day.ID = primitive.NewObjectID()
		day.CreatedAt = now
	}
	filter := bson.M{"cycleId": day.CycleID, "date": day.Date}
	update := bson.M{
		"$set": bson.M{
			"cycleDayNumber":       day.CycleDayNumber,
			"observation":          day.Observation,
			"feeling":              day.Feeling,
			"isPeakDay":            day.IsPeakDay,
			"fertilityProbability": day.FertilityProbability,
			"autoGenerated":        day.AutoGenerated,
			"notes":                day.Notes,
			"updatedAt":            day.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"_id":       day.ID,
			"cycleId":   day.CycleID,
			"ownerId":   day.OwnerID,
			"date":      day.Date,
			"createdAt": day.CreatedAt,
		},
	}
	_, err := c.db.Collection(cycleDayCollection).UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (c *cycleDayDatabase) Update(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	set["updatedAt"] = primitive.NewDateTimeFromTime(time.Now())
	_, err := c.db.Collection(cycleDayCollection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}

func (c *cycleDayDatabase) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := c.db.Collection(cycleDayCollection).DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (c *cycleDayDatabase) ListByCycle(ctx context.Context, cycleID primitive.ObjectID) ([]models.CycleDay, error) {
	opts := options.Find().SetSort(bson.M{"date": 1})
	cursor, err := c.db.Collection(cycleDayCollection).Find(ctx, bson.M{"cycleId": cycleID}, opts)
	if err != nil {
		return nil, err
	}
	var days []models.CycleDay
	if err := cursor.All(ctx, &days); err != nil {
		return nil, err
	}
	return days, nil
}

func (c *cycleDayDatabase) InsertMany(ctx context.Context, days []models.CycleDay) error {
	now := primitive.NewDateTimeFromTime(time.Now())
	for i := range days {
		if days[i].ID.IsZero() {
			days[i].ID = primitive.NewObjectID()
		}
		days[i].CreatedAt = now
		days[i].UpdatedAt = now
		if _, err := c.db.Collection(cycleDayCollection).InsertOne(ctx, days[i]); err != nil {
			return err
		}
	}
	return nil
}
