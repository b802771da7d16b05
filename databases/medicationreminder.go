package databases

// go generate: mockery --name MedicationReminderDatabase --name NotificationDayDatabase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gencareclinic/gencare-api/models"
)

const (
	medicationReminderCollection = "medicationReminders"
	notificationDayCollection    = "notificationDays"
)

// MedicationReminderDatabase contains the methods to use with the medication
// reminders collection
type MedicationReminderDatabase interface {
	GetByID(ctx context.Context, id string) (*models.MedicationReminder, error)
	Create(ctx context.Context, reminder *models.MedicationReminder) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) error
	ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.MedicationReminder, error)
	ListActiveOn(ctx context.Context, date string) ([]models.MedicationReminder, error)
}

// NotificationDayDatabase contains the methods to use with the notification
// days collection, the per dose fan out of a reminder
type NotificationDayDatabase interface {
	GetByID(ctx context.Context, id string) (*models.NotificationDay, error)
	Upsert(ctx context.Context, day *models.NotificationDay) error
	UpdateStatus(ctx context.Context, id primitive.ObjectID, ownerID primitive.ObjectID, status string) error
	Snooze(ctx context.Context, id primitive.ObjectID, ownerID primitive.ObjectID, until time.Time) error
	ListByOwnerAndDate(ctx context.Context, ownerID primitive.ObjectID, date string) ([]models.NotificationDay, error)
	FindDue(ctx context.Context, date, upToTime string) ([]models.NotificationDay, error)
	MarkMissedBefore(ctx context.Context, date string) (int64, error)
}

type medicationReminderDatabase struct {
	db DatabaseHelper
}

// NewMedicationReminderDatabase initializes a new instance of medication
// reminder database with the provided db connection
func NewMedicationReminderDatabase(db DatabaseHelper) MedicationReminderDatabase {
	return &medicationReminderDatabase{db: db}
}

func (m *medicationReminderDatabase) GetByID(ctx context.Context, id string) (*models.MedicationReminder, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var reminder models.MedicationReminder
	if err := m.db.Collection(medicationReminderCollection).FindOne(ctx, bson.M{"_id": objectID}).Decode(&reminder); err != nil {
		return nil, err
	}
	return &reminder, nil
}

func (m *medicationReminderDatabase) Create(ctx context.Context, reminder *models.MedicationReminder) (primitive.ObjectID, error) {
	now := primitive.NewDateTimeFromTime(time.Now())
	reminder.CreatedAt = now
	reminder.UpdatedAt = now
	if reminder.ID.IsZero() {
		reminder.ID = primitive.NewObjectID()
	}
	_, err := m.db.Collection(medicationReminderCollection).InsertOne(ctx, reminder)
	return reminder.ID, err
}

func (m *medicationReminderDatabase) Update(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	set["updatedAt"] = primitive.NewDateTimeFromTime(time.Now())
	_, err := m.db.Collection(medicationReminderCollection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}

func (m *medicationReminderDatabase) ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.MedicationReminder, error) {
	cursor, err := m.db.Collection(medicationReminderCollection).Find(ctx, bson.M{"ownerId": ownerID})
	if err != nil {
		return nil, err
	}
	var reminders []models.MedicationReminder
	if err := cursor.All(ctx, &reminders); err != nil {
		return nil, err
	}
	return reminders, nil
}

// ListActiveOn returns reminders whose date range covers the given day
func (m *medicationReminderDatabase) ListActiveOn(ctx context.Context, date string) ([]models.MedicationReminder, error) {
	filter := bson.M{
		"active":    true,
		"startDate": bson.M{"$lte": date},
		"endDate":   bson.M{"$gte": date},
	}
	cursor, err := m.db.Collection(medicationReminderCollection).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var reminders []models.MedicationReminder
	if err := cursor.All(ctx, &reminders); err != nil {
		return nil, err
	}
	return reminders, nil
}

type notificationDayDatabase struct {
	db DatabaseHelper
}

// NewNotificationDayDatabase initializes a new instance of notification day
// database with the provided db connection
func NewNotificationDayDatabase(db DatabaseHelper) NotificationDayDatabase {
	return &notificationDayDatabase{db: db}
}

func (n *notificationDayDatabase) GetByID(ctx context.Context, id string) (*models.NotificationDay, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var day models.NotificationDay
	if err := n.db.Collection(notificationDayCollection).FindOne(ctx, bson.M{"_id": objectID}).Decode(&day); err != nil {
		return nil, err
	}
	return &day, nil
}

// Upsert is keyed by (reminderId, date, time, medicineName) so the cron fan
// out stays idempotent
func (n *notificationDayDatabase) Upsert(ctx context.Context, day *models.NotificationDay) error {
	now := primitive.NewDateTimeFromTime(time.Now())
	if day.ID.IsZero() {
		day.ID = primitive.NewObjectID()
	}
	filter := bson.M{
		"reminderId":   day.ReminderID,
		"date":         day.Date,
		"time":         day.Time,
		"medicineName": day.MedicineName,
	}
	update := bson.M{
		"$setOnInsert": bson.M{
			"_id":          day.ID,
			"reminderId":   day.ReminderID,
			"ownerId":      day.OwnerID,
			"date":         day.Date,
			"time":         day.Time,
			"medicineName": day.MedicineName,
			"dosage":       day.Dosage,
			"status":       models.DoseStatusPending,
			"createdAt":    now,
			"updatedAt":    now,
		},
	}
	_, err := n.db.Collection(notificationDayCollection).UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (n *notificationDayDatabase) UpdateStatus(ctx context.Context, id primitive.ObjectID, ownerID primitive.ObjectID, status string) error {
	_, err := n.db.Collection(notificationDayCollection).UpdateOne(ctx, bson.M{"_id": id, "ownerId": ownerID}, bson.M{
		"$set": bson.M{
			"status":    status,
			"updatedAt": primitive.NewDateTimeFromTime(time.Now()),
		},
	})
	return err
}

func (n *notificationDayDatabase) Snooze(ctx context.Context, id primitive.ObjectID, ownerID primitive.ObjectID, until time.Time) error {
	_, err := n.db.Collection(notificationDayCollection).UpdateOne(ctx, bson.M{"_id": id, "ownerId": ownerID}, bson.M{
		"$set": bson.M{
			"status":       models.DoseStatusSnoozed,
			"snoozedUntil": primitive.NewDateTimeFromTime(until),
			"updatedAt":    primitive.NewDateTimeFromTime(time.Now()),
		},
	})
	return err
}

func (n *notificationDayDatabase) ListByOwnerAndDate(ctx context.Context, ownerID primitive.ObjectID, date string) ([]models.NotificationDay, error) {
	opts := options.Find().SetSort(bson.M{"time": 1})
	cursor, err := n.db.Collection(notificationDayCollection).Find(ctx, bson.M{"ownerId": ownerID, "date": date}, opts)
	if err != nil {
		return nil, err
	}
	var days []models.NotificationDay
	if err := cursor.All(ctx, &days); err != nil {
		return nil, err
	}
	return days, nil
}

// FindDue returns pending doses for the given day whose time has passed
func (n *notificationDayDatabase) FindDue(ctx context.Context, date, upToTime string) ([]models.NotificationDay, error) {
	filter := bson.M{
		"date":   date,
		"time":   bson.M{"$lte": upToTime},
		"status": models.DoseStatusPending,
	}
	cursor, err := n.db.Collection(notificationDayCollection).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var days []models.NotificationDay
	if err := cursor.All(ctx, &days); err != nil {
		return nil, err
	}
	return days, nil
}

// MarkMissedBefore closes out doses from past days that were never acted on
func (n *notificationDayDatabase) MarkMissedBefore(ctx context.Context, date string) (int64, error) {
	filter := bson.M{
		"date":   bson.M{"$lt": date},
		"status": bson.M{"$in": bson.A{models.DoseStatusPending, models.DoseStatusSent, models.DoseStatusSnoozed}},
	}
	res, err := n.db.Collection(notificationDayCollection).UpdateMany(ctx, filter, bson.M{
		"$set": bson.M{
			"status":    models.DoseStatusMissed,
			"updatedAt": primitive.NewDateTimeFromTime(time.Now()),
		},
	})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
