package databases

// go generate: mockery --name DoctorScheduleDatabase

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gencareclinic/gencare-api/models"
)

const doctorScheduleCollection = "doctorSchedules"

// ErrSlotUnavailable is returned when a conditional slot update matched no
// slot in the expected status. The per document atomicity of the conditional
// update is the only thing serializing concurrent bookings, so callers must
// treat this as "someone else won".
var ErrSlotUnavailable = errors.New("slot is not in the expected status")

// DoctorScheduleDatabase contains the methods to use with the doctor
// schedules collection. BookSlot, ReleaseSlot and MarkSlotAbsent are
// compare and swap updates over one slot inside the week document.
type DoctorScheduleDatabase interface {
	GetByID(ctx context.Context, id string) (*models.DoctorSchedule, error)
	GetByDoctorAndDate(ctx context.Context, doctorID primitive.ObjectID, date string) (*models.DoctorSchedule, error)
	Upsert(ctx context.Context, schedule *models.DoctorSchedule) error
	ListByDoctor(ctx context.Context, doctorID primitive.ObjectID) ([]models.DoctorSchedule, error)
	BookSlot(ctx context.Context, doctorID primitive.ObjectID, date string, slotID, appointmentID, patientID primitive.ObjectID) error
	ReleaseSlot(ctx context.Context, doctorID primitive.ObjectID, date string, slotID primitive.ObjectID) error
	MarkSlotAbsent(ctx context.Context, doctorID primitive.ObjectID, date string, slotID primitive.ObjectID) error
}

type doctorScheduleDatabase struct {
	db DatabaseHelper
}

// NewDoctorScheduleDatabase initializes a new instance of doctor schedule
// database with the provided db connection
func NewDoctorScheduleDatabase(db DatabaseHelper) DoctorScheduleDatabase {
	return &doctorScheduleDatabase{db: db}
}

func (d *doctorScheduleDatabase) GetByID(ctx context.Context, id string) (*models.DoctorSchedule, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var schedule models.DoctorSchedule
	if err := d.db.Collection(doctorScheduleCollection).FindOne(ctx, bson.M{"_id": objectID}).Decode(&schedule); err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (d *doctorScheduleDatabase) GetByDoctorAndDate(ctx context.Context, doctorID primitive.ObjectID, date string) (*models.DoctorSchedule, error) {
	filter := bson.M{"doctorId": doctorID, "weekDays.date": date}
	var schedule models.DoctorSchedule
	if err := d.db.Collection(doctorScheduleCollection).FindOne(ctx, filter).Decode(&schedule); err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (d *doctorScheduleDatabase) Upsert(ctx context.Context, schedule *models.DoctorSchedule) error {
	now := primitive.NewDateTimeFromTime(time.Now())
	schedule.UpdatedAt = now
	if schedule.ID.IsZero() {
		schedule.ID = primitive.NewObjectID()
		schedule.CreatedAt = now
	}
	filter := bson.M{"doctorId": schedule.DoctorID, "weekStart": schedule.WeekStart}
	update := bson.M{
		"$set": bson.M{
			"weekDays":  schedule.WeekDays,
			"updatedAt": schedule.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"_id":       schedule.ID,
			"doctorId":  schedule.DoctorID,
			"weekStart": schedule.WeekStart,
			"createdAt": schedule.CreatedAt,
		},
	}
	_, err := d.db.Collection(doctorScheduleCollection).UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (d *doctorScheduleDatabase) ListByDoctor(ctx context.Context, doctorID primitive.ObjectID) ([]models.DoctorSchedule, error) {
	opts := options.Find().SetSort(bson.M{"weekStart": 1})
	cursor, err := d.db.Collection(doctorScheduleCollection).Find(ctx, bson.M{"doctorId": doctorID}, opts)
	if err != nil {
		return nil, err
	}
	var schedules []models.DoctorSchedule
	if err := cursor.All(ctx, &schedules); err != nil {
		return nil, err
	}
	return schedules, nil
}

// BookSlot flips one slot Free -> Booked. The array filter requires the slot
// to still be Free, so at most one concurrent booking wins.
func (d *doctorScheduleDatabase) BookSlot(ctx context.Context, doctorID primitive.ObjectID, date string, slotID, appointmentID, patientID primitive.ObjectID) error {
	filter := bson.M{"doctorId": doctorID, "weekDays.date": date}
	update := bson.M{
		"$set": bson.M{
			"weekDays.$[d].slots.$[s].status":        models.SlotStatusBooked,
			"weekDays.$[d].slots.$[s].appointmentId": appointmentID,
			"weekDays.$[d].slots.$[s].patientId":     patientID,
			"updatedAt":                              primitive.NewDateTimeFromTime(time.Now()),
		},
	}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{
			bson.M{"d.date": date},
			bson.M{"s._id": slotID, "s.status": models.SlotStatusFree},
		},
	})
	res, err := d.db.Collection(doctorScheduleCollection).UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return err
	}
	if res.ModifiedCount == 0 {
		return ErrSlotUnavailable
	}
	return nil
}

// ReleaseSlot flips a Booked slot back to Free and clears the booking
// metadata
func (d *doctorScheduleDatabase) ReleaseSlot(ctx context.Context, doctorID primitive.ObjectID, date string, slotID primitive.ObjectID) error {
	return d.setSlotStatus(ctx, doctorID, date, slotID, models.SlotStatusBooked, models.SlotStatusFree)
}

// MarkSlotAbsent is used when a doctor calls off a booked slot, the slot must
// not be offered again
func (d *doctorScheduleDatabase) MarkSlotAbsent(ctx context.Context, doctorID primitive.ObjectID, date string, slotID primitive.ObjectID) error {
	return d.setSlotStatus(ctx, doctorID, date, slotID, models.SlotStatusBooked, models.SlotStatusAbsent)
}

func (d *doctorScheduleDatabase) setSlotStatus(ctx context.Context, doctorID primitive.ObjectID, date string, slotID primitive.ObjectID, from, to string) error {
	filter := bson.M{"doctorId": doctorID, "weekDays.date": date}
	update := bson.M{
		"$set": bson.M{
			"weekDays.$[d].slots.$[s].status": to,
			"updatedAt":                       primitive.NewDateTimeFromTime(time.Now()),
		},
		"$unset": bson.M{
			"weekDays.$[d].slots.$[s].appointmentId": "",
			"weekDays.$[d].slots.$[s].patientId":     "",
		},
	}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{
			bson.M{"d.date": date},
			bson.M{"s._id": slotID, "s.status": from},
		},
	})
	res, err := d.db.Collection(doctorScheduleCollection).UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return err
	}
	if res.ModifiedCount == 0 {
		return ErrSlotUnavailable
	}
	return nil
}
