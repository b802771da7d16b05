package databases

// go generate: mockery --name PaymentTrackingDatabase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gencareclinic/gencare-api/models"
)

const paymentTrackingCollection = "paymentTracking"

// PaymentTrackingDatabase contains the methods to use with the payment
// tracking collection
type PaymentTrackingDatabase interface {
	GetByID(ctx context.Context, id string) (*models.PaymentTracking, error)
	GetByAppointmentID(ctx context.Context, appointmentID primitive.ObjectID) (*models.PaymentTracking, error)
	GetByStripeSessionID(ctx context.Context, sessionID string) (*models.PaymentTracking, error)
	Create(ctx context.Context, payment *models.PaymentTracking) (primitive.ObjectID, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error
	SetStripeSession(ctx context.Context, id primitive.ObjectID, sessionID string) error
	SetRefund(ctx context.Context, id primitive.ObjectID, refund *models.RefundRequest) error
	UpdateRefundStatus(ctx context.Context, id primitive.ObjectID, status string, processedBy primitive.ObjectID) error
	List(ctx context.Context, filter interface{}, limit, page int64) ([]models.PaymentTracking, *models.Pagination, error)
}

type paymentTrackingDatabase struct {
	db DatabaseHelper
}

// NewPaymentTrackingDatabase initializes a new instance of payment tracking
// database with the provided db connection
func NewPaymentTrackingDatabase(db DatabaseHelper) PaymentTrackingDatabase {
	return &paymentTrackingDatabase{db: db}
}

func (p *paymentTrackingDatabase) GetByID(ctx context.Context, id string) (*models.PaymentTracking, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var payment models.PaymentTracking
	if err := p.db.Collection(paymentTrackingCollection).FindOne(ctx, bson.M{"_id": objectID}).Decode(&payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (p *paymentTrackingDatabase) GetByAppointmentID(ctx context.Context, appointmentID primitive.ObjectID) (*models.PaymentTracking, error) {
	var payment models.PaymentTracking
	if err := p.db.Collection(paymentTrackingCollection).FindOne(ctx, bson.M{"appointmentId": appointmentID}).Decode(&payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (p *paymentTrackingDatabase) GetByStripeSessionID(ctx context.Context, sessionID string) (*models.PaymentTracking, error) {
	var payment models.PaymentTracking
	if err := p.db.Collection(paymentTrackingCollection).FindOne(ctx, bson.M{"stripeSessionId": sessionID}).Decode(&payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (p *paymentTrackingDatabase) Create(ctx context.Context, payment *models.PaymentTracking) (primitive.ObjectID, error) {
	now := primitive.NewDateTimeFromTime(time.Now())
	payment.CreatedAt = now
	payment.UpdatedAt = now
	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
	}
	_, err := p.db.Collection(paymentTrackingCollection).InsertOne(ctx, payment)
	return payment.ID, err
}

func (p *paymentTrackingDatabase) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	_, err := p.db.Collection(paymentTrackingCollection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"status":    status,
			"updatedAt": primitive.NewDateTimeFromTime(time.Now()),
		},
	})
	return err
}

func (p *paymentTrackingDatabase) SetStripeSession(ctx context.Context, id primitive.ObjectID, sessionID string) error {
	_, err := p.db.Collection(paymentTrackingCollection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"stripeSessionId": sessionID,
			"updatedAt":       primitive.NewDateTimeFromTime(time.Now()),
		},
	})
	return err
}

func (p *paymentTrackingDatabase) SetRefund(ctx context.Context, id primitive.ObjectID, refund *models.RefundRequest) error {
	_, err := p.db.Collection(paymentTrackingCollection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"refund":    refund,
			"updatedAt": primitive.NewDateTimeFromTime(time.Now()),
		},
	})
	return err
}

func (p *paymentTrackingDatabase) UpdateRefundStatus(ctx context.Context, id primitive.ObjectID, status string, processedBy primitive.ObjectID) error {
	now := primitive.NewDateTimeFromTime(time.Now())
	set := bson.M{
		"refund.status":      status,
		"refund.processedBy": processedBy,
		"refund.processedAt": now,
		"updatedAt":          now,
	}
	if status == models.RefundStatusCompleted {
		set["status"] = models.PaymentStatusRefunded
	}
	_, err := p.db.Collection(paymentTrackingCollection).UpdateOne(ctx, bson.M{"_id": id, "refund": bson.M{"$ne": nil}}, bson.M{"$set": set})
	return err
}

func (p *paymentTrackingDatabase) List(ctx context.Context, filter interface{}, limit, page int64) ([]models.PaymentTracking, *models.Pagination, error) {
	opts := newMongoPaginate(limit, page).getPaginatedOpts().SetSort(bson.M{"createdAt": -1})
	cursor, err := p.db.Collection(paymentTrackingCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, nil, err
	}
	var payments []models.PaymentTracking
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, nil, err
	}
	total, err := p.db.Collection(paymentTrackingCollection).CountDocuments(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	return payments, buildPagination(total, limit, page), nil
}
