package databases

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gencareclinic/gencare-api/models"
)

const medicineCollection = "medicines"

// MedicineDatabase contains the methods to use with the medicines collection
type MedicineDatabase interface {
	GetByID(ctx context.Context, id string) (*models.Medicine, error)
	Create(ctx context.Context, medicine *models.Medicine) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) error
	List(ctx context.Context, filter interface{}, limit, page int64) ([]models.Medicine, *models.Pagination, error)
}

type medicineDatabase struct {
	db DatabaseHelper
}

// NewMedicineDatabase initializes a new instance of medicine database with
// the provided db connection
func NewMedicineDatabase(db DatabaseHelper) MedicineDatabase {
	return &medicineDatabase{db: db}
}

func (m *medicineDatabase) GetByID(ctx context.Context, id string) (*models.Medicine, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var medicine models.Medicine
	if err := m.db.Collection(medicineCollection).FindOne(ctx, bson.M{"_id": objectID}).Decode(&medicine); err != nil {
		return nil, err
	}
	return &medicine, nil
}

func (m *medicineDatabase) Create(ctx context.Context, medicine *models.Medicine) (primitive.ObjectID, error) {
	now := primitive.NewDateTimeFromTime(time.Now())
	medicine.CreatedAt = now
	medicine.UpdatedAt = now
	if medicine.ID.IsZero() {
		medicine.ID = primitive.NewObjectID()
	}
	_, err := m.db.Collection(medicineCollection).InsertOne(ctx, medicine)
	return medicine.ID, err
}

func (m *medicineDatabase) Update(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	set["updatedAt"] = primitive.NewDateTimeFromTime(time.Now())
	_, err := m.db.Collection(medicineCollection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}

func (m *medicineDatabase) List(ctx context.Context, filter interface{}, limit, page int64) ([]models.Medicine, *models.Pagination, error) {
	cursor, err := m.db.Collection(medicineCollection).Find(ctx, filter, newMongoPaginate(limit, page).getPaginatedOpts())
	if err != nil {
		return nil, nil, err
	}
	var medicines []models.Medicine
	if err := cursor.All(ctx, &medicines); err != nil {
		return nil, nil, err
	}
	total, err := m.db.Collection(medicineCollection).CountDocuments(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	return medicines, buildPagination(total, limit, page), nil
}
