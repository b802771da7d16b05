package databases

// go generate: mockery --name ServiceDatabase --name ServicePackageDatabase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gencareclinic/gencare-api/models"
)

const (
	serviceCollection        = "services"
	servicePackageCollection = "servicePackages"
)

// ServiceDatabase contains the methods to use with the services collection
type ServiceDatabase interface {
	GetByID(ctx context.Context, id string) (*models.Service, error)
	Create(ctx context.Context, service *models.Service) (primitive.ObjectID, error)
	Update(ctx context.Context, id string, set bson.M) error
	List(ctx context.Context, filter interface{}, limit, page int64) ([]models.Service, *models.Pagination, error)
}

// ServicePackageDatabase contains the methods to use with the service
// packages collection
type ServicePackageDatabase interface {
	GetByID(ctx context.Context, id string) (*models.ServicePackage, error)
	Create(ctx context.Context, pkg *models.ServicePackage) (primitive.ObjectID, error)
	Update(ctx context.Context, id string, set bson.M) error
	List(ctx context.Context, filter interface{}, limit, page int64) ([]models.ServicePackage, *models.Pagination, error)
}

type serviceDatabase struct {
	db DatabaseHelper
}

// NewServiceDatabase initializes a new instance of service database with the
// provided db connection
func NewServiceDatabase(db DatabaseHelper) ServiceDatabase {
	return &serviceDatabase{db: db}
}

func (s *serviceDatabase) GetByID(ctx context.Context, id string) (*models.Service, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var service models.Service
	if err := s.db.Collection(serviceCollection).FindOne(ctx, bson.M{"_id": objectID}).Decode(&service); err != nil {
		return nil, err
	}
	return &service, nil
}

func (s *serviceDatabase) Create(ctx context.Context, service *models.Service) (primitive.ObjectID, error) {
	now := primitive.NewDateTimeFromTime(time.Now())
	service.CreatedAt = now
	service.UpdatedAt = now
	if service.ID.IsZero() {
		service.ID = primitive.NewObjectID()
	}
	_, err := s.db.Collection(serviceCollection).InsertOne(ctx, service)
	return service.ID, err
}

func (s *serviceDatabase) Update(ctx context.Context, id string, set bson.M) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	set["updatedAt"] = primitive.NewDateTimeFromTime(time.Now())
	_, err = s.db.Collection(serviceCollection).UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": set})
	return err
}

func (s *serviceDatabase) List(ctx context.Context, filter interface{}, limit, page int64) ([]models.Service, *models.Pagination, error) {
	cursor, err := s.db.Collection(serviceCollection).Find(ctx, filter, newMongoPaginate(limit, page).getPaginatedOpts())
	if err != nil {
		return nil, nil, err
	}
	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, nil, err
	}
	total, err := s.db.Collection(serviceCollection).CountDocuments(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	return services, buildPagination(total, limit, page), nil
}

type servicePackageDatabase struct {
	db DatabaseHelper
}

// NewServicePackageDatabase initializes a new instance of service package
// database with the provided db connection
func NewServicePackageDatabase(db DatabaseHelper) ServicePackageDatabase {
	return &servicePackageDatabase{db: db}
}

func (s *servicePackageDatabase) GetByID(ctx context.Context, id string) (*models.ServicePackage, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var pkg models.ServicePackage
	if err := s.db.Collection(servicePackageCollection).FindOne(ctx, bson.M{"_id": objectID}).Decode(&pkg); err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (s *servicePackageDatabase) Create(ctx context.Context, pkg *models.ServicePackage) (primitive.ObjectID, error) {
	now := primitive.NewDateTimeFromTime(time.Now())
	pkg.CreatedAt = now
	pkg.UpdatedAt = now
	if pkg.ID.IsZero() {
		pkg.ID = primitive.NewObjectID()
	}
	_, err := s.db.Collection(servicePackageCollection).InsertOne(ctx, pkg)
	return pkg.ID, err
}

func (s *servicePackageDatabase) Update(ctx context.Context, id string, set bson.M) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	set["updatedAt"] = primitive.NewDateTimeFromTime(time.Now())
	_, err = s.db.Collection(servicePackageCollection).UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": set})
	return err
}

func (s *servicePackageDatabase) List(ctx context.Context, filter interface{}, limit, page int64) ([]models.ServicePackage, *models.Pagination, error) {
	cursor, err := s.db.Collection(servicePackageCollection).Find(ctx, filter, newMongoPaginate(limit, page).getPaginatedOpts())
	if err != nil {
		return nil, nil, err
	}
	var pkgs []models.ServicePackage
	if err := cursor.All(ctx, &pkgs); err != nil {
		return nil, nil, err
	}
	total, err := s.db.Collection(servicePackageCollection).CountDocuments(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	return pkgs, buildPagination(total, limit, page), nil
}
