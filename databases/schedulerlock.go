package databases

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const schedulerLockCollection = "schedulerLocks"

// SchedulerLockDatabase provides a mongo backed lease so cron jobs run on at
// most one instance at a time
type SchedulerLockDatabase interface {
	TryAcquireLock(ctx context.Context, name, owner string, ttl time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, name, owner string) error
}

type schedulerLockDatabase struct {
	db DatabaseHelper
}

// NewSchedulerLockDatabase initializes a new instance of scheduler lock
// database with the provided db connection
func NewSchedulerLockDatabase(db DatabaseHelper) SchedulerLockDatabase {
	return &schedulerLockDatabase{db: db}
}

// TryAcquireLock takes the lease when it is free or expired. The upsert is a
// single conditional document write, which is all the mutual exclusion the
// jobs need.
func (s *schedulerLockDatabase) TryAcquireLock(ctx context.Context, name, owner string, ttl time.Duration) (bool, error) {
	now := time.Now()
	filter := bson.M{
		"_id": name,
		"$or": bson.A{
			bson.M{"expiresAt": bson.M{"$lt": primitive.NewDateTimeFromTime(now)}},
			bson.M{"owner": owner},
		},
	}
	update := bson.M{
		"$set": bson.M{
			"owner":     owner,
			"expiresAt": primitive.NewDateTimeFromTime(now.Add(ttl)),
		},
	}
	_, err := s.db.Collection(schedulerLockCollection).UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		// a duplicate key race means another instance holds the lease
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *schedulerLockDatabase) ReleaseLock(ctx context.Context, name, owner string) error {
	_, err := s.db.Collection(schedulerLockCollection).DeleteOne(ctx, bson.M{"_id": name, "owner": owner})
	return err
}
