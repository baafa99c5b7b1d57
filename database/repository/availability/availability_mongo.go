package availabilityRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medibook/database/repository"
	"medibook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoAvailabilityRepo struct {
	coll *mongo.Collection
}

func NewMongoAvailabilityRepo(db *mongo.Database) AvailabilityRepository {
	repo := &MongoAvailabilityRepo{coll: db.Collection("doctor_availability")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create availability indexes: %v\n", err)
	}
	return repo
}

func (r *MongoAvailabilityRepo) ensureIndexes() error {
	ctx, cancel := repository.NewContext(context.Background(), 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "doctorId", Value: 1}}},
	})
	return err
}

func (r *MongoAvailabilityRepo) Create(ctx context.Context, av *models.DoctorAvailability) error {
	ctx, cancel := repository.NewContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	av.CreatedAt = now
	av.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, av); err != nil {
		return fmt.Errorf("failed to create availability: %w", err)
	}
	return nil
}

func (r *MongoAvailabilityRepo) GetByID(ctx context.Context, id string) (*models.DoctorAvailability, error) {
	ctx, cancel := repository.NewContext(ctx, 5*time.Second)
	defer cancel()

	var av models.DoctorAvailability
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&av); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch availability %s: %w", id, err)
	}
	return &av, nil
}

func (r *MongoAvailabilityRepo) GetByDoctorID(ctx context.Context, doctorID string) ([]models.DoctorAvailability, error) {
	ctx, cancel := repository.NewContext(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"doctorId": doctorID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query availability for doctor %s: %w", doctorID, err)
	}
	defer cursor.Close(ctx)

	windows := []models.DoctorAvailability{}
	if err := cursor.All(ctx, &windows); err != nil {
		return nil, fmt.Errorf("failed to decode availability: %w", err)
	}
	return windows, nil
}

func (r *MongoAvailabilityRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := repository.NewContext(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete availability %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
