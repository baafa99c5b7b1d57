package healthcareRepo

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

type MongoHealthcareServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoHealthcareServiceRepo creates the repository and ensures its indexes.
func NewMongoHealthcareServiceRepo(db *mongo.Database) HealthcareServiceRepository {
	repo := &MongoHealthcareServiceRepo{coll: db.Collection("healthcare_services")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create healthcare service indexes: %v\n", err)
	}
	return repo
}

func (r *MongoHealthcareServiceRepo) ensureIndexes() error {
	ctx, cancel := repository.NewContext(context.Background(), 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "doctorId", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	})
	return err
}

func (r *MongoHealthcareServiceRepo) Create(ctx context.Context, svc *models.HealthcareService) error {
	ctx, cancel := repository.NewContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	svc.CreatedAt = now
	svc.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, svc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("failed to create healthcare service: %w", err)
	}
	return nil
}

func (r *MongoHealthcareServiceRepo) GetByID(ctx context.Context, id string) (*models.HealthcareService, error) {
	ctx, cancel := repository.NewContext(ctx, 5*time.Second)
	defer cancel()

	var svc models.HealthcareService
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&svc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch healthcare service %s: %w", id, err)
	}
	return &svc, nil
}

func (r *MongoHealthcareServiceRepo) find(ctx context.Context, filter bson.M) ([]models.HealthcareService, error) {
	ctx, cancel := repository.NewContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query healthcare services: %w", err)
	}
	defer cursor.Close(ctx)

	services := []models.HealthcareService{}
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode healthcare services: %w", err)
	}
	return services, nil
}

func (r *MongoHealthcareServiceRepo) GetByDoctorID(ctx context.Context, doctorID string) ([]models.HealthcareService, error) {
	return r.find(ctx, bson.M{"doctorId": doctorID})
}

func (r *MongoHealthcareServiceRepo) GetAll(ctx context.Context) ([]models.HealthcareService, error) {
	return r.find(ctx, bson.M{})
}

// GetByCategory matches the category ignoring case.
func (r *MongoHealthcareServiceRepo) GetByCategory(ctx context.Context, category string) ([]models.HealthcareService, error) {
	filter := bson.M{"category": repository.ExactMatchCI(category)}
	return r.find(ctx, filter)
}

func (r *MongoHealthcareServiceRepo) Update(ctx context.Context, svc *models.HealthcareService) error {
	ctx, cancel := repository.NewContext(ctx, 5*time.Second)
	defer cancel()

	svc.UpdatedAt = time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"name":            svc.Name,
		"description":     svc.Description,
		"category":        svc.Category,
		"durationMinutes": svc.DurationMinutes,
		"price":           svc.Price,
		"imageUrl":        svc.ImageURL,
		"updatedAt":       svc.UpdatedAt,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": svc.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to update healthcare service %s: %w", svc.ID, err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *MongoHealthcareServiceRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := repository.NewContext(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete healthcare service %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *MongoHealthcareServiceRepo) CountByCategory(ctx context.Context) (map[string]int64, error) {
	ctx, cancel := repository.NewContext(ctx, 10*time.Second)
	defer cancel()

	pipeline := []bson.M{{"$group": bson.M{"_id": "$category", "count": bson.M{"$sum": 1}}}}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate service categories: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Category string `bson:"_id"`
		Count    int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode category counts: %w", err)
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Category] += row.Count
	}
	return counts, nil
}
