package reviewRepo

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

type MongoReviewRepo struct {
	coll *mongo.Collection
}

func NewMongoReviewRepo(db *mongo.Database) ReviewRepository {
	repo := &MongoReviewRepo{coll: db.Collection("doctor_reviews")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create review indexes: %v\n", err)
	}
	return repo
}

func (r *MongoReviewRepo) ensureIndexes() error {
	ctx, cancel := repository.NewContext(context.Background(), 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "patientId", Value: 1}, {Key: "doctorId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "doctorId", Value: 1}, {Key: "datePosted", Value: -1}}},
	})
	return err
}

func (r *MongoReviewRepo) Create(ctx context.Context, review *models.DoctorReview) error {
	ctx, cancel := repository.NewContext(ctx, 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	review.DatePosted = now
	review.LastUpdated = now
	if _, err := r.coll.InsertOne(ctx, review); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

func (r *MongoReviewRepo) GetByID(ctx context.Context, id string) (*models.DoctorReview, error) {
	ctx, cancel := repository.NewContext(ctx, 5*time.Second)
	defer cancel()

	var review models.DoctorReview
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&review); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch review %s: %w", id, err)
	}
	return &review, nil
}

func (r *MongoReviewRepo) find(ctx context.Context, filter bson.M) ([]models.DoctorReview, error) {
	ctx, cancel := repository.NewContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "datePosted", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer cursor.Close(ctx)

	reviews := []models.DoctorReview{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}
	return reviews, nil
}

func (r *MongoReviewRepo) GetAll(ctx context.Context) ([]models.DoctorReview, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoReviewRepo) GetByDoctorID(ctx context.Context, doctorID string) ([]models.DoctorReview, error) {
	return r.find(ctx, bson.M{"doctorId": doctorID})
}

func (r *MongoReviewRepo) GetByPatientID(ctx context.Context, patientID string) ([]models.DoctorReview, error) {
	return r.find(ctx, bson.M{"patientId": patientID})
}

func (r *MongoReviewRepo) Update(ctx context.Context, review *models.DoctorReview) error {
	ctx, cancel := repository.NewContext(ctx, 5*time.Second)
	defer cancel()

	review.LastUpdated = time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"rating":      review.Rating,
		"comment":     review.Comment,
		"lastUpdated": review.LastUpdated,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": review.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to update review %s: %w", review.ID, err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *MongoReviewRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := repository.NewContext(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete review %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *MongoReviewRepo) AverageForDoctor(ctx context.Context, doctorID string) (float64, int64, error) {
	ctx, cancel := repository.NewContext(ctx, 10*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{"doctorId": doctorID}},
		{"$group": bson.M{"_id": "$doctorId", "avg": bson.M{"$avg": "$rating"}, "count": bson.M{"$sum": 1}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to aggregate ratings for doctor %s: %w", doctorID, err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Avg   float64 `bson:"avg"`
		Count int64   `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return 0, 0, fmt.Errorf("failed to decode rating summary: %w", err)
	}
	if len(rows) == 0 {
		return 0, 0, nil
	}
	return rows[0].Avg, rows[0].Count, nil
}
