package userRepo

import (
	"context"
	"fmt"
	"time"

	"medibook/database/repository"
	"medibook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *MongoUserRepo) find(ctx context.Context, filter bson.M) ([]models.UserData, error) {
	ctx, cancel := repository.NewContext(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "lastName", Value: 1}, {Key: "firstName", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer cursor.Close(ctx)

	users := []models.UserData{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

func (r *MongoUserRepo) GetAll(ctx context.Context) ([]models.UserData, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoUserRepo) GetByRole(ctx context.Context, role models.Role) ([]models.UserData, error) {
	return r.find(ctx, bson.M{"role": role})
}

func (r *MongoUserRepo) GetDoctorsBySpeciality(ctx context.Context, speciality string, activeOnly bool) ([]models.UserData, error) {
	filter := bson.M{"role": models.RoleDoctor}
	if speciality != "" {
		filter["speciality"] = repository.ExactMatchCI(speciality)
	}
	if activeOnly {
		filter["accountStatus"] = bson.M{"$ne": models.AccountSuspended}
	}
	return r.find(ctx, filter)
}

func (r *MongoUserRepo) CountByRole(ctx context.Context) (map[models.Role]int64, error) {
	ctx, cancel := repository.NewContext(ctx, 10*time.Second)
	defer cancel()

	pipeline := []bson.M{{"$group": bson.M{"_id": "$role", "count": bson.M{"$sum": 1}}}}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate user roles: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Role  string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode role counts: %w", err)
	}

	counts := make(map[models.Role]int64, len(models.AllRoles))
	for _, role := range models.AllRoles {
		counts[role] = 0
	}
	for _, row := range rows {
		if role, err := models.ParseRole(row.Role); err == nil {
			counts[role] += row.Count
		}
	}
	return counts, nil
}

func (r *MongoUserRepo) CountIncompleteProfiles(ctx context.Context) (int64, error) {
	ctx, cancel := repository.NewContext(ctx, 5*time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"profileComplete": false})
	if err != nil {
		return 0, fmt.Errorf("failed to count incomplete profiles: %w", err)
	}
	return count, nil
}
