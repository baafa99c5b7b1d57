package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"medibook/database/repository"
	"medibook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var byDateTimeAsc = bson.D{{Key: "dateTime", Value: 1}}

// find runs a filter sorted by dateTime ascending and decodes every match.
func (r *MongoAppointmentRepo) find(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	ctx, cancel := repository.NewContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(byDateTimeAsc))
	if err != nil {
		return nil, fmt.Errorf("failed to query appointments: %w", err)
	}
	defer cursor.Close(ctx)

	appts := []models.Appointment{}
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appts, nil
}

func (r *MongoAppointmentRepo) GetAll(ctx context.Context) ([]models.Appointment, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoAppointmentRepo) GetByDoctorID(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	return r.find(ctx, bson.M{"doctorId": doctorID})
}

func (r *MongoAppointmentRepo) GetByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return r.find(ctx, bson.M{"patientId": patientID})
}

func (r *MongoAppointmentRepo) GetByDoctorIDAndDateTimeBetween(ctx context.Context, doctorID string, from, to time.Time) ([]models.Appointment, error) {
	return r.find(ctx, bson.M{
		"doctorId": doctorID,
		"dateTime": bson.M{"$gte": from, "$lt": to},
	})
}

func (r *MongoAppointmentRepo) GetByStatus(ctx context.Context, status models.AppointmentStatus) ([]models.Appointment, error) {
	return r.find(ctx, bson.M{"status": status})
}

func (r *MongoAppointmentRepo) GetByDateTimeBetween(ctx context.Context, from, to time.Time) ([]models.Appointment, error) {
	return r.find(ctx, bson.M{"dateTime": bson.M{"$gte": from, "$lt": to}})
}

// ExistsActiveByDoctorIDAndDateTime reports whether a non-cancelled appointment occupies the slot.
func (r *MongoAppointmentRepo) ExistsActiveByDoctorIDAndDateTime(ctx context.Context, doctorID string, dateTime time.Time) (bool, error) {
	ctx, cancel := repository.NewContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"doctorId": doctorID,
		"dateTime": dateTime,
		"status":   bson.M{"$ne": models.StatusCancelled},
	}
	count, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check slot for doctor %s: %w", doctorID, err)
	}
	return count > 0, nil
}

// CountByStatus groups appointments by status. Every status is present in the result.
func (r *MongoAppointmentRepo) CountByStatus(ctx context.Context, doctorID string) (map[models.AppointmentStatus]int64, error) {
	ctx, cancel := repository.NewContext(ctx, 10*time.Second)
	defer cancel()

	match := bson.M{}
	if doctorID != "" {
		match["doctorId"] = doctorID
	}
	pipeline := []bson.M{
		{"$match": match},
		{"$group": bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate appointment statuses: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode status counts: %w", err)
	}

	counts := make(map[models.AppointmentStatus]int64, len(models.AllAppointmentStatuses))
	for _, s := range models.AllAppointmentStatuses {
		counts[s] = 0
	}
	for _, row := range rows {
		if s, err := models.ParseAppointmentStatus(row.Status); err == nil {
			counts[s] += row.Count
		}
	}
	return counts, nil
}
