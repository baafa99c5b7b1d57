package healthcareRepo

import (
	"context"
	"testing"

	"medibook/database/repository"
	"medibook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoHealthcareServiceRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ns := "medibook.healthcare_services"

	mt.Run("list by doctor", func(mt *mtest.T) {
		repo := &MongoHealthcareServiceRepo{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "id", Value: "s1"}, {Key: "doctorId", Value: "d1"}, {Key: "name", Value: "Checkup"}, {Key: "durationMinutes", Value: 30}},
		))

		services, err := repo.GetByDoctorID(context.Background(), "d1")
		require.NoError(t, err)
		require.Len(t, services, 1)
		assert.Equal(t, 30, services[0].DurationMinutes)
	})

	mt.Run("update missing", func(mt *mtest.T) {
		repo := &MongoHealthcareServiceRepo{coll: mt.Coll}
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 0}, {Key: "nModified", Value: 0}})

		err := repo.Update(context.Background(), &models.HealthcareService{ID: "nope", Name: "x"})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	mt.Run("count by category", func(mt *mtest.T) {
		repo := &MongoHealthcareServiceRepo{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "dental"}, {Key: "count", Value: int64(2)}},
			bson.D{{Key: "_id", Value: "cardiology"}, {Key: "count", Value: int64(5)}},
		))

		counts, err := repo.CountByCategory(context.Background())
		require.NoError(t, err)
		assert.Equal(t, map[string]int64{"dental": 2, "cardiology": 5}, counts)
	})
}
