package reviewRepo

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

func TestMongoReviewRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ns := "medibook.doctor_reviews"

	mt.Run("duplicate review", func(mt *mtest.T) {
		repo := &MongoReviewRepo{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "E11000 duplicate key"}))

		err := repo.Create(context.Background(), &models.DoctorReview{ID: "r1", PatientID: "p1", DoctorID: "d1", Rating: 4})
		assert.ErrorIs(t, err, repository.ErrDuplicate)
	})

	mt.Run("average for doctor", func(mt *mtest.T) {
		repo := &MongoReviewRepo{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "d1"}, {Key: "avg", Value: 4.5}, {Key: "count", Value: int64(2)}},
		))

		avg, count, err := repo.AverageForDoctor(context.Background(), "d1")
		require.NoError(t, err)
		assert.Equal(t, 4.5, avg)
		assert.Equal(t, int64(2), count)
	})

	mt.Run("average without reviews", func(mt *mtest.T) {
		repo := &MongoReviewRepo{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		avg, count, err := repo.AverageForDoctor(context.Background(), "d1")
		require.NoError(t, err)
		assert.Zero(t, avg)
		assert.Zero(t, count)
	})

	mt.Run("delete missing", func(mt *mtest.T) {
		repo := &MongoReviewRepo{coll: mt.Coll}
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 0}})

		assert.ErrorIs(t, repo.Delete(context.Background(), "nope"), repository.ErrNotFound)
	})

	mt.Run("update", func(mt *mtest.T) {
		repo := &MongoReviewRepo{coll: mt.Coll}
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 1}, {Key: "nModified", Value: 1}})

		review := &models.DoctorReview{ID: "r1", Rating: 5, Comment: "great"}
		require.NoError(t, repo.Update(context.Background(), review))
		assert.False(t, review.LastUpdated.IsZero())
	})
}
