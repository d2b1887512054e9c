package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/bistroboss/bistro-api/internal/core/domain"
)

func TestPaymentRepository_MarkSucceeded(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	oid := primitive.NewObjectID()
	settledAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	mt.Run("pending payment is settled", func(mt *mtest.T) {
		repo := &PaymentRepository{col: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: oid},
			{Key: "email", Value: "self@example.com"},
			{Key: "price", Value: 500.0},
			{Key: "cart_ids", Value: bson.A{"c1", "c2"}},
			{Key: "transaction_id", Value: "tran-1"},
			{Key: "status", Value: "success"},
			{Key: "settled_at", Value: settledAt},
			{Key: "carts_cleared", Value: false},
		}}))

		p, err := repo.MarkSucceeded(context.Background(), "tran-1", settledAt)
		require.NoError(t, err)
		require.NotNil(t, p.SettledAt)
		assert.True(t, settledAt.Equal(*p.SettledAt))
		assert.Equal(t, oid.Hex(), p.ID)
		assert.Equal(t, domain.PaymentSuccess, p.Status)
		assert.Equal(t, []string{"c1", "c2"}, p.CartIDs)
		assert.False(t, p.CartsCleared)
	})

	mt.Run("no pending match", func(mt *mtest.T) {
		repo := &PaymentRepository{col: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		_, err := repo.MarkSucceeded(context.Background(), "tran-1", settledAt)
		assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
	})
}

func TestPaymentRepository_FindByTransactionID_NotFound(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("empty cursor", func(mt *mtest.T) {
		repo := &PaymentRepository{col: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "bistro.payments", mtest.FirstBatch))

		_, err := repo.FindByTransactionID(context.Background(), "missing")
		assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
	})
}

func TestPaymentRepository_ListUncleared(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("decodes batch", func(mt *mtest.T) {
		repo := &PaymentRepository{col: mt.Coll}
		first := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "transaction_id", Value: "a"},
			{Key: "status", Value: "success"},
		}
		second := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "transaction_id", Value: "b"},
			{Key: "status", Value: "success"},
		}
		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, "bistro.payments", mtest.FirstBatch, first),
			mtest.CreateCursorResponse(0, "bistro.payments", mtest.NextBatch, second),
		)

		payments, err := repo.ListUncleared(context.Background(), 10)
		require.NoError(t, err)
		require.Len(t, payments, 2)
		assert.Equal(t, "a", payments[0].TransactionID)
		assert.Equal(t, "b", payments[1].TransactionID)
	})
}

func TestPaymentRepository_MarkCartsCleared(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("invalid id", func(mt *mtest.T) {
		repo := &PaymentRepository{col: mt.Coll}
		assert.ErrorIs(t, repo.MarkCartsCleared(context.Background(), "nope"), domain.ErrPaymentNotFound)
	})

	mt.Run("no match", func(mt *mtest.T) {
		repo := &PaymentRepository{col: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		err := repo.MarkCartsCleared(context.Background(), primitive.NewObjectID().Hex())
		assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
	})
}

func TestCartRepository_DeleteMany(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("reports deleted count", func(mt *mtest.T) {
		repo := &CartRepository{col: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 2}))

		n, err := repo.DeleteMany(context.Background(), []string{
			primitive.NewObjectID().Hex(),
			primitive.NewObjectID().Hex(),
			"not-an-object-id",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	mt.Run("only invalid ids skips the round trip", func(mt *mtest.T) {
		repo := &CartRepository{col: mt.Coll}

		n, err := repo.DeleteMany(context.Background(), []string{"x", "y"})
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)
	})
}

func TestUserRepository_FindByEmail(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		repo := &UserRepository{col: mt.Coll}
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "bistro.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: oid},
			{Key: "email", Value: "admin@example.com"},
			{Key: "role", Value: "admin"},
		}))

		u, err := repo.FindByEmail(context.Background(), "admin@example.com")
		require.NoError(t, err)
		assert.Equal(t, oid.Hex(), u.ID)
		assert.True(t, u.IsAdmin())
	})

	mt.Run("missing", func(mt *mtest.T) {
		repo := &UserRepository{col: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "bistro.users", mtest.FirstBatch))

		_, err := repo.FindByEmail(context.Background(), "ghost@example.com")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestObjectIDs_SkipsInvalid(t *testing.T) {
	valid := primitive.NewObjectID()
	got := objectIDs([]string{valid.Hex(), "", "zzz"})
	require.Len(t, got, 1)
	assert.Equal(t, valid, got[0])
}
