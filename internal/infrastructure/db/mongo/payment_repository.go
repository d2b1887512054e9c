package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bistroboss/bistro-api/internal/core/domain"
)

// PaymentRepository implements ports.PaymentRepository.
type PaymentRepository struct {
	col *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{col: db.Collection(collectionPayments)}
}

type paymentDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Email         string             `bson:"email"`
	Price         float64            `bson:"price"`
	CartIDs       []string           `bson:"cart_ids"`
	MenuItemIDs   []string           `bson:"menu_item_ids"`
	TransactionID string             `bson:"transaction_id,omitempty"`
	Status        string             `bson:"status"`
	Date          time.Time          `bson:"date"`
	SettledAt     time.Time          `bson:"settled_at,omitempty"`
	CartsCleared  bool               `bson:"carts_cleared"`
}

func (d paymentDoc) toDomain() *domain.Payment {
	p := &domain.Payment{
		ID:            d.ID.Hex(),
		Email:         d.Email,
		Price:         d.Price,
		CartIDs:       d.CartIDs,
		MenuItemIDs:   d.MenuItemIDs,
		TransactionID: d.TransactionID,
		Status:        domain.PaymentStatus(d.Status),
		Date:          d.Date,
		CartsCleared:  d.CartsCleared,
	}
	if !d.SettledAt.IsZero() {
		settled := d.SettledAt.UTC()
		p.SettledAt = &settled
	}
	return p
}

func (r *PaymentRepository) Insert(ctx context.Context, p *domain.Payment) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := paymentDoc{
		Email:         p.Email,
		Price:         p.Price,
		CartIDs:       nonNil(p.CartIDs),
		MenuItemIDs:   nonNil(p.MenuItemIDs),
		TransactionID: p.TransactionID,
		Status:        string(p.Status),
		Date:          p.Date,
		CartsCleared:  p.CartsCleared,
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert payment: %w", err)
	}
	return insertedHex(res), nil
}

func (r *PaymentRepository) FindByTransactionID(ctx context.Context, tranID string) (*domain.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc paymentDoc
	if err := r.col.FindOne(ctx, bson.M{"transaction_id": tranID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("find payment: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PaymentRepository) ListByEmail(ctx context.Context, email string) ([]*domain.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	return r.find(ctx, bson.M{"email": email}, opts)
}

// MarkSucceeded swaps status pending -> success in one FindOneAndUpdate, so
// concurrent callbacks for the same transaction settle it exactly once.
func (r *PaymentRepository) MarkSucceeded(ctx context.Context, tranID string, at time.Time) (*domain.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"transaction_id": tranID,
		"status":         string(domain.PaymentPending),
	}
	update := bson.M{
		"$set": bson.M{
			"status":     string(domain.PaymentSuccess),
			"settled_at": at.UTC(),
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc paymentDoc
	if err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("settle payment: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PaymentRepository) MarkCartsCleared(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPaymentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"carts_cleared": true}})
	if err != nil {
		return fmt.Errorf("mark carts cleared: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPaymentNotFound
	}
	return nil
}

func (r *PaymentRepository) ListUncleared(ctx context.Context, limit int) ([]*domain.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"status":        string(domain.PaymentSuccess),
		"carts_cleared": bson.M{"$ne": true},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	return r.find(ctx, filter, opts)
}

func (r *PaymentRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*domain.Payment, error) {
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find payments: %w", err)
	}
	var docs []paymentDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode payments: %w", err)
	}

	payments := make([]*domain.Payment, 0, len(docs))
	for _, d := range docs {
		payments = append(payments, d.toDomain())
	}
	return payments, nil
}

// EnsureIndexes creates the indexes used by settlement, history and the
// reconciler.
func (r *PaymentRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "transaction_id", Value: 1}}},
		{Keys: bson.D{{Key: "email", Value: 1}, {Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "carts_cleared", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
