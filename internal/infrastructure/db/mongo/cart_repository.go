package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bistroboss/bistro-api/internal/core/domain"
)

// CartRepository implements ports.CartRepository.
type CartRepository struct {
	col *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{col: db.Collection(collectionCarts)}
}

type cartDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	MenuID    string             `bson:"menu_id"`
	Name      string             `bson:"name"`
	Image     string             `bson:"image"`
	Price     float64            `bson:"price"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (r *CartRepository) Insert(ctx context.Context, e *domain.CartEntry) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, cartDoc{
		Email:     e.Email,
		MenuID:    e.MenuID,
		Name:      e.Name,
		Image:     e.Image,
		Price:     e.Price,
		CreatedAt: e.CreatedAt,
	})
	if err != nil {
		return "", fmt.Errorf("insert cart entry: %w", err)
	}
	return insertedHex(res), nil
}

func (r *CartRepository) ListByEmail(ctx context.Context, email string) ([]*domain.CartEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}
	var docs []cartDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}

	entries := make([]*domain.CartEntry, 0, len(docs))
	for _, d := range docs {
		entries = append(entries, &domain.CartEntry{
			ID:        d.ID.Hex(),
			Email:     d.Email,
			MenuID:    d.MenuID,
			Name:      d.Name,
			Image:     d.Image,
			Price:     d.Price,
			CreatedAt: d.CreatedAt,
		})
	}
	return entries, nil
}

func (r *CartRepository) DeleteOne(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCartEntryNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete cart entry: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCartEntryNotFound
	}
	return nil
}

// DeleteMany removes the entries with the given ids in a single $in delete.
func (r *CartRepository) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	oids := objectIDs(ids)
	if len(oids) == 0 {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return 0, fmt.Errorf("delete cart entries: %w", err)
	}
	return res.DeletedCount, nil
}

// EnsureIndexes creates the per-user lookup index.
func (r *CartRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}, {Key: "created_at", Value: 1}},
	})
	return err
}
