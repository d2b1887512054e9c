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

// MenuRepository implements ports.MenuRepository.
type MenuRepository struct {
	col *mongo.Collection
}

func NewMenuRepository(db *mongo.Database) *MenuRepository {
	return &MenuRepository{col: db.Collection(collectionMenu)}
}

type menuDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"name"`
	Category string             `bson:"category"`
	Price    float64            `bson:"price"`
	Recipe   string             `bson:"recipe"`
	Image    string             `bson:"image"`
}

func (d menuDoc) toDomain() *domain.MenuItem {
	return &domain.MenuItem{
		ID:       d.ID.Hex(),
		Name:     d.Name,
		Category: d.Category,
		Price:    d.Price,
		Recipe:   d.Recipe,
		Image:    d.Image,
	}
}

func (r *MenuRepository) List(ctx context.Context) ([]*domain.MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "category", Value: 1}, {Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}
	var docs []menuDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode menu: %w", err)
	}

	items := make([]*domain.MenuItem, 0, len(docs))
	for _, d := range docs {
		items = append(items, d.toDomain())
	}
	return items, nil
}

func (r *MenuRepository) FindByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMenuItemNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc menuDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMenuItemNotFound
		}
		return nil, fmt.Errorf("find menu item: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MenuRepository) Insert(ctx context.Context, item *domain.MenuItem) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, menuDoc{
		Name:     item.Name,
		Category: item.Category,
		Price:    item.Price,
		Recipe:   item.Recipe,
		Image:    item.Image,
	})
	if err != nil {
		return "", fmt.Errorf("insert menu item: %w", err)
	}
	return insertedHex(res), nil
}

// Update applies the non-nil fields of patch.
func (r *MenuRepository) Update(ctx context.Context, id string, patch domain.MenuItemPatch) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrMenuItemNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.Recipe != nil {
		set["recipe"] = *patch.Recipe
	}
	if patch.Image != nil {
		set["image"] = *patch.Image
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update menu item: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrMenuItemNotFound
	}
	return nil
}

func (r *MenuRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrMenuItemNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete menu item: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrMenuItemNotFound
	}
	return nil
}

// ReviewRepository implements ports.ReviewRepository.
type ReviewRepository struct {
	col *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{col: db.Collection(collectionReviews)}
}

type reviewDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Details   string             `bson:"details"`
	Rating    float64            `bson:"rating"`
	CreatedAt time.Time          `bson:"created_at,omitempty"`
}

func (r *ReviewRepository) List(ctx context.Context) ([]*domain.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	var docs []reviewDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}

	reviews := make([]*domain.Review, 0, len(docs))
	for _, d := range docs {
		reviews = append(reviews, &domain.Review{
			ID:        d.ID.Hex(),
			Name:      d.Name,
			Details:   d.Details,
			Rating:    d.Rating,
			CreatedAt: d.CreatedAt,
		})
	}
	return reviews, nil
}
