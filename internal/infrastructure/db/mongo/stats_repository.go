package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bistroboss/bistro-api/internal/core/domain"
)

// StatsRepository runs the dashboard aggregations. Every figure is read
// with its own query.
type StatsRepository struct {
	db *mongo.Database
}

func NewStatsRepository(db *mongo.Database) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) CountUsers(ctx context.Context) (int64, error) {
	return r.estimatedCount(ctx, collectionUsers)
}

func (r *StatsRepository) CountMenuItems(ctx context.Context) (int64, error) {
	return r.estimatedCount(ctx, collectionMenu)
}

// CountPayments counts orders of every status, pending included.
func (r *StatsRepository) CountPayments(ctx context.Context) (int64, error) {
	return r.estimatedCount(ctx, collectionPayments)
}

func (r *StatsRepository) estimatedCount(ctx context.Context, collection string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.db.Collection(collection).EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", collection, err)
	}
	return n, nil
}

// SumRevenue totals the price of every payment regardless of status. Pending
// gateway payments that were abandoned are counted too.
func (r *StatsRepository) SumRevenue(ctx context.Context) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$price"}}},
		}}},
	}
	cur, err := r.db.Collection(collectionPayments).Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("sum revenue: %w", err)
	}
	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return 0, fmt.Errorf("decode revenue: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}

// RevenueByCategory expands each payment's menu item ids, joins them against
// the menu and groups by category. Ids that do not resolve to a menu item
// are dropped.
func (r *StatsRepository) RevenueByCategory(ctx context.Context) ([]domain.CategoryStats, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$menu_item_ids"}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "menu_oid", Value: bson.D{{Key: "$convert", Value: bson.D{
				{Key: "input", Value: "$menu_item_ids"},
				{Key: "to", Value: "objectId"},
				{Key: "onError", Value: nil},
				{Key: "onNull", Value: nil},
			}}}},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: collectionMenu},
			{Key: "localField", Value: "menu_oid"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "item"},
		}}},
		{{Key: "$unwind", Value: "$item"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$item.category"},
			{Key: "quantity", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "revenue", Value: bson.D{{Key: "$sum", Value: "$item.price"}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "category", Value: "$_id"},
			{Key: "quantity", Value: 1},
			{Key: "revenue", Value: 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "category", Value: 1}}}},
	}

	cur, err := r.db.Collection(collectionPayments).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("order stats: %w", err)
	}
	var rows []struct {
		Category string  `bson:"category"`
		Quantity int64   `bson:"quantity"`
		Revenue  float64 `bson:"revenue"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode order stats: %w", err)
	}

	stats := make([]domain.CategoryStats, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, domain.CategoryStats{
			Category: row.Category,
			Quantity: row.Quantity,
			Revenue:  row.Revenue,
		})
	}
	return stats, nil
}
