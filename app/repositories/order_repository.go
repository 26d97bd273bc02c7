package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/eggstore/app/models"
	"github.com/shashiranjanraj/eggstore/pkg/database"
)

// OrderRepository persists accepted orders.
type OrderRepository interface {
	// Insert stores the order and returns its assigned id as a string.
	Insert(ctx context.Context, o *models.Order) (string, error)
}

type mongoOrderRepository struct {
	col *mongo.Collection
}

// NewOrderRepository returns the Mongo-backed order repository.
func NewOrderRepository(db *database.Mongo) OrderRepository {
	return &mongoOrderRepository{col: db.Collection(models.OrderCollection)}
}

func (r *mongoOrderRepository) Insert(ctx context.Context, o *models.Order) (string, error) {
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}

	res, err := r.col.InsertOne(ctx, o)
	if err != nil {
		return "", fmt.Errorf("orders: insert: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("orders: unexpected inserted id type %T", res.InsertedID)
	}
	o.ID = oid
	return oid.Hex(), nil
}
