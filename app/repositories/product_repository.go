package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/eggstore/app/models"
	"github.com/shashiranjanraj/eggstore/pkg/database"
)

// ProductRepository handles catalogue reads and writes.
type ProductRepository interface {
	// All returns every product in natural (insertion) order.
	All(ctx context.Context) ([]models.Product, error)
	// FindByID resolves a product by its string ObjectID.
	// Malformed or unknown ids return ErrNotFound.
	FindByID(ctx context.Context, id string) (models.Product, error)
	// Insert persists a new product and fills in its ID.
	Insert(ctx context.Context, p *models.Product) error
	// Count returns the number of products in the catalogue.
	Count(ctx context.Context) (int64, error)
}

type mongoProductRepository struct {
	col *mongo.Collection
}

// NewProductRepository returns the Mongo-backed catalogue repository.
func NewProductRepository(db *database.Mongo) ProductRepository {
	return &mongoProductRepository{col: db.Collection(models.ProductCollection)}
}

func (r *mongoProductRepository) All(ctx context.Context) ([]models.Product, error) {
	cursor, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("products: find: %w", err)
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("products: decode: %w", err)
	}
	return products, nil
}

func (r *mongoProductRepository) FindByID(ctx context.Context, id string) (models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Malformed ids behave exactly like missing ones.
		return models.Product{}, ErrNotFound
	}

	var product models.Product
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Product{}, ErrNotFound
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("products: find %s: %w", id, err)
	}
	return product, nil
}

func (r *mongoProductRepository) Insert(ctx context.Context, p *models.Product) error {
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return fmt.Errorf("products: insert: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}
	return nil
}

func (r *mongoProductRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.col.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("products: count: %w", err)
	}
	return n, nil
}
