package repositories

import (
	"context"

	"github.com/shashiranjanraj/eggstore/app/models"
)

// NullProductRepository is the catalogue port used when no store is
// configured. Every operation reports ErrUnavailable; the product
// controller serves the demo catalogue instead.
type NullProductRepository struct{}

func NewNullProductRepository() NullProductRepository { return NullProductRepository{} }

func (NullProductRepository) All(context.Context) ([]models.Product, error) {
	return nil, ErrUnavailable
}

func (NullProductRepository) FindByID(context.Context, string) (models.Product, error) {
	return models.Product{}, ErrUnavailable
}

func (NullProductRepository) Insert(context.Context, *models.Product) error {
	return ErrUnavailable
}

func (NullProductRepository) Count(context.Context) (int64, error) {
	return 0, ErrUnavailable
}

// NullOrderRepository is the order port used when no store is configured.
// The order controller converts its ErrUnavailable into the placeholder
// order id so checkout still completes.
type NullOrderRepository struct{}

func NewNullOrderRepository() NullOrderRepository { return NullOrderRepository{} }

func (NullOrderRepository) Insert(context.Context, *models.Order) (string, error) {
	return "", ErrUnavailable
}
