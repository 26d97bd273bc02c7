package seeders_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/eggstore/app/models"
	"github.com/shashiranjanraj/eggstore/app/repositories"
	"github.com/shashiranjanraj/eggstore/database/seeders"
)

// memProductRepo is a minimal in-memory catalogue whose Count reflects
// inserts, so re-running the seeder sees a non-empty collection.
type memProductRepo struct {
	products []models.Product
}

func (m *memProductRepo) All(context.Context) ([]models.Product, error) {
	return m.products, nil
}

func (m *memProductRepo) FindByID(context.Context, string) (models.Product, error) {
	return models.Product{}, repositories.ErrNotFound
}

func (m *memProductRepo) Insert(_ context.Context, p *models.Product) error {
	p.ID = primitive.NewObjectID()
	m.products = append(m.products, *p)
	return nil
}

func (m *memProductRepo) Count(context.Context) (int64, error) {
	return int64(len(m.products)), nil
}

func TestSeedProductsFillsEmptyCatalogue(t *testing.T) {
	repo := &memProductRepo{}

	require.NoError(t, seeders.SeedProducts(context.Background(), seeders.Deps{Products: repo}))

	require.Len(t, repo.products, 5)

	wantTitles := []string{
		"Free-Range Eggs (12 pcs)",
		"Organic Eggs (12 pcs)",
		"Omega-3 Enriched Eggs (12 pcs)",
		"Quail Eggs (24 pcs)",
		"Duck Eggs (6 pcs)",
	}
	wantPrices := []float64{4.99, 5.99, 6.49, 7.49, 4.49}
	wantCategories := []string{"chicken", "organic", "enriched", "quail", "duck"}

	for i, p := range repo.products {
		assert.Equal(t, wantTitles[i], p.Title)
		assert.Equal(t, wantPrices[i], p.Price)
		assert.Equal(t, wantCategories[i], p.Category)
		assert.True(t, p.InStock)
		assert.NotEmpty(t, p.Image)
	}
}

func TestSeedProductsSkipsNonEmptyCatalogue(t *testing.T) {
	repo := &memProductRepo{}
	existing := models.Product{Title: "Goose Eggs (4 pcs)", Price: 9.99}
	require.NoError(t, repo.Insert(context.Background(), &existing))

	require.NoError(t, seeders.SeedProducts(context.Background(), seeders.Deps{Products: repo}))

	// One record is enough to suppress seeding entirely.
	assert.Len(t, repo.products, 1)
}

func TestSeedProductsRunsOnce(t *testing.T) {
	repo := &memProductRepo{}
	deps := seeders.Deps{Products: repo}

	require.NoError(t, seeders.SeedProducts(context.Background(), deps))
	require.NoError(t, seeders.SeedProducts(context.Background(), deps))

	assert.Len(t, repo.products, 5, "re-running on a seeded catalogue is a no-op")
}

func TestSeedProductsWithoutStore(t *testing.T) {
	deps := seeders.Deps{Products: repositories.NewNullProductRepository()}
	assert.NoError(t, seeders.SeedProducts(context.Background(), deps))
}

func TestRunAllIncludesProductSeeder(t *testing.T) {
	repo := &memProductRepo{}
	require.NoError(t, seeders.RunAll(context.Background(), seeders.Deps{Products: repo}))
	assert.Len(t, repo.products, 5)
}
