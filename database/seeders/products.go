package seeders

import (
	"context"
	"errors"
	"fmt"

	"github.com/shashiranjanraj/eggstore/app/models"
	"github.com/shashiranjanraj/eggstore/app/repositories"
	"github.com/shashiranjanraj/eggstore/pkg/logger"
	"github.com/shashiranjanraj/eggstore/pkg/metrics"
)

func init() {
	Register("products", SeedProducts)
}

// SampleProducts returns the fixed demo catalogue inserted into an empty
// store.
func SampleProducts() []models.Product {
	return []models.Product{
		{
			Title:       "Free-Range Eggs (12 pcs)",
			Description: "Fresh farm free-range chicken eggs. Rich yolks and great taste.",
			Price:       4.99,
			Category:    "chicken",
			InStock:     true,
			Image:       "https://images.unsplash.com/photo-1517959105821-eaf2591984dd?q=80&w=1200&auto=format&fit=crop",
		},
		{
			Title:       "Organic Eggs (12 pcs)",
			Description: "Certified organic eggs from pasture-raised hens.",
			Price:       5.99,
			Category:    "organic",
			InStock:     true,
			Image:       "https://images.unsplash.com/photo-1518806118471-f28b20a1d79d?q=80&w=1200&auto=format&fit=crop",
		},
		{
			Title:       "Omega-3 Enriched Eggs (12 pcs)",
			Description: "Omega-3 enriched for a healthier choice.",
			Price:       6.49,
			Category:    "enriched",
			InStock:     true,
			Image:       "https://images.unsplash.com/photo-1522335789203-aabd1fc54bc9?q=80&w=1200&auto=format&fit=crop",
		},
		{
			Title:       "Quail Eggs (24 pcs)",
			Description: "Delicate and delicious quail eggs.",
			Price:       7.49,
			Category:    "quail",
			InStock:     true,
			Image:       "https://images.unsplash.com/photo-1577208288347-0d412b7a4f35?q=80&w=1200&auto=format&fit=crop",
		},
		{
			Title:       "Duck Eggs (6 pcs)",
			Description: "Large and rich duck eggs for special recipes.",
			Price:       4.49,
			Category:    "duck",
			InStock:     true,
			Image:       "https://images.unsplash.com/photo-1517957741781-7f3fd1563bb3?q=80&w=1200&auto=format&fit=crop",
		},
	}
}

// SeedProducts inserts the sample catalogue iff the product collection is
// empty. With no store behind the repository, or with ≥1 product already
// present, it is a no-op.
func SeedProducts(ctx context.Context, deps Deps) error {
	count, err := deps.Products.Count(ctx)
	if errors.Is(err, repositories.ErrUnavailable) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, p := range SampleProducts() {
		if err := deps.Products.Insert(ctx, &p); err != nil {
			return fmt.Errorf("insert %q: %w", p.Title, err)
		}
		metrics.ProductsSeeded.Inc()
	}

	logger.Info("catalogue seeded", "products", len(SampleProducts()))
	return nil
}
