package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/eggstore/app/models"
	"github.com/shashiranjanraj/eggstore/app/repositories"
	"github.com/shashiranjanraj/eggstore/pkg/logger"
	"github.com/shashiranjanraj/eggstore/pkg/metrics"
	"github.com/shashiranjanraj/eggstore/pkg/response"
)

// ProductController serves the catalogue.
type ProductController struct {
	products repositories.ProductRepository
}

func NewProductController(products repositories.ProductRepository) *ProductController {
	return &ProductController{products: products}
}

// List handles GET /api/products. The response is a bare JSON array of
// products with string ids. Any storage problem degrades to the demo
// catalogue; this endpoint never fails.
func (c *ProductController) List(w http.ResponseWriter, r *http.Request) {
	products, err := c.products.All(r.Context())
	if err != nil {
		if !errors.Is(err, repositories.ErrUnavailable) {
			logger.WithCtx(r.Context()).Warn("catalogue read failed, serving demo data", "error", err)
		}
		metrics.StoreFallbacks.WithLabelValues("list_products").Inc()
		response.OK(w, []models.ProductView{models.DemoProduct()})
		return
	}

	views := make([]models.ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, p.View())
	}
	response.OK(w, views)
}
