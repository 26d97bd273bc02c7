package routes

import (
	"github.com/shashiranjanraj/eggstore/app/controllers"
	"github.com/shashiranjanraj/eggstore/pkg/metrics"
	"github.com/shashiranjanraj/eggstore/pkg/router"
)

// Controllers bundles the handler set mounted by RegisterAPI.
type Controllers struct {
	Products *controllers.ProductController
	Orders   *controllers.OrderController
	Status   *controllers.StatusController
}

// RegisterAPI mounts the storefront routes.
func RegisterAPI(r *router.Router, c Controllers) {
	r.Get("/", "home", c.Status.Home)
	r.Get("/test", "diagnostics", c.Status.Test)
	r.Get("/metrics", "metrics", metrics.Handler())

	api := r.Group("/api")
	api.Get("/products", "products.list", c.Products.List)
	api.Post("/orders", "orders.create", c.Orders.Create)
}
