// Package server boots the egg store: config, log sinks, the document
// store (or its null stand-in), the seeders, and the HTTP surface.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/shashiranjanraj/eggstore/app/controllers"
	"github.com/shashiranjanraj/eggstore/app/repositories"
	"github.com/shashiranjanraj/eggstore/app/routes"
	"github.com/shashiranjanraj/eggstore/config"
	"github.com/shashiranjanraj/eggstore/database/seeders"
	"github.com/shashiranjanraj/eggstore/pkg/database"
	"github.com/shashiranjanraj/eggstore/pkg/logger"
	"github.com/shashiranjanraj/eggstore/pkg/metrics"
	"github.com/shashiranjanraj/eggstore/pkg/middleware"
	"github.com/shashiranjanraj/eggstore/pkg/reqid"
	"github.com/shashiranjanraj/eggstore/pkg/router"
)

// LogCollection is the Mongo collection receiving mirrored log records.
const LogCollection = "log"

// Start runs the HTTP server until it fails. Seeding runs once before any
// traffic is served.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	bootCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	db := ConnectStore(bootCtx)
	productRepo, orderRepo := BuildRepositories(db)

	if db != nil {
		// Mirror log records into the store alongside the business data.
		sink := logger.NewMongoHandler(db.Collection(LogCollection))
		logger.SetHandler(logger.NewMultiHandler(logger.L.Handler(), sink))
	}

	if err := seeders.RunAll(bootCtx, seeders.Deps{Products: productRepo}); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	r := NewRouter(routes.Controllers{
		Products: controllers.NewProductController(productRepo),
		Orders:   controllers.NewOrderController(productRepo, orderRepo),
		Status:   controllers.NewStatusController(db),
	})

	addr := ":" + config.AppPort()
	logger.Info("egg store listening", "addr", addr, "env", config.AppEnv())
	return http.ListenAndServe(addr, r.Handler())
}

// NewRouter builds the router with the full middleware chain.
func NewRouter(c routes.Controllers) *router.Router {
	r := router.New()
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	r.Use(metrics.Middleware())
	r.Use(reqid.Middleware())
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	routes.RegisterAPI(r, c)
	return r
}

// ConnectStore opens the document store. Both "not configured" and
// "unreachable" degrade to a nil handle with a logged warning: the
// storefront serves demo data rather than refusing to start.
func ConnectStore(ctx context.Context) *database.Mongo {
	db, err := database.Connect(ctx)
	switch {
	case errors.Is(err, database.ErrNotConfigured):
		logger.Warn("DATABASE_URL not set, serving demo data")
		return nil
	case err != nil:
		logger.Warn("document store unreachable, serving demo data", "error", err)
		return nil
	}
	logger.Info("connected to MongoDB", "database", db.Name())
	return db
}

// BuildRepositories selects the repository variants once, at startup:
// Mongo-backed when a store handle exists, null otherwise.
func BuildRepositories(db *database.Mongo) (repositories.ProductRepository, repositories.OrderRepository) {
	if db == nil {
		return repositories.NewNullProductRepository(), repositories.NewNullOrderRepository()
	}
	return repositories.NewProductRepository(db), repositories.NewOrderRepository(db)
}
