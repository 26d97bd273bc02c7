package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shashiranjanraj/eggstore/pkg/router"
)

func ok(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestGroupPrefixing(t *testing.T) {
	r := router.New()
	api := r.Group("/api")
	api.Get("/products", "products.list", ok)
	api.Post("/orders", "orders.create", ok)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("GET /api/products: expected 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products", nil))
	if rec.Code == http.StatusOK {
		t.Error("route must only be mounted under the group prefix")
	}
}

func TestNamedRoutes(t *testing.T) {
	r := router.New()
	r.Get("/test", "diagnostics", ok)
	r.Group("/api").Post("/orders", "orders.create", ok)

	infos := r.Routes()
	if len(infos) != 2 {
		t.Fatalf("expected 2 named routes, got %d", len(infos))
	}

	byName := map[string]router.RouteInfo{}
	for _, ri := range infos {
		byName[ri.Name] = ri
	}
	if ri := byName["orders.create"]; ri.Path != "/api/orders" || ri.Method != http.MethodPost {
		t.Errorf("unexpected route info: %+v", ri)
	}
}

func TestMiddlewareRunsOutsideIn(t *testing.T) {
	var order []string
	mw := func(name string) router.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	r := router.New()
	r.Use(mw("outer"))
	r.Get("/", "home", ok, mw("inner"))

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if len(order) != 2 || order[0] != "outer" || order[1] != "inner" {
		t.Errorf("unexpected middleware order: %v", order)
	}
}
