package controllers

import (
	"net/http"
	"os"

	"github.com/shashiranjanraj/eggstore/pkg/database"
	"github.com/shashiranjanraj/eggstore/pkg/response"
)

// Diagnostic status strings. The emoji dialect is part of the API: the
// storefront's operational dashboard matches on these exact values.
const (
	statusRunning      = "✅ Running"
	statusNotAvailable = "❌ Not Available"
	statusWorking      = "✅ Connected & Working"
	statusEnumError    = "⚠️  Connected but Error: "
	statusEnvSet       = "✅ Set"
	statusEnvNotSet    = "❌ Not Set"
)

// Diagnostics is the GET /test response body.
type Diagnostics struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// StatusController serves liveness and store diagnostics.
// db is nil when no store is connected.
type StatusController struct {
	db *database.Mongo
}

func NewStatusController(db *database.Mongo) *StatusController {
	return &StatusController{db: db}
}

// Home handles GET /. A static liveness message, nothing more.
func (c *StatusController) Home(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, map[string]string{"message": "Egg Store Backend is running"})
}

// Test handles GET /test: read-only introspection of the store connection.
// It never fails regardless of storage state.
func (c *StatusController) Test(w http.ResponseWriter, r *http.Request) {
	d := Diagnostics{
		Backend:          statusRunning,
		Database:         statusNotAvailable,
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if c.db != nil {
		d.ConnectionStatus = "Connected"
		names, err := c.db.CollectionNames(r.Context(), 10)
		if err != nil {
			d.Database = statusEnumError + truncate(err.Error(), 50)
		} else {
			d.Database = statusWorking
			if names != nil {
				d.Collections = names
			}
		}
	}

	d.DatabaseURL = envFlag("DATABASE_URL")
	d.DatabaseName = envFlag("DATABASE_NAME")

	response.OK(w, d)
}

func envFlag(key string) string {
	if os.Getenv(key) != "" {
		return statusEnvSet
	}
	return statusEnvNotSet
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
