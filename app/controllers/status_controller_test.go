package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/eggstore/app/controllers"
)

func TestHome(t *testing.T) {
	c := controllers.NewStatusController(nil)

	rec := httptest.NewRecorder()
	c.Home(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message": "Egg Store Backend is running"}`, rec.Body.String())
}

func TestDiagnosticsWithoutStore(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_NAME", "")

	c := controllers.NewStatusController(nil)

	rec := httptest.NewRecorder()
	c.Test(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

	require.Equal(t, http.StatusOK, rec.Code, "diagnostics never fail")

	var d controllers.Diagnostics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &d))
	assert.Equal(t, "✅ Running", d.Backend)
	assert.Equal(t, "❌ Not Available", d.Database)
	assert.Equal(t, "Not Connected", d.ConnectionStatus)
	assert.Equal(t, "❌ Not Set", d.DatabaseURL)
	assert.Equal(t, "❌ Not Set", d.DatabaseName)
	assert.NotNil(t, d.Collections)
	assert.Empty(t, d.Collections)
}

func TestDiagnosticsEnvFlags(t *testing.T) {
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("DATABASE_NAME", "eggstore")

	c := controllers.NewStatusController(nil)

	rec := httptest.NewRecorder()
	c.Test(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

	var d controllers.Diagnostics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &d))
	assert.Equal(t, "✅ Set", d.DatabaseURL)
	assert.Equal(t, "✅ Set", d.DatabaseName)
}
