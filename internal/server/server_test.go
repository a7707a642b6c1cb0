package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/commutewell/internal/models"
	"github.com/julianstephens/commutewell/internal/storage"
	"github.com/julianstephens/commutewell/internal/traffic"
)

func testServer(t *testing.T) (*Server, http.Handler) {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, store.Init())
	require.NoError(t, store.Load())
	t.Cleanup(func() { store.Close() })

	srv := New(store, traffic.StaticAnnotator{})
	return srv, srv.Handler()
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func validRouteBody() map[string]interface{} {
	return map[string]interface{}{
		"name":           "Evening Drive",
		"origin":         "Lathrop, CA",
		"destination":    "San Francisco, CA",
		"departureStart": "17:00",
		"departureEnd":   "20:00",
		"transportModes": []string{"drive"},
		"isActive":       true,
	}
}

func TestCreateAndListRoutes(t *testing.T) {
	_, handler := testServer(t)

	rec := doJSON(t, handler, http.MethodPost, "/api/routes", validRouteBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decode[models.CommuteRoute](t, rec)
	assert.NotEmpty(t, created.ID, "server must assign the route ID")
	assert.Equal(t, "Evening Drive", created.Name)

	rec = doJSON(t, handler, http.MethodGet, "/api/routes", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	routes := decode[[]models.CommuteRoute](t, rec)
	require.Len(t, routes, 1)
	assert.Equal(t, created.ID, routes[0].ID)
}

func TestCreateRouteValidation(t *testing.T) {
	_, handler := testServer(t)

	tests := []struct {
		name      string
		mutate    func(map[string]interface{})
		wantField string
	}{
		{"missing name", func(b map[string]interface{}) { b["name"] = "" }, "name"},
		{"missing origin", func(b map[string]interface{}) { b["origin"] = "  " }, "origin"},
		{"missing destination", func(b map[string]interface{}) { b["destination"] = "" }, "destination"},
		{"bad departure start", func(b map[string]interface{}) { b["departureStart"] = "5pm" }, "departureStart"},
		{"bad departure end", func(b map[string]interface{}) { b["departureEnd"] = "25:00" }, "departureEnd"},
		{"no transport modes", func(b map[string]interface{}) { b["transportModes"] = []string{} }, "transportModes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := validRouteBody()
			tt.mutate(body)

			rec := doJSON(t, handler, http.MethodPost, "/api/routes", body)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			errBody := decode[map[string]string](t, rec)
			assert.Equal(t, tt.wantField, errBody["field"])
			assert.NotEmpty(t, errBody["message"])
		})
	}
}

func TestCreateRouteRejectsMalformedJSON(t *testing.T) {
	_, handler := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/routes", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetRoute(t *testing.T) {
	_, handler := testServer(t)

	rec := doJSON(t, handler, http.MethodPost, "/api/routes", validRouteBody())
	created := decode[models.CommuteRoute](t, rec)

	rec = doJSON(t, handler, http.MethodGet, "/api/routes/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[models.CommuteRoute](t, rec)
	assert.Equal(t, created, got)

	rec = doJSON(t, handler, http.MethodGet, "/api/routes/nope", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	errBody := decode[map[string]string](t, rec)
	assert.Equal(t, "Route not found", errBody["message"])
}

func TestUpdateRoute(t *testing.T) {
	_, handler := testServer(t)

	rec := doJSON(t, handler, http.MethodPost, "/api/routes", validRouteBody())
	created := decode[models.CommuteRoute](t, rec)

	rec = doJSON(t, handler, http.MethodPut, "/api/routes/"+created.ID, map[string]interface{}{
		"name":     "Late Drive",
		"isActive": false,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	updated := decode[models.CommuteRoute](t, rec)
	assert.Equal(t, "Late Drive", updated.Name)
	assert.False(t, updated.IsActive)
	// Untouched fields survive the partial update.
	assert.Equal(t, created.Origin, updated.Origin)
	assert.Equal(t, created.DepartureStart, updated.DepartureStart)
}

func TestUpdateRouteValidation(t *testing.T) {
	_, handler := testServer(t)

	rec := doJSON(t, handler, http.MethodPost, "/api/routes", validRouteBody())
	created := decode[models.CommuteRoute](t, rec)

	rec = doJSON(t, handler, http.MethodPut, "/api/routes/"+created.ID, map[string]interface{}{
		"name": "",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	errBody := decode[map[string]string](t, rec)
	assert.Equal(t, "name", errBody["field"])

	rec = doJSON(t, handler, http.MethodPut, "/api/routes/nope", map[string]interface{}{
		"name": "x",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetPrediction(t *testing.T) {
	_, handler := testServer(t)

	rec := doJSON(t, handler, http.MethodPost, "/api/routes", validRouteBody())
	created := decode[models.CommuteRoute](t, rec)

	rec = doJSON(t, handler, http.MethodGet, "/api/routes/"+created.ID+"/prediction", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	pred := decode[models.TrafficPrediction](t, rec)
	assert.Equal(t, created.ID, pred.CurrentStatus.RouteID)
	assert.NotEmpty(t, pred.CurrentStatus.Status)
	assert.NotEmpty(t, pred.CurrentStatus.Recommendation)
	assert.NotEmpty(t, pred.CurrentStatus.Explanation)
	assert.NotEmpty(t, pred.Forecast)
	assert.NotEmpty(t, pred.BestDepartureTime)

	rec = doJSON(t, handler, http.MethodGet, "/api/routes/nope/prediction", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeviceSync(t *testing.T) {
	_, handler := testServer(t)

	rec := doJSON(t, handler, http.MethodPost, "/api/device/sync", map[string]string{"status": "green"})
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[map[string]bool](t, rec)
	assert.True(t, resp["success"])

	rec = doJSON(t, handler, http.MethodPost, "/api/device/sync", map[string]string{"status": "purple"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	errBody := decode[map[string]string](t, rec)
	assert.Equal(t, "status", errBody["field"])
}

func TestSeed(t *testing.T) {
	srv, handler := testServer(t)

	require.NoError(t, srv.Seed())
	rec := doJSON(t, handler, http.MethodGet, "/api/routes", nil)
	routes := decode[[]models.CommuteRoute](t, rec)
	require.Len(t, routes, 1)
	assert.Equal(t, "Daily Commute", routes[0].Name)

	// Seeding again must not duplicate the starter route.
	require.NoError(t, srv.Seed())
	rec = doJSON(t, handler, http.MethodGet, "/api/routes", nil)
	assert.Len(t, decode[[]models.CommuteRoute](t, rec), 1)
}
