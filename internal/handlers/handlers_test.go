package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/camshaft/carcatalog/pkg/database"
	"github.com/camshaft/carcatalog/pkg/database/migration"
	"github.com/camshaft/carcatalog/pkg/database/models"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *mux.Router {
	t.Helper()
	db, err := database.NewTestDB()
	require.NoError(t, err, "Failed to open test database")
	require.NoError(t, migration.RunMigration(db), "Failed to migrate test database")
	return NewAPI(db).NewRouter()
}

func doRequest(t *testing.T, router *mux.Router, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func TestMakeLifecycle(t *testing.T) {
	router := setupRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/makes?new_make_name=BMW", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var confirmation string
	decodeJSON(t, rec, &confirmation)
	assert.Equal(t, "Make added successfully.", confirmation)

	rec = doRequest(t, router, http.MethodGet, "/makes", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var makes []models.Make
	decodeJSON(t, rec, &makes)
	require.Len(t, makes, 1)
	assert.Equal(t, "BMW", makes[0].Name)
}

func TestAddMakeRequiresName(t *testing.T) {
	router := setupRouter(t)
	rec := doRequest(t, router, http.MethodPost, "/makes", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestModelsUnknownMakeReturns404(t *testing.T) {
	router := setupRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/models?make_name=Ghost", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	var errBody struct {
		Detail string `json:"detail"`
	}
	decodeJSON(t, rec, &errBody)
	assert.Contains(t, errBody.Detail, "Ghost")

	rec = doRequest(t, router, http.MethodPost, "/models?make_name=Ghost&new_model_name=M3", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTransmissionScenario(t *testing.T) {
	router := setupRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/transmissions", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []models.Transmission
	decodeJSON(t, rec, &listed)
	assert.Empty(t, listed)

	rec = doRequest(t, router, http.MethodPost, "/transmissions",
		map[string]string{"name": "Manual", "type": "6-speed"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/transmissions", nil)
	decodeJSON(t, rec, &listed)
	require.Len(t, listed, 1)
	assert.EqualValues(t, 1, listed[0].ID)
	assert.Equal(t, "Manual", listed[0].Name)

	rec = doRequest(t, router, http.MethodPut, "/transmissions/Manual",
		map[string]string{"name": "Manual6", "type": "6-speed-updated"})
	require.Equal(t, http.StatusOK, rec.Code)
	var updated models.Transmission
	decodeJSON(t, rec, &updated)
	assert.Equal(t, "Manual6", updated.Name)

	rec = doRequest(t, router, http.MethodGet, "/transmissions", nil)
	decodeJSON(t, rec, &listed)
	require.Len(t, listed, 1)
	assert.EqualValues(t, 1, listed[0].ID)
	assert.Equal(t, "Manual6", listed[0].Name)
	assert.Equal(t, "6-speed-updated", listed[0].Type)

	// Update by the stale name is a 404
	rec = doRequest(t, router, http.MethodPut, "/transmissions/Manual",
		map[string]string{"name": "x", "type": "y"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, router, http.MethodDelete, "/transmissions/Manual6", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/transmissions", nil)
	decodeJSON(t, rec, &listed)
	assert.Empty(t, listed)

	// Deleting again is still a 200
	rec = doRequest(t, router, http.MethodDelete, "/transmissions/Manual6", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAggregateTreeCachingAndInvalidation(t *testing.T) {
	router := setupRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/makes?new_make_name=BMW", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// First /all snapshots the tree
	rec = doRequest(t, router, http.MethodGet, "/all", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var tree []struct {
		Name   string `json:"name"`
		Models []struct {
			Name string `json:"name"`
		} `json:"models"`
	}
	decodeJSON(t, rec, &tree)
	require.Len(t, tree, 1)
	assert.Empty(t, tree[0].Models)

	// A new make does not invalidate the snapshot
	rec = doRequest(t, router, http.MethodPost, "/makes?new_make_name=Audi", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doRequest(t, router, http.MethodGet, "/all", nil)
	decodeJSON(t, rec, &tree)
	assert.Len(t, tree, 1)

	// A new model does
	rec = doRequest(t, router, http.MethodPost, "/models?make_name=BMW&new_model_name=M3", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doRequest(t, router, http.MethodGet, "/all", nil)
	decodeJSON(t, rec, &tree)
	require.Len(t, tree, 2)
	require.Len(t, tree[0].Models, 1)
	assert.Equal(t, "M3", tree[0].Models[0].Name)
}

func TestFullHierarchyEndpoints(t *testing.T) {
	router := setupRouter(t)

	require.Equal(t, http.StatusOK,
		doRequest(t, router, http.MethodPost, "/makes?new_make_name=Nissan", nil).Code)
	require.Equal(t, http.StatusOK,
		doRequest(t, router, http.MethodPost, "/models?make_name=Nissan&new_model_name=Skyline", nil).Code)
	require.Equal(t, http.StatusOK,
		doRequest(t, router, http.MethodPost, "/generations?model_name=Skyline&generation_name=R34", nil).Code)
	require.Equal(t, http.StatusOK,
		doRequest(t, router, http.MethodPost, "/chassiscodes?model_name=Skyline&generation_name=R34&chassis_code_name=BNR34", nil).Code)
	require.Equal(t, http.StatusOK,
		doRequest(t, router, http.MethodPost, "/trims", map[string]string{"name": "GT-R", "model": "Skyline"}).Code)

	rec := doRequest(t, router, http.MethodGet, "/generations?model_name=Skyline", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var generations []models.Generation
	decodeJSON(t, rec, &generations)
	require.Len(t, generations, 1)

	rec = doRequest(t, router, http.MethodGet, "/chassiscodes?generation_name=R34", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var codes []models.ChassisCode
	decodeJSON(t, rec, &codes)
	require.Len(t, codes, 1)

	rec = doRequest(t, router, http.MethodGet, "/trims?model_name=Skyline", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var trims []models.Trim
	decodeJSON(t, rec, &trims)
	require.Len(t, trims, 1)

	car := map[string]interface{}{
		"year":   1999,
		"weight": 1560,
		"length": 4.6,
		"width":  1.79,
		"engines": []map[string]interface{}{{
			"name": "RB26DETT", "hp": 276, "tq": 260, "aspiration": "TT",
			"displacement": 2.6, "cylinders": 6, "configuration": "I6",
			"redline": 8000, "dry_weight": 255,
		}},
		"transmissions": []map[string]string{{"name": "Getrag 233", "type": "6-speed manual"}},
		"bodystyles":    []map[string]string{{"name": "Coupe"}},
	}
	rec = doRequest(t, router, http.MethodPost, "/cars?trim_name=GT-R&chassis_code_name=BNR34", car)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/cars?trim_name=GT-R", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var cars []models.Car
	decodeJSON(t, rec, &cars)
	require.Len(t, cars, 1)
	assert.Equal(t, 1999, cars[0].Year)
	assert.Len(t, cars[0].Engines, 1)

	rec = doRequest(t, router, http.MethodGet, "/engines", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var engines []models.Engine
	decodeJSON(t, rec, &engines)
	require.Len(t, engines, 1)
	assert.Equal(t, "RB26DETT", engines[0].Name)
}

func TestDeleteModelEndpointCascades(t *testing.T) {
	router := setupRouter(t)

	require.Equal(t, http.StatusOK,
		doRequest(t, router, http.MethodPost, "/makes?new_make_name=BMW", nil).Code)
	require.Equal(t, http.StatusOK,
		doRequest(t, router, http.MethodPost, "/models?make_name=BMW&new_model_name=M3", nil).Code)
	require.Equal(t, http.StatusOK,
		doRequest(t, router, http.MethodPost, "/trims", map[string]string{"name": "Competition", "model": "M3"}).Code)

	rec := doRequest(t, router, http.MethodDelete, "/models/BMW/M3", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var confirmation string
	decodeJSON(t, rec, &confirmation)
	assert.Equal(t, "Model deleted successfully", confirmation)

	// Parent model is gone, so its trims can no longer be listed
	rec = doRequest(t, router, http.MethodGet, "/trims?model_name=M3", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, router, http.MethodDelete, "/models/BMW/M3", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
