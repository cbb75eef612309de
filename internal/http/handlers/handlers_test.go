package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"freightcalc/internal/http/middleware"
	"freightcalc/internal/repositories"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())

	api := r.Group("/api")
	api.POST("/estimate", PostEstimate)
	api.GET("/presets", LoadPreset)
	api.POST("/presets", SavePreset)
	api.GET("/presets/default", DefaultPreset)
	api.POST("/export/csv", ExportCSV)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPostEstimate(t *testing.T) {
	r := newTestRouter()

	body := `{"deadheadKm":50,"legs":[{"id":"a","name":"Leg 1","distanceKm":200}],"consumptionLPer100Km":30,"fuelPricePerLiter":1.5}`
	w := doJSON(t, r, http.MethodPost, "/api/estimate", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp EstimateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if resp.Derived.TotalDistanceKm != 250 {
		t.Fatalf("total distance = %v, want 250", resp.Derived.TotalDistanceKm)
	}
	if resp.Derived.FuelCost != 112.50 {
		t.Fatalf("fuel cost = %v, want 112.50", resp.Derived.FuelCost)
	}
}

func TestPostEstimateInvalidBody(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/estimate", `{broken`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestPresetSaveAndLoad(t *testing.T) {
	SetPresetKV(repositories.NewMemoryKV())
	r := newTestRouter()

	save := `{"name":"night run","trip":{"deadheadKm":10,"legs":[{"id":"a","name":"Úsek 1","distanceKm":90}],"applyVat":false}}`
	w := doJSON(t, r, http.MethodPost, "/api/presets", save)
	if w.Code != http.StatusOK {
		t.Fatalf("save status = %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/presets", "")
	if w.Code != http.StatusOK {
		t.Fatalf("load status = %d, body %s", w.Code, w.Body.String())
	}
	var resp EstimateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if resp.Trip.PresetName != "night run" {
		t.Fatalf("presetName = %q", resp.Trip.PresetName)
	}
	if resp.Derived.TotalDistanceKm != 100 {
		t.Fatalf("derived distance = %v, want 100", resp.Derived.TotalDistanceKm)
	}
}

func TestPresetLoadNothingSavedIs404(t *testing.T) {
	SetPresetKV(repositories.NewMemoryKV())
	r := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/api/presets", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestPresetLoadMalformedIs422(t *testing.T) {
	kv := repositories.NewMemoryKV()
	if err := kv.Set(context.Background(), repositories.PresetSlotKey, "][not json"); err != nil {
		t.Fatalf("seed error: %v", err)
	}
	SetPresetKV(kv)
	r := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/api/presets", "")
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
}

func TestDefaultPreset(t *testing.T) {
	SetPresetKV(repositories.NewMemoryKV())
	r := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/api/presets/default", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp EstimateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(resp.Trip.Legs) != 1 {
		t.Fatalf("default trip should have one leg, got %d", len(resp.Trip.Legs))
	}
	if resp.Trip.Legs[0].ID == "" {
		t.Fatalf("default leg must carry an id")
	}
	if resp.Trip.ApplyVAT {
		t.Fatalf("VAT must default to off")
	}
}

func TestExportCSVEndpoint(t *testing.T) {
	r := newTestRouter()

	body := `{"deadheadKm":50,"legs":[{"id":"a","name":"Leg 1","distanceKm":200}],"consumptionLPer100Km":30,"fuelPricePerLiter":1.5}`
	w := doJSON(t, r, http.MethodPost, "/api/export/csv", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "cost-estimate_") {
		t.Fatalf("Content-Disposition = %q", cd)
	}
	if !strings.HasPrefix(w.Body.String(), "Metric,Value") {
		t.Fatalf("unexpected body start: %q", w.Body.String()[:40])
	}
}
