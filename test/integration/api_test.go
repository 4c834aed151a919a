package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/eugenenazirov/menu-knapsack/internal/api"
	"github.com/eugenenazirov/menu-knapsack/internal/knapsack"
	"github.com/eugenenazirov/menu-knapsack/internal/storage"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()

	store := storage.NewMemoryStorage()
	handler := api.NewHandler(knapsack.New(), store)
	logger := zaptest.NewLogger(t)
	return api.NewRouter(handler, logger)
}

func performRequest(t *testing.T, handler http.Handler, method, target string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestIntegrationFlow(t *testing.T) {
	handler := newRouter(t)
	jsonHeaders := map[string]string{"Content-Type": "application/json"}

	rec := performRequest(t, handler, http.MethodGet, "/api/health", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from health, got %d", rec.Code)
	}

	catalog := map[string]any{"items": []knapsack.Item{
		{Name: "wine", Value: 89, Cost: 123},
		{Name: "beer", Value: 90, Cost: 154},
		{Name: "pizza", Value: 95, Cost: 258},
	}}
	payload, _ := json.Marshal(catalog)
	rec = performRequest(t, handler, http.MethodPut, "/api/catalog", payload, jsonHeaders)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from catalog update, got %d", rec.Code)
	}

	var totals [2]float64
	for i, strategy := range []string{"density", "exact"} {
		body, _ := json.Marshal(map[string]any{"capacity": 300, "strategy": strategy})
		rec = performRequest(t, handler, http.MethodPost, "/api/select", body, jsonHeaders)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 from %s select, got %d", strategy, rec.Code)
		}

		var response struct {
			TotalValue float64 `json:"totalValue"`
			TotalCost  float64 `json:"totalCost"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if response.TotalCost > 300 {
			t.Fatalf("%s selection exceeds capacity: %v", strategy, response.TotalCost)
		}
		totals[i] = response.TotalValue
	}

	if totals[1] != 179 {
		t.Fatalf("unexpected exact total %v", totals[1])
	}
	if totals[0] > totals[1] {
		t.Fatalf("greedy total %v exceeds exact total %v", totals[0], totals[1])
	}
}
