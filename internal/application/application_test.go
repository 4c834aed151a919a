package application

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"github.com/eugenenazirov/menu-knapsack/internal/config"
	"github.com/eugenenazirov/menu-knapsack/internal/knapsack"
	"github.com/eugenenazirov/menu-knapsack/internal/storage"
)

func TestNewInitializesDependencies(t *testing.T) {
	cfg := baseTestConfig(":8085")
	cfg.Catalog = []knapsack.Item{{Name: "tea", Value: 3, Cost: 2}}
	logger := zaptest.NewLogger(t)

	app, err := New(cfg, logger)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	items, err := app.storage.GetCatalog()
	if err != nil {
		t.Fatalf("GetCatalog returned error: %v", err)
	}
	if len(items) != 1 || items[0].Name != "tea" {
		t.Fatalf("expected configured catalog, got %v", items)
	}
	if app.server == nil || app.router == nil || app.handler == nil || app.solver == nil {
		t.Fatalf("expected server, router, solver, and handler to be initialized")
	}
	if app.Server() != app.server {
		t.Fatalf("Server accessor did not return underlying instance")
	}
}

func TestNewServerAppliesConfig(t *testing.T) {
	cfg := baseTestConfig("9090")
	handler := http.NewServeMux()

	server := NewServer(cfg, handler)
	if server.Addr != ":9090" {
		t.Fatalf("expected address :9090, got %s", server.Addr)
	}
	if server.Handler != handler {
		t.Fatalf("expected handler to be applied")
	}
	if server.ReadHeaderTimeout != cfg.ReadHeaderTimeout ||
		server.WriteTimeout != cfg.WriteTimeout ||
		server.IdleTimeout != cfg.IdleTimeout {
		t.Fatalf("server timeouts do not match configuration")
	}
}

func TestNewReturnsErrorForInvalidCatalog(t *testing.T) {
	cfg := baseTestConfig(":0")
	cfg.Catalog = nil

	if _, err := New(cfg, zaptest.NewLogger(t)); err == nil {
		t.Fatalf("expected error for invalid catalog")
	}
}

func TestServerExposesMetricsAfterSelect(t *testing.T) {
	app, err := New(baseTestConfig(":0"), zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	handler := app.Server().Handler

	body := bytes.NewBufferString(`{"capacity": 750, "strategy": "exact"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/select", body)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from select, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from metrics, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `knapsack_solve_total{outcome="success",strategy="exact"} 1`) {
		t.Fatalf("expected solve counter in metrics output:\n%s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "knapsack_catalog_items 9") {
		t.Fatalf("expected catalog gauge in metrics output")
	}
}

func baseTestConfig(port string) config.Config {
	return config.Config{
		Port:                 port,
		Catalog:              storage.DefaultMenu(),
		MaxExactItems:        20,
		MaxInlineExactItems:  12,
		ShutdownGracePeriod:  50 * time.Millisecond,
		ReadHeaderTimeout:    20 * time.Millisecond,
		WriteTimeout:         30 * time.Millisecond,
		IdleTimeout:          40 * time.Millisecond,
		EnableRequestLogging: false,
		RateLimitRPS:         0,
		RateLimitBurst:       0,
	}
}
