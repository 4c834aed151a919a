package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/eugenenazirov/menu-knapsack/internal/knapsack"
	"github.com/eugenenazirov/menu-knapsack/internal/metrics"
	"github.com/eugenenazirov/menu-knapsack/internal/storage"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

// defaultMaxInlineExactItems bounds exact searches over catalogs posted with
// the request. Each extra item doubles the work, and nothing cancels a running
// search once it starts.
const defaultMaxInlineExactItems = 16

// Handler wires solver and storage dependencies into HTTP handlers.
type Handler struct {
	solver  knapsack.Solver
	storage storage.Storage
	metrics *metrics.Recorder

	maxInlineExactItems int

	clock func() time.Time

	mu               sync.RWMutex
	catalogUpdatedAt time.Time
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = clock
	}
}

// WithMetrics records solve timings and catalog size on rec.
func WithMetrics(rec *metrics.Recorder) HandlerOption {
	return func(h *Handler) {
		h.metrics = rec
	}
}

// WithMaxInlineExactItems overrides the largest request-supplied catalog the
// exact strategy accepts. Non-positive values are ignored.
func WithMaxInlineExactItems(n int) HandlerOption {
	return func(h *Handler) {
		if n > 0 {
			h.maxInlineExactItems = n
		}
	}
}

// NewHandler constructs a Handler with the provided dependencies.
func NewHandler(solver knapsack.Solver, store storage.Storage, opts ...HandlerOption) *Handler {
	h := &Handler{
		solver:              solver,
		storage:             store,
		maxInlineExactItems: defaultMaxInlineExactItems,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	h.catalogUpdatedAt = h.clock()
	if items, err := store.GetCatalog(); err == nil {
		h.metrics.SetCatalogSize(len(items))
	}
	return h
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = r
	resp := healthResponse{
		Status:    "ok",
		Timestamp: h.clock(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetCatalog(w http.ResponseWriter, r *http.Request) {
	_ = r
	items, err := h.storage.GetCatalog()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	resp := catalogResponse{
		Items:     items,
		UpdatedAt: h.currentCatalogUpdatedAt(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handlePutCatalog(w http.ResponseWriter, r *http.Request) {
	var req catalogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	if len(req.Items) == 0 {
		writeError(w, http.StatusBadRequest, "Invalid catalog", "items must contain at least one entry")
		return
	}

	if err := h.storage.SetCatalog(req.Items); err != nil {
		if errors.Is(err, storage.ErrInvalidCatalog) {
			writeError(w, http.StatusBadRequest, "Invalid catalog", err.Error())
			return
		}
		writeInternalError(w, err)
		return
	}

	h.markCatalogUpdated()

	items, err := h.storage.GetCatalog()
	if err != nil {
		writeInternalError(w, err)
		return
	}
	h.metrics.SetCatalogSize(len(items))

	resp := catalogResponse{
		Items:     items,
		UpdatedAt: h.currentCatalogUpdatedAt(),
		Message:   "Catalog updated successfully",
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleSelect(w http.ResponseWriter, r *http.Request) {
	var req selectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	if req.Capacity == nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "capacity is required")
		return
	}

	if req.Strategy == "" {
		req.Strategy = string(knapsack.StrategyExact)
	}
	strategy, err := knapsack.ParseStrategy(req.Strategy)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", err.Error(),
			fmt.Sprintf("Use one of %v", knapsack.Strategies()))
		return
	}

	items := req.Items
	if len(items) == 0 {
		items, err = h.storage.GetCatalog()
		if err != nil {
			writeInternalError(w, err)
			return
		}
	} else {
		if err := storage.ValidateCatalog(items); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid catalog", err.Error())
			return
		}
		if strategy == knapsack.StrategyExact && len(items) > h.maxInlineExactItems {
			details := fmt.Sprintf("%v: %d inline items, limit %d", knapsack.ErrCatalogTooLarge, len(items), h.maxInlineExactItems)
			writeError(w, http.StatusUnprocessableEntity, "Catalog too large", details,
				"Use a greedy strategy, send fewer items, or store the catalog with PUT /api/catalog")
			return
		}
	}

	start := time.Now()
	sel, solveErr := h.solver.Solve(strategy, items, *req.Capacity)
	elapsed := time.Since(start)
	h.metrics.ObserveSolve(string(strategy), elapsed, solveErr)

	if solveErr != nil {
		switch {
		case errors.Is(solveErr, knapsack.ErrCatalogTooLarge):
			writeError(w, http.StatusUnprocessableEntity, "Catalog too large", solveErr.Error(),
				"Use a greedy strategy or reduce the number of items")
		case errors.Is(solveErr, knapsack.ErrInvalidArgument):
			writeError(w, http.StatusBadRequest, "Invalid request", solveErr.Error())
		case errors.Is(solveErr, knapsack.ErrDivisionByZero):
			writeError(w, http.StatusUnprocessableEntity, "Cannot rank items", solveErr.Error())
		default:
			writeInternalError(w, solveErr)
		}
		return
	}

	resp := selectResponse{
		Strategy:          string(strategy),
		Capacity:          *req.Capacity,
		Items:             sel.Items,
		TotalValue:        sel.TotalValue,
		TotalCost:         sel.TotalCost,
		CalculationTimeMs: elapsed.Milliseconds(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) currentCatalogUpdatedAt() time.Time {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.catalogUpdatedAt
}

func (h *Handler) markCatalogUpdated() {
	h.mu.Lock()
	h.catalogUpdatedAt = h.clock()
	h.mu.Unlock()
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

type catalogRequest struct {
	Items []knapsack.Item `json:"items"`
}

type selectRequest struct {
	Capacity *float64        `json:"capacity"`
	Strategy string          `json:"strategy"`
	Items    []knapsack.Item `json:"items,omitempty"`
}

type selectResponse struct {
	Strategy          string          `json:"strategy"`
	Capacity          float64         `json:"capacity"`
	Items             []knapsack.Item `json:"items"`
	TotalValue        float64         `json:"totalValue"`
	TotalCost         float64         `json:"totalCost"`
	CalculationTimeMs int64           `json:"calculationTimeMs"`
}

type catalogResponse struct {
	Items     []knapsack.Item `json:"items"`
	UpdatedAt time.Time       `json:"updatedAt"`
	Message   string          `json:"message,omitempty"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type errorResponse struct {
	Error      string `json:"error"`
	Details    string `json:"details,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, details string, suggestion ...string) {
	resp := errorResponse{
		Error:   message,
		Details: details,
	}
	if len(suggestion) > 0 {
		resp.Suggestion = suggestion[0]
	}
	writeJSON(w, status, resp)
}

func writeInternalError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusInternalServerError, "Internal error", err.Error())
}
