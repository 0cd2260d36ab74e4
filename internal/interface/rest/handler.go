// Package rest exposes the engine to presentation consumers: summary and
// recent-feed reads, explicit refresh, the CSV export download, and
// single-record CRUD per category.
package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"travelledger-service/internal/domain/entity"
	"travelledger-service/internal/domain/registry"
	"travelledger-service/internal/domain/repository"
	"travelledger-service/internal/interface/export"
	"travelledger-service/internal/usecase"
	"travelledger-service/pkg/logger"
	"travelledger-service/pkg/metrics"
)

// Handler serves the ledger API.
type Handler struct {
	aggregator *usecase.Aggregator
	ledger     *usecase.Ledger
	feedSize   int
	logger     logger.Logger
	metrics    *metrics.Metrics
}

// NewHandler creates a new API handler. feedSize is the number of recent-feed
// rows returned when a request does not ask for a count; values <= 0 fall back
// to usecase.DefaultFeedSize. metrics may be nil.
func NewHandler(aggregator *usecase.Aggregator, ledger *usecase.Ledger, feedSize int, log logger.Logger, m *metrics.Metrics) *Handler {
	if feedSize <= 0 {
		feedSize = usecase.DefaultFeedSize
	}
	return &Handler{
		aggregator: aggregator,
		ledger:     ledger,
		feedSize:   feedSize,
		logger:     log,
		metrics:    m,
	}
}

// Register mounts every route on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/summary", h.handleSummary)
	mux.HandleFunc("GET /api/recent", h.handleRecent)
	mux.HandleFunc("POST /api/refresh", h.handleRefresh)
	mux.HandleFunc("GET /api/export", h.handleExport)
	mux.HandleFunc("GET /api/services/{category}", h.handleList)
	mux.HandleFunc("POST /api/services/{category}", h.handleCreate)
	mux.HandleFunc("PUT /api/services/{category}/{id}", h.handleUpdate)
	mux.HandleFunc("DELETE /api/services/{category}/{id}", h.handleDelete)
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary := h.aggregator.CurrentSummary()
	if summary == nil {
		writeError(w, http.StatusServiceUnavailable, "no snapshot published yet")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) handleRecent(w http.ResponseWriter, r *http.Request) {
	snap := h.aggregator.CurrentSnapshot()
	if snap == nil {
		writeError(w, http.StatusServiceUnavailable, "no snapshot published yet")
		return
	}

	n := h.feedSize
	if raw := r.URL.Query().Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "n must be an integer")
			return
		}
		n = parsed
	}

	rows := usecase.RecentFeed(snap, n)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"rows":  rows,
		"count": len(rows),
	})
}

func (h *Handler) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if err := h.aggregator.Refresh(r.Context()); err != nil {
		h.logger.Error("Refresh request failed", "error", err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"summary": h.aggregator.CurrentSummary(),
	})
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	snap := h.aggregator.CurrentSnapshot()
	if snap == nil {
		writeError(w, http.StatusServiceUnavailable, "no snapshot published yet")
		return
	}

	table := usecase.ExportAll(snap)
	filename := fmt.Sprintf("travel-ledger-%s.csv", time.Now().Format("20060102"))

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := export.WriteCSV(w, table); err != nil {
		h.logger.Error("Export download failed", "error", err)
		return
	}
	if h.metrics != nil {
		h.metrics.ExportsTotal.Inc()
	}
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	tag, ok := h.category(w, r)
	if !ok {
		return
	}

	snap := h.aggregator.CurrentSnapshot()
	if snap == nil {
		writeError(w, http.StatusServiceUnavailable, "no snapshot published yet")
		return
	}

	def := registry.Lookup(tag)
	records := snap.Records(tag)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"category": tag,
		"label":    def.Label,
		"columns":  def.Columns,
		"records":  records,
		"count":    len(records),
	})
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	tag, ok := h.category(w, r)
	if !ok {
		return
	}

	rec := registry.NewRecord(tag)
	if err := json.NewDecoder(r.Body).Decode(rec); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.ledger.Create(r.Context(), rec)
	if err != nil {
		h.writeLedgerError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"id": id})
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	tag, ok := h.category(w, r)
	if !ok {
		return
	}

	rec := registry.NewRecord(tag)
	if err := json.NewDecoder(r.Body).Decode(rec); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.ledger.Update(r.Context(), tag, r.PathValue("id"), rec); err != nil {
		h.writeLedgerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"status": "ok"})
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	tag, ok := h.category(w, r)
	if !ok {
		return
	}

	if err := h.ledger.Delete(r.Context(), tag, r.PathValue("id")); err != nil {
		h.writeLedgerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"status": "ok"})
}

func (h *Handler) category(w http.ResponseWriter, r *http.Request) (entity.CategoryTag, bool) {
	tag := entity.CategoryTag(r.PathValue("category"))
	if !registry.Known(tag) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown category %q", tag))
		return "", false
	}
	return tag, true
}

func (h *Handler) writeLedgerError(w http.ResponseWriter, err error) {
	var verr *registry.ValidationError
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "record not found")
	default:
		h.logger.Error("Ledger operation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "store operation failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
