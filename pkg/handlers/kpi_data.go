package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/peoplemetrics/kpi-engine/pkg/repositories"
)

// KPIDataHandler serves read access to persisted KPI data.
type KPIDataHandler struct {
	repo   repositories.KPIRepository
	logger *zap.Logger
}

// NewKPIDataHandler creates a new KPIDataHandler.
func NewKPIDataHandler(repo repositories.KPIRepository, logger *zap.Logger) *KPIDataHandler {
	return &KPIDataHandler{repo: repo, logger: logger}
}

// RegisterRoutes registers the KPI data handler's routes on the given mux.
func (h *KPIDataHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/kpis", h.ListKPIData)
	mux.HandleFunc("GET /api/categories", h.ListMainCategories)
}

// ListKPIData handles GET /api/kpis requests.
// Returns every persisted category, KPI and standard value.
func (h *KPIDataHandler) ListKPIData(w http.ResponseWriter, r *http.Request) {
	data, err := h.repo.FetchAll(r.Context())
	if err != nil {
		h.logger.Error("Failed to fetch KPI data", zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "fetch_kpi_data_failed", err.Error()); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, data); err != nil {
		h.logger.Error("Failed to encode KPI data response", zap.Error(err))
	}
}

// ListMainCategories handles GET /api/categories requests.
// Returns the fixed set of top-level categories documents can be filed under.
func (h *KPIDataHandler) ListMainCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.repo.ListMainCategories(r.Context())
	if err != nil {
		h.logger.Error("Failed to list main categories", zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "list_categories_failed", err.Error()); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if err := WriteJSON(w, http.StatusOK, map[string]any{"categories": categories}); err != nil {
		h.logger.Error("Failed to encode categories response", zap.Error(err))
	}
}
