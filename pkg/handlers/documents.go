package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/peoplemetrics/kpi-engine/pkg/apperrors"
	"github.com/peoplemetrics/kpi-engine/pkg/services"
)

// DocumentHandler accepts document uploads and runs them through the
// ingestion pipeline.
type DocumentHandler struct {
	service        services.IngestionService
	maxUploadBytes int64
	logger         *zap.Logger
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(service services.IngestionService, maxUploadBytes int64, logger *zap.Logger) *DocumentHandler {
	return &DocumentHandler{
		service:        service,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// RegisterRoutes registers the document handler's routes on the given mux.
func (h *DocumentHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/documents", h.Upload)
}

// Upload handles POST /api/documents requests.
// Expects multipart form data with a "file" part and one or more repeated
// "categories" values naming the main categories to persist under.
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request",
			fmt.Sprintf("Failed to parse multipart form: %v", err)); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "missing_file",
			"Request must include a \"file\" part"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}
	defer func() { _ = file.Close() }()

	categories := r.MultipartForm.Value["categories"]
	if len(categories) == 0 {
		if err := ErrorResponse(w, http.StatusBadRequest, "missing_categories",
			"At least one \"categories\" value is required"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		if err := ErrorResponse(w, http.StatusBadRequest, "invalid_request",
			"Failed to read uploaded file"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	result, err := h.service.ProcessDocument(r.Context(), fileBytes, header.Filename, categories)
	if err != nil {
		h.writeProcessError(w, header.Filename, err)
		return
	}

	if err := WriteJSON(w, http.StatusOK, result); err != nil {
		h.logger.Error("Failed to encode upload response", zap.Error(err))
	}
}

func (h *DocumentHandler) writeProcessError(w http.ResponseWriter, filename string, err error) {
	h.logger.Error("Failed to process document",
		zap.String("filename", filename),
		zap.Error(err))

	var status int
	var code string
	switch {
	case errors.Is(err, apperrors.ErrUnsupportedFileType):
		status, code = http.StatusBadRequest, "unsupported_file_type"
	case errors.Is(err, apperrors.ErrNoExtractedData):
		status, code = http.StatusUnprocessableEntity, "no_extracted_data"
	case errors.Is(err, apperrors.ErrTextExtractionFailed):
		status, code = http.StatusBadGateway, "text_extraction_failed"
	case errors.Is(err, apperrors.ErrExtractionFailed):
		status, code = http.StatusBadGateway, "kpi_extraction_failed"
	default:
		status, code = http.StatusInternalServerError, "process_document_failed"
	}

	if err := ErrorResponse(w, status, code, err.Error()); err != nil {
		h.logger.Error("Failed to write error response", zap.Error(err))
	}
}
