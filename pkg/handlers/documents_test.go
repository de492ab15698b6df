package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/peoplemetrics/kpi-engine/pkg/apperrors"
	"github.com/peoplemetrics/kpi-engine/pkg/services"
)

type stubIngestion struct {
	result *services.ProcessResult
	err    error

	gotFilename   string
	gotCategories []string
	gotBytes      []byte
	calls         int
}

func (s *stubIngestion) ProcessDocument(ctx context.Context, fileBytes []byte, filename string, selectedCategories []string) (*services.ProcessResult, error) {
	s.calls++
	s.gotBytes = fileBytes
	s.gotFilename = filename
	s.gotCategories = selectedCategories
	return s.result, s.err
}

func multipartBody(t *testing.T, filename string, content []byte, categories []string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if filename != "" {
		part, err := writer.CreateFormFile("file", filename)
		if err != nil {
			t.Fatalf("failed to create file part: %v", err)
		}
		if _, err := part.Write(content); err != nil {
			t.Fatalf("failed to write file part: %v", err)
		}
	}
	for _, c := range categories {
		if err := writer.WriteField("categories", c); err != nil {
			t.Fatalf("failed to write categories field: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func uploadRequest(t *testing.T, filename string, content []byte, categories []string) *http.Request {
	t.Helper()
	body, contentType := multipartBody(t, filename, content, categories)
	req := httptest.NewRequest(http.MethodPost, "/api/documents", body)
	req.Header.Set("Content-Type", contentType)
	return req
}

func TestDocumentHandler_Upload_Success(t *testing.T) {
	stub := &stubIngestion{result: &services.ProcessResult{
		Filename:         "report.pdf",
		RecordsExtracted: 2,
		RecordsWritten:   2,
	}}
	handler := NewDocumentHandler(stub, 1<<20, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.Upload(rec, uploadRequest(t, "report.pdf", []byte("%PDF-1.7"),
		[]string{"Demographic", "Leave Policies"}))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	if stub.gotFilename != "report.pdf" {
		t.Errorf("expected filename 'report.pdf', got %q", stub.gotFilename)
	}
	if string(stub.gotBytes) != "%PDF-1.7" {
		t.Errorf("file bytes not passed through, got %q", stub.gotBytes)
	}
	if len(stub.gotCategories) != 2 || stub.gotCategories[0] != "Demographic" || stub.gotCategories[1] != "Leave Policies" {
		t.Errorf("unexpected categories: %v", stub.gotCategories)
	}

	var response services.ProcessResult
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.RecordsWritten != 2 {
		t.Errorf("expected 2 records written, got %d", response.RecordsWritten)
	}
}

func TestDocumentHandler_Upload_MissingFile(t *testing.T) {
	stub := &stubIngestion{}
	handler := NewDocumentHandler(stub, 1<<20, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.Upload(rec, uploadRequest(t, "", nil, []string{"Demographic"}))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if stub.calls != 0 {
		t.Error("service should not be called without a file")
	}
}

func TestDocumentHandler_Upload_MissingCategories(t *testing.T) {
	stub := &stubIngestion{}
	handler := NewDocumentHandler(stub, 1<<20, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.Upload(rec, uploadRequest(t, "report.pdf", []byte("x"), nil))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response["error"] != "missing_categories" {
		t.Errorf("expected error code 'missing_categories', got %q", response["error"])
	}
}

func TestDocumentHandler_Upload_NotMultipart(t *testing.T) {
	handler := NewDocumentHandler(&stubIngestion{}, 1<<20, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/documents", bytes.NewBufferString(`{"file":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.Upload(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestDocumentHandler_Upload_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"unsupported file type", apperrors.ErrUnsupportedFileType, http.StatusBadRequest, "unsupported_file_type"},
		{"no extracted data", apperrors.ErrNoExtractedData, http.StatusUnprocessableEntity, "no_extracted_data"},
		{"text extraction failed", apperrors.ErrTextExtractionFailed, http.StatusBadGateway, "text_extraction_failed"},
		{"kpi extraction failed", apperrors.ErrExtractionFailed, http.StatusBadGateway, "kpi_extraction_failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewDocumentHandler(&stubIngestion{err: tt.err}, 1<<20, zap.NewNop())

			rec := httptest.NewRecorder()
			handler.Upload(rec, uploadRequest(t, "report.pdf", []byte("x"), []string{"Demographic"}))

			if rec.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}

			var response map[string]string
			if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if response["error"] != tt.wantCode {
				t.Errorf("expected error code %q, got %q", tt.wantCode, response["error"])
			}
		})
	}
}
