package docintel

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/peoplemetrics/kpi-engine/pkg/apperrors"
)

func TestDetectContentType(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"snapshot.pdf", "application/pdf"},
		{"scan.png", "image/png"},
		{"SCAN.PNG", "image/png"},
		{"noextension", ""},
		{"weird.zzzz", ""},
	}
	for _, tt := range tests {
		if got := DetectContentType(tt.filename); got != tt.want {
			t.Errorf("DetectContentType(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}

func TestExtractText_RejectsUnknownContentType(t *testing.T) {
	c, err := NewClient(Config{Endpoint: "https://example.invalid"}, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = c.ExtractText(context.Background(), []byte("data"), "")
	if !errors.Is(err, apperrors.ErrUnsupportedFileType) {
		t.Fatalf("expected ErrUnsupportedFileType, got %v", err)
	}
}

func TestExtractText_FlattensPagesToLines(t *testing.T) {
	var polls atomic.Int32

	mux := http.NewServeMux()
	var server *httptest.Server

	mux.HandleFunc("/documentintelligence/documentModels/prebuilt-layout:analyze", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.Header.Get("Ocp-Apim-Subscription-Key") != "test-key" {
			t.Errorf("missing subscription key header")
		}
		if r.Header.Get("Content-Type") != "application/pdf" {
			t.Errorf("expected application/pdf content type, got %s", r.Header.Get("Content-Type"))
		}
		w.Header().Set("Operation-Location", server.URL+"/operations/123")
		w.WriteHeader(http.StatusAccepted)
	})

	mux.HandleFunc("/operations/123", func(w http.ResponseWriter, r *http.Request) {
		// First poll still running, second poll done.
		if polls.Add(1) == 1 {
			_ = json.NewEncoder(w).Encode(map[string]any{"status": "running"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "succeeded",
			"analyzeResult": map[string]any{
				"pages": []map[string]any{
					{"lines": []map[string]string{{"content": "Gender Pay Gap"}, {"content": "12.7%"}}},
					{"lines": []map[string]string{{"content": "Median base salary"}}},
				},
			},
		})
	})

	server = httptest.NewServer(mux)
	defer server.Close()

	c, err := NewClient(Config{
		Endpoint:     server.URL,
		APIKey:       "test-key",
		PollInterval: 5 * time.Millisecond,
		PollTimeout:  time.Second,
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text, err := c.ExtractText(context.Background(), []byte("%PDF-"), "application/pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Gender Pay Gap\n12.7%\nMedian base salary"
	if text != want {
		t.Errorf("expected %q, got %q", want, text)
	}
	if polls.Load() < 2 {
		t.Errorf("expected at least two polls, got %d", polls.Load())
	}
}

func TestExtractText_RemoteFailure(t *testing.T) {
	mux := http.NewServeMux()
	var server *httptest.Server

	mux.HandleFunc("/documentintelligence/documentModels/prebuilt-layout:analyze", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Operation-Location", server.URL+"/operations/err")
		w.WriteHeader(http.StatusAccepted)
	})
	mux.HandleFunc("/operations/err", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status": "failed",
			"error":  map[string]string{"code": "InvalidContent", "message": "corrupt document"},
		})
	})

	server = httptest.NewServer(mux)
	defer server.Close()

	c, err := NewClient(Config{
		Endpoint:     server.URL,
		PollInterval: 5 * time.Millisecond,
		PollTimeout:  time.Second,
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = c.ExtractText(context.Background(), []byte("data"), "application/pdf")
	if !errors.Is(err, apperrors.ErrTextExtractionFailed) {
		t.Fatalf("expected ErrTextExtractionFailed, got %v", err)
	}
}

func TestExtractText_RejectedSubmission(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":"401"}}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	c, err := NewClient(Config{Endpoint: server.URL}, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = c.ExtractText(context.Background(), []byte("data"), "application/pdf")
	if !errors.Is(err, apperrors.ErrTextExtractionFailed) {
		t.Fatalf("expected ErrTextExtractionFailed, got %v", err)
	}
}
