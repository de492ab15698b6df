// Package docintel wraps the Azure Document Intelligence layout analysis API.
// It turns an uploaded document into a flat, line-per-row text transcript for
// downstream model extraction.
package docintel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/peoplemetrics/kpi-engine/pkg/apperrors"
)

// LayoutAnalyzer is the interface the pipeline depends on.
// Use it for dependency injection to enable mocking in tests.
type LayoutAnalyzer interface {
	// ExtractText analyzes a document and returns its text transcript.
	ExtractText(ctx context.Context, fileBytes []byte, contentType string) (string, error)
}

// Config holds configuration for the layout analysis client.
type Config struct {
	Endpoint     string // e.g. "https://<resource>.cognitiveservices.azure.com"
	APIKey       string
	APIVersion   string // e.g. "2024-11-30"
	PollInterval time.Duration
	PollTimeout  time.Duration
}

// Client calls the Document Intelligence prebuilt-layout model over REST.
// The analyze operation is asynchronous on the wire; ExtractText polls the
// operation until it settles, so callers see a blocking call.
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a layout analysis client.
func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("endpoint is required")
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = "2024-11-30"
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 2 * time.Second
	}
	if cfg.PollTimeout <= 0 {
		cfg.PollTimeout = 3 * time.Minute
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		logger:     logger.Named("docintel"),
	}, nil
}

// analyzeResponse is the operation status document returned while polling.
type analyzeResponse struct {
	Status        string         `json:"status"`
	Error         *analyzeError  `json:"error,omitempty"`
	AnalyzeResult *analyzeResult `json:"analyzeResult,omitempty"`
}

type analyzeError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type analyzeResult struct {
	Pages []analyzePage `json:"pages"`
}

type analyzePage struct {
	Lines []analyzeLine `json:"lines"`
}

type analyzeLine struct {
	Content string `json:"content"`
}

// DetectContentType guesses a document's MIME type from its filename.
// Returns an empty string when the type cannot be determined.
func DetectContentType(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return ""
	}
	ct := mime.TypeByExtension(ext)
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	return ct
}

// ExtractText runs layout analysis and flattens the result to plain lines.
// Every detected line's content, across every page in reading order, is joined
// with a single newline. Paragraph and table structure is intentionally
// dropped; downstream extraction depends on linear text.
func (c *Client) ExtractText(ctx context.Context, fileBytes []byte, contentType string) (string, error) {
	if contentType == "" {
		return "", apperrors.ErrUnsupportedFileType
	}

	opLocation, err := c.beginAnalyze(ctx, fileBytes, contentType)
	if err != nil {
		return "", fmt.Errorf("%w: %w", apperrors.ErrTextExtractionFailed, err)
	}

	result, err := c.pollResult(ctx, opLocation)
	if err != nil {
		return "", fmt.Errorf("%w: %w", apperrors.ErrTextExtractionFailed, err)
	}

	var lines []string
	for _, page := range result.Pages {
		for _, line := range page.Lines {
			lines = append(lines, line.Content)
		}
	}

	c.logger.Info("layout analysis completed",
		zap.Int("pages", len(result.Pages)),
		zap.Int("lines", len(lines)))

	return strings.Join(lines, "\n"), nil
}

// beginAnalyze submits the document and returns the operation URL to poll.
func (c *Client) beginAnalyze(ctx context.Context, fileBytes []byte, contentType string) (string, error) {
	url := fmt.Sprintf("%s/documentintelligence/documentModels/prebuilt-layout:analyze?api-version=%s",
		strings.TrimSuffix(c.cfg.Endpoint, "/"), c.cfg.APIVersion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(fileBytes))
	if err != nil {
		return "", fmt.Errorf("build analyze request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Ocp-Apim-Subscription-Key", c.cfg.APIKey)

	c.logger.Debug("submitting document for layout analysis",
		zap.String("content_type", contentType),
		zap.Int("bytes", len(fileBytes)))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("submit analyze request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusAccepted {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("analyze request rejected: status %d: %s", resp.StatusCode, string(body))
	}

	opLocation := resp.Header.Get("Operation-Location")
	if opLocation == "" {
		return "", fmt.Errorf("analyze response missing Operation-Location header")
	}
	return opLocation, nil
}

// pollResult polls the operation until it succeeds, fails, or the poll
// timeout elapses.
func (c *Client) pollResult(ctx context.Context, opLocation string) (*analyzeResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.PollTimeout)
	defer cancel()

	ticker := time.NewTicker(c.cfg.PollInterval)
	defer ticker.Stop()

	for {
		status, err := c.fetchStatus(ctx, opLocation)
		if err != nil {
			return nil, err
		}

		switch status.Status {
		case "succeeded":
			if status.AnalyzeResult == nil {
				return nil, fmt.Errorf("analyze succeeded but result is empty")
			}
			return status.AnalyzeResult, nil
		case "failed":
			if status.Error != nil {
				return nil, fmt.Errorf("analyze failed: %s: %s", status.Error.Code, status.Error.Message)
			}
			return nil, fmt.Errorf("analyze failed")
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("waiting for analyze result: %w", ctx.Err())
		case <-ticker.C:
		}
	}
}

func (c *Client) fetchStatus(ctx context.Context, opLocation string) (*analyzeResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, opLocation, nil)
	if err != nil {
		return nil, fmt.Errorf("build status request: %w", err)
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch analyze status: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("analyze status request: status %d: %s", resp.StatusCode, string(body))
	}

	var status analyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, fmt.Errorf("decode analyze status: %w", err)
	}
	return &status, nil
}

// Ensure Client implements LayoutAnalyzer at compile time.
var _ LayoutAnalyzer = (*Client)(nil)
