package extraction

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/peoplemetrics/kpi-engine/pkg/apperrors"
	"github.com/peoplemetrics/kpi-engine/pkg/llm"
)

// Extractor is the interface the pipeline depends on.
type Extractor interface {
	// Extract asks the model for KPI categories found in the transcript.
	// The returned list may be empty; that is not an error.
	Extract(ctx context.Context, transcript string) ([]CategoryRecord, error)
}

// SchemaExtractor runs the KPI_Category extraction against a chat model.
type SchemaExtractor struct {
	client      llm.Client
	temperature float64
	logger      *zap.Logger
}

// NewSchemaExtractor creates an extractor backed by the given model client.
func NewSchemaExtractor(client llm.Client, temperature float64, logger *zap.Logger) *SchemaExtractor {
	return &SchemaExtractor{
		client:      client,
		temperature: temperature,
		logger:      logger.Named("extraction"),
	}
}

// Extract implements Extractor. A remote call failure aborts with
// ErrExtractionFailed; an unusable or empty payload yields an empty list.
func (e *SchemaExtractor) Extract(ctx context.Context, transcript string) ([]CategoryRecord, error) {
	response, err := e.client.GenerateResponse(ctx, BuildUserPrompt(transcript), BuildSystemPrompt(), e.temperature)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrExtractionFailed, err)
	}

	payload, err := llm.ExtractJSON(response)
	if err != nil {
		// The model answered with prose instead of JSON. Same outcome as an
		// empty extraction: nothing usable, but not a pipeline failure.
		e.logger.Warn("extraction response contained no JSON",
			zap.String("model", e.client.GetModel()),
			zap.Int("response_len", len(response)))
		return nil, nil
	}

	records := NormalizeRecords([]byte(payload), e.logger)

	e.logger.Info("extraction completed",
		zap.String("model", e.client.GetModel()),
		zap.Int("records", len(records)))

	return records, nil
}

// Ensure SchemaExtractor implements Extractor at compile time.
var _ Extractor = (*SchemaExtractor)(nil)
