package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/peoplemetrics/kpi-engine/pkg/apperrors"
	"github.com/peoplemetrics/kpi-engine/pkg/docintel"
	"github.com/peoplemetrics/kpi-engine/pkg/extraction"
	"github.com/peoplemetrics/kpi-engine/pkg/repositories"
)

// RecordOutcome describes what happened to one extracted category record.
type RecordOutcome struct {
	CategoryName string                   `json:"category_name"`
	Written      bool                     `json:"written"`
	Error        string                   `json:"error,omitempty"`
	Stats        *repositories.WriteStats `json:"stats,omitempty"`
}

// ProcessResult summarizes a full document run.
type ProcessResult struct {
	RunID            string          `json:"run_id"`
	Filename         string          `json:"filename"`
	ContentType      string          `json:"content_type"`
	RecordsExtracted int             `json:"records_extracted"`
	RecordsWritten   int             `json:"records_written"`
	RecordsFailed    int             `json:"records_failed"`
	Categories       int             `json:"categories"`
	KPIs             int             `json:"kpis"`
	StandardValues   int             `json:"standard_values"`
	Outcomes         []RecordOutcome `json:"outcomes"`
}

// IngestionService runs the document-to-database pipeline: layout analysis,
// model extraction, then one transactional write per extracted record.
type IngestionService interface {
	// ProcessDocument pushes one uploaded file through the pipeline.
	// Analysis and extraction failures abort the whole document; a write
	// failure only drops that record and its siblings continue.
	ProcessDocument(ctx context.Context, fileBytes []byte, filename string, selectedCategories []string) (*ProcessResult, error)
}

type ingestionService struct {
	analyzer  docintel.LayoutAnalyzer
	extractor extraction.Extractor
	repo      repositories.KPIRepository
	logger    *zap.Logger
}

func NewIngestionService(
	analyzer docintel.LayoutAnalyzer,
	extractor extraction.Extractor,
	repo repositories.KPIRepository,
	logger *zap.Logger,
) IngestionService {
	return &ingestionService{
		analyzer:  analyzer,
		extractor: extractor,
		repo:      repo,
		logger:    logger.Named("ingestion-service"),
	}
}

var _ IngestionService = (*ingestionService)(nil)

func (s *ingestionService) ProcessDocument(ctx context.Context, fileBytes []byte, filename string, selectedCategories []string) (*ProcessResult, error) {
	contentType := docintel.DetectContentType(filename)
	if contentType == "" {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnsupportedFileType, filename)
	}

	runID := uuid.NewString()
	s.logger.Info("processing document",
		zap.String("run_id", runID),
		zap.String("filename", filename),
		zap.String("content_type", contentType),
		zap.Int("size_bytes", len(fileBytes)),
		zap.Strings("selected_categories", selectedCategories))

	transcript, err := s.analyzer.ExtractText(ctx, fileBytes, contentType)
	if err != nil {
		return nil, err
	}

	records, err := s.extractor.Extract(ctx, transcript)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrNoExtractedData, filename)
	}

	result := &ProcessResult{
		RunID:            runID,
		Filename:         filename,
		ContentType:      contentType,
		RecordsExtracted: len(records),
	}

	for i := range records {
		record := &records[i]
		outcome := RecordOutcome{CategoryName: record.CategoryName}

		stats, err := s.repo.WriteRecord(ctx, record, selectedCategories)
		if err != nil {
			s.logger.Error("failed to write record",
				zap.String("cat_name", record.CategoryName),
				zap.Error(err))
			outcome.Error = err.Error()
			result.RecordsFailed++
		} else {
			outcome.Written = true
			outcome.Stats = stats
			result.RecordsWritten++
			result.Categories += stats.Categories
			result.KPIs += stats.KPIs
			result.StandardValues += stats.StandardValues
		}
		result.Outcomes = append(result.Outcomes, outcome)
	}

	s.logger.Info("document processed",
		zap.String("run_id", runID),
		zap.String("filename", filename),
		zap.Int("records_extracted", result.RecordsExtracted),
		zap.Int("records_written", result.RecordsWritten),
		zap.Int("records_failed", result.RecordsFailed))

	return result, nil
}
