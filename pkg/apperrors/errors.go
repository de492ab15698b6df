package apperrors

import "errors"

var (
	// ErrUnsupportedFileType means the uploaded file's content type could not
	// be determined or is not accepted by the layout analysis service.
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// ErrTextExtractionFailed means the layout analysis call failed. Aborts the
	// whole document's pipeline.
	ErrTextExtractionFailed = errors.New("text extraction failed")

	// ErrExtractionFailed means the model extraction call failed. Aborts the
	// whole document's pipeline.
	ErrExtractionFailed = errors.New("kpi extraction failed")

	// ErrMalformedRecord marks an extracted element that does not match the
	// expected category shape. Skip-and-continue, never fatal for the document.
	ErrMalformedRecord = errors.New("malformed category record")

	// ErrNoExtractedData means extraction completed but produced no usable
	// category records.
	ErrNoExtractedData = errors.New("no data extracted from document")
)
