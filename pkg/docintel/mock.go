package docintel

import (
	"context"
)

// MockAnalyzer is a configurable mock for testing pipeline code.
type MockAnalyzer struct {
	// ExtractTextFunc is called when ExtractText is invoked.
	// If nil, returns empty string and nil error.
	ExtractTextFunc func(ctx context.Context, fileBytes []byte, contentType string) (string, error)

	// Call tracking for verification
	ExtractTextCalls int
}

// ExtractText implements LayoutAnalyzer.
func (m *MockAnalyzer) ExtractText(ctx context.Context, fileBytes []byte, contentType string) (string, error) {
	m.ExtractTextCalls++
	if m.ExtractTextFunc != nil {
		return m.ExtractTextFunc(ctx, fileBytes, contentType)
	}
	return "", nil
}

// Ensure MockAnalyzer implements LayoutAnalyzer at compile time.
var _ LayoutAnalyzer = (*MockAnalyzer)(nil)
