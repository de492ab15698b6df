package extraction

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/peoplemetrics/kpi-engine/pkg/apperrors"
)

var (
	errNotAnObject   = fmt.Errorf("%w: element is not an object", apperrors.ErrMalformedRecord)
	errMissingFields = fmt.Errorf("%w: missing category_name, category_description, or kpis", apperrors.ErrMalformedRecord)
	errKPIsNotAList  = fmt.Errorf("%w: kpis is not a list", apperrors.ErrMalformedRecord)
)

// envelope is the top-level payload the model returns.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// wrapped unwraps the optional one-level KPI_Category wrapper the model
// sometimes adds around each element.
type wrapped struct {
	KPICategory json.RawMessage `json:"KPI_Category"`
}

// requiredFields is used for shape validation before the strict decode:
// pointer fields distinguish a missing key from an empty value, and KPIs as a
// raw message lets us verify it is a JSON list.
type requiredFields struct {
	CategoryName        *string         `json:"category_name"`
	CategoryDescription *string         `json:"category_description"`
	KPIs                json.RawMessage `json:"kpis"`
}

// NormalizeRecords converts a raw extraction payload to a flat list of
// CategoryRecords. Malformed elements are dropped with a log line, never
// fatal; an unusable top-level payload yields an empty list.
func NormalizeRecords(payload []byte, logger *zap.Logger) []CategoryRecord {
	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil || len(env.Data) == 0 {
		// Payload without a data key (or a bare string at the top level,
		// which has no data key either) means the model found nothing.
		logger.Info("extraction payload carries no data")
		return nil
	}

	elements, ok := splitElements(env.Data)
	if !ok {
		logger.Warn("unexpected extraction payload type, treating as no data",
			zap.String("payload_prefix", prefix(env.Data, 120)))
		return nil
	}

	records := make([]CategoryRecord, 0, len(elements))
	for i, el := range elements {
		record, err := decodeRecord(el)
		if err != nil {
			logger.Warn("dropping malformed category record",
				zap.Int("index", i),
				zap.Error(err),
				zap.String("payload_prefix", prefix(el, 120)))
			continue
		}
		records = append(records, *record)
	}
	return records
}

// splitElements normalizes the data value into a list of raw elements.
// A bare string means "no data"; an object is a single-element list.
func splitElements(data json.RawMessage) ([]json.RawMessage, bool) {
	trimmed := trimSpace(data)
	if len(trimmed) == 0 {
		return nil, false
	}
	switch trimmed[0] {
	case '"':
		return nil, true
	case '{':
		return []json.RawMessage{trimmed}, true
	case '[':
		var list []json.RawMessage
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, false
		}
		return list, true
	default:
		return nil, false
	}
}

// decodeRecord strictly decodes one element, unwrapping a KPI_Category
// wrapper first if present.
func decodeRecord(el json.RawMessage) (*CategoryRecord, error) {
	el = trimSpace(el)
	if len(el) == 0 || el[0] != '{' {
		return nil, errNotAnObject
	}

	// Unwrap {"KPI_Category": {...}} once if that key is present.
	var w wrapped
	if err := json.Unmarshal(el, &w); err == nil && len(w.KPICategory) > 0 {
		el = trimSpace(w.KPICategory)
		if len(el) == 0 || el[0] != '{' {
			return nil, errNotAnObject
		}
	}

	var req requiredFields
	if err := json.Unmarshal(el, &req); err != nil {
		return nil, errNotAnObject
	}
	if req.CategoryName == nil || req.CategoryDescription == nil || req.KPIs == nil {
		return nil, errMissingFields
	}
	if kpis := trimSpace(req.KPIs); len(kpis) == 0 || kpis[0] != '[' {
		return nil, errKPIsNotAList
	}

	var record CategoryRecord
	if err := json.Unmarshal(el, &record); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedRecord, err)
	}
	return &record, nil
}

func trimSpace(raw json.RawMessage) json.RawMessage {
	start := 0
	for start < len(raw) && isSpace(raw[start]) {
		start++
	}
	end := len(raw)
	for end > start && isSpace(raw[end-1]) {
		end--
	}
	return raw[start:end]
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func prefix(raw []byte, n int) string {
	if len(raw) <= n {
		return string(raw)
	}
	return string(raw[:n]) + "..."
}
