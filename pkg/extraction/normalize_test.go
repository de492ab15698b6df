package extraction

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const validCategory = `{
	"category_name": "Gender Pay Gap",
	"category_description": "Difference in average earnings",
	"kpis": [
		{
			"kpi_name": "Median base salary",
			"unit": "percentage",
			"kpi_source": "WGEA",
			"kpi_description": "Median base salary gap",
			"standard_values": [
				{
					"geographical_loc": "Australia",
					"country": "Australia",
					"industry": "Mining",
					"gender": "Women vs Men",
					"age_group": "All ages",
					"experience_level": "All experience levels",
					"value_avg": "12.3",
					"value_min": "12.3",
					"value_max": "14.7",
					"source_val": "WGEA Mining Industry Snapshot"
				}
			]
		}
	]
}`

func payload(data string) []byte {
	return []byte(`{"data": ` + data + `}`)
}

func TestNormalizeRecords_SingleObject(t *testing.T) {
	records := NormalizeRecords(payload(validCategory), zap.NewNop())
	require.Len(t, records, 1)
	assert.Equal(t, "Gender Pay Gap", records[0].CategoryName)
	require.Len(t, records[0].KPIs, 1)
	assert.Equal(t, "Median base salary", records[0].KPIs[0].KPIName)
	require.Len(t, records[0].KPIs[0].StandardValues, 1)
	assert.Equal(t, "12.3", records[0].KPIs[0].StandardValues[0].ValueAvg.String())
}

func TestNormalizeRecords_WrapperUnwrapIsTransparent(t *testing.T) {
	bare := NormalizeRecords(payload(validCategory), zap.NewNop())
	wrapped := NormalizeRecords(payload(`{"KPI_Category": `+validCategory+`}`), zap.NewNop())
	assert.Equal(t, bare, wrapped)
}

func TestNormalizeRecords_ListWithMixedWrapping(t *testing.T) {
	records := NormalizeRecords(payload(`[`+validCategory+`, {"KPI_Category": `+validCategory+`}]`), zap.NewNop())
	require.Len(t, records, 2)
	assert.Equal(t, records[0], records[1])
}

func TestNormalizeRecords_BareStringIsNoData(t *testing.T) {
	records := NormalizeRecords(payload(`"no KPI data found"`), zap.NewNop())
	assert.Empty(t, records)
}

func TestNormalizeRecords_MissingDataKey(t *testing.T) {
	records := NormalizeRecords([]byte(`{"result": {}}`), zap.NewNop())
	assert.Empty(t, records)
}

func TestNormalizeRecords_UnexpectedTopLevelType(t *testing.T) {
	records := NormalizeRecords(payload(`42`), zap.NewNop())
	assert.Empty(t, records)
}

func TestNormalizeRecords_DropsMalformedElements(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "missing category_name", data: `{"category_description": "d", "kpis": []}`},
		{name: "missing category_description", data: `{"category_name": "n", "kpis": []}`},
		{name: "missing kpis", data: `{"category_name": "n", "category_description": "d"}`},
		{name: "kpis not a list", data: `{"category_name": "n", "category_description": "d", "kpis": "oops"}`},
		{name: "element not an object", data: `["just a string"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := NormalizeRecords(payload(tt.data), zap.NewNop())
			assert.Empty(t, records)
		})
	}
}

func TestNormalizeRecords_KeepsSiblingsOfDroppedElements(t *testing.T) {
	data := `[{"category_name": "broken"}, ` + validCategory + `]`
	records := NormalizeRecords(payload(data), zap.NewNop())
	require.Len(t, records, 1)
	assert.Equal(t, "Gender Pay Gap", records[0].CategoryName)
}

func TestNormalizeRecords_NumericValueFieldsTolerated(t *testing.T) {
	data := `{
		"category_name": "Gender Pay Gap",
		"category_description": "d",
		"kpis": [{
			"kpi_name": "k", "unit": "u", "kpi_source": "s", "kpi_description": "d",
			"standard_values": [{"value_avg": 12.7, "value_min": "N/A", "value_max": null}]
		}]
	}`
	records := NormalizeRecords(payload(data), zap.NewNop())
	require.Len(t, records, 1)
	sv := records[0].KPIs[0].StandardValues[0]
	assert.Equal(t, "12.7", sv.ValueAvg.String())
	assert.Equal(t, "N/A", sv.ValueMin.String())
	assert.Equal(t, "", sv.ValueMax.String())
}

func TestFewShotAnswerMatchesSchema(t *testing.T) {
	// The worked example must stay decodable by the same normalization path
	// used for live payloads.
	records := NormalizeRecords([]byte(exampleAnswer), zap.NewNop())
	require.Len(t, records, 1)
	assert.Equal(t, "Gender Pay Gap", records[0].CategoryName)
	assert.Len(t, records[0].KPIs, 6)
	var envCheck map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(exampleAnswer), &envCheck))
	assert.Contains(t, envCheck, "data")
}
