// Package extraction turns a document transcript into structured KPI category
// records via a model extraction call against a fixed schema.
package extraction

import (
	"github.com/peoplemetrics/kpi-engine/pkg/jsonutil"
)

// CategoryRecord is the normalized structured result of extracting one KPI
// category and its nested KPIs and standard values from document text.
type CategoryRecord struct {
	CategoryName        string      `json:"category_name"`
	CategoryDescription string      `json:"category_description"`
	KPIs                []KPIRecord `json:"kpis"`
}

// KPIRecord is one extracted KPI inside a category.
type KPIRecord struct {
	KPIName        string                `json:"kpi_name"`
	Unit           string                `json:"unit"`
	KPISource      string                `json:"kpi_source"`
	KPIDescription string                `json:"kpi_description"`
	StandardValues []StandardValueRecord `json:"standard_values"`
}

// StandardValueRecord is one demographic-sliced observation of a KPI.
// The three value fields are numeric-as-text per the extraction schema; they
// go through jsonutil.FlexibleString because models occasionally emit bare
// numbers regardless.
type StandardValueRecord struct {
	GeographicalLoc string                  `json:"geographical_loc"`
	Country         string                  `json:"country"`
	Industry        string                  `json:"industry"`
	Gender          string                  `json:"gender"`
	AgeGroup        string                  `json:"age_group"`
	ExperienceLevel string                  `json:"experience_level"`
	ValueAvg        jsonutil.FlexibleString `json:"value_avg"`
	ValueMin        jsonutil.FlexibleString `json:"value_min"`
	ValueMax        jsonutil.FlexibleString `json:"value_max"`
	SourceVal       string                  `json:"source_val"`
}
