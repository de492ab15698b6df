package models

import (
	"strconv"
	"strings"
	"time"
)

// MainCategoryID identifies one of the fixed top-level KPI categories.
type MainCategoryID int

const (
	MainCategoryDemographic       MainCategoryID = 1
	MainCategoryPerformanceData   MainCategoryID = 2
	MainCategoryLeavePolicies     MainCategoryID = 3
	MainCategorySalaryInformation MainCategoryID = 4
)

// MainCategoryIDs maps the user-facing category names to their pre-seeded
// database ids. Names not in this map are skipped at write time.
var MainCategoryIDs = map[string]MainCategoryID{
	"Demographic":        MainCategoryDemographic,
	"Performance Data":   MainCategoryPerformanceData,
	"Leave Policies":     MainCategoryLeavePolicies,
	"Salary Information": MainCategorySalaryInformation,
}

// MainCategoryNames returns the selectable category names in id order.
func MainCategoryNames() []string {
	return []string{"Demographic", "Performance Data", "Leave Policies", "Salary Information"}
}

// MainCategory is one row of the pre-seeded main_category table.
type MainCategory struct {
	ID   MainCategoryID `json:"maincat_id"`
	Name string         `json:"maincat_name"`
}

// Category is one persisted KPI category row.
type Category struct {
	ID             int64     `json:"cat_id"`
	Name           string    `json:"cat_name"`
	Description    string    `json:"cat_description"`
	MainCategoryID int64     `json:"maincat_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// KPI is one persisted KPI row, owned by exactly one Category.
type KPI struct {
	ID          int64  `json:"kpi_id"`
	CategoryID  int64  `json:"category_id"`
	Name        string `json:"kpi_name"`
	Unit        string `json:"unit"`
	Source      string `json:"kpi_source"`
	Description string `json:"kpi_description"`
}

// StandardValue is one demographic-sliced numeric observation of a KPI.
// The numeric fields are nullable: a sentinel or unparseable source value is
// stored as absent, never as a default number.
type StandardValue struct {
	ID              int64    `json:"value_id"`
	KPIID           int64    `json:"kpi_id"`
	GeographicalLoc string   `json:"geographical_loc"`
	Country         string   `json:"country"`
	Industry        string   `json:"industry"`
	Gender          string   `json:"gender"`
	AgeGroup        string   `json:"age_group"`
	ExperienceLevel string   `json:"experience_level"`
	ValueAvg        *float64 `json:"value_avg"`
	ValueMin        *float64 `json:"value_min"`
	ValueMax        *float64 `json:"value_max"`
	SourceVal       string   `json:"source_val"`
}

// notApplicableSentinel is how the extraction model marks a value it could not
// find in the source document.
const notApplicableSentinel = "N/A"

// ParseNumeric converts a numeric-as-text field from the extraction payload
// into a nullable float. Returns nil for the empty string, the "N/A" sentinel,
// and anything that does not parse as a float.
func ParseNumeric(s string) *float64 {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || trimmed == notApplicableSentinel {
		return nil
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil
	}
	return &v
}
