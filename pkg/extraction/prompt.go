package extraction

import (
	"strings"
)

// categorySchema is the fixed KPI_Category schema the model must follow. Field
// names and nesting match the persistence layer exactly; the numeric fields
// are deliberately text so "N/A" survives to the parsing stage.
const categorySchema = `KPI_Category: KPIs related to Human Resources (HR) analysis
  category_name (string): The name of the KPI category
  category_description (string): A short description of the KPI category
  kpis (list of objects): Individual KPI information
    kpi_name (string): The name of the KPI
    unit (string): The unit of measurement for the KPI
    kpi_source (string): The source URL or reference for the KPI definition
    kpi_description (string): A detailed description of what the KPI measures
    standard_values (list of objects): Standard values for a KPI
      geographical_loc (string): The geographical location where the KPI data is applicable
      country (string): The specific country for the KPI data
      industry (string): The industry sector for the KPI data
      gender (string): The gender demographic for the KPI data
      age_group (string): The age group for the KPI data
      experience_level (string): The experience level for the KPI data
      value_avg (string): The average value of the KPI
      value_min (string): The minimum value of the KPI
      value_max (string): The maximum value of the KPI
      source_val (string): The source of the KPI data values`

// BuildSystemPrompt composes the extraction instructions, the schema, and the
// worked example.
func BuildSystemPrompt() string {
	parts := []string{
		"You extract Human Resources KPI data from document text.",
		"Return ONLY a JSON object of the form {\"data\": ...} where the value follows the KPI_Category schema below.",
		"The data value may be a single KPI_Category object or a list of them, one per distinct KPI category found in the text.",
		"Every value including numbers must be encoded as a JSON string. Use \"N/A\" for values not present in the text.",
		"If the text contains no KPI data, return {\"data\": \"no KPI data found\"}.",
		"",
		"Schema:",
		categorySchema,
		"",
		"Example input:",
		exampleTranscript,
		"",
		"Example output:",
		exampleAnswer,
	}
	return strings.Join(parts, "\n")
}

// BuildUserPrompt packages the document transcript for the extraction call.
func BuildUserPrompt(transcript string) string {
	var b strings.Builder
	b.WriteString("Extract the KPI categories from the following document text.\n\n")
	b.WriteString(transcript)
	return b.String()
}
