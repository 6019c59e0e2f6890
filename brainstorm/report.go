package brainstorm

import "strings"

// Category groups report sections the way the review UI filters them.
type Category string

const (
	CategoryFlagship  Category = "flagship"
	CategorySeasonal  Category = "seasonal"
	CategoryEvergreen Category = "evergreen"
	CategorySummary   Category = "summary"
)

// Section is one block of the final report: a markdown header plus the raw
// task output it introduces.
type Section struct {
	Category Category `json:"category"`
	Header   string   `json:"header"`
	Body     string   `json:"body"`
}

// BuildReport assembles the display sections for a completed run in review
// order: flagship material first, then seasonal, evergreen, and the closing
// strategy summary.
func BuildReport(state *RunState) []Section {
	return []Section{
		{Category: CategoryFlagship, Header: "## Flagship Content Ideas", Body: state.Flagship},
		{Category: CategoryFlagship, Header: "## Top Flagship Content Analysis", Body: state.FlagshipReflection},
		{Category: CategorySeasonal, Header: "## Seasonal Events", Body: state.SeasonalEvent},
		{Category: CategorySeasonal, Header: "## Seasonal Content Ideas", Body: state.SeasonalContent},
		{Category: CategoryEvergreen, Header: "## Evergreen Content Ideas", Body: state.Evergreen},
		{Category: CategorySummary, Header: "## Content Strategy Summary", Body: state.Editing},
	}
}

// FilterSections returns the sections matching the given category. An empty
// category returns all sections.
func FilterSections(sections []Section, category Category) []Section {
	if category == "" {
		return sections
	}

	var filtered []Section
	for _, section := range sections {
		if section.Category == category {
			filtered = append(filtered, section)
		}
	}
	return filtered
}

// Markdown renders sections as a single markdown document.
func Markdown(sections []Section) string {
	var sb strings.Builder
	for i, section := range sections {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(section.Header)
		sb.WriteString("\n\n")
		sb.WriteString(strings.TrimSpace(section.Body))
	}
	sb.WriteString("\n")
	return sb.String()
}
