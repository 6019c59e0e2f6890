package brainstorm

import (
	"fmt"
	"strings"
	"text/template"
)

// promptParams is the data passed to every prompt template. The four
// positioning fields are always set; the upstream content fields are only
// populated for the templates that declare a dependency on them.
type promptParams struct {
	CoreValue      string
	TargetAudience string
	Persona        string
	Monetization   string
	BrandContext   string

	FlagshipContent    string
	SeasonalEvents     string
	FlagshipReflection string
	SeasonalContent    string
	EvergreenContent   string
}

// positioningBlock is shared by all templates so every prompt carries the
// same brand framing.
const positioningBlock = `Our social media positioning:
- Core value proposition: {{.CoreValue}}
- Target audience: {{.TargetAudience}}
- Brand persona: {{.Persona}}
- Monetization strategy: {{.Monetization}}
{{- if .BrandContext}}

Additional context from the brand's website:
{{.BrandContext}}
{{- end}}`

const flagshipPromptText = `You are a social media content strategist.

` + positioningBlock + `

Provide a numbered list of 10 flagship content topics that showcase our
expertise and core value. Flagship content is the cornerstone content the
brand becomes known for. For each topic, give a short title and one sentence
describing what the content covers and why it fits the positioning.`

const flagshipReflectionPromptText = `You are a social media content strategist reviewing flagship topic ideas.

` + positioningBlock + `

Here are the flagship content topics proposed so far:
{{.FlagshipContent}}

Select the top 5 flagship content topics that best fit the positioning and
propose a unique angle for each topic. Explain briefly why each selected
topic will resonate with the target audience.`

const seasonalEventPromptText = `You are a social media content strategist.

` + positioningBlock + `

Identify holidays and seasonal events over the next twelve months that are
relevant to this brand and its audience. List each event with its approximate
date and one sentence on why it matters for the positioning.`

const seasonalContentPromptText = `You are a social media content strategist planning seasonal content.

` + positioningBlock + `

Here are the holidays and seasonal events identified for this brand:
{{.SeasonalEvents}}

Suggest seasonal content tied to these events and propose a unique angle for
each topic. Make each suggestion concrete enough to brief a content creator.`

const evergreenPromptText = `You are a social media content strategist.

` + positioningBlock + `

Suggest evergreen content topics that stay relevant no matter what year it
is. Focus on recurring questions, fundamentals, and how-to material the
target audience always needs. Provide a numbered list with a short rationale
per topic.`

const editingPromptText = `You are the managing editor of a social media content program.

` + positioningBlock + `

Here is the refined flagship content analysis:
{{.FlagshipReflection}}

Here are the seasonal content suggestions:
{{.SeasonalContent}}

Here are the evergreen content suggestions:
{{.EvergreenContent}}

Summarize all of the above into a cohesive content strategy report. Group the
recommendations by category, call out the strongest ideas, and close with
practical next steps for the team.`

// exportIdeasPromptText converts a finished strategy summary into a
// machine-readable idea list. Used by the structured export, not by the run
// itself.
const exportIdeasPromptText = `Convert the following content strategy summary into JSON.

Return ONLY a JSON array. Each element must have this structure:
{"title": "...", "category": "flagship|seasonal|evergreen", "angle": "..."}

No text before or after the JSON array.

Content strategy summary:
{{.Summary}}`

var exportIdeasTemplate = template.Must(template.New("export_ideas").Parse(exportIdeasPromptText))

// renderExportPrompt builds the JSON-conversion prompt for the given summary.
func renderExportPrompt(summary string) (string, error) {
	var sb strings.Builder
	err := exportIdeasTemplate.Execute(&sb, struct{ Summary string }{Summary: summary})
	if err != nil {
		return "", fmt.Errorf("rendering export prompt: %w", err)
	}
	return sb.String(), nil
}

var promptTemplates = template.Must(template.New("prompts").Parse(
	`{{define "flagship"}}` + flagshipPromptText + `{{end}}` +
		`{{define "flagship_reflection"}}` + flagshipReflectionPromptText + `{{end}}` +
		`{{define "seasonal_event"}}` + seasonalEventPromptText + `{{end}}` +
		`{{define "seasonal_content"}}` + seasonalContentPromptText + `{{end}}` +
		`{{define "evergreen"}}` + evergreenPromptText + `{{end}}` +
		`{{define "editing"}}` + editingPromptText + `{{end}}`))

// renderPrompt executes the named prompt template with the given parameters.
func renderPrompt(name string, params promptParams) (string, error) {
	var sb strings.Builder
	if err := promptTemplates.ExecuteTemplate(&sb, name, params); err != nil {
		return "", fmt.Errorf("rendering prompt %q: %w", name, err)
	}
	return sb.String(), nil
}
