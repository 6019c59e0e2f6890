package brainstorm

import (
	"time"

	"github.com/google/uuid"
)

// RunState holds the inputs and outputs of one brainstorming run. Each task
// writes exactly one output field; tasks executing concurrently touch
// disjoint fields, so the struct needs no synchronization.
type RunState struct {
	// ID uniquely identifies the run.
	ID uuid.UUID `json:"id"`

	// Positioning is the validated brand positioning the run was started with.
	Positioning Positioning `json:"positioning"`

	// Flagship is the raw flagship content-topic list.
	Flagship string `json:"flagship"`

	// FlagshipReflection is the top-5 analysis derived from Flagship.
	FlagshipReflection string `json:"flagship_reflection"`

	// SeasonalEvent is the list of relevant holidays and seasonal events.
	SeasonalEvent string `json:"seasonal_event"`

	// SeasonalContent is the seasonal content derived from SeasonalEvent.
	SeasonalContent string `json:"seasonal_content"`

	// Evergreen is the list of evergreen content topics.
	Evergreen string `json:"evergreen"`

	// Editing is the final content-strategy summary composed from
	// FlagshipReflection, SeasonalContent, and Evergreen.
	Editing string `json:"editing"`

	// StartedAt and CompletedAt bound the run's wall-clock duration.
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`
}

// newRunState initializes a run for the given positioning.
func newRunState(p Positioning) *RunState {
	return &RunState{
		ID:          uuid.New(),
		Positioning: p,
		StartedAt:   time.Now(),
	}
}
