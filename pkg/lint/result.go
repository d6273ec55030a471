// Package lint evaluates skill documents against the structural rules:
// required frontmatter fields, name shape, description and body limits,
// field order, trailing newline, and reference links. It aggregates the
// per-document results into a run-level report with text, JSON, CSV, and
// Markdown renderings.
package lint

// Status is the derived per-document outcome.
type Status string

const (
	// StatusOK means the document produced no errors and no warnings
	StatusOK Status = "ok"
	// StatusWarning means the document produced warnings but no errors
	StatusWarning Status = "warning"
	// StatusFailing means the document produced at least one error
	StatusFailing Status = "failing"
)

// Metrics are derived measurements reported alongside findings. The token
// estimate is a stated heuristic (body characters divided by four, rounded
// up), never an exact count.
type Metrics struct {
	DescriptionLength int `json:"descriptionLength"`
	BodyLines         int `json:"bodyLines"`
	TokenEstimate     int `json:"tokenEstimate"`
}

// Result is the outcome of evaluating one document.
type Result struct {
	Path     string   `json:"path"`
	Category string   `json:"category"`
	Name     string   `json:"name"`
	Status   Status   `json:"status"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
	Metrics  Metrics  `json:"metrics"`
}

// deriveStatus computes the status from the collected findings
func deriveStatus(errors, warnings []string) Status {
	switch {
	case len(errors) > 0:
		return StatusFailing
	case len(warnings) > 0:
		return StatusWarning
	default:
		return StatusOK
	}
}
