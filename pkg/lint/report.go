package lint

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Totals are the run-level counts computed over all results.
type Totals struct {
	Documents int `json:"documents"`
	OK        int `json:"ok"`
	Warning   int `json:"warning"`
	Failing   int `json:"failing"`
	Errors    int `json:"errors"`
	Warnings  int `json:"warnings"`
}

// Report aggregates every per-document result plus the run totals. It is
// built fresh each run and carries no cross-run state; rendering the same
// results twice produces byte-identical output.
type Report struct {
	Results []Result `json:"results"`
	Totals  Totals   `json:"totals"`
}

// NewReport builds a report from per-document results, computing totals
func NewReport(results []Result) *Report {
	report := &Report{Results: results}
	report.Totals.Documents = len(results)

	for _, result := range results {
		switch result.Status {
		case StatusFailing:
			report.Totals.Failing++
		case StatusWarning:
			report.Totals.Warning++
		default:
			report.Totals.OK++
		}
		report.Totals.Errors += len(result.Errors)
		report.Totals.Warnings += len(result.Warnings)
	}

	return report
}

// Failed reports whether any document produced an error. Warnings never
// affect this.
func (r *Report) Failed() bool {
	return r.Totals.Errors > 0
}

// RenderText writes a line-per-document human-readable summary.
func (r *Report) RenderText(w io.Writer) error {
	for _, result := range r.Results {
		if _, err := fmt.Fprintf(w, "%-8s %s (errors: %d, warnings: %d, lines: %d, ~tokens: %d)\n",
			result.Status, result.Path, len(result.Errors), len(result.Warnings),
			result.Metrics.BodyLines, result.Metrics.TokenEstimate); err != nil {
			return errors.Wrap(err, "failed to render text report")
		}
	}

	_, err := fmt.Fprintf(w, "%d documents: %d ok, %d warning, %d failing\n",
		r.Totals.Documents, r.Totals.OK, r.Totals.Warning, r.Totals.Failing)
	return errors.Wrap(err, "failed to render text report")
}

// RenderJSON writes the per-document results as an indented JSON array.
func (r *Report) RenderJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(r.Results), "failed to render JSON report")
}

// RenderCSV writes one row per document plus a header row.
func (r *Report) RenderCSV(w io.Writer) error {
	writer := csv.NewWriter(w)

	header := []string{"path", "category", "name", "status", "errors", "warnings", "description_length", "body_lines", "token_estimate"}
	if err := writer.Write(header); err != nil {
		return errors.Wrap(err, "failed to render CSV report")
	}

	for _, result := range r.Results {
		row := []string{
			result.Path,
			result.Category,
			result.Name,
			string(result.Status),
			strconv.Itoa(len(result.Errors)),
			strconv.Itoa(len(result.Warnings)),
			strconv.Itoa(result.Metrics.DescriptionLength),
			strconv.Itoa(result.Metrics.BodyLines),
			strconv.Itoa(result.Metrics.TokenEstimate),
		}
		if err := writer.Write(row); err != nil {
			return errors.Wrap(err, "failed to render CSV report")
		}
	}

	writer.Flush()
	return errors.Wrap(writer.Error(), "failed to render CSV report")
}

// RenderMarkdown writes the report as a Markdown document: a totals line, a
// status table, and a findings section for every document with problems.
func (r *Report) RenderMarkdown(w io.Writer) error {
	var b strings.Builder

	b.WriteString("# Skill Health Report\n\n")
	fmt.Fprintf(&b, "%d documents: %d ok, %d warning, %d failing (%d errors, %d warnings)\n\n",
		r.Totals.Documents, r.Totals.OK, r.Totals.Warning, r.Totals.Failing,
		r.Totals.Errors, r.Totals.Warnings)

	b.WriteString("| Document | Status | Errors | Warnings | Lines | ~Tokens |\n")
	b.WriteString("|---|---|---|---|---|---|\n")
	for _, result := range r.Results {
		fmt.Fprintf(&b, "| %s | %s | %d | %d | %d | %d |\n",
			result.Path, result.Status, len(result.Errors), len(result.Warnings),
			result.Metrics.BodyLines, result.Metrics.TokenEstimate)
	}

	wroteHeader := false
	for _, result := range r.Results {
		if len(result.Errors) == 0 && len(result.Warnings) == 0 {
			continue
		}
		if !wroteHeader {
			b.WriteString("\n## Findings\n")
			wroteHeader = true
		}

		fmt.Fprintf(&b, "\n### %s\n\n", result.Path)
		for _, msg := range result.Errors {
			fmt.Fprintf(&b, "- error: %s\n", msg)
		}
		for _, msg := range result.Warnings {
			fmt.Fprintf(&b, "- warning: %s\n", msg)
		}
	}

	_, err := io.WriteString(w, b.String())
	return errors.Wrap(err, "failed to render Markdown report")
}
