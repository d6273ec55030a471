// Package health generates the persisted skill health report: a lint pass
// over the whole skill tree whose results are written to fixed JSON and
// Markdown output files, overwritten on every run. The reporter is
// informational, not a gate; it runs non-strictly and never fails a build
// over findings.
package health

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/jingkaihe/skillint/pkg/lint"
	"github.com/jingkaihe/skillint/pkg/logger"
	"github.com/pkg/errors"
)

const (
	// DefaultOutputDir is where report files land relative to the working
	// directory
	DefaultOutputDir = "reports"

	jsonFileName     = "skill-health.json"
	markdownFileName = "skill-health.md"
)

// Snapshot is the envelope persisted as JSON: the lint report plus run
// metadata.
type Snapshot struct {
	RunID       uuid.UUID     `json:"runId"`
	GeneratedAt time.Time     `json:"generatedAt"`
	Totals      lint.Totals   `json:"totals"`
	Results     []lint.Result `json:"results"`
}

// Reporter runs the lint pass and persists the outcome.
type Reporter struct {
	linter    *lint.Linter
	outputDir string
}

// NewReporter creates a Reporter writing into outputDir. An empty outputDir
// means DefaultOutputDir.
func NewReporter(outputDir string) (*Reporter, error) {
	if outputDir == "" {
		outputDir = DefaultOutputDir
	}

	// The health report surfaces oversized bodies as data, not as failures,
	// so the body-length rule stays off.
	config := lint.DefaultConfig()
	config.Strict = false

	linter, err := lint.NewLinter(config)
	if err != nil {
		return nil, err
	}

	return &Reporter{
		linter:    linter,
		outputDir: outputDir,
	}, nil
}

// Run lints the skill tree under root and writes both report files. Output
// write failures are aggregated so a failed JSON write does not hide a
// failed Markdown write.
func (r *Reporter) Run(ctx context.Context, root string) (*lint.Report, error) {
	report, err := r.linter.Run(ctx, root)
	if err != nil {
		return nil, err
	}

	snapshot := Snapshot{
		RunID:       uuid.New(),
		GeneratedAt: time.Now().UTC(),
		Totals:      report.Totals,
		Results:     report.Results,
	}

	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create output directory %s", r.outputDir)
	}

	var writeErrs *multierror.Error

	if err := r.writeJSON(snapshot); err != nil {
		writeErrs = multierror.Append(writeErrs, err)
	}
	if err := r.writeMarkdown(report, snapshot); err != nil {
		writeErrs = multierror.Append(writeErrs, err)
	}
	if err := writeErrs.ErrorOrNil(); err != nil {
		return nil, err
	}

	logger.G(ctx).WithField("runId", snapshot.RunID).WithField("outputDir", r.outputDir).Debug("wrote health report")
	return report, nil
}

// JSONPath returns the path of the persisted JSON report.
func (r *Reporter) JSONPath() string {
	return filepath.Join(r.outputDir, jsonFileName)
}

// MarkdownPath returns the path of the persisted Markdown report.
func (r *Reporter) MarkdownPath() string {
	return filepath.Join(r.outputDir, markdownFileName)
}

func (r *Reporter) writeJSON(snapshot Snapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal health snapshot")
	}
	data = append(data, '\n')

	return errors.Wrapf(os.WriteFile(r.JSONPath(), data, 0o644), "failed to write %s", r.JSONPath())
}

func (r *Reporter) writeMarkdown(report *lint.Report, snapshot Snapshot) error {
	var buf bytes.Buffer
	if err := report.RenderMarkdown(&buf); err != nil {
		return err
	}
	fmt.Fprintf(&buf, "\n---\nGenerated at %s (run %s)\n",
		snapshot.GeneratedAt.Format(time.RFC3339), snapshot.RunID)

	return errors.Wrapf(os.WriteFile(r.MarkdownPath(), buf.Bytes(), 0o644), "failed to write %s", r.MarkdownPath())
}
