package presenter

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	presenter := New()
	assert.NotNil(t, presenter)
	assert.Equal(t, os.Stdout, presenter.output)
	assert.Equal(t, os.Stderr, presenter.errorOutput)
	assert.False(t, presenter.quiet)
}

func TestDetectColorMode(t *testing.T) {
	tests := []struct {
		name          string
		noColor       string
		skillintColor string
		expected      ColorMode
	}{
		{"NO_COLOR set", "1", "", ColorNever},
		{"SKILLINT_COLOR always", "", "always", ColorAlways},
		{"SKILLINT_COLOR force", "", "force", ColorAlways},
		{"SKILLINT_COLOR never", "", "never", ColorNever},
		{"SKILLINT_COLOR off", "", "off", ColorNever},
		{"SKILLINT_COLOR auto", "", "auto", ColorAuto},
		{"default", "", "", ColorAuto},
		{"invalid skillint color", "", "invalid", ColorAuto},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Unsetenv("NO_COLOR")
			os.Unsetenv("SKILLINT_COLOR")

			if tt.noColor != "" {
				os.Setenv("NO_COLOR", tt.noColor)
			}
			if tt.skillintColor != "" {
				os.Setenv("SKILLINT_COLOR", tt.skillintColor)
			}

			result := detectColorMode()
			assert.Equal(t, tt.expected, result)

			os.Unsetenv("NO_COLOR")
			os.Unsetenv("SKILLINT_COLOR")
		})
	}
}

func TestError(t *testing.T) {
	var errorOutput bytes.Buffer
	presenter := NewWithOptions(nil, &errorOutput, ColorNever)

	err := errors.New("test error")
	presenter.Error(err, "test context")

	output := errorOutput.String()
	assert.Contains(t, output, "[ERROR]")
	assert.Contains(t, output, "test context")
	assert.Contains(t, output, "test error")

	errorOutput.Reset()
	presenter.Error(nil, "context")
	assert.Empty(t, errorOutput.String())
}

func TestSuccessAndQuiet(t *testing.T) {
	var output bytes.Buffer
	presenter := NewWithOptions(&output, nil, ColorNever)

	presenter.Success("Operation completed")
	assert.Contains(t, output.String(), "✓")
	assert.Contains(t, output.String(), "Operation completed")

	output.Reset()
	presenter.SetQuiet(true)
	presenter.Success("Operation completed")
	assert.Empty(t, output.String())
}

func TestFinding(t *testing.T) {
	var errorOutput bytes.Buffer
	presenter := NewWithOptions(nil, &errorOutput, ColorNever)

	presenter.Finding("skills/coding/api-design/SKILL.md", "error", "missing required field: name")

	output := errorOutput.String()
	assert.Contains(t, output, "skills/coding/api-design/SKILL.md")
	assert.Contains(t, output, "error")
	assert.Contains(t, output, "missing required field: name")
}

func TestFindingIgnoresQuietMode(t *testing.T) {
	// Findings carry the actual validation outcome and are never suppressed
	var errorOutput bytes.Buffer
	presenter := NewWithOptions(nil, &errorOutput, ColorNever)
	presenter.SetQuiet(true)

	presenter.Finding("doc.md", "warning", "short description")
	assert.NotEmpty(t, errorOutput.String())
}

func TestTally(t *testing.T) {
	var output bytes.Buffer
	presenter := NewWithOptions(&output, nil, ColorNever)

	presenter.Tally(&RunTally{Documents: 3, OK: 1, Warning: 1, Failing: 1, Errors: 2, Warnings: 4})

	result := output.String()
	assert.Contains(t, result, "Documents: 3")
	assert.Contains(t, result, "Failing: 1")
	assert.Contains(t, result, "Warnings: 4")

	output.Reset()
	presenter.Tally(nil)
	assert.Empty(t, output.String())
}
