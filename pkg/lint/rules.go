package lint

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jingkaihe/skillint/pkg/frontmatter"
	"github.com/jingkaihe/skillint/pkg/links"
	"github.com/jingkaihe/skillint/pkg/skills"
)

const (
	maxDescriptionLength = 1024
	maxBodyLines         = 500
	minDescriptionLength = 50
	usagePhrase          = "use when"
)

// nameRe matches lowercase letter/digit groups joined by single hyphens,
// with no leading, trailing, or doubled hyphens
var nameRe = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Config controls which rules the evaluator applies.
type Config struct {
	// Strict enables the body line-count limit. Allowlisted documents are
	// exempt from that one rule even in strict mode.
	Strict bool
	// Lenient disables the name-vs-directory match rule.
	Lenient bool
	// Allowlist exempts category/name identifiers from the body-length rule.
	Allowlist Allowlist
}

// DefaultConfig returns the default rule configuration: strict, not lenient,
// empty allowlist.
func DefaultConfig() *Config {
	return &Config{
		Strict:    true,
		Lenient:   false,
		Allowlist: make(Allowlist),
	}
}

// Evaluator applies the validation rules to one document at a time.
// Evaluation is stateless across documents; a malformed document never
// affects the evaluation of another.
type Evaluator struct {
	config *Config
}

// NewEvaluator creates an Evaluator for the given configuration
func NewEvaluator(config *Config) *Evaluator {
	if config == nil {
		config = DefaultConfig()
	}
	return &Evaluator{config: config}
}

// Evaluate checks content against every enabled rule and returns the
// per-document result. A missing frontmatter block yields exactly one error
// and suppresses the field-level rules, since there are no fields to check.
func (e *Evaluator) Evaluate(doc skills.Document, content string) Result {
	result := Result{
		Path:     doc.Path,
		Category: doc.Category,
		Name:     doc.ExpectedName,
	}

	fm, body, ok := frontmatter.Parse(content)
	result.Metrics = measure(body)

	if !ok {
		result.Errors = append(result.Errors, "missing frontmatter")
		result.Status = deriveStatus(result.Errors, result.Warnings)
		return result
	}

	name, hasName := fm.Get("name")
	description, hasDescription := fm.Get("description")

	if !hasName {
		result.Errors = append(result.Errors, "missing required field: name")
	}
	if !hasDescription {
		result.Errors = append(result.Errors, "missing required field: description")
	}

	if hasName {
		result.Name = name
		if !e.config.Lenient && name != doc.ExpectedName {
			result.Errors = append(result.Errors,
				fmt.Sprintf("name %q does not match directory name %q", name, doc.ExpectedName))
		}
		if !nameRe.MatchString(name) {
			result.Errors = append(result.Errors,
				fmt.Sprintf("name %q must be lowercase letters/digits separated by single hyphens", name))
		}
	}

	if hasDescription {
		result.Metrics.DescriptionLength = len(description)
		if len(description) > maxDescriptionLength {
			result.Errors = append(result.Errors,
				fmt.Sprintf("description is %d characters, limit is %d", len(description), maxDescriptionLength))
		}
		if len(description) < minDescriptionLength {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("description is only %d characters; it may be under-specified", len(description)))
		}
		if !strings.Contains(strings.ToLower(description), usagePhrase) {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("description does not contain %q; usage guidance may be missing", usagePhrase))
		}
	}

	if hasName && hasDescription {
		nameLine := fm.KeyLine("name")
		descLine := fm.KeyLine("description")
		if nameLine != -1 && descLine != -1 && nameLine > descLine {
			result.Errors = append(result.Errors, "frontmatter field \"name\" must precede \"description\"")
		}
	}

	if e.config.Strict && result.Metrics.BodyLines > maxBodyLines && !e.config.Allowlist.Contains(doc.Identifier()) {
		result.Errors = append(result.Errors,
			fmt.Sprintf("body is %d lines, limit is %d", result.Metrics.BodyLines, maxBodyLines))
	}

	if !strings.HasSuffix(content, "\n") {
		result.Warnings = append(result.Warnings, "file does not end with a trailing newline")
	} else if strings.HasSuffix(content, "\n\n") {
		result.Warnings = append(result.Warnings, "file ends with more than one trailing newline")
	}

	for _, brokenLink := range links.CheckDocument(doc.Path, []byte(body)) {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("broken link: %s", brokenLink.Target))
	}

	result.Status = deriveStatus(result.Errors, result.Warnings)
	return result
}

// measure computes the derived metrics for a document body
func measure(body string) Metrics {
	lines := 0
	if body != "" {
		lines = len(strings.Split(strings.TrimSuffix(body, "\n"), "\n"))
	}

	return Metrics{
		BodyLines: lines,
		// Rough token heuristic: one token per four characters, rounded up.
		TokenEstimate: (len(body) + 3) / 4,
	}
}
