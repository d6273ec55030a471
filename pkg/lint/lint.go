package lint

import (
	"context"
	"os"

	"github.com/jingkaihe/skillint/pkg/logger"
	"github.com/jingkaihe/skillint/pkg/skills"
	"github.com/pkg/errors"
)

// templateSkillName is the placeholder skill shipped alongside real ones;
// it never validates cleanly and is excluded from every run.
const templateSkillName = "template"

// Linter runs the full pipeline over a skill tree: locate documents, parse
// frontmatter, evaluate rules, aggregate into a report. It is a single-pass
// batch transform with no state between runs.
type Linter struct {
	discovery *skills.Discovery
	evaluator *Evaluator
}

// NewLinter creates a Linter with the given rule configuration
func NewLinter(config *Config, opts ...skills.Option) (*Linter, error) {
	opts = append([]skills.Option{skills.WithExcludedNames(templateSkillName)}, opts...)
	discovery, err := skills.NewDiscovery(opts...)
	if err != nil {
		return nil, err
	}

	return &Linter{
		discovery: discovery,
		evaluator: NewEvaluator(config),
	}, nil
}

// Run lints every skill document under root and returns the aggregated
// report. Per-document findings never abort the run; an unreadable file or
// root directory does.
func (l *Linter) Run(ctx context.Context, root string) (*Report, error) {
	log := logger.G(ctx)

	docs, err := l.discovery.LocateDocuments(root)
	if err != nil {
		return nil, err
	}
	log.WithField("documents", len(docs)).Debug("located skill documents")

	results := make([]Result, 0, len(docs))
	for _, doc := range docs {
		content, err := os.ReadFile(doc.Path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", doc.Path)
		}

		result := l.evaluator.Evaluate(doc, string(content))
		log.WithField("document", doc.Path).WithField("status", result.Status).Debug("evaluated document")
		results = append(results, result)
	}

	return NewReport(results), nil
}
