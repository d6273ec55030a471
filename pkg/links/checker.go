// Package links finds Markdown link targets and resolves the relative ones
// against the filesystem. Extraction walks the goldmark AST, so targets
// inside fenced or inline code never count as links. The same checker backs
// the advisory per-skill pass and the repo-wide hard-failure scan.
package links

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// skippedSchemes are link prefixes that never resolve to local files
var skippedSchemes = []string{
	"http://",
	"https://",
	"mailto:",
	"tel:",
	"data:",
	"javascript:",
}

// excludedDirNames are directory names skipped during the repository-wide
// scan: version-control metadata plus dependency and build output
var excludedDirNames = []string{".git", "node_modules", "vendor", "dist", "build", ".idea", ".vscode"}

// Broken is a link whose resolved local target does not exist.
type Broken struct {
	Document string // path of the Markdown file containing the link
	Target   string // link target as written
	Resolved string // filesystem path the target resolved to
}

// Extract returns every link and image destination in body, in document
// order.
func Extract(body []byte) []string {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(body))

	var targets []string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Link:
			targets = append(targets, string(node.Destination))
		case *ast.Image:
			targets = append(targets, string(node.Destination))
		}
		return ast.WalkContinue, nil
	})

	return targets
}

// Checkable reports whether target is a relative local reference worth
// resolving. In-page anchors, absolute root paths, external schemes, and
// targets still containing template braces are all skipped.
func Checkable(target string) bool {
	if target == "" {
		return false
	}
	if strings.HasPrefix(target, "#") || strings.HasPrefix(target, "/") {
		return false
	}
	for _, scheme := range skippedSchemes {
		if strings.HasPrefix(strings.ToLower(target), scheme) {
			return false
		}
	}
	if strings.Contains(target, "{{") || strings.Contains(target, "}}") {
		return false
	}
	return true
}

// stripFragment removes a trailing anchor or query portion from a target
func stripFragment(target string) string {
	if idx := strings.IndexAny(target, "#?"); idx != -1 {
		return target[:idx]
	}
	return target
}

// CheckDocument resolves every checkable link in body against the directory
// containing docPath and returns the ones that do not exist on disk.
func CheckDocument(docPath string, body []byte) []Broken {
	dir := filepath.Dir(docPath)

	var broken []Broken
	for _, target := range Extract(body) {
		if !Checkable(target) {
			continue
		}

		stripped := stripFragment(target)
		if stripped == "" {
			continue
		}

		resolved := filepath.Join(dir, filepath.FromSlash(stripped))
		if _, err := os.Stat(resolved); err != nil {
			broken = append(broken, Broken{
				Document: docPath,
				Target:   target,
				Resolved: resolved,
			})
		}
	}

	return broken
}

// ScanRepository checks every Markdown file under root, excluding the fixed
// directory denylist plus any extra doublestar patterns matched against the
// root-relative path. Unreadable files are collected into a single run-fatal
// error; per-link failures never abort the scan.
func ScanRepository(root string, excludePatterns []string) ([]Broken, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, errors.Wrapf(err, "cannot read root directory %s", root)
	}

	excluded := make(map[string]struct{}, len(excludedDirNames))
	for _, name := range excludedDirNames {
		excluded[name] = struct{}{}
	}

	var broken []Broken
	var readErrs *multierror.Error

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		if entry.IsDir() {
			if _, denied := excluded[entry.Name()]; denied && path != root {
				return filepath.SkipDir
			}
			for _, pattern := range excludePatterns {
				if ok, _ := doublestar.Match(pattern, rel); ok {
					return filepath.SkipDir
				}
			}
			return nil
		}

		if !strings.EqualFold(filepath.Ext(entry.Name()), ".md") {
			return nil
		}
		for _, pattern := range excludePatterns {
			if ok, _ := doublestar.Match(pattern, rel); ok {
				return nil
			}
		}

		content, readErr := os.ReadFile(path)
		if readErr != nil {
			readErrs = multierror.Append(readErrs, errors.Wrapf(readErr, "failed to read %s", path))
			return nil
		}

		broken = append(broken, CheckDocument(path, content)...)
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to walk repository")
	}
	if err := readErrs.ErrorOrNil(); err != nil {
		return nil, err
	}

	sort.Slice(broken, func(i, j int) bool {
		if broken[i].Document != broken[j].Document {
			return broken[i].Document < broken[j].Document
		}
		return broken[i].Target < broken[j].Target
	})
	return broken, nil
}
