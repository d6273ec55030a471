package skills

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/jingkaihe/skillint/pkg/frontmatter"
	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
)

const skillFileName = "SKILL.md"

// defaultDenylist holds directory names never descended into during
// location, matching the usual version-control and build-output folders.
var defaultDenylist = []string{".git", "node_modules", "vendor", "dist", "build"}

// Discovery handles locating and loading skill documents under a root
// directory
type Discovery struct {
	denylist map[string]struct{}
	excluded map[string]struct{}
}

// Option is a function that configures a Discovery
type Option func(*Discovery) error

// WithDenylist replaces the set of directory names skipped during traversal
func WithDenylist(names ...string) Option {
	return func(d *Discovery) error {
		d.denylist = make(map[string]struct{}, len(names))
		for _, name := range names {
			d.denylist[name] = struct{}{}
		}
		return nil
	}
}

// WithExcludedNames marks skill directory names to skip entirely, such as
// the literal "template" placeholder shipped alongside real skills
func WithExcludedNames(names ...string) Option {
	return func(d *Discovery) error {
		for _, name := range names {
			d.excluded[name] = struct{}{}
		}
		return nil
	}
}

// NewDiscovery creates a new skill discovery instance
func NewDiscovery(opts ...Option) (*Discovery, error) {
	d := &Discovery{
		denylist: make(map[string]struct{}, len(defaultDenylist)),
		excluded: make(map[string]struct{}),
	}
	for _, name := range defaultDenylist {
		d.denylist[name] = struct{}{}
	}

	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// LocateDocuments walks root and returns every SKILL.md found, in sorted
// path order. Denylisted directories are not descended into and excluded
// skill names are dropped. A root that does not exist is a run-fatal error;
// missing optional subdirectories below it are simply absent from the walk.
func (d *Discovery) LocateDocuments(root string) ([]Document, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, errors.Wrapf(err, "cannot read root directory %s", root)
	}

	var docs []Document
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() {
			if _, denied := d.denylist[entry.Name()]; denied && path != root {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.Name() != skillFileName {
			return nil
		}

		dir := filepath.Dir(path)
		doc := Document{
			Path:         path,
			Dir:          dir,
			ExpectedName: filepath.Base(dir),
			Category:     filepath.Base(filepath.Dir(dir)),
		}

		if _, skip := d.excluded[doc.ExpectedName]; skip {
			return nil
		}

		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to walk skill tree")
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].Path < docs[j].Path })
	return docs, nil
}

// DiscoverSkills locates and fully loads all skills under root. Documents
// that fail to load are skipped; the linter, not the loader, is where load
// problems get reported.
func (d *Discovery) DiscoverSkills(root string) (map[string]*Skill, error) {
	docs, err := d.LocateDocuments(root)
	if err != nil {
		return nil, err
	}

	skills := make(map[string]*Skill)
	for _, doc := range docs {
		skill, err := d.loadSkill(doc.Path)
		if err != nil {
			continue
		}

		if _, exists := skills[skill.Name]; !exists {
			skill.Directory = doc.Dir
			skills[skill.Name] = skill
		}
	}

	return skills, nil
}

// ListSkillNames returns the names of all skills under root
func (d *Discovery) ListSkillNames(root string) ([]string, error) {
	skills, err := d.DiscoverSkills(root)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(skills))
	for name := range skills {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}

// loadSkill loads a single skill from its SKILL.md file
func (d *Discovery) loadSkill(path string) (*Skill, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read skill file")
	}

	md := goldmark.New(
		goldmark.WithExtensions(meta.Meta),
	)

	var buf bytes.Buffer
	pctx := parser.NewContext()

	if err := md.Convert(content, &buf, parser.WithContext(pctx)); err != nil {
		return nil, errors.Wrap(err, "failed to parse markdown")
	}

	metaData := meta.Get(pctx)
	if metaData == nil {
		return nil, errors.New("missing frontmatter")
	}

	name, _ := metaData["name"].(string)
	description, _ := metaData["description"].(string)

	if name == "" {
		return nil, errors.New("skill name is required in frontmatter")
	}
	if description == "" {
		return nil, errors.New("skill description is required in frontmatter")
	}

	_, body, _ := frontmatter.Parse(string(content))

	return &Skill{
		Name:        name,
		Description: description,
		Content:     body,
	}, nil
}
