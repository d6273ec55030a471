// Package skills locates and loads skill documents: directories containing a
// SKILL.md file whose YAML frontmatter carries the skill's name and
// description. The locator feeds the linter; the loader backs the list
// command.
package skills

// Skill represents a loaded skill with its metadata
type Skill struct {
	Name        string // Unique name from frontmatter
	Description string // Brief description of what the skill does
	Directory   string // Full path to the skill directory
	Content     string // Full content of SKILL.md (body, not frontmatter)
}

// Metadata represents the YAML frontmatter in SKILL.md files
type Metadata struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Document is a candidate SKILL.md located on disk, before any parsing. The
// expected name and category are derived from where the file sits so the
// linter can check them against the frontmatter.
type Document struct {
	Path         string // path to the SKILL.md file
	Dir          string // skill directory containing the file
	ExpectedName string // base name of the skill directory
	Category     string // base name of the directory above the skill directory
}

// Identifier returns the category-qualified identifier used in allowlist
// entries, e.g. "marketing/seo-audit".
func (d Document) Identifier() string {
	return d.Category + "/" + d.ExpectedName
}
