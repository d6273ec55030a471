// Package frontmatter parses the restricted key-value header block used by
// skill documents. It is an intentionally minimal subset of YAML: flat string
// fields only, no type coercion, no nesting, no lists. Both the validator and
// the health reporter parse headers through this package so the two never
// drift apart.
package frontmatter

import (
	"regexp"
	"strings"
)

const delimiter = "---"

var fieldRe = regexp.MustCompile(`^([a-z][a-z-]*):(.*)$`)

// Field is a single key-value pair from the header, in source order.
type Field struct {
	Key   string
	Value string
}

// FrontMatter is the parsed header of a document. Fields preserve source
// order; Raw is the header text between the delimiters, needed for checks
// that care about line order rather than the parsed mapping.
type FrontMatter struct {
	fields []Field
	raw    string
}

// Parse extracts the frontmatter block from content. It returns the parsed
// header, the body (text after the closing delimiter, leading blank lines
// stripped), and whether a header was present at all. ok is false when the
// content does not begin with the exact delimiter pattern or the closing
// delimiter is missing; callers report that as "missing frontmatter" rather
// than treating it as a parse failure.
func Parse(content string) (*FrontMatter, string, bool) {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], "\r") != delimiter {
		return nil, content, false
	}

	closing := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], "\r") == delimiter {
			closing = i
			break
		}
	}
	if closing == -1 {
		return nil, content, false
	}

	headerLines := lines[1:closing]
	fm := &FrontMatter{
		raw: strings.Join(headerLines, "\n"),
	}

	for i := 0; i < len(headerLines); i++ {
		line := strings.TrimRight(headerLines[i], "\r")
		m := fieldRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		key := m[1]
		value := strings.TrimSpace(m[2])

		if value == "" {
			// Folded multi-line scalar: consume following lines while they
			// are indented or blank, join with newlines, trim the result.
			var folded []string
			j := i + 1
			for ; j < len(headerLines); j++ {
				next := strings.TrimRight(headerLines[j], "\r")
				if next != "" && !strings.HasPrefix(next, " ") && !strings.HasPrefix(next, "\t") {
					break
				}
				folded = append(folded, strings.TrimSpace(next))
			}
			i = j - 1
			value = strings.TrimSpace(strings.Join(folded, "\n"))
		} else {
			value = stripQuotes(value)
		}

		fm.fields = append(fm.fields, Field{Key: key, Value: value})
	}

	body := strings.TrimLeft(strings.Join(lines[closing+1:], "\n"), "\n")
	return fm, body, true
}

// stripQuotes removes one pair of surrounding quote characters from an
// inline value
func stripQuotes(value string) string {
	if len(value) >= 2 {
		first := value[0]
		last := value[len(value)-1]
		if first == last && (first == '"' || first == '\'') {
			return value[1 : len(value)-1]
		}
	}
	return value
}

// Get returns the value for key and whether the key was present.
func (fm *FrontMatter) Get(key string) (string, bool) {
	for _, f := range fm.fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// Has reports whether key appears in the header.
func (fm *FrontMatter) Has(key string) bool {
	_, ok := fm.Get(key)
	return ok
}

// Fields returns the parsed fields in source order.
func (fm *FrontMatter) Fields() []Field {
	return fm.fields
}

// Raw returns the unparsed header text between the delimiters.
func (fm *FrontMatter) Raw() string {
	return fm.raw
}

// KeyLine returns the 1-based line number within the raw header where key
// starts a field, or -1 if the key never starts one. Checks that depend on
// textual order in the header use this rather than the parsed mapping.
func (fm *FrontMatter) KeyLine(key string) int {
	for i, line := range strings.Split(fm.raw, "\n") {
		m := fieldRe.FindStringSubmatch(strings.TrimRight(line, "\r"))
		if m != nil && m[1] == key {
			return i + 1
		}
	}
	return -1
}
