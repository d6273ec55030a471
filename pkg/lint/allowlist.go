package lint

import (
	"bufio"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Allowlist is the set of category-qualified skill identifiers exempt from
// the body-length rule until they get refactored. Entries look like
// "marketing/seo-audit", one per line; blank lines and #-comments are
// ignored.
type Allowlist map[string]struct{}

// LoadAllowlist reads an allowlist file from path. The file is consumed
// read-only, once per run.
func LoadAllowlist(path string) (Allowlist, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open allowlist %s", path)
	}
	defer file.Close()

	allowlist := make(Allowlist)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		allowlist[line] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read allowlist %s", path)
	}

	return allowlist, nil
}

// Contains reports whether identifier is exempt.
func (a Allowlist) Contains(identifier string) bool {
	_, ok := a[identifier]
	return ok
}
