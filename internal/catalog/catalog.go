// Package catalog implements fixed, ordered term tables used for
// presence-testing text via word-bounded pattern matching. Tables are
// compiled once at process start and are read-only afterwards.
package catalog

import (
	"regexp"
	"strings"
)

// Term pairs a display name with its matching pattern. The pattern is a
// regular expression fragment; most entries are plain literals, a few need
// escaped punctuation (C++, Node.js).
type Term struct {
	Display string
	Pattern string
}

type matcher struct {
	display string
	re      *regexp.Regexp
}

// Catalog is a compiled, ordered term table.
type Catalog struct {
	matchers []matcher
}

// New compiles a catalog from the given terms. It panics on an invalid
// pattern, which is acceptable because all tables are static.
func New(terms []Term) *Catalog {
	matchers := make([]matcher, 0, len(terms))
	for _, t := range terms {
		matchers = append(matchers, matcher{
			display: t.Display,
			re:      regexp.MustCompile(`(?i)` + bounded(t.Pattern)),
		})
	}
	return &Catalog{matchers: matchers}
}

// FindAll returns the display names of all terms present in text,
// deduplicated case-insensitively and in catalog order.
func (c *Catalog) FindAll(text string) []string {
	found := make([]string, 0)
	seen := make(map[string]bool)
	for _, m := range c.matchers {
		if !m.re.MatchString(text) {
			continue
		}
		key := strings.ToLower(m.display)
		if seen[key] {
			continue
		}
		seen[key] = true
		found = append(found, m.display)
	}
	return found
}

// Len returns the number of terms in the catalog.
func (c *Catalog) Len() int {
	return len(c.matchers)
}

// bounded wraps a pattern with word-boundary anchors. \b only anchors
// against word-character edges, so patterns that start or end on
// punctuation (C++, C#, CI/CD) get an explicit non-word guard instead.
func bounded(pattern string) string {
	literal := strings.ReplaceAll(pattern, `\`, "")
	left, right := `\b`, `\b`
	if !isWordChar(literal[0]) {
		left = `(?:^|[^0-9A-Za-z_])`
	}
	if !isWordChar(literal[len(literal)-1]) {
		right = `(?:$|[^0-9A-Za-z_])`
	}
	return left + pattern + right
}

func isWordChar(b byte) bool {
	return b == '_' ||
		(b >= '0' && b <= '9') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= 'a' && b <= 'z')
}
