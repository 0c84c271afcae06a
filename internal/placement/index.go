// Package placement indexes hierarchical guidance sheets and gates engine
// construction on a minimum set of topical keywords being present somewhere
// in the corpus — a defense against silently incomplete input.
package placement

import (
	"sort"
	"strings"

	"firepanel/platform/apperr"
)

// Rule is one row of a left-indented hierarchical placement sheet: the
// ancestor category labels leading to it, plus the rule text found at its
// depth.
type Rule struct {
	Path []string
	Text string
}

// RequiredKeywords are the topical terms the engine refuses to operate
// without — missing any of these means the loaded guidance is
// catastrophically incomplete, not merely sparse.
var RequiredKeywords = []string{
	"power supply",
	"audio controller",
	"amplifier",
	"display",
	"annunciator",
}

// Index is the flat, queryable form of a placement sheet.
type Index struct {
	rules []Rule
}

// Row is one entry of an opaque hierarchical sheet — ancestor
// categories in the left columns followed by the rule text in the first
// non-empty cell at its depth. Sheet readers live outside this package;
// Build only ever sees already-split rows.
type Row struct {
	Path []string
	Text string
}

// Build flattens a hierarchical sheet into an Index and asserts that
// RequiredKeywords all appear somewhere in the corpus. It returns
// apperr.Internal-wrapped IncompleteGuidance naming the missing terms when
// they don't — this check is fatal at construction, never recoverable.
func Build(rows []Row) (*Index, error) {
	rules := make([]Rule, 0, len(rows))
	for _, row := range rows {
		text := strings.TrimSpace(row.Text)
		if text == "" {
			continue
		}
		rules = append(rules, Rule{Path: row.Path, Text: text})
	}

	idx := &Index{rules: rules}
	if missing := idx.missingKeywords(RequiredKeywords); len(missing) > 0 {
		return nil, apperr.Internal("IncompleteGuidance: missing required terms: " + strings.Join(missing, ", "))
	}
	return idx, nil
}

// Rules returns every indexed placement rule.
func (idx *Index) Rules() []Rule {
	return idx.rules
}

// HasKeyword reports whether keyword appears, case-insensitively, anywhere
// in the corpus of rule texts.
func (idx *Index) HasKeyword(keyword string) bool {
	needle := strings.ToLower(keyword)
	for _, rule := range idx.rules {
		if strings.Contains(strings.ToLower(rule.Text), needle) {
			return true
		}
	}
	return false
}

func (idx *Index) missingKeywords(required []string) []string {
	missing := make([]string, 0)
	for _, keyword := range required {
		if !idx.HasKeyword(keyword) {
			missing = append(missing, keyword)
		}
	}
	sort.Strings(missing)
	return missing
}
