package types

import "sort"

// RuleSet maps keywords to rule strings. A rule string may be empty.
type RuleSet map[string]string

// Keywords returns the keywords in application order. The order is the
// lexicographic order of the raw keywords, prefixes included.
func (r RuleSet) Keywords() []string {
	keywords := make([]string, 0, len(r))
	for k := range r {
		keywords = append(keywords, k)
	}
	sort.Strings(keywords)
	return keywords
}
