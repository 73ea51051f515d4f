package forecast

import (
	"sort"
	"strings"
)

// AliasMap maps lowercase subject labels to their canonical casing as stored
// in the source data. Built once per run from the distinct labels present in
// the aggregated table.
type AliasMap struct {
	keys  []string
	canon map[string]string
}

// NewAliasMap builds the alias map from canonical subject labels. Keys are
// scanned in sorted order by Match, so ties resolve deterministically.
func NewAliasMap(labels []string) *AliasMap {
	m := &AliasMap{canon: make(map[string]string, len(labels))}
	for _, label := range labels {
		key := strings.ToLower(label)
		if _, ok := m.canon[key]; ok {
			continue
		}
		m.canon[key] = label
		m.keys = append(m.keys, key)
	}
	sort.Strings(m.keys)
	return m
}

// Match returns the first canonical subject whose lowercase alias equals the
// token or contains it as a substring, or "" when nothing matches. The
// substring fallback is a heuristic: a short token can hit an unrelated
// category sharing a word fragment, so callers should echo the match back to
// the user.
func (m *AliasMap) Match(token string) string {
	for _, key := range m.keys {
		if token == key || strings.Contains(key, token) {
			return m.canon[key]
		}
	}
	return ""
}

// MatchAll runs each token through Match and collects the hits, preserving
// token order. Tokens without a match are dropped.
func (m *AliasMap) MatchAll(tokens []string) []string {
	var matched []string
	for _, token := range tokens {
		if canon := m.Match(token); canon != "" {
			matched = append(matched, canon)
		}
	}
	return matched
}

// SplitSubjects splits raw comma-separated user input into trimmed,
// lowercased, non-empty tokens.
func SplitSubjects(raw string) []string {
	var tokens []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			tokens = append(tokens, part)
		}
	}
	return tokens
}
