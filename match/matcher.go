// Package match scores visitor questions against the flattened knowledge
// base. Matching is purely lexical and runs in strict priority order:
// exact question equality, then keyword containment, then a fuzzy token
// overlap score with a floor that keeps nonsense queries unanswered.
package match

import (
	"strings"

	"asktui/kb"
)

// Threshold is the minimum fuzzy score required to treat the best-scoring
// entry as a real match.
const Threshold = 3

// Best returns the entry that answers query, if any. The first rule that
// produces a result wins; there is no fallthrough once a rule hits.
func Best(query string, entries []kb.FlatEntry) (kb.FlatEntry, bool) {
	normalized := strings.ToLower(strings.TrimSpace(query))
	if normalized == "" || len(entries) == 0 {
		return kb.FlatEntry{}, false
	}

	// Rule 1: exact question match, first entry wins.
	for _, entry := range entries {
		if strings.ToLower(strings.TrimSpace(entry.Question)) == normalized {
			return entry, true
		}
	}

	// Rule 2: keyword containment, first entry and first keyword win.
	for _, entry := range entries {
		for _, kw := range entry.Keywords {
			if kw != "" && strings.Contains(normalized, kw) {
				return entry, true
			}
		}
	}

	// Rule 3: fuzzy token overlap, strictly highest score above the floor.
	best := kb.FlatEntry{}
	bestScore := 0
	found := false
	for _, entry := range entries {
		combined := entry.Question + " " + strings.Join(entry.Keywords, " ")
		score := fuzzyScore(normalized, strings.ToLower(combined))
		if score > bestScore {
			best = entry
			bestScore = score
			found = true
		}
	}
	if !found || bestScore < Threshold {
		return kb.FlatEntry{}, false
	}
	return best, true
}

// fuzzyScore sums token-pair contributions between a and b. The rules stack:
// a pair can earn the equality, prefix, and substring bonuses at once, up to
// 6 points. Changing this to first-rule-wins would shift which entries clear
// the threshold.
func fuzzyScore(a, b string) int {
	score := 0
	for _, aw := range strings.Fields(a) {
		for _, bw := range strings.Fields(b) {
			if aw == bw {
				score += 3
			}
			if strings.HasPrefix(aw, bw) || strings.HasPrefix(bw, aw) {
				score += 2
			}
			if strings.Contains(aw, bw) || strings.Contains(bw, aw) {
				score += 1
			}
		}
	}
	return score
}
