package kb

import "strings"

// Flatten walks each category and produces one FlatEntry per usable item.
// Keywords are the union of category and item keywords, lower-cased and
// deduplicated in first-occurrence order (category first, then item).
// Items missing a question or answer are skipped rather than aborting the
// load. Flattening the same document twice yields structurally equal output.
func Flatten(doc []Category) []FlatEntry {
	var entries []FlatEntry

	for _, cat := range doc {
		for _, item := range cat.QA {
			question := strings.TrimSpace(item.Q)
			answer := strings.TrimSpace(item.A)
			if question == "" || answer == "" {
				continue
			}

			entries = append(entries, FlatEntry{
				Question: question,
				Answer:   answer,
				Source:   strings.TrimSpace(item.Source),
				Keywords: mergeKeywords(cat.Keywords, item.Keywords),
			})
		}
	}

	return entries
}

func mergeKeywords(groups ...[]string) []string {
	var merged []string
	seen := make(map[string]bool)

	for _, group := range groups {
		for _, kw := range group {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" || seen[kw] {
				continue
			}
			seen[kw] = true
			merged = append(merged, kw)
		}
	}

	return merged
}
