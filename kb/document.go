package kb

import (
	"encoding/json"
	"fmt"
)

// Category is one section of the FAQ document as authored on the site.
type Category struct {
	Title    string   `json:"title"`
	Keywords []string `json:"keywords,omitempty"`
	QA       []Item   `json:"qa"`
}

// Item is a single curated question/answer pair inside a category.
type Item struct {
	Q        string   `json:"q"`
	A        string   `json:"a"`
	Source   string   `json:"source,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}

// FlatEntry is a question/answer unit with merged keywords, independent of
// the category nesting it came from.
type FlatEntry struct {
	Question string
	Answer   string
	Source   string
	Keywords []string
}

// Parse decodes a FAQ document (the site's faq.json format).
func Parse(data []byte) ([]Category, error) {
	var doc []Category
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse FAQ document: %w", err)
	}
	return doc, nil
}
