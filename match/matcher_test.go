package match

import (
	"testing"

	"asktui/kb"
)

func toolsEntry() kb.FlatEntry {
	return kb.FlatEntry{
		Question: "What tools do you use?",
		Answer:   "Figma and Notion.",
		Keywords: []string{"tools"},
	}
}

func processEntry() kb.FlatEntry {
	return kb.FlatEntry{
		Question: "How do you run your design process?",
		Answer:   "Discovery, flows, iteration.",
		Keywords: []string{"process", "ux"},
	}
}

func TestExactMatchPriority(t *testing.T) {
	// The second entry shares every token with the query and would win any
	// fuzzy scoring round; exact equality on the first must still win.
	entries := []kb.FlatEntry{
		{Question: "Tools?", Answer: "short", Keywords: nil},
		{Question: "Tools? Tools? Tools?", Answer: "long", Keywords: []string{"absent"}},
	}

	tests := []struct {
		name  string
		query string
	}{
		{"same case", "Tools?"},
		{"different case", "tools?"},
		{"surrounding whitespace", "  Tools?  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Best(tt.query, entries)
			if !ok {
				t.Fatal("expected a match")
			}
			if got.Answer != "short" {
				t.Errorf("exact match lost to %q", got.Answer)
			}
		})
	}
}

func TestKeywordContainment(t *testing.T) {
	entries := []kb.FlatEntry{toolsEntry(), processEntry()}

	got, ok := Best("tell me about the TOOLS you like", entries)
	if !ok {
		t.Fatal("expected keyword match")
	}
	if got.Question != "What tools do you use?" {
		t.Errorf("matched %q", got.Question)
	}

	// Both entries' keywords appear; the first entry in iteration order wins.
	both := []kb.FlatEntry{processEntry(), toolsEntry()}
	got, ok = Best("your ux process and your tools", both)
	if !ok {
		t.Fatal("expected keyword match")
	}
	if got.Question != "How do you run your design process?" {
		t.Errorf("tie-break should pick the first entry, got %q", got.Question)
	}
}

func TestFuzzyScoreStacking(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{"identical token", "figma", "figma", 6}, // equal + prefix + substring stack
		{"prefix only", "fig", "figma", 3},       // prefix + substring
		{"substring only", "igm", "figma", 1},
		{"disjoint", "cats", "figma", 0},
		{"two tokens", "figma notion", "figma", 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fuzzyScore(tt.a, tt.b); got != tt.want {
				t.Errorf("fuzzyScore(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestThresholdEnforcement(t *testing.T) {
	entries := []kb.FlatEntry{toolsEntry()}

	// Shares no tokens with the entry: must yield no match, not a weak one.
	if _, ok := Best("which software", entries); ok {
		t.Error("expected no match below threshold")
	}
	if _, ok := Best("zzz qqq", entries); ok {
		t.Error("expected no match for nonsense")
	}
	// Substring-only brushes (score 2 here) stay under the floor.
	if _, ok := Best("oo", entries); ok {
		t.Error("expected score below threshold to yield no match")
	}
}

func TestFuzzyFallback(t *testing.T) {
	entries := []kb.FlatEntry{processEntry(), toolsEntry()}

	// No exact or keyword hit ("use" is not a keyword), but heavy token
	// overlap with the tools question.
	got, ok := Best("what do you use", entries)
	if !ok {
		t.Fatal("expected fuzzy match")
	}
	if got.Question != "What tools do you use?" {
		t.Errorf("matched %q", got.Question)
	}
}

func TestNoInput(t *testing.T) {
	if _, ok := Best("", []kb.FlatEntry{toolsEntry()}); ok {
		t.Error("empty query should not match")
	}
	if _, ok := Best("   ", []kb.FlatEntry{toolsEntry()}); ok {
		t.Error("blank query should not match")
	}
	if _, ok := Best("tools", nil); ok {
		t.Error("no entries should not match")
	}
}
