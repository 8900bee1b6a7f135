// Package suggest derives follow-up prompts from the topic a visitor's
// question matched. Buckets are tested in a fixed priority order; the
// first bucket whose trigger appears in the topic text wins.
package suggest

import (
	"strings"

	"asktui/model"
)

type bucket struct {
	triggers []string
	labels   []string
}

// Bucket order matters: earlier buckets shadow later ones.
var buckets = []bucket{
	{
		triggers: []string{"project", "case", "work"},
		labels: []string{
			"Show me a mobile project",
			"Show me a dashboard project",
			"Walk me through a case study",
		},
	},
	{
		triggers: []string{"process", "flow", "ux"},
		labels: []string{
			"Explain your UX process",
			"How do you collaborate with PMs?",
			"Show me a flow-heavy project",
		},
	},
	{
		triggers: []string{"experience", "industry", "background"},
		labels: []string{
			"Tell me about your B2B work",
			"Tell me about your B2C work",
			"What industries have you worked in?",
		},
	},
	{
		triggers: []string{"design system", "tokens", "components"},
		labels: []string{
			"Show me your design system work",
			"How do you build components?",
			"Tell me about tokens & variants",
		},
	},
	{
		triggers: []string{"team", "communication", "feedback"},
		labels: []string{
			"What's your communication style?",
			"How do you give feedback?",
			"What's your teamwork style?",
		},
	},
}

var defaultLabels = []string{
	"Show me a project",
	"Tell me your process",
	"What tools do you use?",
}

// For returns the follow-up set for a matched topic text. Unmatched topics
// get the generic default set.
func For(topic string) []model.Suggestion {
	text := strings.ToLower(topic)

	for _, b := range buckets {
		for _, trigger := range b.triggers {
			if strings.Contains(text, trigger) {
				return toSuggestions(b.labels)
			}
		}
	}

	return Default()
}

// Default returns the generic follow-up set used when no entry matched.
func Default() []model.Suggestion {
	return toSuggestions(defaultLabels)
}

func toSuggestions(labels []string) []model.Suggestion {
	out := make([]model.Suggestion, len(labels))
	for i, label := range labels {
		out[i] = model.Suggestion{Label: label}
	}
	return out
}
