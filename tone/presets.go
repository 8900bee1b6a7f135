package tone

const emphasisMark = "🙂"

type preset struct {
	intros       []string
	closings     []string
	emphasisFreq float64
}

var presets = map[Style]preset{
	StyleWarm: {
		intros: []string{
			"Sure — here's a clear breakdown 😊",
			"Absolutely — happy to explain this!",
			"Of course — let me walk you through it.",
			"I'd love to share more about this.",
		},
		closings: []string{
			"If you'd like, I can explain another part too.",
			"Happy to dive deeper if you'd like!",
			"Let me know if you want an example.",
			"I can walk you through a related project as well.",
		},
		emphasisFreq: 0.25,
	},
	StyleProfessional: {
		intros: []string{
			"Here is a concise overview:",
			"Happy to clarify — summary below:",
			"Summary and next steps:",
		},
		closings: []string{
			"If you'd like further detail, I can expand.",
			"Tell me if you want examples or data.",
			"I can follow up with a concise checklist.",
		},
		emphasisFreq: 0.05,
	},
	StyleConcise: {
		intros: []string{
			"Quick answer:",
		},
		closings: []string{
			"Tell me if you'd like more.",
		},
		emphasisFreq: 0,
	},
}
