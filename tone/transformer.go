// Package tone wraps factual answers with stylistic framing: a randomly
// chosen intro and closing phrase per configured style, plus conservative
// first-person substitutions. It never alters the factual content of an
// answer.
package tone

import (
	"math/rand"
	"regexp"
	"strings"
	"time"
)

// Style selects a framing preset.
type Style string

const (
	StyleWarm         Style = "warm"
	StyleProfessional Style = "professional"
	StyleConcise      Style = "concise"
)

// Transformer frames raw answers for one widget instance.
type Transformer struct {
	style Style
	rng   *rand.Rand
}

// Option configures a Transformer.
type Option func(*Transformer)

// WithRand replaces the randomness source, letting tests pin phrase choices.
func WithRand(rng *rand.Rand) Option {
	return func(t *Transformer) {
		t.rng = rng
	}
}

// New creates a Transformer for the given style. Unknown styles fall back
// to warm.
func New(style Style, opts ...Option) *Transformer {
	if _, ok := presets[style]; !ok {
		style = StyleWarm
	}
	t := &Transformer{
		style: style,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Style returns the active style.
func (t *Transformer) Style() Style {
	return t.style
}

// firstPerson holds exact-phrase, case-insensitive substitutions. No
// grammatical restructuring is ever attempted.
var firstPerson = []struct {
	pattern     *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`(?i)\bthe assistant\b`), "I"},
	{regexp.MustCompile(`(?i)\bthis assistant\b`), "I"},
	{regexp.MustCompile(`(?i)\bthe bot\b`), "I"},
}

// Transform wraps raw with an intro and closing from the style's pool and
// optionally appends a trailing emphasis marker per the style's frequency.
// An empty answer stays empty.
func (t *Transformer) Transform(raw string) string {
	body := strings.TrimSpace(raw)
	if body == "" {
		return ""
	}

	for _, sub := range firstPerson {
		body = sub.pattern.ReplaceAllString(body, sub.replacement)
	}

	p := presets[t.style]
	intro := p.intros[t.rng.Intn(len(p.intros))]
	closing := p.closings[t.rng.Intn(len(p.closings))]

	if p.emphasisFreq > 0 && t.rng.Float64() < p.emphasisFreq {
		closing += " " + emphasisMark
	}

	return intro + "\n\n" + body + "\n\n" + closing
}
