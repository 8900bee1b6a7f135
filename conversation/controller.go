// Package conversation owns the per-widget transcript and drives one user
// turn end to end: match the question, frame the answer, pace its reveal,
// and refresh the follow-up suggestions.
package conversation

import (
	"strings"
	"sync"

	"asktui/config"
	"asktui/kb"
	"asktui/match"
	"asktui/model"
	"asktui/reveal"
	"asktui/suggest"
	"asktui/tone"
)

// FallbackText is the fixed, honest reply used when no knowledge-base entry
// sufficiently matches a question. The widget never fabricates an answer.
const FallbackText = "I don't have that exact information in my sources. Would you like me to show related projects or common topics?"

// Answers shorter than this are handed to the revealer untransformed;
// wrapping a bare "Yes." in intro/closing framing reads as padding.
const shortConfirmationMax = 8

// Controller orchestrates matching, tone, suggestions and reveals for a
// single conversation. All state is owned here and mutated only through
// its methods; the mutex exists because reveal ticks arrive from the clock
// goroutine.
type Controller struct {
	mu          sync.Mutex
	store       *kb.Store
	transformer *tone.Transformer
	revealer    *reveal.Revealer
	transcript  model.Conversation
	suggestions []model.Suggestion
	handles     map[string]*reveal.Handle
	notify      func()
	closed      bool
}

// New creates a controller over a loaded knowledge base.
func New(store *kb.Store, transformer *tone.Transformer, revealer *reveal.Revealer) *Controller {
	return &Controller{
		store:       store,
		transformer: transformer,
		revealer:    revealer,
		suggestions: suggest.Default(),
		handles:     make(map[string]*reveal.Handle),
	}
}

// SetNotify registers a callback fired after any transcript mutation so a
// host event loop can repaint. May be called with nil to clear it.
func (c *Controller) SetNotify(fn func()) {
	c.mu.Lock()
	c.notify = fn
	c.mu.Unlock()
}

// Submit handles one typed user question. The user message lands in the
// transcript immediately; the assistant reply is matched, framed and then
// revealed on the configured cadence. A still-revealing prior assistant
// message is fast-forwarded first so only one reveal animates at a time.
func (c *Controller) Submit(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	c.FastForwardAll()

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}

	c.transcript.Append(model.NewMessage(model.RoleUser, text, model.RevealComplete))

	entry, ok := match.Best(text, c.store.Entries())

	var reply string
	if ok {
		if config.DebugLog != nil {
			config.DebugLog.Printf("[conversation] matched %q -> %q", text, entry.Question)
		}
		reply = entry.Answer
		if len(reply) >= shortConfirmationMax {
			reply = c.transformer.Transform(reply)
		}
		c.suggestions = suggest.For(entry.Question)
	} else {
		if config.DebugLog != nil {
			config.DebugLog.Printf("[conversation] no match for %q", text)
		}
		reply = FallbackText
		c.suggestions = suggest.Default()
	}

	asst := model.NewMessage(model.RoleAssistant, reply, model.RevealPending)
	c.transcript.Append(asst)

	if ok && entry.Source != "" {
		c.transcript.Append(model.NewMessage(model.RoleAssistant, "Source: "+entry.Source, model.RevealComplete))
	}

	notify := c.notify
	c.mu.Unlock()

	if notify != nil {
		notify()
	}

	id := asst.ID
	h := c.revealer.Start(asst.Text,
		func(visible string) { c.advanceReveal(id, visible) },
		func() { c.finishReveal(id) },
	)

	c.mu.Lock()
	if !h.Done() && !c.closed {
		c.handles[id] = h
	}
	c.mu.Unlock()
}

// SelectSuggestion routes a tapped suggestion chip through the same path as
// typed input.
func (c *Controller) SelectSuggestion(label string) {
	c.Submit(label)
}

// FastForward cancels the reveal of the given message, showing its full
// text immediately. No-op for unknown or already-complete messages.
func (c *Controller) FastForward(messageID string) {
	c.mu.Lock()
	h := c.handles[messageID]
	c.mu.Unlock()

	if h != nil {
		h.Cancel()
	}
}

// FastForwardAll cancels every in-progress reveal.
func (c *Controller) FastForwardAll() {
	c.mu.Lock()
	active := make([]*reveal.Handle, 0, len(c.handles))
	for _, h := range c.handles {
		active = append(active, h)
	}
	c.mu.Unlock()

	for _, h := range active {
		h.Cancel()
	}
}

// Revealing reports whether any assistant message is still revealing.
func (c *Controller) Revealing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.handles) > 0
}

// Messages returns a snapshot of the transcript in insertion order.
func (c *Controller) Messages() []model.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.transcript.Snapshot()
}

// Suggestions returns the current follow-up set.
func (c *Controller) Suggestions() []model.Suggestion {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.Suggestion, len(c.suggestions))
	copy(out, c.suggestions)
	return out
}

// Close tears down any active reveal timers and disposes the knowledge
// base. The controller accepts no further submissions afterwards.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	active := make([]*reveal.Handle, 0, len(c.handles))
	for _, h := range c.handles {
		active = append(active, h)
	}
	c.handles = make(map[string]*reveal.Handle)
	c.mu.Unlock()

	for _, h := range active {
		h.Cancel()
	}
	c.store.Dispose()
}

func (c *Controller) advanceReveal(id, visible string) {
	c.mu.Lock()
	m := c.transcript.ByID(id)
	if m != nil && m.RevealState != model.RevealComplete {
		m.Visible = visible
		m.RevealState = model.RevealRevealing
	}
	notify := c.notify
	c.mu.Unlock()

	if notify != nil {
		notify()
	}
}

func (c *Controller) finishReveal(id string) {
	c.mu.Lock()
	m := c.transcript.ByID(id)
	if m != nil {
		m.Visible = m.Text
		m.RevealState = model.RevealComplete
	}
	delete(c.handles, id)
	notify := c.notify
	c.mu.Unlock()

	if notify != nil {
		notify()
	}
}
