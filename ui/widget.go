// Package ui is the terminal collaborator for the FAQ widget core: it
// renders the controller's transcript and suggestion feed and routes key
// presses back into controller methods. All answer logic lives in the core
// packages; this layer only presents.
package ui

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"asktui/conversation"
	"asktui/model"
)

// Widget is the bubbletea model for the chat surface.
type Widget struct {
	ctrl *conversation.Controller

	viewport viewport.Model
	input    textinput.Model

	width  int
	height int
	ready  bool

	// Cached markdown renderings of completed assistant messages
	rendered      map[string]string
	renderPending map[string]bool

	chipIdx int
	flash   string
}

// NewWidget creates the chat surface over a controller.
func NewWidget(ctrl *conversation.Controller) Widget {
	input := textinput.New()
	input.Placeholder = "Ask anything you need"
	input.Focus()
	input.CharLimit = 400

	return Widget{
		ctrl:          ctrl,
		input:         input,
		rendered:      make(map[string]string),
		renderPending: make(map[string]bool),
	}
}

func (w Widget) Init() tea.Cmd {
	return textinput.Blink
}

func (w Widget) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		w.height = msg.Height
		chromeHeight := 7 // header, input, chips, footer
		if !w.ready {
			w.viewport = viewport.New(msg.Width, msg.Height-chromeHeight)
			w.ready = true
		} else {
			w.viewport.Width = msg.Width
			w.viewport.Height = msg.Height - chromeHeight
		}
		w.input.Width = msg.Width - 4
		w.refreshViewport(true)
		return w, nil

	case RefreshMsg:
		cmds = append(cmds, w.queueMarkdownRenders()...)
		w.refreshViewport(true)
		return w, tea.Batch(cmds...)

	case markdownRenderedMsg:
		w.rendered[msg.MessageID] = msg.Rendered
		delete(w.renderPending, msg.MessageID)
		w.refreshViewport(false)
		return w, nil

	case flashTickMsg:
		w.flash = ""
		return w, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			w.ctrl.Close()
			return w, tea.Quit

		case "esc":
			// Fast-forward any typing answer to its full text
			w.ctrl.FastForwardAll()
			w.refreshViewport(true)
			return w, nil

		case "enter":
			text := strings.TrimSpace(w.input.Value())
			if text != "" {
				w.input.SetValue("")
				w.chipIdx = 0
				w.ctrl.Submit(text)
			} else if chips := w.filteredChips(); len(chips) > 0 {
				idx := w.chipIdx
				if idx >= len(chips) {
					idx = 0
				}
				w.ctrl.SelectSuggestion(chips[idx].Label)
			}
			w.refreshViewport(true)
			return w, nil

		case "tab":
			if chips := w.filteredChips(); len(chips) > 0 {
				w.chipIdx = (w.chipIdx + 1) % len(chips)
			}
			return w, nil

		case "ctrl+y":
			if text := w.lastCompletedAnswer(); text != "" {
				if err := clipboard.WriteAll(text); err == nil {
					w.flash = "Copied answer to clipboard"
					return w, tea.Tick(2*time.Second, func(time.Time) tea.Msg {
						return flashTickMsg{}
					})
				}
			}
			return w, nil
		}
	}

	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	cmds = append(cmds, cmd)

	w.viewport, cmd = w.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return w, tea.Batch(cmds...)
}

func (w *Widget) refreshViewport(gotoBottom bool) {
	if !w.ready {
		return
	}
	w.viewport.SetContent(w.transcriptContent())
	if gotoBottom {
		w.viewport.GotoBottom()
	}
}

// queueMarkdownRenders schedules a render for every completed assistant
// message that has no cached rendering yet.
func (w Widget) queueMarkdownRenders() []tea.Cmd {
	var cmds []tea.Cmd
	for _, m := range w.ctrl.Messages() {
		if m.Role != model.RoleAssistant || m.RevealState != model.RevealComplete {
			continue
		}
		if _, ok := w.rendered[m.ID]; ok || w.renderPending[m.ID] {
			continue
		}
		w.renderPending[m.ID] = true
		cmds = append(cmds, w.renderMarkdownAsync(m.ID, m.Text))
	}
	return cmds
}

// filteredChips narrows the suggestion feed against whatever the visitor
// is typing, so chips stay relevant mid-thought.
func (w Widget) filteredChips() []model.Suggestion {
	chips := w.ctrl.Suggestions()

	filterValue := strings.TrimSpace(w.input.Value())
	if filterValue == "" {
		return chips
	}

	targets := make([]string, len(chips))
	for i, chip := range chips {
		targets[i] = chip.Label
	}

	matches := fuzzy.Find(filterValue, targets)
	if len(matches) == 0 {
		return chips
	}

	filtered := make([]model.Suggestion, len(matches))
	for i, match := range matches {
		filtered[i] = chips[match.Index]
	}
	return filtered
}

func (w Widget) lastCompletedAnswer() string {
	messages := w.ctrl.Messages()
	for i := len(messages) - 1; i >= 0; i-- {
		m := messages[i]
		if m.Role == model.RoleAssistant && m.RevealState == model.RevealComplete {
			return m.Text
		}
	}
	return ""
}
