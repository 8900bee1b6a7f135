package ui

import (
	"strings"

	markdown "github.com/MichaelMure/go-term-markdown"
	tea "github.com/charmbracelet/bubbletea"
	gomarkdown "github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/parser"
	"github.com/mattn/go-runewidth"

	"asktui/config"
	"asktui/model"
)

const revealCaret = "▍"

// transcriptContent renders the full conversation for the viewport.
// Revealing messages show their current visible prefix plus a caret;
// completed assistant messages use the cached markdown rendering when
// available.
func (w Widget) transcriptContent() string {
	var b strings.Builder

	for i, m := range w.ctrl.Messages() {
		if i > 0 {
			b.WriteString("\n\n")
		}

		switch m.Role {
		case model.RoleUser:
			b.WriteString(UserStyle.Render("You: "))
			b.WriteString(wordWrap(m.Visible, w.width-6))
		case model.RoleAssistant:
			b.WriteString(AssistantStyle.Render("Assistant:"))
			b.WriteString("\n")
			content := m.Visible
			if m.RevealState == model.RevealComplete {
				if rendered, ok := w.rendered[m.ID]; ok {
					content = rendered
				} else {
					content = wordWrap(content, w.width-4)
				}
			} else {
				content = wordWrap(content, w.width-4) + revealCaret
			}
			b.WriteString(content)
		}
	}

	return b.String()
}

// renderMarkdownAsync renders one completed message off the update loop
// so a large answer never blocks input handling.
func (w Widget) renderMarkdownAsync(messageID, content string) tea.Cmd {
	width := w.width - 4
	return func() tea.Msg {
		if config.DebugLog != nil {
			config.DebugLog.Printf("[ui] rendering markdown for message %s (%d chars)", messageID, len(content))
		}

		// Disable autolink so plain URLs stay plain text and the terminal
		// emulator handles clickability.
		customExt := markdown.Extensions() &^ parser.Autolink
		p := parser.NewWithExtensions(customExt)
		r := markdown.NewRenderer(width, 0)
		doc := p.Parse([]byte(content))
		rendered := gomarkdown.Render(doc, r)

		return markdownRenderedMsg{
			MessageID: messageID,
			Rendered:  strings.TrimRight(string(rendered), "\n"),
		}
	}
}

// wordWrap wraps text to maxWidth using display cell widths.
func wordWrap(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return text
	}

	var result strings.Builder
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			result.WriteString("\n")
		}
		result.WriteString(wrapLine(line, maxWidth))
	}
	return result.String()
}

func wrapLine(line string, maxWidth int) string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return line
	}

	var result strings.Builder
	var current strings.Builder
	for _, word := range words {
		testWidth := runewidth.StringWidth(current.String())
		if testWidth > 0 {
			testWidth++ // space before word
		}
		testWidth += runewidth.StringWidth(word)

		if testWidth > maxWidth && current.Len() > 0 {
			result.WriteString(current.String())
			result.WriteString("\n")
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(word)
	}
	result.WriteString(current.String())
	return result.String()
}
