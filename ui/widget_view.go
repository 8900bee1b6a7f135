package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

func (w Widget) View() string {
	if !w.ready {
		return "Loading..."
	}

	header := TitleStyle.Render("Hey there! Can I help you with anything?")

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	b.WriteString(w.viewport.View())
	b.WriteString("\n")
	b.WriteString("> " + w.input.View())
	b.WriteString("\n")
	b.WriteString(w.chipRow())
	b.WriteString("\n")

	if w.flash != "" {
		b.WriteString(DimStyle.Render(w.flash))
	} else {
		b.WriteString(FormatFooter(
			"Enter", "Ask",
			"Tab", "Next suggestion",
			"Esc", "Skip typing",
			"Ctrl+Y", "Copy answer",
			"Ctrl+C", "Quit",
		))
	}

	return b.String()
}

// chipRow renders the suggestion chips side by side, truncated to fit.
func (w Widget) chipRow() string {
	chips := w.filteredChips()
	if len(chips) == 0 {
		return ""
	}

	maxChip := w.width/len(chips) - 4
	if maxChip < 8 {
		maxChip = 8
	}

	parts := make([]string, len(chips))
	for i, chip := range chips {
		label := chip.Label
		if runewidth.StringWidth(label) > maxChip {
			label = runewidth.Truncate(label, maxChip, "...")
		}
		style := ChipStyle
		if i == w.chipIdx%len(chips) {
			style = ChipSelectedStyle
		}
		parts[i] = style.Render(label)
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
