package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"asktui/config"
	"asktui/conversation"
	"asktui/kb"
	"asktui/reveal"
	"asktui/tone"
	"asktui/ui"
)

const (
	Version = "v0.1.0"
	License = "Apache-2.0"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize debug logging after config is loaded
	config.InitDebugLog(cfg.DataDir())

	// A missing or unparseable FAQ document is not fatal: the widget runs
	// with an empty knowledge base and answers honestly.
	store := kb.NewStore()
	if err := store.Load(cfg.KBFile()); err != nil && config.DebugLog != nil {
		config.DebugLog.Printf("[main] knowledge base unavailable: %v", err)
	}

	transformer := tone.New(tone.Style(cfg.Tone))
	revealer := reveal.New(reveal.Options{
		CharsPerSecond:     cfg.CharsPerSecond,
		FrameInterval:      time.Duration(cfg.FrameIntervalMS) * time.Millisecond,
		ShortTextThreshold: cfg.ShortTextThreshold,
		ReducedMotion:      cfg.ReducedMotion,
	})

	ctrl := conversation.New(store, transformer, revealer)

	p := tea.NewProgram(
		ui.NewWidget(ctrl),
		tea.WithAltScreen(),
	)

	// Reveal ticks arrive on the clock goroutine; Program.Send is the
	// thread-safe way back into the update loop.
	ctrl.SetNotify(func() {
		p.Send(ui.RefreshMsg{})
	})

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctrl.Close()
}
