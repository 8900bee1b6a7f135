package kb

import (
	"fmt"
	"os"

	"asktui/config"
)

// Store holds the flattened knowledge base for one widget instance.
// It is loaded once, read-only afterwards, and disposed with the widget so
// multiple instances or test harnesses never share ambient state.
type Store struct {
	entries []FlatEntry
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Load reads and flattens the FAQ document at path. A missing or
// unparseable document leaves the store empty; the error is returned for
// logging only and must not be surfaced to the visitor.
func (s *Store) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		s.entries = nil
		return fmt.Errorf("failed to read FAQ document: %w", err)
	}
	return s.LoadBytes(data)
}

// LoadBytes parses and flattens an in-memory FAQ document. On parse failure
// the store degrades to an empty entry set.
func (s *Store) LoadBytes(data []byte) error {
	doc, err := Parse(data)
	if err != nil {
		s.entries = nil
		if config.DebugLog != nil {
			config.DebugLog.Printf("[kb] load failed, continuing with empty knowledge base: %v", err)
		}
		return err
	}

	s.entries = Flatten(doc)
	if config.DebugLog != nil {
		config.DebugLog.Printf("[kb] loaded %d entries", len(s.entries))
	}
	return nil
}

// Entries returns a copy of the flattened entries in document order.
func (s *Store) Entries() []FlatEntry {
	out := make([]FlatEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len reports the number of loaded entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Dispose releases the loaded knowledge base.
func (s *Store) Dispose() {
	s.entries = nil
}
