package kb

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreLoadBytesDegradesToEmpty(t *testing.T) {
	store := NewStore()

	if err := store.LoadBytes([]byte(`not json at all`)); err == nil {
		t.Error("expected parse error to be reported for logging")
	}
	if store.Len() != 0 {
		t.Errorf("expected empty store after bad load, got %d entries", store.Len())
	}
	if got := store.Entries(); len(got) != 0 {
		t.Errorf("Entries() should be empty, got %v", got)
	}
}

func TestStoreLoadMissingFile(t *testing.T) {
	store := NewStore()

	err := store.Load(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Error("expected error for missing document")
	}
	if store.Len() != 0 {
		t.Errorf("store should stay empty, got %d entries", store.Len())
	}
}

func TestStoreLoadAndDispose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faq.json")
	doc := `[{"title":"Tools","keywords":["tools"],"qa":[{"q":"What tools do you use?","a":"Figma and Notion."}]}]`
	if err := os.WriteFile(path, []byte(doc), 0600); err != nil {
		t.Fatal(err)
	}

	store := NewStore()
	if err := store.Load(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", store.Len())
	}

	// Entries hands out copies; mutating them must not touch the store
	entries := store.Entries()
	entries[0].Answer = "mutated"
	if store.Entries()[0].Answer != "Figma and Notion." {
		t.Error("Entries() should return copies")
	}

	store.Dispose()
	if store.Len() != 0 {
		t.Error("store should be empty after Dispose")
	}
}
