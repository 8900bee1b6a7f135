package conversation

import (
	"strings"
	"testing"
	"time"

	"asktui/kb"
	"asktui/model"
	"asktui/reveal"
	"asktui/tone"
)

const toolsDoc = `[{"title":"Tools","keywords":["tools"],"qa":[{"q":"What tools do you use?","a":"Figma and Notion.","keywords":["tools"]}]}]`

func newTestController(t *testing.T, doc string) *Controller {
	t.Helper()

	store := kb.NewStore()
	if doc != "" {
		if err := store.LoadBytes([]byte(doc)); err != nil {
			t.Fatalf("failed to load test knowledge base: %v", err)
		}
	}

	// Reduced motion keeps every reveal synchronous, so tests observe
	// final state right after Submit returns.
	revealer := reveal.New(reveal.Options{ReducedMotion: true})
	return New(store, tone.New(tone.StyleConcise), revealer)
}

func TestSubmitExactMatch(t *testing.T) {
	ctrl := newTestController(t, toolsDoc)
	defer ctrl.Close()

	ctrl.Submit("what tools do you use?")

	messages := ctrl.Messages()
	if len(messages) != 2 {
		t.Fatalf("expected user + assistant messages, got %d", len(messages))
	}

	user := messages[0]
	if user.Role != model.RoleUser || user.Text != "what tools do you use?" {
		t.Errorf("unexpected user message: %+v", user)
	}
	if user.RevealState != model.RevealComplete {
		t.Error("user messages never animate")
	}

	asst := messages[1]
	if asst.Role != model.RoleAssistant {
		t.Fatalf("expected assistant reply, got %+v", asst)
	}
	if !strings.Contains(asst.Text, "Figma and Notion.") {
		t.Errorf("answer lost in transform: %q", asst.Text)
	}
	// Tone framing wraps the factual answer
	if !strings.HasPrefix(asst.Text, "Quick answer:") {
		t.Errorf("expected tone intro, got %q", asst.Text)
	}
	if asst.RevealState != model.RevealComplete || asst.Visible != asst.Text {
		t.Errorf("reveal should have completed synchronously: %+v", asst)
	}
}

func TestSubmitMissFallsBack(t *testing.T) {
	ctrl := newTestController(t, toolsDoc)
	defer ctrl.Close()

	ctrl.Submit("zzz qqq")

	messages := ctrl.Messages()
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
	if messages[1].Text != FallbackText {
		t.Errorf("expected fallback text, got %q", messages[1].Text)
	}

	// Miss turns get the generic suggestion set
	sugg := ctrl.Suggestions()
	if len(sugg) != 3 {
		t.Fatalf("expected 3 suggestions, got %d", len(sugg))
	}
	if sugg[0].Label != "Show me a project" {
		t.Errorf("expected default suggestions, got %q", sugg[0].Label)
	}
}

func TestSubmitEmptyKnowledgeBase(t *testing.T) {
	ctrl := newTestController(t, "")
	defer ctrl.Close()

	ctrl.Submit("what tools do you use?")

	messages := ctrl.Messages()
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
	if messages[1].Text != FallbackText {
		t.Errorf("empty knowledge base must fall back honestly, got %q", messages[1].Text)
	}
}

func TestSourceLineAppended(t *testing.T) {
	doc := `[{"title":"Process","keywords":["process"],"qa":[{"q":"How do you run discovery?","a":"Interviews first, then mapping into opportunity trees.","source":"Case study, 2024"}]}]`
	ctrl := newTestController(t, doc)
	defer ctrl.Close()

	ctrl.Submit("How do you run discovery?")

	messages := ctrl.Messages()
	if len(messages) != 3 {
		t.Fatalf("expected user + answer + source, got %d", len(messages))
	}
	source := messages[2]
	if source.Text != "Source: Case study, 2024" {
		t.Errorf("source line = %q", source.Text)
	}
	if source.RevealState != model.RevealComplete {
		t.Error("source line should appear immediately")
	}
}

func TestShortConfirmationSkipsTransform(t *testing.T) {
	doc := `[{"title":"Misc","keywords":["remote"],"qa":[{"q":"Do you work remotely?","a":"Yes."}]}]`
	ctrl := newTestController(t, doc)
	defer ctrl.Close()

	ctrl.Submit("Do you work remotely?")

	messages := ctrl.Messages()
	if messages[1].Text != "Yes." {
		t.Errorf("short confirmations should not be framed, got %q", messages[1].Text)
	}
}

func TestOrderingAcrossTurns(t *testing.T) {
	ctrl := newTestController(t, toolsDoc)
	defer ctrl.Close()

	ctrl.Submit("first question")
	ctrl.Submit("second question")

	messages := ctrl.Messages()
	if len(messages) != 4 {
		t.Fatalf("expected 4 messages, got %d", len(messages))
	}
	wantRoles := []model.Role{model.RoleUser, model.RoleAssistant, model.RoleUser, model.RoleAssistant}
	for i, want := range wantRoles {
		if messages[i].Role != want {
			t.Errorf("messages[%d].Role = %q, want %q", i, messages[i].Role, want)
		}
	}
	if messages[0].Text != "first question" || messages[2].Text != "second question" {
		t.Error("messages out of submission order")
	}
}

func TestSelectSuggestionBehavesLikeTyping(t *testing.T) {
	ctrl := newTestController(t, toolsDoc)
	defer ctrl.Close()

	ctrl.SelectSuggestion("What tools do you use?")

	messages := ctrl.Messages()
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
	if messages[0].Role != model.RoleUser || messages[0].Text != "What tools do you use?" {
		t.Errorf("chip selection should appear as a typed user message: %+v", messages[0])
	}
	if !strings.Contains(messages[1].Text, "Figma and Notion.") {
		t.Errorf("chip selection should answer like typed input: %q", messages[1].Text)
	}
}

func TestSubmitFastForwardsPriorReveal(t *testing.T) {
	store := kb.NewStore()
	if err := store.LoadBytes([]byte(toolsDoc)); err != nil {
		t.Fatal(err)
	}

	// Slow enough that the first answer is still revealing when the second
	// question arrives.
	revealer := reveal.New(reveal.Options{
		CharsPerSecond:     1,
		FrameInterval:      time.Hour,
		ShortTextThreshold: 0,
	})
	ctrl := New(store, tone.New(tone.StyleConcise), revealer)
	defer ctrl.Close()

	ctrl.Submit("what tools do you use?")
	if !ctrl.Revealing() {
		t.Fatal("first answer should still be revealing")
	}

	ctrl.Submit("zzz qqq")

	messages := ctrl.Messages()
	first := messages[1]
	if first.RevealState != model.RevealComplete || first.Visible != first.Text {
		t.Errorf("prior reveal should be fast-forwarded on new submission: %+v", first)
	}
}

func TestBlankSubmissionIgnored(t *testing.T) {
	ctrl := newTestController(t, toolsDoc)
	defer ctrl.Close()

	ctrl.Submit("   ")
	if got := len(ctrl.Messages()); got != 0 {
		t.Errorf("blank input should not create messages, got %d", got)
	}
}

func TestCloseStopsAcceptingInput(t *testing.T) {
	ctrl := newTestController(t, toolsDoc)

	ctrl.Submit("what tools do you use?")
	ctrl.Close()
	ctrl.Close() // double close is safe

	before := len(ctrl.Messages())
	ctrl.Submit("another question")
	if got := len(ctrl.Messages()); got != before {
		t.Errorf("closed controller accepted a submission: %d -> %d", before, got)
	}

	if ctrl.Revealing() {
		t.Error("no reveal may survive Close")
	}
}
