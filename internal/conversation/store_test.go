package conversation

import (
	"errors"
	"testing"
	"time"

	"github.com/fysioscribe/dcsph-engine/internal/codes"
	"github.com/fysioscribe/dcsph-engine/internal/taxonomy"
)

// fakeClock is an adjustable clock for store tests.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func testSuggestion(t *testing.T) codes.Suggestion {
	t.Helper()
	code, ok := taxonomy.BuildCode("79", "20")
	if !ok {
		t.Fatal("BuildCode(79, 20) failed")
	}
	return codes.Suggestion{Code: code, Confidence: 0.9, Rationale: "past bij"}
}

func TestStartSeedsFirstMessage(t *testing.T) {
	s := NewStore(newFakeClock().Now)

	conv := s.Start("pijn in de knie")
	if conv.ID == "" {
		t.Fatal("expected a conversation id")
	}
	if conv.Status != StatusActive {
		t.Fatalf("expected active status, got %s", conv.Status)
	}
	if len(conv.Messages) != 1 {
		t.Fatalf("expected 1 seeded message, got %d", len(conv.Messages))
	}
	if conv.Messages[0].Content != "pijn in de knie" {
		t.Fatalf("first message should be the query, got %q", conv.Messages[0].Content)
	}
	if conv.Messages[0].Role != RoleUser || conv.Messages[0].Type != TypeQuery {
		t.Fatalf("unexpected seed message shape: %+v", conv.Messages[0])
	}
}

func TestClarificationBudget(t *testing.T) {
	s := NewStore(newFakeClock().Now)
	conv := s.Start("pijn")

	if err := s.AddClarifyingQuestion(conv.ID, "Waar zit de pijn?"); err != nil {
		t.Fatalf("round 1: %v", err)
	}
	if err := s.AddClarifyingQuestion(conv.ID, "Hoe is het ontstaan?"); err != nil {
		t.Fatalf("round 2: %v", err)
	}

	// Third round is over budget.
	err := s.AddClarifyingQuestion(conv.ID, "Nog een vraag?")
	if !errors.Is(err, ErrClarificationBudget) {
		t.Fatalf("expected ErrClarificationBudget, got %v", err)
	}

	got, err := s.Get(conv.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != StatusError {
		t.Fatalf("expected error status after budget, got %s", got.Status)
	}
	if got.ClarificationCount != 2 {
		t.Fatalf("counter must stop at 2, got %d", got.ClarificationCount)
	}
	last := got.Messages[len(got.Messages)-1]
	if last.Type != TypeError {
		t.Fatalf("expected trailing error message, got %s", last.Type)
	}
}

func TestClarificationCountIncrementsByOne(t *testing.T) {
	s := NewStore(newFakeClock().Now)
	conv := s.Start("pijn")

	for want := 1; want <= MaxClarificationRounds; want++ {
		if err := s.AddClarifyingQuestion(conv.ID, "vraag"); err != nil {
			t.Fatalf("round %d: %v", want, err)
		}
		got, _ := s.Get(conv.ID)
		if got.ClarificationCount != want {
			t.Fatalf("expected count %d, got %d", want, got.ClarificationCount)
		}
		if !got.NeedsClarification {
			t.Fatal("needsClarification should be set after a question")
		}
	}
}

func TestProcessUserResponseClearsFlag(t *testing.T) {
	s := NewStore(newFakeClock().Now)
	conv := s.Start("pijn")

	_ = s.AddClarifyingQuestion(conv.ID, "Waar zit de pijn?")
	if err := s.ProcessUserResponse(conv.ID, "in de knie"); err != nil {
		t.Fatalf("ProcessUserResponse: %v", err)
	}

	got, _ := s.Get(conv.ID)
	if got.NeedsClarification {
		t.Fatal("needsClarification should be cleared")
	}
	last := got.Messages[len(got.Messages)-1]
	if last.Role != RoleUser || last.Type != TypeQuery {
		t.Fatalf("answer should land as user query, got %+v", last)
	}
}

func TestCompleteStoresSuggestions(t *testing.T) {
	s := NewStore(newFakeClock().Now)
	conv := s.Start("pijn in de knie bij traplopen")

	if err := s.Complete(conv.ID, []codes.Suggestion{testSuggestion(t)}); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	got, _ := s.Get(conv.ID)
	if got.Status != StatusCompleted {
		t.Fatalf("expected completed status, got %s", got.Status)
	}
	if len(got.FinalSuggestions) != 1 || got.FinalSuggestions[0].Code.Code != "7920" {
		t.Fatalf("final suggestions not stored: %+v", got.FinalSuggestions)
	}
}

func TestGetRecomputesTimeout(t *testing.T) {
	clock := newFakeClock()
	s := NewStore(clock.Now)
	conv := s.Start("pijn")

	clock.Advance(29 * time.Minute)
	got, _ := s.Get(conv.ID)
	if got.Status != StatusActive {
		t.Fatalf("expected still active at 29m, got %s", got.Status)
	}

	clock.Advance(2 * time.Minute)
	got, _ = s.Get(conv.ID)
	if got.Status != StatusTimeout {
		t.Fatalf("expected timeout past 30m idle, got %s", got.Status)
	}
}

func TestGetUnknownID(t *testing.T) {
	s := NewStore(newFakeClock().Now)
	if _, err := s.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBuildCompleteQuery(t *testing.T) {
	s := NewStore(newFakeClock().Now)
	conv := s.Start("pijn")

	_ = s.AddClarifyingQuestion(conv.ID, "Waar zit de pijn?")
	_ = s.ProcessUserResponse(conv.ID, "in de knie")
	_ = s.AddClarifyingQuestion(conv.ID, "Wanneer doet het pijn?")
	_ = s.ProcessUserResponse(conv.ID, "bij traplopen")

	full, err := s.BuildCompleteQuery(conv.ID)
	if err != nil {
		t.Fatalf("BuildCompleteQuery: %v", err)
	}
	if full != "pijn in de knie bij traplopen" {
		t.Fatalf("unexpected complete query: %q", full)
	}
}

func TestCleanupWindows(t *testing.T) {
	clock := newFakeClock()
	s := NewStore(clock.Now)

	stale := s.Start("oude klacht")
	_ = stale

	clock.Advance(30 * time.Minute)
	done := s.Start("klaar")
	_ = s.Complete(done.ID, nil)
	fresh := s.Start("verse klacht")

	// 31 more minutes: stale is idle 61m (over the hour), done is idle
	// 31m (over the completed window), fresh is idle 31m but active.
	clock.Advance(31 * time.Minute)
	removed := s.Cleanup()
	if removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}
	if _, err := s.Get(fresh.ID); err != nil {
		t.Fatalf("fresh conversation should survive: %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 conversation left, got %d", s.Len())
	}
}

func TestAnalyzeMissingInformation(t *testing.T) {
	s := NewStore(newFakeClock().Now)
	conv := s.Start("pijn in de knie")

	info, err := s.AnalyzeMissingInformation(conv.ID)
	if err != nil {
		t.Fatalf("AnalyzeMissingInformation: %v", err)
	}
	// Location is covered; pathology, timing and mechanism are not.
	for _, cat := range info.MissingCategories {
		if cat == "location" {
			t.Fatal("location should not be missing")
		}
	}
	wantMissing := map[string]bool{"pathology": true, "timing": true, "mechanism": true}
	for _, cat := range info.MissingCategories {
		delete(wantMissing, cat)
	}
	if len(wantMissing) != 0 {
		t.Fatalf("expected missing categories not reported: %v", wantMissing)
	}
}

func TestAnalyzePairsQuestionsWithAnswers(t *testing.T) {
	s := NewStore(newFakeClock().Now)
	conv := s.Start("pijn")

	_ = s.AddClarifyingQuestion(conv.ID, "Waar zit de pijn?")
	_ = s.ProcessUserResponse(conv.ID, "in de knie")
	_ = s.AddClarifyingQuestion(conv.ID, "Sinds wanneer?")

	info, err := s.AnalyzeMissingInformation(conv.ID)
	if err != nil {
		t.Fatalf("AnalyzeMissingInformation: %v", err)
	}
	if len(info.AnsweredQuestions) != 2 {
		t.Fatalf("expected 2 question records, got %d", len(info.AnsweredQuestions))
	}
	if info.AnsweredQuestions[0].Answer != "in de knie" {
		t.Fatalf("first question should pair with its answer: %+v", info.AnsweredQuestions[0])
	}
	if info.AnsweredQuestions[1].Answer != "" {
		t.Fatalf("unanswered question should have empty answer: %+v", info.AnsweredQuestions[1])
	}
}
