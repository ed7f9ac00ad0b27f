package memory

import (
	"path/filepath"
	"testing"
	"time"
)

func tempLedger(t *testing.T) *Ledger {
	t.Helper()
	l, err := Open(filepath.Join(t.TempDir(), "outcomes.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { l.Close() })
	return l
}

func TestRecordAndReadOutcomes(t *testing.T) {
	l := tempLedger(t)

	recs := []OutcomeRecord{
		{ConversationID: "c1", Query: "pijn knie", Source: SourceAI,
			AttemptNum: 1, Accepted: false, ValidationScore: 0.4,
			FailureReason: "validation below threshold", Duration: 800 * time.Millisecond},
		{ConversationID: "c1", Query: "pijn knie", Source: SourceAI,
			AttemptNum: 2, Accepted: true, ValidationScore: 0.75,
			SuggestionCount: 3, Confidence: 0.8, Duration: 650 * time.Millisecond},
	}
	for _, rec := range recs {
		if err := l.RecordOutcome(rec); err != nil {
			t.Fatalf("RecordOutcome: %v", err)
		}
	}

	got, err := l.RecentOutcomes(10)
	if err != nil {
		t.Fatalf("RecentOutcomes: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 outcomes, got %d", len(got))
	}
	// Newest first.
	if got[0].AttemptNum != 2 || !got[0].Accepted {
		t.Fatalf("unexpected first row: %+v", got[0])
	}
	if got[1].FailureReason != "validation below threshold" {
		t.Fatalf("failure reason lost: %+v", got[1])
	}
	if got[0].Duration != 650*time.Millisecond {
		t.Fatalf("duration round-trip failed: %v", got[0].Duration)
	}
}

func TestDecisionTrail(t *testing.T) {
	l := tempLedger(t)

	_ = l.LogDecision(DecisionEntry{ConversationID: "c1", Decision: "clarification", Detail: "asked for body region"})
	_ = l.LogDecision(DecisionEntry{ConversationID: "c1", Decision: "suggestions", Detail: "3 codes"})
	_ = l.LogDecision(DecisionEntry{ConversationID: "c2", Decision: "error", Detail: "budget exhausted"})

	got, err := l.ConversationDecisions("c1")
	if err != nil {
		t.Fatalf("ConversationDecisions: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 decisions for c1, got %d", len(got))
	}
	if got[0].Decision != "clarification" || got[1].Decision != "suggestions" {
		t.Fatalf("decisions out of order: %+v", got)
	}
}

func TestSourceStats(t *testing.T) {
	l := tempLedger(t)

	for i := 0; i < 3; i++ {
		_ = l.RecordOutcome(OutcomeRecord{ConversationID: "c", Query: "q",
			Source: SourceAI, AttemptNum: 1, Accepted: i > 0, ValidationScore: 0.6, Confidence: 0.9})
	}
	_ = l.RecordOutcome(OutcomeRecord{ConversationID: "c", Query: "q",
		Source: SourceFallback, AttemptNum: 1, Accepted: true, ValidationScore: 0, Confidence: 0.5})

	stats, err := l.SourceStats()
	if err != nil {
		t.Fatalf("SourceStats: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected 2 sources, got %d", len(stats))
	}
	if stats[0].Source != SourceAI || stats[0].Count != 3 || stats[0].Accepted != 2 {
		t.Fatalf("unexpected ai stat: %+v", stats[0])
	}
}

func TestNilLedgerIsNoOp(t *testing.T) {
	var l *Ledger

	if err := l.RecordOutcome(OutcomeRecord{}); err != nil {
		t.Fatalf("nil RecordOutcome: %v", err)
	}
	if err := l.LogDecision(DecisionEntry{}); err != nil {
		t.Fatalf("nil LogDecision: %v", err)
	}
	if out, err := l.RecentOutcomes(5); err != nil || out != nil {
		t.Fatalf("nil RecentOutcomes: %v %v", out, err)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("nil Close: %v", err)
	}
}

func TestOpenInvalidPath(t *testing.T) {
	_, err := Open(filepath.Join(string(filepath.Separator), "nonexistent", "deep", "outcomes.db"))
	if err == nil {
		t.Fatal("expected error for invalid path")
	}
}
