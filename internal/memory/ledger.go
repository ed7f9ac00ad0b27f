// Package memory persists resolution outcomes and decisions to SQLite.
// The ledger is an audit trail for tuning the resolution policy; writes
// are best-effort and never block a resolution.
package memory

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// #region schema

const schema = `
CREATE TABLE IF NOT EXISTS resolution_outcomes (
    id               INTEGER PRIMARY KEY AUTOINCREMENT,
    conversation_id  TEXT NOT NULL,
    query            TEXT NOT NULL,
    source           TEXT NOT NULL,
    attempt_num      INTEGER NOT NULL,
    accepted         INTEGER NOT NULL DEFAULT 0,
    validation_score REAL NOT NULL DEFAULT 0,
    suggestion_count INTEGER NOT NULL DEFAULT 0,
    confidence       REAL NOT NULL DEFAULT 0,
    failure_reason   TEXT NOT NULL DEFAULT '',
    duration_ms      INTEGER NOT NULL DEFAULT 0,
    created_at       TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_resolution_outcomes_conversation
ON resolution_outcomes(conversation_id);

CREATE TABLE IF NOT EXISTS decision_log (
    id               INTEGER PRIMARY KEY AUTOINCREMENT,
    conversation_id  TEXT NOT NULL,
    decision         TEXT NOT NULL,
    detail           TEXT,
    created_at       TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_decision_log_conversation
ON decision_log(conversation_id);
`

// #endregion

// #region records

// Source tells which path produced a recorded outcome.
type Source string

const (
	SourceAI       Source = "ai"
	SourceFallback Source = "fallback"
	SourceShortcut Source = "shortcut"
	SourceNone     Source = "none"
)

// OutcomeRecord is a single row for resolution_outcomes.
type OutcomeRecord struct {
	ConversationID  string
	Query           string
	Source          Source
	AttemptNum      int
	Accepted        bool
	ValidationScore float64
	SuggestionCount int
	Confidence      float64
	FailureReason   string
	Duration        time.Duration
	CreatedAt       time.Time
}

// DecisionEntry is a single row for decision_log.
type DecisionEntry struct {
	ConversationID string
	Decision       string // "suggestions" | "clarification" | "error"
	Detail         string
	CreatedAt      time.Time
}

// #endregion

// #region ledger

// Ledger wraps the SQLite handle. A nil *Ledger is valid and turns all
// operations into no-ops, so hosts can run without persistence.
type Ledger struct {
	db *sql.DB
}

// Open opens (or creates) the ledger database and runs migrations.
func Open(path string) (*Ledger, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Ledger{db: db}, nil
}

// NewWithDB wraps an existing handle. Used by tests.
func NewWithDB(db *sql.DB) *Ledger {
	return &Ledger{db: db}
}

// Close closes the underlying database connection.
func (l *Ledger) Close() error {
	if l == nil || l.db == nil {
		return nil
	}
	return l.db.Close()
}

// #endregion

// #region record-outcome

// RecordOutcome persists one resolution attempt.
func (l *Ledger) RecordOutcome(rec OutcomeRecord) error {
	if l == nil || l.db == nil {
		return nil
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	accepted := 0
	if rec.Accepted {
		accepted = 1
	}
	_, err := l.db.Exec(`
		INSERT INTO resolution_outcomes
		(conversation_id, query, source, attempt_num, accepted,
		 validation_score, suggestion_count, confidence, failure_reason,
		 duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ConversationID,
		rec.Query,
		string(rec.Source),
		rec.AttemptNum,
		accepted,
		rec.ValidationScore,
		rec.SuggestionCount,
		rec.Confidence,
		rec.FailureReason,
		rec.Duration.Milliseconds(),
		rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record outcome: %w", err)
	}
	return nil
}

// LogDecision writes one row to the decision log.
func (l *Ledger) LogDecision(entry DecisionEntry) error {
	if l == nil || l.db == nil {
		return nil
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	_, err := l.db.Exec(`
		INSERT INTO decision_log (conversation_id, decision, detail, created_at)
		VALUES (?, ?, ?, ?)`,
		entry.ConversationID,
		entry.Decision,
		entry.Detail,
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log decision: %w", err)
	}
	return nil
}

// #endregion

// #region queries

// RecentOutcomes returns the newest outcome rows, newest first.
func (l *Ledger) RecentOutcomes(limit int) ([]OutcomeRecord, error) {
	if l == nil || l.db == nil {
		return nil, nil
	}
	rows, err := l.db.Query(`
		SELECT conversation_id, query, source, attempt_num, accepted,
		       validation_score, suggestion_count, confidence,
		       failure_reason, duration_ms, created_at
		FROM resolution_outcomes ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent outcomes: %w", err)
	}
	defer rows.Close()

	var out []OutcomeRecord
	for rows.Next() {
		var rec OutcomeRecord
		var source, createdStr string
		var accepted, durationMS int64
		if err := rows.Scan(&rec.ConversationID, &rec.Query, &source,
			&rec.AttemptNum, &accepted, &rec.ValidationScore,
			&rec.SuggestionCount, &rec.Confidence, &rec.FailureReason,
			&durationMS, &createdStr); err != nil {
			return nil, fmt.Errorf("scan outcome: %w", err)
		}
		rec.Source = Source(source)
		rec.Accepted = accepted == 1
		rec.Duration = time.Duration(durationMS) * time.Millisecond
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// ConversationDecisions returns the decision trail for one conversation
// in insertion order.
func (l *Ledger) ConversationDecisions(conversationID string) ([]DecisionEntry, error) {
	if l == nil || l.db == nil {
		return nil, nil
	}
	rows, err := l.db.Query(`
		SELECT conversation_id, decision, detail, created_at
		FROM decision_log WHERE conversation_id = ? ORDER BY id`, conversationID)
	if err != nil {
		return nil, fmt.Errorf("conversation decisions: %w", err)
	}
	defer rows.Close()

	var out []DecisionEntry
	for rows.Next() {
		var entry DecisionEntry
		var createdStr string
		if err := rows.Scan(&entry.ConversationID, &entry.Decision,
			&entry.Detail, &createdStr); err != nil {
			return nil, fmt.Errorf("scan decision: %w", err)
		}
		entry.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		out = append(out, entry)
	}
	return out, rows.Err()
}

// SourceStat aggregates recorded outcomes for one resolution path.
type SourceStat struct {
	Source         Source
	Count          int
	Accepted       int
	MeanScore      float64
	MeanConfidence float64
}

// SourceStats aggregates outcomes per source, most used first.
func (l *Ledger) SourceStats() ([]SourceStat, error) {
	if l == nil || l.db == nil {
		return nil, nil
	}
	rows, err := l.db.Query(`
		SELECT source, COUNT(*), SUM(accepted),
		       AVG(validation_score), AVG(confidence)
		FROM resolution_outcomes GROUP BY source ORDER BY COUNT(*) DESC`)
	if err != nil {
		return nil, fmt.Errorf("source stats: %w", err)
	}
	defer rows.Close()

	var out []SourceStat
	for rows.Next() {
		var st SourceStat
		var source string
		if err := rows.Scan(&source, &st.Count, &st.Accepted,
			&st.MeanScore, &st.MeanConfidence); err != nil {
			return nil, fmt.Errorf("scan stat: %w", err)
		}
		st.Source = Source(source)
		out = append(out, st)
	}
	return out, rows.Err()
}

// #endregion
