// Package resolver orchestrates AI-assisted DCSPH resolution: it drives
// the model through a bounded retry loop, validates and scores replies,
// enriches accepted suggestions, and falls back to the deterministic
// knowledge base when the model cannot deliver.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fysioscribe/dcsph-engine/internal/codes"
	"github.com/fysioscribe/dcsph-engine/internal/conversation"
	"github.com/fysioscribe/dcsph-engine/internal/kb"
	"github.com/fysioscribe/dcsph-engine/internal/llm"
	"github.com/fysioscribe/dcsph-engine/internal/memory"
	"github.com/fysioscribe/dcsph-engine/internal/pattern"
)

// #region options

const maxQueryRunes = 500

// patternAgreementBonus is added to a suggestion's base confidence when
// the deterministic pattern matcher independently arrived at the same
// code for the original query.
const patternAgreementBonus = 0.05

// Options tunes the resolution policy. Zero values select defaults.
type Options struct {
	FallbackDiscount float64
	EnrichmentBoost  float64
	RetryBackoffBase time.Duration
}

func (o Options) withDefaults() Options {
	if o.FallbackDiscount == 0 {
		o.FallbackDiscount = 0.8
	}
	if o.EnrichmentBoost == 0 {
		o.EnrichmentBoost = 1.1
	}
	if o.RetryBackoffBase == 0 {
		o.RetryBackoffBase = time.Second
	}
	return o
}

// #endregion

// #region orchestrator

// Orchestrator coordinates model calls, validation, conversation state
// and fallback for one engine instance. Safe for concurrent use; all
// mutable state lives in the conversation store and the ledger.
type Orchestrator struct {
	generator     llm.Generator
	conversations *conversation.Store
	ledger        *memory.Ledger
	opts          Options
	sleep         func(time.Duration)
}

// New builds an orchestrator. ledger may be nil to disable persistence.
func New(generator llm.Generator, conversations *conversation.Store, ledger *memory.Ledger, opts Options) *Orchestrator {
	return &Orchestrator{
		generator:     generator,
		conversations: conversations,
		ledger:        ledger,
		opts:          opts.withDefaults(),
		sleep:         time.Sleep,
	}
}

// Result is the outcome of one resolution turn.
type Result struct {
	Suggestions        []codes.Suggestion
	NeedsClarification bool
	ClarifyingQuestion string
	ConversationID     string
	Source             memory.Source
}

// #endregion

// #region resolve

// Resolve handles one user turn. An empty conversationID starts a new
// session; otherwise the query is treated as a follow-up (typically an
// answer to a clarifying question) on the existing session.
func (o *Orchestrator) Resolve(ctx context.Context, query, conversationID string) (Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Result{}, invalidInput("query is empty")
	}
	if utf8.RuneCountInString(query) > maxQueryRunes {
		return Result{}, invalidInput(fmt.Sprintf("query exceeds %d characters", maxQueryRunes))
	}

	var conv conversation.Conversation
	if conversationID == "" {
		conv = o.conversations.Start(query)
	} else {
		c, err := o.conversations.Get(conversationID)
		if err != nil {
			return Result{}, &Error{Code: CodeConversationNotFound, Reason: "unknown conversation " + conversationID, Err: err}
		}
		conv = c
		if err := o.conversations.ProcessUserResponse(conv.ID, query); err != nil {
			return Result{}, &Error{Code: CodeConversationNotFound, Reason: "record follow-up", Err: err}
		}
	}

	fullQuery, err := o.conversations.BuildCompleteQuery(conv.ID)
	if err != nil {
		return Result{}, &Error{Code: CodeConversationNotFound, Reason: "assemble query", Err: err}
	}

	resp, ver, state := o.runAttempts(ctx, conv.ID, fullQuery)

	if state == StateFallback {
		return o.resolveFallback(conv.ID, fullQuery)
	}

	if resp.NeedsClarification {
		return o.clarify(conv.ID, resp.ClarifyingQuestion)
	}

	suggestions := o.enrich(conv.OriginalQuery, resp, ver)
	if len(suggestions) == 0 {
		// All accepted codes vanished during enrichment lookup. Should
		// not happen since validation already checked them, but the
		// fallback is safer than an empty answer.
		return o.resolveFallback(conv.ID, fullQuery)
	}
	if err := o.conversations.Complete(conv.ID, suggestions); err != nil {
		log.Printf("[RESOLVE] complete %s: %v", conv.ID, err)
	}
	o.logDecision(conv.ID, "suggestions", fmt.Sprintf("ai accepted, %d codes, mean score %.2f", len(suggestions), ver.meanScore))
	return Result{
		Suggestions:    suggestions,
		ConversationID: conv.ID,
		Source:         memory.SourceAI,
	}, nil
}

// runAttempts drives the retry state machine until it reaches Done or
// Fallback and returns the accepted response, its validation verdict,
// and the terminal state.
func (o *Orchestrator) runAttempts(ctx context.Context, convID, fullQuery string) (modelResponse, validation, State) {
	var (
		resp    modelResponse
		ver     validation
		outcome Outcome
		reason  string
		attempt int
	)
	state := StateAttempting
	for state != StateDone && state != StateFallback {
		switch state {
		case StateAttempting:
			attempt++
			if attempt > 1 {
				o.sleep(retryDelay(o.opts.RetryBackoffBase, attempt-1))
			}
			started := time.Now()
			outcome, resp, ver, reason = o.attemptOnce(ctx, convID)
			o.recordAttempt(convID, fullQuery, attempt, outcome, ver, reason, time.Since(started))
			state = nextState(state, attempt, outcome)
		case StateValidating:
			if outcome != OutcomeAccepted {
				log.Printf("[RESOLVE] %s attempt %d/%d failed: %s", convID, attempt, maxAttempts, reason)
			}
			state = nextState(state, attempt, outcome)
		}
	}
	return resp, ver, state
}

// attemptOnce performs one model call plus schema parsing and
// validation scoring.
func (o *Orchestrator) attemptOnce(ctx context.Context, convID string) (Outcome, modelResponse, validation, string) {
	raw, err := o.generator.Generate(ctx, o.buildMessages(convID))
	if err != nil {
		return OutcomeError, modelResponse{}, validation{}, err.Error()
	}
	resp, err := parseModelResponse(raw)
	if err != nil {
		return OutcomeRejected, modelResponse{}, validation{}, err.Error()
	}
	ver := validateResponse(resp)
	if !ver.accepted {
		return OutcomeRejected, resp, ver, rejectionReason(ver)
	}
	return OutcomeAccepted, resp, ver, ""
}

func rejectionReason(v validation) string {
	if len(v.invalidCodes) > 0 {
		return "invalid codes: " + strings.Join(v.invalidCodes, ", ")
	}
	return fmt.Sprintf("mean validation score %.2f below threshold", v.meanScore)
}

// buildMessages maps the conversation history onto model messages with
// the system prompt in front. Error markers stay out of the transcript.
func (o *Orchestrator) buildMessages(convID string) []llm.Message {
	msgs := []llm.Message{{Role: llm.RoleSystem, Content: systemPrompt}}
	conv, err := o.conversations.Get(convID)
	if err != nil {
		return msgs
	}
	for _, m := range conv.Messages {
		if m.Type == conversation.TypeError {
			continue
		}
		switch m.Role {
		case conversation.RoleUser:
			msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: m.Content})
		case conversation.RoleAssistant:
			msgs = append(msgs, llm.Message{Role: llm.RoleAssistant, Content: m.Content})
		}
	}
	return msgs
}

// #endregion

// #region enrichment

// enrich turns an accepted model response into final suggestions: codes
// are resolved against the taxonomy, rationales come from the template
// logic so wording stays uniform, and confidence is the per-suggestion
// validation score boosted when accepted, with a bonus when the pattern
// matcher agrees on the code.
func (o *Orchestrator) enrich(originalQuery string, resp modelResponse, ver validation) []codes.Suggestion {
	analysis := pattern.Analyze(originalQuery)
	supported := make(map[string]bool, len(analysis.SuggestedCodes))
	for _, c := range analysis.SuggestedCodes {
		supported[c] = true
	}
	var out []codes.Suggestion
	for i, s := range resp.Suggestions {
		dc, err := codes.Validate(s.Code)
		if err != nil {
			continue
		}
		base := scoreBase
		if i < len(ver.scores) {
			base = ver.scores[i]
		}
		if supported[s.Code] {
			base += patternAgreementBonus
		}
		conf := base * o.opts.EnrichmentBoost
		if conf > 1.0 {
			conf = 1.0
		}
		out = append(out, codes.Suggestion{
			Code:       dc,
			Confidence: conf,
			Rationale:  codes.SelectRationale(dc.Location, dc.Pathology),
		})
	}
	return out
}

// #endregion

// #region fallback

// resolveFallback answers from the knowledge base after the AI path is
// exhausted. Confidence is discounted so deterministic answers rank
// below accepted AI answers of equal quality.
func (o *Orchestrator) resolveFallback(convID, fullQuery string) (Result, error) {
	fb := kb.Resolve(fullQuery)

	if len(fb.Suggestions) > 0 {
		suggestions := make([]codes.Suggestion, len(fb.Suggestions))
		for i, s := range fb.Suggestions {
			s.Confidence *= o.opts.FallbackDiscount
			suggestions[i] = s
		}
		if err := o.conversations.Complete(convID, suggestions); err != nil {
			log.Printf("[RESOLVE] complete %s: %v", convID, err)
		}
		o.recordFallback(convID, fullQuery, fb, suggestions)
		o.logDecision(convID, "suggestions", fmt.Sprintf("fallback (%s), %d codes", fb.Source, len(suggestions)))
		return Result{
			Suggestions:    suggestions,
			ConversationID: convID,
			Source:         memory.SourceFallback,
		}, nil
	}

	question := fb.ClarifyingQuestion
	if question == "" {
		question = "Kunt u de klacht specifieker omschrijven? Noem de lichaamslocatie en de aard van de klacht."
	}
	return o.clarify(convID, question)
}

func (o *Orchestrator) recordFallback(convID, fullQuery string, fb kb.Result, suggestions []codes.Suggestion) {
	source := memory.SourceFallback
	if fb.Source == kb.SourceShortcut {
		source = memory.SourceShortcut
	}
	err := o.ledger.RecordOutcome(memory.OutcomeRecord{
		ConversationID:  convID,
		Query:           fullQuery,
		Source:          source,
		Accepted:        true,
		SuggestionCount: len(suggestions),
		Confidence:      fb.Confidence * o.opts.FallbackDiscount,
		FailureReason:   "",
	})
	if err != nil {
		log.Printf("[LEDGER] record fallback: %v", err)
	}
}

// #endregion

// #region clarification

// clarify books a clarifying question on the conversation. When the
// round budget is already spent, the conversation moves to the error
// state and the caller gets a typed budget error.
func (o *Orchestrator) clarify(convID, question string) (Result, error) {
	if err := o.conversations.AddClarifyingQuestion(convID, question); err != nil {
		if errors.Is(err, conversation.ErrClarificationBudget) {
			o.logDecision(convID, "error", "clarification budget exhausted")
			return Result{ConversationID: convID}, &Error{
				Code:   CodeClarificationBudget,
				Reason: fmt.Sprintf("maximum of %d clarification rounds reached", conversation.MaxClarificationRounds),
				Err:    err,
			}
		}
		return Result{}, &Error{Code: CodeConversationNotFound, Reason: "record clarification", Err: err}
	}
	o.logDecision(convID, "clarification", question)
	return Result{
		NeedsClarification: true,
		ClarifyingQuestion: question,
		ConversationID:     convID,
		Source:             memory.SourceNone,
	}, nil
}

// #endregion

// #region ledger

func (o *Orchestrator) recordAttempt(convID, fullQuery string, attempt int, outcome Outcome, ver validation, reason string, dur time.Duration) {
	err := o.ledger.RecordOutcome(memory.OutcomeRecord{
		ConversationID:  convID,
		Query:           fullQuery,
		Source:          memory.SourceAI,
		AttemptNum:      attempt,
		Accepted:        outcome == OutcomeAccepted,
		ValidationScore: ver.meanScore,
		SuggestionCount: len(ver.scores),
		FailureReason:   reason,
		Duration:        dur,
	})
	if err != nil {
		log.Printf("[LEDGER] record attempt: %v", err)
	}
}

func (o *Orchestrator) logDecision(convID, decision, detail string) {
	if err := o.ledger.LogDecision(memory.DecisionEntry{
		ConversationID: convID,
		Decision:       decision,
		Detail:         detail,
	}); err != nil {
		log.Printf("[LEDGER] log decision: %v", err)
	}
}

// #endregion
