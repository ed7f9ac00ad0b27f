package resolver

import "fmt"

// #region errors

// ErrorCode classifies orchestrator failures for callers that need to
// map them onto transport responses.
type ErrorCode string

const (
	CodeInvalidInput          ErrorCode = "INVALID_INPUT"
	CodeConversationNotFound  ErrorCode = "CONVERSATION_NOT_FOUND"
	CodeClarificationBudget   ErrorCode = "CLARIFICATION_BUDGET_EXHAUSTED"
	CodeResolutionUnavailable ErrorCode = "RESOLUTION_UNAVAILABLE"
)

// Error is a typed orchestrator error carrying a stable code alongside
// a human-readable reason.
type Error struct {
	Code   ErrorCode
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Reason)
}

func (e *Error) Unwrap() error { return e.Err }

func invalidInput(reason string) *Error {
	return &Error{Code: CodeInvalidInput, Reason: reason}
}

// #endregion
