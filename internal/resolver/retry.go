package resolver

import "time"

// #region retry state machine

// State names a phase of the resolution loop.
type State int

const (
	StateAttempting State = iota
	StateValidating
	StateFallback
	StateDone
)

func (s State) String() string {
	switch s {
	case StateAttempting:
		return "attempting"
	case StateValidating:
		return "validating"
	case StateFallback:
		return "fallback"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Outcome summarizes what happened during one attempt.
type Outcome int

const (
	// OutcomeAccepted means the model reply parsed and passed validation.
	OutcomeAccepted Outcome = iota
	// OutcomeRejected means the reply arrived but failed schema or
	// code validation.
	OutcomeRejected
	// OutcomeError means the model call itself failed.
	OutcomeError
)

const maxAttempts = 2

// nextState is the pure transition function of the resolution loop.
// Attempting always hands over to Validating; Validating branches on
// the attempt's outcome. attempt is 1-based; outcome is only consulted
// in StateValidating. Keeping transitions out of the loop body makes
// every edge testable in isolation.
func nextState(state State, attempt int, outcome Outcome) State {
	switch state {
	case StateAttempting:
		return StateValidating
	case StateValidating:
		if outcome == OutcomeAccepted {
			return StateDone
		}
		if attempt < maxAttempts {
			return StateAttempting
		}
		return StateFallback
	default:
		return state
	}
}

// retryDelay is the pause before re-entering StateAttempting after the
// given attempt number failed.
func retryDelay(base time.Duration, attempt int) time.Duration {
	return base * time.Duration(attempt)
}

// #endregion
