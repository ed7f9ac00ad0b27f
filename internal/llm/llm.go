// Package llm defines the narrow language-model adapter the resolver
// depends on, with an OpenAI-compatible HTTP implementation and a fake
// for deterministic tests.
package llm

import "context"

// #region messages

// Role identifies who authored a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry in the ordered conversation passed to the model.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// #endregion

// #region generator

// Generator produces raw model text for an ordered message history. The
// resolver owns parsing and validation of the reply; implementations
// only move bytes.
type Generator interface {
	Generate(ctx context.Context, messages []Message) (string, error)
}

// #endregion
