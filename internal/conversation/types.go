package conversation

import (
	"time"

	"github.com/fysioscribe/dcsph-engine/internal/codes"
)

// #region status

// Status is the lifecycle state of a conversation.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusError     Status = "error"
	StatusTimeout   Status = "timeout"
)

// #endregion

// #region message

// Role identifies who authored a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// MessageType labels what a message carries.
type MessageType string

const (
	TypeQuery         MessageType = "query"
	TypeClarification MessageType = "clarification"
	TypeResponse      MessageType = "response"
	TypeError         MessageType = "error"
)

// Message is one append-only conversation entry.
type Message struct {
	ID        string
	Role      Role
	Content   string
	Timestamp time.Time
	Type      MessageType
}

// #endregion

// #region conversation

// Conversation is the full dialogue state for one resolution session.
type Conversation struct {
	ID                 string
	Messages           []Message
	Status             Status
	StartedAt          time.Time
	LastActiveAt       time.Time
	NeedsClarification bool
	ClarificationCount int
	OriginalQuery      string
	FinalSuggestions   []codes.Suggestion
}

// #endregion

// #region missing-info

// QuestionAnswer pairs a clarifying question with the user reply that
// immediately followed it.
type QuestionAnswer struct {
	Question string
	Answer   string
}

// MissingInfo reports which complaint aspects the dialogue has not yet
// addressed.
type MissingInfo struct {
	MissingCategories []string // location, pathology, timing, mechanism
	AnsweredQuestions []QuestionAnswer
}

// #endregion
