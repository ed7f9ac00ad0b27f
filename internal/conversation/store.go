// Package conversation owns multi-turn dialogue state for code
// resolution sessions: message history, the clarification-round budget,
// idle timeout, and the periodic cleanup sweep. The store is an
// explicit object with an injected clock, constructed by the host
// process and passed by handle into request handlers.
package conversation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fysioscribe/dcsph-engine/internal/codes"
)

// #region constants

const (
	// MaxClarificationRounds bounds question/answer cycles per session.
	MaxClarificationRounds = 2

	// Idle sessions time out after this long.
	sessionTimeout = 30 * time.Minute

	// Cleanup windows: inactive sessions are removed after an hour,
	// completed sessions after ten minutes.
	inactiveRetention  = time.Hour
	completedRetention = 10 * time.Minute
)

// ErrNotFound is returned when a conversation id is unknown.
var ErrNotFound = errors.New("conversation: not found")

// ErrClarificationBudget is returned when a session has exhausted its
// clarification rounds.
var ErrClarificationBudget = errors.New("conversation: clarification budget exhausted")

// #endregion

// #region store

// Store keeps conversations in an in-process keyed map. It is not
// designed for multi-instance consistency; a scaled deployment must
// substitute shared storage behind the same operations.
type Store struct {
	mu            sync.Mutex
	conversations map[string]*Conversation
	clock         func() time.Time
}

// NewStore creates a store with the given clock. A nil clock means
// time.Now.
func NewStore(clock func() time.Time) *Store {
	if clock == nil {
		clock = time.Now
	}
	return &Store{
		conversations: make(map[string]*Conversation),
		clock:         clock,
	}
}

// #endregion

// #region start

// Start creates a new active conversation seeded with the first user
// query and returns its snapshot.
func (s *Store) Start(query string) Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	conv := &Conversation{
		ID:            uuid.New().String(),
		Status:        StatusActive,
		StartedAt:     now,
		LastActiveAt:  now,
		OriginalQuery: query,
	}
	conv.Messages = append(conv.Messages, Message{
		ID:        uuid.New().String(),
		Role:      RoleUser,
		Content:   query,
		Timestamp: now,
		Type:      TypeQuery,
	})
	s.conversations[conv.ID] = conv
	return snapshot(conv)
}

// #endregion

// #region add-message

// AddMessage appends a message and refreshes the activity timestamp.
func (s *Store) AddMessage(id string, role Role, content string, mtype MessageType) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[id]
	if !ok {
		return ErrNotFound
	}
	s.append(conv, role, content, mtype)
	return nil
}

// append adds a message under the lock.
func (s *Store) append(conv *Conversation, role Role, content string, mtype MessageType) {
	now := s.clock()
	conv.Messages = append(conv.Messages, Message{
		ID:        uuid.New().String(),
		Role:      role,
		Content:   content,
		Timestamp: now,
		Type:      mtype,
	})
	conv.LastActiveAt = now
}

// #endregion

// #region clarification

// AddClarifyingQuestion records one clarification round. Once the
// budget is exhausted the conversation moves to the error status and
// further rounds are refused.
func (s *Store) AddClarifyingQuestion(id, question string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[id]
	if !ok {
		return ErrNotFound
	}
	if conv.ClarificationCount >= MaxClarificationRounds {
		s.append(conv, RoleSystem,
			fmt.Sprintf("maximum aantal verduidelijkingsvragen (%d) bereikt", MaxClarificationRounds),
			TypeError)
		conv.Status = StatusError
		return ErrClarificationBudget
	}

	conv.ClarificationCount++
	conv.NeedsClarification = true
	s.append(conv, RoleAssistant, question, TypeClarification)
	return nil
}

// ProcessUserResponse records the user's answer to a clarification and
// clears the pending flag.
func (s *Store) ProcessUserResponse(id, response string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[id]
	if !ok {
		return ErrNotFound
	}
	conv.NeedsClarification = false
	s.append(conv, RoleUser, response, TypeQuery)
	return nil
}

// #endregion

// #region complete

// Complete marks the conversation finished and stores the final
// suggestion list.
func (s *Store) Complete(id string, suggestions []codes.Suggestion) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[id]
	if !ok {
		return ErrNotFound
	}
	conv.Status = StatusCompleted
	conv.FinalSuggestions = suggestions
	s.append(conv, RoleAssistant,
		fmt.Sprintf("%d codevoorstellen gedaan", len(suggestions)),
		TypeResponse)
	return nil
}

// #endregion

// #region get

// Get returns a snapshot of a conversation. An active session past the
// idle timeout is moved to the timeout status before returning.
func (s *Store) Get(id string) (Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[id]
	if !ok {
		return Conversation{}, ErrNotFound
	}
	if conv.Status == StatusActive && s.clock().Sub(conv.LastActiveAt) > sessionTimeout {
		conv.Status = StatusTimeout
	}
	return snapshot(conv), nil
}

// snapshot copies a conversation so callers never alias store state.
func snapshot(conv *Conversation) Conversation {
	out := *conv
	out.Messages = make([]Message, len(conv.Messages))
	copy(out.Messages, conv.Messages)
	out.FinalSuggestions = make([]codes.Suggestion, len(conv.FinalSuggestions))
	copy(out.FinalSuggestions, conv.FinalSuggestions)
	return out
}

// #endregion

// #region complete-query

// BuildCompleteQuery concatenates all user query messages in order,
// giving the full complaint description across clarification rounds.
func (s *Store) BuildCompleteQuery(id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[id]
	if !ok {
		return "", ErrNotFound
	}
	var parts []string
	for _, m := range conv.Messages {
		if m.Role == RoleUser && m.Type == TypeQuery {
			parts = append(parts, m.Content)
		}
	}
	return strings.Join(parts, " "), nil
}

// #endregion

// #region cleanup

// Cleanup removes conversations inactive beyond the retention windows
// and returns how many were dropped.
func (s *Store) Cleanup() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	removed := 0
	for id, conv := range s.conversations {
		idle := now.Sub(conv.LastActiveAt)
		if idle > inactiveRetention || (conv.Status == StatusCompleted && idle > completedRetention) {
			delete(s.conversations, id)
			removed++
		}
	}
	return removed
}

// RunSweeper runs Cleanup on the given interval until ctx is cancelled.
// The host process owns this loop; request handlers never trigger it.
func (s *Store) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Cleanup(); n > 0 {
				log.Printf("[CONV] sweep removed %d conversations", n)
			}
		}
	}
}

// Len returns the number of stored conversations.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conversations)
}

// #endregion
