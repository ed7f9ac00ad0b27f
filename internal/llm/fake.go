package llm

import (
	"context"
	"errors"
	"sync"
)

// #region fake

// Fake is a scripted Generator for tests and offline development. Each
// Generate call consumes the next scripted reply; the last reply
// repeats once the script runs out.
type Fake struct {
	mu      sync.Mutex
	Replies []string
	Err     error
	Calls   [][]Message
}

// NewFake creates a Fake that plays back the given replies in order.
func NewFake(replies ...string) *Fake {
	return &Fake{Replies: replies}
}

// Generate implements Generator.
func (f *Fake) Generate(_ context.Context, messages []Message) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	copied := make([]Message, len(messages))
	copy(copied, messages)
	f.Calls = append(f.Calls, copied)

	if f.Err != nil {
		return "", f.Err
	}
	if len(f.Replies) == 0 {
		return "", errors.New("llm: fake has no scripted replies")
	}
	idx := len(f.Calls) - 1
	if idx >= len(f.Replies) {
		idx = len(f.Replies) - 1
	}
	return f.Replies[idx], nil
}

// CallCount returns how many times Generate ran.
func (f *Fake) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Calls)
}

// #endregion
