package resolver

import (
	"encoding/json"
	"fmt"
	"strings"
)

// #region model response schema

type rawSuggestion struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	Rationale string `json:"rationale"`
}

type modelResponse struct {
	Suggestions        []rawSuggestion `json:"suggestions"`
	NeedsClarification bool            `json:"needsClarification"`
	ClarifyingQuestion string          `json:"clarifyingQuestion,omitempty"`
}

// parseModelResponse decodes and structurally validates a model reply.
// Replies are expected as bare JSON, but fenced blocks are tolerated
// since models wrap output in markdown more often than not.
func parseModelResponse(raw string) (modelResponse, error) {
	var resp modelResponse
	body := stripFences(raw)
	if body == "" {
		return resp, fmt.Errorf("empty model reply")
	}
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		return resp, fmt.Errorf("decode model reply: %w", err)
	}
	if resp.NeedsClarification {
		if strings.TrimSpace(resp.ClarifyingQuestion) == "" {
			return resp, fmt.Errorf("needsClarification set without clarifyingQuestion")
		}
		return resp, nil
	}
	if len(resp.Suggestions) == 0 {
		return resp, fmt.Errorf("reply has neither suggestions nor a clarification request")
	}
	for i, s := range resp.Suggestions {
		if strings.TrimSpace(s.Code) == "" {
			return resp, fmt.Errorf("suggestion %d: missing code", i)
		}
		if strings.TrimSpace(s.Name) == "" {
			return resp, fmt.Errorf("suggestion %d: missing name", i)
		}
		if strings.TrimSpace(s.Rationale) == "" {
			return resp, fmt.Errorf("suggestion %d: missing rationale", i)
		}
	}
	return resp, nil
}

// stripFences removes a surrounding markdown code fence, if any.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// #endregion
