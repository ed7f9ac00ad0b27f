package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChatURL(t *testing.T) {
	cases := []struct {
		base string
		want string
	}{
		{"https://api.openai.com/v1", "https://api.openai.com/v1/chat/completions"},
		{"http://localhost:8080", "http://localhost:8080/v1/chat/completions"},
		{"http://localhost:8080/v1/", "http://localhost:8080/v1/chat/completions"},
		{"", "https://api.openai.com/v1/chat/completions"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, chatURL(tc.base), "base=%q", tc.base)
	}
}

func TestNewClientValidation(t *testing.T) {
	_, err := NewClient("", "gpt-4o-mini")
	require.Error(t, err)

	_, err = NewClient("sk-test", "")
	require.Error(t, err)

	c, err := NewClient("sk-test", "gpt-4o-mini")
	require.NoError(t, err)
	require.Equal(t, "https://api.openai.com/v1", c.baseURL)
}

func TestGenerate(t *testing.T) {
	var gotAuth string
	var gotBody chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &gotBody))
		_, _ = w.Write([]byte(`{"choices":[{"index":0,"message":{"role":"assistant","content":"{\"suggestions\":[],\"needsClarification\":true,\"clarifyingQuestion\":\"Waar zit de pijn?\"}"}}]}`))
	}))
	defer srv.Close()

	c, err := NewClient("sk-test", "gpt-4o-mini", WithBaseURL(srv.URL))
	require.NoError(t, err)

	out, err := c.Generate(context.Background(), []Message{
		{Role: RoleSystem, Content: "systeem"},
		{Role: RoleUser, Content: "pijn in de knie"},
	})
	require.NoError(t, err)
	require.Contains(t, out, "needsClarification")

	require.Equal(t, "Bearer sk-test", gotAuth)
	require.Equal(t, "gpt-4o-mini", gotBody.Model)
	require.Len(t, gotBody.Messages, 2)
	require.NotNil(t, gotBody.ResponseFormat)
	require.Equal(t, "dcsph_suggestions", gotBody.ResponseFormat.JSONSchema.Name)
}

func TestResponseSchemaStrictRequiresAllProperties(t *testing.T) {
	// Strict structured-output backends reject schemas whose required
	// list does not cover every declared property.
	rf := suggestionResponseFormat()
	require.True(t, rf.JSONSchema.Strict)

	var check func(raw []byte)
	check = func(raw []byte) {
		var schema struct {
			Properties map[string]json.RawMessage `json:"properties"`
			Required   []string                   `json:"required"`
			Items      json.RawMessage            `json:"items"`
		}
		require.NoError(t, json.Unmarshal(raw, &schema))
		required := make(map[string]bool, len(schema.Required))
		for _, name := range schema.Required {
			required[name] = true
		}
		for name, sub := range schema.Properties {
			require.True(t, required[name], "property %q missing from required", name)
			check(sub)
		}
		if schema.Items != nil {
			check(schema.Items)
		}
	}
	check(rf.JSONSchema.Schema)
}

func TestGenerateHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c, err := NewClient("sk-test", "gpt-4o-mini", WithBaseURL(srv.URL))
	require.NoError(t, err)

	_, err = c.Generate(context.Background(), []Message{{Role: RoleUser, Content: "x"}})
	require.Error(t, err)
	require.ErrorContains(t, err, "503")
}

func TestGenerateNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c, err := NewClient("sk-test", "gpt-4o-mini", WithBaseURL(srv.URL))
	require.NoError(t, err)

	_, err = c.Generate(context.Background(), []Message{{Role: RoleUser, Content: "x"}})
	require.Error(t, err)
	require.ErrorContains(t, err, "no choices")
}

func TestFakePlaysRepliesInOrder(t *testing.T) {
	f := NewFake("eerste", "tweede")

	out, err := f.Generate(context.Background(), []Message{{Role: RoleUser, Content: "a"}})
	require.NoError(t, err)
	require.Equal(t, "eerste", out)

	out, err = f.Generate(context.Background(), []Message{{Role: RoleUser, Content: "b"}})
	require.NoError(t, err)
	require.Equal(t, "tweede", out)

	// Script exhausted: last reply repeats.
	out, err = f.Generate(context.Background(), []Message{{Role: RoleUser, Content: "c"}})
	require.NoError(t, err)
	require.Equal(t, "tweede", out)

	require.Equal(t, 3, f.CallCount())
	require.Equal(t, "a", f.Calls[0][0].Content)
}
