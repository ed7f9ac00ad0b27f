// Package api exposes the resolution engine over HTTP. Handlers stay
// thin: decode, call the orchestrator, encode the response envelope.
package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/fysioscribe/dcsph-engine/internal/codes"
	"github.com/fysioscribe/dcsph-engine/internal/resolver"
	"github.com/fysioscribe/dcsph-engine/internal/taxonomy"
)

// #region envelope

type suggestionPayload struct {
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	Rationale  string  `json:"rationale"`
	Confidence float64 `json:"confidence"`
}

type errorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type resolveResponse struct {
	Success            bool                `json:"success"`
	Suggestions        []suggestionPayload `json:"suggestions"`
	NeedsClarification bool                `json:"needsClarification"`
	ClarifyingQuestion string              `json:"clarifyingQuestion,omitempty"`
	ConversationID     string              `json:"conversationId,omitempty"`
	Error              *errorPayload       `json:"error,omitempty"`
}

type resolveRequest struct {
	Query          string `json:"query"`
	ConversationID string `json:"conversationId,omitempty"`
}

func toPayload(list []codes.Suggestion) []suggestionPayload {
	out := make([]suggestionPayload, len(list))
	for i, s := range list {
		out[i] = suggestionPayload{
			Code:       s.Code.Code,
			Name:       s.Code.FullDescription,
			Rationale:  s.Rationale,
			Confidence: s.Confidence,
		}
	}
	return out
}

// #endregion

// #region server

// Server wires the orchestrator into an HTTP router.
type Server struct {
	orchestrator *resolver.Orchestrator
}

func NewServer(o *resolver.Orchestrator) *Server {
	return &Server{orchestrator: o}
}

// Routes builds the chi router for the engine API.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/resolve", s.handleResolve)
		r.Get("/health", s.handleHealth)
		r.Get("/codes/{code}", s.handleValidateCode)
		r.Get("/taxonomy/locations", s.handleLocations)
		r.Get("/taxonomy/pathologies", s.handlePathologies)
	})
	return r
}

// #endregion

// #region handlers

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, resolveResponse{
			Error: &errorPayload{Code: string(resolver.CodeInvalidInput), Message: "invalid JSON body"},
		})
		return
	}

	res, err := s.orchestrator.Resolve(r.Context(), req.Query, req.ConversationID)
	if err != nil {
		status, payload := mapError(err)
		payload.ConversationID = res.ConversationID
		writeJSON(w, status, payload)
		return
	}

	writeJSON(w, http.StatusOK, resolveResponse{
		Success:            true,
		Suggestions:        toPayload(res.Suggestions),
		NeedsClarification: res.NeedsClarification,
		ClarifyingQuestion: res.ClarifyingQuestion,
		ConversationID:     res.ConversationID,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	h := s.orchestrator.HealthCheck(r.Context())
	status := http.StatusOK
	if h.Status == resolver.StatusUnhealthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, h)
}

func (s *Server) handleValidateCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	dc, err := codes.Validate(code)
	if err != nil {
		var ve *codes.ValidationError
		msg := err.Error()
		reason := "invalid"
		if errors.As(err, &ve) {
			reason = string(ve.Reason)
			msg = ve.Message
		}
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"valid":  false,
			"reason": reason,
			"error":  msg,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"valid":     true,
		"code":      dc.Code,
		"name":      dc.FullDescription,
		"location":  dc.Location.Description,
		"pathology": dc.Pathology.Description,
	})
}

func (s *Server) handleLocations(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, taxonomy.Locations())
}

func (s *Server) handlePathologies(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, taxonomy.Pathologies())
}

// #endregion

// #region helpers

func mapError(err error) (int, resolveResponse) {
	resp := resolveResponse{Error: &errorPayload{Code: "INTERNAL", Message: err.Error()}}
	var re *resolver.Error
	if !errors.As(err, &re) {
		return http.StatusInternalServerError, resp
	}
	resp.Error = &errorPayload{Code: string(re.Code), Message: re.Reason}
	switch re.Code {
	case resolver.CodeInvalidInput:
		return http.StatusBadRequest, resp
	case resolver.CodeConversationNotFound:
		return http.StatusNotFound, resp
	case resolver.CodeClarificationBudget:
		return http.StatusConflict, resp
	default:
		return http.StatusBadGateway, resp
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[API] encode response: %v", err)
	}
}

// #endregion
