// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/ckersey/souschef/internal/agent"
	"github.com/ckersey/souschef/internal/models"
	"github.com/ckersey/souschef/internal/validation"
)

// maxBodyBytes caps request bodies. Snapshots carry inventories and
// saved recipes, so the cap is generous.
const maxBodyBytes = 1 << 20

func (s *Server) handleHealthLive(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleHealthReady(w http.ResponseWriter, r *http.Request) {
	if !s.ready() {
		writeError(w, r, http.StatusServiceUnavailable, "not_ready", "service is starting up")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	var req models.Request
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "malformed_body", err.Error())
		return
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	if req.Metadata.Timestamp.IsZero() {
		req.Metadata.Timestamp = time.Now()
	}
	if req.Context.Session.SessionID == "" {
		req.Context.Session = req.Metadata
	}

	intent := models.IntentGeneralHelp
	if req.IntentOverride != "" {
		intent, _ = models.ParseIntent(req.IntentOverride)
	}
	ag, ok := s.registry.SelectAgent(intent)
	if !ok {
		writeError(w, r, http.StatusServiceUnavailable, "no_agent", "no agent can handle this request")
		return
	}

	resp, err := ag.Handle(r.Context(), &req)
	if err != nil {
		s.writeHandleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) writeHandleError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *agent.ValidationError
	if errors.As(err, &verr) {
		var fields []map[string]interface{}
		var cause *validation.RequestValidationError
		if errors.As(err, &cause) {
			fields = cause.Fields()
		}
		writeValidationError(w, r, "request failed validation", fields)
		return
	}
	if agent.IsCannotHandle(err) {
		writeError(w, r, http.StatusUnprocessableEntity, "cannot_handle", err.Error())
		return
	}
	s.logger.Error().Err(err).Msg("Query handling failed")
	writeError(w, r, http.StatusInternalServerError, "internal", "something went wrong handling the request")
}

// feedbackRequest records user feedback on a previous interaction.
type feedbackRequest struct {
	UserID        string                      `json:"user_id"`
	InteractionID string                      `json:"interaction_id"`
	ResponseID    string                      `json:"response_id,omitempty"`
	Feedback      *models.InteractionFeedback `json:"feedback"`
}

func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	if s.bus == nil {
		writeError(w, r, http.StatusServiceUnavailable, "learning_disabled", "feedback recording is not enabled")
		return
	}

	var req feedbackRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "malformed_body", err.Error())
		return
	}
	switch {
	case req.UserID == "":
		writeValidationError(w, r, "user_id is required", nil)
		return
	case req.InteractionID == "":
		writeValidationError(w, r, "interaction_id is required", nil)
		return
	case req.Feedback == nil:
		writeValidationError(w, r, "feedback is required", nil)
		return
	}

	rec := models.InteractionRecord{
		ID:         req.InteractionID,
		UserID:     req.UserID,
		ResponseID: req.ResponseID,
		Feedback:   req.Feedback,
		Timestamp:  time.Now(),
	}
	if err := s.bus.Publish(rec); err != nil {
		s.logger.Error().Err(err).Str("user_id", req.UserID).Msg("Failed to publish feedback")
		writeError(w, r, http.StatusInternalServerError, "internal", "could not record feedback")
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

func (s *Server) handleGetPreferences(w http.ResponseWriter, r *http.Request) {
	if s.prefs == nil {
		writeError(w, r, http.StatusServiceUnavailable, "store_disabled", "preference storage is not enabled")
		return
	}
	userID := chi.URLParam(r, "userID")

	prefs, err := s.prefs.Get(r.Context(), userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("Failed to read preferences")
		writeError(w, r, http.StatusInternalServerError, "internal", "could not read preferences")
		return
	}
	writeJSON(w, http.StatusOK, prefs)
}

func (s *Server) handlePatchPreferences(w http.ResponseWriter, r *http.Request) {
	if s.prefs == nil {
		writeError(w, r, http.StatusServiceUnavailable, "store_disabled", "preference storage is not enabled")
		return
	}
	userID := chi.URLParam(r, "userID")

	var update models.Preferences
	if err := decodeBody(r, &update); err != nil {
		writeError(w, r, http.StatusBadRequest, "malformed_body", err.Error())
		return
	}

	merged, err := s.prefs.Merge(r.Context(), userID, update)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("Failed to merge preferences")
		writeError(w, r, http.StatusInternalServerError, "internal", "could not update preferences")
		return
	}
	writeJSON(w, http.StatusOK, merged)
}

func (s *Server) handleListRecipes(w http.ResponseWriter, r *http.Request) {
	if s.catalog == nil {
		writeError(w, r, http.StatusServiceUnavailable, "catalog_disabled", "recipe catalog is not enabled")
		return
	}
	recipes := s.catalog.Recipes()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"total":   len(recipes),
		"recipes": recipes,
	})
}

func (s *Server) handleAddRecipes(w http.ResponseWriter, r *http.Request) {
	if s.catalog == nil {
		writeError(w, r, http.StatusServiceUnavailable, "catalog_disabled", "recipe catalog is not enabled")
		return
	}

	var recipes []models.Recipe
	if err := decodeBody(r, &recipes); err != nil {
		writeError(w, r, http.StatusBadRequest, "malformed_body", err.Error())
		return
	}
	if len(recipes) == 0 {
		writeValidationError(w, r, "at least one recipe is required", nil)
		return
	}
	for i := range recipes {
		if recipes[i].ID == "" || recipes[i].Title == "" {
			writeValidationError(w, r, "every recipe needs an id and a title", nil)
			return
		}
	}

	s.catalog.Add(recipes...)
	writeJSON(w, http.StatusCreated, map[string]int{"total": s.catalog.Len()})
}

func decodeBody(r *http.Request, v interface{}) error {
	defer func() { _ = r.Body.Close() }()
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	return dec.Decode(v)
}
