// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

package api

import (
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/ckersey/souschef/internal/logging"
)

// errorBody is the uniform error envelope. Fields is only populated for
// validation failures.
type errorBody struct {
	Code      string                   `json:"code"`
	Message   string                   `json:"message"`
	RequestID string                   `json:"request_id,omitempty"`
	Fields    []map[string]interface{} `json:"fields,omitempty"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeJSON(w, status, errorEnvelope{Error: errorBody{
		Code:      code,
		Message:   message,
		RequestID: logging.RequestIDFromContext(r.Context()),
	}})
}

func writeValidationError(w http.ResponseWriter, r *http.Request, message string, fields []map[string]interface{}) {
	writeJSON(w, http.StatusBadRequest, errorEnvelope{Error: errorBody{
		Code:      "validation_failed",
		Message:   message,
		RequestID: logging.RequestIDFromContext(r.Context()),
		Fields:    fields,
	}})
}
