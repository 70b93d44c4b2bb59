// Souschef - Conversational Cooking Assistant
// Copyright 2026 C. Kersey (ckersey)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ckersey/souschef

package agent

import (
	"errors"
	"fmt"
	"time"

	"github.com/ckersey/souschef/internal/models"
	"github.com/ckersey/souschef/internal/validation"
)

// ValidationError marks a malformed request. It is returned before any
// processing begins and is never retried.
type ValidationError struct {
	RequestID string
	Cause     *validation.RequestValidationError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("request %s failed validation: %s", e.RequestID, e.Cause.Error())
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// CannotHandleError marks an intent this agent does not support. The
// registry treats it as fatal for the agent and tries the next candidate.
type CannotHandleError struct {
	AgentType string
	Intent    models.Intent
}

func (e *CannotHandleError) Error() string {
	return fmt.Sprintf("agent %s cannot handle intent %s", e.AgentType, e.Intent)
}

// TimeoutError marks a request that exceeded the agent's processing
// budget. The abandoned computation is not terminated early.
type TimeoutError struct {
	RequestID string
	Budget    time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request %s exceeded processing budget of %s", e.RequestID, e.Budget)
}

// ConfigurationError marks a misconfigured agent. It prevents
// registration.
type ConfigurationError struct {
	AgentType string
	Reason    string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("agent %s misconfigured: %s", e.AgentType, e.Reason)
}

// IsValidation reports whether err is a request validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsTimeout reports whether err is a processing-budget timeout.
func IsTimeout(err error) bool {
	var te *TimeoutError
	return errors.As(err, &te)
}

// IsCannotHandle reports whether err marks an unsupported intent.
func IsCannotHandle(err error) bool {
	var ce *CannotHandleError
	return errors.As(err, &ce)
}
