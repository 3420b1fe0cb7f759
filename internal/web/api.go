package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/signupguard/pkg/logger"
	"github.com/dmitrymomot/signupguard/pkg/signup"
)

const maxAPIBody = 64 << 10

type evaluateFieldRequest struct {
	Value string `json:"value"`
}

type evaluateFieldResponse struct {
	Field    signup.Field             `json:"field"`
	Criteria []signup.CriterionResult `json:"criteria"`
}

type passwordsMatchRequest struct {
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type passwordsMatchResponse struct {
	PasswordsMatch bool `json:"passwords_match"`
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxAPIBody))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrBadSignals, err)
	}
	return nil
}

// APIEvaluateField returns the live criteria of one field.
func (h *Handler) APIEvaluateField(w http.ResponseWriter, r *http.Request) {
	field, err := fieldParam(r)
	if err != nil {
		h.apiFail(w, r, err)
		return
	}
	var req evaluateFieldRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.apiFail(w, r, err)
		return
	}

	criteria := h.eval.EvaluateField(field, req.Value)
	if err := writeJSON(w, http.StatusOK, JSONResponse{Data: evaluateFieldResponse{Field: field, Criteria: criteria}}); err != nil {
		h.renderFailed(r, err)
	}
}

// APIPasswordsMatch compares a password with its confirmation.
func (h *Handler) APIPasswordsMatch(w http.ResponseWriter, r *http.Request) {
	var req passwordsMatchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.apiFail(w, r, err)
		return
	}
	match := h.eval.EvaluatePasswordsMatch(req.Password, req.ConfirmPassword)
	if err := writeJSON(w, http.StatusOK, JSONResponse{Data: passwordsMatchResponse{PasswordsMatch: match}}); err != nil {
		h.renderFailed(r, err)
	}
}

// APISubmit evaluates the submit gate over a field name to value object.
// A vetoed submission is a normal 200 response with allowed=false.
func (h *Handler) APISubmit(w http.ResponseWriter, r *http.Request) {
	var raw map[string]string
	if err := decodeJSON(w, r, &raw); err != nil {
		h.apiFail(w, r, err)
		return
	}

	values := make(signup.Values, len(raw))
	for name, v := range raw {
		f, err := signup.ParseField(name)
		if err != nil {
			h.apiFail(w, r, fmt.Errorf("%w: %w", ErrBadSignals, err))
			return
		}
		values[f] = v
	}

	decision := h.eval.EvaluateSubmit(values)
	h.log.InfoContext(r.Context(), "api submit evaluated",
		logger.Decision(decision.Allowed, decision.FirstFailureField.String(), len(decision.Violations)),
	)
	if err := writeJSON(w, http.StatusOK, JSONResponse{Data: decision}); err != nil {
		h.renderFailed(r, err)
	}
}

func (h *Handler) apiFail(w http.ResponseWriter, r *http.Request, err error) {
	status, code := http.StatusInternalServerError, "internal_error"
	switch {
	case errors.Is(err, ErrBadSignals):
		status, code = http.StatusBadRequest, "bad_request"
	case errors.Is(err, signup.ErrUnknownField):
		status, code = http.StatusNotFound, "unknown_field"
	}
	h.log.WarnContext(r.Context(), "api request rejected",
		slog.String("path", r.URL.Path),
		slog.Int("status", status),
		logger.Error(err),
	)
	if err := writeJSONError(w, status, code, err); err != nil {
		h.renderFailed(r, err)
	}
}
