package signup

import "github.com/dmitrymomot/signupguard/pkg/validator"

// Values holds the raw text of each field as typed by the user.
type Values map[Field]string

// CriterionResult is the outcome of one criterion for the current raw value.
type CriterionResult struct {
	Criterion Criterion `json:"criterion"`
	Satisfied bool      `json:"satisfied"`
	Guidance  string    `json:"guidance"`
}

// FieldState is the part of a snapshot affected by a change to one field.
// PasswordsMatch is set only when the change was to a password field.
type FieldState struct {
	Field          Field             `json:"field"`
	Criteria       []CriterionResult `json:"criteria"`
	PasswordsMatch *bool             `json:"passwords_match,omitempty"`
}

// Satisfied reports whether every criterion of the field, and the match flag
// when present, passes.
func (s FieldState) Satisfied() bool {
	if s.PasswordsMatch != nil && !*s.PasswordsMatch {
		return false
	}
	return allSatisfied(s.Criteria)
}

// Snapshot is the complete live-feedback state for every field.
type Snapshot struct {
	Fields         map[Field][]CriterionResult `json:"fields"`
	PasswordsMatch bool                        `json:"passwords_match"`
}

// SubmitDecision is the submit gate. FirstFailureField is empty when Allowed.
type SubmitDecision struct {
	Allowed           bool                       `json:"allowed"`
	FirstFailureField Field                      `json:"first_failure_field,omitempty"`
	Violations        validator.ValidationErrors `json:"violations,omitempty"`
}

// FirstViolation returns the first violated guidance in precedence order.
func (d SubmitDecision) FirstViolation() (validator.ValidationError, bool) {
	if len(d.Violations) == 0 {
		return validator.ValidationError{}, false
	}
	return d.Violations[0], true
}

// Err returns the violations as an error, or nil when the submission is allowed.
func (d SubmitDecision) Err() error {
	if d.Allowed {
		return nil
	}
	return d.Violations
}

func allSatisfied(results []CriterionResult) bool {
	for _, r := range results {
		if !r.Satisfied {
			return false
		}
	}
	return true
}
