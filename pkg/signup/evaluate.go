package signup

import "github.com/dmitrymomot/signupguard/pkg/validator"

// Evaluator applies the field criteria. It holds no per-form state and is
// safe for concurrent use.
type Evaluator struct {
	guidance Guidance
	policy   validator.PasswordPolicy
}

// EvaluatorOption configures an Evaluator.
type EvaluatorOption func(*Evaluator)

// WithGuidance overlays g on the embedded guidance catalogue.
func WithGuidance(g Guidance) EvaluatorOption {
	return func(e *Evaluator) {
		if len(g) > 0 {
			e.guidance = e.guidance.Merge(g)
		}
	}
}

// NewEvaluator returns an Evaluator using the embedded guidance catalogue.
func NewEvaluator(opts ...EvaluatorOption) *Evaluator {
	e := &Evaluator{
		guidance: DefaultGuidance(),
		policy:   passwordPolicy(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEvaluator = NewEvaluator()

// EvaluateField classifies raw against the live criteria of field using the
// default guidance. Unknown fields and confirmPassword yield no criteria.
func EvaluateField(field Field, raw string) []CriterionResult {
	return defaultEvaluator.EvaluateField(field, raw)
}

// EvaluatePasswordsMatch reports whether both values are byte-for-byte equal.
func EvaluatePasswordsMatch(password, confirm string) bool {
	return defaultEvaluator.EvaluatePasswordsMatch(password, confirm)
}

// EvaluateSubmit runs the full submit gate with the default guidance.
func EvaluateSubmit(values Values) SubmitDecision {
	return defaultEvaluator.EvaluateSubmit(values)
}

// Guidance returns the catalogue in use.
func (e *Evaluator) Guidance() Guidance {
	return e.guidance.Clone()
}

func (e *Evaluator) EvaluateField(field Field, raw string) []CriterionResult {
	specs := fieldCriteria[field]
	rules := make([]validator.Rule, 0, len(specs))
	for _, s := range specs {
		rules = append(rules, s.rule(field.String(), raw))
	}

	outcomes := validator.Evaluate(rules...)
	results := make([]CriterionResult, 0, len(outcomes))
	for i, o := range outcomes {
		c := specs[i].criterion
		results = append(results, CriterionResult{
			Criterion: c,
			Satisfied: o.Passed,
			Guidance:  e.guidance.Text(field, c, o.Rule.Message),
		})
	}
	return results
}

func (e *Evaluator) EvaluatePasswordsMatch(password, confirm string) bool {
	return validator.EqualTo(ConfirmPassword.String(), confirm, password).Check()
}

// EvaluateSubmit ANDs every field criterion, the password strength check and
// the password match. Missing fields count as empty strings. Violations are
// ordered by field precedence, then by criterion display order.
func (e *Evaluator) EvaluateSubmit(values Values) SubmitDecision {
	var violations validator.ValidationErrors

	for _, field := range Fields() {
		raw := values[field]

		for _, r := range e.EvaluateField(field, raw) {
			if !r.Satisfied {
				violations.Add(e.violation(field, r.Criterion, r.Guidance))
			}
		}

		switch field {
		case Password:
			strength := validator.StrongPassword(field.String(), raw, e.policy)
			if !strength.Check() {
				violations.Add(e.violation(field, PasswordStrength, strength.Error.Message))
			}
		case ConfirmPassword:
			if !e.EvaluatePasswordsMatch(values[Password], raw) {
				v := e.violation(field, PasswordsMatch, "")
				v.Message = e.guidance.Text(field, PasswordsMismatch, passwordsMismatchFallback)
				violations.Add(v)
			}
		}
	}

	decision := SubmitDecision{
		Allowed:    violations.IsEmpty(),
		Violations: violations,
	}
	if first, ok := decision.FirstViolation(); ok {
		decision.FirstFailureField = Field(first.Field)
	}
	return decision
}

func (e *Evaluator) violation(field Field, c Criterion, fallback string) validator.ValidationError {
	return validator.ValidationError{
		Field:          field.String(),
		Message:        e.guidance.Text(field, c, fallback),
		TranslationKey: "signup." + string(field) + "." + string(c),
		TranslationValues: map[string]any{
			"field":     field.String(),
			"criterion": string(c),
		},
	}
}
