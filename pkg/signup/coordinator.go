package signup

import "maps"

// Coordinator tracks the latest raw value of each field and turns change
// events into render-ready state. Results are never cached: each call
// recomputes from the stored raw values.
//
// A Coordinator serves one form and is not safe for concurrent use.
type Coordinator struct {
	eval   *Evaluator
	values Values
}

// CoordinatorOption configures a Coordinator.
type CoordinatorOption func(*Coordinator)

// WithEvaluator replaces the default Evaluator.
func WithEvaluator(e *Evaluator) CoordinatorOption {
	return func(c *Coordinator) {
		if e != nil {
			c.eval = e
		}
	}
}

// WithValues seeds the coordinator with field values, for example the
// signals sent along with a change event. Unknown fields are ignored.
func WithValues(values Values) CoordinatorOption {
	return func(c *Coordinator) {
		for f, v := range values {
			if f.Valid() {
				c.values[f] = v
			}
		}
	}
}

// NewCoordinator returns a Coordinator with every field empty.
func NewCoordinator(opts ...CoordinatorOption) *Coordinator {
	c := &Coordinator{
		eval:   defaultEvaluator,
		values: make(Values, len(Fields())),
	}
	for _, f := range Fields() {
		c.values[f] = ""
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnFieldChanged stores raw for field and returns the recomputed criteria of
// that field. For password and confirmPassword the match flag is recomputed
// and included. The only error is ErrUnknownField.
func (c *Coordinator) OnFieldChanged(field Field, raw string) (FieldState, error) {
	if !field.Valid() {
		return FieldState{}, ErrUnknownField
	}
	c.values[field] = raw
	return c.state(field), nil
}

// State returns the current state of one field without changing it.
func (c *Coordinator) State(field Field) (FieldState, error) {
	if !field.Valid() {
		return FieldState{}, ErrUnknownField
	}
	return c.state(field), nil
}

func (c *Coordinator) state(field Field) FieldState {
	s := FieldState{
		Field:    field,
		Criteria: c.eval.EvaluateField(field, c.values[field]),
	}
	if field.IsPassword() {
		match := c.eval.EvaluatePasswordsMatch(c.values[Password], c.values[ConfirmPassword])
		s.PasswordsMatch = &match
	}
	return s
}

// OnSubmit evaluates the submit gate over the stored values. It has no side
// effects and may be called repeatedly.
func (c *Coordinator) OnSubmit() SubmitDecision {
	return c.eval.EvaluateSubmit(c.values)
}

// Snapshot recomputes the criteria of every field.
func (c *Coordinator) Snapshot() Snapshot {
	s := Snapshot{
		Fields:         make(map[Field][]CriterionResult, len(c.values)),
		PasswordsMatch: c.eval.EvaluatePasswordsMatch(c.values[Password], c.values[ConfirmPassword]),
	}
	for _, f := range Fields() {
		s.Fields[f] = c.eval.EvaluateField(f, c.values[f])
	}
	return s
}

// Values returns a copy of the stored raw values.
func (c *Coordinator) Values() Values {
	return maps.Clone(c.values)
}
