package web

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/signupguard/pkg/logger"
	"github.com/dmitrymomot/signupguard/pkg/signup"
)

func (h *Handler) registerView(values signup.Values, d *signup.SubmitDecision) registerView {
	c := signup.NewCoordinator(signup.WithEvaluator(h.eval), signup.WithValues(values))
	return registerView{
		values:    values,
		snapshot:  c.Snapshot(),
		decision:  d,
		scriptURL: h.scriptURL,
	}
}

// RegisterPage renders the empty registration form. Every criterion starts
// unsatisfied except those an empty value passes.
func (h *Handler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	if err := page(w, r, http.StatusOK, RegisterPage(h.registerView(nil, nil))); err != nil {
		h.renderFailed(r, err)
	}
}

// RegisterField handles a change event for one field and patches that
// field's guides, plus the match indicator for password fields.
func (h *Handler) RegisterField(w http.ResponseWriter, r *http.Request) {
	field, err := fieldParam(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	signals, err := readSignals(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	values := signals.values()
	c := signup.NewCoordinator(signup.WithEvaluator(h.eval), signup.WithValues(values))
	state, err := c.OnFieldChanged(field, values[field])
	if err != nil {
		h.fail(w, r, err)
		return
	}

	passed, total := criteriaCount(state.Criteria)
	h.log.DebugContext(r.Context(), "field evaluated",
		logger.Field(field.String()),
		logger.Criteria(passed, total),
	)

	var components []templ.Component
	if len(state.Criteria) > 0 {
		components = append(components, GuideList(guideID(field), state.Criteria))
	}
	if state.PasswordsMatch != nil {
		components = append(components, MatchIndicator(*state.PasswordsMatch))
	}
	if err := patch(w, r, components...); err != nil {
		h.renderFailed(r, err)
	}
}

// RegisterSubmit runs the submit gate. A vetoed Datastar submission patches
// every guide and the form message; a vetoed plain submission re-renders the
// page with 422.
func (h *Handler) RegisterSubmit(w http.ResponseWriter, r *http.Request) {
	signals, err := readSignals(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	values := signals.values()
	decision := h.eval.EvaluateSubmit(values)
	h.log.InfoContext(r.Context(), "registration submit evaluated",
		logger.Decision(decision.Allowed, decision.FirstFailureField.String(), len(decision.Violations)),
	)

	if !IsDataStar(r) {
		status := http.StatusOK
		if !decision.Allowed {
			status = http.StatusUnprocessableEntity
		}
		if err := page(w, r, status, RegisterPage(h.registerView(values, &decision))); err != nil {
			h.renderFailed(r, err)
		}
		return
	}

	view := h.registerView(values, &decision)
	components := make([]templ.Component, 0, len(signup.Fields())+1)
	for _, f := range signup.Fields() {
		if f == signup.ConfirmPassword {
			components = append(components, MatchIndicator(view.snapshot.PasswordsMatch))
			continue
		}
		components = append(components, GuideList(guideID(f), view.snapshot.Fields[f]))
	}
	components = append(components, FormMessage(&decision))

	if err := patch(w, r, components...); err != nil {
		h.renderFailed(r, err)
	}
}
