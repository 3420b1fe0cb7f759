package web

import (
	"fmt"
	"net/http"
	"slices"

	"github.com/dmitrymomot/signupguard/pkg/logger"
	"github.com/dmitrymomot/signupguard/pkg/signup"
)

// profileFields are the fields with a display/edit toggle on the profile page.
var profileFields = []signup.Field{signup.FirstName, signup.LastName}

func profileFieldParam(r *http.Request) (signup.Field, error) {
	field, err := fieldParam(r)
	if err != nil {
		return "", err
	}
	if !slices.Contains(profileFields, field) {
		return "", fmt.Errorf("%w: %s", ErrNotEditable, field)
	}
	return field, nil
}

func draftSignal(f signup.Field) string { return f.String() + "Draft" }

// ProfilePage renders the profile with the names passed as query parameters.
func (h *Handler) ProfilePage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	view := profileView{
		values: signup.Values{
			signup.FirstName: q.Get(signup.FirstName.String()),
			signup.LastName:  q.Get(signup.LastName.String()),
		},
		scriptURL: h.scriptURL,
	}
	if err := page(w, r, http.StatusOK, ProfilePage(view)); err != nil {
		h.renderFailed(r, err)
	}
}

// ProfileEdit swaps a field to its edit view and seeds the draft with the
// displayed value.
func (h *Handler) ProfileEdit(w http.ResponseWriter, r *http.Request) {
	field, signals, ok := h.profileRequest(w, r)
	if !ok {
		return
	}
	current := signals.values()[field]
	results := h.eval.EvaluateField(field, current)
	err := patchWithSignals(w, r,
		map[string]string{draftSignal(field): current},
		ProfileField(field, current, EditMode, results),
	)
	if err != nil {
		h.renderFailed(r, err)
	}
}

// ProfileCancel discards the draft and swaps back to the display view.
func (h *Handler) ProfileCancel(w http.ResponseWriter, r *http.Request) {
	field, signals, ok := h.profileRequest(w, r)
	if !ok {
		return
	}
	err := patchWithSignals(w, r,
		map[string]string{draftSignal(field): ""},
		ProfileField(field, signals.values()[field], DisplayMode, nil),
	)
	if err != nil {
		h.renderFailed(r, err)
	}
}

// ProfileField re-evaluates the draft of a field while it is edited.
func (h *Handler) ProfileField(w http.ResponseWriter, r *http.Request) {
	field, signals, ok := h.profileRequest(w, r)
	if !ok {
		return
	}
	results := h.eval.EvaluateField(field, signals.draft(field))
	if err := patch(w, r, GuideList(profileGuideID(field), results)); err != nil {
		h.renderFailed(r, err)
	}
}

// ProfileSave applies a draft that satisfies every criterion and returns to
// the display view. An unsatisfied draft keeps the edit view open.
func (h *Handler) ProfileSave(w http.ResponseWriter, r *http.Request) {
	field, signals, ok := h.profileRequest(w, r)
	if !ok {
		return
	}
	draft := signals.draft(field)
	results := h.eval.EvaluateField(field, draft)
	passed, total := criteriaCount(results)
	h.log.DebugContext(r.Context(), "profile draft evaluated",
		logger.Field(field.String()),
		logger.Criteria(passed, total),
	)

	var err error
	if passed == total {
		err = patchWithSignals(w, r,
			map[string]string{field.String(): draft, draftSignal(field): ""},
			ProfileField(field, draft, DisplayMode, nil),
		)
	} else {
		err = patch(w, r, ProfileField(field, draft, EditMode, results))
	}
	if err != nil {
		h.renderFailed(r, err)
	}
}

func (h *Handler) profileRequest(w http.ResponseWriter, r *http.Request) (signup.Field, formSignals, bool) {
	field, err := profileFieldParam(r)
	if err != nil {
		h.fail(w, r, err)
		return "", formSignals{}, false
	}
	signals, err := readSignals(r)
	if err != nil {
		h.fail(w, r, err)
		return "", formSignals{}, false
	}
	return field, signals, true
}
