package web

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/signupguard/pkg/signup"
)

// formSignals mirrors the client-side signal store of both pages.
type formSignals struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	FirstNameDraft  string `json:"firstNameDraft"`
	LastNameDraft   string `json:"lastNameDraft"`
}

func (s formSignals) values() signup.Values {
	return signup.Values{
		signup.Username:        s.Username,
		signup.Password:        s.Password,
		signup.ConfirmPassword: s.ConfirmPassword,
		signup.FirstName:       s.FirstName,
		signup.LastName:        s.LastName,
	}
}

func (s formSignals) draft(f signup.Field) string {
	switch f {
	case signup.FirstName:
		return s.FirstNameDraft
	case signup.LastName:
		return s.LastNameDraft
	}
	return ""
}

func (s *formSignals) set(f signup.Field, v string) {
	switch f {
	case signup.Username:
		s.Username = v
	case signup.Password:
		s.Password = v
	case signup.ConfirmPassword:
		s.ConfirmPassword = v
	case signup.FirstName:
		s.FirstName = v
	case signup.LastName:
		s.LastName = v
	}
}

// readSignals decodes Datastar signals, or form values for plain requests.
// Unknown form keys are ignored. A canonical key wins over its snake_case
// alias when both are posted.
func readSignals(r *http.Request) (formSignals, error) {
	var s formSignals
	if IsDataStar(r) {
		if err := datastar.ReadSignals(r, &s); err != nil {
			return s, fmt.Errorf("%w: %w", ErrBadSignals, err)
		}
		return s, nil
	}

	if err := r.ParseForm(); err != nil {
		return s, fmt.Errorf("%w: %w", ErrBadSignals, err)
	}
	for key := range r.Form {
		f, err := signup.ParseField(key)
		if err != nil || key == f.String() {
			continue
		}
		s.set(f, r.Form.Get(key))
	}
	for _, f := range signup.Fields() {
		if r.Form.Has(f.String()) {
			s.set(f, r.Form.Get(f.String()))
		}
	}
	s.FirstNameDraft = r.Form.Get("firstNameDraft")
	s.LastNameDraft = r.Form.Get("lastNameDraft")
	return s, nil
}

// signalsJSON seeds the client signal store. Password fields always start empty.
func signalsJSON(values signup.Values) string {
	s := formSignals{
		Username:  values[signup.Username],
		FirstName: values[signup.FirstName],
		LastName:  values[signup.LastName],
	}
	b, err := json.Marshal(s)
	if err != nil {
		return "{}"
	}
	return string(b)
}
