package web

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/signupguard/pkg/signup"
)

// Glyphs rendered next to each criterion: satisfied shows the check-mark,
// unsatisfied the cross.
const (
	glyphValid   = "&#10004;"
	glyphInvalid = "&#10008;"
)

func glyph(ok bool) (class, mark string) {
	if ok {
		return "valid", glyphValid
	}
	return "invalid", glyphInvalid
}

func esc(s string) string { return templ.EscapeString(s) }

func guideID(f signup.Field) string        { return "guide-" + f.String() }
func profileID(f signup.Field) string      { return "profile-" + f.String() }
func profileGuideID(f signup.Field) string { return "profile-guide-" + f.String() }

const (
	matchID       = "password-match"
	formMessageID = "form-message"
)

// GuideList renders the criteria of one field top to bottom.
func GuideList(id string, results []signup.CriterionResult) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, `<ul id="%s" class="guide">`, esc(id))
		for _, r := range results {
			class, mark := glyph(r.Satisfied)
			fmt.Fprintf(&b, `<li data-criterion="%s" class="%s"><span class="%s">%s</span> %s</li>`,
				esc(string(r.Criterion)), class, class, mark, esc(r.Guidance))
		}
		b.WriteString(`</ul>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// MatchIndicator renders the password confirmation state.
func MatchIndicator(match bool) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		class, mark := glyph(match)
		msg := "Passwords do not match"
		if match {
			msg = "Passwords match"
		}
		_, err := fmt.Fprintf(w, `<div id="%s" class="%s"><span class="%s">%s</span> %s</div>`,
			matchID, class, class, mark, msg)
		return err
	})
}

// FormMessage renders the outcome of a submit attempt. An empty decision
// renders an empty placeholder.
func FormMessage(d *signup.SubmitDecision) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if d == nil {
			_, err := fmt.Fprintf(w, `<div id="%s"></div>`, formMessageID)
			return err
		}
		if d.Allowed {
			_, err := fmt.Fprintf(w, `<div id="%s" class="valid">Registration details accepted</div>`, formMessageID)
			return err
		}
		msg := "Please fix the highlighted fields"
		if v, ok := d.FirstViolation(); ok {
			msg = fmt.Sprintf("%s: %s", fieldLabels[d.FirstFailureField], v.Message)
		}
		_, err := fmt.Fprintf(w, `<div id="%s" class="invalid" data-field="%s">%s</div>`,
			formMessageID, esc(d.FirstFailureField.String()), esc(msg))
		return err
	})
}

var fieldLabels = map[signup.Field]string{
	signup.Username:        "Username",
	signup.Password:        "Password",
	signup.ConfirmPassword: "Confirm Password",
	signup.FirstName:       "First Name",
	signup.LastName:        "Last Name",
}

var inputTypes = map[signup.Field]string{
	signup.Password:        "password",
	signup.ConfirmPassword: "password",
}

type registerView struct {
	values    signup.Values
	snapshot  signup.Snapshot
	decision  *signup.SubmitDecision
	scriptURL string
}

// RegisterPage renders the full registration form with its live guides.
func RegisterPage(v registerView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<!doctype html><html><head><meta charset="utf-8"><title>Register</title>`)
		if v.scriptURL != "" {
			fmt.Fprintf(&b, `<script type="module" src="%s"></script>`, esc(v.scriptURL))
		}
		b.WriteString(`</head><body>`)
		fmt.Fprintf(&b, `<form id="register" method="post" action="/register" data-signals='%s' data-on:submit__prevent="@post('/register')">`,
			esc(signalsJSON(v.values)))
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}

		for _, f := range signup.Fields() {
			typ := inputTypes[f]
			if typ == "" {
				typ = "text"
			}
			_, err := fmt.Fprintf(w,
				`<label for="%[1]s">%[2]s:</label><input id="%[1]s" name="%[1]s" type="%[3]s" value="%[4]s" data-bind="%[1]s" data-on:input__debounce.150ms="@post('/register/fields/%[1]s')">`,
				esc(f.String()), esc(fieldLabels[f]), esc(typ), esc(inputValue(f, v.values[f])))
			if err != nil {
				return err
			}
			if f == signup.ConfirmPassword {
				if err := MatchIndicator(v.snapshot.PasswordsMatch).Render(ctx, w); err != nil {
					return err
				}
				continue
			}
			if err := GuideList(guideID(f), v.snapshot.Fields[f]).Render(ctx, w); err != nil {
				return err
			}
		}

		if err := FormMessage(v.decision).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `<button type="submit">Sign Up</button></form></body></html>`)
		return err
	})
}

// Passwords are never echoed back into the markup.
func inputValue(f signup.Field, v string) string {
	if f.IsPassword() {
		return ""
	}
	return v
}

// ViewMode is the per-field profile state. Exactly one view is rendered.
type ViewMode int

const (
	DisplayMode ViewMode = iota
	EditMode
)

// ProfileField renders either the display view or the edit view of a name
// field, never both. Every interpolated value is escaped.
func ProfileField(f signup.Field, value string, mode ViewMode, results []signup.CriterionResult) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var err error
		switch mode {
		case EditMode:
			_, err = fmt.Fprintf(w,
				`<div id="%[1]s" data-mode="edit"><span class="label">%[2]s:</span><span class="edit"><input name="%[3]sDraft" value="%[4]s" data-bind="%[3]sDraft" data-on:input__debounce.150ms="@post('/profile/fields/%[3]s')">`+
					`<button class="saveButton" data-on:click="@post('/profile/fields/%[3]s/save')">Save</button>`+
					`<button class="cancelButton" data-on:click="@post('/profile/fields/%[3]s/cancel')">Cancel</button></span>`,
				esc(profileID(f)), esc(fieldLabels[f]), esc(f.String()), esc(value))
			if err != nil {
				return err
			}
			if err = GuideList(profileGuideID(f), results).Render(ctx, w); err != nil {
				return err
			}
			_, err = io.WriteString(w, `</div>`)
		default:
			_, err = fmt.Fprintf(w,
				`<div id="%[1]s" data-mode="display"><span class="label">%[2]s:</span><span class="display">%[4]s</span>`+
					`<button class="editButton" data-on:click="@post('/profile/fields/%[3]s/edit')">Edit</button></div>`,
				esc(profileID(f)), esc(fieldLabels[f]), esc(f.String()), esc(value))
		}
		return err
	})
}

type profileView struct {
	values    signup.Values
	scriptURL string
}

// ProfilePage renders the profile with every name field in display mode.
func ProfilePage(v profileView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<!doctype html><html><head><meta charset="utf-8"><title>Profile</title>`)
		if v.scriptURL != "" {
			fmt.Fprintf(&b, `<script type="module" src="%s"></script>`, esc(v.scriptURL))
		}
		fmt.Fprintf(&b, `</head><body><section id="profile" data-signals='%s'>`, esc(signalsJSON(v.values)))
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		for _, f := range profileFields {
			if err := ProfileField(f, v.values[f], DisplayMode, nil).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</section></body></html>`)
		return err
	})
}
