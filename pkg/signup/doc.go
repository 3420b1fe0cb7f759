// Package signup evaluates the registration and profile form fields and
// derives the state a form renders: per-criterion results for live feedback,
// the cross-field password match flag and the submit gate.
//
// Everything is recomputed from the raw field values on every call. The
// Evaluator is stateless; the Coordinator only remembers the latest raw value
// of each field so a collaborator can feed it change events one at a time.
//
// # Fields and criteria
//
// Criteria are listed in display order:
//
//	username         lengthInRange(8-16) hasLetterAndDigit noSpecialChars
//	password         lengthInRange(8-16) hasUpperAndLower hasDigitAndSymbol
//	confirmPassword  (cross-field passwordsMatch only)
//	firstName        noForbiddenChars withinMaxLength(25)
//	lastName         noForbiddenChars withinMaxLength(50)
//
// On submit the password must also pass the aggregate passwordStrength check
// and match confirmPassword. The first failing field is reported in the order
// username, password, confirmPassword, firstName, lastName.
//
// # Usage
//
//	c := signup.NewCoordinator()
//	state, err := c.OnFieldChanged(signup.Username, "gamer42")
//	// render state.Criteria
//
//	decision := c.OnSubmit()
//	if !decision.Allowed {
//	    // veto the submission and show decision.Violations[0].Message
//	}
//
// Guidance text shown next to each criterion comes from an embedded YAML
// catalogue and can be overridden with LoadGuidance.
package signup
