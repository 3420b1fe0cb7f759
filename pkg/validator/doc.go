// Package validator provides the character-class and length rules used to
// classify form input.
//
// Every exported rule constructor returns a Rule: a Check closure over the
// captured value together with translation-friendly error metadata. Rules are
// pure and total over strings. Evaluate reports every outcome in declaration
// order, which is what live field feedback renders; Apply keeps only the
// failures and returns them as ValidationErrors.
//
// Character classes are ASCII-only. A word character is [A-Za-z0-9_]; any
// other rune, including non-ASCII letters, is non-word. Lengths are counted in
// runes, so an astral-plane character such as an emoji counts once where a
// UTF-16 count would see two units.
//
// # Usage
//
//	results := validator.Evaluate(
//	    validator.LengthBetween("username", v, 8, 16),
//	    validator.HasLetterAndDigit("username", v),
//	    validator.WordCharsOnly("username", v),
//	)
//	for _, r := range results {
//	    // render r.Rule.Message with a check-mark or a cross
//	}
//
//	err := validator.Apply(validator.StrongPassword("password", p, validator.DefaultPasswordPolicy()))
//	var verrs validator.ValidationErrors
//	if errors.As(err, &verrs) {
//	    // surface verrs.Get("password")
//	}
//
// An empty string fails every length and presence rule but passes
// WordCharsOnly and NoForbiddenNameChars.
package validator
