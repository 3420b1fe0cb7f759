package signup

import "github.com/dmitrymomot/signupguard/pkg/validator"

type criterionRule struct {
	criterion Criterion
	rule      func(field, value string) validator.Rule
}

func lengthBetween(min, max int) func(field, value string) validator.Rule {
	return func(field, value string) validator.Rule {
		return validator.LengthBetween(field, value, min, max)
	}
}

func maxLength(max int) func(field, value string) validator.Rule {
	return func(field, value string) validator.Rule {
		return validator.MaxLength(field, value, max)
	}
}

// fieldCriteria holds the live-feedback rules per field in display order.
var fieldCriteria = map[Field][]criterionRule{
	Username: {
		{LengthInRange, lengthBetween(usernameMinLength, usernameMaxLength)},
		{HasLetterAndDigit, validator.HasLetterAndDigit},
		{NoSpecialChars, validator.WordCharsOnly},
	},
	Password: {
		{LengthInRange, lengthBetween(passwordMinLength, passwordMaxLength)},
		{HasUpperAndLower, validator.HasUpperAndLower},
		{HasDigitAndSymbol, validator.HasDigitAndSymbol},
	},
	ConfirmPassword: nil,
	FirstName: {
		{NoForbiddenChars, validator.NoForbiddenNameChars},
		{WithinMaxLength, maxLength(firstNameMaxLength)},
	},
	LastName: {
		{NoForbiddenChars, validator.NoForbiddenNameChars},
		{WithinMaxLength, maxLength(lastNameMaxLength)},
	},
}

// Criteria returns the live-feedback criteria of field in display order.
func Criteria(field Field) []Criterion {
	rules := fieldCriteria[field]
	out := make([]Criterion, 0, len(rules))
	for _, r := range rules {
		out = append(out, r.criterion)
	}
	return out
}

// hasCriterion reports whether c may carry guidance text for field,
// including the cross-field and submit-only checks.
func hasCriterion(field Field, c Criterion) bool {
	switch {
	case field == Password && c == PasswordStrength:
		return true
	case field == ConfirmPassword && (c == PasswordsMatch || c == PasswordsMismatch):
		return true
	}
	for _, r := range fieldCriteria[field] {
		if r.criterion == c {
			return true
		}
	}
	return false
}

func passwordPolicy() validator.PasswordPolicy {
	policy := validator.DefaultPasswordPolicy()
	policy.MinLength = passwordMinLength
	policy.MaxLength = passwordMaxLength
	return policy
}
