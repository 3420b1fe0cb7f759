package validator

import "fmt"

// PasswordPolicy describes the all-or-nothing strength check applied on submit.
type PasswordPolicy struct {
	MinLength int
	MaxLength int
}

// DefaultPasswordPolicy returns the registration form policy: 8-16 characters.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength: 8,
		MaxLength: 16,
	}
}

func HasUpperAndLower(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return ContainsUpper(value) && ContainsLower(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must contain at least 1 uppercase and 1 lowercase letter",
			TranslationKey: "validation.upper_and_lower",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// HasDigitAndSymbol validates that value holds a digit and a non-word character.
// Underscore is a word character here and does not count as a symbol.
func HasDigitAndSymbol(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return ContainsDigit(value) && ContainsNonWord(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must contain 1 digit and 1 symbol",
			TranslationKey: "validation.digit_and_symbol",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// StrongPassword requires lowercase, uppercase, digit and symbol together with
// a length inside the policy bounds. Underscore counts as a symbol.
func StrongPassword(field, value string, policy PasswordPolicy) Rule {
	return Rule{
		Check: func() bool {
			n := RuneLength(value)
			if n < policy.MinLength || n > policy.MaxLength {
				return false
			}
			return ContainsLower(value) &&
				ContainsUpper(value) &&
				ContainsDigit(value) &&
				ContainsSymbol(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("password must be %d-%d characters with upper, lower, digit and symbol", policy.MinLength, policy.MaxLength),
			TranslationKey: "validation.password_strength",
			TranslationValues: map[string]any{
				"field":      field,
				"min_length": policy.MinLength,
				"max_length": policy.MaxLength,
			},
		},
	}
}
