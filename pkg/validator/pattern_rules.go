package validator

import "regexp"

// Character classes are ASCII-only. A word character is [A-Za-z0-9_];
// everything else, including any non-ASCII rune, is non-word.
var (
	asciiLetterRegex = regexp.MustCompile(`[A-Za-z]`)
	digitRegex       = regexp.MustCompile(`[0-9]`)
	uppercaseRegex   = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex   = regexp.MustCompile(`[a-z]`)
	nonWordRegex     = regexp.MustCompile(`\W`)
	symbolRegex      = regexp.MustCompile(`[\W_]`)
	whitespaceRegex  = regexp.MustCompile(`\s`)
)

func ContainsASCIILetter(value string) bool { return asciiLetterRegex.MatchString(value) }
func ContainsDigit(value string) bool       { return digitRegex.MatchString(value) }
func ContainsUpper(value string) bool       { return uppercaseRegex.MatchString(value) }
func ContainsLower(value string) bool       { return lowercaseRegex.MatchString(value) }

// ContainsNonWord reports whether value has a character outside [A-Za-z0-9_].
func ContainsNonWord(value string) bool { return nonWordRegex.MatchString(value) }

// ContainsSymbol is ContainsNonWord with underscore also counted as a symbol.
func ContainsSymbol(value string) bool { return symbolRegex.MatchString(value) }

func ContainsWhitespace(value string) bool { return whitespaceRegex.MatchString(value) }

// HasLetterAndDigit validates that value holds at least one ASCII letter and one digit.
func HasLetterAndDigit(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return ContainsDigit(value) && ContainsASCIILetter(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must contain at least 1 letter and 1 number",
			TranslationKey: "validation.letter_and_digit",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// WordCharsOnly validates that value has no character outside [A-Za-z0-9_].
// An empty value passes.
func WordCharsOnly(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return !ContainsNonWord(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must not contain special characters",
			TranslationKey: "validation.word_chars_only",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// NoForbiddenNameChars rejects non-word characters, whitespace and digits.
// An empty value passes.
func NoForbiddenNameChars(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return !ContainsNonWord(value) && !ContainsWhitespace(value) && !ContainsDigit(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "can not contain numbers, spaces, or special characters",
			TranslationKey: "validation.name_chars",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
