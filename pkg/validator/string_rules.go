package validator

import (
	"fmt"
	"unicode/utf8"
)

// RuneLength counts characters, not bytes, so "é" has length 1.
func RuneLength(value string) int {
	return utf8.RuneCountInString(value)
}

// LengthBetween validates that the character count lies in [min, max], inclusive.
func LengthBetween(field, value string, min, max int) Rule {
	return Rule{
		Check: func() bool {
			n := RuneLength(value)
			return n >= min && n <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be %d-%d characters", min, max),
			TranslationKey: "validation.length_between",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
				"max":   max,
			},
		},
	}
}

func MaxLength(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return RuneLength(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %d characters long", max),
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}
