package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signupguard/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Parallel()

	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "username", Message: "must be 8-16 characters"})
		assert.Equal(t, "validation failed: username: must be 8-16 characters", errs.Error())
	})

	t.Run("joins multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "username", Message: "too short"})
		errs.Add(validator.ValidationError{Field: "password", Message: "too weak"})
		assert.Equal(t, "validation failed: username: too short; password: too weak", errs.Error())
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	t.Parallel()

	errs := validator.ValidationErrors{
		{Field: "password", Message: "a"},
		{Field: "username", Message: "b"},
		{Field: "password", Message: "c"},
	}

	assert.True(t, errs.Has("password"))
	assert.False(t, errs.Has("firstName"))
	assert.Equal(t, []string{"a", "c"}, errs.Get("password"))
	assert.Nil(t, errs.Get("lastName"))
	assert.Equal(t, []string{"password", "username"}, errs.Fields())
	assert.False(t, errs.IsEmpty())
	assert.True(t, validator.ValidationErrors{}.IsEmpty())
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	t.Run("keeps declaration order and passing rules", func(t *testing.T) {
		results := validator.Evaluate(
			validator.LengthBetween("username", "abc", 8, 16),
			validator.HasLetterAndDigit("username", "abc1"),
			validator.WordCharsOnly("username", "abc-1"),
		)

		require.Len(t, results, 3)
		assert.Equal(t, "validation.length_between", results[0].Rule.TranslationKey)
		assert.False(t, results[0].Passed)
		assert.Equal(t, "validation.letter_and_digit", results[1].Rule.TranslationKey)
		assert.True(t, results[1].Passed)
		assert.Equal(t, "validation.word_chars_only", results[2].Rule.TranslationKey)
		assert.False(t, results[2].Passed)
	})

	t.Run("no rules yields empty result", func(t *testing.T) {
		assert.Empty(t, validator.Evaluate())
	})
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("nil when every rule passes", func(t *testing.T) {
		err := validator.Apply(
			validator.LengthBetween("username", "gamer4242", 8, 16),
			validator.WordCharsOnly("username", "gamer4242"),
		)
		assert.NoError(t, err)
	})

	t.Run("collects only failures", func(t *testing.T) {
		err := validator.Apply(
			validator.LengthBetween("username", "gamer42", 8, 16),
			validator.HasLetterAndDigit("username", "gamer42"),
			validator.NoForbiddenNameChars("firstName", "Jo3"),
		)
		require.Error(t, err)

		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		require.Len(t, verrs, 2)
		assert.Equal(t, []string{"username", "firstName"}, verrs.Fields())
	})
}
