package signup_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signupguard/pkg/signup"
)

func satisfied(results []signup.CriterionResult) map[signup.Criterion]bool {
	out := make(map[signup.Criterion]bool, len(results))
	for _, r := range results {
		out[r.Criterion] = r.Satisfied
	}
	return out
}

func TestEvaluateField_Username(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  map[signup.Criterion]bool
	}{
		{"empty", "", map[signup.Criterion]bool{
			signup.LengthInRange: false, signup.HasLetterAndDigit: false, signup.NoSpecialChars: true,
		}},
		{"too short", "gamer42", map[signup.Criterion]bool{
			signup.LengthInRange: false, signup.HasLetterAndDigit: true, signup.NoSpecialChars: true,
		}},
		{"valid", "user_123", map[signup.Criterion]bool{
			signup.LengthInRange: true, signup.HasLetterAndDigit: true, signup.NoSpecialChars: true,
		}},
		{"hyphen", "user-123", map[signup.Criterion]bool{
			signup.LengthInRange: true, signup.HasLetterAndDigit: true, signup.NoSpecialChars: false,
		}},
		{"letters only", "abcdefghij", map[signup.Criterion]bool{
			signup.LengthInRange: true, signup.HasLetterAndDigit: false, signup.NoSpecialChars: true,
		}},
		{"seventeen", strings.Repeat("a1", 8) + "b", map[signup.Criterion]bool{
			signup.LengthInRange: false, signup.HasLetterAndDigit: true, signup.NoSpecialChars: true,
		}},
		{"non-ascii letters", "ÄÖÜäöü12", map[signup.Criterion]bool{
			signup.LengthInRange: true, signup.HasLetterAndDigit: false, signup.NoSpecialChars: false,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			results := signup.EvaluateField(signup.Username, tt.value)
			require.Len(t, results, 3)
			assert.Equal(t, tt.want, satisfied(results))
		})
	}
}

func TestEvaluateField_Password(t *testing.T) {
	t.Parallel()

	results := signup.EvaluateField(signup.Password, "Abcdef1!")
	require.Len(t, results, 3)
	assert.Equal(t, signup.LengthInRange, results[0].Criterion)
	assert.Equal(t, signup.HasUpperAndLower, results[1].Criterion)
	assert.Equal(t, signup.HasDigitAndSymbol, results[2].Criterion)
	for _, r := range results {
		assert.True(t, r.Satisfied, r.Criterion)
	}

	assert.Equal(t, map[signup.Criterion]bool{
		signup.LengthInRange: true, signup.HasUpperAndLower: false, signup.HasDigitAndSymbol: false,
	}, satisfied(signup.EvaluateField(signup.Password, "abcdefg1")))

	assert.Equal(t, map[signup.Criterion]bool{
		signup.LengthInRange: false, signup.HasUpperAndLower: false, signup.HasDigitAndSymbol: false,
	}, satisfied(signup.EvaluateField(signup.Password, "")))
}

func TestEvaluateField_Names(t *testing.T) {
	t.Parallel()

	assert.Equal(t, map[signup.Criterion]bool{
		signup.NoForbiddenChars: false, signup.WithinMaxLength: true,
	}, satisfied(signup.EvaluateField(signup.FirstName, "O'Brien")))

	assert.Equal(t, map[signup.Criterion]bool{
		signup.NoForbiddenChars: true, signup.WithinMaxLength: true,
	}, satisfied(signup.EvaluateField(signup.FirstName, "Anna")))

	assert.Equal(t, map[signup.Criterion]bool{
		signup.NoForbiddenChars: true, signup.WithinMaxLength: true,
	}, satisfied(signup.EvaluateField(signup.FirstName, "")))

	assert.True(t, satisfied(signup.EvaluateField(signup.FirstName, strings.Repeat("A", 25)))[signup.WithinMaxLength])
	assert.False(t, satisfied(signup.EvaluateField(signup.FirstName, strings.Repeat("A", 26)))[signup.WithinMaxLength])
	assert.True(t, satisfied(signup.EvaluateField(signup.LastName, strings.Repeat("A", 50)))[signup.WithinMaxLength])
	assert.False(t, satisfied(signup.EvaluateField(signup.LastName, strings.Repeat("A", 51)))[signup.WithinMaxLength])
}

func TestEvaluateField_Guidance(t *testing.T) {
	t.Parallel()

	results := signup.EvaluateField(signup.Username, "")
	require.Len(t, results, 3)
	assert.Equal(t, "8-16 characters", results[0].Guidance)
	assert.Equal(t, "at least 1 letter and 1 number", results[1].Guidance)
	assert.Equal(t, "no special characters", results[2].Guidance)

	custom := signup.NewEvaluator(signup.WithGuidance(signup.Guidance{
		signup.Username: {signup.LengthInRange: "between 8 and 16"},
	}))
	results = custom.EvaluateField(signup.Username, "")
	assert.Equal(t, "between 8 and 16", results[0].Guidance)
	assert.Equal(t, "at least 1 letter and 1 number", results[1].Guidance)
}

func TestEvaluateField_NoCriteria(t *testing.T) {
	t.Parallel()

	assert.Empty(t, signup.EvaluateField(signup.ConfirmPassword, "anything"))
	assert.Empty(t, signup.EvaluateField(signup.Field("email"), "a@b.c"))
}

func TestEvaluatePasswordsMatch(t *testing.T) {
	t.Parallel()

	assert.True(t, signup.EvaluatePasswordsMatch("Secret1!", "Secret1!"))
	assert.False(t, signup.EvaluatePasswordsMatch("Secret1!", "secret1!"))
	assert.False(t, signup.EvaluatePasswordsMatch("Secret1!", " Secret1!"))
	assert.True(t, signup.EvaluatePasswordsMatch("", ""))
}

func TestEvaluateSubmit(t *testing.T) {
	t.Parallel()

	valid := signup.Values{
		signup.Username:        "gamer4242",
		signup.Password:        "Str0ngP@ss",
		signup.ConfirmPassword: "Str0ngP@ss",
		signup.FirstName:       "Jo",
		signup.LastName:        "Smith",
	}

	with := func(field signup.Field, value string) signup.Values {
		out := make(signup.Values, len(valid))
		for k, v := range valid {
			out[k] = v
		}
		out[field] = value
		return out
	}

	t.Run("allowed", func(t *testing.T) {
		t.Parallel()
		d := signup.EvaluateSubmit(valid)
		assert.True(t, d.Allowed)
		assert.Empty(t, d.FirstFailureField)
		assert.Empty(t, d.Violations)
		assert.NoError(t, d.Err())
	})

	t.Run("short username and digit in first name", func(t *testing.T) {
		t.Parallel()
		d := signup.EvaluateSubmit(signup.Values{
			signup.Username:        "gamer42",
			signup.Password:        "Weak1!",
			signup.ConfirmPassword: "Weak1!",
			signup.FirstName:       "Jo3",
			signup.LastName:        "Smith",
		})
		assert.False(t, d.Allowed)
		assert.Equal(t, signup.Username, d.FirstFailureField)
		assert.True(t, d.Violations.Has("username"))
		assert.True(t, d.Violations.Has("firstName"))
		assert.Equal(t, []string{"username", "password", "firstName"}, d.Violations.Fields())
		assert.Error(t, d.Err())

		first, ok := d.FirstViolation()
		require.True(t, ok)
		assert.Equal(t, "8-16 characters", first.Message)
		assert.Equal(t, "lengthInRange", first.TranslationValues["criterion"])
	})

	t.Run("precedence", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			name   string
			values signup.Values
			want   signup.Field
		}{
			{"password weak", with(signup.Password, "abcdefg1"), signup.Password},
			{"mismatch", with(signup.ConfirmPassword, "Str0ngP@sS"), signup.ConfirmPassword},
			{"first name", with(signup.FirstName, "O'Brien"), signup.FirstName},
			{"last name", with(signup.LastName, strings.Repeat("B", 51)), signup.LastName},
		}
		for _, tt := range tests {
			d := signup.EvaluateSubmit(tt.values)
			assert.False(t, d.Allowed, tt.name)
			assert.Equal(t, tt.want, d.FirstFailureField, tt.name)
		}
	})

	t.Run("underscore symbol passes strength but not live symbol rule", func(t *testing.T) {
		t.Parallel()
		values := with(signup.Password, "Abcdefg1_")
		values[signup.ConfirmPassword] = "Abcdefg1_"
		d := signup.EvaluateSubmit(values)
		assert.False(t, d.Allowed)
		require.Len(t, d.Violations, 1)
		assert.Equal(t, "hasDigitAndSymbol", d.Violations[0].TranslationValues["criterion"])
	})

	t.Run("strength checked at seventeen characters", func(t *testing.T) {
		t.Parallel()
		values := with(signup.Password, "Abcdefghijklmn1!x")
		values[signup.ConfirmPassword] = values[signup.Password]
		d := signup.EvaluateSubmit(values)
		assert.False(t, d.Allowed)
		assert.Equal(t, signup.Password, d.FirstFailureField)
		assert.Contains(t, d.Violations.Get("password"), "Password doesn't meet criteria")
	})

	t.Run("missing fields are empty", func(t *testing.T) {
		t.Parallel()
		d := signup.EvaluateSubmit(nil)
		assert.False(t, d.Allowed)
		assert.Equal(t, signup.Username, d.FirstFailureField)
		assert.False(t, d.Violations.Has("confirmPassword"), "empty passwords match")
		assert.False(t, d.Violations.Has("firstName"))
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()
		values := with(signup.Username, "gamer42")
		assert.Equal(t, signup.EvaluateSubmit(values), signup.EvaluateSubmit(values))
		assert.Equal(t, "gamer42", values[signup.Username])
	})

	t.Run("arbitrary unicode never panics", func(t *testing.T) {
		t.Parallel()
		assert.NotPanics(t, func() {
			signup.EvaluateSubmit(signup.Values{
				signup.Username:        "日本語のユーザー名",
				signup.Password:        "\xff\xfe\x00",
				signup.ConfirmPassword: "🙂",
				signup.FirstName:       "​",
				signup.LastName:        "Ωmega",
			})
		})
	})
}

func TestEvaluateSubmitMismatchMessage(t *testing.T) {
	t.Parallel()

	values := signup.Values{
		signup.Username:        "gamer4242",
		signup.Password:        "Str0ngP@ss",
		signup.ConfirmPassword: "Str0ngP@sX",
	}

	d := signup.EvaluateSubmit(values)
	require.False(t, d.Allowed)
	first, ok := d.FirstViolation()
	require.True(t, ok)
	assert.Equal(t, "confirmPassword", first.Field)
	assert.Equal(t, "Passwords do not match", first.Message)
	assert.Equal(t, "signup.confirmPassword.passwordsMatch", first.TranslationKey)

	override, err := signup.LoadGuidance(strings.NewReader("confirmPassword:\n  passwordsMismatch: the two passwords differ\n"))
	require.NoError(t, err)
	d = signup.NewEvaluator(signup.WithGuidance(override)).EvaluateSubmit(values)
	first, _ = d.FirstViolation()
	assert.Equal(t, "the two passwords differ", first.Message)
}
