package signup

import "fmt"

// Field names a form input.
type Field string

const (
	Username        Field = "username"
	Password        Field = "password"
	ConfirmPassword Field = "confirmPassword"
	FirstName       Field = "firstName"
	LastName        Field = "lastName"
)

// Criterion names a single boolean rule shown to the user.
type Criterion string

const (
	LengthInRange     Criterion = "lengthInRange"
	HasLetterAndDigit Criterion = "hasLetterAndDigit"
	NoSpecialChars    Criterion = "noSpecialChars"
	HasUpperAndLower  Criterion = "hasUpperAndLower"
	HasDigitAndSymbol Criterion = "hasDigitAndSymbol"
	NoForbiddenChars  Criterion = "noForbiddenChars"
	WithinMaxLength   Criterion = "withinMaxLength"
	PasswordsMatch    Criterion = "passwordsMatch"
	PasswordStrength  Criterion = "passwordStrength"
)

// PasswordsMismatch is the guidance key of the submit message shown when the
// passwordsMatch check fails. The passwordsMatch entry describes the goal.
const PasswordsMismatch Criterion = "passwordsMismatch"

const passwordsMismatchFallback = "Passwords do not match"

const (
	usernameMinLength  = 8
	usernameMaxLength  = 16
	passwordMinLength  = 8
	passwordMaxLength  = 16
	firstNameMaxLength = 25
	lastNameMaxLength  = 50
)

// Fields returns every form field in submit precedence order.
func Fields() []Field {
	return []Field{Username, Password, ConfirmPassword, FirstName, LastName}
}

var fieldAliases = map[string]Field{
	"username":         Username,
	"password":         Password,
	"confirmPassword":  ConfirmPassword,
	"confirm_password": ConfirmPassword,
	"firstName":        FirstName,
	"first_name":       FirstName,
	"lastName":         LastName,
	"last_name":        LastName,
}

// ParseField resolves a field name, accepting the snake_case form names too.
func ParseField(name string) (Field, error) {
	if f, ok := fieldAliases[name]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// Valid reports whether f is one of the form fields.
func (f Field) Valid() bool {
	switch f {
	case Username, Password, ConfirmPassword, FirstName, LastName:
		return true
	}
	return false
}

func (f Field) String() string { return string(f) }

// IsPassword reports whether a change to f affects the passwordsMatch flag.
func (f Field) IsPassword() bool {
	return f == Password || f == ConfirmPassword
}
