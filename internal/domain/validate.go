package domain

import "github.com/go-playground/validator/v10"

var credentialsValidate = validator.New()

// credentialShape mirrors Credentials for struct-tag validation. The board
// UI has always allowed very short names, so the only rule is length > 2.
type credentialShape struct {
	Username string `validate:"gt=2"`
	Password string `validate:"gt=2"`
}

const msgTooShort = "length must be greater than 2"

// ValidateCredentials checks credential shape before any I/O happens.
// It is pure and short-circuits: only the first violation is reported,
// username before password.
func ValidateCredentials(c Credentials) []FieldError {
	err := credentialsValidate.Struct(credentialShape{
		Username: c.Username,
		Password: c.Password,
	})
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		// Struct input can't trigger InvalidValidationError; treat it as
		// a username violation rather than letting bad input through.
		return []FieldError{{Field: "username", Message: msgTooShort}}
	}

	// ValidationErrors preserves struct field order, so the first entry
	// is the username violation when both fields are too short.
	switch verrs[0].StructField() {
	case "Password":
		return []FieldError{{Field: "password", Message: msgTooShort}}
	default:
		return []FieldError{{Field: "username", Message: msgTooShort}}
	}
}
