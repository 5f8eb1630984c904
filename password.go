package bloglist

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
)

// PasswordStrength is the outcome of the registration-time policy check.
type PasswordStrength struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

const (
	// MsgPasswordMissing is returned when no password was supplied at all.
	MsgPasswordMissing = "Password is missing"
	// MsgPasswordTooWeak is the single combined failure message: the policy
	// deliberately does not reveal which individual rule failed.
	MsgPasswordTooWeak = "Password must be at least 3 characters long and contain at least one lowercase letter, one uppercase letter, one digit, and one special character."
	// MsgPasswordStrong confirms all rules passed.
	MsgPasswordStrong = "Password is strong."
)

var (
	lowercasePattern = regexp.MustCompile(`[a-z]`)
	uppercasePattern = regexp.MustCompile(`[A-Z]`)
	digitPattern     = regexp.MustCompile(`[0-9]`)
	symbolPattern    = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>/?]`)
)

// CheckPasswordStrength validates registration passwords. A nil input means
// the field was absent from the payload, which gets its own message; any
// rule violation yields the combined message with Status false.
func CheckPasswordStrength(password *string) PasswordStrength {
	if password == nil {
		return PasswordStrength{Status: false, Message: MsgPasswordMissing}
	}

	// ozzo skips rules on blank values, so Required catches the empty string.
	err := validation.Validate(*password,
		validation.Required.Error(MsgPasswordTooWeak),
		validation.RuneLength(3, 0).Error(MsgPasswordTooWeak),
		validation.Match(lowercasePattern).Error(MsgPasswordTooWeak),
		validation.Match(uppercasePattern).Error(MsgPasswordTooWeak),
		validation.Match(digitPattern).Error(MsgPasswordTooWeak),
		validation.Match(symbolPattern).Error(MsgPasswordTooWeak),
	)
	if err != nil {
		return PasswordStrength{Status: false, Message: MsgPasswordTooWeak}
	}

	return PasswordStrength{Status: true, Message: MsgPasswordStrong}
}
