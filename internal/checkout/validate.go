package checkout

import (
	"regexp"
	"strings"
)

// CardInput and PSEInput carry the raw payment form fields as the user
// typed them. They only live for the duration of one checkout attempt.

type CardInput struct {
	Identification string `json:"identification"`
	Number         string `json:"cardNumber"`
	Expiry         string `json:"expiry"`
	CVV            string `json:"cvv"`
	HolderName     string `json:"holderName"`
}

type PSEInput struct {
	Identification string `json:"identification"`
	BankID         string `json:"bankId"`
	Email          string `json:"email"`
}

// ValidationError blocks a submission before any network call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	whitespaceRe = regexp.MustCompile(`\s`)
	cardNumberRe = regexp.MustCompile(`^\d{16}$`)
	expiryRe     = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvRe        = regexp.MustCompile(`^\d{3,4}$`)
	emailRe      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// StripCardNumber removes the spacing users type between digit groups.
func StripCardNumber(number string) string {
	return whitespaceRe.ReplaceAllString(number, "")
}

// ValidEmail reports whether s looks like local@domain.tld. The profile
// form applies the same check as the PSE form.
func ValidEmail(s string) bool {
	return emailRe.MatchString(strings.TrimSpace(s))
}

// ValidateCard checks the card form fields in form order, required
// fields first, then formats, and reports the first failure.
func ValidateCard(input *CardInput) error {
	if strings.TrimSpace(input.Identification) == "" {
		return &ValidationError{Message: "identification is required"}
	}
	if strings.TrimSpace(input.Number) == "" {
		return &ValidationError{Message: "card number is required"}
	}
	if strings.TrimSpace(input.Expiry) == "" {
		return &ValidationError{Message: "expiry date is required"}
	}
	if strings.TrimSpace(input.CVV) == "" {
		return &ValidationError{Message: "security code is required"}
	}
	if strings.TrimSpace(input.HolderName) == "" {
		return &ValidationError{Message: "card holder name is required"}
	}

	if !cardNumberRe.MatchString(StripCardNumber(input.Number)) {
		return &ValidationError{Message: "card number must have 16 digits"}
	}
	if !expiryRe.MatchString(input.Expiry) {
		return &ValidationError{Message: "expiry date must use the MM/YY format"}
	}
	if !cvvRe.MatchString(input.CVV) {
		return &ValidationError{Message: "security code must have 3 or 4 digits"}
	}

	return nil
}

// ValidatePSE checks the bank-redirect form fields and reports the
// first failure.
func ValidatePSE(input *PSEInput) error {
	if strings.TrimSpace(input.Identification) == "" {
		return &ValidationError{Message: "identification is required"}
	}
	if input.BankID == "" {
		return &ValidationError{Message: "a bank must be selected"}
	}
	if input.Email == "" {
		return &ValidationError{Message: "email is required"}
	}
	if !ValidEmail(input.Email) {
		return &ValidationError{Message: "email is not valid"}
	}

	return nil
}
