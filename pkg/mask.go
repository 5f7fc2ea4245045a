package pkg

import "strings"

// Masking helpers for sensitive payment fields. Persisted transactions and
// error logs must never carry a full PAN, a raw CVV or an unmasked CPF.

const maskedCVV = "***"

// MaskCardNumber keeps only the last four digits: "****-****-****-1111".
func MaskCardNumber(cardNumber string) string {
	digits := DigitsOnly(cardNumber)
	if len(digits) < 4 {
		return "****"
	}
	return "****-****-****-" + digits[len(digits)-4:]
}

// MaskCVV replaces the verification code with a fixed sentinel.
func MaskCVV(string) string { return maskedCVV }

// MaskCPF keeps the two check digits: "***.***.***-09".
func MaskCPF(cpf string) string {
	digits := DigitsOnly(cpf)
	if len(digits) < 2 {
		return "***.***.***-**"
	}
	return "***.***.***-" + digits[len(digits)-2:]
}

// MaskEmail keeps the first character of the local part and the domain.
func MaskEmail(email string) string {
	at := strings.IndexByte(email, '@')
	if at <= 0 {
		return "***"
	}
	return email[:1] + "***" + email[at:]
}

// DigitsOnly strips every non-digit rune.
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
