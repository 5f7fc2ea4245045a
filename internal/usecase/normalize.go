package usecase

import (
	"errors"
	"strings"

	"varejo_xpto/pkg"
)

var (
	ErrInvalidCPF   = errors.New("cpf must contain 11 digits")
	ErrInvalidEmail = errors.New("invalid email")
)

// NormalizeCPF strips every non-digit and requires exactly 11 digits.
func NormalizeCPF(cpf string) (string, error) {
	digits := pkg.DigitsOnly(cpf)
	if len(digits) != 11 {
		return "", ErrInvalidCPF
	}
	return digits, nil
}

// NormalizeEmail lowercases and trims; the minimal shape check is a single
// "@" with content on both sides.
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 || strings.Count(email, "@") != 1 {
		return "", ErrInvalidEmail
	}
	return email, nil
}
