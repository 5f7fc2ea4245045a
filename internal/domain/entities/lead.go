package entities

import "time"

// Lead is a deduplicated customer identity keyed by (email, cpf).
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email
//
// At most one Lead per (email, cpf) pair is intended; the find-or-create
// protocol accepts a narrow race window where two rows with the same pair can
// appear, and consumers treat any matching row as valid.

type Lead struct {
	ID        string    `json:"id"`
	CPF       string    `json:"cpf"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Matches reports whether the lead carries the given normalized pair.
func (l Lead) Matches(email, cpf string) bool {
	return l.Email == email && l.CPF == cpf
}
