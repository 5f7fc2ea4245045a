package usecase

import (
	"context"
	"log"
	"time"

	"varejo_xpto/internal/domain/entities"
	"varejo_xpto/internal/usecase/interfaces"
	"varejo_xpto/pkg"

	"github.com/google/uuid"
)

// ILeadUseCase resolves a customer into a deduplicated Lead.
//
// The protocol is find-then-create: query the email index, match by
// normalized cpf, insert a fresh row on miss. Two workers racing the same
// (email, cpf) can each insert a row inside a narrow window; any matching
// row is valid, so no distributed lock is taken.

type ILeadUseCase interface {
	FindOrCreate(ctx context.Context, customer entities.Customer) (entities.Lead, error)
}

type LeadUseCase struct {
	repo interfaces.ILeadRepository
}

var _ ILeadUseCase = (*LeadUseCase)(nil)

func NewLeadUseCase(repo interfaces.ILeadRepository) *LeadUseCase {
	return &LeadUseCase{repo: repo}
}

func (u *LeadUseCase) FindOrCreate(ctx context.Context, customer entities.Customer) (entities.Lead, error) {
	email, err := NormalizeEmail(customer.Email)
	if err != nil {
		log.Printf("[lead][usecase] invalid email email=%s", pkg.MaskEmail(customer.Email))
		return entities.Lead{}, err
	}
	cpf, err := NormalizeCPF(customer.CPF)
	if err != nil {
		log.Printf("[lead][usecase] invalid cpf cpf=%s email=%s", pkg.MaskCPF(customer.CPF), pkg.MaskEmail(email))
		return entities.Lead{}, err
	}

	existing, err := u.repo.FindByEmail(ctx, email)
	if err != nil {
		return entities.Lead{}, err
	}
	for _, lead := range existing {
		if lead.Matches(email, cpf) {
			log.Printf("[lead][usecase] lead found lead_id=%s email=%s", lead.ID, pkg.MaskEmail(email))
			return lead, nil
		}
	}

	now := time.Now().UTC()
	lead := entities.Lead{
		ID:        uuid.NewString(),
		CPF:       cpf,
		Email:     email,
		Name:      customer.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.repo.Create(ctx, lead)
	if err != nil {
		return entities.Lead{}, err
	}
	log.Printf("[lead][usecase] lead created lead_id=%s email=%s", created.ID, pkg.MaskEmail(email))
	return created, nil
}
