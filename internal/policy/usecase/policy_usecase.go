package usecase

import (
	"context"
	"time"

	"github.com/allisson/caconnectors/internal/database"
	policyDomain "github.com/allisson/caconnectors/internal/policy/domain"
	"github.com/allisson/caconnectors/internal/validation"
)

// policyUseCase implements PolicyUseCase on top of a PolicyRepository.
type policyUseCase struct {
	txManager  database.TxManager
	policyRepo PolicyRepository
}

// Set validates and persists a policy. Re-issuing Set with an existing name mutates that
// policy in place and keeps its ID.
func (p *policyUseCase) Set(
	ctx context.Context,
	input *policyDomain.SetPolicyInput,
) (*policyDomain.Policy, error) {
	if err := input.Validate(); err != nil {
		return nil, validation.WrapValidationError(err)
	}

	now := time.Now().UTC()
	policy := &policyDomain.Policy{
		Name:      input.Name,
		Scope:     input.Scope,
		Action:    input.Action,
		Realm:     input.Realm,
		Active:    input.Active,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := p.txManager.WithTx(ctx, func(ctx context.Context) error {
		return p.policyRepo.Upsert(ctx, policy)
	})
	if err != nil {
		return nil, err
	}

	return policy, nil
}

// Get retrieves a policy by name.
func (p *policyUseCase) Get(ctx context.Context, name string) (*policyDomain.Policy, error) {
	return p.policyRepo.Get(ctx, name)
}

// List returns the policies matching the filter.
func (p *policyUseCase) List(
	ctx context.Context,
	filter policyDomain.PolicyFilter,
) ([]*policyDomain.Policy, error) {
	return p.policyRepo.List(ctx, filter)
}

// Delete removes a policy by name.
func (p *policyUseCase) Delete(ctx context.Context, name string) (int64, error) {
	count, err := p.policyRepo.Delete(ctx, name)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, policyDomain.ErrPolicyNotFound
	}
	return count, nil
}

// NewPolicyUseCase creates a new PolicyUseCase with the provided dependencies.
func NewPolicyUseCase(txManager database.TxManager, policyRepo PolicyRepository) PolicyUseCase {
	return &policyUseCase{
		txManager:  txManager,
		policyRepo: policyRepo,
	}
}
