package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"maps"
	"slices"
	"sync"

	caDomain "github.com/allisson/caconnectors/internal/caconnector/domain"
	policyDomain "github.com/allisson/caconnectors/internal/policy/domain"
)

// passthroughTxManager runs the function without a transaction.
type passthroughTxManager struct{}

func (passthroughTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memoryConnectorRepository keeps connectors in insertion order.
type memoryConnectorRepository struct {
	mu         sync.Mutex
	nextID     int64
	connectors []*caDomain.CAConnector
}

func newMemoryConnectorRepository() *memoryConnectorRepository {
	return &memoryConnectorRepository{nextID: 1}
}

func (r *memoryConnectorRepository) find(name string) *caDomain.CAConnector {
	for _, c := range r.connectors {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func (r *memoryConnectorRepository) Upsert(_ context.Context, name, typeID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c := r.find(name); c != nil {
		c.Type = typeID
		return c.ID, nil
	}
	c := &caDomain.CAConnector{ID: r.nextID, Name: name, Type: typeID, Data: map[string]string{}}
	r.nextID++
	r.connectors = append(r.connectors, c)
	return c.ID, nil
}

func (r *memoryConnectorRepository) GetByName(_ context.Context, name string) (*caDomain.CAConnector, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := r.find(name)
	if c == nil {
		return nil, caDomain.ErrConnectorNotFound
	}
	return &caDomain.CAConnector{ID: c.ID, Name: c.Name, Type: c.Type, Data: maps.Clone(c.Data)}, nil
}

func (r *memoryConnectorRepository) SetConfig(_ context.Context, id int64, data map[string]string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.connectors {
		if c.ID == id {
			maps.Copy(c.Data, data)
		}
	}
	return nil
}

func (r *memoryConnectorRepository) List(
	_ context.Context,
	filter caDomain.ListFilter,
) ([]*caDomain.CAConnector, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*caDomain.CAConnector, 0, len(r.connectors))
	for _, c := range r.connectors {
		if filter.Name != "" && c.Name != filter.Name {
			continue
		}
		if filter.Type != "" && c.Type != filter.Type {
			continue
		}
		out = append(out, &caDomain.CAConnector{ID: c.ID, Name: c.Name, Type: c.Type, Data: maps.Clone(c.Data)})
	}
	return out, nil
}

func (r *memoryConnectorRepository) Delete(_ context.Context, name string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	before := len(r.connectors)
	r.connectors = slices.DeleteFunc(r.connectors, func(c *caDomain.CAConnector) bool {
		return c.Name == name
	})
	return int64(before - len(r.connectors)), nil
}

// memoryPolicyRepository keeps policies by name.
type memoryPolicyRepository struct {
	mu       sync.Mutex
	nextID   int64
	policies []*policyDomain.Policy
}

func (r *memoryPolicyRepository) Upsert(_ context.Context, policy *policyDomain.Policy) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.policies {
		if p.Name == policy.Name {
			policy.ID = p.ID
			r.policies[i] = policy
			return nil
		}
	}
	r.nextID++
	policy.ID = r.nextID
	r.policies = append(r.policies, policy)
	return nil
}

func (r *memoryPolicyRepository) Get(_ context.Context, name string) (*policyDomain.Policy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.policies {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, policyDomain.ErrPolicyNotFound
}

func (r *memoryPolicyRepository) List(
	_ context.Context,
	filter policyDomain.PolicyFilter,
) ([]*policyDomain.Policy, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*policyDomain.Policy
	for _, p := range r.policies {
		if filter.Name != "" && p.Name != filter.Name {
			continue
		}
		if filter.Scope != "" && p.Scope != filter.Scope {
			continue
		}
		if filter.Active != nil && p.Active != *filter.Active {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *memoryPolicyRepository) ListActiveByScope(
	ctx context.Context,
	scope policyDomain.Scope,
) ([]*policyDomain.Policy, error) {
	active := true
	return r.List(ctx, policyDomain.PolicyFilter{Scope: scope, Active: &active})
}

func (r *memoryPolicyRepository) Delete(_ context.Context, name string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	before := len(r.policies)
	r.policies = slices.DeleteFunc(r.policies, func(p *policyDomain.Policy) bool {
		return p.Name == name
	})
	return int64(before - len(r.policies)), nil
}
