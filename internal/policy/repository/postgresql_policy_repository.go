// Package repository implements policy persistence.
//
// Provides PostgreSQL and MySQL implementations with transaction support via database.GetTx().
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/allisson/caconnectors/internal/database"
	apperrors "github.com/allisson/caconnectors/internal/errors"
	policyDomain "github.com/allisson/caconnectors/internal/policy/domain"
)

const policyColumns = `id, name, scope, action, realm, active, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPolicy(row rowScanner) (*policyDomain.Policy, error) {
	var policy policyDomain.Policy
	var scope string
	if err := row.Scan(
		&policy.ID,
		&policy.Name,
		&scope,
		&policy.Action,
		&policy.Realm,
		&policy.Active,
		&policy.CreatedAt,
		&policy.UpdatedAt,
	); err != nil {
		return nil, err
	}
	policy.Scope = policyDomain.Scope(scope)
	return &policy, nil
}

func scanPolicies(rows *sql.Rows) ([]*policyDomain.Policy, error) {
	defer func() {
		_ = rows.Close()
	}()

	policies := make([]*policyDomain.Policy, 0)
	for rows.Next() {
		policy, err := scanPolicy(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan policy")
		}
		policies = append(policies, policy)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate policies")
	}
	return policies, nil
}

// buildPolicyFilter renders the WHERE clause for a filter. placeholder returns the
// driver specific placeholder for the n-th argument.
func buildPolicyFilter(filter policyDomain.PolicyFilter, placeholder func(n int) string) (string, []any) {
	var conds []string
	var args []any
	if filter.Name != "" {
		args = append(args, filter.Name)
		conds = append(conds, "name = "+placeholder(len(args)))
	}
	if filter.Scope != "" {
		args = append(args, string(filter.Scope))
		conds = append(conds, "scope = "+placeholder(len(args)))
	}
	if filter.Active != nil {
		args = append(args, *filter.Active)
		conds = append(conds, "active = "+placeholder(len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func postgresPlaceholder(n int) string {
	return "$" + strconv.Itoa(n)
}

// PostgreSQLPolicyRepository implements Policy persistence for PostgreSQL.
type PostgreSQLPolicyRepository struct {
	db *sql.DB
}

// Upsert inserts the policy or replaces the policy with the same name in place.
func (p *PostgreSQLPolicyRepository) Upsert(ctx context.Context, policy *policyDomain.Policy) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO policies (name, scope, action, realm, active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  ON CONFLICT (name) DO UPDATE
			  SET scope = EXCLUDED.scope,
				  action = EXCLUDED.action,
				  realm = EXCLUDED.realm,
				  active = EXCLUDED.active,
				  updated_at = EXCLUDED.updated_at
			  RETURNING id, created_at`

	err := querier.QueryRowContext(
		ctx,
		query,
		policy.Name,
		string(policy.Scope),
		policy.Action,
		policy.Realm,
		policy.Active,
		policy.CreatedAt,
		policy.UpdatedAt,
	).Scan(&policy.ID, &policy.CreatedAt)
	if err != nil {
		return apperrors.Wrap(err, "failed to upsert policy")
	}
	return nil
}

// Get retrieves a policy by name.
func (p *PostgreSQLPolicyRepository) Get(ctx context.Context, name string) (*policyDomain.Policy, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + policyColumns + ` FROM policies WHERE name = $1`

	policy, err := scanPolicy(querier.QueryRowContext(ctx, query, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, policyDomain.ErrPolicyNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get policy")
	}
	return policy, nil
}

// List returns the policies matching the filter ordered by id.
func (p *PostgreSQLPolicyRepository) List(
	ctx context.Context,
	filter policyDomain.PolicyFilter,
) ([]*policyDomain.Policy, error) {
	querier := database.GetTx(ctx, p.db)

	where, args := buildPolicyFilter(filter, postgresPlaceholder)
	query := `SELECT ` + policyColumns + ` FROM policies` + where + ` ORDER BY id ASC`

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list policies")
	}
	return scanPolicies(rows)
}

// ListActiveByScope returns the active policies of one scope ordered by id.
func (p *PostgreSQLPolicyRepository) ListActiveByScope(
	ctx context.Context,
	scope policyDomain.Scope,
) ([]*policyDomain.Policy, error) {
	active := true
	return p.List(ctx, policyDomain.PolicyFilter{Scope: scope, Active: &active})
}

// Delete removes the policy with the given name.
func (p *PostgreSQLPolicyRepository) Delete(ctx context.Context, name string) (int64, error) {
	querier := database.GetTx(ctx, p.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM policies WHERE name = $1`, name)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete policy")
	}
	count, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to get deleted policy count")
	}
	return count, nil
}

// NewPostgreSQLPolicyRepository creates a new PostgreSQL Policy repository.
func NewPostgreSQLPolicyRepository(db *sql.DB) *PostgreSQLPolicyRepository {
	return &PostgreSQLPolicyRepository{db: db}
}
