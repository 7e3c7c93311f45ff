package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/allisson/caconnectors/internal/database"
	apperrors "github.com/allisson/caconnectors/internal/errors"
	policyDomain "github.com/allisson/caconnectors/internal/policy/domain"
)

func mysqlPlaceholder(int) string {
	return "?"
}

// MySQLPolicyRepository implements Policy persistence for MySQL.
type MySQLPolicyRepository struct {
	db *sql.DB
}

// Upsert inserts the policy or replaces the policy with the same name in place.
// LAST_INSERT_ID(id) makes the existing id available after an update.
func (m *MySQLPolicyRepository) Upsert(ctx context.Context, policy *policyDomain.Policy) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO policies (name, scope, action, realm, active, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?)
			  ON DUPLICATE KEY UPDATE
				  id = LAST_INSERT_ID(id),
				  scope = VALUES(scope),
				  action = VALUES(action),
				  realm = VALUES(realm),
				  active = VALUES(active),
				  updated_at = VALUES(updated_at)`

	result, err := querier.ExecContext(
		ctx,
		query,
		policy.Name,
		string(policy.Scope),
		policy.Action,
		policy.Realm,
		policy.Active,
		policy.CreatedAt,
		policy.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to upsert policy")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get policy id")
	}
	policy.ID = id

	err = querier.QueryRowContext(ctx, `SELECT created_at FROM policies WHERE id = ?`, id).
		Scan(&policy.CreatedAt)
	if err != nil {
		return apperrors.Wrap(err, "failed to read policy creation time")
	}
	return nil
}

// Get retrieves a policy by name.
func (m *MySQLPolicyRepository) Get(ctx context.Context, name string) (*policyDomain.Policy, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + policyColumns + ` FROM policies WHERE name = ?`

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
func (m *MySQLPolicyRepository) List(
	ctx context.Context,
	filter policyDomain.PolicyFilter,
) ([]*policyDomain.Policy, error) {
	querier := database.GetTx(ctx, m.db)

	where, args := buildPolicyFilter(filter, mysqlPlaceholder)
	query := `SELECT ` + policyColumns + ` FROM policies` + where + ` ORDER BY id ASC`

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list policies")
	}
	return scanPolicies(rows)
}

// ListActiveByScope returns the active policies of one scope ordered by id.
func (m *MySQLPolicyRepository) ListActiveByScope(
	ctx context.Context,
	scope policyDomain.Scope,
) ([]*policyDomain.Policy, error) {
	active := true
	return m.List(ctx, policyDomain.PolicyFilter{Scope: scope, Active: &active})
}

// Delete removes the policy with the given name.
func (m *MySQLPolicyRepository) Delete(ctx context.Context, name string) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM policies WHERE name = ?`, name)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete policy")
	}
	count, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to get deleted policy count")
	}
	return count, nil
}

// NewMySQLPolicyRepository creates a new MySQL Policy repository.
func NewMySQLPolicyRepository(db *sql.DB) *MySQLPolicyRepository {
	return &MySQLPolicyRepository{db: db}
}
