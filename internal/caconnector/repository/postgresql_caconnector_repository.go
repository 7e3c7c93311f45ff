package repository

import (
	"context"
	"database/sql"

	caDomain "github.com/allisson/caconnectors/internal/caconnector/domain"
	"github.com/allisson/caconnectors/internal/database"
	apperrors "github.com/allisson/caconnectors/internal/errors"
)

// PostgreSQLConnectorRepository implements CAConnector persistence for PostgreSQL.
type PostgreSQLConnectorRepository struct {
	db *sql.DB
}

// Upsert creates the connector row or updates its type, returning the stable id.
func (p *PostgreSQLConnectorRepository) Upsert(ctx context.Context, name, typeID string) (int64, error) {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO caconnectors (name, type)
			  VALUES ($1, $2)
			  ON CONFLICT (name) DO UPDATE
			  SET type = EXCLUDED.type,
				  updated_at = CURRENT_TIMESTAMP
			  RETURNING id`

	var id int64
	if err := querier.QueryRowContext(ctx, query, name, typeID).Scan(&id); err != nil {
		return 0, apperrors.Wrap(err, "failed to upsert ca connector")
	}
	return id, nil
}

// GetByName retrieves a connector with its configuration.
func (p *PostgreSQLConnectorRepository) GetByName(ctx context.Context, name string) (*caDomain.CAConnector, error) {
	connectors, err := p.List(ctx, caDomain.ListFilter{Name: name})
	if err != nil {
		return nil, err
	}
	if len(connectors) == 0 {
		return nil, caDomain.ErrConnectorNotFound
	}
	return connectors[0], nil
}

// SetConfig inserts or overwrites the given configuration keys.
func (p *PostgreSQLConnectorRepository) SetConfig(
	ctx context.Context,
	connectorID int64,
	data map[string]string,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO caconnector_configs (connector_id, config_key, config_value)
			  VALUES ($1, $2, $3)
			  ON CONFLICT (connector_id, config_key) DO UPDATE
			  SET config_value = EXCLUDED.config_value`

	for _, key := range sortedKeys(data) {
		if _, err := querier.ExecContext(ctx, query, connectorID, key, data[key]); err != nil {
			return apperrors.Wrap(err, "failed to set ca connector config")
		}
	}
	return nil
}

// List returns connectors matching the filter in id order.
func (p *PostgreSQLConnectorRepository) List(
	ctx context.Context,
	filter caDomain.ListFilter,
) ([]*caDomain.CAConnector, error) {
	querier := database.GetTx(ctx, p.db)

	where, args := buildListFilter(filter, postgresPlaceholder)
	query := listConnectorsQuery + where + ` ORDER BY c.id ASC, cc.config_key ASC`

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list ca connectors")
	}
	return scanConnectors(rows)
}

// Delete removes a connector; its configuration rows cascade.
func (p *PostgreSQLConnectorRepository) Delete(ctx context.Context, name string) (int64, error) {
	querier := database.GetTx(ctx, p.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM caconnectors WHERE name = $1`, name)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete ca connector")
	}
	count, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to get deleted ca connector count")
	}
	return count, nil
}

// NewPostgreSQLConnectorRepository creates a new PostgreSQL CAConnector repository.
func NewPostgreSQLConnectorRepository(db *sql.DB) *PostgreSQLConnectorRepository {
	return &PostgreSQLConnectorRepository{db: db}
}
