package repository

import (
	"context"
	"database/sql"

	caDomain "github.com/allisson/caconnectors/internal/caconnector/domain"
	"github.com/allisson/caconnectors/internal/database"
	apperrors "github.com/allisson/caconnectors/internal/errors"
)

// MySQLConnectorRepository implements CAConnector persistence for MySQL.
type MySQLConnectorRepository struct {
	db *sql.DB
}

// Upsert creates the connector row or updates its type, returning the stable id.
// LAST_INSERT_ID(id) exposes the existing id when the row already exists.
func (m *MySQLConnectorRepository) Upsert(ctx context.Context, name, typeID string) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO caconnectors (name, type)
			  VALUES (?, ?)
			  ON DUPLICATE KEY UPDATE
				  id = LAST_INSERT_ID(id),
				  type = VALUES(type),
				  updated_at = CURRENT_TIMESTAMP`

	result, err := querier.ExecContext(ctx, query, name, typeID)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to upsert ca connector")
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to get ca connector id")
	}
	return id, nil
}

// GetByName retrieves a connector with its configuration.
func (m *MySQLConnectorRepository) GetByName(ctx context.Context, name string) (*caDomain.CAConnector, error) {
	connectors, err := m.List(ctx, caDomain.ListFilter{Name: name})
	if err != nil {
		return nil, err
	}
	if len(connectors) == 0 {
		return nil, caDomain.ErrConnectorNotFound
	}
	return connectors[0], nil
}

// SetConfig inserts or overwrites the given configuration keys.
func (m *MySQLConnectorRepository) SetConfig(
	ctx context.Context,
	connectorID int64,
	data map[string]string,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO caconnector_configs (connector_id, config_key, config_value)
			  VALUES (?, ?, ?)
			  ON DUPLICATE KEY UPDATE config_value = VALUES(config_value)`

	for _, key := range sortedKeys(data) {
		if _, err := querier.ExecContext(ctx, query, connectorID, key, data[key]); err != nil {
			return apperrors.Wrap(err, "failed to set ca connector config")
		}
	}
	return nil
}

// List returns connectors matching the filter in id order.
func (m *MySQLConnectorRepository) List(
	ctx context.Context,
	filter caDomain.ListFilter,
) ([]*caDomain.CAConnector, error) {
	querier := database.GetTx(ctx, m.db)

	where, args := buildListFilter(filter, mysqlPlaceholder)
	query := listConnectorsQuery + where + ` ORDER BY c.id ASC, cc.config_key ASC`

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list ca connectors")
	}
	return scanConnectors(rows)
}

// Delete removes a connector; its configuration rows cascade.
func (m *MySQLConnectorRepository) Delete(ctx context.Context, name string) (int64, error) {
	querier := database.GetTx(ctx, m.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM caconnectors WHERE name = ?`, name)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete ca connector")
	}
	count, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to get deleted ca connector count")
	}
	return count, nil
}

// NewMySQLConnectorRepository creates a new MySQL CAConnector repository.
func NewMySQLConnectorRepository(db *sql.DB) *MySQLConnectorRepository {
	return &MySQLConnectorRepository{db: db}
}
