// Package repository implements CA connector persistence.
//
// A connector is stored as one row in caconnectors plus one row per configuration key in
// caconnector_configs. Deleting a connector cascades to its configuration.
package repository

import (
	"database/sql"
	"slices"
	"strconv"
	"strings"

	caDomain "github.com/allisson/caconnectors/internal/caconnector/domain"
	apperrors "github.com/allisson/caconnectors/internal/errors"
)

const listConnectorsQuery = `SELECT c.id, c.name, c.type, cc.config_key, cc.config_value
			  FROM caconnectors c
			  LEFT JOIN caconnector_configs cc ON cc.connector_id = c.id`

// buildListFilter renders the WHERE clause of a listing. placeholder returns the driver
// specific placeholder for the n-th argument.
func buildListFilter(filter caDomain.ListFilter, placeholder func(n int) string) (string, []any) {
	var conds []string
	var args []any
	if filter.Name != "" {
		args = append(args, filter.Name)
		conds = append(conds, "c.name = "+placeholder(len(args)))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		conds = append(conds, "c.type = "+placeholder(len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// scanConnectors folds joined rows into connectors, keeping id order.
func scanConnectors(rows *sql.Rows) ([]*caDomain.CAConnector, error) {
	defer func() {
		_ = rows.Close()
	}()

	connectors := make([]*caDomain.CAConnector, 0)
	var current *caDomain.CAConnector
	for rows.Next() {
		var (
			id         int64
			name, typ  string
			key, value sql.NullString
		)
		if err := rows.Scan(&id, &name, &typ, &key, &value); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan ca connector")
		}
		if current == nil || current.ID != id {
			current = &caDomain.CAConnector{ID: id, Name: name, Type: typ, Data: map[string]string{}}
			connectors = append(connectors, current)
		}
		if key.Valid {
			current.Data[key.String] = value.String
		}
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate ca connectors")
	}
	return connectors, nil
}

// sortedKeys returns the keys of data in a stable order.
func sortedKeys(data map[string]string) []string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func postgresPlaceholder(n int) string {
	return "$" + strconv.Itoa(n)
}

func mysqlPlaceholder(int) string {
	return "?"
}
