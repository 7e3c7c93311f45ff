package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	caDomain "github.com/allisson/caconnectors/internal/caconnector/domain"
)

func TestMySQLConnectorRepository_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	repo := NewMySQLConnectorRepository(db)
	mock.ExpectExec(regexp.QuoteMeta(`id = LAST_INSERT_ID(id)`)).
		WithArgs("con1", "local").
		WillReturnResult(sqlmock.NewResult(3, 2))

	id, err := repo.Upsert(context.Background(), "con1", "local")

	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLConnectorRepository_SetConfig(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	repo := NewMySQLConnectorRepository(db)
	mock.ExpectExec(regexp.QuoteMeta(`ON DUPLICATE KEY UPDATE config_value = VALUES(config_value)`)).
		WithArgs(int64(3), "CRL", "/etc/crl.pem").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.SetConfig(context.Background(), 3, map[string]string{"CRL": "/etc/crl.pem"})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLConnectorRepository_ListByType(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	repo := NewMySQLConnectorRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE c.type = ? ORDER BY c.id ASC`)).
		WithArgs("local").
		WillReturnRows(sqlmock.NewRows(listColumns).
			AddRow(int64(1), "con1", "local", nil, nil).
			AddRow(int64(2), "con2", "local", "cakey", "k"))

	connectors, err := repo.List(context.Background(), caDomain.ListFilter{Type: "local"})

	require.NoError(t, err)
	require.Len(t, connectors, 2)
	assert.Equal(t, "k", connectors[1].Data["cakey"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLConnectorRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	repo := NewMySQLConnectorRepository(db)
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM caconnectors WHERE name = ?`)).
		WithArgs("con2").
		WillReturnResult(sqlmock.NewResult(0, 1))

	count, err := repo.Delete(context.Background(), "con2")

	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
