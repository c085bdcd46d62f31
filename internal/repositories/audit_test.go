package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditWriteRepository_Save(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewAuditWriteRepository(sqlx.NewDb(db, "sqlmock"))

	mock.ExpectExec("INSERT INTO audit_log").
		WithArgs("7b1c", "user", "7b1c", "register").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Save(context.Background(), "7b1c", "user", "7b1c", "register")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditWriteRepository_SaveError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewAuditWriteRepository(sqlx.NewDb(db, "sqlmock"))

	mock.ExpectExec("INSERT INTO audit_log").
		WillReturnError(errors.New("connection refused"))

	err = repo.Save(context.Background(), "7b1c", "appointment", "9f2d", "cancel")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
