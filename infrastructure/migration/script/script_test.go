package main

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/medgm/analytics-api/infrastructure/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplySchema(t *testing.T) {
	ctx := context.Background()

	t.Run("aplica todas as etapas numa transação", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		for _, step := range schema {
			mock.ExpectExec(regexp.QuoteMeta(step.ddl)).WillReturnResult(sqlmock.NewResult(0, 0))
		}
		mock.ExpectCommit()

		err = postgres.NewFromDB(db).RunInTransaction(ctx, func(tx *sql.Tx) error {
			return applySchema(ctx, tx)
		})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("falha numa etapa desfaz a transação", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(schema[0].ddl)).WillReturnError(errors.New("permission denied"))
		mock.ExpectRollback()

		err = postgres.NewFromDB(db).RunInTransaction(ctx, func(tx *sql.Tx) error {
			return applySchema(ctx, tx)
		})

		assert.EqualError(t, err, "permission denied")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSeedPeople(t *testing.T) {
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "people.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"name": "Ana", "role": "closer"},
		{"name": "Bia", "role": "sdr"},
		{"name": "Caio", "role": "gerente"}
	]`), 0o600))

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	prepared := mock.ExpectPrepare("INSERT INTO people")
	prepared.ExpectExec().
		WithArgs(sqlmock.AnyArg(), "Ana", "closer", true).
		WillReturnResult(sqlmock.NewResult(0, 1))
	prepared.ExpectExec().
		WithArgs(sqlmock.AnyArg(), "Bia", "sdr", true).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err = postgres.NewFromDB(db).RunInTransaction(ctx, func(tx *sql.Tx) error {
		return seedPeople(ctx, tx, path)
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
