package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/medgm/analytics-api/infrastructure/database/postgres"
	"github.com/medgm/analytics-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriorBalanceRepository_GetLatestInRange(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPriorBalanceRepository(postgres.NewFromDB(db))
	computedAt := time.Date(2024, 3, 1, 2, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM prior_balances pb WHERE pb.year * 100 + pb.month BETWEEN $1 AND $2 ORDER BY pb.year DESC, pb.month DESC LIMIT 1")).
		WithArgs(202312, 202402).
		WillReturnRows(sqlmock.NewRows([]string{"month", "year", "closing_balance", "computed_at"}).
			AddRow(2, 2024, "18000.00", computedAt))

	balance, err := repo.GetLatestInRange(context.Background(), domain.Period{Month: 12, Year: 2023}, domain.Period{Month: 2, Year: 2024})
	require.NoError(t, err)
	require.NotNil(t, balance)
	assert.Equal(t, domain.Period{Month: 2, Year: 2024}, balance.Period)
	assert.True(t, balance.ClosingBalance.Equal(decimal.NewFromInt(18000)))

	mock.ExpectQuery(regexp.QuoteMeta("FROM prior_balances pb")).
		WithArgs(202412, 202412).
		WillReturnRows(sqlmock.NewRows([]string{"month", "year", "closing_balance", "computed_at"}))

	balance, err = repo.GetLatestInRange(context.Background(), domain.Period{Month: 12, Year: 2024}, domain.Period{Month: 12, Year: 2024})
	assert.NoError(t, err)
	assert.Nil(t, balance)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPriorBalanceRepository_SaveOrUpdate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPriorBalanceRepository(postgres.NewFromDB(db))

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO prior_balances")).
		WithArgs(2, 2024, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.SaveOrUpdate(context.Background(), &domain.PriorBalance{
		Period:         domain.Period{Month: 2, Year: 2024},
		ClosingBalance: decimal.NewFromInt(18000),
		ComputedAt:     time.Now(),
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
