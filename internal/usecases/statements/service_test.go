package statements

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/medgm/analytics-api/infrastructure/repository/mocks"
	"github.com/medgm/analytics-api/internal/domain"
	"github.com/medgm/analytics-api/internal/usecases/classifying"
	"github.com/medgm/analytics-api/pkg/apiErrors"
	"github.com/medgm/analytics-api/pkg/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

// ledger responde às consultas do repositório filtrando uma lista em memória
func ledger(records []domain.FinancialRecord) func(context.Context, domain.FinancialRecordFilters) ([]domain.FinancialRecord, error) {
	return func(_ context.Context, filters domain.FinancialRecordFilters) ([]domain.FinancialRecord, error) {
		result := make([]domain.FinancialRecord, 0)
		for _, r := range records {
			if r.Period.Before(filters.From) || filters.To.Before(r.Period) {
				continue
			}
			if filters.Status != nil && r.Status != *filters.Status {
				continue
			}
			result = append(result, r)
		}
		return result, nil
	}
}

func setupService(t *testing.T) (*Service, *mocks.MockFinancialRecordRepository, *mocks.MockPriorBalanceRepository) {
	ctrl := gomock.NewController(t)
	records := mocks.NewMockFinancialRecordRepository(ctrl)
	balances := mocks.NewMockPriorBalanceRepository(ctrl)

	service := NewService(records, balances, classifying.NewClassifier(), utils.FixedClock{At: fixedNow}).(*Service)
	return service, records, balances
}

func TestService_OpeningBalance(t *testing.T) {
	ctx := context.Background()
	jan := domain.Period{Month: 1, Year: 2024}
	feb := domain.Period{Month: 2, Year: 2024}

	history := []domain.FinancialRecord{
		inflow(10000, inPeriod(jan)),
		outflow(4000, inPeriod(jan)),
		inflow(7000, inPeriod(feb)),
		outflow(1000, inPeriod(feb)),
		outflow(9999, inPeriod(feb), forecast()),
	}

	tests := []struct {
		name     string
		period   domain.Period
		setup    func(records *mocks.MockFinancialRecordRepository, balances *mocks.MockPriorBalanceRepository)
		expected int64
	}{
		{
			name:   "Sem saldo salvo reconstrói desde janeiro",
			period: march,
			setup: func(records *mocks.MockFinancialRecordRepository, balances *mocks.MockPriorBalanceRepository) {
				balances.EXPECT().
					GetLatestInRange(gomock.Any(), domain.Period{Month: 12, Year: 2023}, feb).
					Return(nil, nil)
				records.EXPECT().ListByPeriodRange(gomock.Any(), gomock.Any()).DoAndReturn(ledger(history))
			},
			expected: 12000,
		},
		{
			name:   "Saldo salvo de janeiro é a base para os meses seguintes",
			period: march,
			setup: func(records *mocks.MockFinancialRecordRepository, balances *mocks.MockPriorBalanceRepository) {
				balances.EXPECT().
					GetLatestInRange(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&domain.PriorBalance{Period: jan, ClosingBalance: decimal.NewFromInt(50000)}, nil)
				status := domain.RecordStatusRealized
				records.EXPECT().
					ListByPeriodRange(gomock.Any(), domain.FinancialRecordFilters{From: feb, To: feb, Status: &status}).
					DoAndReturn(ledger(history))
			},
			expected: 56000,
		},
		{
			name:   "Saldo salvo do mês anterior é usado diretamente",
			period: march,
			setup: func(records *mocks.MockFinancialRecordRepository, balances *mocks.MockPriorBalanceRepository) {
				balances.EXPECT().
					GetLatestInRange(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&domain.PriorBalance{Period: feb, ClosingBalance: decimal.NewFromInt(10000)}, nil)
			},
			expected: 10000,
		},
		{
			name:   "Dezembro do ano anterior abre janeiro",
			period: jan,
			setup: func(records *mocks.MockFinancialRecordRepository, balances *mocks.MockPriorBalanceRepository) {
				balances.EXPECT().
					GetLatestInRange(gomock.Any(), domain.Period{Month: 12, Year: 2023}, domain.Period{Month: 12, Year: 2023}).
					Return(&domain.PriorBalance{Period: domain.Period{Month: 12, Year: 2023}, ClosingBalance: decimal.NewFromInt(3000)}, nil)
			},
			expected: 3000,
		},
		{
			name:   "Janeiro sem saldo salvo abre com zero",
			period: jan,
			setup: func(records *mocks.MockFinancialRecordRepository, balances *mocks.MockPriorBalanceRepository) {
				balances.EXPECT().GetLatestInRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, records, balances := setupService(t)
			tt.setup(records, balances)

			opening, err := service.OpeningBalance(ctx, tt.period)

			require.NoError(t, err)
			assert.True(t, decimal.NewFromInt(tt.expected).Equal(opening), "esperado %d, obtido %s", tt.expected, opening)
		})
	}
}

func TestService_CashFlowStatement(t *testing.T) {
	ctx := context.Background()
	feb := domain.Period{Month: 2, Year: 2024}

	t.Run("Saldo final vira abertura do mês seguinte", func(t *testing.T) {
		service, records, balances := setupService(t)

		history := []domain.FinancialRecord{
			inflow(50000),
			outflow(42000, withCategory("Fornecedor")),
		}

		balances.EXPECT().
			GetLatestInRange(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&domain.PriorBalance{Period: feb, ClosingBalance: decimal.NewFromInt(10000)}, nil).
			Times(2)
		records.EXPECT().ListByPeriodRange(gomock.Any(), gomock.Any()).DoAndReturn(ledger(history)).AnyTimes()

		statement, err := service.CashFlowStatement(ctx, march)
		require.NoError(t, err)
		assert.Equal(t, 10000.0, statement.OpeningBalance)
		assert.Equal(t, 18000.0, statement.ClosingBalance)

		nextOpening, err := service.OpeningBalance(ctx, march.Next())
		require.NoError(t, err)
		assert.Equal(t, 18000.0, nextOpening.InexactFloat64())
	})

	t.Run("Lançamento inválido rejeita o cálculo", func(t *testing.T) {
		service, records, balances := setupService(t)

		balances.EXPECT().GetLatestInRange(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&domain.PriorBalance{Period: feb, ClosingBalance: decimal.Zero}, nil)
		records.EXPECT().ListByPeriodRange(gomock.Any(), gomock.Any()).
			Return([]domain.FinancialRecord{{
				Kind:   domain.RecordKindOutflow,
				Amount: decimal.NewFromInt(-10),
				Period: march,
				Status: domain.RecordStatusRealized,
			}}, nil)

		statement, err := service.CashFlowStatement(ctx, march)

		assert.Nil(t, statement)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidRecord))

		var statementErr *StatementError
		require.True(t, errors.As(err, &statementErr))
		assert.Equal(t, apiErrors.ErrInvalidData, statementErr.Code)
	})

	t.Run("Período inválido", func(t *testing.T) {
		service, _, _ := setupService(t)

		_, err := service.CashFlowStatement(ctx, domain.Period{Month: 13, Year: 2024})

		assert.True(t, errors.Is(err, ErrInvalidPeriod))
	})

	t.Run("Falha ao buscar saldo salvo", func(t *testing.T) {
		service, _, balances := setupService(t)
		balances.EXPECT().GetLatestInRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("conexão recusada"))

		_, err := service.CashFlowStatement(ctx, march)

		assert.True(t, errors.Is(err, ErrFetchBalance))
	})
}

func TestService_IncomeStatement(t *testing.T) {
	ctx := context.Background()

	t.Run("Busca apenas lançamentos realizados do período", func(t *testing.T) {
		service, records, _ := setupService(t)
		status := domain.RecordStatusRealized

		records.EXPECT().
			ListByPeriodRange(gomock.Any(), domain.FinancialRecordFilters{From: march, To: march, Status: &status}).
			Return([]domain.FinancialRecord{inflow(100000), outflow(30000, withCategory("Impostos"))}, nil)

		statement, err := service.IncomeStatement(ctx, march)

		require.NoError(t, err)
		assert.Equal(t, 20000.0, statement.Deductions)
		assert.Equal(t, 80000.0, statement.NetRevenue)
	})

	t.Run("Erro do repositório", func(t *testing.T) {
		service, records, _ := setupService(t)
		records.EXPECT().ListByPeriodRange(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

		statement, err := service.IncomeStatement(ctx, march)

		assert.Nil(t, statement)
		assert.True(t, errors.Is(err, ErrFetchRecords))
	})
}

func TestService_SnapshotClosingBalance(t *testing.T) {
	ctx := context.Background()
	service, records, balances := setupService(t)
	feb := domain.Period{Month: 2, Year: 2024}

	balances.EXPECT().GetLatestInRange(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.PriorBalance{Period: feb, ClosingBalance: decimal.NewFromInt(10000)}, nil)
	records.EXPECT().ListByPeriodRange(gomock.Any(), gomock.Any()).
		DoAndReturn(ledger([]domain.FinancialRecord{inflow(50000), outflow(42000)}))
	balances.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, balance *domain.PriorBalance) error {
			assert.Equal(t, march, balance.Period)
			assert.True(t, decimal.NewFromInt(18000).Equal(balance.ClosingBalance))
			assert.Equal(t, fixedNow, balance.ComputedAt)
			return nil
		})

	balance, err := service.SnapshotClosingBalance(ctx, march)

	require.NoError(t, err)
	assert.Equal(t, "18000", balance.ClosingBalance.String())
}

func TestService_TrailingBurn(t *testing.T) {
	ctx := context.Background()
	service, records, _ := setupService(t)
	jan := domain.Period{Month: 1, Year: 2024}
	feb := domain.Period{Month: 2, Year: 2024}
	status := domain.RecordStatusRealized

	records.EXPECT().
		ListByPeriodRange(gomock.Any(), domain.FinancialRecordFilters{From: jan, To: march, Status: &status}).
		DoAndReturn(ledger([]domain.FinancialRecord{
			outflow(3000, withCostCenter("Comercial"), inPeriod(jan)),
			outflow(6000, withCostCenter("Administrativo"), inPeriod(feb)),
			outflow(1000, withCategory("Juros"), withCostCenter("Financeiro")),
			outflow(2000, withCostCenter("Operação"), withCostType("Variável")),
		}))

	burn, err := service.TrailingBurn(ctx, march, 3)

	require.NoError(t, err)
	assert.Equal(t, "4000", burn.String())
}

func TestService_TotalCosts(t *testing.T) {
	ctx := context.Background()
	service, records, _ := setupService(t)

	records.EXPECT().
		ListByPeriodRange(gomock.Any(), domain.FinancialRecordFilters{From: march, To: march}).
		Return([]domain.FinancialRecord{
			inflow(90000),
			outflow(1000),
			outflow(2500, forecast()),
		}, nil)

	total, err := service.TotalCosts(ctx, march)

	require.NoError(t, err)
	assert.Equal(t, "3500", total.String())
}

func TestService_AnnualCashFlow(t *testing.T) {
	ctx := context.Background()
	service, records, balances := setupService(t)
	jan := domain.Period{Month: 1, Year: 2024}

	balances.EXPECT().GetLatestInRange(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.PriorBalance{Period: domain.Period{Month: 12, Year: 2023}, ClosingBalance: decimal.NewFromInt(1000)}, nil)
	records.EXPECT().ListByPeriodRange(gomock.Any(), gomock.Any()).
		DoAndReturn(ledger([]domain.FinancialRecord{
			inflow(5000, inPeriod(jan)),
			outflow(2000, inPeriod(jan)),
			outflow(500),
		}))

	annual, err := service.AnnualCashFlow(ctx, 2024)

	require.NoError(t, err)
	require.Len(t, annual.Months, 12)
	assert.Equal(t, 1000.0, annual.OpeningBalance)
	assert.Equal(t, 4000.0, annual.Months[0].ClosingBalance)
	assert.Equal(t, 4000.0, annual.Months[1].ClosingBalance)
	assert.Equal(t, 3500.0, annual.Months[2].ClosingBalance)
	assert.Equal(t, 3500.0, annual.Months[11].ClosingBalance)
	assert.Equal(t, 3500.0, annual.ClosingBalance)
}

func TestService_AnnualIncomeStatement(t *testing.T) {
	ctx := context.Background()

	t.Run("Soma os meses do ano", func(t *testing.T) {
		service, records, _ := setupService(t)
		jan := domain.Period{Month: 1, Year: 2024}

		records.EXPECT().ListByPeriodRange(gomock.Any(), gomock.Any()).
			DoAndReturn(ledger([]domain.FinancialRecord{
				inflow(10000, inPeriod(jan)),
				inflow(20000),
				outflow(3000, withCostCenter("Comercial")),
			}))

		annual, err := service.AnnualIncomeStatement(ctx, 2024)

		require.NoError(t, err)
		require.Len(t, annual.Months, 12)
		assert.Equal(t, 30000.0, annual.GrossRevenue)
		assert.Equal(t, 3000.0, annual.OperatingExpenses)
		assert.Equal(t, 27000.0, annual.NetIncome)
		assert.Equal(t, 90.0, annual.NetMargin)
		assert.Equal(t, 17000.0, annual.Months[2].NetIncome)
	})

	t.Run("Ano inválido", func(t *testing.T) {
		service, _, _ := setupService(t)

		_, err := service.AnnualIncomeStatement(ctx, 0)

		assert.True(t, errors.Is(err, ErrInvalidYear))
	})
}

func TestService_CashPosition(t *testing.T) {
	ctx := context.Background()
	nov := domain.Period{Month: 11, Year: 2023}
	jan := domain.Period{Month: 1, Year: 2024}

	history := []domain.FinancialRecord{
		inflow(20000, inPeriod(nov)),
		outflow(5000, inPeriod(nov)),
		inflow(3000, inPeriod(jan)),
		outflow(1000, inPeriod(jan), forecast()),
	}

	t.Run("Sem saldo salvo soma todo o histórico sem zerar em janeiro", func(t *testing.T) {
		service, records, balances := setupService(t)
		balances.EXPECT().GetLatestInRange(gomock.Any(), firstPeriod, domain.Period{Month: 12, Year: 2023}).Return(nil, nil)
		records.EXPECT().ListByPeriodRange(gomock.Any(), gomock.Any()).DoAndReturn(ledger(history))

		cash, err := service.CashPosition(ctx, jan)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(18000).Equal(cash), "obtido %s", cash)
	})

	t.Run("Saldo salvo de outro ano é a base", func(t *testing.T) {
		service, records, balances := setupService(t)
		balances.EXPECT().GetLatestInRange(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&domain.PriorBalance{Period: nov, ClosingBalance: decimal.NewFromInt(40000)}, nil)
		status := domain.RecordStatusRealized
		records.EXPECT().
			ListByPeriodRange(gomock.Any(), domain.FinancialRecordFilters{From: domain.Period{Month: 12, Year: 2023}, To: jan, Status: &status}).
			DoAndReturn(ledger(history))

		cash, err := service.CashPosition(ctx, jan)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(43000).Equal(cash), "obtido %s", cash)
	})

	t.Run("Erro ao buscar saldo salvo", func(t *testing.T) {
		service, _, balances := setupService(t)
		balances.EXPECT().GetLatestInRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

		_, err := service.CashPosition(ctx, jan)
		assert.ErrorIs(t, err, ErrFetchBalance)
	})
}

func TestService_CategoryBreakdown(t *testing.T) {
	ctx := context.Background()
	feb := domain.Period{Month: 2, Year: 2024}

	service, records, _ := setupService(t)
	status := domain.RecordStatusRealized
	records.EXPECT().
		ListByPeriodRange(gomock.Any(), domain.FinancialRecordFilters{From: feb, To: march, Status: &status}).
		DoAndReturn(ledger([]domain.FinancialRecord{
			inflow(8000, withCategory("Mentoria")),
			inflow(4000, withCategory("Mentoria"), inPeriod(feb)),
			outflow(3000, withCategory("Salários")),
		}))

	breakdown, err := service.CategoryBreakdown(ctx, march)
	require.NoError(t, err)
	assert.Equal(t, feb, breakdown.PreviousPeriod)
	assert.Equal(t, 8000.0, breakdown.Inflows.Total)
	assert.Equal(t, 100.0, breakdown.Inflows.ChangePct)
	assert.Equal(t, 5000.0, breakdown.Result)

	t.Run("Período inválido", func(t *testing.T) {
		service, _, _ := setupService(t)
		_, err := service.CategoryBreakdown(ctx, domain.Period{Month: 13, Year: 2024})
		assert.ErrorIs(t, err, ErrInvalidPeriod)
	})
}
