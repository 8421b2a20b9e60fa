package goals

import (
	"context"
	"errors"
	"testing"

	repoMocks "github.com/medgm/analytics-api/infrastructure/repository/mocks"
	"github.com/medgm/analytics-api/internal/domain"
	statementMocks "github.com/medgm/analytics-api/internal/usecases/statements/mocks"
	"github.com/medgm/analytics-api/pkg/apiErrors"
	"github.com/medgm/analytics-api/pkg/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupProjections(t *testing.T) (*Projections, *statementMocks.MockStatementService, *repoMocks.MockSaleRepository) {
	ctrl := gomock.NewController(t)
	statements := statementMocks.NewMockStatementService(ctrl)
	sales := repoMocks.NewMockSaleRepository(ctrl)

	projections := NewProjectionService(statements, sales, utils.FixedClock{At: fixedNow}, testSettings).(*Projections)
	return projections, statements, sales
}

func netSale(period domain.Period, net int64, revenueType string) domain.Sale {
	return domain.Sale{
		Period:      period,
		RevenueType: revenueType,
		GrossAmount: decimal.NewFromInt(net),
		NetAmount:   decimal.NewFromInt(net),
	}
}

func TestProjections_Runway(t *testing.T) {
	ctx := context.Background()

	t.Run("Usa o caixa acumulado e a queima média de três meses", func(t *testing.T) {
		projections, statements, _ := setupProjections(t)
		statements.EXPECT().CashPosition(gomock.Any(), march).Return(decimal.NewFromInt(45000), nil)
		statements.EXPECT().TrailingBurn(gomock.Any(), march, 3).Return(decimal.NewFromInt(10000), nil)

		runway, err := projections.Runway(ctx, march)
		require.NoError(t, err)
		assert.Equal(t, 4.5, runway.RunwayMonths)
		assert.Equal(t, domain.RunwayCaution, runway.Status)
	})

	t.Run("Erro no saldo é repassado", func(t *testing.T) {
		projections, statements, _ := setupProjections(t)
		failure := errors.New("boom")
		statements.EXPECT().CashPosition(gomock.Any(), march).Return(decimal.Zero, failure)

		_, err := projections.Runway(ctx, march)
		assert.ErrorIs(t, err, failure)
	})
}

func TestProjections_BreakEven(t *testing.T) {
	ctx := context.Background()
	projections, statements, sales := setupProjections(t)

	jan := domain.Period{Month: 1, Year: 2024}
	feb := domain.Period{Month: 2, Year: 2024}
	statements.EXPECT().TotalCosts(gomock.Any(), march).Return(decimal.NewFromInt(60000), nil)
	sales.EXPECT().ListByPeriodRange(gomock.Any(), jan, march).Return([]domain.Sale{
		netSale(jan, 6000, domain.RevenueTypeRecurring),
		netSale(feb, 6000, domain.RevenueTypeRecurring),
		netSale(march, 6000, domain.RevenueTypeRecurring),
		netSale(march, 12000, domain.RevenueTypeOneOff),
	}, nil)

	result, err := projections.BreakEven(ctx, march)
	require.NoError(t, err)

	assert.Equal(t, 18000.0, result.RealizedRevenue)
	assert.Equal(t, 6000.0, result.MRR)
	assert.Equal(t, 7500.0, result.AverageTicket)
	assert.Equal(t, 42000.0, result.Gap)
	assert.Equal(t, 36000.0, result.GapAfterMRR)
	assert.Equal(t, 5, result.SalesNeeded)
	assert.Equal(t, 16, result.DaysRemaining)
	assert.Equal(t, 2250.0, result.DailyTarget)
	assert.Equal(t, domain.BreakEvenCritical, result.Status)
}

func TestProjections_BreakEvenInJanuaryLooksBackForMRR(t *testing.T) {
	ctx := context.Background()
	projections, statements, sales := setupProjections(t)

	jan := domain.Period{Month: 1, Year: 2025}
	nov := domain.Period{Month: 11, Year: 2024}
	statements.EXPECT().TotalCosts(gomock.Any(), jan).Return(decimal.NewFromInt(10000), nil)
	sales.EXPECT().ListByPeriodRange(gomock.Any(), nov, jan).Return([]domain.Sale{
		netSale(nov, 9000, domain.RevenueTypeRecurring),
		netSale(jan, 3000, domain.RevenueTypeOneOff),
	}, nil)

	result, err := projections.BreakEven(ctx, jan)
	require.NoError(t, err)

	assert.Equal(t, 3000.0, result.MRR)
	// Ticket médio considera só o ano corrente
	assert.Equal(t, 3000.0, result.AverageTicket)
	assert.Equal(t, 31, result.DaysRemaining)
}

func TestProjections_CashProjection(t *testing.T) {
	ctx := context.Background()

	t.Run("Usa o horizonte padrão", func(t *testing.T) {
		projections, statements, sales := setupProjections(t)
		statements.EXPECT().CashPosition(gomock.Any(), march).Return(decimal.NewFromInt(30000), nil)
		statements.EXPECT().TrailingBurn(gomock.Any(), march, 3).Return(decimal.NewFromInt(8000), nil)
		sales.EXPECT().ListByPeriodRange(gomock.Any(), domain.Period{Month: 1, Year: 2024}, march).
			Return([]domain.Sale{netSale(march, 15000, domain.RevenueTypeRecurring)}, nil)

		projection, err := projections.CashProjection(ctx, march, 0)
		require.NoError(t, err)
		require.Len(t, projection.Months, testSettings.DefaultHorizonMonths)
		assert.Equal(t, 5000.0, projection.MRR)
		assert.Equal(t, 27000.0, projection.Months[0].ClosingBalance)
		assert.Equal(t, domain.CashAttention, projection.Months[0].Status)
		assert.Equal(t, fixedNow, projection.GeneratedAt)
	})

	t.Run("Horizonte acima do máximo", func(t *testing.T) {
		projections, _, _ := setupProjections(t)
		_, err := projections.CashProjection(ctx, march, 13)
		assertGoalError(t, err, ErrInvalidProjectionWindow, apiErrors.ErrInvalidRequest)
	})

	t.Run("Horizonte negativo", func(t *testing.T) {
		projections, _, _ := setupProjections(t)
		_, err := projections.CashProjection(ctx, march, -1)
		assertGoalError(t, err, ErrInvalidProjectionWindow, apiErrors.ErrInvalidRequest)
	})
}
