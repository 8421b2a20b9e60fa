package funnel

import (
	"context"
	"errors"
	"testing"

	"github.com/medgm/analytics-api/infrastructure/repository/mocks"
	"github.com/medgm/analytics-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupService(t *testing.T) (FunnelService, *mocks.MockFunnelMetricRepository, *mocks.MockSaleRepository) {
	ctrl := gomock.NewController(t)
	metrics := mocks.NewMockFunnelMetricRepository(ctrl)
	sales := mocks.NewMockSaleRepository(ctrl)
	return NewService(metrics, sales), metrics, sales
}

func TestService_Report(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		period   domain.Period
		groupBy  domain.Grouping
		setup    func(metrics *mocks.MockFunnelMetricRepository, sales *mocks.MockSaleRepository)
		validate func(t *testing.T, report *domain.FunnelReport, err error)
	}{
		{
			name:    "Relatório por closer com conciliação pelo registro de vendas",
			period:  march,
			groupBy: domain.GroupingActor,
			setup: func(metrics *mocks.MockFunnelMetricRepository, sales *mocks.MockSaleRepository) {
				metrics.EXPECT().ListSocialSelling(gomock.Any(), march, march).Return(nil, nil)
				metrics.EXPECT().ListSDR(gomock.Any(), march, march).Return(nil, nil)
				metrics.EXPECT().ListCloser(gomock.Any(), march, march).
					Return([]domain.CloserMetric{closer("A", "Instagram", 3, 0, 0)}, nil)
				sales.EXPECT().ListByPeriodRange(gomock.Any(), march, march).
					Return([]domain.Sale{sale("A", "Instagram", 12000)}, nil)
			},
			validate: func(t *testing.T, report *domain.FunnelReport, err error) {
				require.NoError(t, err)
				require.Len(t, report.Rows, 1)
				assert.Equal(t, domain.ReconciledFromLedger, report.Rows[0].ReconciledFrom)
				assert.Equal(t, 12000.0, report.Rows[0].Revenue)
			},
		},
		{
			name:    "Erro ao buscar métricas",
			period:  march,
			groupBy: domain.GroupingNone,
			setup: func(metrics *mocks.MockFunnelMetricRepository, sales *mocks.MockSaleRepository) {
				metrics.EXPECT().ListSocialSelling(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
			},
			validate: func(t *testing.T, report *domain.FunnelReport, err error) {
				assert.Nil(t, report)
				assert.ErrorIs(t, err, ErrFetchMetrics)
			},
		},
		{
			name:    "Erro ao buscar vendas",
			period:  march,
			groupBy: domain.GroupingNone,
			setup: func(metrics *mocks.MockFunnelMetricRepository, sales *mocks.MockSaleRepository) {
				metrics.EXPECT().ListSocialSelling(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				metrics.EXPECT().ListSDR(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				metrics.EXPECT().ListCloser(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				sales.EXPECT().ListByPeriodRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
			},
			validate: func(t *testing.T, report *domain.FunnelReport, err error) {
				assert.ErrorIs(t, err, ErrFetchSales)
			},
		},
		{
			name:    "Período inválido não consulta o banco",
			period:  domain.Period{Month: 13, Year: 2024},
			groupBy: domain.GroupingNone,
			setup:   func(metrics *mocks.MockFunnelMetricRepository, sales *mocks.MockSaleRepository) {},
			validate: func(t *testing.T, report *domain.FunnelReport, err error) {
				assert.ErrorIs(t, err, ErrInvalidPeriod)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, metrics, sales := setupService(t)
			tt.setup(metrics, sales)

			report, err := service.Report(ctx, tt.period, tt.groupBy)

			tt.validate(t, report, err)
		})
	}
}

func TestService_History(t *testing.T) {
	ctx := context.Background()
	service, metrics, sales := setupService(t)
	jan := domain.Period{Month: 1, Year: 2024}
	dec := domain.Period{Month: 12, Year: 2024}

	metrics.EXPECT().ListSocialSelling(gomock.Any(), jan, dec).Return(nil, nil)
	metrics.EXPECT().ListSDR(gomock.Any(), jan, dec).
		Return([]domain.SDRMetric{{Period: jan, Actor: "Ana", LeadsIn: 10, MeetingsScheduled: 5}}, nil)
	metrics.EXPECT().ListCloser(gomock.Any(), jan, dec).
		Return([]domain.CloserMetric{closer("A", "Instagram", 2, 1, 3000)}, nil)
	sales.EXPECT().ListByPeriodRange(gomock.Any(), jan, dec).Return(nil, nil)

	history, err := service.History(ctx, 2024)

	require.NoError(t, err)
	require.Len(t, history.Months, 2)
	assert.Equal(t, jan, history.Months[0].Period)
	assert.Equal(t, 50.0, history.Months[0].Funnel.Rates.SchedulingRate)
	assert.Equal(t, march, history.Months[1].Period)
	assert.Equal(t, 3000.0, history.Months[1].Funnel.Revenue)
}

func TestService_CloserRanking(t *testing.T) {
	ctx := context.Background()
	service, metrics, sales := setupService(t)
	feb := domain.Period{Month: 2, Year: 2024}

	inFeb := func(m domain.CloserMetric) domain.CloserMetric {
		m.Period = feb
		return m
	}

	metrics.EXPECT().ListCloser(gomock.Any(), feb, march).Return([]domain.CloserMetric{
		inFeb(closer("Ana", "Instagram", 5, 3, 9000)),
		inFeb(closer("Bruno", "Instagram", 5, 1, 2000)),
		closer("Ana", "Instagram", 5, 1, 1000),
		closer("Bruno", "Instagram", 5, 2, 4000),
	}, nil)
	sales.EXPECT().ListByPeriodRange(gomock.Any(), feb, march).
		Return([]domain.Sale{{Period: march, Actor: "Carla", GrossAmount: decimal.NewFromInt(2500)}}, nil)

	ranking, err := service.CloserRanking(ctx, march)

	require.NoError(t, err)
	require.Len(t, ranking.Ranking, 3)

	assert.Equal(t, "Bruno", ranking.Ranking[0].Actor)
	assert.Equal(t, 1, ranking.Ranking[0].Position)
	assert.Equal(t, 2, ranking.Ranking[0].PreviousPosition)
	assert.Equal(t, 1, ranking.Ranking[0].PositionChange)

	assert.Equal(t, "Carla", ranking.Ranking[1].Actor)
	assert.Equal(t, 0, ranking.Ranking[1].PreviousPosition)

	assert.Equal(t, "Ana", ranking.Ranking[2].Actor)
	assert.Equal(t, -2, ranking.Ranking[2].PositionChange)
}
