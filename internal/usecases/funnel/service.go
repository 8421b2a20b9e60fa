package funnel

import (
	"context"

	"github.com/medgm/analytics-api/infrastructure/repository"
	"github.com/medgm/analytics-api/internal/domain"
	"github.com/medgm/analytics-api/pkg/log"
	"github.com/pkg/errors"
)

type FunnelService interface {
	Report(ctx context.Context, period domain.Period, groupBy domain.Grouping) (*domain.FunnelReport, error)
	History(ctx context.Context, year int) (*domain.FunnelHistory, error)
	CloserRanking(ctx context.Context, period domain.Period) (*domain.CloserRankingResponse, error)
}

type Service struct {
	metricRepository repository.FunnelMetricRepository
	saleRepository   repository.SaleRepository
}

func NewService(metricRepository repository.FunnelMetricRepository, saleRepository repository.SaleRepository) FunnelService {
	return &Service{
		metricRepository: metricRepository,
		saleRepository:   saleRepository,
	}
}

func (s *Service) Report(ctx context.Context, period domain.Period, groupBy domain.Grouping) (*domain.FunnelReport, error) {
	if err := period.Validate(); err != nil {
		return nil, errors.Wrap(ErrInvalidPeriod, err.Error())
	}

	input, err := s.load(ctx, period, period, true)
	if err != nil {
		return nil, err
	}

	report, err := Aggregate(period, groupBy, input)
	if err != nil {
		return nil, err
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"period":   period.String(),
		"group_by": string(groupBy),
	})
	for _, row := range report.Rows {
		if row.ReconciledFrom != "" {
			logger.Warnf("Vendas de %s vieram do registro de vendas: funil sem vendas", row.Key)
		}
		if row.LedgerDivergent {
			logger.Warnf("Vendas do funil divergem do registro de vendas para %s (%d x %d)", row.Key, row.Sales, row.LedgerSales)
		}
	}
	logger.Info("Relatório de funil gerado")

	return &report, nil
}

// History monta o funil geral de cada mês do ano que tem algum registro
func (s *Service) History(ctx context.Context, year int) (*domain.FunnelHistory, error) {
	from := domain.Period{Month: 1, Year: year}
	to := domain.Period{Month: 12, Year: year}
	if err := from.Validate(); err != nil {
		return nil, errors.Wrap(ErrInvalidPeriod, err.Error())
	}

	input, err := s.load(ctx, from, to, true)
	if err != nil {
		return nil, err
	}

	history := &domain.FunnelHistory{
		Year:   year,
		Months: make([]domain.FunnelHistoryEntry, 0),
	}

	for _, period := range domain.PeriodsBetween(from, to) {
		if !input.HasData(period) {
			continue
		}

		report, err := Aggregate(period, domain.GroupingNone, input)
		if err != nil {
			return nil, err
		}

		history.Months = append(history.Months, domain.FunnelHistoryEntry{
			Period: period,
			Funnel: report.Rows[0],
		})
	}

	return history, nil
}

func (s *Service) load(ctx context.Context, from, to domain.Period, withSocialSelling bool) (FunnelInput, error) {
	input := FunnelInput{}
	var err error

	if withSocialSelling {
		input.SocialSelling, err = s.metricRepository.ListSocialSelling(ctx, from, to)
		if err != nil {
			return FunnelInput{}, errors.Wrap(ErrFetchMetrics, err.Error())
		}

		input.SDR, err = s.metricRepository.ListSDR(ctx, from, to)
		if err != nil {
			return FunnelInput{}, errors.Wrap(ErrFetchMetrics, err.Error())
		}
	}

	input.Closer, err = s.metricRepository.ListCloser(ctx, from, to)
	if err != nil {
		return FunnelInput{}, errors.Wrap(ErrFetchMetrics, err.Error())
	}

	input.Sales, err = s.saleRepository.ListByPeriodRange(ctx, from, to)
	if err != nil {
		return FunnelInput{}, errors.Wrap(ErrFetchSales, err.Error())
	}

	return input, nil
}
