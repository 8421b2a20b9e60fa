package goals

import (
	"context"

	"github.com/medgm/analytics-api/infrastructure/repository"
	"github.com/medgm/analytics-api/internal/domain"
	"github.com/medgm/analytics-api/internal/usecases/statements"
	"github.com/medgm/analytics-api/pkg/apiErrors"
	"github.com/medgm/analytics-api/pkg/log"
	"github.com/medgm/analytics-api/pkg/utils"
	"github.com/shopspring/decimal"
)

// Janela móvel usada para queima média e MRR
const trailingMonths = 3

type ProjectionService interface {
	Runway(ctx context.Context, period domain.Period) (*domain.Runway, error)
	BreakEven(ctx context.Context, period domain.Period) (*domain.BreakEven, error)
	CashProjection(ctx context.Context, period domain.Period, months int) (*domain.CashProjection, error)
}

type Projections struct {
	statementService statements.StatementService
	saleRepository   repository.SaleRepository
	clock            utils.Clock
	settings         Settings
}

func NewProjectionService(
	statementService statements.StatementService,
	saleRepository repository.SaleRepository,
	clock utils.Clock,
	settings Settings,
) ProjectionService {
	return &Projections{
		statementService: statementService,
		saleRepository:   saleRepository,
		clock:            clock,
		settings:         settings,
	}
}

func (p *Projections) Runway(ctx context.Context, period domain.Period) (*domain.Runway, error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}

	// Caixa acumulado, para que o runway não zere na virada do ano
	cash, err := p.statementService.CashPosition(ctx, period)
	if err != nil {
		return nil, err
	}

	burn, err := p.statementService.TrailingBurn(ctx, period, trailingMonths)
	if err != nil {
		return nil, err
	}

	runway := Runway(period, cash, burn)
	if runway.Status == domain.RunwayCritical {
		log.ForContext(ctx).WithFields(log.Fields{
			"period":        period.String(),
			"runway_months": runway.RunwayMonths,
		}).Warn("Runway crítico")
	}

	return &runway, nil
}

func (p *Projections) BreakEven(ctx context.Context, period domain.Period) (*domain.BreakEven, error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}

	costs, err := p.statementService.TotalCosts(ctx, period)
	if err != nil {
		return nil, err
	}

	from := period.StartOfYear()
	if mrrStart := trailingStart(period); mrrStart.Before(from) {
		from = mrrStart
	}

	sales, err := p.listSales(ctx, from, period)
	if err != nil {
		return nil, err
	}

	revenue := decimal.Zero
	yearTotal := decimal.Zero
	yearCount := 0
	for _, sale := range sales {
		if sale.Period.Equal(period) {
			revenue = revenue.Add(sale.NetAmount)
		}
		if sale.Period.Year == period.Year && !period.Before(sale.Period) {
			yearTotal = yearTotal.Add(sale.NetAmount)
			yearCount++
		}
	}

	ticket := decimal.Zero
	if yearCount > 0 {
		ticket = yearTotal.Div(decimal.NewFromInt(int64(yearCount)))
	}

	result := BreakEven(BreakEvenInput{
		Period:          period,
		TotalCosts:      costs,
		RealizedRevenue: revenue,
		MRR:             recurringAverage(sales, period),
		AverageTicket:   ticket,
		DaysRemaining:   DaysRemaining(period, p.clock.Now()),
	})

	return &result, nil
}

func (p *Projections) CashProjection(ctx context.Context, period domain.Period, months int) (*domain.CashProjection, error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}

	if months == 0 {
		months = p.settings.DefaultHorizonMonths
	}
	if months < 1 || months > p.settings.MaxHorizonMonths {
		return nil, NewGoalError(ErrInvalidProjectionWindow, apiErrors.ErrInvalidRequest, "horizonte fora do limite")
	}

	opening, err := p.statementService.CashPosition(ctx, period)
	if err != nil {
		return nil, err
	}

	costs, err := p.statementService.TrailingBurn(ctx, period, trailingMonths)
	if err != nil {
		return nil, err
	}

	sales, err := p.listSales(ctx, trailingStart(period), period)
	if err != nil {
		return nil, err
	}

	projection, err := ProjectCash(CashProjectionInput{
		Period:         period,
		OpeningBalance: opening,
		MRR:            recurringAverage(sales, period),
		MonthlyCosts:   costs,
		Months:         months,
		GeneratedAt:    p.clock.Now(),
	})
	if err != nil {
		return nil, NewGoalError(err, apiErrors.ErrInvalidRequest, "")
	}

	return &projection, nil
}

func (p *Projections) listSales(ctx context.Context, from, to domain.Period) ([]domain.Sale, error) {
	sales, err := p.saleRepository.ListByPeriodRange(ctx, from, to)
	if err != nil {
		return nil, NewGoalError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return sales, nil
}

func trailingStart(period domain.Period) domain.Period {
	start := period
	for i := 1; i < trailingMonths; i++ {
		start = start.Previous()
	}
	return start
}

// recurringAverage é o MRR: média mensal do líquido das vendas recorrentes nos últimos três meses
func recurringAverage(sales []domain.Sale, period domain.Period) decimal.Decimal {
	start := trailingStart(period)
	total := decimal.Zero
	for _, sale := range sales {
		if !sale.IsRecurring() || sale.Period.Before(start) || period.Before(sale.Period) {
			continue
		}
		total = total.Add(sale.NetAmount)
	}
	return total.Div(decimal.NewFromInt(trailingMonths))
}
