package goals

import (
	"fmt"
	"time"

	"github.com/medgm/analytics-api/internal/domain"
	"github.com/medgm/analytics-api/pkg/utils"
	"github.com/shopspring/decimal"
)

var (
	healthyRunway   = decimal.NewFromInt(6)
	cautionRunway   = decimal.NewFromInt(3)
	runwaySentinel  = decimal.NewFromInt(domain.RunwaySentinel)
	onTrackCoverage = decimal.RequireFromString("0.8")
	two             = decimal.NewFromInt(2)
)

// Runway calcula quantos meses o caixa cobre a queima média.
// Sem queima o resultado é o sentinela, nunca infinito.
func Runway(period domain.Period, cash, monthlyBurn decimal.Decimal) domain.Runway {
	result := domain.Runway{
		Period:      period,
		CashBalance: utils.Money(cash),
		MonthlyBurn: utils.Money(monthlyBurn),
	}

	if !monthlyBurn.IsPositive() {
		result.RunwayMonths = domain.RunwaySentinel
		result.Status = domain.RunwayHealthy
		return result
	}

	months := utils.FloorZero(cash.Div(monthlyBurn))
	if months.GreaterThan(runwaySentinel) {
		months = runwaySentinel
	}

	result.RunwayMonths = utils.Money(months)

	switch {
	case months.GreaterThanOrEqual(healthyRunway):
		result.Status = domain.RunwayHealthy
	case months.GreaterThanOrEqual(cautionRunway):
		result.Status = domain.RunwayCaution
	default:
		result.Status = domain.RunwayCritical
	}

	if months.LessThan(runwaySentinel) {
		zero := period
		for i := int64(0); i < months.IntPart(); i++ {
			zero = zero.Next()
		}
		result.ZeroCashPeriod = &zero
	}

	return result
}

// BreakEvenInput são os valores do mês usados no ponto de equilíbrio
type BreakEvenInput struct {
	Period          domain.Period
	TotalCosts      decimal.Decimal
	RealizedRevenue decimal.Decimal
	MRR             decimal.Decimal
	AverageTicket   decimal.Decimal
	DaysRemaining   int
}

// BreakEven indica quanto ainda falta faturar no mês para cobrir todas as saídas, previstas e realizadas
func BreakEven(in BreakEvenInput) domain.BreakEven {
	gap := utils.FloorZero(in.TotalCosts.Sub(in.RealizedRevenue))
	gapAfterMRR := utils.FloorZero(gap.Sub(in.MRR))

	salesNeeded := 0
	if in.AverageTicket.IsPositive() {
		salesNeeded = int(gapAfterMRR.Div(in.AverageTicket).Ceil().IntPart())
	}

	dailyTarget := decimal.Zero
	if in.DaysRemaining > 0 {
		dailyTarget = gapAfterMRR.Div(decimal.NewFromInt(int64(in.DaysRemaining)))
	}

	status := domain.BreakEvenCritical
	switch {
	case in.RealizedRevenue.GreaterThanOrEqual(in.TotalCosts):
		status = domain.BreakEvenSurplus
	case in.RealizedRevenue.GreaterThanOrEqual(in.TotalCosts.Mul(onTrackCoverage)):
		status = domain.BreakEvenOnTrack
	}

	return domain.BreakEven{
		Period:          in.Period,
		TotalCosts:      utils.Money(in.TotalCosts),
		RealizedRevenue: utils.Money(in.RealizedRevenue),
		MRR:             utils.Money(in.MRR),
		Gap:             utils.Money(gap),
		GapAfterMRR:     utils.Money(gapAfterMRR),
		AverageTicket:   utils.Money(in.AverageTicket),
		SalesNeeded:     salesNeeded,
		DaysRemaining:   in.DaysRemaining,
		DailyTarget:     utils.Money(dailyTarget),
		CoveragePct:     utils.Percentage(in.RealizedRevenue, in.TotalCosts),
		Status:          status,
	}
}

// CashProjectionInput parte do saldo do mês de referência
type CashProjectionInput struct {
	Period         domain.Period
	OpeningBalance decimal.Decimal
	MRR            decimal.Decimal
	MonthlyCosts   decimal.Decimal
	Months         int
	GeneratedAt    time.Time
}

// ProjectCash projeta os próximos meses assumindo receita igual ao MRR e custo igual à média mensal
func ProjectCash(in CashProjectionInput) (domain.CashProjection, error) {
	if in.Months < 1 {
		return domain.CashProjection{}, fmt.Errorf("%w: %d meses", ErrInvalidProjectionWindow, in.Months)
	}

	projection := domain.CashProjection{
		Period:         in.Period,
		OpeningBalance: utils.Money(in.OpeningBalance),
		MRR:            utils.Money(in.MRR),
		MonthlyCosts:   utils.Money(in.MonthlyCosts),
		Months:         make([]domain.CashProjectionMonth, 0, in.Months),
		GeneratedAt:    in.GeneratedAt,
	}

	balance := in.OpeningBalance
	result := in.MRR.Sub(in.MonthlyCosts)
	period := in.Period

	for i := 0; i < in.Months; i++ {
		period = period.Next()
		balance = balance.Add(result)

		projection.Months = append(projection.Months, domain.CashProjectionMonth{
			Period:         period,
			Inflows:        utils.Money(in.MRR),
			Outflows:       utils.Money(in.MonthlyCosts),
			Result:         utils.Money(result),
			ClosingBalance: utils.Money(balance),
			Status:         cashStatus(balance, result, in.MonthlyCosts),
		})
	}

	return projection, nil
}

func cashStatus(balance, result, monthlyCosts decimal.Decimal) domain.CashStatus {
	switch {
	case balance.IsNegative():
		return domain.CashCritical
	case result.IsNegative():
		return domain.CashAttention
	case balance.LessThan(monthlyCosts.Mul(two)):
		return domain.CashAlert
	default:
		return domain.CashHealthy
	}
}

// DaysElapsed conta os dias já corridos do período na data informada
func DaysElapsed(period domain.Period, now time.Time) int {
	current := domain.PeriodOf(now)
	switch {
	case period.Equal(current):
		return now.Day()
	case period.Before(current):
		return period.Days()
	default:
		return 0
	}
}

// DaysRemaining conta os dias que ainda faltam no período, sem contar o dia atual
func DaysRemaining(period domain.Period, now time.Time) int {
	return period.Days() - DaysElapsed(period, now)
}
