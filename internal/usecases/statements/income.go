// Package statements monta a DRE e a DFC a partir dos lançamentos realizados
package statements

import (
	"github.com/medgm/analytics-api/internal/domain"
	"github.com/medgm/analytics-api/internal/usecases/classifying"
	"github.com/medgm/analytics-api/pkg/utils"
	"github.com/shopspring/decimal"
)

// Deduções nunca passam de 20% da receita bruta
var deductionCap = decimal.RequireFromString("0.2")

// incomeFigures guarda os valores da DRE sem arredondamento
type incomeFigures struct {
	gross          decimal.Decimal
	rawDeductions  decimal.Decimal
	deductions     decimal.Decimal
	net            decimal.Decimal
	cogs           decimal.Decimal
	grossProfit    decimal.Decimal
	commercial     decimal.Decimal
	administrative decimal.Decimal
	fixedOps       decimal.Decimal
	opex           decimal.Decimal
	ebitda         decimal.Decimal
	financial      decimal.Decimal
	netIncome      decimal.Decimal
	totalCosts     decimal.Decimal
	residual       decimal.Decimal
	capped         bool
	estimated      bool
}

// BuildIncomeStatement monta a DRE do período considerando apenas lançamentos realizados
func BuildIncomeStatement(period domain.Period, records []domain.FinancialRecord, classifier *classifying.Classifier) domain.IncomeStatement {
	return computeIncome(period, records, classifier).toStatement(period)
}

func computeIncome(period domain.Period, records []domain.FinancialRecord, classifier *classifying.Classifier) incomeFigures {
	f := incomeFigures{}
	payrollFallback := decimal.Zero

	for _, r := range records {
		if !r.IsRealized() || !r.Period.Equal(period) {
			continue
		}

		if r.IsInflow() {
			f.gross = f.gross.Add(r.Amount)
			continue
		}

		f.totalCosts = f.totalCosts.Add(r.Amount)

		if classifier.IsRevenueDeduction(r) {
			f.rawDeductions = f.rawDeductions.Add(r.Amount)
		}

		isFixed := classifying.MatchesCostType(r, domain.CostTypeFixed)
		isOperations := classifying.MatchesCostCenter(r, domain.CostCenterOperations)

		if classifying.MatchesCostType(r, domain.CostTypeVariable) || (isOperations && !isFixed) {
			f.cogs = f.cogs.Add(r.Amount)
		}

		switch {
		case classifying.MatchesCostCenter(r, domain.CostCenterCommercial):
			f.commercial = f.commercial.Add(r.Amount)
		case classifying.MatchesCostCenter(r, domain.CostCenterAdministrative):
			f.administrative = f.administrative.Add(r.Amount)
		case isOperations && isFixed:
			f.fixedOps = f.fixedOps.Add(r.Amount)
		}

		switch classifier.Classify(r) {
		case domain.BucketPayroll:
			payrollFallback = payrollFallback.Add(r.Amount)
		case domain.BucketFinancing:
			f.financial = f.financial.Add(r.Amount)
		}
	}

	limit := f.gross.Mul(deductionCap)
	f.deductions = f.rawDeductions
	if f.rawDeductions.GreaterThan(limit) {
		f.deductions = limit
		f.capped = true
	}

	f.net = f.gross.Sub(f.deductions)
	f.grossProfit = f.net.Sub(f.cogs)

	f.opex = utils.Sum(f.commercial, f.administrative, f.fixedOps)
	if f.opex.IsZero() && payrollFallback.IsPositive() {
		// Sem centro de custo informado, a folha é a melhor estimativa das despesas operacionais
		f.opex = payrollFallback
		f.estimated = true
	}

	f.ebitda = f.grossProfit.Sub(f.opex)
	f.netIncome = f.ebitda.Sub(f.financial)
	f.residual = utils.FloorZero(f.totalCosts.Sub(utils.Sum(f.deductions, f.cogs, f.opex, f.financial)))

	return f
}

// burn é a saída operacional usada no cálculo de runway
func (f incomeFigures) burn() decimal.Decimal {
	return utils.Sum(f.opex, f.cogs, f.financial)
}

func (f incomeFigures) add(other incomeFigures) incomeFigures {
	return incomeFigures{
		gross:          f.gross.Add(other.gross),
		rawDeductions:  f.rawDeductions.Add(other.rawDeductions),
		deductions:     f.deductions.Add(other.deductions),
		net:            f.net.Add(other.net),
		cogs:           f.cogs.Add(other.cogs),
		grossProfit:    f.grossProfit.Add(other.grossProfit),
		commercial:     f.commercial.Add(other.commercial),
		administrative: f.administrative.Add(other.administrative),
		fixedOps:       f.fixedOps.Add(other.fixedOps),
		opex:           f.opex.Add(other.opex),
		ebitda:         f.ebitda.Add(other.ebitda),
		financial:      f.financial.Add(other.financial),
		netIncome:      f.netIncome.Add(other.netIncome),
		totalCosts:     f.totalCosts.Add(other.totalCosts),
		residual:       f.residual.Add(other.residual),
		capped:         f.capped || other.capped,
		estimated:      f.estimated || other.estimated,
	}
}

func (f incomeFigures) toStatement(period domain.Period) domain.IncomeStatement {
	return domain.IncomeStatement{
		Period:           period,
		GrossRevenue:     utils.Money(f.gross),
		RawDeductions:    utils.Money(f.rawDeductions),
		Deductions:       utils.Money(f.deductions),
		DeductionsCapped: f.capped,
		NetRevenue:       utils.Money(f.net),
		COGS:             utils.Money(f.cogs),
		GrossProfit:      utils.Money(f.grossProfit),
		GrossMargin:      utils.Percentage(f.grossProfit, f.net),
		OperatingExpenses: domain.OperatingExpenses{
			Commercial:      utils.Money(f.commercial),
			Administrative:  utils.Money(f.administrative),
			FixedOperations: utils.Money(f.fixedOps),
			Total:           utils.Money(f.opex),
		},
		Estimated:            f.estimated,
		EBITDA:               utils.Money(f.ebitda),
		EBITDAMargin:         utils.Percentage(f.ebitda, f.net),
		FinancialExpenses:    utils.Money(f.financial),
		NetIncome:            utils.Money(f.netIncome),
		NetMargin:            utils.Percentage(f.netIncome, f.net),
		TotalCosts:           utils.Money(f.totalCosts),
		UnclassifiedResidual: utils.Money(f.residual),
		Composition: domain.Composition{
			COGSPct:     utils.Percentage(f.cogs, f.net),
			ExpensesPct: utils.Percentage(f.opex.Add(f.financial), f.net),
			NetPct:      utils.Percentage(f.netIncome, f.net),
		},
	}
}

func (f incomeFigures) toMonthly(period domain.Period) domain.MonthlyIncome {
	return domain.MonthlyIncome{
		Period:       period,
		GrossRevenue: utils.Money(f.gross),
		NetRevenue:   utils.Money(f.net),
		Costs:        utils.Money(f.totalCosts),
		EBITDA:       utils.Money(f.ebitda),
		NetIncome:    utils.Money(f.netIncome),
		NetMargin:    utils.Percentage(f.netIncome, f.net),
	}
}
