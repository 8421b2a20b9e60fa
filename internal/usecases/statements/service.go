package statements

import (
	"context"
	"fmt"

	"github.com/medgm/analytics-api/infrastructure/repository"
	"github.com/medgm/analytics-api/internal/domain"
	"github.com/medgm/analytics-api/internal/usecases/classifying"
	"github.com/medgm/analytics-api/pkg/apiErrors"
	"github.com/medgm/analytics-api/pkg/log"
	"github.com/medgm/analytics-api/pkg/utils"
	"github.com/shopspring/decimal"
)

// Primeiro período aceito; marca o início do histórico nas buscas sem limite inferior
var firstPeriod = domain.Period{Month: 1, Year: 1}

type StatementService interface {
	IncomeStatement(ctx context.Context, period domain.Period) (*domain.IncomeStatement, error)
	CashFlowStatement(ctx context.Context, period domain.Period) (*domain.CashFlowStatement, error)
	AnnualIncomeStatement(ctx context.Context, year int) (*domain.AnnualIncomeStatement, error)
	AnnualCashFlow(ctx context.Context, year int) (*domain.AnnualCashFlow, error)
	OpeningBalance(ctx context.Context, period domain.Period) (decimal.Decimal, error)
	ClosingBalance(ctx context.Context, period domain.Period) (decimal.Decimal, error)
	CashPosition(ctx context.Context, period domain.Period) (decimal.Decimal, error)
	CategoryBreakdown(ctx context.Context, period domain.Period) (*domain.CategoryBreakdown, error)
	SnapshotClosingBalance(ctx context.Context, period domain.Period) (*domain.PriorBalance, error)
	TrailingBurn(ctx context.Context, period domain.Period, months int) (decimal.Decimal, error)
	TotalCosts(ctx context.Context, period domain.Period) (decimal.Decimal, error)
	AvailablePeriods(ctx context.Context) (*domain.AvailablePeriods, error)
}

type Service struct {
	recordRepository  repository.FinancialRecordRepository
	balanceRepository repository.PriorBalanceRepository
	classifier        *classifying.Classifier
	clock             utils.Clock
}

func NewService(
	recordRepository repository.FinancialRecordRepository,
	balanceRepository repository.PriorBalanceRepository,
	classifier *classifying.Classifier,
	clock utils.Clock,
) StatementService {
	return &Service{
		recordRepository:  recordRepository,
		balanceRepository: balanceRepository,
		classifier:        classifier,
		clock:             clock,
	}
}

func (s *Service) IncomeStatement(ctx context.Context, period domain.Period) (*domain.IncomeStatement, error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}

	records, err := s.fetchRealized(ctx, period, period)
	if err != nil {
		return nil, err
	}

	statement := BuildIncomeStatement(period, records, s.classifier)

	logger := log.ForPeriod(ctx, period)
	if statement.DeductionsCapped {
		logger.Warnf("Deduções limitadas a 20%% da receita bruta (informado: %.2f)", statement.RawDeductions)
	}
	if statement.Estimated {
		logger.Warn("Despesas operacionais estimadas pela folha: nenhum centro de custo operacional encontrado")
	}
	logger.Info("DRE gerada")

	return &statement, nil
}

func (s *Service) CashFlowStatement(ctx context.Context, period domain.Period) (*domain.CashFlowStatement, error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}

	opening, err := s.OpeningBalance(ctx, period)
	if err != nil {
		return nil, err
	}

	records, err := s.fetchRealized(ctx, period, period)
	if err != nil {
		return nil, err
	}

	statement := BuildCashFlowStatement(period, records, opening, s.classifier)

	log.ForPeriod(ctx, period).Info("DFC gerada")

	return &statement, nil
}

// OpeningBalance parte do saldo salvo mais recente entre dezembro do ano anterior e o mês
// anterior ao período, e soma os lançamentos realizados dos meses seguintes a ele.
// Sem saldo salvo, a reconstrução começa em janeiro com saldo zero.
func (s *Service) OpeningBalance(ctx context.Context, period domain.Period) (decimal.Decimal, error) {
	if err := validatePeriod(period); err != nil {
		return decimal.Zero, err
	}

	windowStart := domain.Period{Month: 12, Year: period.Year - 1}
	end := period.Previous()

	snapshot, err := s.balanceRepository.GetLatestInRange(ctx, windowStart, end)
	if err != nil {
		return decimal.Zero, NewStatementError(ErrFetchBalance, apiErrors.ErrDatabaseOperation, period.String(), err.Error())
	}

	base := decimal.Zero
	from := period.StartOfYear()
	if snapshot != nil {
		base = snapshot.ClosingBalance
		from = snapshot.Period.Next()
	}

	if end.Before(from) {
		return base, nil
	}

	records, err := s.fetchRealized(ctx, from, end)
	if err != nil {
		return decimal.Zero, err
	}

	return base.Add(realizedNet(records)), nil
}

func (s *Service) ClosingBalance(ctx context.Context, period domain.Period) (decimal.Decimal, error) {
	opening, err := s.OpeningBalance(ctx, period)
	if err != nil {
		return decimal.Zero, err
	}

	records, err := s.fetchRealized(ctx, period, period)
	if err != nil {
		return decimal.Zero, err
	}

	return opening.Add(computeCashFlow(period, records, s.classifier).variation()), nil
}

// CashPosition é o caixa acumulado ao fim do período, sem reinício em janeiro.
// Parte do saldo salvo mais recente antes do período e, sem nenhum, soma todo o histórico realizado.
func (s *Service) CashPosition(ctx context.Context, period domain.Period) (decimal.Decimal, error) {
	if err := validatePeriod(period); err != nil {
		return decimal.Zero, err
	}

	snapshot, err := s.balanceRepository.GetLatestInRange(ctx, firstPeriod, period.Previous())
	if err != nil {
		return decimal.Zero, NewStatementError(ErrFetchBalance, apiErrors.ErrDatabaseOperation, period.String(), err.Error())
	}

	base := decimal.Zero
	from := firstPeriod
	if snapshot != nil {
		base = snapshot.ClosingBalance
		from = snapshot.Period.Next()
	}

	records, err := s.fetchRealized(ctx, from, period)
	if err != nil {
		return decimal.Zero, err
	}

	return base.Add(realizedNet(records)), nil
}

// CategoryBreakdown abre o mês por categoria e compara com o mês anterior
func (s *Service) CategoryBreakdown(ctx context.Context, period domain.Period) (*domain.CategoryBreakdown, error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}

	records, err := s.fetchRealized(ctx, period.Previous(), period)
	if err != nil {
		return nil, err
	}

	breakdown := BuildCategoryBreakdown(period, records)

	log.ForPeriod(ctx, period).Info("Detalhamento por categoria gerado")

	return &breakdown, nil
}

// SnapshotClosingBalance grava o saldo final do período. Rodar de novo apenas sobrescreve o valor.
func (s *Service) SnapshotClosingBalance(ctx context.Context, period domain.Period) (*domain.PriorBalance, error) {
	closing, err := s.ClosingBalance(ctx, period)
	if err != nil {
		return nil, err
	}

	balance := &domain.PriorBalance{
		Period:         period,
		ClosingBalance: closing,
		ComputedAt:     s.clock.Now(),
	}

	if err := s.balanceRepository.SaveOrUpdate(ctx, balance); err != nil {
		return nil, NewStatementError(ErrSaveBalance, apiErrors.ErrDatabaseOperation, period.String(), err.Error())
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"period":          period.String(),
		"closing_balance": closing.StringFixed(2),
	}).Info("Saldo final do período salvo")

	return balance, nil
}

func (s *Service) AnnualIncomeStatement(ctx context.Context, year int) (*domain.AnnualIncomeStatement, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}

	from := domain.Period{Month: 1, Year: year}
	to := domain.Period{Month: 12, Year: year}

	records, err := s.fetchRealized(ctx, from, to)
	if err != nil {
		return nil, err
	}

	result := &domain.AnnualIncomeStatement{
		Year:   year,
		Months: make([]domain.MonthlyIncome, 0, 12),
	}

	total := incomeFigures{}
	for _, period := range domain.PeriodsBetween(from, to) {
		figures := computeIncome(period, records, s.classifier)
		total = total.add(figures)
		result.Months = append(result.Months, figures.toMonthly(period))
	}

	result.GrossRevenue = utils.Money(total.gross)
	result.GrossRevenueAmount = total.gross
	result.NetRevenue = utils.Money(total.net)
	result.COGS = utils.Money(total.cogs)
	result.OperatingExpenses = utils.Money(total.opex)
	result.FinancialExpenses = utils.Money(total.financial)
	result.EBITDA = utils.Money(total.ebitda)
	result.NetIncome = utils.Money(total.netIncome)
	result.NetMargin = utils.Percentage(total.netIncome, total.net)

	return result, nil
}

// AnnualCashFlow acumula o saldo mês a mês a partir do saldo de abertura de janeiro
func (s *Service) AnnualCashFlow(ctx context.Context, year int) (*domain.AnnualCashFlow, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}

	from := domain.Period{Month: 1, Year: year}
	to := domain.Period{Month: 12, Year: year}

	opening, err := s.OpeningBalance(ctx, from)
	if err != nil {
		return nil, err
	}

	records, err := s.fetchRealized(ctx, from, to)
	if err != nil {
		return nil, err
	}

	result := &domain.AnnualCashFlow{
		Year:           year,
		OpeningBalance: utils.Money(opening),
		Months:         make([]domain.MonthlyCashFlow, 0, 12),
	}

	balance := opening
	operating, investing, financing := decimal.Zero, decimal.Zero, decimal.Zero
	for _, period := range domain.PeriodsBetween(from, to) {
		figures := computeCashFlow(period, records, s.classifier)
		variation := figures.variation()
		balance = balance.Add(variation)

		operating = operating.Add(figures.operating())
		investing = investing.Add(figures.investing())
		financing = financing.Add(figures.financing())

		result.Months = append(result.Months, domain.MonthlyCashFlow{
			Period:           period,
			Operating:        utils.Money(figures.operating()),
			Investing:        utils.Money(figures.investing()),
			Financing:        utils.Money(figures.financing()),
			NetCashVariation: utils.Money(variation),
			ClosingBalance:   utils.Money(balance),
		})
	}

	result.Operating = utils.Money(operating)
	result.Investing = utils.Money(investing)
	result.Financing = utils.Money(financing)
	result.ClosingBalance = utils.Money(balance)
	result.ClosingBalanceAmount = balance

	return result, nil
}

// TrailingBurn é a média de despesas operacionais, custo da venda e despesas financeiras
// nos últimos meses terminando no período informado
func (s *Service) TrailingBurn(ctx context.Context, period domain.Period, months int) (decimal.Decimal, error) {
	if err := validatePeriod(period); err != nil {
		return decimal.Zero, err
	}
	if months < 1 {
		return decimal.Zero, fmt.Errorf("months must be positive: %d", months)
	}

	from := period
	for i := 1; i < months; i++ {
		from = from.Previous()
	}

	records, err := s.fetchRealized(ctx, from, period)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, p := range domain.PeriodsBetween(from, period) {
		total = total.Add(computeIncome(p, records, s.classifier).burn())
	}

	return total.Div(decimal.NewFromInt(int64(months))), nil
}

// TotalCosts soma todas as saídas do período, previstas e realizadas
func (s *Service) TotalCosts(ctx context.Context, period domain.Period) (decimal.Decimal, error) {
	if err := validatePeriod(period); err != nil {
		return decimal.Zero, err
	}

	records, err := s.fetch(ctx, domain.FinancialRecordFilters{From: period, To: period})
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, r := range records {
		if r.IsOutflow() {
			total = total.Add(r.Amount)
		}
	}

	return total, nil
}

func (s *Service) AvailablePeriods(ctx context.Context) (*domain.AvailablePeriods, error) {
	periods, err := s.recordRepository.ListAvailablePeriods(ctx)
	if err != nil {
		return nil, NewStatementError(ErrFetchPeriods, apiErrors.ErrDatabaseOperation, "", err.Error())
	}
	return periods, nil
}

func (s *Service) fetchRealized(ctx context.Context, from, to domain.Period) ([]domain.FinancialRecord, error) {
	status := domain.RecordStatusRealized
	return s.fetch(ctx, domain.FinancialRecordFilters{From: from, To: to, Status: &status})
}

// fetch lê os lançamentos e rejeita o cálculo inteiro se algum estiver malformado
func (s *Service) fetch(ctx context.Context, filters domain.FinancialRecordFilters) ([]domain.FinancialRecord, error) {
	span := fmt.Sprintf("%s..%s", filters.From, filters.To)

	records, err := s.recordRepository.ListByPeriodRange(ctx, filters)
	if err != nil {
		return nil, NewStatementError(ErrFetchRecords, apiErrors.ErrDatabaseOperation, span, err.Error())
	}

	if err := domain.ValidateRecords(records); err != nil {
		log.ForContext(ctx).WithError(err).WithField("period", span).Error("Lançamento inválido encontrado")
		return nil, NewStatementError(ErrInvalidRecord, apiErrors.ErrInvalidData, span, err.Error())
	}

	return records, nil
}

func validatePeriod(period domain.Period) error {
	if err := period.Validate(); err != nil {
		return NewStatementError(ErrInvalidPeriod, apiErrors.ErrInvalidPeriod, period.String(), err.Error())
	}
	return nil
}

func validateYear(year int) error {
	if year < 1 || year > 9999 {
		return NewStatementError(ErrInvalidYear, apiErrors.ErrInvalidPeriod, "", fmt.Sprintf("ano %d", year))
	}
	return nil
}
