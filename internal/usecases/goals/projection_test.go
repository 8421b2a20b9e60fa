package goals

import (
	"testing"
	"time"

	"github.com/medgm/analytics-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestRunway(t *testing.T) {
	tests := []struct {
		name     string
		cash     int64
		burn     int64
		months   float64
		status   domain.RunwayStatus
		zeroCash *domain.Period
	}{
		{name: "Seis meses de caixa é saudável", cash: 60000, burn: 10000, months: 6, status: domain.RunwayHealthy, zeroCash: &domain.Period{Month: 9, Year: 2024}},
		{name: "Entre três e seis meses pede cautela", cash: 35000, burn: 10000, months: 3.5, status: domain.RunwayCaution, zeroCash: &domain.Period{Month: 6, Year: 2024}},
		{name: "Menos de três meses é crítico", cash: 10000, burn: 10000, months: 1, status: domain.RunwayCritical, zeroCash: &domain.Period{Month: 4, Year: 2024}},
		{name: "Caixa negativo zera o runway", cash: -5000, burn: 1000, months: 0, status: domain.RunwayCritical, zeroCash: &march},
		{name: "Sem queima retorna o sentinela", cash: 10000, burn: 0, months: domain.RunwaySentinel, status: domain.RunwayHealthy},
		{name: "Queima negativa retorna o sentinela", cash: 10000, burn: -500, months: domain.RunwaySentinel, status: domain.RunwayHealthy},
		{name: "Runway muito longo é limitado ao sentinela", cash: 100000000, burn: 1, months: domain.RunwaySentinel, status: domain.RunwayHealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runway := Runway(march, dec(tt.cash), dec(tt.burn))
			assert.Equal(t, tt.months, runway.RunwayMonths)
			assert.Equal(t, tt.status, runway.Status)
			assert.Equal(t, tt.zeroCash, runway.ZeroCashPeriod)
			assert.Equal(t, float64(tt.cash), runway.CashBalance)
		})
	}

	t.Run("Mês do caixa zerado vira o ano", func(t *testing.T) {
		runway := Runway(domain.Period{Month: 11, Year: 2024}, dec(40000), dec(10000))
		require.NotNil(t, runway.ZeroCashPeriod)
		assert.Equal(t, domain.Period{Month: 3, Year: 2025}, *runway.ZeroCashPeriod)
	})
}

func TestBreakEven(t *testing.T) {
	tests := []struct {
		name     string
		input    BreakEvenInput
		validate func(t *testing.T, result domain.BreakEven)
	}{
		{
			name: "Faturamento abaixo de 80% dos custos é crítico",
			input: BreakEvenInput{
				Period:          march,
				TotalCosts:      dec(50000),
				RealizedRevenue: dec(20000),
				MRR:             dec(10000),
				AverageTicket:   dec(5000),
				DaysRemaining:   10,
			},
			validate: func(t *testing.T, result domain.BreakEven) {
				assert.Equal(t, 30000.0, result.Gap)
				assert.Equal(t, 20000.0, result.GapAfterMRR)
				assert.Equal(t, 4, result.SalesNeeded)
				assert.Equal(t, 2000.0, result.DailyTarget)
				assert.Equal(t, 40.0, result.CoveragePct)
				assert.Equal(t, domain.BreakEvenCritical, result.Status)
			},
		},
		{
			name: "Vendas necessárias arredondam para cima",
			input: BreakEvenInput{
				Period:          march,
				TotalCosts:      dec(50000),
				RealizedRevenue: dec(20000),
				AverageTicket:   dec(7000),
				DaysRemaining:   3,
			},
			validate: func(t *testing.T, result domain.BreakEven) {
				assert.Equal(t, 30000.0, result.GapAfterMRR)
				assert.Equal(t, 5, result.SalesNeeded)
				assert.Equal(t, 10000.0, result.DailyTarget)
			},
		},
		{
			name: "A partir de 80% dos custos está no caminho",
			input: BreakEvenInput{
				Period:          march,
				TotalCosts:      dec(50000),
				RealizedRevenue: dec(40000),
				MRR:             dec(15000),
				AverageTicket:   dec(5000),
				DaysRemaining:   10,
			},
			validate: func(t *testing.T, result domain.BreakEven) {
				assert.Equal(t, 10000.0, result.Gap)
				assert.Zero(t, result.GapAfterMRR)
				assert.Zero(t, result.SalesNeeded)
				assert.Zero(t, result.DailyTarget)
				assert.Equal(t, domain.BreakEvenOnTrack, result.Status)
			},
		},
		{
			name: "Faturamento acima dos custos é superávit",
			input: BreakEvenInput{
				Period:          march,
				TotalCosts:      dec(50000),
				RealizedRevenue: dec(60000),
				AverageTicket:   dec(5000),
			},
			validate: func(t *testing.T, result domain.BreakEven) {
				assert.Zero(t, result.Gap)
				assert.Equal(t, 120.0, result.CoveragePct)
				assert.Equal(t, domain.BreakEvenSurplus, result.Status)
			},
		},
		{
			name: "Sem ticket médio e sem dias restantes não divide por zero",
			input: BreakEvenInput{
				Period:     march,
				TotalCosts: dec(50000),
			},
			validate: func(t *testing.T, result domain.BreakEven) {
				assert.Equal(t, 50000.0, result.GapAfterMRR)
				assert.Zero(t, result.SalesNeeded)
				assert.Zero(t, result.DailyTarget)
				assert.Zero(t, result.CoveragePct)
			},
		},
		{
			name:  "Sem custos é superávit",
			input: BreakEvenInput{Period: march},
			validate: func(t *testing.T, result domain.BreakEven) {
				assert.Equal(t, domain.BreakEvenSurplus, result.Status)
				assert.Zero(t, result.CoveragePct)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, BreakEven(tt.input))
		})
	}
}

func TestProjectCash(t *testing.T) {
	generatedAt := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    CashProjectionInput
		balances []float64
		statuses []domain.CashStatus
	}{
		{
			name:     "Resultado negativo pede atenção",
			input:    CashProjectionInput{OpeningBalance: dec(20000), MRR: dec(10000), MonthlyCosts: dec(12000), Months: 3},
			balances: []float64{18000, 16000, 14000},
			statuses: []domain.CashStatus{domain.CashAttention, domain.CashAttention, domain.CashAttention},
		},
		{
			name:     "Saldo negativo é crítico",
			input:    CashProjectionInput{OpeningBalance: dec(5000), MRR: dec(5000), MonthlyCosts: dec(8000), Months: 2},
			balances: []float64{2000, -1000},
			statuses: []domain.CashStatus{domain.CashAttention, domain.CashCritical},
		},
		{
			name:     "Saldo abaixo de dois meses de custo é alerta",
			input:    CashProjectionInput{OpeningBalance: dec(5000), MRR: dec(10000), MonthlyCosts: dec(8000), Months: 2},
			balances: []float64{7000, 9000},
			statuses: []domain.CashStatus{domain.CashAlert, domain.CashAlert},
		},
		{
			name:     "Saldo folgado é saudável",
			input:    CashProjectionInput{OpeningBalance: dec(50000), MRR: dec(20000), MonthlyCosts: dec(10000), Months: 1},
			balances: []float64{60000},
			statuses: []domain.CashStatus{domain.CashHealthy},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.input.Period = domain.Period{Month: 12, Year: 2024}
			tt.input.GeneratedAt = generatedAt

			projection, err := ProjectCash(tt.input)
			require.NoError(t, err)
			require.Len(t, projection.Months, len(tt.balances))
			assert.Equal(t, generatedAt, projection.GeneratedAt)
			assert.Equal(t, domain.Period{Month: 1, Year: 2025}, projection.Months[0].Period)

			for i, month := range projection.Months {
				assert.Equal(t, tt.balances[i], month.ClosingBalance, "mês %d", i)
				assert.Equal(t, tt.statuses[i], month.Status, "mês %d", i)
			}
		})
	}

	t.Run("Horizonte vazio é inválido", func(t *testing.T) {
		_, err := ProjectCash(CashProjectionInput{Period: march, Months: 0})
		assert.ErrorIs(t, err, ErrInvalidProjectionWindow)
	})
}

func TestDaysElapsedAndRemaining(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 15, DaysElapsed(march, now))
	assert.Equal(t, 16, DaysRemaining(march, now))

	feb := domain.Period{Month: 2, Year: 2024}
	assert.Equal(t, 29, DaysElapsed(feb, now))
	assert.Equal(t, 0, DaysRemaining(feb, now))

	april := domain.Period{Month: 4, Year: 2024}
	assert.Equal(t, 0, DaysElapsed(april, now))
	assert.Equal(t, 30, DaysRemaining(april, now))
}
