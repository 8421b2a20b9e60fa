package statements

import (
	"testing"

	"github.com/medgm/analytics-api/internal/domain"
	"github.com/medgm/analytics-api/internal/usecases/classifying"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBuildCashFlowStatement(t *testing.T) {
	classifier := classifying.NewClassifier()

	t.Run("Saldo final soma a variação ao saldo de abertura", func(t *testing.T) {
		records := []domain.FinancialRecord{
			inflow(50000, withCategory("Venda de consultoria")),
			outflow(2000, withCategory("Impostos")),
			outflow(20000, withCategory("Salários")),
			outflow(10000, withCategory("Fornecedor de software")),
			outflow(5000, withCategory("Distribuição de lucros")),
			outflow(3000, withCategory("Equipamento"), withCostType("Investimento")),
			outflow(2000, withCategory("Juros")),
		}

		s := BuildCashFlowStatement(march, records, decimal.NewFromInt(10000), classifier)

		assert.Equal(t, 10000.0, s.OpeningBalance)
		assert.Equal(t, 50000.0, s.Operating.CustomerReceipts)
		assert.Equal(t, 2000.0, s.Operating.TaxesPaid)
		assert.Equal(t, 20000.0, s.Operating.Payroll)
		assert.Equal(t, 10000.0, s.Operating.VendorPayments)
		assert.Equal(t, 18000.0, s.Operating.Net)
		assert.Equal(t, 3000.0, s.Investing.AssetPurchases)
		assert.Equal(t, -3000.0, s.Investing.Net)
		assert.Equal(t, 5000.0, s.Financing.ProfitDistributions)
		assert.Equal(t, 2000.0, s.Financing.LoanPayments)
		assert.Equal(t, -7000.0, s.Financing.Net)
		assert.Equal(t, 8000.0, s.NetCashVariation)
		assert.Equal(t, 18000.0, s.ClosingBalance)
	})

	t.Run("Imposto sobre o lucro é imposto pago, não distribuição", func(t *testing.T) {
		records := []domain.FinancialRecord{
			outflow(1000, withCategory("Imposto sobre lucro")),
			outflow(400, withCategory("Contribuição Social sobre o Lucro")),
		}

		s := BuildCashFlowStatement(march, records, decimal.Zero, classifier)
		income := BuildIncomeStatement(march, records, classifier)

		assert.Equal(t, 1400.0, s.Operating.TaxesPaid)
		assert.Equal(t, 0.0, s.Financing.ProfitDistributions)
		assert.Equal(t, income.RawDeductions, s.Operating.TaxesPaid)
	})

	t.Run("Estorno recebido entra como outra receita", func(t *testing.T) {
		records := []domain.FinancialRecord{
			inflow(1000, withCategory("Estorno de tarifa")),
			inflow(4000),
		}

		s := BuildCashFlowStatement(march, records, decimal.Zero, classifier)

		assert.Equal(t, 4000.0, s.Operating.CustomerReceipts)
		assert.Equal(t, 1000.0, s.Operating.OtherReceipts)
		assert.Equal(t, 5000.0, s.ClosingBalance)
	})

	t.Run("Saída sem categoria conhecida vai para outras saídas operacionais", func(t *testing.T) {
		records := []domain.FinancialRecord{
			outflow(700, withCategory("Diversos")),
			outflow(300, withCostCenter("Societário")),
		}

		s := BuildCashFlowStatement(march, records, decimal.NewFromInt(1000), classifier)

		assert.Equal(t, 700.0, s.Operating.OtherOperatingOutflow)
		assert.Equal(t, 300.0, s.Financing.ProfitDistributions)
		assert.Equal(t, 0.0, s.ClosingBalance)
	})

	t.Run("Saldo pode ficar negativo", func(t *testing.T) {
		s := BuildCashFlowStatement(march, []domain.FinancialRecord{outflow(500)}, decimal.Zero, classifier)
		assert.Equal(t, -500.0, s.ClosingBalance)
	})

	t.Run("Previstos não movimentam o caixa", func(t *testing.T) {
		s := BuildCashFlowStatement(march, []domain.FinancialRecord{inflow(500, forecast())}, decimal.NewFromInt(100), classifier)
		assert.Equal(t, 0.0, s.NetCashVariation)
		assert.Equal(t, 100.0, s.ClosingBalance)
	})
}

func TestRealizedNet(t *testing.T) {
	records := []domain.FinancialRecord{
		inflow(50000),
		outflow(42000),
		outflow(1000, forecast()),
	}

	assert.True(t, decimal.NewFromInt(8000).Equal(realizedNet(records)))
}
