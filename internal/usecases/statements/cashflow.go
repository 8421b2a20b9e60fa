package statements

import (
	"github.com/medgm/analytics-api/internal/domain"
	"github.com/medgm/analytics-api/internal/usecases/classifying"
	"github.com/medgm/analytics-api/pkg/utils"
	"github.com/shopspring/decimal"
)

type cashFigures struct {
	customerReceipts decimal.Decimal
	otherReceipts    decimal.Decimal
	vendorPayments   decimal.Decimal
	payroll          decimal.Decimal
	taxesPaid        decimal.Decimal
	otherOutflows    decimal.Decimal
	assetPurchases   decimal.Decimal
	distributions    decimal.Decimal
	loanPayments     decimal.Decimal
}

// BuildCashFlowStatement monta a DFC pelo método direto.
// Cada saída realizada cai em exatamente uma linha, então a variação líquida
// é sempre a soma das entradas menos a soma das saídas do período.
func BuildCashFlowStatement(
	period domain.Period,
	records []domain.FinancialRecord,
	openingBalance decimal.Decimal,
	classifier *classifying.Classifier,
) domain.CashFlowStatement {
	f := computeCashFlow(period, records, classifier)
	return f.toStatement(period, openingBalance)
}

func computeCashFlow(period domain.Period, records []domain.FinancialRecord, classifier *classifying.Classifier) cashFigures {
	f := cashFigures{}

	for _, r := range records {
		if !r.IsRealized() || !r.Period.Equal(period) {
			continue
		}

		if r.IsInflow() {
			if classifier.Classify(r) == domain.BucketRevenue {
				f.customerReceipts = f.customerReceipts.Add(r.Amount)
			} else {
				f.otherReceipts = f.otherReceipts.Add(r.Amount)
			}
			continue
		}

		switch {
		case classifier.IsDistribution(r):
			f.distributions = f.distributions.Add(r.Amount)
		case classifier.IsInvestment(r):
			f.assetPurchases = f.assetPurchases.Add(r.Amount)
		default:
			switch classifier.Classify(r) {
			case domain.BucketTax:
				f.taxesPaid = f.taxesPaid.Add(r.Amount)
			case domain.BucketPayroll:
				f.payroll = f.payroll.Add(r.Amount)
			case domain.BucketVendorPayment, domain.BucketCOGS:
				f.vendorPayments = f.vendorPayments.Add(r.Amount)
			case domain.BucketFinancing:
				f.loanPayments = f.loanPayments.Add(r.Amount)
			default:
				f.otherOutflows = f.otherOutflows.Add(r.Amount)
			}
		}
	}

	return f
}

func (f cashFigures) operating() decimal.Decimal {
	inflows := f.customerReceipts.Add(f.otherReceipts)
	return inflows.Sub(utils.Sum(f.vendorPayments, f.payroll, f.taxesPaid, f.otherOutflows))
}

func (f cashFigures) investing() decimal.Decimal {
	return f.assetPurchases.Neg()
}

func (f cashFigures) financing() decimal.Decimal {
	return f.distributions.Add(f.loanPayments).Neg()
}

func (f cashFigures) variation() decimal.Decimal {
	return utils.Sum(f.operating(), f.investing(), f.financing())
}

func (f cashFigures) toStatement(period domain.Period, opening decimal.Decimal) domain.CashFlowStatement {
	variation := f.variation()

	return domain.CashFlowStatement{
		Period:         period,
		OpeningBalance: utils.Money(opening),
		Operating: domain.OperatingCashFlow{
			CustomerReceipts:      utils.Money(f.customerReceipts),
			OtherReceipts:         utils.Money(f.otherReceipts),
			VendorPayments:        utils.Money(f.vendorPayments),
			Payroll:               utils.Money(f.payroll),
			TaxesPaid:             utils.Money(f.taxesPaid),
			OtherOperatingOutflow: utils.Money(f.otherOutflows),
			Net:                   utils.Money(f.operating()),
		},
		Investing: domain.InvestingCashFlow{
			AssetPurchases: utils.Money(f.assetPurchases),
			Net:            utils.Money(f.investing()),
		},
		Financing: domain.FinancingCashFlow{
			ProfitDistributions: utils.Money(f.distributions),
			LoanPayments:        utils.Money(f.loanPayments),
			Net:                 utils.Money(f.financing()),
		},
		NetCashVariation: utils.Money(variation),
		ClosingBalance:   utils.Money(opening.Add(variation)),
	}
}

// realizedNet soma entradas menos saídas realizadas, usado na reconstrução do saldo
func realizedNet(records []domain.FinancialRecord) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		if !r.IsRealized() {
			continue
		}
		if r.IsInflow() {
			total = total.Add(r.Amount)
		} else {
			total = total.Sub(r.Amount)
		}
	}
	return total
}
