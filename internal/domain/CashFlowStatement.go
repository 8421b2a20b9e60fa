package domain

import "github.com/shopspring/decimal"

type OperatingCashFlow struct {
	CustomerReceipts      float64 `json:"customer_receipts"`
	OtherReceipts         float64 `json:"other_receipts"`
	VendorPayments        float64 `json:"vendor_payments"`
	Payroll               float64 `json:"payroll"`
	TaxesPaid             float64 `json:"taxes_paid"`
	OtherOperatingOutflow float64 `json:"other_operating_outflows"`
	Net                   float64 `json:"net"`
}

type InvestingCashFlow struct {
	AssetPurchases float64 `json:"asset_purchases"`
	Net            float64 `json:"net"`
}

type FinancingCashFlow struct {
	ProfitDistributions float64 `json:"profit_distributions"`
	LoanPayments        float64 `json:"loan_payments"`
	Net                 float64 `json:"net"`
}

// CashFlowStatement é a DFC (método direto) de um período
type CashFlowStatement struct {
	Period           Period            `json:"period"`
	OpeningBalance   float64           `json:"opening_balance"`
	Operating        OperatingCashFlow `json:"operating"`
	Investing        InvestingCashFlow `json:"investing"`
	Financing        FinancingCashFlow `json:"financing"`
	NetCashVariation float64           `json:"net_cash_variation"`
	ClosingBalance   float64           `json:"closing_balance"`
}

// MonthlyCashFlow é uma linha do histórico anual da DFC
type MonthlyCashFlow struct {
	Period           Period  `json:"period"`
	Operating        float64 `json:"operating"`
	Investing        float64 `json:"investing"`
	Financing        float64 `json:"financing"`
	NetCashVariation float64 `json:"net_cash_variation"`
	ClosingBalance   float64 `json:"closing_balance"`
}

// AnnualCashFlow consolida as DFCs mensais de um ano com saldo acumulado
type AnnualCashFlow struct {
	Year           int               `json:"year"`
	OpeningBalance float64           `json:"opening_balance"`
	Months         []MonthlyCashFlow `json:"months"`
	Operating      float64           `json:"operating"`
	Investing      float64           `json:"investing"`
	Financing      float64           `json:"financing"`
	ClosingBalance float64           `json:"closing_balance"`

	// Saldo final sem arredondamento, para cálculos internos
	ClosingBalanceAmount decimal.Decimal `json:"-"`
}
