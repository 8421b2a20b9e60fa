package domain

import "github.com/shopspring/decimal"

// OperatingExpenses detalha as despesas operacionais por centro de custo
type OperatingExpenses struct {
	Commercial      float64 `json:"commercial"`
	Administrative  float64 `json:"administrative"`
	FixedOperations float64 `json:"fixed_operations"`
	Total           float64 `json:"total"`
}

// Composition expressa custos e lucro como percentual da receita líquida
type Composition struct {
	COGSPct     float64 `json:"cogs_pct"`
	ExpensesPct float64 `json:"expenses_pct"`
	NetPct      float64 `json:"net_pct"`
}

// IncomeStatement é a DRE de um período
type IncomeStatement struct {
	Period               Period            `json:"period"`
	GrossRevenue         float64           `json:"gross_revenue"`
	RawDeductions        float64           `json:"raw_deductions"`
	Deductions           float64           `json:"deductions"`
	DeductionsCapped     bool              `json:"deductions_capped"`
	NetRevenue           float64           `json:"net_revenue"`
	COGS                 float64           `json:"cogs"`
	GrossProfit          float64           `json:"gross_profit"`
	GrossMargin          float64           `json:"gross_margin"`
	OperatingExpenses    OperatingExpenses `json:"operating_expenses"`
	Estimated            bool              `json:"estimated"`
	EBITDA               float64           `json:"ebitda"`
	EBITDAMargin         float64           `json:"ebitda_margin"`
	FinancialExpenses    float64           `json:"financial_expenses"`
	NetIncome            float64           `json:"net_income"`
	NetMargin            float64           `json:"net_margin"`
	TotalCosts           float64           `json:"total_costs"`
	UnclassifiedResidual float64           `json:"unclassified_residual"`
	Composition          Composition       `json:"composition"`
}

// MonthlyIncome é uma linha do histórico anual da DRE
type MonthlyIncome struct {
	Period       Period  `json:"period"`
	NetRevenue   float64 `json:"net_revenue"`
	Costs        float64 `json:"costs"`
	EBITDA       float64 `json:"ebitda"`
	NetIncome    float64 `json:"net_income"`
	NetMargin    float64 `json:"net_margin"`
	GrossRevenue float64 `json:"gross_revenue"`
}

// AnnualIncomeStatement consolida as DREs mensais de um ano
type AnnualIncomeStatement struct {
	Year              int             `json:"year"`
	Months            []MonthlyIncome `json:"months"`
	GrossRevenue      float64         `json:"gross_revenue"`
	NetRevenue        float64         `json:"net_revenue"`
	COGS              float64         `json:"cogs"`
	OperatingExpenses float64         `json:"operating_expenses"`
	FinancialExpenses float64         `json:"financial_expenses"`
	EBITDA            float64         `json:"ebitda"`
	NetIncome         float64         `json:"net_income"`
	NetMargin         float64         `json:"net_margin"`

	// Receita bruta sem arredondamento, para cálculos internos
	GrossRevenueAmount decimal.Decimal `json:"-"`
}
