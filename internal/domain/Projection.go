package domain

import "time"

type RunwayStatus string

const (
	RunwayHealthy  RunwayStatus = "healthy"
	RunwayCaution  RunwayStatus = "caution"
	RunwayCritical RunwayStatus = "critical"
)

// RunwaySentinel é o runway informado quando não há queima de caixa
const RunwaySentinel = 999

type Runway struct {
	Period         Period       `json:"period"`
	CashBalance    float64      `json:"cash_balance"`
	MonthlyBurn    float64      `json:"monthly_burn"`
	RunwayMonths   float64      `json:"runway_months"`
	Status         RunwayStatus `json:"status"`
	ZeroCashPeriod *Period      `json:"zero_cash_period,omitempty"`
}

type BreakEvenStatus string

const (
	BreakEvenSurplus  BreakEvenStatus = "surplus"
	BreakEvenOnTrack  BreakEvenStatus = "on_track"
	BreakEvenCritical BreakEvenStatus = "critical"
)

// BreakEven indica quanto falta vender no mês para cobrir os custos
type BreakEven struct {
	Period          Period          `json:"period"`
	TotalCosts      float64         `json:"total_costs"`
	RealizedRevenue float64         `json:"realized_revenue"`
	MRR             float64         `json:"mrr"`
	Gap             float64         `json:"gap"`
	GapAfterMRR     float64         `json:"gap_after_mrr"`
	AverageTicket   float64         `json:"average_ticket"`
	SalesNeeded     int             `json:"sales_needed"`
	DaysRemaining   int             `json:"days_remaining"`
	DailyTarget     float64         `json:"daily_target"`
	CoveragePct     float64         `json:"coverage_pct"`
	Status          BreakEvenStatus `json:"status"`
}

type CashStatus string

const (
	CashCritical  CashStatus = "critical"
	CashAttention CashStatus = "attention"
	CashAlert     CashStatus = "alert"
	CashHealthy   CashStatus = "healthy"
)

type CashProjectionMonth struct {
	Period         Period     `json:"period"`
	Inflows        float64    `json:"inflows"`
	Outflows       float64    `json:"outflows"`
	Result         float64    `json:"result"`
	ClosingBalance float64    `json:"closing_balance"`
	Status         CashStatus `json:"status"`
}

type CashProjection struct {
	Period         Period                `json:"period"`
	OpeningBalance float64               `json:"opening_balance"`
	MRR            float64               `json:"mrr"`
	MonthlyCosts   float64               `json:"monthly_costs"`
	Months         []CashProjectionMonth `json:"months"`
	GeneratedAt    time.Time             `json:"generated_at"`
}
