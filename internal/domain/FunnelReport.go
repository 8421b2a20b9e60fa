package domain

import "github.com/shopspring/decimal"

// Grouping define o agrupamento do relatório de funil
type Grouping string

const (
	GroupingNone    Grouping = "none"
	GroupingActor   Grouping = "actor"
	GroupingChannel Grouping = "channel"
)

// ReconciledFromLedger indica que vendas e faturamento vieram das vendas registradas
const ReconciledFromLedger = "sales_ledger"

// Etapas preenchidas por outra fonte quando a fonte própria está vazia
const (
	FallbackLeadsFromSDR       = "leads_from_sdr"
	FallbackMeetingsFromCloser = "meetings_from_closer"
)

// FunnelStage é uma etapa do funil com a taxa em relação à etapa anterior
type FunnelStage struct {
	Name             string  `json:"name"`
	Count            int     `json:"count"`
	RateFromPrevious float64 `json:"rate_from_previous"`
}

type FunnelRates struct {
	ActivationRate float64 `json:"activation_rate"`
	LeadRate       float64 `json:"lead_rate"`
	SchedulingRate float64 `json:"scheduling_rate"`
	AttendanceRate float64 `json:"attendance_rate"`
	CloseRate      float64 `json:"close_rate"`
	AverageTicket  float64 `json:"average_ticket"`
}

// FunnelRow é uma linha do relatório: o total geral, um ator ou um canal
type FunnelRow struct {
	Key               string        `json:"key"`
	Activations       int           `json:"activations"`
	Conversions       int           `json:"conversions"`
	Leads             int           `json:"leads"`
	LeadsReceived     int           `json:"leads_received"`
	MeetingsScheduled int           `json:"meetings_scheduled"`
	MeetingsHeld      int           `json:"meetings_held"`
	CallsScheduled    int           `json:"calls_scheduled"`
	CallsHeld         int           `json:"calls_held"`
	Sales             int           `json:"sales"`
	Booking           float64       `json:"booking"`
	Revenue           float64       `json:"revenue"`
	NetRevenue        float64       `json:"net_revenue"`
	Rates             FunnelRates   `json:"rates"`
	Stages            []FunnelStage `json:"stages"`
	ReconciledFrom    string        `json:"reconciled_from,omitempty"`
	LedgerDivergent   bool          `json:"ledger_divergent,omitempty"`
	LedgerSales       int           `json:"ledger_sales,omitempty"`
	LedgerRevenue     float64       `json:"ledger_revenue,omitempty"`
	Fallbacks         []string      `json:"fallbacks,omitempty"`

	// Faturamento sem arredondamento, para cálculos internos
	RevenueAmount decimal.Decimal `json:"-"`
}

type FunnelReport struct {
	Period  Period      `json:"period"`
	GroupBy Grouping    `json:"group_by"`
	Rows    []FunnelRow `json:"rows"`
}

// FunnelHistory lista o funil geral de cada mês com dados no ano
type FunnelHistory struct {
	Year   int                  `json:"year"`
	Months []FunnelHistoryEntry `json:"months"`
}

type FunnelHistoryEntry struct {
	Period Period    `json:"period"`
	Funnel FunnelRow `json:"funnel"`
}
