package domain

// CategoryTotal é o subtotal realizado de uma categoria no mês e no mês anterior
type CategoryTotal struct {
	Category       string  `json:"category"`
	Amount         float64 `json:"amount"`
	PreviousAmount float64 `json:"previous_amount"`
	Change         float64 `json:"change"`
	ChangePct      float64 `json:"change_pct"`
	SharePct       float64 `json:"share_pct"`
}

type FlowBreakdown struct {
	Total         float64         `json:"total"`
	PreviousTotal float64         `json:"previous_total"`
	ChangePct     float64         `json:"change_pct"`
	Categories    []CategoryTotal `json:"categories"`
}

// CategoryBreakdown abre entradas e saídas realizadas por categoria, comparando com o mês anterior
type CategoryBreakdown struct {
	Period         Period        `json:"period"`
	PreviousPeriod Period        `json:"previous_period"`
	Inflows        FlowBreakdown `json:"inflows"`
	Outflows       FlowBreakdown `json:"outflows"`
	Result         float64       `json:"result"`
	PreviousResult float64       `json:"previous_result"`
}
