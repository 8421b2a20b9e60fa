package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriorBalance é o saldo final de um período já calculado
type PriorBalance struct {
	Period         Period          `json:"period"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
	ComputedAt     time.Time       `json:"computed_at"`
}
