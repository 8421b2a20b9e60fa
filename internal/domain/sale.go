package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidSale = errors.New("invalid sale")

// Tipos de receita da venda
const (
	RevenueTypeRecurring = "Recorrente"
	RevenueTypeOneOff    = "Pontual"
)

// Sale é uma venda fechada, fonte canônica de faturamento
type Sale struct {
	ID          string          `json:"id"`
	Period      Period          `json:"period"`
	OccurredOn  *time.Time      `json:"occurred_on,omitempty"`
	Client      string          `json:"client"`
	Channel     string          `json:"channel"`
	Actor       string          `json:"actor"`
	RevenueType string          `json:"revenue_type"`
	Product     string          `json:"product"`
	GrossAmount decimal.Decimal `json:"gross_amount"`
	NetAmount   decimal.Decimal `json:"net_amount"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (s Sale) Validate() error {
	if s.GrossAmount.IsNegative() || s.NetAmount.IsNegative() {
		return fmt.Errorf("%w: negative amount", ErrInvalidSale)
	}
	return s.Period.Validate()
}

func (s Sale) IsRecurring() bool {
	return s.RevenueType == RevenueTypeRecurring
}

// NewSale são os dados de entrada para registrar uma venda
type NewSale struct {
	Period      Period           `json:"period"`
	OccurredOn  *time.Time       `json:"occurred_on,omitempty"`
	Client      string           `json:"client"`
	Channel     string           `json:"channel"`
	Actor       string           `json:"actor"`
	RevenueType string           `json:"revenue_type"`
	Product     string           `json:"product"`
	Booking     *decimal.Decimal `json:"booking,omitempty"`
	Forecast    *decimal.Decimal `json:"forecast,omitempty"`
	Paid        *decimal.Decimal `json:"paid,omitempty"`
	NetAmount   decimal.Decimal  `json:"net_amount"`
}
