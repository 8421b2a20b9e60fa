package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidMetric = errors.New("invalid funnel metric")

// SocialSellingMetric é o registro diário de prospecção ativa
type SocialSellingMetric struct {
	ID          string     `json:"id"`
	Period      Period     `json:"period"`
	Actor       string     `json:"actor"`
	OccurredOn  *time.Time `json:"occurred_on,omitempty"`
	Activations int        `json:"activations"`
	Conversions int        `json:"conversions"`
	Leads       int        `json:"leads"`
}

func (m SocialSellingMetric) Validate() error {
	if m.Activations < 0 || m.Conversions < 0 || m.Leads < 0 {
		return fmt.Errorf("%w: negative count for %s", ErrInvalidMetric, m.Actor)
	}
	return m.Period.Validate()
}

// SDRMetric é o registro diário de qualificação e agendamento
type SDRMetric struct {
	ID                string     `json:"id"`
	Period            Period     `json:"period"`
	Actor             string     `json:"actor"`
	Channel           string     `json:"channel"`
	OccurredOn        *time.Time `json:"occurred_on,omitempty"`
	LeadsIn           int        `json:"leads_in"`
	MeetingsScheduled int        `json:"meetings_scheduled"`
	MeetingsHeld      int        `json:"meetings_held"`
}

func (m SDRMetric) Validate() error {
	if m.LeadsIn < 0 || m.MeetingsScheduled < 0 || m.MeetingsHeld < 0 {
		return fmt.Errorf("%w: negative count for %s", ErrInvalidMetric, m.Actor)
	}
	return m.Period.Validate()
}

// CloserMetric é o registro diário de fechamento
type CloserMetric struct {
	ID             string          `json:"id"`
	Period         Period          `json:"period"`
	Actor          string          `json:"actor"`
	Channel        string          `json:"channel"`
	OccurredOn     *time.Time      `json:"occurred_on,omitempty"`
	CallsScheduled int             `json:"calls_scheduled"`
	CallsHeld      int             `json:"calls_held"`
	Sales          int             `json:"sales"`
	Booking        decimal.Decimal `json:"booking"`
	GrossRevenue   decimal.Decimal `json:"gross_revenue"`
	NetRevenue     decimal.Decimal `json:"net_revenue"`
}

func (m CloserMetric) Validate() error {
	if m.CallsScheduled < 0 || m.CallsHeld < 0 || m.Sales < 0 {
		return fmt.Errorf("%w: negative count for %s", ErrInvalidMetric, m.Actor)
	}
	if m.Booking.IsNegative() || m.GrossRevenue.IsNegative() || m.NetRevenue.IsNegative() {
		return fmt.Errorf("%w: negative amount for %s", ErrInvalidMetric, m.Actor)
	}
	return m.Period.Validate()
}
