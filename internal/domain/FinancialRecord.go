package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidRecord = errors.New("invalid record")

type RecordKind string

const (
	RecordKindInflow  RecordKind = "entrada"
	RecordKindOutflow RecordKind = "saida"
)

type RecordStatus string

const (
	RecordStatusForecast RecordStatus = "previsto"
	RecordStatusRealized RecordStatus = "realizado"
)

// FinancialRecord é um lançamento do livro-caixa
type FinancialRecord struct {
	ID          string          `json:"id"`
	Kind        RecordKind      `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`
	Period      Period          `json:"period"`
	OccurredOn  *time.Time      `json:"occurred_on,omitempty"`
	Status      RecordStatus    `json:"status"`
	Category    *string         `json:"category,omitempty"`
	CostLabel   *string         `json:"cost_label,omitempty"`
	CostType    *string         `json:"cost_type,omitempty"`
	CostCenter  *string         `json:"cost_center,omitempty"`
	Product     *string         `json:"product,omitempty"`
	Description *string         `json:"description,omitempty"`
	SaleID      *string         `json:"sale_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Validate rejeita valores negativos, tipos desconhecidos e períodos inválidos
func (r FinancialRecord) Validate() error {
	if r.Kind != RecordKindInflow && r.Kind != RecordKindOutflow {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidRecord, r.Kind)
	}
	if r.Status != RecordStatusForecast && r.Status != RecordStatusRealized {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidRecord, r.Status)
	}
	if r.Amount.IsNegative() {
		return fmt.Errorf("%w: negative amount %s", ErrInvalidRecord, r.Amount.String())
	}
	if err := r.Period.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	return nil
}

func (r FinancialRecord) IsRealized() bool {
	return r.Status == RecordStatusRealized
}

func (r FinancialRecord) IsInflow() bool {
	return r.Kind == RecordKindInflow
}

func (r FinancialRecord) IsOutflow() bool {
	return r.Kind == RecordKindOutflow
}

// ValidateRecords valida todos os lançamentos e aponta o índice do primeiro inválido
func ValidateRecords(records []FinancialRecord) error {
	for i, record := range records {
		if err := record.Validate(); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	return nil
}

// FinancialRecordFilters filtra lançamentos por intervalo de períodos e status
type FinancialRecordFilters struct {
	From   Period
	To     Period
	Status *RecordStatus
}
