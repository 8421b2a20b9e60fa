package selling

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de vendas
var (
	ErrInvalidSale       = errors.New("invalid sale")
	ErrSaleNotFound      = errors.New("sale not found")
	ErrDatabaseOperation = errors.New("database operation error")
	ErrGenerateID        = errors.New("error generating ID")
)

// SaleError é um erro com contexto adicional para vendas
type SaleError struct {
	Err     error
	Code    string
	SaleID  string
	Details string
}

func (e *SaleError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SaleError) Unwrap() error {
	return e.Err
}

func NewSaleError(err error, code string, details string) *SaleError {
	return &SaleError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewSaleErrorWithID(err error, code string, saleID string, details string) *SaleError {
	return &SaleError{
		Err:     err,
		Code:    code,
		SaleID:  saleID,
		Details: details,
	}
}
