package statements

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPeriod = errors.New("invalid period")
	ErrInvalidYear   = errors.New("invalid year")
	ErrInvalidRecord = errors.New("invalid financial record")
	ErrFetchRecords  = errors.New("error fetching financial records")
	ErrFetchBalance  = errors.New("error fetching prior balance")
	ErrSaveBalance   = errors.New("error saving prior balance")
	ErrFetchPeriods  = errors.New("error fetching available periods")
)

// StatementError carrega o período envolvido no erro
type StatementError struct {
	Err     error
	Code    string
	Period  string
	Details string
}

func (e *StatementError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *StatementError) Unwrap() error {
	return e.Err
}

func NewStatementError(err error, code string, period string, details string) *StatementError {
	return &StatementError{
		Err:     err,
		Code:    code,
		Period:  period,
		Details: details,
	}
}
