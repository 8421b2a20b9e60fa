package goals

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de metas
var (
	// Erros de validação
	ErrInvalidPeriod           = errors.New("invalid period")
	ErrInvalidSubject          = errors.New("invalid goal subject")
	ErrInvalidTargets          = errors.New("invalid goal targets")
	ErrInvalidProjectionWindow = errors.New("invalid projection window")

	// Erros de estado
	ErrGoalConflict   = errors.New("goal already exists for subject and period")
	ErrGoalNotFound   = errors.New("goal not found")
	ErrPersonNotFound = errors.New("person not found")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
	ErrGenerateID        = errors.New("error generating ID")
)

// GoalError é um erro com contexto adicional para metas
type GoalError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	GoalID  string // ID da meta envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

func (e *GoalError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *GoalError) Unwrap() error {
	return e.Err
}

func NewGoalError(err error, code string, details string) *GoalError {
	return &GoalError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewGoalErrorWithID cria um novo GoalError com ID da meta
func NewGoalErrorWithID(err error, code string, goalID string, details string) *GoalError {
	return &GoalError{
		Err:     err,
		Code:    code,
		GoalID:  goalID,
		Details: details,
	}
}
