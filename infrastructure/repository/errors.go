package repository

import (
	"errors"

	"github.com/lib/pq"
)

// ErrDuplicate indica violação de chave única no banco
var ErrDuplicate = errors.New("registro duplicado")

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolation
	}
	return false
}
