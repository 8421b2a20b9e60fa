// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"github.com/Masterminds/squirrel"
	"github.com/medgm/analytics-api/internal/domain"
)

// periodKey ordena períodos como yyyymm
func periodKey(p domain.Period) int {
	return p.Year*100 + p.Month
}

// periodRange filtra as linhas cujo (year, month) está entre from e to, inclusive
func periodRange(alias string, from, to domain.Period) squirrel.Sqlizer {
	return squirrel.Expr(
		alias+"year * 100 + "+alias+"month BETWEEN ? AND ?",
		periodKey(from),
		periodKey(to),
	)
}

func periodEq(alias string, p domain.Period) squirrel.Eq {
	return squirrel.Eq{alias + "month": p.Month, alias + "year": p.Year}
}
