// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidPeriod = errors.New("invalid period")

// Period identifica um mês de competência
type Period struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func NewPeriod(month, year int) (Period, error) {
	p := Period{Month: month, Year: year}
	if err := p.Validate(); err != nil {
		return Period{}, err
	}
	return p, nil
}

// PeriodOf retorna o período da data informada
func PeriodOf(t time.Time) Period {
	return Period{Month: int(t.Month()), Year: t.Year()}
}

// ParsePeriod interpreta um período no formato mm-yyyy (ex: 01-2024)
func ParsePeriod(value string) (Period, error) {
	t, err := time.Parse("01-2006", value)
	if err != nil {
		return Period{}, fmt.Errorf("%w: %s", ErrInvalidPeriod, value)
	}
	return PeriodOf(t), nil
}

func (p Period) Validate() error {
	if p.Month < 1 || p.Month > 12 {
		return fmt.Errorf("%w: month %d", ErrInvalidPeriod, p.Month)
	}
	if p.Year < 1 || p.Year > 9999 {
		return fmt.Errorf("%w: year %d", ErrInvalidPeriod, p.Year)
	}
	return nil
}

// Previous retorna o mês anterior, virando o ano em janeiro
func (p Period) Previous() Period {
	if p.Month == 1 {
		return Period{Month: 12, Year: p.Year - 1}
	}
	return Period{Month: p.Month - 1, Year: p.Year}
}

func (p Period) Next() Period {
	if p.Month == 12 {
		return Period{Month: 1, Year: p.Year + 1}
	}
	return Period{Month: p.Month + 1, Year: p.Year}
}

func (p Period) Before(other Period) bool {
	if p.Year != other.Year {
		return p.Year < other.Year
	}
	return p.Month < other.Month
}

func (p Period) Equal(other Period) bool {
	return p.Month == other.Month && p.Year == other.Year
}

// FirstDay retorna o primeiro dia do mês em UTC
func (p Period) FirstDay() time.Time {
	return time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
}

// Days retorna a quantidade de dias do mês
func (p Period) Days() int {
	return p.FirstDay().AddDate(0, 1, -1).Day()
}

// String retorna o período no formato mm-yyyy
func (p Period) String() string {
	return fmt.Sprintf("%02d-%d", p.Month, p.Year)
}

// StartOfYear retorna janeiro do ano do período
func (p Period) StartOfYear() Period {
	return Period{Month: 1, Year: p.Year}
}

// PeriodsBetween retorna todos os meses de from até to, inclusive
func PeriodsBetween(from, to Period) []Period {
	periods := make([]Period, 0)
	for p := from; !to.Before(p); p = p.Next() {
		periods = append(periods, p)
	}
	return periods
}
