package utils

import (
	"fmt"
	"strconv"
	"time"
)

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ParseMonthYear converte os parâmetros month e year de uma query
func ParseMonthYear(month, year string) (int, int, error) {
	m, err := strconv.Atoi(month)
	if err != nil {
		return 0, 0, fmt.Errorf("mês inválido: %s", month)
	}

	y, err := strconv.Atoi(year)
	if err != nil {
		return 0, 0, fmt.Errorf("ano inválido: %s", year)
	}

	return m, y, nil
}

// Clock abstrai o relógio para permitir datas fixas nos testes
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock retorna sempre o mesmo instante
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time {
	return c.At
}
