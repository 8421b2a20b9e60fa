package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// Money arredonda um valor monetário para duas casas na saída
func Money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// Percentage retorna part/whole*100 com duas casas, ou 0 quando whole não é positivo
func Percentage(part, whole decimal.Decimal) float64 {
	if !whole.IsPositive() {
		return 0
	}
	return part.Div(whole).Mul(hundred).Round(2).InexactFloat64()
}

// Rate é Percentage para contagens
func Rate(part, whole int) float64 {
	return Percentage(decimal.NewFromInt(int64(part)), decimal.NewFromInt(int64(whole)))
}

// Sum soma uma lista de decimais
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// FloorZero retorna zero para valores negativos
func FloorZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
