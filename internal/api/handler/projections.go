package handler

import (
	"net/http"
	"strconv"

	"github.com/medgm/analytics-api/internal/usecases/goals"
	"github.com/medgm/analytics-api/pkg/apiErrors"
)

func GetRunway(service goals.ProjectionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, err := periodFromQuery(r)
		if err != nil {
			writePeriodError(w, err)
			return
		}

		runway, err := service.Runway(r.Context(), period)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular o runway")
			return
		}

		writeJSON(w, r, http.StatusOK, runway)
	}
}

func GetBreakEven(service goals.ProjectionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, err := periodFromQuery(r)
		if err != nil {
			writePeriodError(w, err)
			return
		}

		breakEven, err := service.BreakEven(r.Context(), period)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular o ponto de equilíbrio")
			return
		}

		writeJSON(w, r, http.StatusOK, breakEven)
	}
}

// GetCashProjection projeta o caixa a partir do mês. Sem months usa o horizonte padrão.
func GetCashProjection(service goals.ProjectionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, err := periodFromQuery(r)
		if err != nil {
			writePeriodError(w, err)
			return
		}

		months := 0
		if value := r.URL.Query().Get("months"); value != "" {
			months, err = strconv.Atoi(value)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Quantidade de meses inválida", nil)
				return
			}
		}

		projection, err := service.CashProjection(r.Context(), period, months)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao projetar o caixa")
			return
		}

		writeJSON(w, r, http.StatusOK, projection)
	}
}
