package handler

import (
	"net/http"

	"github.com/medgm/analytics-api/internal/usecases/statements"
	"github.com/medgm/analytics-api/pkg/log"
)

// GetIncomeStatement retorna a DRE do mês
func GetIncomeStatement(service statements.StatementService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, err := periodFromQuery(r)
		if err != nil {
			writePeriodError(w, err)
			return
		}

		statement, err := service.IncomeStatement(r.Context(), period)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar a DRE")
			return
		}

		writeJSON(w, r, http.StatusOK, statement)
	}
}

// GetCashFlowStatement retorna a DFC do mês com o saldo inicial encadeado
func GetCashFlowStatement(service statements.StatementService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, err := periodFromQuery(r)
		if err != nil {
			writePeriodError(w, err)
			return
		}

		statement, err := service.CashFlowStatement(r.Context(), period)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar a DFC")
			return
		}

		writeJSON(w, r, http.StatusOK, statement)
	}
}

func GetAnnualIncomeStatement(service statements.StatementService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, err := yearFromString(r.URL.Query().Get("year"))
		if err != nil {
			writePeriodError(w, err)
			return
		}

		statement, err := service.AnnualIncomeStatement(r.Context(), year)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar a DRE anual")
			return
		}

		writeJSON(w, r, http.StatusOK, statement)
	}
}

func GetAnnualCashFlow(service statements.StatementService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, err := yearFromString(r.URL.Query().Get("year"))
		if err != nil {
			writePeriodError(w, err)
			return
		}

		statement, err := service.AnnualCashFlow(r.Context(), year)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar a DFC anual")
			return
		}

		writeJSON(w, r, http.StatusOK, statement)
	}
}

// GetAvailablePeriods retorna os anos e meses com lançamentos
func GetAvailablePeriods(service statements.StatementService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("periods: buscando períodos disponíveis")

		periods, err := service.AvailablePeriods(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar períodos disponíveis")
			return
		}

		writeJSON(w, r, http.StatusOK, periods)
	}
}

// GetCategoryBreakdown abre entradas e saídas do mês por categoria, com a comparação do mês anterior
func GetCategoryBreakdown(service statements.StatementService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, err := periodFromQuery(r)
		if err != nil {
			writePeriodError(w, err)
			return
		}

		breakdown, err := service.CategoryBreakdown(r.Context(), period)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao detalhar lançamentos por categoria")
			return
		}

		writeJSON(w, r, http.StatusOK, breakdown)
	}
}
