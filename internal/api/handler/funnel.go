package handler

import (
	"net/http"

	"github.com/medgm/analytics-api/internal/domain"
	"github.com/medgm/analytics-api/internal/usecases/funnel"
	"github.com/medgm/analytics-api/pkg/apiErrors"
)

// GetFunnelReport retorna o funil do mês, geral ou agrupado por ator ou canal
func GetFunnelReport(service funnel.FunnelService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, err := periodFromQuery(r)
		if err != nil {
			writePeriodError(w, err)
			return
		}

		groupBy := domain.GroupingNone
		if value := r.URL.Query().Get("group_by"); value != "" {
			groupBy, err = funnel.ParseGrouping(value)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Agrupamento inválido. Valores aceitos: none, actor, channel", nil)
				return
			}
		}

		report, err := service.Report(r.Context(), period, groupBy)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar o funil")
			return
		}

		writeJSON(w, r, http.StatusOK, report)
	}
}

func GetFunnelHistory(service funnel.FunnelService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, err := yearFromString(r.URL.Query().Get("year"))
		if err != nil {
			writePeriodError(w, err)
			return
		}

		history, err := service.History(r.Context(), year)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar o histórico do funil")
			return
		}

		writeJSON(w, r, http.StatusOK, history)
	}
}

// GetCloserRanking retorna o ranking de closers por faturamento com a variação de posição
func GetCloserRanking(service funnel.FunnelService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, err := periodFromQuery(r)
		if err != nil {
			writePeriodError(w, err)
			return
		}

		ranking, err := service.CloserRanking(r.Context(), period)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao gerar o ranking de closers")
			return
		}

		writeJSON(w, r, http.StatusOK, ranking)
	}
}
