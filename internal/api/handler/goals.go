package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/medgm/analytics-api/internal/domain"
	"github.com/medgm/analytics-api/internal/usecases/goals"
	"github.com/medgm/analytics-api/pkg/apiErrors"
	"github.com/medgm/analytics-api/pkg/log"
)

type replicateGoalsRequest struct {
	From domain.Period `json:"from"`
	To   domain.Period `json:"to"`
}

func ListGoals(service goals.GoalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, err := periodFromQuery(r)
		if err != nil {
			writePeriodError(w, err)
			return
		}

		list, err := service.ListGoals(r.Context(), period)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar metas")
			return
		}

		writeJSON(w, r, http.StatusOK, list)
	}
}

// CreateGoal cadastra uma meta de pessoa ou da empresa para o mês
func CreateGoal(service goals.GoalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var goal domain.Goal
		if err := json.NewDecoder(r.Body).Decode(&goal); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao decodificar meta")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		created, err := service.CreateGoal(r.Context(), goal)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar meta")
			return
		}

		writeJSON(w, r, http.StatusCreated, created)
	}
}

func UpdateGoal(service goals.GoalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da meta não fornecido", nil)
			return
		}

		var targets domain.GoalTargets
		if err := json.NewDecoder(r.Body).Decode(&targets); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao decodificar alvos da meta")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		updated, err := service.UpdateGoal(r.Context(), id, targets)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar meta")
			return
		}

		writeJSON(w, r, http.StatusOK, updated)
	}
}

func DeleteGoal(service goals.GoalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da meta não fornecido", nil)
			return
		}

		if err := service.DeleteGoal(r.Context(), id); err != nil {
			writeServiceError(w, r, err, "Erro ao remover meta")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ReplicateGoals copia as metas de um mês para outro, pulando as que já existem
func ReplicateGoals(service goals.GoalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request replicateGoalsRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao decodificar replicação de metas")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		replicated, err := service.ReplicateGoals(r.Context(), request.From, request.To)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao replicar metas")
			return
		}

		writeJSON(w, r, http.StatusCreated, replicated)
	}
}

func GetGoalsProgress(service goals.GoalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, err := periodFromQuery(r)
		if err != nil {
			writePeriodError(w, err)
			return
		}

		progress, err := service.PeriodProgress(r.Context(), period)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular o progresso das metas")
			return
		}

		writeJSON(w, r, http.StatusOK, progress)
	}
}

// GetGoalScorecard retorna o placar individual do mês com tendência e histórico
func GetGoalScorecard(service goals.GoalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, err := periodFromQuery(r)
		if err != nil {
			writePeriodError(w, err)
			return
		}

		scorecard, err := service.Scorecard(r.Context(), period)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao montar o scorecard")
			return
		}

		writeJSON(w, r, http.StatusOK, scorecard)
	}
}

func GetGoalProjection(service goals.GoalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da meta não fornecido", nil)
			return
		}

		projection, err := service.GoalProjection(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao projetar a meta")
			return
		}

		writeJSON(w, r, http.StatusOK, projection)
	}
}

func GetPersonGoalHistory(service goals.GoalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		personID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if personID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da pessoa não fornecido", nil)
			return
		}

		history, err := service.PersonHistory(r.Context(), personID)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar histórico de metas")
			return
		}

		writeJSON(w, r, http.StatusOK, history)
	}
}

// GetCompanyGoal retorna a meta anual, com os valores padrão quando não cadastrada
func GetCompanyGoal(service goals.GoalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, err := yearFromString(httprouter.ParamsFromContext(r.Context()).ByName("year"))
		if err != nil {
			writePeriodError(w, err)
			return
		}

		goal, err := service.GetCompanyGoal(r.Context(), year)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar meta anual")
			return
		}

		writeJSON(w, r, http.StatusOK, goal)
	}
}

func SaveCompanyGoal(service goals.GoalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, err := yearFromString(httprouter.ParamsFromContext(r.Context()).ByName("year"))
		if err != nil {
			writePeriodError(w, err)
			return
		}

		var goal domain.CompanyGoal
		if err := json.NewDecoder(r.Body).Decode(&goal); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao decodificar meta anual")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}
		goal.Year = year

		saved, err := service.SaveCompanyGoal(r.Context(), goal)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao salvar meta anual")
			return
		}

		writeJSON(w, r, http.StatusOK, saved)
	}
}

func GetCompanyGoalProgress(service goals.GoalService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, err := yearFromString(httprouter.ParamsFromContext(r.Context()).ByName("year"))
		if err != nil {
			writePeriodError(w, err)
			return
		}

		progress, err := service.CompanyProgress(r.Context(), year)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular o progresso da meta anual")
			return
		}

		writeJSON(w, r, http.StatusOK, progress)
	}
}
