package handler

import (
	"errors"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/medgm/analytics-api/internal/domain"
	"github.com/medgm/analytics-api/internal/usecases/funnel"
	"github.com/medgm/analytics-api/internal/usecases/goals"
	"github.com/medgm/analytics-api/internal/usecases/selling"
	"github.com/medgm/analytics-api/internal/usecases/statements"
	"github.com/medgm/analytics-api/pkg/apiErrors"
	"github.com/medgm/analytics-api/pkg/log"
	"github.com/medgm/analytics-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao codificar resposta")
	}
}

// writeServiceError traduz o erro do caso de uso no código da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	code := errorCode(err)

	logger := log.ForContext(r.Context()).WithError(err)
	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		logger.Error(message)
	} else {
		logger.Warn(message)
	}

	apiErrors.WriteError(w, code, message, err.Error())
}

func errorCode(err error) string {
	var statementErr *statements.StatementError
	var goalErr *goals.GoalError
	var saleErr *selling.SaleError

	switch {
	case errors.As(err, &statementErr):
		return statementErr.Code
	case errors.As(err, &goalErr):
		return goalErr.Code
	case errors.As(err, &saleErr):
		return saleErr.Code
	case errors.Is(err, funnel.ErrInvalidPeriod), errors.Is(err, domain.ErrInvalidPeriod):
		return apiErrors.ErrInvalidPeriod
	case errors.Is(err, funnel.ErrInvalidGrouping):
		return apiErrors.ErrInvalidRequest
	case errors.Is(err, funnel.ErrInvalidMetric):
		return apiErrors.ErrInvalidData
	case errors.Is(err, funnel.ErrFetchMetrics), errors.Is(err, funnel.ErrFetchSales):
		return apiErrors.ErrDatabaseOperation
	default:
		return apiErrors.ErrInternalServer
	}
}

// periodFromQuery lê month e year da query string
func periodFromQuery(r *http.Request) (domain.Period, error) {
	query := r.URL.Query()
	if query.Get("month") == "" || query.Get("year") == "" {
		return domain.Period{}, errors.New("é necessário informar mês e ano nos parâmetros")
	}

	month, year, err := utils.ParseMonthYear(query.Get("month"), query.Get("year"))
	if err != nil {
		return domain.Period{}, err
	}

	return domain.NewPeriod(month, year)
}

func yearFromString(value string) (int, error) {
	if value == "" {
		return 0, errors.New("é necessário informar o ano")
	}

	year, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.New("ano inválido")
	}

	if _, err := domain.NewPeriod(1, year); err != nil {
		return 0, err
	}

	return year, nil
}

func writePeriodError(w http.ResponseWriter, err error) {
	apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
}
