package handler

import (
	"net/http"

	"github.com/medgm/analytics-api/internal/api/handler/router"
	"github.com/medgm/analytics-api/internal/usecases/funnel"
	"github.com/medgm/analytics-api/internal/usecases/goals"
	"github.com/medgm/analytics-api/internal/usecases/selling"
	"github.com/medgm/analytics-api/internal/usecases/statements"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Statements(service statements.StatementService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/periods",
			Method:  http.MethodGet,
			Handler: GetAvailablePeriods(service),
		},
		{
			Path:    "/v1/statements/dre",
			Method:  http.MethodGet,
			Handler: GetIncomeStatement(service),
		},
		{
			Path:    "/v1/statements/dre/annual",
			Method:  http.MethodGet,
			Handler: GetAnnualIncomeStatement(service),
		},
		{
			Path:    "/v1/statements/dfc",
			Method:  http.MethodGet,
			Handler: GetCashFlowStatement(service),
		},
		{
			Path:    "/v1/statements/dfc/annual",
			Method:  http.MethodGet,
			Handler: GetAnnualCashFlow(service),
		},
		{
			Path:    "/v1/statements/breakdown",
			Method:  http.MethodGet,
			Handler: GetCategoryBreakdown(service),
		},
	}
}

func Funnel(service funnel.FunnelService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/funnel",
			Method:  http.MethodGet,
			Handler: GetFunnelReport(service),
		},
		{
			Path:    "/v1/funnel/history",
			Method:  http.MethodGet,
			Handler: GetFunnelHistory(service),
		},
		{
			Path:    "/v1/rankings/closers",
			Method:  http.MethodGet,
			Handler: GetCloserRanking(service),
		},
	}
}

// Goals agrupa as rotas de metas mensais e da meta anual da empresa
func Goals(service goals.GoalService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/goals",
			Method:  http.MethodGet,
			Handler: ListGoals(service),
		},
		{
			Path:    "/v1/goals",
			Method:  http.MethodPost,
			Handler: CreateGoal(service),
		},
		{
			Path:    "/v1/goals/:id",
			Method:  http.MethodPut,
			Handler: UpdateGoal(service),
		},
		{
			Path:    "/v1/goals/:id",
			Method:  http.MethodDelete,
			Handler: DeleteGoal(service),
		},
		{
			Path:    "/v1/goals/progress",
			Method:  http.MethodGet,
			Handler: GetGoalsProgress(service),
		},
		{
			Path:    "/v1/goals/scorecard",
			Method:  http.MethodGet,
			Handler: GetGoalScorecard(service),
		},
		{
			Path:    "/v1/goals/projection/:id",
			Method:  http.MethodGet,
			Handler: GetGoalProjection(service),
		},
		{
			Path:    "/v1/goals/replicate",
			Method:  http.MethodPost,
			Handler: ReplicateGoals(service),
		},
		{
			Path:    "/v1/goals/people/:id/history",
			Method:  http.MethodGet,
			Handler: GetPersonGoalHistory(service),
		},
		{
			Path:    "/v1/company-goals/:year",
			Method:  http.MethodGet,
			Handler: GetCompanyGoal(service),
		},
		{
			Path:    "/v1/company-goals/:year",
			Method:  http.MethodPut,
			Handler: SaveCompanyGoal(service),
		},
		{
			Path:    "/v1/company-goals/:year/progress",
			Method:  http.MethodGet,
			Handler: GetCompanyGoalProgress(service),
		},
	}
}

func Projections(service goals.ProjectionService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/projections/runway",
			Method:  http.MethodGet,
			Handler: GetRunway(service),
		},
		{
			Path:    "/v1/projections/break-even",
			Method:  http.MethodGet,
			Handler: GetBreakEven(service),
		},
		{
			Path:    "/v1/projections/cash",
			Method:  http.MethodGet,
			Handler: GetCashProjection(service),
		},
	}
}

func Sales(service selling.SaleService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales",
			Method:  http.MethodPost,
			Handler: CreateSale(service),
		},
		{
			Path:    "/v1/sales/:id/ledger-entry",
			Method:  http.MethodPost,
			Handler: RecordSaleLedgerEntry(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
