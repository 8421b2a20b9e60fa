// Package goals calcula o atingimento das metas, a projeção pelo ritmo do mês e os indicadores de caixa
package goals

import (
	"fmt"

	"github.com/medgm/analytics-api/internal/domain"
	"github.com/medgm/analytics-api/pkg/utils"
	"github.com/shopspring/decimal"
)

// Limites fixos da tendência, em percentual projetado
var (
	onTrackThreshold = decimal.NewFromInt(100)
	onPaceThreshold  = decimal.NewFromInt(80)
	hundred          = decimal.NewFromInt(100)
)

var metricOrder = []domain.GoalMetric{
	domain.GoalMetricActivations,
	domain.GoalMetricLeads,
	domain.GoalMetricMeetingsScheduled,
	domain.GoalMetricMeetingsHeld,
	domain.GoalMetricSales,
	domain.GoalMetricRevenue,
}

// PriorityMetric é a única métrica usada no atingimento de cada papel
func PriorityMetric(subject domain.GoalSubject) domain.GoalMetric {
	if subject.Kind == domain.SubjectCompany {
		return domain.GoalMetricRevenue
	}

	switch subject.Role {
	case domain.RoleSDR:
		return domain.GoalMetricMeetingsHeld
	case domain.RoleSocialSelling:
		return domain.GoalMetricLeads
	default:
		return domain.GoalMetricRevenue
	}
}

func targetOf(targets domain.GoalTargets, metric domain.GoalMetric) (decimal.Decimal, bool) {
	var count *int

	switch metric {
	case domain.GoalMetricActivations:
		count = targets.Activations
	case domain.GoalMetricLeads:
		count = targets.Leads
	case domain.GoalMetricMeetingsScheduled:
		count = targets.MeetingsScheduled
	case domain.GoalMetricMeetingsHeld:
		count = targets.MeetingsHeld
	case domain.GoalMetricSales:
		count = targets.Sales
	case domain.GoalMetricRevenue:
		if targets.Revenue == nil {
			return decimal.Zero, false
		}
		return *targets.Revenue, true
	}

	if count == nil {
		return decimal.Zero, false
	}
	return decimal.NewFromInt(int64(*count)), true
}

func realizedOf(realized domain.GoalRealized, metric domain.GoalMetric) decimal.Decimal {
	switch metric {
	case domain.GoalMetricActivations:
		return decimal.NewFromInt(int64(realized.Activations))
	case domain.GoalMetricLeads:
		return decimal.NewFromInt(int64(realized.Leads))
	case domain.GoalMetricMeetingsScheduled:
		return decimal.NewFromInt(int64(realized.MeetingsScheduled))
	case domain.GoalMetricMeetingsHeld:
		return decimal.NewFromInt(int64(realized.MeetingsHeld))
	case domain.GoalMetricSales:
		return decimal.NewFromInt(int64(realized.Sales))
	default:
		return realized.Revenue
	}
}

// Progress compara realizado e meta em todas as métricas com alvo.
// O atingimento usa só a métrica prioritária do papel e é 0 quando ela não tem alvo.
func Progress(goal domain.Goal, realized domain.GoalRealized) domain.GoalProgress {
	metric := PriorityMetric(goal.Subject)
	target, actual := priorityFigures(goal, realized)

	progress := domain.GoalProgress{
		GoalID:         goal.ID,
		Period:         goal.Period,
		Subject:        goal.Subject,
		PriorityMetric: metric,
		Target:         utils.Money(target),
		Realized:       utils.Money(actual),
		AttainmentPct:  utils.Percentage(actual, target),
		Deltas:         make([]domain.MetricDelta, 0, len(metricOrder)),
	}

	for _, m := range metricOrder {
		t, ok := targetOf(goal.Targets, m)
		if !ok {
			continue
		}
		r := realizedOf(realized, m)
		progress.Deltas = append(progress.Deltas, domain.MetricDelta{
			Metric:   m,
			Target:   utils.Money(t),
			Realized: utils.Money(r),
			Delta:    utils.Money(r.Sub(t)),
		})
	}

	return progress
}

// priorityFigures devolve alvo e realizado da métrica prioritária, sem arredondamento
func priorityFigures(goal domain.Goal, realized domain.GoalRealized) (decimal.Decimal, decimal.Decimal) {
	metric := PriorityMetric(goal.Subject)
	target, _ := targetOf(goal.Targets, metric)
	return target, realizedOf(realized, metric)
}

// TendencyFor classifica o percentual projetado
func TendencyFor(projectedPct decimal.Decimal) domain.Tendency {
	switch {
	case projectedPct.GreaterThanOrEqual(onTrackThreshold):
		return domain.TendencyOnTrackToHit
	case projectedPct.GreaterThanOrEqual(onPaceThreshold):
		return domain.TendencyOnPace
	default:
		return domain.TendencyAtRisk
	}
}

// Project estende o ritmo diário até o fim do mês
func Project(goal domain.Goal, realized domain.GoalRealized, daysElapsed, daysTotal int) (domain.GoalProjection, error) {
	if daysTotal <= 0 || daysElapsed < 0 || daysElapsed > daysTotal {
		return domain.GoalProjection{}, fmt.Errorf("%w: %d de %d dias", ErrInvalidProjectionWindow, daysElapsed, daysTotal)
	}

	metric := PriorityMetric(goal.Subject)
	target, actual := priorityFigures(goal, realized)

	dailyRate := decimal.Zero
	projected := decimal.Zero
	if daysElapsed > 0 {
		elapsed := decimal.NewFromInt(int64(daysElapsed))
		dailyRate = actual.Div(elapsed)
		projected = actual.Mul(decimal.NewFromInt(int64(daysTotal))).Div(elapsed)
	}

	projectedPct := decimal.Zero
	if target.IsPositive() {
		projectedPct = projected.Div(target).Mul(hundred)
	}

	return domain.GoalProjection{
		GoalID:                 goal.ID,
		Metric:                 metric,
		Target:                 utils.Money(target),
		Realized:               utils.Money(actual),
		DaysElapsed:            daysElapsed,
		DaysTotal:              daysTotal,
		DailyRate:              utils.Money(dailyRate),
		ProjectedTotal:         utils.Money(projected),
		ProjectedAttainmentPct: utils.Money(projectedPct),
		Tendency:               TendencyFor(projectedPct),
	}, nil
}

// RealizedFromRow converte uma linha do funil nos valores realizados de uma meta
func RealizedFromRow(row domain.FunnelRow) domain.GoalRealized {
	return domain.GoalRealized{
		Activations:       row.Activations,
		Leads:             row.Leads,
		MeetingsScheduled: row.MeetingsScheduled,
		MeetingsHeld:      row.MeetingsHeld,
		Sales:             row.Sales,
		Revenue:           row.RevenueAmount,
	}
}
