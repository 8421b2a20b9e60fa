// Package funnel soma as etapas do funil comercial e concilia as vendas com o registro de vendas
package funnel

import (
	"fmt"
	"sort"
	"strings"

	"github.com/medgm/analytics-api/internal/domain"
	"github.com/medgm/analytics-api/pkg/utils"
	"github.com/shopspring/decimal"
)

// Chaves fixas das linhas do relatório
const (
	TotalKey      = "total"
	UnassignedKey = "nao_informado"
)

// Nomes das etapas na ordem do funil
const (
	StageActivations       = "activations"
	StageConversions       = "conversions"
	StageLeads             = "leads"
	StageMeetingsScheduled = "meetings_scheduled"
	StageMeetingsHeld      = "meetings_held"
	StageSales             = "sales"
)

var groupingAliases = map[string]domain.Grouping{
	"":           domain.GroupingNone,
	"none":       domain.GroupingNone,
	"geral":      domain.GroupingNone,
	"actor":      domain.GroupingActor,
	"por_closer": domain.GroupingActor,
	"por_ator":   domain.GroupingActor,
	"channel":    domain.GroupingChannel,
	"por_canal":  domain.GroupingChannel,
}

// ParseGrouping aceita os nomes em inglês e os apelidos usados pelo painel
func ParseGrouping(value string) (domain.Grouping, error) {
	grouping, ok := groupingAliases[strings.ToLower(strings.TrimSpace(value))]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrInvalidGrouping, value)
	}
	return grouping, nil
}

// FunnelInput reúne as quatro fontes do funil. Registros de outros meses são ignorados.
type FunnelInput struct {
	SocialSelling []domain.SocialSellingMetric
	SDR           []domain.SDRMetric
	Closer        []domain.CloserMetric
	Sales         []domain.Sale
}

// HasData indica se alguma fonte tem registro no período
func (in FunnelInput) HasData(period domain.Period) bool {
	for _, m := range in.SocialSelling {
		if m.Period.Equal(period) {
			return true
		}
	}
	for _, m := range in.SDR {
		if m.Period.Equal(period) {
			return true
		}
	}
	for _, m := range in.Closer {
		if m.Period.Equal(period) {
			return true
		}
	}
	for _, s := range in.Sales {
		if s.Period.Equal(period) {
			return true
		}
	}
	return false
}

// Validate rejeita contagens ou valores negativos antes de qualquer soma
func (in FunnelInput) Validate() error {
	for i, m := range in.SocialSelling {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("%w: social selling %d: %w", ErrInvalidMetric, i, err)
		}
	}
	for i, m := range in.SDR {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("%w: sdr %d: %w", ErrInvalidMetric, i, err)
		}
	}
	for i, m := range in.Closer {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("%w: closer %d: %w", ErrInvalidMetric, i, err)
		}
	}
	for i, s := range in.Sales {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("%w: sale %d: %w", ErrInvalidMetric, i, err)
		}
	}
	return nil
}

type tally struct {
	activations    int
	conversions    int
	leads          int
	leadsIn        int
	scheduled      int
	held           int
	callsScheduled int
	callsHeld      int
	sales          int
	booking        decimal.Decimal
	revenue        decimal.Decimal
	netRevenue     decimal.Decimal
	hasSDR         bool
	ledgerSales    int
	ledgerRevenue  decimal.Decimal
	ledgerNet      decimal.Decimal
}

// Aggregate monta o relatório de funil do período. É puro: a mesma entrada gera sempre o mesmo relatório.
func Aggregate(period domain.Period, groupBy domain.Grouping, input FunnelInput) (domain.FunnelReport, error) {
	if err := period.Validate(); err != nil {
		return domain.FunnelReport{}, fmt.Errorf("%w: %w", ErrInvalidPeriod, err)
	}
	if !validGrouping(groupBy) {
		return domain.FunnelReport{}, fmt.Errorf("%w: %s", ErrInvalidGrouping, groupBy)
	}
	if err := input.Validate(); err != nil {
		return domain.FunnelReport{}, err
	}

	tallies := make(map[string]*tally)
	get := func(key string) *tally {
		t, ok := tallies[key]
		if !ok {
			t = &tally{}
			tallies[key] = t
		}
		return t
	}

	if groupBy == domain.GroupingNone {
		get(TotalKey)
	}

	for _, m := range input.SocialSelling {
		if !m.Period.Equal(period) {
			continue
		}
		// Social selling não tem canal
		if groupBy == domain.GroupingChannel {
			continue
		}
		t := get(groupKey(groupBy, m.Actor, ""))
		t.activations += m.Activations
		t.conversions += m.Conversions
		t.leads += m.Leads
	}

	for _, m := range input.SDR {
		if !m.Period.Equal(period) {
			continue
		}
		t := get(groupKey(groupBy, m.Actor, m.Channel))
		t.leadsIn += m.LeadsIn
		t.scheduled += m.MeetingsScheduled
		t.held += m.MeetingsHeld
		t.hasSDR = true
	}

	for _, m := range input.Closer {
		if !m.Period.Equal(period) {
			continue
		}
		t := get(groupKey(groupBy, m.Actor, m.Channel))
		t.callsScheduled += m.CallsScheduled
		t.callsHeld += m.CallsHeld
		t.sales += m.Sales
		t.booking = t.booking.Add(m.Booking)
		t.revenue = t.revenue.Add(m.GrossRevenue)
		t.netRevenue = t.netRevenue.Add(m.NetRevenue)
	}

	for _, s := range input.Sales {
		if !s.Period.Equal(period) {
			continue
		}
		t := get(groupKey(groupBy, s.Actor, s.Channel))
		t.ledgerSales++
		t.ledgerRevenue = t.ledgerRevenue.Add(s.GrossAmount)
		t.ledgerNet = t.ledgerNet.Add(s.NetAmount)
	}

	type keyed struct {
		row     domain.FunnelRow
		revenue decimal.Decimal
	}

	rows := make([]keyed, 0, len(tallies))
	for key, t := range tallies {
		row, revenue := t.toRow(key)
		rows = append(rows, keyed{row: row, revenue: revenue})
	}

	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].revenue.Equal(rows[j].revenue) {
			return rows[i].revenue.GreaterThan(rows[j].revenue)
		}
		return rows[i].row.Key < rows[j].row.Key
	})

	report := domain.FunnelReport{
		Period:  period,
		GroupBy: groupBy,
		Rows:    make([]domain.FunnelRow, 0, len(rows)),
	}
	for _, r := range rows {
		report.Rows = append(report.Rows, r.row)
	}

	return report, nil
}

func validGrouping(groupBy domain.Grouping) bool {
	return groupBy == domain.GroupingNone || groupBy == domain.GroupingActor || groupBy == domain.GroupingChannel
}

func groupKey(groupBy domain.Grouping, actor, channel string) string {
	switch groupBy {
	case domain.GroupingActor:
		return keyOrUnassigned(actor)
	case domain.GroupingChannel:
		return keyOrUnassigned(channel)
	default:
		return TotalKey
	}
}

func keyOrUnassigned(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return UnassignedKey
	}
	return value
}

func (t *tally) toRow(key string) (domain.FunnelRow, decimal.Decimal) {
	sales := t.sales
	revenue := t.revenue
	netRevenue := t.netRevenue

	row := domain.FunnelRow{Key: key}

	switch {
	case sales == 0 && t.ledgerSales > 0:
		sales = t.ledgerSales
		revenue = t.ledgerRevenue
		netRevenue = t.ledgerNet
		row.ReconciledFrom = domain.ReconciledFromLedger
	case sales > 0 && t.ledgerSales > 0 && (sales != t.ledgerSales || !revenue.Equal(t.ledgerRevenue)):
		row.LedgerDivergent = true
		row.LedgerSales = t.ledgerSales
		row.LedgerRevenue = utils.Money(t.ledgerRevenue)
	}

	scheduled, held := t.scheduled, t.held
	if !t.hasSDR && (t.callsScheduled > 0 || t.callsHeld > 0) {
		scheduled, held = t.callsScheduled, t.callsHeld
		row.Fallbacks = append(row.Fallbacks, domain.FallbackMeetingsFromCloser)
	}

	// Leads do social selling; sem eles, os leads recebidos pelo SDR
	leads := t.leads
	if leads == 0 && t.leadsIn > 0 {
		leads = t.leadsIn
		row.Fallbacks = append(row.Fallbacks, domain.FallbackLeadsFromSDR)
	}

	schedulingBase := t.leadsIn
	if schedulingBase == 0 {
		schedulingBase = leads
	}

	row.Activations = t.activations
	row.Conversions = t.conversions
	row.Leads = leads
	row.LeadsReceived = t.leadsIn
	row.MeetingsScheduled = scheduled
	row.MeetingsHeld = held
	row.CallsScheduled = t.callsScheduled
	row.CallsHeld = t.callsHeld
	row.Sales = sales
	row.Booking = utils.Money(t.booking)
	row.Revenue = utils.Money(revenue)
	row.RevenueAmount = revenue
	row.NetRevenue = utils.Money(netRevenue)

	row.Rates = domain.FunnelRates{
		ActivationRate: utils.Rate(t.conversions, t.activations),
		LeadRate:       utils.Rate(leads, t.conversions),
		SchedulingRate: utils.Rate(scheduled, schedulingBase),
		AttendanceRate: utils.Rate(held, scheduled),
		CloseRate:      utils.Rate(sales, held),
		AverageTicket:  averageTicket(revenue, sales),
	}

	row.Stages = buildStages([]stageCount{
		{StageActivations, t.activations},
		{StageConversions, t.conversions},
		{StageLeads, leads},
		{StageMeetingsScheduled, scheduled},
		{StageMeetingsHeld, held},
		{StageSales, sales},
	})

	return row, revenue
}

type stageCount struct {
	name  string
	count int
}

func buildStages(counts []stageCount) []domain.FunnelStage {
	stages := make([]domain.FunnelStage, 0, len(counts))
	for i, c := range counts {
		stage := domain.FunnelStage{Name: c.name, Count: c.count}
		if i > 0 {
			stage.RateFromPrevious = utils.Rate(c.count, counts[i-1].count)
		}
		stages = append(stages, stage)
	}
	return stages
}

func averageTicket(revenue decimal.Decimal, sales int) float64 {
	if sales <= 0 {
		return 0
	}
	return utils.Money(revenue.Div(decimal.NewFromInt(int64(sales))))
}
