package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/medgm/analytics-api/infrastructure/database/postgres"
	"github.com/medgm/analytics-api/internal/domain"
)

// FunnelMetricRepository lê os registros diários das três etapas do funil
type FunnelMetricRepository interface {
	ListSocialSelling(ctx context.Context, from, to domain.Period) ([]domain.SocialSellingMetric, error)
	ListSDR(ctx context.Context, from, to domain.Period) ([]domain.SDRMetric, error)
	ListCloser(ctx context.Context, from, to domain.Period) ([]domain.CloserMetric, error)
}

type funnelMetricRepository struct {
	conn *postgres.Connection
}

func NewFunnelMetricRepository(conn *postgres.Connection) FunnelMetricRepository {
	return &funnelMetricRepository{
		conn: conn,
	}
}

func (r *funnelMetricRepository) ListSocialSelling(ctx context.Context, from, to domain.Period) ([]domain.SocialSellingMetric, error) {
	query, args, err := squirrel.
		Select("ss.id", "ss.month", "ss.year", "ss.actor", "ss.occurred_on", "ss.activations", "ss.conversions", "ss.leads").
		From("social_selling_metrics ss").
		Where(periodRange("ss.", from, to)).
		OrderBy("ss.year ASC", "ss.month ASC", "ss.occurred_on ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	metrics := make([]domain.SocialSellingMetric, 0)
	for rows.Next() {
		var m domain.SocialSellingMetric
		if err := rows.Scan(&m.ID, &m.Period.Month, &m.Period.Year, &m.Actor, &m.OccurredOn, &m.Activations, &m.Conversions, &m.Leads); err != nil {
			return nil, fmt.Errorf("erro ao escanear métrica de social selling: %w", err)
		}
		metrics = append(metrics, m)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return metrics, nil
}

func (r *funnelMetricRepository) ListSDR(ctx context.Context, from, to domain.Period) ([]domain.SDRMetric, error) {
	query, args, err := squirrel.
		Select("sdr.id", "sdr.month", "sdr.year", "sdr.actor", "sdr.channel", "sdr.occurred_on", "sdr.leads_in", "sdr.meetings_scheduled", "sdr.meetings_held").
		From("sdr_metrics sdr").
		Where(periodRange("sdr.", from, to)).
		OrderBy("sdr.year ASC", "sdr.month ASC", "sdr.occurred_on ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	metrics := make([]domain.SDRMetric, 0)
	for rows.Next() {
		var m domain.SDRMetric
		if err := rows.Scan(&m.ID, &m.Period.Month, &m.Period.Year, &m.Actor, &m.Channel, &m.OccurredOn, &m.LeadsIn, &m.MeetingsScheduled, &m.MeetingsHeld); err != nil {
			return nil, fmt.Errorf("erro ao escanear métrica de SDR: %w", err)
		}
		metrics = append(metrics, m)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return metrics, nil
}

func (r *funnelMetricRepository) ListCloser(ctx context.Context, from, to domain.Period) ([]domain.CloserMetric, error) {
	query, args, err := squirrel.
		Select(
			"c.id",
			"c.month",
			"c.year",
			"c.actor",
			"c.channel",
			"c.occurred_on",
			"c.calls_scheduled",
			"c.calls_held",
			"c.sales",
			"c.booking",
			"c.gross_revenue",
			"c.net_revenue",
		).
		From("closer_metrics c").
		Where(periodRange("c.", from, to)).
		OrderBy("c.year ASC", "c.month ASC", "c.occurred_on ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	metrics := make([]domain.CloserMetric, 0)
	for rows.Next() {
		var m domain.CloserMetric
		err := rows.Scan(
			&m.ID,
			&m.Period.Month,
			&m.Period.Year,
			&m.Actor,
			&m.Channel,
			&m.OccurredOn,
			&m.CallsScheduled,
			&m.CallsHeld,
			&m.Sales,
			&m.Booking,
			&m.GrossRevenue,
			&m.NetRevenue,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear métrica de closer: %w", err)
		}
		metrics = append(metrics, m)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return metrics, nil
}
