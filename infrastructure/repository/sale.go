package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/medgm/analytics-api/infrastructure/database/postgres"
	"github.com/medgm/analytics-api/internal/domain"
)

const (
	saleTable = "sales s"
)

var saleColumns = []string{
	"s.id",
	"s.month",
	"s.year",
	"s.occurred_on",
	"s.client",
	"s.channel",
	"s.actor",
	"s.revenue_type",
	"s.product",
	"s.gross_amount",
	"s.net_amount",
	"s.created_at",
}

type SaleRepository interface {
	ListByPeriodRange(ctx context.Context, from, to domain.Period) ([]domain.Sale, error)
	GetByID(ctx context.Context, id string) (*domain.Sale, error)
	Create(ctx context.Context, sale *domain.Sale) error
}

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

func (r *saleRepository) ListByPeriodRange(ctx context.Context, from, to domain.Period) ([]domain.Sale, error) {
	query, args, err := squirrel.
		Select(saleColumns...).
		From(saleTable).
		Where(periodRange("s.", from, to)).
		OrderBy("s.year ASC", "s.month ASC", "s.created_at ASC").
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

	sales := make([]domain.Sale, 0)
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		sales = append(sales, *sale)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sales, nil
}

func (r *saleRepository) GetByID(ctx context.Context, id string) (*domain.Sale, error) {
	query, args, err := squirrel.
		Select(saleColumns...).
		From(saleTable).
		Where(squirrel.Eq{"s.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	sale, err := scanSale(r.conn.QueryRow(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear venda: %w", err)
	}

	return sale, nil
}

func (r *saleRepository) Create(ctx context.Context, sale *domain.Sale) error {
	query, args, err := squirrel.
		Insert("sales").
		Columns(
			"id",
			"month",
			"year",
			"occurred_on",
			"client",
			"channel",
			"actor",
			"revenue_type",
			"product",
			"gross_amount",
			"net_amount",
		).
		Values(
			sale.ID,
			sale.Period.Month,
			sale.Period.Year,
			sale.OccurredOn,
			sale.Client,
			sale.Channel,
			sale.Actor,
			sale.RevenueType,
			sale.Product,
			sale.GrossAmount,
			sale.NetAmount,
		).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if err := r.conn.QueryRow(ctx, query, args...).Scan(&sale.CreatedAt); err != nil {
		return fmt.Errorf("erro ao inserir venda: %w", err)
	}

	return nil
}

func scanSale(row scanner) (*domain.Sale, error) {
	sale := &domain.Sale{}

	err := row.Scan(
		&sale.ID,
		&sale.Period.Month,
		&sale.Period.Year,
		&sale.OccurredOn,
		&sale.Client,
		&sale.Channel,
		&sale.Actor,
		&sale.RevenueType,
		&sale.Product,
		&sale.GrossAmount,
		&sale.NetAmount,
		&sale.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return sale, nil
}
