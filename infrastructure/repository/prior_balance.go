package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/medgm/analytics-api/infrastructure/database/postgres"
	"github.com/medgm/analytics-api/internal/domain"
)

// PriorBalanceRepository guarda os saldos finais já calculados para o carry-forward da DFC
type PriorBalanceRepository interface {
	GetLatestInRange(ctx context.Context, from, to domain.Period) (*domain.PriorBalance, error)
	SaveOrUpdate(ctx context.Context, balance *domain.PriorBalance) error
}

type priorBalanceRepository struct {
	conn *postgres.Connection
}

func NewPriorBalanceRepository(conn *postgres.Connection) PriorBalanceRepository {
	return &priorBalanceRepository{
		conn: conn,
	}
}

func (r *priorBalanceRepository) GetLatestInRange(ctx context.Context, from, to domain.Period) (*domain.PriorBalance, error) {
	query, args, err := squirrel.
		Select("pb.month", "pb.year", "pb.closing_balance", "pb.computed_at").
		From("prior_balances pb").
		Where(periodRange("pb.", from, to)).
		OrderBy("pb.year DESC", "pb.month DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	balance := &domain.PriorBalance{}
	err = r.conn.QueryRow(ctx, query, args...).Scan(
		&balance.Period.Month,
		&balance.Period.Year,
		&balance.ClosingBalance,
		&balance.ComputedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear saldo anterior: %w", err)
	}

	return balance, nil
}

func (r *priorBalanceRepository) SaveOrUpdate(ctx context.Context, balance *domain.PriorBalance) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("prior_balances").
		Columns("month", "year", "closing_balance", "computed_at").
		Values(balance.Period.Month, balance.Period.Year, balance.ClosingBalance, balance.ComputedAt).
		Suffix(`
		ON CONFLICT (month, year) DO UPDATE SET
			closing_balance = EXCLUDED.closing_balance,
			computed_at = EXCLUDED.computed_at`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}
