package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/medgm/analytics-api/infrastructure/database/postgres"
	"github.com/medgm/analytics-api/internal/domain"
)

type CompanyGoalRepository interface {
	GetByYear(ctx context.Context, year int) (*domain.CompanyGoal, error)
	SaveOrUpdate(ctx context.Context, goal *domain.CompanyGoal) error
}

type companyGoalRepository struct {
	conn *postgres.Connection
}

func NewCompanyGoalRepository(conn *postgres.Connection) CompanyGoalRepository {
	return &companyGoalRepository{
		conn: conn,
	}
}

func (r *companyGoalRepository) GetByYear(ctx context.Context, year int) (*domain.CompanyGoal, error) {
	query, args, err := squirrel.
		Select("cg.year", "cg.annual_revenue", "cg.annual_cash", "cg.updated_at").
		From("company_goals cg").
		Where(squirrel.Eq{"cg.year": year}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	goal := &domain.CompanyGoal{}
	err = r.conn.QueryRow(ctx, query, args...).Scan(&goal.Year, &goal.AnnualRevenue, &goal.AnnualCash, &goal.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear meta da empresa: %w", err)
	}

	return goal, nil
}

func (r *companyGoalRepository) SaveOrUpdate(ctx context.Context, goal *domain.CompanyGoal) error {
	query, args, err := squirrel.
		Insert("company_goals").
		Columns("year", "annual_revenue", "annual_cash").
		Values(goal.Year, goal.AnnualRevenue, goal.AnnualCash).
		Suffix(`
		ON CONFLICT (year) DO UPDATE SET
			annual_revenue = EXCLUDED.annual_revenue,
			annual_cash = EXCLUDED.annual_cash,
			updated_at = CURRENT_TIMESTAMP
		RETURNING updated_at`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if err := r.conn.QueryRow(ctx, query, args...).Scan(&goal.UpdatedAt); err != nil {
		return fmt.Errorf("erro ao salvar meta da empresa: %w", err)
	}

	return nil
}
