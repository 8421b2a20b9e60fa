package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/medgm/analytics-api/infrastructure/database/postgres"
	"github.com/medgm/analytics-api/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	goalTable = "goals g"
)

var goalColumns = []string{
	"g.id",
	"g.month",
	"g.year",
	"g.subject_kind",
	"g.person_id",
	"g.role",
	"g.target_activations",
	"g.target_leads",
	"g.target_meetings_scheduled",
	"g.target_meetings_held",
	"g.target_sales",
	"g.target_revenue",
	"g.created_at",
	"g.updated_at",
}

type GoalRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Goal, error)
	GetBySubject(ctx context.Context, subject domain.GoalSubject, period domain.Period) (*domain.Goal, error)
	ListByPeriod(ctx context.Context, period domain.Period) ([]domain.Goal, error)
	ListByPerson(ctx context.Context, personID string) ([]domain.Goal, error)
	Create(ctx context.Context, goal *domain.Goal) error
	Update(ctx context.Context, goal *domain.Goal) error
	Delete(ctx context.Context, id string) error
}

type goalRepository struct {
	conn *postgres.Connection
}

func NewGoalRepository(conn *postgres.Connection) GoalRepository {
	return &goalRepository{
		conn: conn,
	}
}

func (r *goalRepository) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	return r.getOne(ctx, squirrel.Eq{"g.id": id})
}

func (r *goalRepository) GetBySubject(ctx context.Context, subject domain.GoalSubject, period domain.Period) (*domain.Goal, error) {
	return r.getOne(ctx, squirrel.And{
		periodEq("g.", period),
		squirrel.Eq{"g.subject_kind": string(subject.Kind), "g.person_id": subject.Key()},
	})
}

func (r *goalRepository) getOne(ctx context.Context, where squirrel.Sqlizer) (*domain.Goal, error) {
	query, args, err := squirrel.
		Select(goalColumns...).
		From(goalTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	goal, err := scanGoal(r.conn.QueryRow(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear meta: %w", err)
	}

	return goal, nil
}

func (r *goalRepository) ListByPeriod(ctx context.Context, period domain.Period) ([]domain.Goal, error) {
	return r.list(ctx, periodEq("g.", period))
}

func (r *goalRepository) ListByPerson(ctx context.Context, personID string) ([]domain.Goal, error) {
	return r.list(ctx, squirrel.Eq{"g.subject_kind": string(domain.SubjectPerson), "g.person_id": personID})
}

func (r *goalRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]domain.Goal, error) {
	query, args, err := squirrel.
		Select(goalColumns...).
		From(goalTable).
		Where(where).
		OrderBy("g.year ASC", "g.month ASC", "g.person_id ASC").
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

	goals := make([]domain.Goal, 0)
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear meta: %w", err)
		}
		goals = append(goals, *goal)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return goals, nil
}

func (r *goalRepository) Create(ctx context.Context, goal *domain.Goal) error {
	query, args, err := squirrel.
		Insert("goals").
		Columns(
			"id",
			"month",
			"year",
			"subject_kind",
			"person_id",
			"role",
			"target_activations",
			"target_leads",
			"target_meetings_scheduled",
			"target_meetings_held",
			"target_sales",
			"target_revenue",
		).
		Values(
			goal.ID,
			goal.Period.Month,
			goal.Period.Year,
			string(goal.Subject.Kind),
			goal.Subject.Key(),
			string(goal.Subject.Role),
			goal.Targets.Activations,
			goal.Targets.Leads,
			goal.Targets.MeetingsScheduled,
			goal.Targets.MeetingsHeld,
			goal.Targets.Sales,
			goal.Targets.Revenue,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if err := r.conn.QueryRow(ctx, query, args...).Scan(&goal.CreatedAt, &goal.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("erro ao inserir meta: %w", err)
	}

	return nil
}

func (r *goalRepository) Update(ctx context.Context, goal *domain.Goal) error {
	query, args, err := squirrel.
		Update("goals").
		Set("target_activations", goal.Targets.Activations).
		Set("target_leads", goal.Targets.Leads).
		Set("target_meetings_scheduled", goal.Targets.MeetingsScheduled).
		Set("target_meetings_held", goal.Targets.MeetingsHeld).
		Set("target_sales", goal.Targets.Sales).
		Set("target_revenue", goal.Targets.Revenue).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": goal.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar meta: %w", err)
	}

	return nil
}

func (r *goalRepository) Delete(ctx context.Context, id string) error {
	query, args, err := squirrel.
		Delete("goals").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de remoção: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao remover meta: %w", err)
	}

	return nil
}

func scanGoal(row scanner) (*domain.Goal, error) {
	goal := &domain.Goal{}
	var kind, personID, role string
	var revenue decimal.NullDecimal

	err := row.Scan(
		&goal.ID,
		&goal.Period.Month,
		&goal.Period.Year,
		&kind,
		&personID,
		&role,
		&goal.Targets.Activations,
		&goal.Targets.Leads,
		&goal.Targets.MeetingsScheduled,
		&goal.Targets.MeetingsHeld,
		&goal.Targets.Sales,
		&revenue,
		&goal.CreatedAt,
		&goal.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	goal.Subject = domain.GoalSubject{Kind: domain.SubjectKind(kind), Role: domain.Role(role)}
	if goal.Subject.Kind == domain.SubjectPerson {
		goal.Subject.PersonID = personID
	}
	if revenue.Valid {
		goal.Targets.Revenue = &revenue.Decimal
	}

	return goal, nil
}
